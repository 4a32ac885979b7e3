package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentride/rentride/internal/pkg/apperrors"
)

func setupTokenRepoTest(t *testing.T) (*UserRepo, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	repo := &UserRepo{redis: db}
	return repo, mock
}

func TestStoreRefreshToken(t *testing.T) {
	repo, mock := setupTokenRepoTest(t)
	userID := uuid.New()
	tokenID := uuid.New().String()

	mock.ExpectSet("auth:refresh:"+userID.String(), tokenID, time.Hour).SetVal("OK")

	err := repo.StoreRefreshToken(context.Background(), userID, tokenID, time.Hour)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRefreshTokenID(t *testing.T) {
	repo, mock := setupTokenRepoTest(t)
	userID := uuid.New()

	mock.ExpectGet("auth:refresh:" + userID.String()).SetVal("token-id-1")

	tokenID, err := repo.GetRefreshTokenID(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, "token-id-1", tokenID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRefreshTokenID_NotFound(t *testing.T) {
	repo, mock := setupTokenRepoTest(t)
	userID := uuid.New()

	mock.ExpectGet("auth:refresh:" + userID.String()).RedisNil()

	_, err := repo.GetRefreshTokenID(context.Background(), userID)

	require.Error(t, err)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.TypeNotFound, appErr.Type)
}

func TestGetRefreshTokenID_RedisError(t *testing.T) {
	repo, mock := setupTokenRepoTest(t)
	userID := uuid.New()

	mock.ExpectGet("auth:refresh:" + userID.String()).SetErr(errors.New("connection refused"))

	_, err := repo.GetRefreshTokenID(context.Background(), userID)

	require.Error(t, err)
	_, ok := apperrors.As(err)
	assert.False(t, ok)
}

func TestDeleteRefreshToken(t *testing.T) {
	repo, mock := setupTokenRepoTest(t)
	userID := uuid.New()

	mock.ExpectDel("auth:refresh:" + userID.String()).SetVal(1)

	err := repo.DeleteRefreshToken(context.Background(), userID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
