package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/rentride/rentride/internal/pkg/apperrors"
	"github.com/rentride/rentride/internal/pkg/models"
	"github.com/rentride/rentride/services/users/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			AccessSecret:      "test-access-secret",
			AccessExpiration:  15,
			RefreshSecret:     "test-refresh-secret",
			RefreshExpiration: 60 * 24,
			Issuer:            "test-issuer",
		},
		Bcrypt: models.BcryptConfig{Cost: bcrypt.MinCost},
	}
}

func TestCreateUser_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(testConfig(), mockRepo)

	var stored *models.User
	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			stored = u
			return nil
		})

	// Act
	user, err := uc.CreateUser(context.Background(), &models.RegisterRequest{
		Name:     "Test User",
		Email:    "Test@Example.com",
		Password: "secret123",
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestCreateUser_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(testConfig(), mockRepo)

	// Missing name, bad email, short password
	_, err := uc.CreateUser(context.Background(), &models.RegisterRequest{
		Name:     " ",
		Email:    "not-an-email",
		Password: "abc",
	})

	assert.Error(t, err)
	appErr, ok := apperrors.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.TypeValidation, appErr.Type)
	assert.Len(t, appErr.Sources, 3)
}

func TestCreateUser_InvalidRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(testConfig(), mockRepo)

	_, err := uc.CreateUser(context.Background(), &models.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "secret123",
		Role:     "superuser",
	})

	assert.Error(t, err)
	appErr, _ := apperrors.As(err)
	assert.Equal(t, apperrors.TypeValidation, appErr.Type)
}

func TestListUsers_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(testConfig(), mockRepo)

	expected := []*models.User{
		{ID: uuid.New(), Name: "A"},
		{ID: uuid.New(), Name: "B"},
	}
	mockRepo.EXPECT().ListUsers(gomock.Any(), gomock.Any()).Return(expected, 12, nil)

	userList, meta, err := uc.ListUsers(context.Background(), models.ListQuery{Page: 2, Limit: 5})

	assert.NoError(t, err)
	assert.Equal(t, expected, userList)
	assert.Equal(t, 12, meta.Total)
	assert.Equal(t, 3, meta.TotalPage)
	assert.Equal(t, 2, meta.Page)
}

func TestUpdateUser_InvalidRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(testConfig(), mockRepo)

	badRole := "owner"
	_, err := uc.UpdateUser(context.Background(), uuid.New(), &models.UserUpdate{Role: &badRole})

	assert.Error(t, err)
	appErr, _ := apperrors.As(err)
	assert.Equal(t, apperrors.TypeValidation, appErr.Type)
}

func TestDeleteUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(testConfig(), mockRepo)

	id := uuid.New()
	mockRepo.EXPECT().DeleteUser(gomock.Any(), id).Return(apperrors.NewNotFound("user not found"))

	err := uc.DeleteUser(context.Background(), id)

	assert.Error(t, err)
	appErr, _ := apperrors.As(err)
	assert.Equal(t, apperrors.TypeNotFound, appErr.Type)
}
