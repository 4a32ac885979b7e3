package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentride/rentride/internal/pkg/apperrors"
	"github.com/rentride/rentride/internal/pkg/models"
)

func setupUserRepoTest(t *testing.T) (*UserRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &UserRepo{
		db:  sqlxDB,
		cfg: &models.Config{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func userRows(users ...*models.User) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "name", "email", "password", "role", "img", "rating", "created_at", "updated_at"})
	for _, u := range users {
		rows.AddRow(u.ID, u.Name, u.Email, u.Password, u.Role, u.Img, u.Rating, u.CreatedAt, u.UpdatedAt)
	}
	return rows
}

func TestCreateUser(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	user := &models.User{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "hashed",
		Role:     models.RoleUser,
	}

	mock.ExpectExec("^INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateUser(context.Background(), user)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	userID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	now := time.Now()
	stored := &models.User{
		ID: userID, Name: "John Doe", Email: "john@example.com",
		Password: "hashed", Role: models.RoleUser, CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectQuery("^SELECT (.+) FROM users WHERE email").
		WithArgs("john@example.com").
		WillReturnRows(userRows(stored))

	user, err := repo.GetUserByEmail(context.Background(), "john@example.com")

	assert.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "John Doe", user.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT (.+) FROM users WHERE email").
		WithArgs("missing@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByEmail(context.Background(), "missing@example.com")

	assert.Error(t, err)
	appErr, ok := apperrors.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.TypeNotFound, appErr.Type)
}

func TestGetUserByID_EagerLoadsRents(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	rentID := uuid.New()
	carID := uuid.New()
	now := time.Now()
	stored := &models.User{
		ID: userID, Name: "John Doe", Email: "john@example.com",
		Password: "hashed", Role: models.RoleUser, CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectQuery("^SELECT (.+) FROM users WHERE id").
		WithArgs(userID).
		WillReturnRows(userRows(stored))

	rentRows := sqlmock.NewRows([]string{"id", "user_id", "car_id", "rent_status", "starting_point", "destination", "created_at", "updated_at"}).
		AddRow(rentID, userID, carID, models.RentStatusPending, "Dhaka", "Sylhet", now, now)
	mock.ExpectQuery("^SELECT (.+) FROM rents WHERE user_id").
		WithArgs(userID).
		WillReturnRows(rentRows)

	user, err := repo.GetUserByID(context.Background(), userID)

	assert.NoError(t, err)
	require.Len(t, user.Rents, 1)
	assert.Equal(t, rentID, user.Rents[0].ID)
	assert.Equal(t, models.RentStatusPending, user.Rents[0].RentStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsers(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	now := time.Now()
	stored := &models.User{
		ID: uuid.New(), Name: "John Doe", Email: "john@example.com",
		Password: "hashed", Role: models.RoleAdmin, CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectQuery("^SELECT COUNT").
		WithArgs(models.RoleAdmin).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("^SELECT (.+) FROM users WHERE").
		WithArgs(models.RoleAdmin, 10, 0).
		WillReturnRows(userRows(stored))

	q := models.ListQuery{Filters: map[string]string{"role": models.RoleAdmin}}
	q.Normalize()

	users, total, err := repo.ListUsers(context.Background(), q)

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsers_UnknownFilterRejected(t *testing.T) {
	repo, _, cleanup := setupUserRepoTest(t)
	defer cleanup()

	q := models.ListQuery{Filters: map[string]string{"password": "x"}}
	q.Normalize()

	_, _, err := repo.ListUsers(context.Background(), q)

	assert.Error(t, err)
	appErr, ok := apperrors.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.TypeValidation, appErr.Type)
}

func TestUpdateUser_PartialFields(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	now := time.Now()
	newName := "Jane Doe"
	updated := &models.User{
		ID: userID, Name: newName, Email: "john@example.com",
		Password: "hashed", Role: models.RoleUser, CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectQuery("^UPDATE users SET").
		WithArgs(newName, userID).
		WillReturnRows(userRows(updated))

	user, err := repo.UpdateUser(context.Background(), userID, &models.UserUpdate{Name: &newName})

	assert.NoError(t, err)
	assert.Equal(t, newName, user.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	mock.ExpectExec("^DELETE FROM users").
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteUser(context.Background(), userID)

	assert.Error(t, err)
	appErr, ok := apperrors.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.TypeNotFound, appErr.Type)
}
