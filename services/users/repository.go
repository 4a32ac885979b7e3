package users

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rentride/rentride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rentride/rentride/services/users UserRepo

// UserRepo defines the interface for user data access operations
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context, q models.ListQuery) ([]*models.User, int, error)
	UpdateUser(ctx context.Context, id uuid.UUID, upd *models.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error

	// Refresh-token rotation store
	StoreRefreshToken(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error
	GetRefreshTokenID(ctx context.Context, userID uuid.UUID) (string, error)
	DeleteRefreshToken(ctx context.Context, userID uuid.UUID) error
}
