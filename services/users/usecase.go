package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/rentride/rentride/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rentride/rentride/services/users UserUC

// UserUC defines the interface for user and auth business logic
type UserUC interface {
	CreateUser(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListUsers(ctx context.Context, q models.ListQuery) ([]*models.User, models.Meta, error)
	UpdateUser(ctx context.Context, id uuid.UUID, upd *models.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error

	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*models.AuthResponse, error)
}
