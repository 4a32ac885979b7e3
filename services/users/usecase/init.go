package usecase

import (
	"github.com/rentride/rentride/internal/pkg/models"
	"github.com/rentride/rentride/services/users"
)

// UserUC implements the user usecase interface
type UserUC struct {
	cfg      *models.Config
	userRepo users.UserRepo
}

// NewUserUC creates a new user usecase instance
func NewUserUC(cfg *models.Config, userRepo users.UserRepo) *UserUC {
	return &UserUC{
		cfg:      cfg,
		userRepo: userRepo,
	}
}
