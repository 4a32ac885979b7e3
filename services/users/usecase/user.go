package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rentride/rentride/internal/pkg/apperrors"
	"github.com/rentride/rentride/internal/pkg/logger"
	"github.com/rentride/rentride/internal/pkg/models"
)

// CreateUser registers a new account. The password is stored bcrypt-hashed
// and the role defaults to "user" when the request leaves it empty.
func (uc *UserUC) CreateUser(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if err := validateRegister(req); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), uc.cfg.Bcrypt.Cost)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	user := &models.User{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(req.Name),
		Email:    normalizeEmail(req.Email),
		Password: string(hashed),
		Role:     role,
	}
	if req.Img != "" {
		user.Img = &req.Img
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("user created",
		logger.String("user_id", user.ID.String()),
		logger.String("role", user.Role))

	return user, nil
}

// GetUserByID returns a user with their rents eager-loaded
func (uc *UserUC) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return uc.userRepo.GetUserByID(ctx, id)
}

// ListUsers returns a filtered, paginated page of users
func (uc *UserUC) ListUsers(ctx context.Context, q models.ListQuery) ([]*models.User, models.Meta, error) {
	q.Normalize()

	userList, total, err := uc.userRepo.ListUsers(ctx, q)
	if err != nil {
		return nil, models.Meta{}, err
	}

	return userList, models.NewMeta(q, total), nil
}

// UpdateUser applies a partial update to a user record
func (uc *UserUC) UpdateUser(ctx context.Context, id uuid.UUID, upd *models.UserUpdate) (*models.User, error) {
	if upd == nil {
		return nil, apperrors.NewValidation("no fields to update")
	}
	if upd.Role != nil && !models.ValidRole(*upd.Role) {
		return nil, apperrors.NewValidation("invalid role").
			WithSource("role", "must be one of admin, user, driver")
	}
	if upd.Email != nil {
		normalized := normalizeEmail(*upd.Email)
		if normalized == "" {
			return nil, apperrors.NewValidation("invalid email").
				WithSource("email", "must not be empty")
		}
		upd.Email = &normalized
	}

	return uc.userRepo.UpdateUser(ctx, id, upd)
}

// DeleteUser removes a user record
func (uc *UserUC) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := uc.userRepo.DeleteUser(ctx, id); err != nil {
		return err
	}

	logger.Info("user deleted", logger.String("user_id", id.String()))
	return nil
}

func validateRegister(req *models.RegisterRequest) error {
	appErr := apperrors.NewValidation("invalid registration payload")
	if strings.TrimSpace(req.Name) == "" {
		appErr = appErr.WithSource("name", "must not be empty")
	}
	if normalizeEmail(req.Email) == "" || !strings.Contains(req.Email, "@") {
		appErr = appErr.WithSource("email", "must be a valid email address")
	}
	if len(req.Password) < 6 {
		appErr = appErr.WithSource("password", "must be at least 6 characters")
	}
	if req.Role != "" && !models.ValidRole(req.Role) {
		appErr = appErr.WithSource("role", "must be one of admin, user, driver")
	}
	if len(appErr.Sources) > 0 {
		return appErr
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
