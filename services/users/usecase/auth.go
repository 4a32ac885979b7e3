package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rentride/rentride/internal/pkg/apperrors"
	"github.com/rentride/rentride/internal/pkg/jwt"
	"github.com/rentride/rentride/internal/pkg/logger"
	"github.com/rentride/rentride/internal/pkg/models"
)

// Login authenticates by email and password. An unknown email registers a
// new account on the fly so social-login flows work with a single endpoint.
func (uc *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" {
		return nil, apperrors.NewValidation("invalid login payload").
			WithSource("email", "must not be empty")
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if appErr, ok := apperrors.As(err); ok && appErr.Type == apperrors.TypeNotFound {
			return uc.loginAsNewUser(ctx, req, email)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.NewNotFound("Password Incorrect!")
	}

	return uc.issueTokens(ctx, user)
}

// loginAsNewUser registers an account for an email seen for the first time
func (uc *UserUC) loginAsNewUser(ctx context.Context, req *models.LoginRequest, email string) (*models.AuthResponse, error) {
	name := req.Name
	if name == "" {
		name = email
	}
	password := req.Password
	if password == "" {
		password = uuid.New().String()
	}

	user, err := uc.CreateUser(ctx, &models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Img:      req.Img,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("registered user on first login", logger.String("user_id", user.ID.String()))
	return uc.issueTokens(ctx, user)
}

// RefreshToken rotates a refresh token. The presented token must carry the
// jti currently stored for the user; anything else is treated as replayed.
func (uc *UserUC) RefreshToken(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	claims, err := jwt.ValidateToken(refreshToken, uc.cfg.JWT.RefreshSecret)
	if err != nil {
		return nil, apperrors.NewBadRequest("invalid refresh token")
	}

	userIDStr, _ := claims["user_id"].(string)
	tokenID, _ := claims["jti"].(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil || tokenID == "" {
		return nil, apperrors.NewBadRequest("invalid refresh token")
	}

	storedID, err := uc.userRepo.GetRefreshTokenID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewBadRequest("refresh token expired or revoked")
	}
	if storedID != tokenID {
		// Stale or replayed token, revoke the whole session.
		_ = uc.userRepo.DeleteRefreshToken(ctx, userID)
		logger.Warn("refresh token reuse detected", logger.String("user_id", userID.String()))
		return nil, apperrors.NewBadRequest("refresh token expired or revoked")
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return uc.issueTokens(ctx, user)
}

// issueTokens creates an access/refresh pair and stores the refresh jti
func (uc *UserUC) issueTokens(ctx context.Context, user *models.User) (*models.AuthResponse, error) {
	accessToken, expiresAt, err := jwt.GenerateAccessToken(user, uc.cfg)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	refreshToken, tokenID, _, err := jwt.GenerateRefreshToken(user, uc.cfg)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	ttl := time.Duration(uc.cfg.JWT.RefreshExpiration) * time.Minute
	if err := uc.userRepo.StoreRefreshToken(ctx, user.ID, tokenID, ttl); err != nil {
		return nil, apperrors.NewInternal(err)
	}

	return &models.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       user.ID.String(),
		Role:         user.Role,
		ExpiresAt:    expiresAt,
	}, nil
}
