package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rentride/rentride/internal/pkg/apperrors"
)

func refreshTokenKey(userID uuid.UUID) string {
	return fmt.Sprintf("auth:refresh:%s", userID)
}

// StoreRefreshToken records the active refresh token ID for a user.
// Storing a new ID invalidates the previous one (rotation).
func (r *UserRepo) StoreRefreshToken(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	if err := r.redis.Set(ctx, refreshTokenKey(userID), tokenID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

// GetRefreshTokenID returns the active refresh token ID for a user
func (r *UserRepo) GetRefreshTokenID(ctx context.Context, userID uuid.UUID) (string, error) {
	tokenID, err := r.redis.Get(ctx, refreshTokenKey(userID)).Result()
	if err == redis.Nil {
		return "", apperrors.NewNotFound("refresh token not found")
	}
	if err != nil {
		return "", fmt.Errorf("failed to get refresh token: %w", err)
	}
	return tokenID, nil
}

// DeleteRefreshToken removes the active refresh token for a user
func (r *UserRepo) DeleteRefreshToken(ctx context.Context, userID uuid.UUID) error {
	if err := r.redis.Del(ctx, refreshTokenKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}
