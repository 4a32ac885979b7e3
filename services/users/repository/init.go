package repository

import (
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/rentride/rentride/internal/pkg/models"
)

// UserRepo implements the user repository interface
type UserRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	redis *redis.Client
}

// NewUserRepo creates a new user repository instance
func NewUserRepo(cfg *models.Config, db *sqlx.DB, redisClient *redis.Client) *UserRepo {
	return &UserRepo{
		cfg:   cfg,
		db:    db,
		redis: redisClient,
	}
}
