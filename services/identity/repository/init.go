package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/epickup/epickup-backend/internal/pkg/database"
	"github.com/epickup/epickup-backend/internal/pkg/models"
)

// AccountRepo implements the account store over PostgreSQL
type AccountRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAccountRepo creates a new account repository
func NewAccountRepo(cfg *models.Config, db *sqlx.DB) *AccountRepo {
	return &AccountRepo{
		cfg: cfg,
		db:  db,
	}
}

// TokenRepo implements session token state tracking over Redis
type TokenRepo struct {
	redisClient *database.RedisClient
}

// NewTokenRepo creates a new token state repository
func NewTokenRepo(redisClient *database.RedisClient) *TokenRepo {
	return &TokenRepo{
		redisClient: redisClient,
	}
}
