package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/epickup/epickup-backend/internal/pkg/constants"
)

// BlacklistToken marks a token id revoked for the remainder of its life.
// Covers logout (access tokens) and rotation (spent refresh tokens).
func (r *TokenRepo) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already past expiry; verification rejects it anyway.
		return nil
	}
	key := fmt.Sprintf(constants.KeyTokenBlacklist, jti)
	if err := r.redisClient.Set(ctx, key, "revoked", ttl); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

// IsTokenBlacklisted reports whether a token id has been revoked or spent
func (r *TokenRepo) IsTokenBlacklisted(ctx context.Context, jti string) (bool, error) {
	key := fmt.Sprintf(constants.KeyTokenBlacklist, jti)
	exists, err := r.redisClient.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return exists, nil
}
