package identity

import (
	"context"
	"encoding/json"
	"time"

	"github.com/epickup/epickup-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/epickup/epickup-backend/services/identity AccountRepo,TokenRepo

// AccountRepo is the role-scoped account store: a get/set interface keyed
// by the derived identity key.
type AccountRepo interface {
	GetAccount(ctx context.Context, id string) (*models.Account, error)

	// CreateAccount persists a new record. It reports false without error
	// when a record under the same key already exists, so concurrent
	// get-or-create races converge on the deterministic key.
	CreateAccount(ctx context.Context, account *models.Account) (bool, error)

	TouchLastLogin(ctx context.Context, id string) error
	GetAccountsByPhone(ctx context.Context, phone string) ([]*models.Account, error)
	SetAccountActive(ctx context.Context, id string, active bool) error
	UpdateRolePayload(ctx context.Context, id string, payload json.RawMessage) error
}

// TokenRepo tracks revoked and spent session token ids.
type TokenRepo interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
	IsTokenBlacklisted(ctx context.Context, jti string) (bool, error)
}
