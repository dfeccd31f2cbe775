package identity

import (
	"context"

	"github.com/epickup/epickup-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/epickup/epickup-backend/services/identity IdentityGW

// IdentityGW is the boundary to the external identity provider: credential
// verification and best-effort claims synchronization.
type IdentityGW interface {
	// VerifyIDToken validates an oracle-issued bearer credential and
	// yields the trusted (subject, phone) pair. Failures are typed per
	// the error taxonomy and never collapse into "no identity".
	VerifyIDToken(ctx context.Context, idToken string) (*models.OracleIdentity, error)

	// SyncRoleClaims pushes the resolved identity key and role back into
	// the oracle's claim store for the raw subject. Best-effort: callers
	// log failures and continue.
	SyncRoleClaims(ctx context.Context, originalUID, accountID string, role models.Role) error
}
