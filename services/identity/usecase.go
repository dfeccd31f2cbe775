package identity

import (
	"context"

	"github.com/epickup/epickup-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/epickup/epickup-backend/services/identity IdentityUC

// IdentityUC is the identity service usecase interface
type IdentityUC interface {
	// token exchange: oracle credential in, role-scoped session out
	VerifyFirebaseToken(ctx context.Context, req *models.VerifyTokenRequest) (*models.AuthResponse, error)

	// session lifecycle
	RefreshSession(ctx context.Context, refreshToken string) (*models.RefreshResponse, error)
	Logout(ctx context.Context, accessToken string) error

	// identity resolution
	GetAccount(ctx context.Context, id string) (*models.Account, error)
	RolesForPhone(ctx context.Context, phone string) ([]models.RoleEntry, error)

	// role-specific profile operations
	SetDriverAvailability(ctx context.Context, id string, available bool) (*models.Account, error)
	SetAccountActive(ctx context.Context, id string, active bool) (*models.Account, error)
}
