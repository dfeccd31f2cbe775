package usecase

import (
	"time"

	jwtpkg "github.com/epickup/epickup-backend/internal/pkg/jwt"
	"github.com/epickup/epickup-backend/internal/pkg/models"
	"github.com/epickup/epickup-backend/internal/pkg/retry"
	"github.com/epickup/epickup-backend/services/identity"
)

// IdentityUC implements the identity usecase
type IdentityUC struct {
	cfg         *models.Config
	accountRepo identity.AccountRepo
	tokenRepo   identity.TokenRepo
	identityGW  identity.IdentityGW
	issuer      *jwtpkg.Issuer
	retrier     *retry.Retrier
}

// NewIdentityUC creates a new identity usecase
func NewIdentityUC(
	cfg *models.Config,
	accountRepo identity.AccountRepo,
	tokenRepo identity.TokenRepo,
	identityGW identity.IdentityGW,
	issuer *jwtpkg.Issuer,
) *IdentityUC {
	return &IdentityUC{
		cfg:         cfg,
		accountRepo: accountRepo,
		tokenRepo:   tokenRepo,
		identityGW:  identityGW,
		issuer:      issuer,
		retrier: retry.New(retry.Config{
			MaxRetries: 2,
			BaseDelay:  200 * time.Millisecond,
			MaxDelay:   2 * time.Second,
			Multiplier: 2.0,
			Jitter:     true,
			RetryableFunc: func(err error) bool {
				return true
			},
		}),
	}
}
