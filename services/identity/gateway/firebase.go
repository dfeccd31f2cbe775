package gateway

import (
	"context"
	"errors"

	fbauth "firebase.google.com/go/v4/auth"

	"github.com/epickup/epickup-backend/internal/pkg/apperrors"
	"github.com/epickup/epickup-backend/internal/pkg/models"
)

// VerifyIDToken validates a Firebase ID token, bounded by the configured
// timeout, and extracts the trusted identity. Revocation is checked so the
// revoked case stays distinguishable for audit.
func (g *IdentityGW) VerifyIDToken(ctx context.Context, idToken string) (*models.OracleIdentity, error) {
	ctx, cancel := context.WithTimeout(ctx, g.verifyTimeout)
	defer cancel()

	token, err := g.client.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		return nil, mapVerifyError(err)
	}

	identity := &models.OracleIdentity{
		UID:    token.UID,
		Claims: token.Claims,
	}
	if phone, ok := token.Claims["phone_number"].(string); ok {
		identity.PhoneNumber = phone
	}
	if name, ok := token.Claims["name"].(string); ok {
		identity.Name = name
	}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		identity.Picture = picture
	}

	return identity, nil
}

// SyncRoleClaims pushes the derived identity key and role into the raw
// subject's custom claims, so future oracle-issued tokens already carry
// the resolved role. The caller treats failures as non-fatal.
func (g *IdentityGW) SyncRoleClaims(ctx context.Context, originalUID, accountID string, role models.Role) error {
	claims := map[string]interface{}{
		"epickup_uid": accountID,
		"role":        role.String(),
	}
	if err := g.client.SetCustomUserClaims(ctx, originalUID, claims); err != nil {
		return apperrors.UpstreamUnavailable(err)
	}
	return nil
}

// mapVerifyError translates Firebase SDK failures to the error taxonomy.
// A timeout is an infrastructure failure, never an invalid credential.
func mapVerifyError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		return apperrors.UpstreamUnavailable(err)
	case fbauth.IsIDTokenExpired(err):
		return apperrors.CredentialExpired(err)
	case fbauth.IsIDTokenRevoked(err):
		return apperrors.CredentialRevoked(err)
	case fbauth.IsUserDisabled(err):
		return apperrors.AccountInactive()
	default:
		return apperrors.InvalidCredential(err)
	}
}
