package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/epickup/epickup-backend/internal/pkg/apperrors"
	"github.com/epickup/epickup-backend/internal/pkg/idkey"
	jwtpkg "github.com/epickup/epickup-backend/internal/pkg/jwt"
	"github.com/epickup/epickup-backend/internal/pkg/logger"
	"github.com/epickup/epickup-backend/internal/pkg/models"
	"github.com/epickup/epickup-backend/internal/utils"
)

// VerifyFirebaseToken exchanges an oracle-issued ID token for a role-scoped
// backend session. One phone number may hold one account per role; the
// derived identity key keeps them from colliding.
func (u *IdentityUC) VerifyFirebaseToken(ctx context.Context, req *models.VerifyTokenRequest) (*models.AuthResponse, error) {
	if req.IDToken == "" {
		return nil, apperrors.BadRequest("idToken is required")
	}

	// Role validation happens before any oracle or store access, and an
	// unknown role is rejected, never defaulted to customer.
	role, err := models.ParseRole(req.UserType)
	if err != nil {
		return nil, apperrors.InvalidRole(err)
	}

	oracleID, err := u.identityGW.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		return nil, err
	}

	phone, err := utils.NormalizePhone(oracleID.PhoneNumber)
	if err != nil {
		// A verified credential without a usable phone number cannot be
		// mapped to a role-scoped identity.
		return nil, apperrors.InvalidCredential(err)
	}

	key, err := idkey.Derive(phone, role)
	if err != nil {
		return nil, apperrors.InvalidRole(err)
	}

	account, err := u.getOrCreateAccount(ctx, key, phone, role, oracleID, req.Name)
	if err != nil {
		return nil, err
	}

	// Best-effort: future oracle tokens for this subject then already
	// carry the resolved role. Failure never blocks the session.
	u.syncClaims(ctx, oracleID.UID, key, role)

	subject := models.SessionSubject{
		UID:         account.ID,
		Role:        account.Role,
		PhoneNumber: account.PhoneNumber,
		Name:        account.FullName,
		OriginalUID: oracleID.UID,
	}

	accessToken, _, err := u.issuer.IssueAccessToken(subject)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	refreshToken, _, err := u.issuer.IssueRefreshToken(subject)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	logger.Info("Issued role-scoped session",
		logger.String("uid", account.ID),
		logger.String("role", account.Role.String()))

	return &models.AuthResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.issuer.AccessTTL().Seconds()),
		User: models.AuthUser{
			UID:         account.ID,
			OriginalUID: account.OriginalUID,
			PhoneNumber: account.PhoneNumber,
			UserType:    account.Role.String(),
			Name:        account.FullName,
		},
	}, nil
}

// getOrCreateAccount resolves the account record for a derived key. A plain
// lookup only touches the last-seen timestamp; payload fields written by
// business services survive every subsequent login.
func (u *IdentityUC) getOrCreateAccount(ctx context.Context, key, phone string, role models.Role, oracleID *models.OracleIdentity, name string) (*models.Account, error) {
	account, err := u.accountRepo.GetAccount(ctx, key)
	if err == nil {
		if !account.IsActive {
			return nil, apperrors.AccountInactive()
		}
		if touchErr := u.accountRepo.TouchLastLogin(ctx, key); touchErr != nil {
			logger.Warn("Failed to touch last login",
				logger.String("uid", key),
				logger.Err(touchErr))
		}
		return account, nil
	}
	if !apperrors.HasCode(err, apperrors.CodeAccountNotFound) {
		return nil, apperrors.UpstreamUnavailable(err)
	}

	payload, err := models.DefaultPayload(role)
	if err != nil {
		return nil, apperrors.InvalidRole(err)
	}
	if name == "" {
		name = oracleID.Name
	}

	account = &models.Account{
		ID:          key,
		OriginalUID: oracleID.UID,
		PhoneNumber: phone,
		FullName:    name,
		Role:        role,
		IsVerified:  true,
		IsActive:    true,
		Payload:     payload,
	}

	inserted, err := u.accountRepo.CreateAccount(ctx, account)
	if err != nil {
		return nil, apperrors.UpstreamUnavailable(err)
	}
	if !inserted {
		// Lost a create race on the deterministic key; the surviving
		// record is the same logical identity.
		account, err = u.accountRepo.GetAccount(ctx, key)
		if err != nil {
			return nil, apperrors.UpstreamUnavailable(err)
		}
		return account, nil
	}

	logger.Info("Created role-scoped account",
		logger.String("uid", key),
		logger.String("role", role.String()))
	return account, nil
}

func (u *IdentityUC) syncClaims(ctx context.Context, originalUID, key string, role models.Role) {
	err := u.retrier.Execute(ctx, func(ctx context.Context) error {
		return u.identityGW.SyncRoleClaims(ctx, originalUID, key, role)
	})
	if err != nil {
		logger.Warn("Claims synchronization failed, continuing without it",
			logger.String("original_uid", originalUID),
			logger.String("uid", key),
			logger.Err(err))
	}
}

// RefreshSession rotates a refresh token: the presented token is consumed
// and a brand-new access/refresh pair is issued. A spent token can never
// be refreshed again.
func (u *IdentityUC) RefreshSession(ctx context.Context, refreshToken string) (*models.RefreshResponse, error) {
	if refreshToken == "" {
		return nil, apperrors.BadRequest("refreshToken is required")
	}

	claims, err := u.issuer.VerifyRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, mapTokenError(err)
	}

	// The token subject must still resolve to a live account of the
	// embedded role.
	account, err := u.accountRepo.GetAccount(ctx, claims.UID)
	if err != nil {
		if apperrors.HasCode(err, apperrors.CodeAccountNotFound) {
			return nil, apperrors.TokenMalformed(errors.New("token subject does not resolve to an account"))
		}
		return nil, apperrors.UpstreamUnavailable(err)
	}
	if account.Role.String() != claims.Role {
		return nil, apperrors.TokenMalformed(errors.New("token role does not match account role"))
	}
	if !account.IsActive {
		return nil, apperrors.AccountInactive()
	}

	// Consume the presented token before minting the new pair; if the
	// state write fails the rotation fails, keeping refresh single-use.
	remaining := time.Until(claims.ExpiresAt.Time)
	if err := u.tokenRepo.BlacklistToken(ctx, claims.ID, remaining); err != nil {
		return nil, apperrors.UpstreamUnavailable(err)
	}

	subject := models.SessionSubject{
		UID:         account.ID,
		Role:        account.Role,
		PhoneNumber: account.PhoneNumber,
		Name:        account.FullName,
		OriginalUID: claims.OriginalUID,
	}

	newAccess, _, err := u.issuer.IssueAccessToken(subject)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	newRefresh, _, err := u.issuer.IssueRefreshToken(subject)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &models.RefreshResponse{
		Token:        newAccess,
		RefreshToken: newRefresh,
		ExpiresIn:    int64(u.issuer.AccessTTL().Seconds()),
	}, nil
}

// Logout blacklists the presented access token for the remainder of its
// life, so it fails verification immediately.
func (u *IdentityUC) Logout(ctx context.Context, accessToken string) error {
	claims, err := u.issuer.VerifyAccessToken(ctx, accessToken)
	if err != nil {
		return mapTokenError(err)
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if err := u.tokenRepo.BlacklistToken(ctx, claims.ID, remaining); err != nil {
		return apperrors.UpstreamUnavailable(err)
	}

	logger.Info("Session revoked", logger.String("uid", claims.UID))
	return nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwtpkg.ErrTokenExpired):
		return apperrors.TokenExpired(err)
	case errors.Is(err, jwtpkg.ErrTokenWrongType):
		return apperrors.TokenWrongType(err)
	case errors.Is(err, jwtpkg.ErrTokenBlacklisted):
		return apperrors.TokenBlacklisted(err)
	case errors.Is(err, jwtpkg.ErrTokenMalformed):
		return apperrors.TokenMalformed(err)
	default:
		return apperrors.UpstreamUnavailable(err)
	}
}
