// Package jwt issues and verifies the backend's own session tokens. The
// token subject is always the derived identity key, never the oracle's raw
// subject id, so sessions stay bound to one role-scoped account.
package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/epickup/epickup-backend/internal/pkg/models"
)

// Token types carried in the "typ" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Verification failure kinds. Each must stay distinguishable so the guard
// layer can map them to distinct machine codes.
var (
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenMalformed   = errors.New("token malformed or signature invalid")
	ErrTokenWrongType   = errors.New("token has wrong type")
	ErrTokenBlacklisted = errors.New("token blacklisted")
)

// Claims represents session token claims
type Claims struct {
	UID         string `json:"uid"`
	Role        string `json:"role"`
	Phone       string `json:"phone"`
	Name        string `json:"name,omitempty"`
	OriginalUID string `json:"orig_uid,omitempty"`
	TokenType   string `json:"typ"`
	jwt.RegisteredClaims
}

// BlacklistChecker reports whether a token id has been revoked or spent.
// Consulted before signature-valid claims are trusted.
type BlacklistChecker interface {
	IsTokenBlacklisted(ctx context.Context, jti string) (bool, error)
}

// Issuer mints and verifies access/refresh token pairs.
type Issuer struct {
	cfg       models.JWTConfig
	blacklist BlacklistChecker
}

// NewIssuer creates a session token issuer.
func NewIssuer(cfg models.JWTConfig, blacklist BlacklistChecker) *Issuer {
	return &Issuer{cfg: cfg, blacklist: blacklist}
}

// AccessTTL returns the configured access token lifetime.
func (i *Issuer) AccessTTL() time.Duration {
	return time.Duration(i.cfg.AccessExpiration) * time.Minute
}

// RefreshTTL returns the configured refresh token lifetime.
func (i *Issuer) RefreshTTL() time.Duration {
	return time.Duration(i.cfg.RefreshExpiration) * time.Hour
}

// IssueAccessToken mints a short-lived access token for the subject.
func (i *Issuer) IssueAccessToken(subject models.SessionSubject) (string, int64, error) {
	return i.issue(subject, TokenTypeAccess, i.AccessTTL())
}

// IssueRefreshToken mints a long-lived refresh token for the subject.
func (i *Issuer) IssueRefreshToken(subject models.SessionSubject) (string, int64, error) {
	return i.issue(subject, TokenTypeRefresh, i.RefreshTTL())
}

func (i *Issuer) issue(subject models.SessionSubject, tokenType string, ttl time.Duration) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := Claims{
		UID:         subject.UID,
		Role:        subject.Role.String(),
		Phone:       subject.PhoneNumber,
		Name:        subject.Name,
		OriginalUID: subject.OriginalUID,
		TokenType:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.UID,
			Issuer:    i.cfg.Issuer,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(i.cfg.Secret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, expiresAt.Unix(), nil
}

// VerifyAccessToken validates an access token for the request-auth path.
// A refresh token presented here fails with ErrTokenWrongType.
func (i *Issuer) VerifyAccessToken(ctx context.Context, tokenString string) (*Claims, error) {
	return i.verify(ctx, tokenString, TokenTypeAccess)
}

// VerifyRefreshToken validates a refresh token for the rotation path.
// An access token presented here fails with ErrTokenWrongType.
func (i *Issuer) VerifyRefreshToken(ctx context.Context, tokenString string) (*Claims, error) {
	return i.verify(ctx, tokenString, TokenTypeRefresh)
}

func (i *Issuer) verify(ctx context.Context, tokenString, wantType string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(i.cfg.Secret), nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}
	if !token.Valid {
		return nil, ErrTokenMalformed
	}

	// The issuer always sets an expiry; a signed token without one was not
	// minted here, and downstream revocation math depends on it.
	if claims.ExpiresAt == nil {
		return nil, ErrTokenMalformed
	}

	if claims.TokenType != wantType {
		return nil, ErrTokenWrongType
	}

	if i.blacklist != nil && claims.ID != "" {
		revoked, err := i.blacklist.IsTokenBlacklisted(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("blacklist check failed: %w", err)
		}
		if revoked {
			return nil, ErrTokenBlacklisted
		}
	}

	return claims, nil
}
