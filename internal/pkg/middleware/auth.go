// Package middleware implements the request guard layer: bearer credential
// extraction, session token verification and composable role checks.
package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/epickup/epickup-backend/internal/pkg/apperrors"
	jwtpkg "github.com/epickup/epickup-backend/internal/pkg/jwt"
	"github.com/epickup/epickup-backend/internal/pkg/models"
	"github.com/epickup/epickup-backend/internal/utils"
)

// Context keys for the resolved identity.
const (
	ContextKeyUID   = "uid"
	ContextKeyRole  = "role"
	ContextKeyPhone = "phone"
	ContextKeyName  = "name"
	ContextKeyToken = "access_token"
)

// ExtractBearerToken pulls the bearer credential from the Authorization
// header. Absence or a bad scheme is an immediate authorization failure.
func ExtractBearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", apperrors.Unauthorized("authorization header is required")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", apperrors.Unauthorized("invalid authorization format, expected Bearer token")
	}
	return parts[1], nil
}

// SessionAuth verifies a backend-issued access token and attaches the
// resolved identity to the request context. This path never accepts an
// oracle ID token; the token exchange endpoint is the only door for those.
// No store writes happen here.
func SessionAuth(issuer *jwtpkg.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := ExtractBearerToken(c)
			if err != nil {
				return utils.AppErrorResponse(c, err)
			}

			claims, err := issuer.VerifyAccessToken(c.Request().Context(), tokenString)
			if err != nil {
				return utils.AppErrorResponse(c, mapTokenError(err))
			}

			c.Set(ContextKeyUID, claims.UID)
			c.Set(ContextKeyRole, claims.Role)
			c.Set(ContextKeyPhone, claims.Phone)
			c.Set(ContextKeyName, claims.Name)
			c.Set(ContextKeyToken, tokenString)

			return next(c)
		}
	}
}

// RequireRoles allows the request through only when the attached role is in
// the allow-list. A resolved but mismatched identity gets 403, never 401.
func RequireRoles(roles ...models.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r.String()] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(string)
			if !ok || role == "" {
				return utils.AppErrorResponse(c, apperrors.Unauthorized("no authenticated identity"))
			}
			if _, ok := allowed[role]; !ok {
				return utils.AppErrorResponse(c, apperrors.Forbidden())
			}
			return next(c)
		}
	}
}

// mapTokenError translates session token verification failures to the
// error taxonomy, keeping each sub-kind distinguishable.
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
		// Blacklist store failure or other infrastructure error.
		return apperrors.UpstreamUnavailable(err)
	}
}
