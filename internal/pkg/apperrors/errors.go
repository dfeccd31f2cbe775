// Package apperrors defines the typed error taxonomy for the identity
// service. Every failure a handler can surface carries a stable machine
// code and an HTTP status, so expected failures are values, not panics
// or generic catch-alls.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Stable machine-readable error codes.
const (
	CodeInvalidCredential   = "INVALID_CREDENTIAL"
	CodeCredentialExpired   = "CREDENTIAL_EXPIRED"
	CodeCredentialRevoked   = "CREDENTIAL_REVOKED"
	CodeInvalidRole         = "INVALID_ROLE"
	CodeAccountInactive     = "ACCOUNT_INACTIVE"
	CodeAccountNotFound     = "ACCOUNT_NOT_FOUND"
	CodeTokenExpired        = "TOKEN_EXPIRED"
	CodeTokenMalformed      = "TOKEN_MALFORMED"
	CodeTokenWrongType      = "TOKEN_WRONG_TYPE"
	CodeTokenBlacklisted    = "TOKEN_BLACKLISTED"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	CodeBadRequest          = "BAD_REQUEST"
	CodeInternal            = "INTERNAL_ERROR"
)

// AppError is a typed application error with an HTTP mapping. The wrapped
// cause is kept for logs; handlers only ever expose Code and Message.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HasCode reports whether err is an AppError carrying the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// From extracts the AppError from err, or wraps it as an internal error.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// InvalidCredential means the oracle rejected the bearer credential as
// malformed or unrecognized. The client needs a fresh credential.
func InvalidCredential(err error) *AppError {
	return &AppError{Code: CodeInvalidCredential, Message: "invalid credential", Status: http.StatusUnauthorized, Err: err}
}

// CredentialExpired means the oracle-issued credential has expired.
func CredentialExpired(err error) *AppError {
	return &AppError{Code: CodeCredentialExpired, Message: "credential expired, please re-authenticate", Status: http.StatusUnauthorized, Err: err}
}

// CredentialRevoked means the oracle-issued credential was revoked.
// Kept distinct from expiry for audit.
func CredentialRevoked(err error) *AppError {
	return &AppError{Code: CodeCredentialRevoked, Message: "credential revoked, please re-authenticate", Status: http.StatusUnauthorized, Err: err}
}

// InvalidRole means the requested role is absent or outside the closed set.
func InvalidRole(err error) *AppError {
	return &AppError{Code: CodeInvalidRole, Message: "invalid or missing user type", Status: http.StatusBadRequest, Err: err}
}

// AccountInactive means the account record exists but is deactivated.
func AccountInactive() *AppError {
	return &AppError{Code: CodeAccountInactive, Message: "account is deactivated", Status: http.StatusForbidden}
}

// AccountNotFound means no account record exists for the key.
func AccountNotFound() *AppError {
	return &AppError{Code: CodeAccountNotFound, Message: "account not found", Status: http.StatusNotFound}
}

// TokenExpired means a backend session token is past its expiry.
func TokenExpired(err error) *AppError {
	return &AppError{Code: CodeTokenExpired, Message: "session token expired", Status: http.StatusUnauthorized, Err: err}
}

// TokenMalformed means a backend session token failed signature or
// structural validation.
func TokenMalformed(err error) *AppError {
	return &AppError{Code: CodeTokenMalformed, Message: "invalid session token", Status: http.StatusUnauthorized, Err: err}
}

// TokenWrongType means an access token was presented where a refresh token
// was required, or vice versa.
func TokenWrongType(err error) *AppError {
	return &AppError{Code: CodeTokenWrongType, Message: "wrong token type", Status: http.StatusUnauthorized, Err: err}
}

// TokenBlacklisted means the token was explicitly revoked or already spent.
func TokenBlacklisted(err error) *AppError {
	return &AppError{Code: CodeTokenBlacklisted, Message: "session token revoked", Status: http.StatusUnauthorized, Err: err}
}

// Unauthorized is the generic missing/invalid credential failure.
func Unauthorized(message string) *AppError {
	if message == "" {
		message = "authorization required"
	}
	return &AppError{Code: CodeUnauthorized, Message: message, Status: http.StatusUnauthorized}
}

// Forbidden means the identity is valid but the role does not satisfy the
// endpoint's guard. Distinct from Unauthorized.
func Forbidden() *AppError {
	return &AppError{Code: CodeForbidden, Message: "insufficient role", Status: http.StatusForbidden}
}

// UpstreamUnavailable means the oracle or the account store failed at the
// infrastructure level. Retryable by the client.
func UpstreamUnavailable(err error) *AppError {
	return &AppError{Code: CodeUpstreamUnavailable, Message: "upstream service unavailable, please retry", Status: http.StatusServiceUnavailable, Err: err}
}

// BadRequest is a request validation failure.
func BadRequest(message string) *AppError {
	return &AppError{Code: CodeBadRequest, Message: message, Status: http.StatusBadRequest}
}

// Internal wraps an unexpected error without leaking its text to clients.
func Internal(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "internal server error", Status: http.StatusInternalServerError, Err: err}
}
