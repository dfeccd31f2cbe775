package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epickup/epickup-backend/internal/pkg/apperrors"
	jwtpkg "github.com/epickup/epickup-backend/internal/pkg/jwt"
	"github.com/epickup/epickup-backend/internal/pkg/models"
)

type allowAllBlacklist struct{}

func (allowAllBlacklist) IsTokenBlacklisted(ctx context.Context, jti string) (bool, error) {
	return false, nil
}

func newTestIssuer() *jwtpkg.Issuer {
	return jwtpkg.NewIssuer(models.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "epickup-test",
		AccessExpiration:  60,
		RefreshExpiration: 168,
	}, allowAllBlacklist{})
}

func doRequest(t *testing.T, mw []echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	e := echo.New()
	handler := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"uid":  c.Get(ContextKeyUID),
			"role": c.Get(ContextKeyRole),
		})
	}
	for i := len(mw) - 1; i >= 0; i-- {
		handler = mw[i](handler)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler(c)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func errorCode(t *testing.T, body map[string]interface{}) string {
	t.Helper()
	errBody, ok := body["error"].(map[string]interface{})
	require.True(t, ok, "response must carry an error body: %v", body)
	code, _ := errBody["code"].(string)
	return code
}

func TestSessionAuth_MissingHeader(t *testing.T) {
	issuer := newTestIssuer()
	rec, body := doRequest(t, []echo.MiddlewareFunc{SessionAuth(issuer)}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apperrors.CodeUnauthorized, errorCode(t, body))
}

func TestSessionAuth_BadScheme(t *testing.T) {
	issuer := newTestIssuer()
	rec, body := doRequest(t, []echo.MiddlewareFunc{SessionAuth(issuer)}, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apperrors.CodeUnauthorized, errorCode(t, body))
}

func TestSessionAuth_MalformedToken(t *testing.T) {
	issuer := newTestIssuer()
	rec, body := doRequest(t, []echo.MiddlewareFunc{SessionAuth(issuer)}, "Bearer not-a-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apperrors.CodeTokenMalformed, errorCode(t, body))
}

func TestSessionAuth_RefreshTokenRejected(t *testing.T) {
	issuer := newTestIssuer()
	refresh, _, err := issuer.IssueRefreshToken(models.SessionSubject{
		UID: "abc123", Role: models.RoleCustomer, PhoneNumber: "+919876543210",
	})
	require.NoError(t, err)

	rec, body := doRequest(t, []echo.MiddlewareFunc{SessionAuth(issuer)}, "Bearer "+refresh)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apperrors.CodeTokenWrongType, errorCode(t, body))
}

func TestSessionAuth_ValidTokenAttachesIdentity(t *testing.T) {
	issuer := newTestIssuer()
	token, _, err := issuer.IssueAccessToken(models.SessionSubject{
		UID: "abc123", Role: models.RoleDriver, PhoneNumber: "+919876543210", Name: "Asha D.",
	})
	require.NoError(t, err)

	rec, body := doRequest(t, []echo.MiddlewareFunc{SessionAuth(issuer)}, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc123", body["uid"])
	assert.Equal(t, "driver", body["role"])
}

func TestRequireRoles_Mismatch(t *testing.T) {
	issuer := newTestIssuer()
	token, _, err := issuer.IssueAccessToken(models.SessionSubject{
		UID: "abc123", Role: models.RoleDriver, PhoneNumber: "+919876543210",
	})
	require.NoError(t, err)

	// Driver hitting an admin-only endpoint gets Forbidden, not Unauthorized.
	rec, body := doRequest(t, []echo.MiddlewareFunc{
		SessionAuth(issuer),
		RequireRoles(models.RoleAdmin),
	}, "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apperrors.CodeForbidden, errorCode(t, body))
}

func TestRequireRoles_Match(t *testing.T) {
	issuer := newTestIssuer()
	token, _, err := issuer.IssueAccessToken(models.SessionSubject{
		UID: "abc123", Role: models.RoleAdmin, PhoneNumber: "+919876543210",
	})
	require.NoError(t, err)

	rec, _ := doRequest(t, []echo.MiddlewareFunc{
		SessionAuth(issuer),
		RequireRoles(models.RoleAdmin, models.RoleDriver),
	}, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoles_NoIdentity(t *testing.T) {
	// Role guard without prior authentication middleware.
	rec, body := doRequest(t, []echo.MiddlewareFunc{RequireRoles(models.RoleAdmin)}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apperrors.CodeUnauthorized, errorCode(t, body))
}
