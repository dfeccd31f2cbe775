package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/epickup/epickup-backend/internal/pkg/logger"
	"github.com/epickup/epickup-backend/internal/pkg/middleware"
	"github.com/epickup/epickup-backend/internal/pkg/models"
	"github.com/epickup/epickup-backend/internal/utils"
	"github.com/epickup/epickup-backend/services/identity"
)

// AuthHandler handles the token exchange and session lifecycle endpoints
type AuthHandler struct {
	identityUC identity.IdentityUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(identityUC identity.IdentityUC) *AuthHandler {
	return &AuthHandler{identityUC: identityUC}
}

// VerifyToken exchanges an oracle-issued ID token for a role-scoped session
func (h *AuthHandler) VerifyToken(c echo.Context) error {
	var req models.VerifyTokenRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for token exchange",
			logger.ErrorField(err),
			logger.String("endpoint", "VerifyToken"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.identityUC.VerifyFirebaseToken(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Token exchange failed",
			logger.ErrorField(err),
			logger.String("user_type", req.UserType),
		)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, resp)
}

// Refresh rotates a refresh token into a new access/refresh pair
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req models.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.identityUC.RefreshSession(c.Request().Context(), req.RefreshToken)
	if err != nil {
		logger.Warn("Session refresh failed", logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, resp)
}

// Logout revokes the presented access token
func (h *AuthHandler) Logout(c echo.Context) error {
	token, err := middleware.ExtractBearerToken(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	if err := h.identityUC.Logout(c.Request().Context(), token); err != nil {
		logger.Warn("Logout failed", logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, map[string]string{"message": "logged out"})
}

// Roles lists the role-scoped identities a phone number holds
func (h *AuthHandler) Roles(c echo.Context) error {
	phone := c.QueryParam("phone")
	if phone == "" {
		return utils.BadRequestResponse(c, "phone query parameter is required")
	}

	entries, err := h.identityUC.RolesForPhone(c.Request().Context(), phone)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, map[string]interface{}{"roles": entries})
}
