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

// AccountHandler handles account-facing HTTP requests
type AccountHandler struct {
	identityUC identity.IdentityUC
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(identityUC identity.IdentityUC) *AccountHandler {
	return &AccountHandler{identityUC: identityUC}
}

// Me returns the authenticated caller's account record
func (h *AccountHandler) Me(c echo.Context) error {
	uid, ok := c.Get(middleware.ContextKeyUID).(string)
	if !ok || uid == "" {
		return utils.UnauthorizedResponse(c, "no authenticated identity")
	}

	account, err := h.identityUC.GetAccount(c.Request().Context(), uid)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, account)
}

// SetAvailability toggles the authenticated driver's availability flag
func (h *AccountHandler) SetAvailability(c echo.Context) error {
	uid, ok := c.Get(middleware.ContextKeyUID).(string)
	if !ok || uid == "" {
		return utils.UnauthorizedResponse(c, "no authenticated identity")
	}

	var req models.AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	account, err := h.identityUC.SetDriverAvailability(c.Request().Context(), uid, req.IsAvailable)
	if err != nil {
		logger.Warn("Failed to update driver availability",
			logger.ErrorField(err),
			logger.String("uid", uid),
		)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, account)
}

// GetAccount returns an account record by identity key (admin only)
func (h *AccountHandler) GetAccount(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "account id is required")
	}

	account, err := h.identityUC.GetAccount(c.Request().Context(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, account)
}

// Activate re-enables a deactivated account (admin only)
func (h *AccountHandler) Activate(c echo.Context) error {
	return h.setActive(c, true)
}

// Deactivate disables an account without deleting its record (admin only)
func (h *AccountHandler) Deactivate(c echo.Context) error {
	return h.setActive(c, false)
}

func (h *AccountHandler) setActive(c echo.Context, active bool) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "account id is required")
	}

	account, err := h.identityUC.SetAccountActive(c.Request().Context(), id, active)
	if err != nil {
		logger.Warn("Failed to change account active state",
			logger.ErrorField(err),
			logger.String("uid", id),
			logger.Bool("active", active),
		)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, account)
}
