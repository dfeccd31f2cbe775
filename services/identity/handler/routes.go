package handler

import (
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/epickup/epickup-backend/internal/pkg/jwt"
	"github.com/epickup/epickup-backend/internal/pkg/middleware"
	"github.com/epickup/epickup-backend/internal/pkg/models"
	"github.com/epickup/epickup-backend/services/identity/handler/http"
)

// Handler coordinates the HTTP handlers for the identity service
type Handler struct {
	authHandler    *http.AuthHandler
	accountHandler *http.AccountHandler
	issuer         *jwtpkg.Issuer
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	accountHandler *http.AccountHandler,
	issuer *jwtpkg.Issuer,
) *Handler {
	return &Handler{
		authHandler:    authHandler,
		accountHandler: accountHandler,
		issuer:         issuer,
	}
}

// RegisterRoutes wires the public and guarded endpoints. Only the token
// exchange and refresh endpoints are reachable without a backend session
// token; everything else sits behind the session guard, with role checks
// layered on top where an endpoint is role-specific.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no session required)
	authGroup := e.Group("/auth")
	authGroup.POST("/firebase/verify-token", h.authHandler.VerifyToken)
	authGroup.POST("/refresh", h.authHandler.Refresh)
	authGroup.GET("/roles", h.authHandler.Roles)

	// Protected routes behind the session guard
	protected := e.Group("", middleware.SessionAuth(h.issuer))
	protected.POST("/auth/logout", h.authHandler.Logout)

	userGroup := protected.Group("/users")
	userGroup.GET("/me", h.accountHandler.Me)

	driverGroup := protected.Group("/drivers", middleware.RequireRoles(models.RoleDriver))
	driverGroup.PATCH("/me/availability", h.accountHandler.SetAvailability)

	adminGroup := protected.Group("/admin", middleware.RequireRoles(models.RoleAdmin))
	adminGroup.GET("/accounts/:id", h.accountHandler.GetAccount)
	adminGroup.POST("/accounts/:id/activate", h.accountHandler.Activate)
	adminGroup.POST("/accounts/:id/deactivate", h.accountHandler.Deactivate)
}
