package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Checker probes a downstream dependency.
type Checker func(ctx context.Context) error

// RegisterHealthEndpoints wires the health, readiness and liveness probes.
// Dependency checkers (postgres, redis) gate readiness only.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, checkers map[string]Checker) {
	healthGroup := e.Group("/health")

	// Basic health check for load balancers
	healthGroup.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   serviceName,
			"timestamp": time.Now().UTC(),
		})
	})

	// Readiness probe: all dependencies must answer
	healthGroup.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		deps := make(map[string]string, len(checkers))
		healthy := true
		for name, check := range checkers {
			if err := check(ctx); err != nil {
				deps[name] = err.Error()
				healthy = false
			} else {
				deps[name] = "ok"
			}
		}

		status := http.StatusOK
		state := "ready"
		if !healthy {
			status = http.StatusServiceUnavailable
			state = "not ready"
		}
		return c.JSON(status, map[string]interface{}{
			"status":       state,
			"service":      serviceName,
			"dependencies": deps,
		})
	})

	// Liveness probe
	healthGroup.GET("/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "alive",
			"service": serviceName,
		})
	})
}
