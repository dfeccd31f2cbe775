package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/epickup/epickup-backend/internal/pkg/config"
	"github.com/epickup/epickup-backend/internal/pkg/database"
	"github.com/epickup/epickup-backend/internal/pkg/health"
	jwtpkg "github.com/epickup/epickup-backend/internal/pkg/jwt"
	"github.com/epickup/epickup-backend/internal/pkg/logger"
	"github.com/epickup/epickup-backend/internal/pkg/middleware"
	"github.com/epickup/epickup-backend/internal/pkg/server"
	"github.com/epickup/epickup-backend/services/identity/gateway"
	"github.com/epickup/epickup-backend/services/identity/handler"
	httpHandler "github.com/epickup/epickup-backend/services/identity/handler/http"
	"github.com/epickup/epickup-backend/services/identity/repository"
	"github.com/epickup/epickup-backend/services/identity/usecase"
)

func main() {
	appName := "identity-service"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger, appName)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize Firebase Admin gateway
	identityGW, err := gateway.NewIdentityGW(context.Background(), configs.Firebase)
	if err != nil {
		logger.Fatal("Failed to initialize Firebase Admin SDK", logger.Err(err))
	}

	// Initialize repositories
	accountRepo := repository.NewAccountRepo(configs, postgresClient.GetDB())
	tokenRepo := repository.NewTokenRepo(redisClient)

	// Session token issuer consults the blacklist on every verification
	issuer := jwtpkg.NewIssuer(configs.JWT, tokenRepo)

	// Initialize usecase
	identityUC := usecase.NewIdentityUC(configs, accountRepo, tokenRepo, identityGW, issuer)

	// Handlers for HTTP
	authHandler := httpHandler.NewAuthHandler(identityUC)
	accountHandler := httpHandler.NewAccountHandler(identityUC)
	h := handler.NewHandler(authHandler, accountHandler, issuer)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestID())
	e.Use(logger.EchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, map[string]health.Checker{
		"postgres": postgresClient.Ping,
		"redis":    redisClient.Ping,
	})

	// Register service routes
	h.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(func(ctx context.Context) error {
		return postgresClient.Close()
	})
	srv.OnShutdown(func(ctx context.Context) error {
		return redisClient.Close()
	})

	if err := srv.Start(); err != nil {
		logger.Fatal("Server exited with error",
			logger.String("app", appName),
			logger.Err(err),
		)
	}
}
