package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/config"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/database"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/fare"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/health"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/logger"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/middleware"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/nats"
	nrpkg "github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/newrelic"
	bookingGateway "github.com/cabBazarApp/cabbazar-backend-sub000/services/booking/gateway"
	bookingHandler "github.com/cabBazarApp/cabbazar-backend-sub000/services/booking/handler"
	bookingRepository "github.com/cabBazarApp/cabbazar-backend-sub000/services/booking/repository"
	bookingUsecase "github.com/cabBazarApp/cabbazar-backend-sub000/services/booking/usecase"
	paymentGateway "github.com/cabBazarApp/cabbazar-backend-sub000/services/payment/gateway"
	paymentHandler "github.com/cabBazarApp/cabbazar-backend-sub000/services/payment/handler"
	paymentRepository "github.com/cabBazarApp/cabbazar-backend-sub000/services/payment/repository"
	paymentUsecase "github.com/cabBazarApp/cabbazar-backend-sub000/services/payment/usecase"
)

func main() {
	appName := "cabbazar-api"
	configPath := "config/api.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	if !natsClient.IsConnected() {
		zapLogger.Fatal("NATS client not connected")
	}

	// Load the rate card; the compiled-in defaults apply when no override
	// file is configured
	rateCard := fare.DefaultRateCard()
	if configs.Pricing.RateCardPath != "" {
		rateCard, err = fare.LoadRateCard(configs.Pricing.RateCardPath)
		if err != nil {
			zapLogger.Fatal("Failed to load rate card", logger.Err(err),
				logger.String("path", configs.Pricing.RateCardPath))
		}
	}
	calculator := fare.NewCalculator(rateCard)

	// Initialize repositories
	bookingRepo := bookingRepository.NewBookingRepository(configs, postgresClient.GetDB(), redisClient)
	paymentRepo := paymentRepository.NewPaymentRepository(configs, postgresClient.GetDB())

	// Initialize gateways
	bookingGW := bookingGateway.NewBookingGW(configs, redisClient, natsClient)
	paymentGW := paymentGateway.NewPaymentGW(configs, natsClient)

	// Initialize use cases; payment first, the booking use case drives it
	// for online bookings
	paymentUC, err := paymentUsecase.NewPaymentUC(configs, paymentRepo, paymentGW, bookingRepo, bookingGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize payment use case", logger.Err(err))
	}
	bookingUC, err := bookingUsecase.NewBookingUC(configs, calculator, bookingRepo, bookingGW, paymentUC, paymentRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize booking use case", logger.Err(err))
	}

	// Initialize handlers
	bookingH := bookingHandler.NewHandler(bookingUC, configs, redisClient)
	paymentH := paymentHandler.NewHandler(paymentUC, configs)

	// Initialize Echo server
	e := echo.New()

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}

	// Health endpoints with dependency pings
	healthService := health.NewService()
	healthService.AddChecker("postgres", postgresClient.Ping)
	healthService.AddChecker("redis", redisClient.Ping)
	health.RegisterEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	bookingH.RegisterRoutes(e)
	paymentH.RegisterRoutes(e)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	zapLogger.Info("Shutting down HTTP server...")
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	zapLogger.Info("Closing PostgreSQL connection...")
	postgresClient.Close()

	zapLogger.Info("Closing Redis connection...")
	if err := redisClient.Close(); err != nil {
		zapLogger.Error("Error closing Redis connection", logger.Err(err))
	}

	zapLogger.Info("Closing NATS connection...")
	natsClient.Close()

	if nrApp != nil {
		zapLogger.Info("Shutting down New Relic...")
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
