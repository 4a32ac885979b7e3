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
	"go.uber.org/zap"

	"github.com/rentride/rentride/internal/pkg/config"
	"github.com/rentride/rentride/internal/pkg/database"
	"github.com/rentride/rentride/internal/pkg/health"
	"github.com/rentride/rentride/internal/pkg/logger"
	"github.com/rentride/rentride/internal/pkg/middleware"
	natspkg "github.com/rentride/rentride/internal/pkg/nats"
	"github.com/rentride/rentride/internal/pkg/stripe"

	bidHandler "github.com/rentride/rentride/services/bids/handler"
	bidHTTP "github.com/rentride/rentride/services/bids/handler/http"
	bidGateway "github.com/rentride/rentride/services/bids/gateway"
	bidRepository "github.com/rentride/rentride/services/bids/repository"
	bidUsecase "github.com/rentride/rentride/services/bids/usecase"

	carHandler "github.com/rentride/rentride/services/cars/handler"
	carHTTP "github.com/rentride/rentride/services/cars/handler/http"
	carRepository "github.com/rentride/rentride/services/cars/repository"
	carUsecase "github.com/rentride/rentride/services/cars/usecase"

	paymentHandler "github.com/rentride/rentride/services/payments/handler"
	paymentHTTP "github.com/rentride/rentride/services/payments/handler/http"
	paymentGateway "github.com/rentride/rentride/services/payments/gateway"
	paymentRepository "github.com/rentride/rentride/services/payments/repository"
	paymentUsecase "github.com/rentride/rentride/services/payments/usecase"

	rentHandler "github.com/rentride/rentride/services/rents/handler"
	rentHTTP "github.com/rentride/rentride/services/rents/handler/http"
	rentGateway "github.com/rentride/rentride/services/rents/gateway"
	rentRepository "github.com/rentride/rentride/services/rents/repository"
	rentUsecase "github.com/rentride/rentride/services/rents/usecase"

	userHandler "github.com/rentride/rentride/services/users/handler"
	userHTTP "github.com/rentride/rentride/services/users/handler/http"
	userRepository "github.com/rentride/rentride/services/users/repository"
	userUsecase "github.com/rentride/rentride/services/users/usecase"
)

func main() {
	appName := "rentride-api"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	if err := database.RunMigrations(configs.Database); err != nil {
		zapLogger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Payment gateway client
	stripeClient := stripe.NewClient(configs.Stripe)

	db := postgresClient.GetDB()

	// Users
	userRepo := userRepository.NewUserRepo(configs, db, redisClient.GetClient())
	userUC := userUsecase.NewUserUC(configs, userRepo)
	usersHandler := userHandler.NewHandler(
		userHTTP.NewUserHandler(userUC),
		userHTTP.NewAuthHandler(userUC),
		configs,
	)

	// Cars
	carRepo := carRepository.NewCarRepo(configs, db)
	carUC := carUsecase.NewCarUC(configs, carRepo)
	carsHandler := carHandler.NewHandler(carHTTP.NewCarHandler(carUC), configs)

	// Rents
	rentRepo := rentRepository.NewRentRepo(configs, db)
	rentGW := rentGateway.NewRentGW(natsClient)
	rentUC := rentUsecase.NewRentUC(configs, rentRepo, rentGW)
	rentsHandler := rentHandler.NewHandler(rentHTTP.NewRentHandler(rentUC), configs)

	// Bids
	bidRepo := bidRepository.NewBidRepo(configs, db)
	bidGW := bidGateway.NewBidGW(natsClient)
	bidUC := bidUsecase.NewBidUC(configs, bidRepo, bidGW)
	bidsHandler := bidHandler.NewHandler(bidHTTP.NewBidHandler(bidUC), configs)

	// Payments
	paymentRepo := paymentRepository.NewPaymentRepo(configs, db)
	paymentEventGW := paymentGateway.NewPaymentEventGW(natsClient)
	paymentUC := paymentUsecase.NewPaymentUC(configs, paymentRepo, stripeClient, paymentEventGW)
	paymentsHandler := paymentHandler.NewHandler(paymentHTTP.NewPaymentHandler(paymentUC), configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	// Register health endpoints
	checker := health.NewChecker(appName, configs.App.Version, postgresClient, redisClient, natsClient)
	checker.RegisterEndpoints(e)

	// Register service routes
	usersHandler.RegisterRoutes(e)
	carsHandler.RegisterRoutes(e)
	rentsHandler.RegisterRoutes(e)
	bidsHandler.RegisterRoutes(e)
	paymentsHandler.RegisterRoutes(e)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			zap.String("app", appName),
			zap.String("address", addr),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server",
				zap.String("app", appName),
				zap.Error(err),
			)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server stopped", zap.String("app", appName))
}
