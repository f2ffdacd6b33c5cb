package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"costera/internal/pkg/config"
	"costera/internal/pkg/database"
	"costera/internal/pkg/health"
	"costera/internal/pkg/logger"
	"costera/internal/pkg/middleware"
	nsqpkg "costera/internal/pkg/nsq"
	"costera/internal/pkg/server"
	ridesGateway "costera/services/rides/gateway"
	ridesHandler "costera/services/rides/handler"
	ridesRepository "costera/services/rides/repository"
	ridesUsecase "costera/services/rides/usecase"
	usersHandler "costera/services/users/handler"
	usersRepository "costera/services/users/repository"
	usersUsecase "costera/services/users/usecase"
)

func main() {
	appName := "costera-server"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	logger.SetGlobalLogger(appLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer when enabled
	var publisher ridesGateway.Publisher = ridesGateway.NoopPublisher{}
	var nsqProducer *nsqpkg.Producer
	if configs.NSQ.Enabled {
		producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			appLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		defer producer.Stop()
		publisher = producer
		nsqProducer = producer
	}

	// Initialize repositories
	rideRepo := ridesRepository.NewRideRepository(configs, postgresClient.GetDB())
	userRepo := usersRepository.NewUserRepository(postgresClient.GetDB())
	resetRepo := usersRepository.NewResetTokenRepository(redisClient)

	// Initialize gateway
	rideGW := ridesGateway.NewRideGW(publisher)

	// Initialize usecases
	rideUC, err := ridesUsecase.NewRideUC(configs, rideRepo, rideGW)
	if err != nil {
		appLogger.Fatal("Failed to initialize ride use case", logger.Err(err))
	}
	userUC := usersUsecase.NewUserUC(configs, userRepo, resetRepo)

	// Initialize handlers
	rideHandler := ridesHandler.NewHandler(rideUC, configs)
	userHandler := usersHandler.NewHandler(userUC, configs)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(appLogger))

	// Health endpoints
	healthService := health.NewService()
	healthService.AddChecker("postgres", func(ctx context.Context) error {
		return postgresClient.Ping(ctx)
	})
	healthService.AddChecker("redis", func(ctx context.Context) error {
		return redisClient.Ping(ctx)
	})
	if nsqProducer != nil {
		healthService.AddChecker("nsq", func(context.Context) error {
			return nsqProducer.Ping()
		})
	}
	health.RegisterEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	userHandler.RegisterRoutes(e)
	rideHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, appLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		appLogger.Error("server exited with error", logger.Err(err))
	}

	appLogger.Info("Server exiting gracefully")
}
