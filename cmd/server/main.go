package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"
	_ "github.com/lib/pq"

	httpapi "fastlane-backend/internal/api/http"
	"fastlane-backend/internal/config"
	"fastlane-backend/internal/logger"
	"fastlane-backend/internal/repository/postgres"
	"fastlane-backend/internal/security"
	"fastlane-backend/internal/service"
	"fastlane-backend/migrations"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Fastlane Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Apply schema migrations
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		log.Fatalf("Failed to create migration provider: %v", err)
	}
	applied, err := provider.Up(context.Background())
	if err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	logger.Info("Schema migrations applied", "count", len(applied))

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Services
	reservationSvc := service.NewReservationService(
		store.ReservationRepository,
		store.ReservationStateRepository,
		store.VehicleRepository,
		store.DriverRepository,
		store.FareTypeRepository,
	)
	accountSvc := service.NewAccountService(
		store.AccountRepository,
		store.UserRepository,
		store.DriverRepository,
		store.EmployeeRepository,
		store.TokenRepository,
		reservationSvc,
		tokenManager,
	)
	registrationSvc := service.NewRegistrationService(
		store.AccountRepository,
		store.UserRepository,
		store.DriverRepository,
		store.EmployeeRepository,
		store.FareTypeRepository,
		store.TokenRepository,
		tokenManager,
	)
	authSvc := service.NewAuthService(store.AccountRepository, store.TokenRepository, tokenManager)
	driverSvc := service.NewDriverService(store.DriverRepository, store.FareTypeRepository)
	vehicleSvc := service.NewVehicleService(store.VehicleRepository)
	fareTypeSvc := service.NewFareTypeService(store.FareTypeRepository)
	stateSvc := service.NewReservationStateService(store.ReservationStateRepository)

	// Initialize HTTP server
	server := httpapi.NewServer(cfg.GetServerAddress(), db, tokenManager, store.TokenRepository, httpapi.Services{
		Auth:         authSvc,
		Registration: registrationSvc,
		Accounts:     accountSvc,
		Drivers:      driverSvc,
		Vehicles:     vehicleSvc,
		FareTypes:    fareTypeSvc,
		States:       stateSvc,
		Reservations: reservationSvc,
	})

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.Start(); err != nil {
			logger.Error("HTTP server stopped", "error", err)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
