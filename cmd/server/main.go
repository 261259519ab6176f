package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	_ "github.com/lib/pq"

	httpapi "lankadrive-backend/internal/api/http"
	"lankadrive-backend/internal/config"
	"lankadrive-backend/internal/identity"
	"lankadrive-backend/internal/logger"
	"lankadrive-backend/internal/repository/postgres"
	"lankadrive-backend/internal/security"
	"lankadrive-backend/internal/service"
	"lankadrive-backend/internal/storage"
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
	logger.Info("Starting LankaDrive Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	ctx := context.Background()

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Firebase when credentials are configured
	var firebaseApp *firebase.App
	if cfg.Firebase.CredentialsFile != "" {
		firebaseApp, err = firebase.NewApp(ctx, &firebase.Config{
			ProjectID:     cfg.Firebase.ProjectID,
			StorageBucket: cfg.Firebase.StorageBucket,
		}, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
		if err != nil {
			logger.Error("Failed to initialize firebase", "error", err)
			log.Fatalf("Failed to initialize firebase: %v", err)
		}
		logger.Info("Firebase initialized", "project_id", cfg.Firebase.ProjectID)
	} else {
		logger.Warn("No firebase credentials configured, customer login disabled")
	}

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute)

	// Identity providers: Firebase tokens for customers, local JWTs for
	// credential-based admin accounts.
	providers := []identity.Provider{identity.NewLocalProvider(tokenManager)}
	if firebaseApp != nil {
		firebaseProvider, err := identity.NewFirebaseProvider(ctx, firebaseApp)
		if err != nil {
			logger.Error("Failed to initialize firebase auth", "error", err)
			log.Fatalf("Failed to initialize firebase auth: %v", err)
		}
		providers = append(providers, firebaseProvider)
	}
	identityProvider := identity.Multi(providers...)

	// Initialize Storage
	var blobStore storage.BlobStore
	var localStore *storage.LocalStorage
	if cfg.Storage.Type == "firebase" {
		if firebaseApp == nil {
			log.Fatalf("Storage type 'firebase' requires firebase credentials")
		}
		blobStore, err = storage.NewFirebaseStorage(ctx, firebaseApp, cfg.Firebase.StorageBucket)
		if err != nil {
			logger.Error("Failed to initialize firebase storage", "error", err)
			log.Fatalf("Failed to initialize firebase storage: %v", err)
		}
		logger.Info("Using firebase storage", "bucket", cfg.Firebase.StorageBucket)
	} else {
		logger.Info("Using local storage", "upload_dir", cfg.Storage.UploadDir)
		localStore, err = storage.NewLocalStorage(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize local storage", "error", err)
			log.Fatalf("Failed to initialize local storage: %v", err)
		}
		blobStore = localStore
	}

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.CarRepository,
		blobStore,
		emailSvc,
		cfg.Email.AdminEmail,
	)
	carSvc := service.NewCarService(store.CarRepository, blobStore)
	agreementSvc := service.NewAgreementService(store.AgreementRepository, store.BookingRepository)
	testimonialSvc := service.NewTestimonialService(store.TestimonialRepository)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)

	// Initialize Router
	authMW := httpapi.NewAuthMiddleware(identityProvider, store.UserRepository)
	router := httpapi.NewRouter(httpapi.RouterDeps{
		BookingSvc:     bookingSvc,
		CarSvc:         carSvc,
		AgreementSvc:   agreementSvc,
		TestimonialSvc: testimonialSvc,
		AuthSvc:        authSvc,
		AuthMW:         authMW,
		LocalStore:     localStore,
		MaxFormSizeMB:  cfg.Storage.MaxFileSize,
	})

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
