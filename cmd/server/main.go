package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hiresphere/api/internal/config"
	"github.com/hiresphere/api/internal/database"
	"github.com/hiresphere/api/internal/handler"
	"github.com/hiresphere/api/internal/middleware"
	"github.com/hiresphere/api/internal/repository"
	"github.com/hiresphere/api/internal/service"
	"github.com/hiresphere/api/pkg/token"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Apply table definitions and indexes. The unique application index is
	// load-bearing: application dedup relies on it.
	if err := database.ApplySchema(ctx, db); err != nil {
		slog.Error("failed to apply schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize token service
	tokens, err := token.NewService(token.Config{
		Secret:     []byte(cfg.Auth.Secret),
		Issuer:     cfg.Auth.Issuer,
		Expiration: time.Duration(cfg.Auth.ExpirationMins) * time.Minute,
	})
	if err != nil {
		slog.Error("failed to initialize token service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db)
	applicantRepo := repository.NewApplicantRepository(db)
	jobRepo := repository.NewJobRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	// Initialize services
	authService := service.NewAuthService(service.AuthServiceConfig{
		CompanyRepo: companyRepo,
		Tokens:      tokens,
	})

	jobService := service.NewJobService(service.JobServiceConfig{
		JobRepo:     jobRepo,
		CompanyRepo: companyRepo,
	})

	applicantService := service.NewApplicantService(service.ApplicantServiceConfig{
		ApplicantRepo: applicantRepo,
	})

	applicationService := service.NewApplicationService(service.ApplicationServiceConfig{
		ApplicationRepo: applicationRepo,
		JobRepo:         jobRepo,
		ApplicantRepo:   applicantRepo,
		CompanyRepo:     companyRepo,
	})

	verifier, err := service.NewSvixVerifier(cfg.Webhook.Secret)
	if err != nil {
		slog.Error("failed to initialize webhook verifier", slog.String("error", err.Error()))
		os.Exit(1)
	}

	syncService := service.NewIdentitySyncService(service.IdentitySyncServiceConfig{
		Verifier:      verifier,
		ApplicantRepo: applicantRepo,
		Logger:        logger,
	})

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db)
	companyHandler := handler.NewCompanyHandler(authService, jobService, applicationService)
	jobHandler := handler.NewJobHandler(jobService)
	applicantHandler := handler.NewApplicantHandler(applicantService, applicationService)
	webhookHandler := handler.NewWebhookHandler(syncService)

	// Auth middlewares
	authCompany := middleware.AuthCompany(authService)
	authApplicant := middleware.AuthApplicant(authService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Check)

	// Company account endpoints (public)
	mux.HandleFunc("POST /v1/company/register", companyHandler.Register)
	mux.HandleFunc("POST /v1/company/login", companyHandler.Login)

	// Company recruiter endpoints (company credential required)
	mux.Handle("GET /v1/company/me", authCompany(http.HandlerFunc(companyHandler.Me)))
	mux.Handle("POST /v1/company/jobs", authCompany(http.HandlerFunc(companyHandler.PostJob)))
	mux.Handle("GET /v1/company/jobs", authCompany(http.HandlerFunc(companyHandler.ListJobs)))
	mux.Handle("POST /v1/company/jobs/{jobId}/visibility", authCompany(http.HandlerFunc(companyHandler.ToggleJobVisibility)))
	mux.Handle("GET /v1/company/applications", authCompany(http.HandlerFunc(companyHandler.ListApplications)))
	mux.Handle("PATCH /v1/company/applications/{applicationId}/status", authCompany(http.HandlerFunc(companyHandler.ChangeApplicationStatus)))

	// Public job board endpoints
	mux.HandleFunc("GET /v1/jobs", jobHandler.List)
	mux.HandleFunc("GET /v1/jobs/{jobId}", jobHandler.Get)

	// Applicant endpoints (applicant credential required)
	mux.Handle("GET /v1/applicant/me", authApplicant(http.HandlerFunc(applicantHandler.Me)))
	mux.Handle("POST /v1/jobs/{jobId}/apply", authApplicant(http.HandlerFunc(applicantHandler.Apply)))
	mux.Handle("GET /v1/applicant/applications", authApplicant(http.HandlerFunc(applicantHandler.ListApplications)))
	mux.Handle("PUT /v1/applicant/resume", authApplicant(http.HandlerFunc(applicantHandler.UpdateResume)))

	// Identity provider webhook (signature-authenticated)
	mux.HandleFunc("POST /webhooks/identity", webhookHandler.Identity)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
