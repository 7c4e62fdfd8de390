package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	httpapi "sandevex-hiring-backend/internal/api/http"
	"sandevex-hiring-backend/internal/config"
	"sandevex-hiring-backend/internal/jobs"
	"sandevex-hiring-backend/internal/logger"
	"sandevex-hiring-backend/internal/records"
	"sandevex-hiring-backend/internal/repository"
	"sandevex-hiring-backend/internal/repository/memory"
	"sandevex-hiring-backend/internal/repository/postgres"
	"sandevex-hiring-backend/internal/scheduler"
	"sandevex-hiring-backend/internal/security"
	"sandevex-hiring-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Sandevex Hiring Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Records API configuration", "base_url", cfg.Records.BaseURL, "timeout_seconds", cfg.Records.TimeoutSeconds)

	// Initialize Records API client
	recordsClient := records.NewClient(cfg.Records.BaseURL, time.Duration(cfg.Records.TimeoutSeconds)*time.Second)

	// Initialize Dispatch Journal
	var journal repository.DispatchJournal
	if cfg.Journal.Type == "postgres" {
		logger.Info("Using postgres dispatch journal", "host", cfg.Journal.Host, "database", cfg.Journal.Database)
		db, err := sql.Open("postgres", cfg.GetJournalConnectionString())
		if err != nil {
			logger.Error("Failed to connect to journal database", "error", err)
			log.Fatalf("Failed to connect to journal database: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Error("Failed to ping journal database", "error", err)
			log.Fatalf("Failed to ping journal database: %v", err)
		}
		journal = postgres.NewStore(db)
	} else {
		logger.Info("Using in-memory dispatch journal")
		journal = memory.NewDispatchJournal()
	}

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.Admin.JWTSecret, time.Duration(cfg.Admin.TokenExpiryMinutes)*time.Minute)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email)
	offerSvc := service.NewOfferResponseService(recordsClient)
	bookingSvc := service.NewBookingService(recordsClient, emailSvc, cfg.Email)
	dispatchSvc := service.NewDispatchService(recordsClient, emailSvc, journal)
	candidateSvc := service.NewCandidateService(recordsClient)
	appointmentSvc := service.NewAppointmentService(recordsClient, emailSvc)
	authSvc := service.NewAuthService(cfg.Admin, tokenManager)

	// Initialize rate limiter
	var limiter httpapi.Limiter
	if cfg.RateLimit.RedisAddr != "" {
		logger.Info("Using redis rate limiter", "addr", cfg.RateLimit.RedisAddr)
		limiter = httpapi.NewRedisLimiter(redis.NewClient(&redis.Options{Addr: cfg.RateLimit.RedisAddr}))
	} else {
		limiter = httpapi.NewMemoryLimiter()
	}

	// Set up HTTP server
	router := mux.NewRouter()
	httpapi.RegisterRoutes(router, httpapi.Services{
		Offers:       offerSvc,
		Booking:      bookingSvc,
		Candidates:   candidateSvc,
		Dispatch:     dispatchSvc,
		Appointments: appointmentSvc,
		Auth:         authSvc,
	}, tokenManager, limiter, cfg.RateLimit.Requests, time.Duration(cfg.RateLimit.WindowSeconds)*time.Second)

	// Start the dispatch reconciliation scheduler
	jobRunner := jobs.NewJobRunner(dispatchSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
