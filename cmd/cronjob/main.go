package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"sandevex-hiring-backend/internal/config"
	"sandevex-hiring-backend/internal/jobs"
	"sandevex-hiring-backend/internal/logger"
	"sandevex-hiring-backend/internal/records"
	"sandevex-hiring-backend/internal/repository"
	"sandevex-hiring-backend/internal/repository/memory"
	"sandevex-hiring-backend/internal/repository/postgres"
	"sandevex-hiring-backend/internal/scheduler"
	"sandevex-hiring-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'reconcile-offer-records')")
	flag.Parse()

	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Hiring Backend Cronjob Runner...", "log_level", cfg.Log.Level)

	// The standalone runner needs the durable journal; an in-memory journal
	// in this process would never see the server's entries.
	var journal repository.DispatchJournal
	if cfg.Journal.Type == "postgres" {
		logger.Info("Connecting to journal database...", "host", cfg.Journal.Host)
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
		logger.Warn("Journal type is in-memory; the standalone runner will only see entries from this process")
		journal = memory.NewDispatchJournal()
	}

	// Initialize Services
	recordsClient := records.NewClient(cfg.Records.BaseURL, time.Duration(cfg.Records.TimeoutSeconds)*time.Second)
	emailSvc := service.NewEmailService(cfg.Email)
	dispatchSvc := service.NewDispatchService(recordsClient, emailSvc, journal)

	jobRunner := jobs.NewJobRunner(dispatchSvc, cfg)

	// Run-once mode for manual execution
	if *runOnce != "" {
		switch *runOnce {
		case "reconcile-offer-records":
			jobRunner.ReconcileOfferRecords()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		return
	}

	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	sched.Stop()
}
