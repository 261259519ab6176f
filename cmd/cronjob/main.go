package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"lankadrive-backend/internal/config"
	"lankadrive-backend/internal/jobs"
	"lankadrive-backend/internal/logger"
	"lankadrive-backend/internal/repository/postgres"
	"lankadrive-backend/internal/scheduler"
	"lankadrive-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a single job and exit (prune-blocked-dates, send-inquiry-reminders, all-nightly)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting LankaDrive cronjob runner", "log_level", cfg.Log.Level)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established", "host", cfg.Database.Host)

	store := postgres.NewStore(db)
	emailSvc := service.NewEmailService(cfg.Email)
	jobRunner := jobs.NewJobRunner(db, store, emailSvc, cfg)

	if *runOnce != "" {
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped")
}

func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	logger.Info("Running job once", "job", jobName)
	switch jobName {
	case "prune-blocked-dates":
		jobRunner.PruneExpiredBlockedDates()
	case "send-inquiry-reminders":
		jobRunner.SendPendingInquiryReminders()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	default:
		fmt.Fprintf(os.Stderr, "unknown job %q; available jobs:\n", jobName)
		fmt.Fprintln(os.Stderr, "  prune-blocked-dates")
		fmt.Fprintln(os.Stderr, "  send-inquiry-reminders")
		fmt.Fprintln(os.Stderr, "  all-nightly")
		os.Exit(1)
	}
}
