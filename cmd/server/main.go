package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/api/http"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/config"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/jobs"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/logger"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/repository/postgres"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/scheduler"
	"github.com/Kayan-Code-Dev/erp-bahaa-eldin-sub004/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting rental backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	orderSvc := service.NewOrderService(store, emailSvc, cfg.Rental.BufferDays)
	paymentSvc := service.NewPaymentService(store)
	custodySvc := service.NewCustodyService(store)
	rentalSvc := service.NewRentalService(store, cfg.Rental.BufferDays)

	jobRunner := jobs.NewJobRunner(store, emailSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	router := httpapi.NewRouter(orderSvc, paymentSvc, custodySvc, rentalSvc)

	addr := cfg.GetServerAddress()
	logger.Info("HTTP server listening", "address", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("HTTP server failed: %v", err)
	}
}
