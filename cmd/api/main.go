package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"shopdata/internal/application/ingest"
	"shopdata/internal/application/report"
	"shopdata/internal/config"
	ginserver "shopdata/internal/infrastructure/http/gin"
	"shopdata/internal/infrastructure/persistence/csvstore"
	"shopdata/internal/infrastructure/persistence/sqlite"
	"shopdata/internal/interfaces/http/handler"
	"shopdata/internal/interfaces/http/router"
	"shopdata/pkg/logger"
)

// Serves the canned reports and the verification summary over the sqlite
// database written by `shopdata load`.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	appLog, err := logger.NewZapLogger(cfg.App.Env, cfg.Log.Level)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer appLog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Store.SQLitePath)
	if err != nil {
		appLog.Fatal("sqlite open failed", logger.String("path", cfg.Store.SQLitePath), logger.Error(err))
	}
	store := sqlite.NewStore(db, appLog)
	defer store.Close()

	reports := report.NewService(store, cfg.Report.AsOf, appLog)
	verifier := ingest.NewService(csvstore.NewStore(cfg.Data.Dir), store, store, appLog)
	reportHandler := handler.NewReportHandler(reports, verifier)

	engine := ginserver.NewEngine(appLog)
	router.RegisterRoutes(engine, reportHandler)

	server := ginserver.NewServer(cfg.Server, engine, appLog)
	if err := server.Run(ctx); err != nil {
		appLog.Error("server run failed", logger.Error(err))
		stop()
		os.Exit(1)
	}
}
