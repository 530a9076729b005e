package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/rabbitry/internal/config"
	"github.com/mamadbah2/rabbitry/internal/repository/memstore"
	"github.com/mamadbah2/rabbitry/internal/repository/mongodb"
	"github.com/mamadbah2/rabbitry/internal/repository/sheets"
	"github.com/mamadbah2/rabbitry/internal/scheduler"
	"github.com/mamadbah2/rabbitry/internal/server/handlers"
	"github.com/mamadbah2/rabbitry/internal/server/router"
	exportsvc "github.com/mamadbah2/rabbitry/internal/service/export"
	herdsvc "github.com/mamadbah2/rabbitry/internal/service/herd"
	remindersvc "github.com/mamadbah2/rabbitry/internal/service/reminder"
	"github.com/mamadbah2/rabbitry/pkg/clients/push"
	"github.com/mamadbah2/rabbitry/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		baseLogger.Fatal("failed to create uploads directory", zap.Error(err))
	}

	store := memstore.New()
	herdSvc := herdsvc.NewService(store, baseLogger.Named("svc.herd"))

	// Snapshot archive is optional: without a Mongo URI the herd lives in
	// memory only and the nightly job skips the archive step.
	var archiveRepo mongodb.Repository
	if cfg.MongoDB.Enabled() {
		mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		archiveRepo = mongoRepo
		baseLogger.Info("snapshot archive enabled", zap.String("database", cfg.MongoDB.DBName))
	} else {
		baseLogger.Warn("mongodb uri missing, snapshot archiving disabled")
	}

	var exportSvc *exportsvc.Service
	if cfg.Sheets.Enabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		exportSvc = exportsvc.NewService(store, sheetsRepo, baseLogger.Named("svc.export"))
		baseLogger.Info("sheet export enabled", zap.String("spreadsheet_id", cfg.Sheets.SpreadsheetID))
	} else {
		baseLogger.Warn("google sheet credentials missing, sheet export disabled")
	}

	var reminderSvc *remindersvc.Service
	if cfg.Push.Enabled() {
		pushClient := push.NewClient(cfg.Push)
		reminderSvc = remindersvc.NewService(herdSvc, pushClient, baseLogger.Named("svc.reminder"))
		baseLogger.Info("reminder push enabled")
	} else {
		baseLogger.Warn("push webhook url missing, reminder push disabled")
	}

	engine := router.New(router.Handlers{
		Rabbits:   handlers.NewRabbitHandler(herdSvc, baseLogger.Named("handlers.rabbits")),
		Breeding:  handlers.NewBreedingHandler(herdSvc, baseLogger.Named("handlers.breeding")),
		Offspring: handlers.NewOffspringHandler(herdSvc, baseLogger.Named("handlers.offspring")),
		Expenses:  handlers.NewExpenseHandler(herdSvc, baseLogger.Named("handlers.expenses")),
		Butcher:   handlers.NewButcherHandler(herdSvc, baseLogger.Named("handlers.butcher")),
		Stats:     handlers.NewStatsHandler(herdSvc, baseLogger.Named("handlers.stats")),
		Upload:    handlers.NewUploadHandler(cfg.Uploads.Dir, baseLogger.Named("handlers.upload")),
		Export:    handlers.NewExportHandler(exportSvc, baseLogger.Named("handlers.export")),
	}, cfg.Uploads.Dir, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(*cfg, herdSvc, archiveRepo, reminderSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
