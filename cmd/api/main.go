package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/clinic-scheduler/internal/db"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/slot"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/routes"
	"github.com/BruksfildServices01/clinic-scheduler/internal/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/views"
)

func main() {

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()

	var db *gorm.DB
	if cfg.StorageDriver == config.StoragePostgres {
		db, err = dbpkg.NewDB(cfg)
		if err != nil {
			zlog.Fatal("failed to connect database", zap.Error(err))
		}
	}

	store, err := slot.Open(ctx, cfg, db)
	if err != nil {
		zlog.Fatal("failed to open storage slot",
			zap.String("driver", cfg.StorageDriver),
			zap.Error(err),
		)
	}
	defer store.Close()

	appointments := repository.NewAppointmentStore(store, zlog)
	if err := appointments.Load(ctx); err != nil {
		zlog.Fatal("failed to load appointments", zap.Error(err))
	}

	sinks := []audit.Sink{audit.NewZapSink(zlog)}
	if db != nil {
		sinks = append(sinks, audit.NewGormSink(db))
	}
	auditDispatcher := audit.NewDispatcher(zlog, cfg.AuditQueueSize, sinks...)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.CORSMiddleware())
	r.SetHTMLTemplate(views.Templates())

	routes.RegisterRoutes(r, appointments, schedule.Default(), auditDispatcher, zlog)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		zlog.Info("server running",
			zap.String("addr", cfg.Addr()),
			zap.String("storage", cfg.StorageDriver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	zlog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Warn("server shutdown", zap.Error(err))
	}

	auditDispatcher.Close()

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
