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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-manager/internal/audit"
	"github.com/BruksfildServices01/barbershop-manager/internal/auth"
	"github.com/BruksfildServices01/barbershop-manager/internal/config"
	dbpkg "github.com/BruksfildServices01/barbershop-manager/internal/db"
	"github.com/BruksfildServices01/barbershop-manager/internal/infra/cache"
	"github.com/BruksfildServices01/barbershop-manager/internal/infra/payment"
	"github.com/BruksfildServices01/barbershop-manager/internal/infra/storage"
	"github.com/BruksfildServices01/barbershop-manager/internal/logger"
	"github.com/BruksfildServices01/barbershop-manager/internal/metrics"
	"github.com/BruksfildServices01/barbershop-manager/internal/routes"
	"github.com/BruksfildServices01/barbershop-manager/internal/timezone"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl := logger.New(cfg.App.Env, cfg.App.LogLevel)
	defer func() { _ = zl.Sync() }()

	db, err := dbpkg.NewDB(cfg, zl)
	if err != nil {
		zl.Fatal("failed to connect database", zap.Error(err))
	}

	// ------------------------------
	// Sessões: redis quando configurado
	// ------------------------------
	var sessions auth.SessionStore = auth.NewMemorySessions()
	if cfg.Redis.Enabled() {
		rdb, err := cache.New(context.Background(), cfg.Redis)
		if err != nil {
			zl.Fatal("failed to connect redis", zap.Error(err))
		}
		defer rdb.Close()
		sessions = auth.NewRedisSessions(rdb)
	} else {
		zl.Warn("REDIS_ADDR not set, sessions kept in memory")
	}

	provider := auth.NewLocalProvider(
		db,
		auth.NewTokenManager(cfg.JWT.JWTSecret, cfg.JWT.TokenTTL),
		sessions,
		cfg.JWT.MinPasswordLength,
		cfg.DB.StoreTimeout,
	)

	// ------------------------------
	// Integrações opcionais
	// ------------------------------
	var store storage.ObjectStore
	if cfg.S3.Enabled() {
		s3, err := storage.NewS3Store(cfg.S3)
		if err != nil {
			zl.Fatal("failed to configure s3", zap.Error(err))
		}
		store = s3
	}

	var links payment.Links
	if cfg.MercadoPago.AccessToken != "" {
		mp, err := payment.NewMercadoPago(cfg.MercadoPago)
		if err != nil {
			zl.Fatal("failed to configure mercadopago", zap.Error(err))
		}
		links = mp
	}

	auditLog := audit.New(db)
	dispatcher := audit.NewDispatcher(auditLog, cfg.Audit.QueueSize, zl)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(logger.GinMiddleware(zl), logger.Recovery(zl))

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Log:      zl,
		Auth:     provider,
		Audit:    dispatcher,
		AuditLog: auditLog,
		Metrics:  metrics.NewLedger(reg),
		Gatherer: reg,
		Store:    store,
		Links:    links,
		Clock:    timezone.SystemClock,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("server forced to shutdown", zap.Error(err))
	}

	// drena a fila de auditoria depois que nenhuma requisição nova entra
	dispatcher.Close()
}
