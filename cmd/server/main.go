package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"procurehub/internal/audit"
	"procurehub/internal/cache"
	"procurehub/internal/config"
	cronrunner "procurehub/internal/cron"
	"procurehub/internal/db"
	"procurehub/internal/handler"
	"procurehub/internal/logger"
	"procurehub/internal/recommend"
	gormrepository "procurehub/internal/repository/gorm"
	"procurehub/internal/tenant"
)

func main() {
	cfgPath := os.Getenv("PH_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("PH_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)

	if err := db.SetTimezone(dbConn, cfg.DB.Timezone); err != nil {
		logger.Warn("failed to set timezone", zap.Error(err))
	}
	if err := db.AutoMigrate(dbConn); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	store := gormrepository.New(dbConn.Gorm)

	var suggestionCache recommend.SuggestionCache
	var memoryCache *cache.Memory
	switch strings.ToLower(cfg.Cache.Backend) {
	case "redis":
		suggestionCache = cache.NewRedis(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Cache.TTL)
		logger.Info("suggestion cache backend: redis", zap.String("addr", cfg.Redis.Addr))
	default:
		memoryCache = cache.NewMemory(cfg.Cache.TTL)
		suggestionCache = memoryCache
		logger.Info("suggestion cache backend: memory", zap.Duration("ttl", cfg.Cache.TTL))
	}

	auditSink := &audit.RepoSink{Repo: store, Logger: logger}

	recommendSvc, err := recommend.NewService(cfg.Recommend, store, suggestionCache, auditSink, logger)
	if err != nil {
		logger.Fatal("recommendation config invalid", zap.Error(err))
	}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(tenant.RequireMiddleware())

	healthHandler := &handler.HealthHandler{DB: dbConn.Gorm}
	healthHandler.Register(engine)
	suggestionHandler := &handler.SuggestionHandler{Service: recommendSvc, Logger: logger}
	suggestionHandler.Register(engine)
	auditHandler := &handler.AuditHandler{Repo: store}
	auditHandler.Register(engine)

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cronRunner := cronrunner.New(logger, ctx)
	if cfg.Cron.Enabled && memoryCache != nil {
		_, err := cronRunner.Add(cfg.Cron.CacheSweep, "cache_sweep", func(ctx context.Context) {
			if removed := memoryCache.Sweep(); removed > 0 {
				logger.Debug("cache sweep", zap.Int("removed", removed))
			}
		})
		if err != nil {
			logger.Warn("cron register cache sweep failed", zap.Error(err))
		}
	}
	cronRunner.Start()
	defer cronRunner.Stop()

	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown failed", zap.Error(err))
	}
}
