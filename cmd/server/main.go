package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chemical-leads-api/internal/catalog"
	"chemical-leads-api/internal/config"
	"chemical-leads-api/internal/httpapi"
	"chemical-leads-api/internal/mail"
	"chemical-leads-api/internal/services"
	"chemical-leads-api/pkg/cache"
	"chemical-leads-api/pkg/logger"
)

func main() {
	foundDotenv := config.LoadDotenv()
	cfg := config.Load()

	flush, err := logger.Init(logger.Options{
		Mode:       cfg.Logger.Mode,
		FileEnable: cfg.Logger.FileEnable,
		Filename:   cfg.Logger.Filename,
	})
	if err != nil {
		panic(err)
	}
	defer flush()

	if !foundDotenv {
		zap.L().Info("No .env file found, using process environment")
	}
	if cfg.Logger.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, closeStore, err := openCatalog(cfg.Database)
	if err != nil {
		zap.L().Fatal("failed to open catalog", zap.Error(err))
	}
	defer closeStore()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	redisCache := cache.NewRedisCache(ctx, cache.Options{
		URL: cfg.Cache.RedisURL,
		DB:  cfg.Cache.DB,
		TTL: cfg.Cache.TTL,
	})
	cancel()
	defer redisCache.Close()

	logMailConfig("contact", cfg.ContactMail.Missing())
	logMailConfig("rfq", cfg.RFQMail.Missing())

	handler := httpapi.NewHandler(
		services.NewSearchService(store, redisCache),
		services.NewContactService(cfg.ContactMail, mail.NewSMTPSender(cfg.ContactMail.SMTP)),
		services.NewRFQService(cfg.RFQMail, mail.NewSMTPSender(cfg.RFQMail.SMTP)),
		redisCache,
	)
	router := httpapi.NewRouter(handler, httpapi.RouterOptions{
		AllowedOrigin: cfg.Server.AllowedOrigin,
		Limiter:       httpapi.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
	})

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		zap.L().Info("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			zap.L().Error("graceful shutdown failed", zap.Error(err))
		}
	}()

	zap.L().Info("Starting server", zap.String("addr", server.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zap.L().Fatal("server error", zap.Error(err))
	}
}

// openCatalog picks postgres when DATABASE_URL is set, otherwise an
// in-memory catalog loaded from the seed file (or empty).
func openCatalog(cfg config.DatabaseConfig) (catalog.Store, func(), error) {
	if cfg.URL != "" {
		store, err := catalog.OpenPostgres(cfg.URL)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	}

	if cfg.SeedFile != "" {
		store, err := catalog.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			return nil, nil, err
		}
		zap.L().Info("in-memory catalog loaded", zap.String("seed", cfg.SeedFile))
		return store, func() {}, nil
	}

	zap.L().Warn("DATABASE_URL and CATALOG_SEED_FILE unset, serving an empty catalog")
	store, err := catalog.NewMemoryStore(nil)
	return store, func() {}, err
}

func logMailConfig(pipeline string, missing []string) {
	if len(missing) > 0 {
		zap.L().Warn("email transport not configured; submissions will fail",
			zap.String("pipeline", pipeline), zap.Strings("missing", missing))
	}
}
