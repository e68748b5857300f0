// Command server starts the interview question engine HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	memcache "github.com/flyready/question-engine/internal/adapter/cache/memory"
	rediscache "github.com/flyready/question-engine/internal/adapter/cache/redis"
	extreal "github.com/flyready/question-engine/internal/adapter/extractor/real"
	extstub "github.com/flyready/question-engine/internal/adapter/extractor/stub"
	httpserver "github.com/flyready/question-engine/internal/adapter/httpserver"
	"github.com/flyready/question-engine/internal/adapter/observability"
	"github.com/flyready/question-engine/internal/adapter/repo/postgres"
	"github.com/flyready/question-engine/internal/airline"
	"github.com/flyready/question-engine/internal/app"
	"github.com/flyready/question-engine/internal/config"
	"github.com/flyready/question-engine/internal/domain"
	obsmetrics "github.com/flyready/question-engine/internal/observability"
	"github.com/flyready/question-engine/internal/usecase"
)

// redisAdapter narrows *goredis.Client to the readiness interface.
type redisAdapter struct{ *goredis.Client }

func (r redisAdapter) Ping(ctx context.Context) app.RedisPingResult { return r.Client.Ping(ctx) }

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)

	observability.InitMetrics()
	obsmetrics.InitMetrics()

	shutdownTracer, err := observability.SetupTracing(cfg)
	if err != nil {
		slog.Error("failed to setup tracing", slog.Any("error", err))
	}
	defer func() {
		if shutdownTracer != nil {
			_ = shutdownTracer(context.Background())
		}
	}()

	// Carrier catalog
	catalog, err := airline.LoadDefault(cfg.AirlineCatalogPath)
	if err != nil {
		slog.Error("airline catalog load failed", slog.Any("error", err))
		os.Exit(1)
	}

	// Infra: DB pool
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DBURL)
	if err != nil {
		slog.Error("db connect failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		slog.Error("db schema failed", slog.Any("error", err))
		os.Exit(1)
	}
	setRepo := postgres.NewSetRepo(pool)

	if cfg.DataRetentionDays > 0 {
		cleanupSvc := postgres.NewCleanupService(pool, cfg.DataRetentionDays)
		go cleanupSvc.RunPeriodic(ctx, cfg.CleanupInterval)
		slog.Info("cleanup service started", slog.Int("retention_days", cfg.DataRetentionDays), slog.Duration("interval", cfg.CleanupInterval))
	}

	// Question set cache: Redis when configured, in-process otherwise.
	var setCache domain.SetCache
	var rdb *goredis.Client
	if cfg.RedisAddr != "" {
		rdb = goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		setCache = rediscache.New(rdb, cfg.CacheTTL)
		slog.Info("redis cache enabled", slog.String("addr", cfg.RedisAddr))
	} else {
		setCache = memcache.New(cfg.CacheTTL)
		slog.Info("in-process cache enabled")
	}

	// Extraction collaborator: real client when a key is configured.
	var extractor domain.Extractor
	if cfg.ExtractorEnabled() {
		extractor = extreal.New(cfg)
		slog.Info("extraction collaborator enabled", slog.String("model", cfg.ExtractorModel))
	} else {
		extractor = extstub.New()
		slog.Info("extraction collaborator disabled, running local-only")
	}

	genSvc := usecase.NewGenerateService(extractor, setCache, setRepo, catalog)

	var redisCheckClient app.RedisClient
	if rdb != nil {
		redisCheckClient = redisAdapter{rdb}
	}
	dbCheck, redisCheck := app.BuildReadinessChecks(pool, redisCheckClient)

	srv := httpserver.NewServer(cfg, genSvc, dbCheck, redisCheck)
	handler := app.BuildRouter(cfg, srv)

	srvHTTP := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", slog.Int("port", cfg.Port))
		errCh <- srvHTTP.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.Any("error", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()
	_ = srvHTTP.Shutdown(shutdownCtx)
	if rdb != nil {
		_ = rdb.Close()
	}
	pool.Close()
}
