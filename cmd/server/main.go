package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golf-content-service/internal/adapters/primary/http/handlers"
	"golf-content-service/internal/adapters/primary/http/middleware"
	"golf-content-service/internal/adapters/secondary/postgres"
	"golf-content-service/internal/adapters/secondary/redis"
	"golf-content-service/internal/adapters/secondary/sanity"
	"golf-content-service/internal/config"
	ports "golf-content-service/internal/core/ports/output"
	"golf-content-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Secondary Adapters
	store := sanity.NewClient(&cfg.Sanity)
	urls := sanity.NewURLBuilder(&cfg.Sanity)
	log.WithFields(log.Fields{
		"project": cfg.Sanity.ProjectID,
		"dataset": cfg.Sanity.Dataset,
		"cdn":     cfg.Sanity.UseCDN,
	}).Info("content store client initialized")

	// Snapshot store (Optional - based on config)
	var snapshots ports.SnapshotRepository
	if cfg.Database.Enabled {
		pool, err := newPool(ctx, &cfg.Database)
		if err != nil {
			log.Warnf("snapshot store init failed (continuing without stale fallback): %v", err)
		} else {
			defer pool.Close()
			snapshots = postgres.NewSnapshotRepository(pool)
			go pruneSnapshots(ctx, snapshots, cfg.Database.SnapshotMaxAge)
			log.Info("snapshot store initialized")
		}
	} else {
		log.Info("snapshot store disabled")
	}

	// Query cache (Optional - based on config)
	var cache ports.QueryCache
	if cfg.Redis.Enabled {
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Warnf("query cache init failed (continuing without cache): %v", err)
			_ = client.Close()
		} else {
			defer client.Close()
			cache = redis.NewQueryCache(client)
			log.Info("query cache initialized")
		}
	} else {
		log.Info("query cache disabled")
	}

	// Core Services (Application Layer)
	imageSvc := services.NewImageService(urls)
	videoSvc := services.NewVideoService(cfg.Video.BrightcoveAccountID, urls, imageSvc)
	contentSvc := services.NewContentService(store, cache, snapshots, imageSvc, videoSvc, services.ContentOptions{
		CacheTTL:  cfg.Redis.TTL,
		BaseWidth: cfg.Image.BaseWidth,
	})

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(contentSvc, imageSvc, cfg.Image.BaseWidth)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), middleware.Metrics(), gin.Recovery())

	api := router.Group("/api/v1/content")
	h.RegisterRoutes(api)

	router.GET("/healthz", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func newPool(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// pruneSnapshots drops snapshots older than maxAge once an hour.
func pruneSnapshots(ctx context.Context, repo ports.SnapshotRepository, maxAge time.Duration) {
	if maxAge <= 0 {
		return
	}
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := repo.DeleteOlderThan(ctx, time.Now().Add(-maxAge))
			if err != nil {
				log.WithError(err).Warn("snapshot prune failed")
				continue
			}
			if n > 0 {
				log.WithField("deleted", n).Info("pruned stale snapshots")
			}
		}
	}
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
