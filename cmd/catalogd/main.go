package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/gem5-vision/catalogd/internal/config"
	"github.com/gem5-vision/catalogd/internal/db"
	dbRedis "github.com/gem5-vision/catalogd/internal/db/redis"
	logpkg "github.com/gem5-vision/catalogd/internal/logger"
	"github.com/gem5-vision/catalogd/internal/metrics"
	catalogrepo "github.com/gem5-vision/catalogd/internal/repository/catalog"
	searchrepo "github.com/gem5-vision/catalogd/internal/repository/search"
	chiTransport "github.com/gem5-vision/catalogd/internal/transport/chi"
	batchuc "github.com/gem5-vision/catalogd/internal/usecase/batch"
	filtersuc "github.com/gem5-vision/catalogd/internal/usecase/filters"
	healthuc "github.com/gem5-vision/catalogd/internal/usecase/health"
	listinguc "github.com/gem5-vision/catalogd/internal/usecase/listing"
	searchuc "github.com/gem5-vision/catalogd/internal/usecase/search"
	"github.com/gem5-vision/catalogd/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting catalogd API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
		zap.String("index", cfg.Catalog.IndexName),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	if err := ensureIndex(ctx, store, cfg.Catalog); err != nil {
		logger.Fatal("Failed to ensure search index", zap.Error(err))
	}

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// Create repositories
	searchRepo := searchrepo.New(store, searchrepo.Config{
		IndexName:     cfg.Catalog.IndexName,
		MaxCandidates: cfg.Catalog.MaxCandidates,
	})
	catalogRepo := catalogrepo.New(store, catalogrepo.Config{
		IndexName:     cfg.Catalog.IndexName,
		KeyPrefix:     cfg.Catalog.KeyPrefix,
		MaxCandidates: cfg.Catalog.MaxCandidates,
	})

	// Create use case services
	searchSvc := searchuc.New(searchRepo)
	batchSvc := batchuc.New(catalogRepo)
	listingSvc := listinguc.New(catalogRepo)
	filtersSvc := filtersuc.New(catalogRepo)
	healthSvc := healthuc.New(store, store, cfg.Catalog.IndexName)

	// Create chi server
	server := chiTransport.NewServer(searchSvc, batchSvc, listingSvc, filtersSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.RegisterRoutes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// ensureIndex creates the catalog search index if it does not exist yet.
func ensureIndex(ctx context.Context, store db.Store, cfg config.CatalogConfig) error {
	def, err := catalogrepo.Schema(cfg.IndexName, cfg.KeyPrefix)
	if err != nil {
		return fmt.Errorf("build index schema: %w", err)
	}
	if err := store.CreateIndex(ctx, def); err != nil && !errors.Is(err, db.ErrIndexExists) {
		return fmt.Errorf("create index %s: %w", cfg.IndexName, err)
	}
	return nil
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"error": "Internal server error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
