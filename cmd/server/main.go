package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/walletapp/walletd/internal/adapter/http"
	"github.com/walletapp/walletd/internal/adapter/http/handler"
	"github.com/walletapp/walletd/internal/adapter/http/middleware"
	postgresRepo "github.com/walletapp/walletd/internal/adapter/repository/postgres"
	redisRepo "github.com/walletapp/walletd/internal/adapter/repository/redis"
	"github.com/walletapp/walletd/internal/infrastructure/config"
	"github.com/walletapp/walletd/internal/infrastructure/logging"
	"github.com/walletapp/walletd/internal/infrastructure/metrics"
	"github.com/walletapp/walletd/internal/infrastructure/postgres"
	"github.com/walletapp/walletd/internal/infrastructure/redis"
	"github.com/walletapp/walletd/internal/usecase"
)

func main() {
	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Components taking a plain structured logger (migrator, retrier)
	// go through slog.
	slog.SetDefault(logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat).Logger)

	ctx := context.Background()

	// Connect to PostgreSQL
	connectCtx, connectCancel := context.WithTimeout(ctx, cfg.DatabaseTimeout)
	pool, err := postgres.NewPool(connectCtx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	connectCancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis. The service degrades gracefully without it: no
	// fast-path idempotency index, no balance cache.
	var (
		idemIndex usecase.IdempotencyIndex
		cache     usecase.Cache
	)

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, running without idempotency index and cache")
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Info().Msg("connected to redis")
		idemIndex = redisRepo.NewIdempotencyIndex(redisClient, cfg.IdempotencyTTL)
		cache = redisRepo.NewCache(redisClient)
	}

	m := metrics.New()

	// Track pool utilization for the /metrics endpoint.
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			m.DBConnections.Set(float64(pool.Stat().TotalConns()))
		}
	}()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	operationRepo := postgresRepo.NewOperationRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()

	// Initialize use cases
	walletUC := usecase.NewWalletUseCase(txManager, accountRepo, operationRepo, idGen, retrier, idemIndex, cache, m)
	historyUC := usecase.NewHistoryUseCase(accountRepo, operationRepo)

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(walletUC)
	operationHandler := handler.NewOperationHandler(walletUC, historyUC)
	transferHandler := handler.NewTransferHandler(walletUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:   accountHandler,
		OperationHandler: operationHandler,
		TransferHandler:  transferHandler,
		HealthHandler:    healthHandler,
		RateLimiter:      middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
