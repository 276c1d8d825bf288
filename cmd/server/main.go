package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/cashfee/internal/adapter/http"
	"github.com/iho/cashfee/internal/adapter/http/handler"
	redisRepo "github.com/iho/cashfee/internal/adapter/repository/redis"
	"github.com/iho/cashfee/internal/adapter/ruleclient"
	"github.com/iho/cashfee/internal/infrastructure/config"
	"github.com/iho/cashfee/internal/infrastructure/idgen"
	"github.com/iho/cashfee/internal/infrastructure/logger"
	"github.com/iho/cashfee/internal/infrastructure/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	ctx := context.Background()

	// Build the rule provider, optionally backed by Redis
	client := ruleclient.NewClient(cfg.RuleAPIBaseURL, cfg.RuleFetchTimeout, appLogger)

	var redisClient *goredis.Client
	if cfg.CacheEnabled {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		log.Info().Msg("connected to redis")

		client = client.WithCache(redisRepo.NewRuleCache(redisClient), cfg.RuleCacheTTL)
	}

	// Initialize handlers
	batchHandler := handler.NewBatchHandler(client, idgen.NewULIDGenerator(), appLogger)
	healthHandler := handler.NewHealthHandler(redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		BatchHandler:  batchHandler,
		HealthHandler: healthHandler,
		Logger:        appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
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
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
