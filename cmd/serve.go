package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"breachcheck/internal/api"
	"breachcheck/internal/api/handler/v1handler"
	"breachcheck/internal/config"
	"breachcheck/internal/exposure"
	"breachcheck/internal/verification"
	"breachcheck/internal/worker"
	"breachcheck/pkg/breachprovider/dehashed"
	"breachcheck/pkg/kvstore"
	"breachcheck/pkg/kvstore/memory"
	"breachcheck/pkg/kvstore/redisstore"
	"breachcheck/pkg/logger"
	"breachcheck/pkg/metrics"
	"breachcheck/pkg/ratelimit"
	"breachcheck/pkg/resultcache"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// janitorInterval is how often the in-process store drops expired keys.
const janitorInterval = time.Minute

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// setupKVStore returns the store backing rate limits and cached results.
// Redis is used when configured, otherwise an in-process store.
func setupKVStore(ctx context.Context, cfg *config.Config) (kvstore.Store, func()) {
	if cfg.Redis.URL == "" {
		logger.Info(ctx, "using in-process store for rate limits and cached results")
		store := memory.New()
		store.StartJanitor(ctx, janitorInterval)

		return store, func() {}
	}

	client, err := redisstore.Connect(ctx, redisstore.Options{
		Addr:     cfg.Redis.URL,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
	}

	return redisstore.New(client, cfg.Redis.Prefix), func() {
		logger.Info(ctx, "closing redis client...")
		if err := client.Close(); err != nil {
			logger.Warn(ctx, "could not close redis client", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := cfg.ValidateProvider(); err != nil {
				logger.Fatal(ctx, "breach provider is not configured", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			store, closeStore := setupKVStore(ctx, cfg)
			defer closeStore()

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			clock := clockwork.NewRealClock()
			limiter := ratelimit.New(store, cfg.Verification.RateLimit, cfg.Verification.RateWindow)
			verifier, err := verification.New(verification.Deps{
				Storage: strg,
				Provider: dehashed.New(&http.Client{Timeout: cfg.Provider.Timeout},
					cfg.Provider.BaseURL,
					cfg.Provider.APIKey,
					cfg.Provider.PageSize),
				Limiter:       limiter,
				Cache:         resultcache.New(store, cfg.Verification.CacheTTL),
				Analyzer:      exposure.NewAnalyzer(cfg.Verification.PauseEvery, cfg.Verification.Pause, clock),
				MeterProvider: mp,
				Clock:         clock,
			}, verification.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create verification service", zap.Error(err))
			}

			riverClient, err := worker.Start(ctx, strg.Pool, strg, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{V1: v1handler.Deps{
				Verifier:      verifier,
				RetryAfter:    limiter.Window(),
				MeterProvider: mp,
			}})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shut down meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
