// Package worker runs the background jobs of the service on a River queue.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"breachcheck/internal/config"
	"breachcheck/pkg/logger"
	"breachcheck/pkg/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// DefaultMaxWorkers is used when no worker concurrency is configured.
const DefaultMaxWorkers = 10

// Options configure the job queue.
type Options struct {
	MaxWorkers int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{MaxWorkers: cfg.Worker.MaxWorkers}
}

// Start registers the service workers and starts processing the default queue.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	st storage.VerificationStorage,
	options Options) (*river.Client[pgx.Tx], error) {
	if options.MaxWorkers <= 0 {
		options.MaxWorkers = DefaultMaxWorkers
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewExpireSearchWorker(st))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
