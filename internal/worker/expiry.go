package worker

import (
	"context"
	"fmt"

	"breachcheck/internal/verification"
	"breachcheck/pkg/domain"
	"breachcheck/pkg/logger"
	"breachcheck/pkg/storage"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// ExpireSearchWorker fails search requests that are still PROCESSING when
// their expiry job runs. Requests that completed or failed in the meantime are
// left untouched.
type ExpireSearchWorker struct {
	river.WorkerDefaults[verification.ExpireJobArgs]

	storage storage.VerificationStorage
}

// NewExpireSearchWorker constructs an ExpireSearchWorker.
func NewExpireSearchWorker(st storage.VerificationStorage) *ExpireSearchWorker {
	return &ExpireSearchWorker{storage: st}
}

// Work marks the job's search request FAILED if it is still PROCESSING.
func (w *ExpireSearchWorker) Work(ctx context.Context, job *river.Job[verification.ExpireJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("searchRequestID", job.Args.SearchRequestID))

	id, err := uuid.Parse(job.Args.SearchRequestID)
	if err != nil {
		logger.Error(ctx, "invalid search request id in expiry job", zap.Error(err))

		return river.JobCancel(fmt.Errorf("invalid search request id: %w", err)) //nolint: wrapcheck
	}

	updated, err := w.storage.UpdateSearchRequest(ctx, domain.SearchRequestID(id), storage.SearchRequestUpdates{
		Status:           domain.SearchStatusFailed,
		OnlyIfProcessing: true,
	})
	if err != nil {
		logger.Error(ctx, "could not expire search request", zap.Error(err))

		return fmt.Errorf("could not expire search request: %w", err)
	}

	if updated == nil {
		logger.Debug(ctx, "search request already finished")

		return nil
	}

	logger.Warn(ctx, "stale search request marked as failed")

	return nil
}
