package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. When called on a TxStorage the job is
// inserted in the surrounding transaction and becomes visible on commit.
type JobStorage interface {
	// AddJob enqueues a job and reports whether it was inserted (false when it
	// was skipped as a unique duplicate).
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
