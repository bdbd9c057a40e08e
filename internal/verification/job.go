package verification

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// ExpireJobArgs schedules the expiry of a search request. If the request is
// still PROCESSING when the job runs it is marked FAILED.
type ExpireJobArgs struct {
	SearchRequestID string `json:"searchRequestId" river:"unique"`

	runAt time.Time
}

// Kind returns the River job kind used to register and dispatch the expiry worker.
func (args ExpireJobArgs) Kind() string { return "ExpireSearchJob" }

// InsertOpts schedules the job and keeps a single expiry job per request.
func (args ExpireJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 5,
		ScheduledAt: args.runAt,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
