package subm

import (
	"context"

	"github.com/google/uuid"
)

// SubmRepo persists at most one live submission row per team. Status
// writes carry the seq stamped at admission time; the repo compares it
// against the stored seq and reports stale writes instead of applying
// them, which closes the race between a fresh IN_QUEUE reset and a
// terminal write still in flight from the previous job.
type SubmRepo interface {
	// ResetForEnqueue upserts the team's row back to IN_QUEUE with score 0,
	// no error flag and submit time now, and returns the incremented seq.
	ResetForEnqueue(ctx context.Context, teamUuid uuid.UUID) (int64, error)

	// SetPending moves the row to PENDING. Returns false without writing
	// when seq is stale.
	SetPending(ctx context.Context, teamUuid uuid.UUID, seq int64) (bool, error)

	// SetFinished records a successful run. Returns false when seq is stale.
	SetFinished(ctx context.Context, teamUuid uuid.UUID, seq int64, score float64, canHaveError bool) (bool, error)

	// SetError records a failed run. Returns false when seq is stale.
	SetError(ctx context.Context, teamUuid uuid.UUID, seq int64) (bool, error)

	// Get returns the team's submission or nil when it has none yet.
	Get(ctx context.Context, teamUuid uuid.UUID) (*Submission, error)

	// List returns every team's submission row.
	List(ctx context.Context) ([]Submission, error)
}
