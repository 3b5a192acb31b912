package subm

import (
	"time"

	"github.com/google/uuid"
)

// Status is the submission lifecycle state. The only valid forward path is
// IN_QUEUE -> PENDING -> FINISHED | ERROR; a fresh submission resets the row
// back to IN_QUEUE from any state.
type Status string

const (
	StatusInQueue  Status = "IN_QUEUE"
	StatusPending  Status = "PENDING"
	StatusFinished Status = "FINISHED"
	StatusError    Status = "ERROR"
)

func (s Status) IsTerminal() bool {
	return s == StatusFinished || s == StatusError
}

func (s Status) CanTransitionTo(next Status) bool {
	if next == StatusInQueue {
		// a new submission overwrites anything
		return true
	}
	switch s {
	case StatusInQueue:
		return next == StatusPending
	case StatusPending:
		return next == StatusFinished || next == StatusError
	default:
		return false
	}
}

// Submission is the single live record a team has. Seq increases by one on
// every accepted submission; writes carrying an older seq are stale and get
// dropped by the repo.
type Submission struct {
	TeamUUID     uuid.UUID
	Status       Status
	SubmitTime   time.Time
	Score        float64
	CanHaveError bool
	Seq          int64
}

// Job is one unit of work for the queue: evaluate the stages a team selected
// at the moment its submission with the given seq was accepted.
type Job struct {
	TeamUUID uuid.UUID
	Seq      int64
	Stages   []int

	done chan struct{}
}

// Done resolves once the runner has finished the job, including its
// terminal store writes.
func (j Job) Done() <-chan struct{} {
	return j.done
}
