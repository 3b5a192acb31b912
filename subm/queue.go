package subm

import (
	"context"
	"log/slog"

	"golang.org/x/sync/semaphore"
)

// Queue runs submitted jobs strictly in enqueue order with at most
// maxConcurrent executing at once (one, in production). It is constructed
// once at startup and owned by the submission service; there is no global
// queue state.
type Queue struct {
	jobs chan Job
	sem  *semaphore.Weighted
	run  func(ctx context.Context, j Job)
}

// queueCapacity bounds how many jobs may wait. A full queue blocks
// Enqueue rather than dropping; with a single-digit team count this
// is never reached in practice.
const queueCapacity = 1024

func NewQueue(maxConcurrent int64, run func(ctx context.Context, j Job)) *Queue {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Queue{
		jobs: make(chan Job, queueCapacity),
		sem:  semaphore.NewWeighted(maxConcurrent),
		run:  run,
	}
}

// Enqueue accepts a job and returns a handle that resolves once the job's
// runner execution, including its store writes, has completed. There is no
// dedup and no per-team limit: a team may have several jobs queued at once.
// That permissiveness is intentional; the cooldown only engages after a job
// completes.
func (q *Queue) Enqueue(job Job) <-chan struct{} {
	job.done = make(chan struct{})
	q.jobs <- job
	return job.done
}

// Run dispatches jobs until ctx is cancelled. Start it in its own goroutine.
// Jobs are taken off the channel in FIFO order and a semaphore slot is
// acquired before the next job may start, so with weight one the execution
// itself is strictly serial across the queue's lifetime.
func (q *Queue) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-q.jobs:
			if err := q.sem.Acquire(ctx, 1); err != nil {
				close(job.done)
				return
			}
			go q.execute(ctx, job)
		}
	}
}

// execute releases the slot and resolves the handle unconditionally, so a
// failing or panicking runner never wedges the dispatch loop and the next
// queued job always gets its turn.
func (q *Queue) execute(ctx context.Context, job Job) {
	defer q.sem.Release(1)
	defer close(job.done)
	defer func() {
		if r := recover(); r != nil {
			slog.Error("submission job panicked",
				"team_uuid", job.TeamUUID, "seq", job.Seq, "panic", r)
		}
	}()
	q.run(ctx, job)
}
