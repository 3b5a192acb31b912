package subm

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type inMemRepo struct {
	mu    sync.RWMutex
	subms map[uuid.UUID]Submission
}

func NewInMemRepo() SubmRepo {
	return &inMemRepo{
		subms: make(map[uuid.UUID]Submission),
	}
}

func (r *inMemRepo) ResetForEnqueue(ctx context.Context, teamUuid uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	subm := r.subms[teamUuid]
	subm.TeamUUID = teamUuid
	subm.Status = StatusInQueue
	subm.SubmitTime = time.Now()
	subm.Score = 0
	subm.CanHaveError = false
	subm.Seq++
	r.subms[teamUuid] = subm
	return subm.Seq, nil
}

func (r *inMemRepo) SetPending(ctx context.Context, teamUuid uuid.UUID, seq int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	subm, ok := r.subms[teamUuid]
	if !ok || subm.Seq != seq {
		return false, nil
	}
	subm.Status = StatusPending
	r.subms[teamUuid] = subm
	return true, nil
}

func (r *inMemRepo) SetFinished(ctx context.Context, teamUuid uuid.UUID, seq int64, score float64, canHaveError bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	subm, ok := r.subms[teamUuid]
	if !ok || subm.Seq != seq {
		return false, nil
	}
	subm.Status = StatusFinished
	subm.SubmitTime = time.Now()
	subm.Score = score
	subm.CanHaveError = canHaveError
	r.subms[teamUuid] = subm
	return true, nil
}

func (r *inMemRepo) SetError(ctx context.Context, teamUuid uuid.UUID, seq int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	subm, ok := r.subms[teamUuid]
	if !ok || subm.Seq != seq {
		return false, nil
	}
	subm.Status = StatusError
	subm.SubmitTime = time.Now()
	subm.CanHaveError = true
	r.subms[teamUuid] = subm
	return true, nil
}

func (r *inMemRepo) Get(ctx context.Context, teamUuid uuid.UUID) (*Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if subm, ok := r.subms[teamUuid]; ok {
		return &subm, nil
	}
	return nil, nil
}

func (r *inMemRepo) List(ctx context.Context) ([]Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	subms := make([]Submission, 0, len(r.subms))
	for _, subm := range r.subms {
		subms = append(subms, subm)
	}
	return subms, nil
}
