package subm

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Account is the slice of the user service the submission pipeline needs.
type Account struct {
	UUID       uuid.UUID
	Nickname   string
	IsAdmin    bool
	IsVerified bool
	IsTeam     bool
}

type UserSrvcFacade interface {
	GetAccount(ctx context.Context, uuid uuid.UUID) (Account, error)
	GetNicknames(ctx context.Context, uuids []uuid.UUID) ([]string, error)
}

type SubmSrvc struct {
	repo     SubmRepo
	users    UserSrvcFacade
	cooldown *CooldownTracker
	queue    *Queue
	dataDir  string
}

type SubmSrvcParams struct {
	Repo          SubmRepo
	Users         UserSrvcFacade
	Cooldown      *CooldownTracker
	Scorer        ScorerFunc
	DataDir       string
	MaxConcurrent int64
	ScorerTimeout time.Duration
}

// NewSubmSrvc wires the pipeline together: runner over the repo and
// cooldown tracker, queue over the runner. The dispatch loop starts
// immediately and stops when ctx is cancelled.
func NewSubmSrvc(ctx context.Context, p SubmSrvcParams) *SubmSrvc {
	runner := NewRunner(p.Repo, p.Cooldown, p.Scorer, p.DataDir, p.ScorerTimeout)
	queue := NewQueue(p.MaxConcurrent, runner.Run)
	go queue.Run(ctx)

	return &SubmSrvc{
		repo:     p.Repo,
		users:    p.Users,
		cooldown: p.Cooldown,
		queue:    queue,
		dataDir:  p.DataDir,
	}
}

// Submit admits one submission: auth gate, cooldown gate, atomic reset to
// IN_QUEUE, artifact write, enqueue. The returned handle resolves when the
// evaluation has fully completed; HTTP callers ignore it and poll instead.
func (s *SubmSrvc) Submit(ctx context.Context, teamUuid uuid.UUID, stages []int, code string) (<-chan struct{}, error) {
	if len(stages) == 0 {
		return nil, newErrNoStagesSelected()
	}

	account, err := s.users.GetAccount(ctx, teamUuid)
	if err != nil {
		return nil, err
	}
	if !account.IsVerified || !account.IsTeam {
		return nil, newErrNotAuthorized()
	}

	if !account.IsAdmin {
		if remaining := s.cooldown.Remaining(teamUuid); remaining > 0 {
			seconds := int(math.Ceil(remaining.Seconds()))
			return nil, newErrCooldownActive(seconds)
		}
	}

	seq, err := s.repo.ResetForEnqueue(ctx, teamUuid)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	if err := s.writeArtifact(teamUuid, code); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	done := s.queue.Enqueue(Job{
		TeamUUID: teamUuid,
		Seq:      seq,
		Stages:   stages,
	})

	return done, nil
}

// writeArtifact persists the submitted program where the scorer expects it.
func (s *SubmSrvc) writeArtifact(teamUuid uuid.UUID, code string) error {
	dir := filepath.Join(s.dataDir, "tmp")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create artifact dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s.py", teamUuid))
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	return nil
}

// GetSubm returns the caller's current submission record.
func (s *SubmSrvc) GetSubm(ctx context.Context, teamUuid uuid.UUID) (*Submission, error) {
	account, err := s.users.GetAccount(ctx, teamUuid)
	if err != nil {
		return nil, err
	}
	if !account.IsVerified || !account.IsTeam {
		return nil, newErrNotAuthorized()
	}

	subm, err := s.repo.Get(ctx, teamUuid)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if subm == nil {
		return nil, newErrSubmissionNotFound()
	}
	return subm, nil
}

type ScoreRow struct {
	Team  string
	Score float64
}

// Scoreboard lists every team's nickname and current score. Public.
func (s *SubmSrvc) Scoreboard(ctx context.Context) ([]ScoreRow, error) {
	subms, err := s.repo.List(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	uuids := make([]uuid.UUID, len(subms))
	for i, subm := range subms {
		uuids[i] = subm.TeamUUID
	}

	nicknames, err := s.users.GetNicknames(ctx, uuids)
	if err != nil {
		return nil, err
	}

	rows := make([]ScoreRow, len(subms))
	for i, subm := range subms {
		rows[i] = ScoreRow{Team: nicknames[i], Score: subm.Score}
	}
	return rows, nil
}
