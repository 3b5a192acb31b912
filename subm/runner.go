package subm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Runner executes exactly one job end to end and leaves the store in a
// terminal, consistent state no matter how the scorer behaves.
type Runner struct {
	repo     SubmRepo
	cooldown *CooldownTracker
	scorer   ScorerFunc
	dataDir  string
	timeout  time.Duration
}

func NewRunner(repo SubmRepo, cooldown *CooldownTracker, scorer ScorerFunc, dataDir string, timeout time.Duration) *Runner {
	return &Runner{
		repo:     repo,
		cooldown: cooldown,
		scorer:   scorer,
		dataDir:  dataDir,
		timeout:  timeout,
	}
}

type scoreReport struct {
	Score float64 `json:"score"`
}

func (r *Runner) Run(ctx context.Context, job Job) {
	log := slog.Default().With("team_uuid", job.TeamUUID, "seq", job.Seq)

	updated, err := r.repo.SetPending(ctx, job.TeamUUID, job.Seq)
	if err != nil {
		// invoking the scorer with stale bookkeeping helps nobody;
		// the row is still IN_QUEUE and a re-submit recovers it
		log.Error("failed to mark submission pending, aborting job", "error", err)
		return
	}
	if !updated {
		// a newer submission already reset the row; this job is obsolete
		log.Debug("skipping job with stale seq")
		return
	}

	scorerCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		scorerCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	stdout, runErr := r.scorer(scorerCtx, job.TeamUUID, r.dataDir, job.Stages)

	// success and failure both start the cooldown window
	r.cooldown.RecordAttempt(job.TeamUUID)

	if runErr != nil {
		log.Info("scorer run failed", "error", runErr)
		r.writeTerminal(ctx, log, func(ctx context.Context) (bool, error) {
			return r.repo.SetError(ctx, job.TeamUUID, job.Seq)
		})
		return
	}

	var report scoreReport
	if err := json.Unmarshal(stdout, &report); err != nil {
		log.Info("scorer output is not a valid score report", "error", err)
		r.writeTerminal(ctx, log, func(ctx context.Context) (bool, error) {
			return r.repo.SetError(ctx, job.TeamUUID, job.Seq)
		})
		return
	}

	canHaveError := r.teamLogNonEmpty(job.TeamUUID, log)

	log.Info("scorer run finished",
		"score", report.Score, "can_have_error", canHaveError)
	r.writeTerminal(ctx, log, func(ctx context.Context) (bool, error) {
		return r.repo.SetFinished(ctx, job.TeamUUID, job.Seq, report.Score, canHaveError)
	})
}

// writeTerminal applies a terminal status write, retrying once: losing the
// write would strand the submission in PENDING forever.
func (r *Runner) writeTerminal(ctx context.Context, log *slog.Logger, write func(ctx context.Context) (bool, error)) {
	updated, err := write(ctx)
	if err != nil {
		log.Error("terminal submission write failed, retrying", "error", err)
		updated, err = write(ctx)
		if err != nil {
			log.Error("terminal submission write failed twice, submission may be stuck in PENDING", "error", err)
			return
		}
	}
	if !updated {
		log.Debug("dropped stale terminal write")
	}
}

// teamLogNonEmpty reports whether the team's scorer log holds diagnostic
// content. A lone newline counts as empty. Read failures are themselves
// diagnostic, so they count as content rather than crashing the job.
func (r *Runner) teamLogNonEmpty(teamUuid uuid.UUID, log *slog.Logger) bool {
	logPath := filepath.Join(r.dataDir, "logs", fmt.Sprintf("%s.log", teamUuid))
	content, err := os.ReadFile(logPath)
	if err != nil {
		log.Warn("failed to read team log", "path", logPath, "error", err)
		return true
	}
	trimmed := bytes.TrimSuffix(content, []byte("\n"))
	return len(trimmed) > 0
}
