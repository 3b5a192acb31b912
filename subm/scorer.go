package subm

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"

	"github.com/google/uuid"
)

// ScorerFunc invokes the external scorer for one team and returns its
// captured stdout. A non-nil error covers non-zero exit, timeout and
// start failures alike; the runner treats them all as a failed run.
type ScorerFunc func(ctx context.Context, teamUuid uuid.UUID, dataDir string, stages []int) ([]byte, error)

// NewCmdScorer builds the production ScorerFunc around cmd, e.g.
// ["python3", "./docker-run/runner.py"]. The child receives exactly the
// sanctioned arguments: team id, the shared data root and the selected
// stage indices, nothing else.
func NewCmdScorer(cmd []string) ScorerFunc {
	return func(ctx context.Context, teamUuid uuid.UUID, dataDir string, stages []int) ([]byte, error) {
		args := make([]string, 0, len(cmd)-1+2+len(stages))
		args = append(args, cmd[1:]...)
		args = append(args, teamUuid.String(), dataDir)
		for _, stage := range stages {
			args = append(args, strconv.Itoa(stage))
		}

		child := exec.CommandContext(ctx, cmd[0], args...)

		var stdout bytes.Buffer
		var stderr bytes.Buffer
		child.Stdout = &stdout
		child.Stderr = &stderr

		err := child.Run()
		if stderr.Len() > 0 {
			slog.Debug("scorer stderr",
				"team_uuid", teamUuid, "stderr", stderr.String())
		}
		if err != nil {
			return stdout.Bytes(), fmt.Errorf("scorer run failed: %w", err)
		}

		return stdout.Bytes(), nil
	}
}
