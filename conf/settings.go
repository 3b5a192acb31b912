package conf

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Settings holds the operator-tunable evaluation knobs. They live in a toml
// file next to the binary so they can be changed without touching .env
// secrets.
type Settings struct {
	DataDir              string   `toml:"data_dir"`
	ScorerCmd            []string `toml:"scorer_cmd"`
	ScorerTimeoutSeconds int      `toml:"scorer_timeout_seconds"`
	CooldownSeconds      int      `toml:"cooldown_seconds"`
	MaxConcurrentJobs    int64    `toml:"max_concurrent_jobs"`
}

func DefaultSettings() Settings {
	return Settings{
		DataDir:              "./data",
		ScorerCmd:            []string{"python3", "./docker-run/runner.py"},
		ScorerTimeoutSeconds: 600,
		CooldownSeconds:      300,
		MaxConcurrentJobs:    1,
	}
}

// ReadSettings parses the toml file at path. A missing file yields the
// defaults; a malformed file is an error.
func ReadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to parse settings file: %w", err)
	}

	if len(settings.ScorerCmd) == 0 {
		return settings, fmt.Errorf("scorer_cmd must not be empty")
	}

	return settings, nil
}

func (s Settings) ScorerTimeout() time.Duration {
	return time.Duration(s.ScorerTimeoutSeconds) * time.Second
}

func (s Settings) CooldownWindow() time.Duration {
	return time.Duration(s.CooldownSeconds) * time.Second
}
