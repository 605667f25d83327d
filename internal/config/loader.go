package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs to list the
// values it changes.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if cfg, ok := loadOptional(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := loadOptional(filepath.Join("configs", "runner.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultRunnerConfig and validates the result.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// Validate rejects values that would break the simulation's clamps.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world: size must be positive, got %vx%v", c.World.Width, c.World.Height)
	check(c.World.GroundOffset >= 0 && c.World.GroundOffset < c.World.Height, "world: ground_offset %v out of range", c.World.GroundOffset)
	check(c.Clock.IdealFrameMs > 0, "clock: ideal_frame_ms must be positive")
	check(c.Clock.MaxFrameMs >= c.Clock.IdealFrameMs, "clock: max_frame_ms must be >= ideal_frame_ms")
	check(c.Clock.FPSSmoothing >= 0 && c.Clock.FPSSmoothing < 1, "clock: fps_smoothing must be in [0, 1)")
	check(c.Clock.MediumFPS <= c.Clock.HighFPS, "clock: medium_fps must be <= high_fps")
	check(c.Player.Width > 0 && c.Player.Height > 0, "player: size must be positive")
	check(c.Session.HighScoreKey != "", "session: high_score_key must be set")
	check(c.Difficulty.LevelEvery > 0 && c.Difficulty.SpeedEvery > 0, "difficulty: level_every and speed_every must be positive")
	check(c.Difficulty.MaxLevel >= 1, "difficulty: max_level must be >= 1")
	check(c.Difficulty.BaseSpeed <= c.Difficulty.MaxSpeed, "difficulty: base_speed must be <= max_speed")
	check(c.Difficulty.BirdBaseProb <= c.Difficulty.BirdMaxProb, "difficulty: bird_base_prob must be <= bird_max_prob")
	check(c.Difficulty.ScoreSpeedNorm > 0, "difficulty: score_speed_norm must be positive")
	check(c.Spawner.ObstacleCaps.Low > 0 && c.Spawner.ObstacleCaps.Medium > 0 && c.Spawner.ObstacleCaps.High > 0, "spawner: obstacle caps must be positive")
	check(c.Spawner.RetryDelay > 0, "spawner: retry_delay must be positive")
	check(c.Spawner.Gap.ReactMinMs <= c.Spawner.Gap.ReactMaxMs, "spawner: react_min_ms must be <= react_max_ms")
	check(c.Spawner.Gap.MinGap > 0, "spawner: min_gap must be positive")
	check(c.Spawner.Gap.MinIntervalSpeed > 0, "spawner: min_interval_speed must be positive")

	return errors.Join(errs...)
}

// loadOptional reads a config from a search-path location. A missing file is
// silently skipped; an unreadable or invalid one is skipped with a warning.
func loadOptional(path string) (RunnerConfig, bool) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return RunnerConfig{}, false
	}
	if err != nil {
		log.Warn("ignoring unreadable config", "path", path, "error", err)
		return RunnerConfig{}, false
	}
	cfg, err := Parse(data)
	if err != nil {
		log.Warn("ignoring invalid config, using defaults", "path", path, "error", err)
		return RunnerConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}
