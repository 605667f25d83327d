// Package config provides YAML-based runner configuration loading and the
// score-driven difficulty model.
package config

import "github.com/vovakirdan/tui-runner/internal/core"

// RunnerConfig contains all tunables of the runner simulation.
type RunnerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Clock      ClockConfig      `yaml:"clock"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Session    SessionConfig    `yaml:"session"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
}

// WorldConfig defines the logical playfield in world pixels.
type WorldConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	GroundOffset    float64 `yaml:"ground_offset"`    // Ground line distance from the bottom edge
	ObstacleMargin  float64 `yaml:"obstacle_margin"`  // Obstacles spawn this far past the right edge
	CloudMargin     float64 `yaml:"cloud_margin"`     // Clouds spawn this far past the right edge
	OffscreenMargin float64 `yaml:"offscreen_margin"` // Entities are pruned once fully this far left of 0
}

// GroundY returns the y-coordinate of the ground line.
func (w WorldConfig) GroundY() float64 {
	return w.Height - w.GroundOffset
}

// ClockConfig defines frame normalization and quality tracking.
type ClockConfig struct {
	IdealFrameMs float64 `yaml:"ideal_frame_ms"` // One step unit, ~1/60 s
	MaxFrameMs   float64 `yaml:"max_frame_ms"`   // Deltas above this are clamped
	FPSSmoothing float64 `yaml:"fps_smoothing"`  // Weight of the previous smoothed FPS
	InitialFPS   float64 `yaml:"initial_fps"`
	MediumFPS    float64 `yaml:"medium_fps"` // Below this: low tier
	HighFPS      float64 `yaml:"high_fps"`   // Below this: medium tier
}

// PhysicsConfig defines vertical player physics.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // Negative = upward
	// FrameCoupled applies gravity, scrolling and speed easing once per
	// frame regardless of step scale, matching the classic game feel.
	// When false every additive per-frame term is scaled by the step.
	FrameCoupled bool `yaml:"frame_coupled"`
}

// PlayerConfig defines the player's fixed position and size.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SessionConfig defines session start values and persistence.
type SessionConfig struct {
	InitialSpeed float64 `yaml:"initial_speed"`
	HighScoreKey string  `yaml:"high_score_key"`
}

// DifficultyConfig defines the score-driven difficulty progression.
type DifficultyConfig struct {
	LevelEvery       float64 `yaml:"level_every"` // Score points per level
	MaxLevel         int     `yaml:"max_level"`
	SpeedEvery       float64 `yaml:"speed_every"` // Score points per speed step
	SpeedStep        float64 `yaml:"speed_step"`
	BaseSpeed        float64 `yaml:"base_speed"`
	MaxSpeed         float64 `yaml:"max_speed"`
	Easing           float64 `yaml:"easing"` // Fraction of the speed gap closed per frame
	BirdMinScore     float64 `yaml:"bird_min_score"`
	BirdBaseProb     float64 `yaml:"bird_base_prob"`
	BirdProbPerLevel float64 `yaml:"bird_prob_per_level"`
	BirdMaxProb      float64 `yaml:"bird_max_prob"`
	ScoreBase        float64 `yaml:"score_base"`
	ScorePerLevel    float64 `yaml:"score_per_level"`
	ScoreSpeedNorm   float64 `yaml:"score_speed_norm"`
}

// SpawnerConfig defines spawn caps, intervals and the fairness gap.
type SpawnerConfig struct {
	RetryDelay    float64    `yaml:"retry_delay"` // Obstacle timer after a capped cycle
	ObstacleCaps  TierInts   `yaml:"obstacle_caps"`
	CloudCaps     TierInts   `yaml:"cloud_caps"`
	CloudInterval TierFloats `yaml:"cloud_interval"`
	CloudJitter   float64    `yaml:"cloud_jitter"`
	Gap           GapConfig  `yaml:"gap"`
}

// GapConfig defines the guaranteed-fair spacing between obstacles.
type GapConfig struct {
	ReactMaxMs       float64 `yaml:"react_max_ms"`
	ReactMinMs       float64 `yaml:"react_min_ms"`
	ReactPerLevelMs  float64 `yaml:"react_per_level_ms"`
	ReactFactor      float64 `yaml:"react_factor"`
	BaseClearance    float64 `yaml:"base_clearance"`
	RunwayBase       float64 `yaml:"runway_base"`
	RunwayPerLevel   float64 `yaml:"runway_per_level"`
	RunwayMax        float64 `yaml:"runway_max"`
	WidthClearance   float64 `yaml:"width_clearance"`
	MinGap           float64 `yaml:"min_gap"`
	MinIntervalSpeed float64 `yaml:"min_interval_speed"`
}

// TierInts holds an integer value per quality tier.
type TierInts struct {
	High   int `yaml:"high"`
	Medium int `yaml:"medium"`
	Low    int `yaml:"low"`
}

// For returns the value for the given tier.
func (t TierInts) For(q core.QualityTier) int {
	switch q {
	case core.QualityLow:
		return t.Low
	case core.QualityMedium:
		return t.Medium
	default:
		return t.High
	}
}

// TierFloats holds a float value per quality tier.
type TierFloats struct {
	High   float64 `yaml:"high"`
	Medium float64 `yaml:"medium"`
	Low    float64 `yaml:"low"`
}

// For returns the value for the given tier.
func (t TierFloats) For(q core.QualityTier) float64 {
	switch q {
	case core.QualityLow:
		return t.Low
	case core.QualityMedium:
		return t.Medium
	default:
		return t.High
	}
}
