package config

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// DifficultyManager derives level, speed, bird odds and score rate from the
// cumulative score. All methods are pure.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// Level returns clamp(1 + floor(score/levelEvery), 1, maxLevel).
func (d *DifficultyManager) Level(score float64) int {
	level := 1 + int(math.Floor(score/d.cfg.LevelEvery))
	if level < 1 {
		return 1
	}
	if level > d.cfg.MaxLevel {
		return d.cfg.MaxLevel
	}
	return level
}

// TargetSpeed returns the stepped scroll speed the session eases toward.
func (d *DifficultyManager) TargetSpeed(score float64) float64 {
	steps := math.Floor(score / d.cfg.SpeedEvery)
	return core.ClampF(d.cfg.BaseSpeed+steps*d.cfg.SpeedStep, d.cfg.BaseSpeed, d.cfg.MaxSpeed)
}

// EaseSpeed moves speed a fixed fraction of the way toward target.
// scale is 1 for one frame-coupled update.
func (d *DifficultyManager) EaseSpeed(speed, target, scale float64) float64 {
	return speed + (target-speed)*d.cfg.Easing*scale
}

// BirdEnabled reports whether birds may spawn at this score.
func (d *DifficultyManager) BirdEnabled(score float64) bool {
	return score >= d.cfg.BirdMinScore
}

// BirdProbability returns the chance that a spawn cycle emits a bird.
func (d *DifficultyManager) BirdProbability(score float64, level int) float64 {
	if !d.BirdEnabled(score) {
		return 0
	}
	p := d.cfg.BirdBaseProb + float64(level-1)*d.cfg.BirdProbPerLevel
	return core.ClampF(p, d.cfg.BirdBaseProb, d.cfg.BirdMaxProb)
}

// ScoreRate returns score gained per step unit at the given level and speed.
func (d *DifficultyManager) ScoreRate(level int, speed float64) float64 {
	return (d.cfg.ScoreBase + float64(level)*d.cfg.ScorePerLevel) * (speed / d.cfg.ScoreSpeedNorm)
}
