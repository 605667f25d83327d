package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Clock converts host frame timestamps into simulation steps.
// One step unit equals one ideal 60 Hz frame.
type Clock struct {
	cfg     config.ClockConfig
	last    float64 // previous frame timestamp in ms
	primed  bool    // false until the first frame after construction or Reset
	elapsed float64 // accumulated step units since the last Reset
}

// NewClock creates a clock that treats its next frame as the first.
func NewClock(cfg config.ClockConfig) *Clock {
	return &Clock{cfg: cfg}
}

// Tick consumes a frame timestamp (ms) and returns the step scale and the
// instantaneous FPS for that frame. The first frame after a reset has a zero
// delta. Deltas are clamped to [0, MaxFrameMs].
func (c *Clock) Tick(ts float64) (step, fps float64) {
	if !c.primed {
		c.last = ts
		c.primed = true
	}

	raw := ts - c.last
	c.last = ts
	if raw < 0 {
		raw = 0
	}

	step = math.Min(c.cfg.MaxFrameMs, raw) / c.cfg.IdealFrameMs
	fps = 1000 / math.Max(1, raw)
	return step, fps
}

// Advance adds a step to the simulated elapsed time.
// Only frames that actually simulate advance the clock.
func (c *Clock) Advance(step float64) {
	c.elapsed += step
}

// Reset forgets the previous timestamp and zeroes elapsed time, so a paused
// interval never turns into a large first delta.
func (c *Clock) Reset() {
	c.primed = false
	c.last = 0
	c.elapsed = 0
}

// Elapsed returns simulated time in step units.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Seconds returns simulated time in seconds at the ideal frame rate.
func (c *Clock) Seconds() float64 {
	return c.elapsed * c.cfg.IdealFrameMs / 1000
}

// Quality tracks smoothed FPS and derives the rendering tier.
// The tier has no hysteresis beyond the smoothing itself.
type Quality struct {
	cfg  config.ClockConfig
	fps  float64
	tier core.QualityTier
}

// NewQuality creates a tracker starting at the configured FPS.
func NewQuality(cfg config.ClockConfig) *Quality {
	q := &Quality{cfg: cfg, fps: cfg.InitialFPS}
	q.tier = q.tierFor(q.fps)
	return q
}

// Sample folds an instantaneous FPS reading into the smoothed value.
func (q *Quality) Sample(fps float64) core.QualityTier {
	q.fps = q.fps*q.cfg.FPSSmoothing + fps*(1-q.cfg.FPSSmoothing)
	q.tier = q.tierFor(q.fps)
	return q.tier
}

func (q *Quality) tierFor(fps float64) core.QualityTier {
	switch {
	case fps < q.cfg.MediumFPS:
		return core.QualityLow
	case fps < q.cfg.HighFPS:
		return core.QualityMedium
	default:
		return core.QualityHigh
	}
}

// FPS returns the smoothed frame rate.
func (q *Quality) FPS() float64 {
	return q.fps
}

// Tier returns the current quality tier.
func (q *Quality) Tier() core.QualityTier {
	return q.tier
}
