package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestClockFirstFrameIsZero(t *testing.T) {
	c := NewClock(config.DefaultRunnerConfig().Clock)

	step, fps := c.Tick(5000)
	if step != 0 {
		t.Errorf("first frame step = %v, expected 0", step)
	}
	if fps != 1000 {
		t.Errorf("first frame fps = %v, expected 1000", fps)
	}
}

func TestClockNormalization(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
		step  float64
		fps   float64
	}{
		{"ideal frame", 16.666, 1.0, 1000 / 16.666},
		{"half frame", 8.333, 0.5, 1000 / 8.333},
		{"two frames", 32, 32 / 16.666, 1000.0 / 32},
		{"stall clamped", 500, 32 / 16.666, 2},
		{"sub-millisecond", 0.5, 0.5 / 16.666, 1000},
		{"clock went backwards", -40, 0, 1000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewClock(config.DefaultRunnerConfig().Clock)
			c.Tick(1000)

			step, fps := c.Tick(1000 + tc.delta)
			if !approx(step, tc.step) {
				t.Errorf("step = %v, expected %v", step, tc.step)
			}
			if !approx(fps, tc.fps) {
				t.Errorf("fps = %v, expected %v", fps, tc.fps)
			}
		})
	}
}

func TestClockResetForgetsLastTimestamp(t *testing.T) {
	c := NewClock(config.DefaultRunnerConfig().Clock)
	c.Tick(0)
	step, _ := c.Tick(16.666)
	c.Advance(step)

	c.Reset()
	if c.Elapsed() != 0 {
		t.Errorf("Elapsed() after reset = %v, expected 0", c.Elapsed())
	}

	// A long pause must not become a delta
	if step, _ := c.Tick(60000); step != 0 {
		t.Errorf("first step after reset = %v, expected 0", step)
	}
	if step, _ := c.Tick(60016.666); !approx(step, 1) {
		t.Errorf("second step after reset = %v, expected 1", step)
	}
}

func TestClockElapsedAccumulates(t *testing.T) {
	c := NewClock(config.DefaultRunnerConfig().Clock)
	ts := 0.0
	for i := 0; i < 60; i++ {
		step, _ := c.Tick(ts)
		c.Advance(step)
		ts += 16.666
	}

	// 59 real deltas after the zero first frame
	if !approx(c.Elapsed(), 59) {
		t.Errorf("Elapsed() = %v, expected 59", c.Elapsed())
	}
	if got := c.Seconds(); math.Abs(got-59*0.016666) > 1e-9 {
		t.Errorf("Seconds() = %v", got)
	}
}

func TestQualityStartsHigh(t *testing.T) {
	q := NewQuality(config.DefaultRunnerConfig().Clock)
	if q.FPS() != 60 {
		t.Errorf("initial FPS = %v, expected 60", q.FPS())
	}
	if q.Tier() != core.QualityHigh {
		t.Errorf("initial tier = %v, expected high", q.Tier())
	}
}

func TestQualitySmoothing(t *testing.T) {
	q := NewQuality(config.DefaultRunnerConfig().Clock)

	// 0.9*60 + 0.1*30 = 57
	if tier := q.Sample(30); tier != core.QualityHigh || !approx(q.FPS(), 57) {
		t.Fatalf("after 1 sample: fps=%v tier=%v", q.FPS(), tier)
	}
	// 0.9*57 + 3 = 54.3
	if tier := q.Sample(30); tier != core.QualityMedium {
		t.Fatalf("after 2 samples: fps=%v tier=%v, expected med", q.FPS(), tier)
	}

	samples := 2
	for q.Tier() != core.QualityLow {
		q.Sample(30)
		samples++
		if samples > 20 {
			t.Fatal("sustained 30 fps never reached low tier")
		}
	}
	if samples != 7 {
		t.Errorf("reached low tier after %d samples, expected 7", samples)
	}

	// Recovery works the same way
	for i := 0; i < 100; i++ {
		q.Sample(60)
	}
	if q.Tier() != core.QualityHigh {
		t.Errorf("tier after recovery = %v, expected high", q.Tier())
	}
}

func TestQualityTierBoundaries(t *testing.T) {
	q := NewQuality(config.DefaultRunnerConfig().Clock)

	tests := []struct {
		fps  float64
		tier core.QualityTier
	}{
		{10, core.QualityLow},
		{44.99, core.QualityLow},
		{45, core.QualityMedium},
		{54.99, core.QualityMedium},
		{55, core.QualityHigh},
		{144, core.QualityHigh},
	}

	for _, tc := range tests {
		if got := q.tierFor(tc.fps); got != tc.tier {
			t.Errorf("tierFor(%v) = %v, expected %v", tc.fps, got, tc.tier)
		}
	}
}
