package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Snapshot is an immutable view of one frame, handed to renderers.
// Slices are copies; mutating them does not affect the engine.
type Snapshot struct {
	Player    Player
	Obstacles []Obstacle // spawn order
	Clouds    []Cloud    // spawn order

	Running   bool
	Over      bool
	Score     int // floored
	Level     int
	HighScore int
	Speed     float64

	Elapsed float64 // simulated step units since restart
	Tier    core.QualityTier
	FPS     float64 // smoothed
}

// State converts the snapshot into the host-facing game state.
func (s Snapshot) State() core.GameState {
	return core.GameState{
		Score:     s.Score,
		Level:     s.Level,
		HighScore: s.HighScore,
		GameOver:  s.Over,
	}
}
