package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host refresh rate in frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score     int  // Current score, floored
	Level     int  // Current level
	HighScore int  // Best score across sessions
	GameOver  bool // Whether the run has ended
}

// StepResult is returned by Game.Step() after each simulation frame.
type StepResult struct {
	State GameState
}

// QualityTier is the frame-rate derived rendering level.
type QualityTier int

const (
	QualityHigh QualityTier = iota
	QualityMedium
	QualityLow
)

// String returns the tier name.
func (q QualityTier) String() string {
	switch q {
	case QualityHigh:
		return "high"
	case QualityMedium:
		return "med"
	case QualityLow:
		return "low"
	default:
		return "unknown"
	}
}
