package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:           800,
			Height:          300,
			GroundOffset:    48,
			ObstacleMargin:  30,
			CloudMargin:     20,
			OffscreenMargin: 20,
		},
		Clock: ClockConfig{
			IdealFrameMs: 16.666,
			MaxFrameMs:   32,
			FPSSmoothing: 0.9,
			InitialFPS:   60,
			MediumFPS:    45,
			HighFPS:      55,
		},
		Physics: PhysicsConfig{
			Gravity:      0.7,
			JumpImpulse:  -13.5,
			FrameCoupled: true,
		},
		Player: PlayerConfig{
			X:      80,
			Width:  48,
			Height: 48,
		},
		Session: SessionConfig{
			InitialSpeed: 3.2,
			HighScoreKey: "runnerHighScore",
		},
		Difficulty: DifficultyConfig{
			LevelEvery:       300,
			MaxLevel:         99,
			SpeedEvery:       100,
			SpeedStep:        0.35,
			BaseSpeed:        3.0,
			MaxSpeed:         10.0,
			Easing:           0.08,
			BirdMinScore:     200,
			BirdBaseProb:     0.05,
			BirdProbPerLevel: 0.03,
			BirdMaxProb:      0.5,
			ScoreBase:        2,
			ScorePerLevel:    0.2,
			ScoreSpeedNorm:   6,
		},
		Spawner: SpawnerConfig{
			RetryDelay:    0.3,
			ObstacleCaps:  TierInts{High: 8, Medium: 7, Low: 6},
			CloudCaps:     TierInts{High: 12, Medium: 8, Low: 5},
			CloudInterval: TierFloats{High: 1.4, Medium: 1.6, Low: 2.0},
			CloudJitter:   1.2,
			Gap: GapConfig{
				ReactMaxMs:       520,
				ReactMinMs:       340,
				ReactPerLevelMs:  6,
				ReactFactor:      0.35,
				BaseClearance:    160,
				RunwayBase:       120,
				RunwayPerLevel:   8,
				RunwayMax:        200,
				WidthClearance:   1.6,
				MinGap:           220,
				MinIntervalSpeed: 3,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
