// Package runner implements the endless-runner simulation: frame
// normalization, score-driven difficulty, fair obstacle spawning, player
// physics, scrolling, collision and the running/game-over session.
//
// An Engine is a self-contained simulation context. Hosts queue Jump and
// Restart commands from any goroutine and call Frame once per display
// refresh; queued commands are applied atomically at the start of that frame.
package runner

import (
	"io"
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// HighScoreStore persists the best score under a fixed key.
type HighScoreStore interface {
	// Get returns the stored high score, 0 if absent.
	Get() (int, error)
	// Set stores the high score.
	Set(score int) error
}

// HUD receives display values when they change.
type HUD interface {
	ShowScore(score int)
	ShowLevel(level int)
	ShowHighScore(high int)
}

// Option configures an Engine.
type Option func(*Engine)

// WithRandom sets the spawner's random source.
func WithRandom(rng Random) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithStore sets the persisted high-score store.
func WithStore(store HighScoreStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithHUD sets the score display sink.
func WithHUD(hud HUD) Option {
	return func(e *Engine) {
		e.hud = hud
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Engine owns one game session and every subsystem it drives.
type Engine struct {
	cfg     config.RunnerConfig
	groundY float64

	diff    *config.DifficultyManager
	clock   *Clock
	quality *Quality
	spawner *Spawner
	mover   Mover
	rng     Random

	store  HighScoreStore
	hud    HUD
	logger *log.Logger

	// Session
	running   bool
	over      bool
	score     float64
	level     int
	speed     float64
	highScore int

	player    Player
	obstacles []Obstacle
	clouds    []Cloud

	// Command queue, drained once per frame
	mu             sync.Mutex
	pendingJump    bool
	pendingRestart bool

	// Last values pushed to the HUD
	shownScore int
	shownLevel int
	shownHigh  int
}

// NewEngine creates a running session. The high score is read from the
// store once; a failed read starts from 0.
func NewEngine(cfg config.RunnerConfig, opts ...Option) *Engine {
	e := &Engine{
		cfg:     cfg,
		groundY: cfg.World.GroundY(),
		diff:    config.NewDifficultyManager(cfg.Difficulty),
		clock:   NewClock(cfg.Clock),
		quality: NewQuality(cfg.Clock),
		mover: Mover{
			Threshold:    -cfg.World.OffscreenMargin,
			FrameCoupled: cfg.Physics.FrameCoupled,
		},
		logger:    log.New(io.Discard),
		obstacles: make([]Obstacle, 0, cfg.Spawner.ObstacleCaps.High+clusterMinCount+clusterCountVar),
		clouds:    make([]Cloud, 0, cfg.Spawner.CloudCaps.High),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = NewRandom(0)
	}
	e.spawner = NewSpawner(cfg.Spawner, cfg.World, e.diff, e.rng)

	if e.store != nil {
		high, err := e.store.Get()
		if err != nil {
			e.logger.Warn("could not load high score", "key", cfg.Session.HighScoreKey, "error", err)
		} else if high > 0 {
			e.highScore = high
		}
	}

	e.reset()
	return e
}

// Jump queues a jump for the next frame. It is ignored while airborne or
// game over.
func (e *Engine) Jump() {
	e.mu.Lock()
	e.pendingJump = true
	e.mu.Unlock()
}

// Restart queues a restart for the next frame. It only has an effect
// after game over.
func (e *Engine) Restart() {
	e.mu.Lock()
	e.pendingRestart = true
	e.mu.Unlock()
}

// Frame advances the simulation to host timestamp ts (milliseconds) and
// returns a snapshot for rendering.
func (e *Engine) Frame(ts float64) Snapshot {
	e.drainCommands()

	step, fps := e.clock.Tick(ts)
	tier := e.quality.Sample(fps)

	if e.running {
		e.update(step, tier)
	}
	return e.Snapshot()
}

// drainCommands applies the queued commands. Restart goes first so a jump
// queued in the same frame acts on the new run.
func (e *Engine) drainCommands() {
	e.mu.Lock()
	jump, restart := e.pendingJump, e.pendingRestart
	e.pendingJump, e.pendingRestart = false, false
	e.mu.Unlock()

	if restart && e.over {
		e.reset()
		e.logger.Info("run restarted", "high_score", e.highScore)
	}
	if jump && e.running {
		e.player.Jump(e.cfg.Physics.JumpImpulse)
	}
}

// update runs one simulation step: difficulty, score, player, spawns,
// movement, then collision.
func (e *Engine) update(step float64, tier core.QualityTier) {
	e.clock.Advance(step)

	e.level = e.diff.Level(e.score)
	easeScale := 1.0
	if !e.cfg.Physics.FrameCoupled {
		easeScale = step
	}
	e.speed = e.diff.EaseSpeed(e.speed, e.diff.TargetSpeed(e.score), easeScale)
	e.score += step * e.diff.ScoreRate(e.level, e.speed)
	e.notifyHUD()

	e.player.Update(step, e.cfg.Physics, e.groundY)

	e.obstacles = e.spawner.UpdateObstacles(step, e.score, e.level, e.speed, tier, e.obstacles)
	e.clouds = e.spawner.UpdateClouds(step, tier, e.clouds)

	e.obstacles = e.mover.MoveObstacles(e.obstacles, e.speed, step)
	e.clouds = e.mover.MoveClouds(e.clouds, step)

	if i, hit := FirstCollision(e.player.Box(), e.obstacles); hit {
		e.gameOver(e.obstacles[i].Kind)
	}
}

// gameOver freezes the session and persists the high score.
func (e *Engine) gameOver(hitBy ObstacleKind) {
	e.running = false
	e.over = true

	final := int(math.Floor(e.score))
	if final > e.highScore {
		e.highScore = final
	}

	if e.store != nil {
		if err := e.store.Set(e.highScore); err != nil {
			e.logger.Warn("could not persist high score", "key", e.cfg.Session.HighScoreKey, "error", err)
		}
	}

	e.logger.Info("game over",
		"score", final,
		"level", e.level,
		"high_score", e.highScore,
		"hit", hitBy,
		"elapsed", e.clock.Seconds(),
	)
	e.notifyHUD()
}

// reset puts the session into its initial running state.
func (e *Engine) reset() {
	clearTail(e.obstacles, 0)
	e.obstacles = e.obstacles[:0]
	e.clouds = e.clouds[:0]
	e.spawner.Reset()
	e.clock.Reset()

	e.score = 0
	e.level = 1
	e.speed = e.cfg.Session.InitialSpeed
	e.over = false
	e.running = true
	e.player = NewPlayer(e.cfg.Player, e.groundY)

	e.pushHUD()
}

// pushHUD sends all display values unconditionally.
func (e *Engine) pushHUD() {
	e.shownScore = int(math.Floor(e.score))
	e.shownLevel = e.level
	e.shownHigh = e.highScore
	if e.hud == nil {
		return
	}
	e.hud.ShowScore(e.shownScore)
	e.hud.ShowLevel(e.shownLevel)
	e.hud.ShowHighScore(e.shownHigh)
}

// notifyHUD sends the display values that changed since the last push.
func (e *Engine) notifyHUD() {
	score := int(math.Floor(e.score))
	if score != e.shownScore {
		e.shownScore = score
		if e.hud != nil {
			e.hud.ShowScore(score)
		}
	}
	if e.level != e.shownLevel {
		e.shownLevel = e.level
		if e.hud != nil {
			e.hud.ShowLevel(e.level)
		}
	}
	if e.highScore != e.shownHigh {
		e.shownHigh = e.highScore
		if e.hud != nil {
			e.hud.ShowHighScore(e.highScore)
		}
	}
}

// Snapshot returns a read-only copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Player:    e.player,
		Obstacles: append([]Obstacle(nil), e.obstacles...),
		Clouds:    append([]Cloud(nil), e.clouds...),
		Running:   e.running,
		Over:      e.over,
		Score:     int(math.Floor(e.score)),
		Level:     e.level,
		HighScore: e.highScore,
		Speed:     e.speed,
		Elapsed:   e.clock.Elapsed(),
		Tier:      e.quality.Tier(),
		FPS:       e.quality.FPS(),
	}
}

// Score returns the unfloored score.
func (e *Engine) Score() float64 { return e.score }

// Level returns the current level.
func (e *Engine) Level() int { return e.level }

// Speed returns the current scroll speed.
func (e *Engine) Speed() float64 { return e.speed }

// HighScore returns the best floored score seen so far.
func (e *Engine) HighScore() int { return e.highScore }

// Elapsed returns simulated step units since the run started.
func (e *Engine) Elapsed() float64 { return e.clock.Elapsed() }

// Running reports whether the session is simulating.
func (e *Engine) Running() bool { return e.running }

// Over reports whether the session ended in a collision.
func (e *Engine) Over() bool { return e.over }

// Config returns the engine configuration.
func (e *Engine) Config() config.RunnerConfig { return e.cfg }
