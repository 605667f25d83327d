package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Game adapts an Engine to the frame-driven host loop: it turns input
// frames into engine commands and renders the latest snapshot.
type Game struct {
	cfg      config.RunnerConfig
	opts     []Option
	engine   *Engine
	renderer *Renderer
	last     Snapshot
}

// New creates a runner game. The engine is built on Reset.
func New(cfg config.RunnerConfig, opts ...Option) *Game {
	return &Game{
		cfg:      cfg,
		opts:     opts,
		renderer: NewRenderer(cfg.World, cfg.Clock),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Cat Runner"
}

// Reset starts a fresh session seeded from runtime.Seed. Options passed to
// New are applied after the seeded source, so WithRandom overrides it.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	opts := append([]Option{WithRandom(NewRandom(runtime.Seed))}, g.opts...)
	g.engine = NewEngine(g.cfg, opts...)
	g.last = g.engine.Snapshot()
}

// Step queues this frame's commands and advances the engine to the frame
// timestamp. Jump restarts a finished run, like a tap on the play field.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		g.Reset(core.DefaultConfig())
	}

	if in.Has(core.ActionRestart) {
		g.engine.Restart()
	}
	if in.Has(core.ActionJump) {
		if g.engine.Over() {
			g.engine.Restart()
		} else {
			g.engine.Jump()
		}
	}

	g.last = g.engine.Frame(in.Timestamp)
	return core.StepResult{State: g.State()}
}

// Render draws the latest snapshot.
func (g *Game) Render(dst *core.Screen) {
	g.renderer.Draw(dst, g.last)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.last.State()
}

// Snapshot returns the snapshot of the latest frame.
func (g *Game) Snapshot() Snapshot {
	return g.last
}

// Engine returns the underlying engine, nil before Reset.
func (g *Game) Engine() *Engine {
	return g.engine
}
