package runner

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// frameAt builds an input frame at the i-th ideal refresh.
func frameAt(i int, actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Timestamp = float64(i) * frameMs
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameDeterminism(t *testing.T) {
	play := func() (core.GameState, Snapshot) {
		g := New(config.DefaultRunnerConfig())
		g.Reset(testRuntime(12345))

		var state core.GameState
		for i := 0; i < 2000; i++ {
			in := frameAt(i)
			if i%45 == 0 {
				in.Set(core.ActionJump)
			}
			state = g.Step(in).State
		}
		return state, g.Snapshot()
	}

	state1, snap1 := play()
	state2, snap2 := play()

	if state1 != state2 {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", state1, state2)
	}
	if len(snap1.Obstacles) != len(snap2.Obstacles) || snap1.Elapsed != snap2.Elapsed {
		t.Errorf("Determinism failed: snapshots differ")
	}
}

func TestGameJumpRestartsAfterGameOver(t *testing.T) {
	g := New(config.DefaultRunnerConfig())
	g.Reset(testRuntime(1))
	g.Step(frameAt(0))

	crash(g.Engine())
	if state := g.Step(frameAt(1)).State; !state.GameOver {
		t.Fatal("expected game over")
	}

	state := g.Step(frameAt(2, core.ActionJump)).State
	if state.GameOver || state.Score != 0 || state.Level != 1 {
		t.Errorf("jump after game over should restart: %+v", state)
	}
	// The restart consumed the press; the player did not also jump
	if !g.Snapshot().Player.Grounded {
		t.Error("restart press should not jump")
	}
}

func TestGameRestartAction(t *testing.T) {
	g := New(config.DefaultRunnerConfig())
	g.Reset(testRuntime(1))
	g.Step(frameAt(0))

	// Ignored while running
	g.Step(frameAt(1, core.ActionRestart))
	if g.Engine().Elapsed() == 0 {
		t.Fatal("restart while running should be ignored")
	}

	crash(g.Engine())
	g.Step(frameAt(2))
	state := g.Step(frameAt(3, core.ActionRestart)).State
	if state.GameOver {
		t.Error("restart action should start a new run")
	}
}

func TestGameSeedOverriddenByOption(t *testing.T) {
	rng := &scriptedRandom{values: []float64{0.9, 0.2, 0.5, 0.5}}
	g := New(config.DefaultRunnerConfig(), WithRandom(rng))
	g.Reset(testRuntime(99))
	g.Step(frameAt(0))

	if rng.i == 0 {
		t.Error("WithRandom passed to New should replace the seeded source")
	}
}

func TestGameStepBeforeReset(t *testing.T) {
	g := New(config.DefaultRunnerConfig())
	state := g.Step(frameAt(0)).State
	if state.GameOver || state.Level != 1 {
		t.Errorf("unexpected state %+v", state)
	}
}

func TestRenderFrame(t *testing.T) {
	g := New(config.DefaultRunnerConfig())
	g.Reset(testRuntime(5))
	for i := 0; i < 30; i++ {
		g.Step(frameAt(i))
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score:") || !strings.Contains(screen.Row(0), "Best:") {
		t.Errorf("HUD missing from top row: %q", screen.Row(0))
	}

	// 800x300 world on 23 rows: ground at 1 + floor(252*23/300)
	if row := screen.Row(20); strings.Count(row, string(GroundChar)) < 70 {
		t.Errorf("ground line missing on row 20: %q", row)
	}
	if !strings.ContainsRune(screen.String(), CatBody) {
		t.Error("player not drawn")
	}
	if strings.Contains(screen.String(), "GAME OVER") {
		t.Error("banner drawn while running")
	}
}

func TestRenderGameOverBanner(t *testing.T) {
	g := New(config.DefaultRunnerConfig())
	g.Reset(testRuntime(5))
	g.Step(frameAt(0))
	crash(g.Engine())
	g.Step(frameAt(1))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over banner missing")
	}
	if !strings.Contains(screen.String(), "to restart") {
		t.Error("restart hint missing")
	}
}

func TestRenderSkipsDecorOnLowTier(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	r := NewRenderer(cfg.World, cfg.Clock)
	snap := Snapshot{
		Player:  NewPlayer(cfg.Player, cfg.World.GroundY()),
		Running: true,
		Level:   1,
		Elapsed: 37,
	}

	screen := core.NewScreen(80, 24)

	snap.Tier = core.QualityHigh
	r.Draw(screen, snap)
	if !strings.ContainsRune(screen.String(), HillChar) {
		t.Error("hills missing on high tier")
	}
	if !strings.ContainsRune(screen.Row(21), DashChar) {
		t.Error("ground strip missing on high tier")
	}

	snap.Tier = core.QualityLow
	r.Draw(screen, snap)
	if strings.ContainsRune(screen.String(), HillChar) {
		t.Error("hills drawn on low tier")
	}
	if strings.ContainsRune(screen.Row(21), DashChar) {
		t.Error("ground strip drawn on low tier")
	}
}

func TestRenderDoesNotMutateEngine(t *testing.T) {
	g := New(config.DefaultRunnerConfig())
	g.Reset(testRuntime(8))
	for i := 0; i < 10; i++ {
		g.Step(frameAt(i))
	}

	before := g.Engine().Snapshot()
	screen := core.NewScreen(40, 12)
	for i := 0; i < 3; i++ {
		g.Render(screen)
	}
	after := g.Engine().Snapshot()

	if before.Score != after.Score || before.Elapsed != after.Elapsed || len(before.Obstacles) != len(after.Obstacles) {
		t.Error("rendering changed engine state")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := New(config.DefaultRunnerConfig())
	g.Reset(testRuntime(3))
	g.Step(frameAt(0))

	// Must not panic on degenerate sizes
	for _, size := range [][2]int{{1, 1}, {10, 2}, {0, 0}} {
		g.Render(core.NewScreen(size[0], size[1]))
	}
}
