package runner

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

const frameMs = 16.666

// memStore is an in-memory HighScoreStore.
type memStore struct {
	value  int
	sets   []int
	getErr error
	setErr error
}

func (m *memStore) Get() (int, error) {
	if m.getErr != nil {
		return 0, m.getErr
	}
	return m.value, nil
}

func (m *memStore) Set(score int) error {
	m.sets = append(m.sets, score)
	if m.setErr != nil {
		return m.setErr
	}
	m.value = score
	return nil
}

// recordingHUD records every display update.
type recordingHUD struct {
	scores []int
	levels []int
	highs  []int
}

func (h *recordingHUD) ShowScore(score int)    { h.scores = append(h.scores, score) }
func (h *recordingHUD) ShowLevel(level int)    { h.levels = append(h.levels, level) }
func (h *recordingHUD) ShowHighScore(high int) { h.highs = append(h.highs, high) }

func newTestEngine(opts ...Option) *Engine {
	opts = append([]Option{WithRandom(NewRandom(42))}, opts...)
	return NewEngine(config.DefaultRunnerConfig(), opts...)
}

// run advances the engine n frames at the ideal rate starting at ts and
// returns the next timestamp.
func run(e *Engine, ts float64, n int) float64 {
	for i := 0; i < n; i++ {
		e.Frame(ts)
		ts += frameMs
	}
	return ts
}

// crash places an obstacle on top of the player so the next frame ends the run.
func crash(e *Engine) {
	e.obstacles = append(e.obstacles, Obstacle{Kind: KindCactus, X: e.player.X + 10, Y: e.groundY, W: 20, H: 40})
}

func TestEngineStartsRunning(t *testing.T) {
	e := newTestEngine()

	if !e.Running() || e.Over() {
		t.Fatalf("new engine: running=%v over=%v", e.Running(), e.Over())
	}
	if e.Score() != 0 || e.Level() != 1 || e.Speed() != 3.2 {
		t.Errorf("new engine: score=%v level=%d speed=%v", e.Score(), e.Level(), e.Speed())
	}
	if !e.player.Grounded || e.player.Y != 252 {
		t.Errorf("player should start on the ground: %+v", e.player)
	}
}

func TestEngineFirstFrameHasZeroStep(t *testing.T) {
	e := newTestEngine()

	snap := e.Frame(123456)
	if snap.Score != 0 || e.Score() != 0 {
		t.Errorf("first frame accrued score: %v", e.Score())
	}
	if snap.Elapsed != 0 {
		t.Errorf("first frame elapsed = %v, expected 0", snap.Elapsed)
	}
	// Spawn timers start expired
	if len(snap.Obstacles) == 0 || len(snap.Clouds) == 0 {
		t.Errorf("first frame should spawn: %d obstacles, %d clouds", len(snap.Obstacles), len(snap.Clouds))
	}
}

func TestEngineScoreAndSpeedProgress(t *testing.T) {
	e := newTestEngine()
	e.obstacles = nil
	ts := run(e, 0, 2)

	// After one full step: speed eases 3.2 -> 3.184 twice, score grows
	if e.Score() <= 0 {
		t.Fatal("score did not grow")
	}

	prev := e.Score()
	for i := 0; i < 100 && e.Running(); i++ {
		e.obstacles = e.obstacles[:0]
		e.Frame(ts)
		ts += frameMs
		if e.Score() < prev {
			t.Fatalf("score decreased: %v -> %v", prev, e.Score())
		}
		prev = e.Score()
	}
}

func TestEngineJumpAppliedAtFrameStart(t *testing.T) {
	e := newTestEngine()
	e.Frame(0)
	e.obstacles = e.obstacles[:0]

	e.Jump()
	if !e.player.Grounded {
		t.Fatal("jump must wait for the next frame")
	}

	e.Frame(frameMs)
	if e.player.Grounded {
		t.Fatal("player should be airborne")
	}
	// Impulse then one gravity step in the same frame
	if !approx(e.player.VY, -12.8) {
		t.Errorf("vy = %v, expected -12.8", e.player.VY)
	}

	// Repeated jump requests while airborne do nothing
	vy := e.player.VY
	e.Jump()
	e.Jump()
	e.Frame(2 * frameMs)
	if !approx(e.player.VY, vy+0.7) {
		t.Errorf("airborne jump changed velocity: vy = %v", e.player.VY)
	}
}

func TestEngineCollisionEndsRun(t *testing.T) {
	e := newTestEngine()
	e.Frame(0)
	crash(e)

	snap := e.Frame(frameMs)
	if !snap.Over || snap.Running {
		t.Fatalf("collision should end the run: over=%v running=%v", snap.Over, snap.Running)
	}

	// Frozen after game over
	score := e.Score()
	elapsed := snap.Elapsed
	after := e.Frame(2 * frameMs)
	if e.Score() != score || after.Elapsed != elapsed {
		t.Error("simulation advanced after game over")
	}

	// Jump is ignored while over
	e.Jump()
	e.Frame(3 * frameMs)
	if e.Running() || !e.player.Grounded {
		t.Error("jump should be ignored while game over")
	}
}

func TestEngineRestartIdempotence(t *testing.T) {
	scores := []float64{0, 12.3, 299.9, 1234.5, 50000}

	for _, score := range scores {
		e := newTestEngine()
		ts := run(e, 0, 30)
		e.score = score
		e.speed = 9.7
		e.player.Jump(e.cfg.Physics.JumpImpulse)
		crash(e)
		ts = run(e, ts, 1)
		if !e.Over() {
			t.Fatalf("score %v: run did not end", score)
		}

		e.Restart()
		e.drainCommands()

		if e.Score() != 0 || e.Level() != 1 || e.Speed() != 3.2 || e.Over() || !e.Running() {
			t.Errorf("score %v: restart gave score=%v level=%d speed=%v over=%v running=%v",
				score, e.Score(), e.Level(), e.Speed(), e.Over(), e.Running())
		}
		if len(e.obstacles) != 0 || len(e.clouds) != 0 {
			t.Errorf("score %v: restart kept %d obstacles, %d clouds", score, len(e.obstacles), len(e.clouds))
		}
		if ot, ct := e.spawner.Timers(); ot != 0 || ct != 0 {
			t.Errorf("score %v: restart kept timers %v, %v", score, ot, ct)
		}
		if !e.player.Grounded || e.player.Y != 252 || e.player.VY != 0 {
			t.Errorf("score %v: player not reset: %+v", score, e.player)
		}

		// The paused interval does not become a delta
		snap := e.Frame(ts + 60000)
		if snap.Elapsed != 0 || snap.Score != 0 {
			t.Errorf("score %v: first frame after restart advanced time: %v", score, snap.Elapsed)
		}
	}
}

func TestEngineRestartIgnoredWhileRunning(t *testing.T) {
	e := newTestEngine()
	e.obstacles = nil
	ts := run(e, 0, 20)
	score := e.Score()

	e.Restart()
	e.obstacles = e.obstacles[:0]
	e.Frame(ts)
	if e.Score() < score {
		t.Error("restart should only apply after game over")
	}
}

func TestEngineHighScoreMonotonic(t *testing.T) {
	store := &memStore{}
	e := newTestEngine(WithStore(store))

	finals := []float64{500.7, 120.2, 900.01, 899.99}
	want := []int{500, 500, 900, 900}

	ts := 0.0
	for i, final := range finals {
		e.Frame(ts)
		e.score = final
		crash(e)
		// Zero delta, so the score stays where it was set
		e.Frame(ts)
		ts += frameMs
		if !e.Over() {
			t.Fatalf("session %d did not end", i)
		}

		if e.HighScore() != want[i] {
			t.Errorf("session %d: high score = %d, expected %d", i, e.HighScore(), want[i])
		}
		if store.value != want[i] {
			t.Errorf("session %d: stored %d, expected %d", i, store.value, want[i])
		}

		e.Restart()
	}

	// Written on every game over
	if len(store.sets) != len(finals) {
		t.Errorf("store written %d times, expected %d", len(store.sets), len(finals))
	}
}

func TestEnginesSharingStoreKeepRecord(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Both sessions load the key before either run ends
	key := config.DefaultRunnerConfig().Session.HighScoreKey
	a := newTestEngine(WithStore(store.HighScoreFor(key)))
	b := newTestEngine(WithStore(store.HighScoreFor(key)))

	for _, tc := range []struct {
		e     *Engine
		final float64
	}{
		{a, 900},
		{b, 50},
	} {
		tc.e.Frame(0)
		tc.e.score = tc.final
		crash(tc.e)
		tc.e.Frame(0)
		if !tc.e.Over() {
			t.Fatalf("run ending at %v did not end", tc.final)
		}
	}

	high, err := store.GetHighScore(key)
	if err != nil {
		t.Fatalf("GetHighScore() failed: %v", err)
	}
	if high != 900 {
		t.Errorf("stored high score = %d, expected 900", high)
	}

	// A later session starts from the shared record
	if c := newTestEngine(WithStore(store.HighScoreFor(key))); c.HighScore() != 900 {
		t.Errorf("new session high score = %d, expected 900", c.HighScore())
	}
}

func TestEngineLoadsHighScore(t *testing.T) {
	hud := &recordingHUD{}
	e := newTestEngine(WithStore(&memStore{value: 77}), WithHUD(hud))

	if e.HighScore() != 77 {
		t.Errorf("HighScore() = %d, expected 77", e.HighScore())
	}
	if len(hud.highs) != 1 || hud.highs[0] != 77 {
		t.Errorf("HUD high scores = %v, expected [77]", hud.highs)
	}
}

func TestEngineStoreFailuresAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	store := &memStore{
		getErr: errors.New("disk on fire"),
		setErr: errors.New("read-only"),
	}

	e := newTestEngine(WithStore(store), WithLogger(logger))
	if e.HighScore() != 0 {
		t.Errorf("failed read should start at 0, got %d", e.HighScore())
	}
	if !strings.Contains(buf.String(), "could not load high score") {
		t.Errorf("read failure not logged: %q", buf.String())
	}

	e.Frame(0)
	e.score = 321
	crash(e)
	e.Frame(0)

	if !e.Over() || e.HighScore() != 321 {
		t.Errorf("write failure must not block game over: over=%v high=%d", e.Over(), e.HighScore())
	}
	if !strings.Contains(buf.String(), "could not persist high score") {
		t.Errorf("write failure not logged: %q", buf.String())
	}

	// The loop keeps going
	e.Restart()
	e.Frame(2 * frameMs)
	if !e.Running() {
		t.Error("engine should restart after a store failure")
	}
}

func TestEngineHUDNotifiesOnChange(t *testing.T) {
	hud := &recordingHUD{}
	e := newTestEngine(WithHUD(hud), WithStore(&memStore{value: 5}))

	// Construction pushes everything
	if !reflect.DeepEqual(hud.scores, []int{0}) || !reflect.DeepEqual(hud.levels, []int{1}) || !reflect.DeepEqual(hud.highs, []int{5}) {
		t.Fatalf("initial push: scores=%v levels=%v highs=%v", hud.scores, hud.levels, hud.highs)
	}

	ts := 0.0
	for i := 0; i < 100; i++ {
		e.obstacles = e.obstacles[:0]
		e.Frame(ts)
		ts += frameMs
	}
	last := ts - frameMs

	for i := 1; i < len(hud.scores); i++ {
		if hud.scores[i] == hud.scores[i-1] {
			t.Fatalf("duplicate score notification %d at %d", hud.scores[i], i)
		}
	}
	if last := hud.scores[len(hud.scores)-1]; last != int(e.Score()) {
		t.Errorf("last shown score %d, engine at %v", last, e.Score())
	}
	if len(hud.levels) != 1 {
		t.Errorf("level notifications = %v, expected none past the initial push", hud.levels)
	}

	// Game over with a new best notifies the high score
	e.score = 40
	crash(e)
	e.Frame(last)
	if got := hud.highs[len(hud.highs)-1]; got != 40 {
		t.Errorf("last shown high score = %d, expected 40", got)
	}

	// Restart pushes everything again
	n := len(hud.scores)
	e.Restart()
	e.Frame(ts + frameMs)
	if len(hud.scores) != n+1 || hud.scores[n] != 0 {
		t.Errorf("restart push: scores=%v", hud.scores[n:])
	}
}

func TestEngineDeterminism(t *testing.T) {
	play := func() []Snapshot {
		e := NewEngine(config.DefaultRunnerConfig(), WithRandom(NewRandom(12345)))
		var snaps []Snapshot
		ts := 0.0
		for i := 0; i < 3000; i++ {
			if i%40 == 0 {
				e.Jump()
			}
			if e.Over() && i%100 == 0 {
				e.Restart()
			}
			snaps = append(snaps, e.Frame(ts))
			// Uneven frame pacing exercises the clamp and the tiers
			ts += frameMs + float64(i%7)*3
		}
		return snaps
	}

	a, b := play(), play()
	if !reflect.DeepEqual(a, b) {
		for i := range a {
			if !reflect.DeepEqual(a[i], b[i]) {
				t.Fatalf("runs diverged at frame %d:\n%+v\n%+v", i, a[i], b[i])
			}
		}
	}
}

func TestEngineSnapshotIsACopy(t *testing.T) {
	e := newTestEngine()
	snap := e.Frame(0)
	if len(snap.Obstacles) == 0 {
		t.Fatal("expected an obstacle on the first frame")
	}

	snap.Obstacles[0].X = -999
	snap.Player.Y = 0
	if e.obstacles[0].X == -999 || e.player.Y == 0 {
		t.Error("mutating a snapshot changed the engine")
	}
}

func TestEngineObstacleCapHolds(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	e := NewEngine(cfg, WithRandom(NewRandom(9)))
	ts := 0.0

	for i := 0; i < 5000; i++ {
		// Keep the run alive; the cap check does not depend on collisions
		e.player.Y, e.player.VY = -1000, 0
		before := len(e.obstacles)
		e.Frame(ts)
		ts += frameMs
		capacity := cfg.Spawner.ObstacleCaps.For(e.quality.Tier())
		if len(e.obstacles) > before && before >= capacity {
			t.Fatalf("frame %d: spawned with %d obstacles at cap %d", i, before, capacity)
		}
	}
}

func TestEngineTimeScaledMode(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Physics.FrameCoupled = false
	e := NewEngine(cfg, WithRandom(NewRandom(1)))

	snap := e.Frame(0)
	x := snap.Obstacles[0].X
	speed := e.Speed()

	// Zero step: nothing moves, speed does not ease
	if x != 830 || speed != 3.2 {
		t.Errorf("zero step moved the world: x=%v speed=%v", x, speed)
	}
}
