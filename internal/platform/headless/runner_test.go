package headless

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/metrics"
)

func newTerminalGame(t *testing.T, clock memory.Clock, seed int64) *memory.Game {
	t.Helper()
	cfg := config.DefaultMemoryConfig()
	g := memory.New(memory.OptionsFromConfig(cfg, cfg.Terminal), clock)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed})
	return g
}

// tileSteps returns script steps clicking the given tiles, one per poll.
func tileSteps(tiles ...int) []ScriptStep {
	steps := make([]ScriptStep, len(tiles))
	for i := range tiles {
		steps[i] = ScriptStep{Tile: &tiles[i]}
	}
	return steps
}

// solution returns tile indices flipping every pair in turn.
func solution(g *memory.Game) []int {
	byImage := make(map[memory.ImageID][]int)
	for i, tile := range g.Board().Tiles() {
		byImage[tile.Image()] = append(byImage[tile.Image()], i)
	}
	var out []int
	for id := range memory.ImageCount {
		out = append(out, byImage[memory.ImageID(id)]...)
	}
	return out
}

func TestRunnerSolvesScript(t *testing.T) {
	clock := NewVirtualClock()
	g := newTerminalGame(t, clock, 99)

	script := Script{Steps: tileSteps(solution(g)...)}
	src := NewScriptSource(script, g.Board().Layout())
	rec := &Recorder{}

	r := NewRunner(g, src, rec, clock, NewFrameLimiter(clock, 60), 80, 24)
	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if res.Snapshot.Continue {
		t.Error("game should be finished after the solution script")
	}
	if !res.Snapshot.CloseRequested {
		t.Error("exhausted script should close the game")
	}
	if res.Snapshot.Moves != memory.ImageCount || res.Snapshot.Mismatches != 0 {
		t.Errorf("moves=%d mismatches=%d", res.Snapshot.Moves, res.Snapshot.Mismatches)
	}
	if rec.Frames != res.Frames {
		t.Errorf("presented %d frames, stepped %d", rec.Frames, res.Frames)
	}
	if !strings.Contains(rec.Last, "ALL PAIRS FOUND") {
		t.Errorf("last frame should show the win overlay:\n%s", rec.Last)
	}
}

func TestRunnerRecordsMetrics(t *testing.T) {
	clock := NewVirtualClock()
	g := newTerminalGame(t, clock, 7)
	m := metrics.New("memory")

	script := Script{Steps: tileSteps(solution(g)...)}
	r := NewRunner(g, NewScriptSource(script, g.Board().Layout()), &Recorder{},
		clock, NewFrameLimiter(clock, 60), 80, 24).WithMetrics(m)
	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := testutil.ToFloat64(m.GamesStarted); got != 1 {
		t.Errorf("games started = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.GamesCompleted); got != 1 {
		t.Errorf("games completed = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.PairsMatched); got != memory.ImageCount {
		t.Errorf("pairs matched = %v, want %d", got, memory.ImageCount)
	}
	if got := testutil.ToFloat64(m.Mismatches); got != 0 {
		t.Errorf("mismatches = %v, want 0", got)
	}
}

func TestRunnerWaitsOutMismatch(t *testing.T) {
	clock := NewVirtualClock()
	g := newTerminalGame(t, clock, 5)

	first := g.Board().Tile(0).Image()
	other := 1
	for g.Board().Tile(other).Image() == first {
		other++
	}

	script := Script{Steps: tileSteps(0, other)}
	src := NewScriptSource(script, g.Board().Layout())

	r := NewRunner(g, src, &Recorder{}, clock, NewFrameLimiter(clock, 60), 80, 24)
	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if res.Snapshot.Revealed != 0 {
		t.Errorf("mismatched pair should be hidden, %d tiles revealed", res.Snapshot.Revealed)
	}
	if res.Snapshot.Phase != memory.PhaseIdle {
		t.Errorf("phase = %v, expected idle", res.Snapshot.Phase)
	}
	if clock.Elapsed() < g.Turn().Delay() {
		t.Errorf("clock at %v, should have waited at least %v", clock.Elapsed(), g.Turn().Delay())
	}
}

func TestRunnerStopsOnCloseBeforeWaiting(t *testing.T) {
	clock := NewVirtualClock()
	g := newTerminalGame(t, clock, 1)

	src := NewScriptSource(Script{Steps: []ScriptStep{{Close: true}}}, g.Board().Layout())
	rec := &Recorder{}

	r := NewRunner(g, src, rec, clock, NewFrameLimiter(clock, 60), 80, 24)
	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Frames != 1 || rec.Frames != 1 {
		t.Errorf("frames = %d/%d, expected the closing frame to be the only one", res.Frames, rec.Frames)
	}
	if clock.Elapsed() != 0 {
		t.Errorf("no throttle wait should follow the closing frame, clock at %v", clock.Elapsed())
	}
}

// endless never closes.
type endless struct{}

func (endless) Poll() []core.Event { return nil }

// cancelAfter cancels a context after n limiter waits.
type cancelAfter struct {
	n      int
	cancel context.CancelFunc
}

func (c *cancelAfter) Wait() {
	c.n--
	if c.n <= 0 {
		c.cancel()
	}
}

func TestRunnerHonoursContext(t *testing.T) {
	clock := NewVirtualClock()
	g := newTerminalGame(t, clock, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := NewRunner(g, endless{}, &Recorder{}, clock, &cancelAfter{n: 3, cancel: cancel}, 80, 24)
	res, err := r.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, expected context.Canceled", err)
	}
	if res.Frames != 3 {
		t.Errorf("Frames = %d, expected 3", res.Frames)
	}
}

type failingSurface struct{}

func (failingSurface) Present(*core.Screen) error { return errors.New("broken pipe") }

func TestRunnerSurfaceError(t *testing.T) {
	clock := NewVirtualClock()
	g := newTerminalGame(t, clock, 1)

	r := NewRunner(g, endless{}, failingSurface{}, clock, NewFrameLimiter(clock, 60), 80, 24)
	if _, err := r.Run(context.Background()); err == nil {
		t.Fatal("Run() should fail when the surface fails")
	}
}

func TestVirtualClock(t *testing.T) {
	c := NewVirtualClock()
	c.Wait(250 * time.Millisecond)
	c.Wait(-time.Second)

	l := NewFrameLimiter(c, 4)
	l.Wait()

	if got := c.Elapsed(); got != 500*time.Millisecond {
		t.Errorf("Elapsed() = %v, expected 500ms", got)
	}
}
