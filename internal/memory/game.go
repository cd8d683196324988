// Package memory implements the tile-matching memory game: a 4×4 board of
// face-down tiles holding eight pairs, the turn state machine that flips,
// compares and hides them, and the elapsed-time score.
//
// The package is pure: front-ends feed it batches of core events through
// Step and draw it through Canvas or core.Screen.
package memory

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
)

// Clock is a monotonic time source measured from an arbitrary start.
type Clock interface {
	Elapsed() time.Duration
}

// SystemClock measures wall time since it was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at the current instant.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Elapsed returns the time since the clock was created.
func (c *SystemClock) Elapsed() time.Duration {
	return time.Since(c.start)
}

// Canvas receives draw commands from tiles and the score.
type Canvas interface {
	DrawTile(v TileView)
	DrawText(x, y int, s string, fg, bg core.Color)
}

// Options configures a Game for one surface.
type Options struct {
	Title       string
	Layout      Layout
	RevealDelay time.Duration
	Images      []ImageStyle
	MinWidth    int
	MinHeight   int
	ScorePos    core.Point
}

// OptionsFromConfig builds options for the given surface section.
func OptionsFromConfig(cfg config.MemoryConfig, surface config.SurfaceConfig) Options {
	return Options{
		Title:       surface.Title,
		Layout:      LayoutFromConfig(surface),
		RevealDelay: cfg.Timing.RevealDelay(),
		Images:      StylesFromConfig(cfg.Images),
		MinWidth:    surface.Width,
		MinHeight:   surface.Height,
		ScorePos:    core.Pt(surface.Score.X, surface.Score.Y),
	}
}

// Game owns the board, the turn and the game state.
type Game struct {
	opts  Options
	clock Clock
	rng   *rand.Rand
	seed  int64
	tick  uint64

	board  *Board
	turn   *Turn
	queued []core.Point // releases held back while a pair is showing

	startedAt      time.Duration
	score          int
	continueGame   bool
	closeRequested bool
	moves          int // pairs compared
	mismatches     int

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game dealt with seed 0. A nil clock uses the system clock.
func New(opts Options, clock Clock) *Game {
	if clock == nil {
		clock = NewSystemClock()
	}
	if opts.Title == "" {
		opts.Title = "Memory Tiles"
	}
	g := &Game{opts: opts, clock: clock}
	g.Reset(core.RuntimeConfig{ScreenW: opts.MinWidth, ScreenH: opts.MinHeight})
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "memory"
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.opts.Title
}

// Reset deals a new board from cfg.Seed and restarts the timer.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.board = NewBoard(g.opts.Layout, g.rng)
	g.turn = NewTurn(g.opts.RevealDelay)
	g.queued = g.queued[:0]
	g.startedAt = g.clock.Elapsed()
	g.score = 0
	g.continueGame = true
	g.closeRequested = false
	g.moves = 0
	g.mismatches = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Restart deals a new board with a seed drawn from the current one.
func (g *Game) Restart() {
	g.Reset(core.RuntimeConfig{
		ScreenW: g.screenW,
		ScreenH: g.screenH,
		Seed:    g.rng.Int63(),
	})
}

// Resize records the surface size. Clicks are ignored while the surface is
// smaller than the layout needs. A zero size means unknown.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w > 0 && h > 0 && (w < g.opts.MinWidth || h < g.opts.MinHeight)
}

// Step processes one frame of input:
//  1. events are handled in arrival order;
//  2. the score and the continue flag are refreshed;
//  3. a due hide pass runs, releases held back during the delay are
//     replayed, and the state is refreshed again.
//
// A release that arrives while a pair is showing is held until the hide
// pass, so it flips a tile in the next turn instead of being lost.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	now := g.clock.Elapsed()
	var res core.StepResult

	for _, ev := range in.Events {
		switch ev.Kind {
		case core.EventClose:
			g.closeRequested = true
		case core.EventPointerReleased:
			g.pointer(ev.Pos, now, &res)
		}
	}

	wasRunning := g.continueGame
	g.refresh(now)
	if g.advance(now, &res) {
		g.refresh(now)
	}

	res.Finished = wasRunning && !g.continueGame
	res.State = g.State()
	return res
}

// pointer handles one release, holding it back while a pair is showing.
func (g *Game) pointer(p core.Point, now time.Duration, res *core.StepResult) {
	if !g.continueGame || g.tooSmall {
		return
	}
	if g.turn.Pending() {
		if !g.advance(now, res) {
			g.queued = append(g.queued, p)
			return
		}
	}

	switch g.turn.PointerUp(g.board, p, now) {
	case OutcomeMatch:
		g.moves++
		res.Matched++
	case OutcomeMismatch:
		g.moves++
		g.mismatches++
		res.Mismatched++
	}
}

// advance runs a due hide pass and replays the held releases in order.
// It reports whether the hide pass ran.
func (g *Game) advance(now time.Duration, res *core.StepResult) bool {
	if !g.turn.Advance(g.board, now) {
		return false
	}
	held := g.queued
	g.queued = nil
	for _, p := range held {
		g.pointer(p, now, res)
	}
	return true
}

// refresh recomputes the score and decides whether the game goes on.
// Once every tile is revealed the score stops changing.
func (g *Game) refresh(now time.Duration) {
	if !g.continueGame {
		return
	}
	if s := int((now - g.startedAt) / time.Second); s > g.score {
		g.score = s
	}
	if g.board.RevealedCount() == TileCount {
		g.continueGame = false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:          g.score,
		GameOver:       !g.continueGame,
		Paused:         g.tooSmall,
		CloseRequested: g.closeRequested,
	}
}

// Board returns the board.
func (g *Game) Board() *Board {
	return g.board
}

// Turn returns the turn state machine.
func (g *Game) Turn() *Turn {
	return g.turn
}

// Score returns the elapsed whole seconds.
func (g *Game) Score() int {
	return g.score
}

// Continue reports whether tiles remain to be found.
func (g *Game) Continue() bool {
	return g.continueGame
}

// CloseRequested reports whether a close event was received.
func (g *Game) CloseRequested() bool {
	return g.closeRequested
}

// Moves returns the number of pairs compared.
func (g *Game) Moves() int {
	return g.moves
}

// Mismatches returns the number of pairs that did not match.
func (g *Game) Mismatches() int {
	return g.mismatches
}

// Pairs returns the number of pairs found.
func (g *Game) Pairs() int {
	return g.board.MatchedCount() / 2
}

// Seed returns the seed the current board was dealt with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Options returns the options the game was created with.
func (g *Game) Options() Options {
	return g.opts
}

// HideRemaining returns the time left before a pending hide pass.
func (g *Game) HideRemaining() time.Duration {
	return g.turn.Remaining(g.clock.Elapsed())
}
