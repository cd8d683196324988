package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/memory"
)

type fakeClock struct {
	now time.Duration
}

func (c *fakeClock) Elapsed() time.Duration { return c.now }

func newTestModel(t *testing.T) (Model, *memory.Game, *fakeClock) {
	t.Helper()
	clock := &fakeClock{}
	cfg := config.DefaultMemoryConfig()
	game := memory.New(memory.OptionsFromConfig(cfg, cfg.Terminal), clock)

	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}, nil)
	if m.Init() == nil {
		t.Fatal("Init should start the tick loop")
	}
	return m, game, clock
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, TickMsg(time.Now()))
}

func release(p core.Point) tea.MouseMsg {
	return tea.MouseMsg{X: p.X, Y: p.Y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func tileCenter(g *memory.Game, i int) core.Point {
	x, y := g.Board().Tile(i).Rect().Center()
	return core.Pt(x, y)
}

// tilesByImage groups tile indices by image.
func tilesByImage(g *memory.Game) map[memory.ImageID][]int {
	out := make(map[memory.ImageID][]int)
	for i, tile := range g.Board().Tiles() {
		out[tile.Image()] = append(out[tile.Image()], i)
	}
	return out
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestMouseReleaseFlipsTile(t *testing.T) {
	m, game, _ := newTestModel(t)

	m, _ = update(t, m, release(tileCenter(game, 3)))
	if game.Board().Tile(3).Revealed() {
		t.Fatal("tile should not flip before the next frame")
	}

	m, cmd := tick(t, m)
	if !game.Board().Tile(3).Revealed() {
		t.Error("tile should flip on the frame after the release")
	}
	if cmd == nil || isQuit(cmd) {
		t.Error("tick should schedule the next tick")
	}
	_ = m
}

func TestMousePressIgnored(t *testing.T) {
	m, game, _ := newTestModel(t)

	p := tileCenter(game, 0)
	m, _ = update(t, m, tea.MouseMsg{X: p.X, Y: p.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	_, _ = tick(t, m)

	if game.Board().Tile(0).Revealed() {
		t.Error("a press without release should not flip")
	}
}

func TestQuitKeyClosesGame(t *testing.T) {
	m, game, _ := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !isQuit(cmd) {
		t.Fatal("q should quit the program")
	}
	if !game.CloseRequested() {
		t.Error("quit should reach the game as a close event")
	}
	if !m.IsQuitting() || m.View() != "" {
		t.Error("model should be quitting with an empty view")
	}
}

func TestKeyboardCursorFlips(t *testing.T) {
	m, game, _ := newTestModel(t)

	right := tea.KeyMsg{Type: tea.KeyRight}
	down := tea.KeyMsg{Type: tea.KeyDown}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	m, _ = update(t, m, right) // shows the cursor on tile 0
	if m.Cursor() != 0 {
		t.Fatalf("Cursor() = %d, expected 0", m.Cursor())
	}
	m, _ = update(t, m, right)
	m, _ = update(t, m, down)
	if m.Cursor() != 5 {
		t.Fatalf("Cursor() = %d, expected 5", m.Cursor())
	}

	m, _ = update(t, m, enter)
	_, _ = tick(t, m)
	if !game.Board().Tile(5).Revealed() {
		t.Error("enter should flip the tile under the cursor")
	}
}

func TestCursorClamped(t *testing.T) {
	m, _, _ := newTestModel(t)

	left := tea.KeyMsg{Type: tea.KeyLeft}
	up := tea.KeyMsg{Type: tea.KeyUp}
	for range 3 {
		m, _ = update(t, m, left)
		m, _ = update(t, m, up)
	}
	if m.Cursor() != 0 {
		t.Errorf("Cursor() = %d, expected to stay at 0", m.Cursor())
	}
}

func TestRestartAfterWin(t *testing.T) {
	m, game, clock := newTestModel(t)

	// Reveal the whole board pair by pair.
	for _, tiles := range tilesByImage(game) {
		for _, i := range tiles {
			m, _ = update(t, m, release(tileCenter(game, i)))
			m, _ = tick(t, m)
		}
		clock.now += time.Second
		m, _ = tick(t, m)
	}
	if game.Continue() {
		t.Fatal("game should be won")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	_, _ = tick(t, m)

	if !game.Continue() || game.Board().RevealedCount() != 0 {
		t.Error("r after the win should deal a fresh board")
	}
}

func TestQuitRightAfterRestart(t *testing.T) {
	m, game, clock := newTestModel(t)

	for _, tiles := range tilesByImage(game) {
		for _, i := range tiles {
			m, _ = update(t, m, release(tileCenter(game, i)))
			m, _ = tick(t, m)
		}
		clock.now += time.Second
		m, _ = tick(t, m)
	}

	// r and q land in the same frame.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	if !isQuit(cmd) || !m.IsQuitting() {
		t.Error("q pressed before the restart frame should still quit")
	}
	if !game.Continue() {
		t.Error("the restart should still deal a fresh board")
	}
}

func TestRestartIgnoredDuringPlay(t *testing.T) {
	m, game, _ := newTestModel(t)
	seed := game.Seed()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	_, _ = tick(t, m)

	if game.Seed() != seed {
		t.Error("r should do nothing while the game is running")
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	m, game, _ := newTestModel(t)

	m, _ = update(t, m, release(tileCenter(game, 0)))
	m, _ = tick(t, m)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	m, _ = tick(t, m)
	if !m.gameState.Paused {
		t.Error("a small terminal should pause the game")
	}
	if !game.Board().Tile(0).Revealed() {
		t.Error("resize should not reset the board")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = tick(t, m)
	if m.gameState.Paused {
		t.Error("a large terminal should resume the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30-footerHeight {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestViewShowsBoardAndHelp(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = tick(t, m)

	view := m.View()
	if !strings.Contains(view, "Memory Tiles") {
		t.Error("view should contain the title")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should contain the help footer")
	}
	if got := strings.Count(view, "\n") + 1; got != 24 {
		t.Errorf("view has %d lines, expected 24", got)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	full := m.View()
	if got := strings.Count(full, "\n") + 1; got != 24 {
		t.Errorf("full help view has %d lines, expected 24", got)
	}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want Action
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{tea.KeyMsg{Type: tea.KeyUp}, ActionUp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, ActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")}, ActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, ActionFlip},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, ActionFlip},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, ActionRestart},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}, ActionHelp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, ActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKey(tc.msg); got != tc.want {
			t.Errorf("MapKey(%q) = %d, expected %d", tc.msg.String(), got, tc.want)
		}
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "plain")
	s.DrawTextColor(6, 0, "red", core.ColorRed)
	s.DrawTextColor(0, 1, "black", core.ColorBlack)

	out := RenderScreen(s)
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("expected 2 rows, got %d newlines", got+1)
	}
	for _, want := range []string{"plain", "red", "black"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPainterPlainOutput(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "♥", core.ColorBrightRed)
	s.DrawText(2, 1, "ok")

	// A renderer writing to a buffer has no colour profile.
	p := NewPainter(lipgloss.NewRenderer(&bytes.Buffer{}))
	if got, want := p.Render(s), s.String(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
