package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/metrics"
)

// footerHeight is the number of rows reserved below the board for help.
const footerHeight = 1

// Model is the Bubble Tea model for playing one memory game.
// Mouse releases become pointer events in screen cells; the keyboard moves a
// cursor over the tiles and flips the tile under it.
type Model struct {
	game       *memory.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       *KeyMapper
	help       help.Model
	painter    *Painter
	metrics    *metrics.Metrics
	logger     *log.Logger
	cursor     int // keyboard-selected tile, -1 until a direction key is used
	restart    bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// m may be nil.
func NewModel(game *memory.Game, cfg core.RuntimeConfig, m *metrics.Metrics) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 0)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
		help:       h,
		painter:    NewPainter(nil),
		metrics:    m,
		cursor:     -1,
	}
}

// WithLogger returns a copy of the model that logs finished games to l.
func (m Model) WithLogger(l *log.Logger) Model {
	m.logger = l
	return m
}

// WithRenderer returns a copy of the model that styles output with r.
func (m Model) WithRenderer(r *lipgloss.Renderer) Model {
	m.painter = NewPainter(r)
	return m
}

// boardConfig is the runtime config for the area above the footer.
func (m Model) boardConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-footerHeight, 0)
	return cfg
}

// Init deals the board and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.boardConfig())
	m.metrics.GameStarted()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case ActionQuit:
		// Close goes through the game like any other event; the frame that
		// sees it ends the program.
		m.inputFrame.Push(core.CloseEvent())
		return m.handleTick()
	case ActionUp:
		m.moveCursor(0, -1)
	case ActionDown:
		m.moveCursor(0, 1)
	case ActionLeft:
		m.moveCursor(-1, 0)
	case ActionRight:
		m.moveCursor(1, 0)
	case ActionFlip:
		if m.cursor < 0 {
			m.cursor = 0
			break
		}
		x, y := m.game.Board().Tile(m.cursor).Rect().Center()
		m.inputFrame.Push(core.PointerReleased(x, y))
	case ActionRestart:
		if m.gameState.GameOver {
			m.restart = true
		}
	case ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// moveCursor moves the keyboard cursor, clamped to the grid.
// The first move only makes the cursor visible.
func (m *Model) moveCursor(dx, dy int) {
	if m.cursor < 0 {
		m.cursor = 0
		return
	}
	row := core.Clamp(m.cursor/memory.Cols+dy, 0, memory.Rows-1)
	col := core.Clamp(m.cursor%memory.Cols+dx, 0, memory.Cols-1)
	m.cursor = row*memory.Cols + col
}

// handleMouse turns a button release into a pointer event.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonNone {
		return m, nil
	}
	m.inputFrame.Push(core.PointerReleased(msg.X, msg.Y))
	return m, nil
}

// handleResize processes window resize events. The board keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	cfg := m.boardConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)
	m.game.Resize(cfg.ScreenW, cfg.ScreenH)

	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.restart {
		m.newBoard()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.metrics.ObserveStep(result)

	if result.Finished && m.logger != nil {
		m.logger.Info("all pairs found",
			"score", result.State.Score,
			"moves", m.game.Moves(),
			"mismatches", m.game.Mismatches(),
		)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.gameState.CloseRequested {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// newBoard deals a fresh game. Clicks aimed at the old board are dropped;
// a pending close is kept.
func (m *Model) newBoard() {
	m.restart = false
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.boardConfig())
	m.metrics.GameStarted()
	m.gameState = m.game.State()

	closing := m.inputFrame.Has(core.EventClose)
	m.inputFrame.Clear()
	if closing {
		m.inputFrame.Push(core.CloseEvent())
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.drawCursor()

	body := m.painter.Render(m.screen)
	footer := m.help.View(m.keys.Keys())

	// Expanded help takes rows from the bottom of the screen.
	if extra := lipgloss.Height(footer) - footerHeight; extra > 0 {
		lines := strings.Split(body, "\n")
		body = strings.Join(lines[:max(len(lines)-extra, 0)], "\n")
	}

	return body + "\n" + footer
}

// drawCursor frames the keyboard-selected tile.
func (m Model) drawCursor() {
	if m.cursor < 0 || !m.game.Continue() || m.gameState.Paused {
		return
	}
	if t := m.game.Board().Tile(m.cursor); t != nil {
		m.screen.DrawBoxColor(t.Rect(), core.ColorBrightYellow)
	}
}

// Cursor returns the keyboard-selected tile index, or -1.
func (m Model) Cursor() int {
	return m.cursor
}

// IsQuitting returns true once the game has been closed.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for game in the local terminal.
func Run(game *memory.Game, cfg core.RuntimeConfig, m *metrics.Metrics) error {
	model := NewModel(game, cfg, m)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse releases flip tiles
	)

	_, err := p.Run()
	return err
}
