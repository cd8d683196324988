// Package gui runs the memory game in a desktop window using Ebiten.
package gui

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/memory"
)

// Window adapts a memory.Game to ebiten.Game.
// Ebiten calls Update at the configured TPS; the reveal delay runs on the
// game clock so Update never blocks.
type Window struct {
	game    *memory.Game
	surface config.SurfaceConfig
	fps     int
	canvas  *canvas
	frame   core.InputFrame
	logger  *log.Logger
}

// NewWindow prepares a window for game using the window section of cfg.
// logger may be nil.
func NewWindow(game *memory.Game, cfg config.MemoryConfig, logger *log.Logger) (*Window, error) {
	palette := make([]color.RGBA, len(cfg.Images))
	names := make([]string, len(cfg.Images))
	for i, img := range cfg.Images {
		r, g, b, err := config.ParseHexColor(img.RGB)
		if err != nil {
			return nil, fmt.Errorf("gui: image %q: %w", img.Name, err)
		}
		palette[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
		names[i] = img.Name
	}

	return &Window{
		game:    game,
		surface: cfg.Window,
		fps:     cfg.Timing.FPS,
		canvas:  &canvas{palette: palette, names: names},
		frame:   core.NewInputFrame(),
		logger:  logger,
	}, nil
}

// Update polls input and steps the game once.
func (w *Window) Update() error {
	if ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		w.frame.Push(core.CloseEvent())
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		w.frame.Push(core.PointerReleased(x, y))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) && !w.game.Continue() {
		w.game.Restart()
		if w.logger != nil {
			w.logger.Info("new board", "seed", w.game.Seed())
		}
	}

	res := w.game.Step(w.frame)
	w.frame.Clear()

	if res.Finished && w.logger != nil {
		w.logger.Info("all pairs found",
			"score", res.State.Score,
			"moves", w.game.Moves(),
			"mismatches", w.game.Mismatches(),
		)
	}

	if res.State.CloseRequested {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the board, the score and the win banner.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	w.canvas.dst = screen
	w.game.Draw(w.canvas)

	x, y := w.surface.Score.X, w.surface.Score.Y
	w.canvas.DrawText(x, y+lineHeight, fmt.Sprintf("Pairs %d/%d", w.game.Pairs(), memory.ImageCount), core.ColorWhite, core.ColorBlack)
	w.canvas.DrawText(x, y+2*lineHeight, fmt.Sprintf("Moves %d", w.game.Moves()), core.ColorWhite, core.ColorBlack)

	if !w.game.Continue() {
		w.canvas.drawBanner(w.game.Options().Layout.Bounds(),
			"ALL PAIRS FOUND",
			fmt.Sprintf("Time %ds  Moves %d", w.game.Score(), w.game.Moves()),
			"Press R to restart",
		)
	}
}

// Layout fixes the logical screen to the configured window size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.surface.Width, w.surface.Height
}

// Run opens the window and blocks until it is closed.
func Run(w *Window) error {
	ebiten.SetWindowSize(w.surface.Width, w.surface.Height)
	ebiten.SetWindowTitle(w.surface.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(w.fps)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
