// Package headless runs the memory game without a terminal or window. The
// Runner is a plain blocking frame loop: it polls an EventSource, steps the
// game, presents the frame, waits out a shown pair and throttles to a fixed
// frame rate.
package headless

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/metrics"
)

// EventSource yields the events queued since the last poll, in arrival order.
type EventSource interface {
	Poll() []core.Event
}

// Surface displays a rendered frame.
type Surface interface {
	Present(s *core.Screen) error
}

// Runner drives one game to completion.
type Runner struct {
	game    *memory.Game
	events  EventSource
	surface Surface
	waiter  Waiter
	limiter Limiter
	screen  *core.Screen
	metrics *metrics.Metrics
	logger  *log.Logger
	frames  int
}

// NewRunner wires a game to its collaborators. The screen is w×h cells.
func NewRunner(game *memory.Game, events EventSource, surface Surface, waiter Waiter, limiter Limiter, w, h int) *Runner {
	return &Runner{
		game:    game,
		events:  events,
		surface: surface,
		waiter:  waiter,
		limiter: limiter,
		screen:  core.NewScreen(w, h),
	}
}

// WithMetrics records resolved pairs and finished games on m.
func (r *Runner) WithMetrics(m *metrics.Metrics) *Runner {
	r.metrics = m
	return r
}

// WithLogger logs resolved pairs and the end of the game.
func (r *Runner) WithLogger(l *log.Logger) *Runner {
	r.logger = l
	return r
}

// Result summarises a finished run.
type Result struct {
	Frames   int
	Snapshot memory.Snapshot
}

// Run loops until the game receives a close event or ctx is done.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	r.metrics.GameStarted()

	for {
		if err := ctx.Err(); err != nil {
			return r.result(), err
		}

		in := core.InputFrame{Events: r.events.Poll()}
		if err := r.frame(in); err != nil {
			return r.result(), err
		}
		if r.game.CloseRequested() {
			return r.result(), nil
		}

		// A pair is showing: block for the rest of the delay, then run the
		// hide pass and show the result.
		if r.game.Turn().Pending() {
			r.waiter.Wait(r.game.HideRemaining())
			if err := r.frame(core.NewInputFrame()); err != nil {
				return r.result(), err
			}
		}

		r.limiter.Wait()
	}
}

// frame steps the game once and presents it.
func (r *Runner) frame(in core.InputFrame) error {
	res := r.game.Step(in)
	r.frames++
	r.metrics.ObserveStep(res)
	r.log(res)

	r.game.Render(r.screen)
	if err := r.surface.Present(r.screen); err != nil {
		return fmt.Errorf("headless: cannot present frame %d: %w", r.frames, err)
	}
	return nil
}

func (r *Runner) log(res core.StepResult) {
	if r.logger == nil {
		return
	}
	switch {
	case res.Matched > 0:
		r.logger.Debug("pair matched", "frame", r.frames, "pairs", r.game.Pairs())
	case res.Mismatched > 0:
		r.logger.Debug("pair mismatched", "frame", r.frames)
	}
	if res.Finished {
		r.logger.Info("all pairs found", "score", res.State.Score, "moves", r.game.Moves())
	}
}

func (r *Runner) result() Result {
	return Result{Frames: r.frames, Snapshot: r.game.Snapshot()}
}

// Recorder is a Surface that keeps the last frame.
type Recorder struct {
	Frames int
	Last   string
}

func (rec *Recorder) Present(s *core.Screen) error {
	rec.Frames++
	rec.Last = s.String()
	return nil
}

// WriterSurface writes every frame as plain text, separated by a rule.
type WriterSurface struct {
	w io.Writer
}

// NewWriterSurface creates a surface writing to w.
func NewWriterSurface(w io.Writer) *WriterSurface {
	return &WriterSurface{w: w}
}

func (ws *WriterSurface) Present(s *core.Screen) error {
	_, err := fmt.Fprintf(ws.w, "%s\n%s\n", s.String(), strings.Repeat("─", s.Width()))
	return err
}
