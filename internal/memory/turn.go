package memory

import (
	"time"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// Phase is the state of the current turn.
type Phase int

const (
	PhaseIdle            Phase = iota // no tile flipped
	PhaseOneFlipped                   // waiting for the second tile
	PhasePairResolving                // pair being compared
	PhaseAutoHidePending              // pair shown, hide pass due at the deadline
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseOneFlipped:
		return "one_flipped"
	case PhasePairResolving:
		return "pair_resolving"
	case PhaseAutoHidePending:
		return "auto_hide_pending"
	default:
		return "unknown"
	}
}

// Outcome is the result of comparing a flipped pair.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeMatch
	OutcomeMismatch
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMatch:
		return "match"
	case OutcomeMismatch:
		return "mismatch"
	default:
		return "none"
	}
}

// Turn counts flips since the last resolution and schedules the hide pass.
// Times are offsets on the game clock.
type Turn struct {
	delay     time.Duration
	flipCount int
	phase     Phase
	outcome   Outcome
	hideAt    time.Duration
}

// NewTurn creates an idle turn whose pairs stay visible for delay.
func NewTurn(delay time.Duration) *Turn {
	return &Turn{delay: max(delay, 0)}
}

// PointerUp flips the tile under p. When the flip count becomes even the
// face-up pair is compared, matching tiles are kept and the hide pass is
// scheduled for now+delay. Turn ignores clicks while a pair is showing; Game
// holds them until the hide pass.
func (t *Turn) PointerUp(b *Board, p core.Point, now time.Duration) Outcome {
	if t.phase != PhaseIdle && t.phase != PhaseOneFlipped {
		return OutcomeNone
	}

	for _, tile := range b.Tiles() {
		if tile.Flip(p) {
			t.flipCount++
		}
	}

	if t.flipCount == 0 || t.flipCount%2 != 0 {
		t.phase = PhaseIdle
		if t.flipCount > 0 {
			t.phase = PhaseOneFlipped
		}
		return OutcomeNone
	}

	t.phase = PhasePairResolving
	t.outcome = t.resolve(b)
	t.phase = PhaseAutoHidePending
	t.hideAt = now + t.delay
	return t.outcome
}

// resolve compares the face-up unmatched tiles and keeps an equal pair.
func (t *Turn) resolve(b *Board) Outcome {
	open := b.Unresolved()
	if len(open) != 2 || open[0].Image() != open[1].Image() {
		return OutcomeMismatch
	}
	open[0].SetMatched(true)
	open[1].SetMatched(true)
	return OutcomeMatch
}

// Advance runs the hide pass once the deadline has passed: every unmatched
// tile is turned face down and the flip count starts over. It reports
// whether the pass ran.
func (t *Turn) Advance(b *Board, now time.Duration) bool {
	if t.phase != PhaseAutoHidePending || now < t.hideAt {
		return false
	}
	b.HideUnmatched()
	t.flipCount = 0
	t.phase = PhaseIdle
	return true
}

// Phase returns the current phase.
func (t *Turn) Phase() Phase {
	return t.phase
}

// FlipCount returns the number of flips since the last hide pass.
func (t *Turn) FlipCount() int {
	return t.flipCount
}

// Outcome returns the result of the most recent comparison.
func (t *Turn) Outcome() Outcome {
	return t.outcome
}

// Pending reports whether a hide pass is scheduled.
func (t *Turn) Pending() bool {
	return t.phase == PhaseAutoHidePending
}

// Remaining returns how long until the hide pass, or 0 when none is due.
func (t *Turn) Remaining(now time.Duration) time.Duration {
	if !t.Pending() || now >= t.hideAt {
		return 0
	}
	return t.hideAt - now
}

// Delay returns the visible delay of a flipped pair.
func (t *Turn) Delay() time.Duration {
	return t.delay
}
