package memory

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick           uint64
	Seed           int64
	Score          int
	Continue       bool
	CloseRequested bool
	Phase          Phase
	FlipCount      int
	Moves          int
	Mismatches     int
	Revealed       int
	Matched        int
	Deal           [TileCount]ImageID
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:           g.tick,
		Seed:           g.seed,
		Score:          g.score,
		Continue:       g.continueGame,
		CloseRequested: g.closeRequested,
		Phase:          g.turn.Phase(),
		FlipCount:      g.turn.FlipCount(),
		Moves:          g.moves,
		Mismatches:     g.mismatches,
		Revealed:       g.board.RevealedCount(),
		Matched:        g.board.MatchedCount(),
		Deal:           g.board.Deal(),
	}
}
