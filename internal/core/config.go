package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to adapt to the screen size and for deterministic deals.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for the window front-end)
	ScreenH  int   // Screen height in characters (or pixels)
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for deterministic shuffles
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score          int  // Elapsed seconds, frozen once the game is over
	GameOver       bool // All tiles revealed
	Paused         bool // Window too small
	CloseRequested bool // A close event was received
}

// StepResult is returned by Game.Step() after each frame.
// Contains the updated game state and what was resolved during the frame.
type StepResult struct {
	State      GameState
	Matched    int  // Pairs matched during this frame
	Mismatched int  // Pairs that did not match during this frame
	Finished   bool // The final pair was found during this frame
}
