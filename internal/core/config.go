package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Frames per second requested from the host loop
	Seed     int64  // RNG seed for deterministic gameplay
	Skin     string // Equipped cosmetic skin identifier
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		Skin:     "classic",
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Coins    int  // Coins picked up during the current run
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
}

// Cue is a discrete feedback signal a platform may turn into sound.
type Cue int

const (
	CueJump Cue = iota
	CueCoin
	CuePad
	CueHit
)

// StepResult is returned by Game.Step() after each simulation frame.
type StepResult struct {
	State GameState
	Cues  []Cue // Feedback signals raised this frame, in order
}
