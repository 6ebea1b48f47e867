package core

// RuntimeConfig holds the per-run settings chosen on the command line.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns
	ScreenH  int   // Terminal rows
	TickRate int   // Session steps per second
	Seed     int64 // Board and bonus-word RNG seed; 0 lets the CLI pick one
}

// DefaultConfig is an 80x24 terminal stepped at 60 frames per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is the status the session reports to the platform each step.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool // A menu covers the board
}

// StepResult is the platform-facing part of one session step.
type StepResult struct {
	State GameState
}
