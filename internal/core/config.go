// Package core provides the small shared types used between the minefield
// engine and the front ends that drive it. It has no external dependencies.
package core

import "time"

// RuntimeConfig contains configuration passed to a session at creation.
type RuntimeConfig struct {
	Rows  int   // Grid height
	Cols  int   // Grid width
	Mines int   // Number of mines
	Seed  int64 // RNG seed for deterministic mine layout
}

// DefaultConfig returns a RuntimeConfig for a beginner board.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Rows:  9,
		Cols:  9,
		Mines: 10,
		Seed:  0, // 0 means use current time
	}
}

// ResolveSeed returns the configured seed, or a time-based one if it is 0.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
