package sim

import "math"

// Phase is the run lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseDead
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Session holds the per-run scalars. It is reset at every run start and only
// mutated inside Step.
type Session struct {
	Speed    float64 // scroll speed, speed units
	Distance float64 // world units travelled
	Score    int
	Coins    int     // coins collected this run
	Elapsed  float64 // simulated seconds spent running
}

// Result is the outcome captured when a run ends.
type Result struct {
	Score       int
	CoinsEarned int
}

// scoreFor derives the score from distance. Score is never incremented on
// its own.
func scoreFor(distance, divisor float64) int {
	if divisor <= 0 {
		return 0
	}
	return int(math.Floor(distance / divisor))
}
