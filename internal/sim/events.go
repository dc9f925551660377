package sim

import "fmt"

// Event is a discrete occurrence reported by Step for collaborators such as
// audio, persistence and UI. Each event is delivered exactly once.
type Event interface {
	simEvent()
	String() string
}

// Jumped is emitted when a manual jump is honored.
type Jumped struct{}

func (Jumped) simEvent() {}

func (Jumped) String() string { return "jumped" }

// CoinCollected is emitted the step a coin is picked up.
type CoinCollected struct {
	TotalThisRun int
}

func (CoinCollected) simEvent() {}

func (e CoinCollected) String() string {
	return fmt.Sprintf("coin collected (%d this run)", e.TotalThisRun)
}

// PadBounced is emitted when a jump pad launches the runner.
type PadBounced struct{}

func (PadBounced) simEvent() {}

func (PadBounced) String() string { return "pad bounced" }

// Died is emitted once per run, on the fatal step. Committing CoinsEarned to
// the wallet and comparing Score against the best is left to the receiver.
type Died struct {
	Score       int
	CoinsEarned int
}

func (Died) simEvent() {}

func (e Died) String() string {
	return fmt.Sprintf("died (score %d, coins %d)", e.Score, e.CoinsEarned)
}
