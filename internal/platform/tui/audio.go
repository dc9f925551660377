package tui

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-dash/internal/core"
)

// Bell turns feedback cues into terminal bells. Jumps are too frequent to
// ring for and stay silent.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell creates a bell that writes to w. A nil writer yields a silent bell.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Play rings for a single cue.
func (b *Bell) Play(c core.Cue) error {
	if b == nil || b.w == nil || !audible(c) {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, err := io.WriteString(b.w, "\a")
	return err
}

func audible(c core.Cue) bool {
	switch c {
	case core.CueCoin, core.CuePad, core.CueHit:
		return true
	default:
		return false
	}
}

// cueCmd plays a frame's cues off the update loop.
func cueCmd(b *Bell, cues []core.Cue) tea.Cmd {
	if b == nil || len(cues) == 0 {
		return nil
	}
	return func() tea.Msg {
		for _, c := range cues {
			//nolint:errcheck // Best-effort, a lost bell is not an error
			b.Play(c)
		}
		return nil
	}
}
