// Package dash adapts the runner simulation to the platform registry: it maps
// platform actions to simulation commands and draws snapshots into a
// character screen.
package dash

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-dash/internal/config"
	"github.com/vovakirdan/neon-dash/internal/core"
	"github.com/vovakirdan/neon-dash/internal/registry"
	"github.com/vovakirdan/neon-dash/internal/sim"
	"github.com/vovakirdan/neon-dash/internal/skins"
)

// configPath stores the custom config path set via CLI
var configPath string

// logger receives simulation lifecycle messages.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger routes simulation logging for games created afterwards.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game implements registry.Game for one difficulty preset.
type Game struct {
	id      string
	title   string
	preset  config.DifficultyPreset
	runtime core.RuntimeConfig
	cfg     config.DashConfig
	sim     *sim.Sim
	skin    skins.Skin
	frame   sim.Frame
	paused  bool
	ticks   int
}

// New creates a game for the given preset.
func New(id, title string, preset config.DifficultyPreset) *Game {
	return &Game{id: id, title: title, preset: preset}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the tuning and returns to the start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadDash(configPath)
	if err != nil {
		logger.Warn("using default tuning", "path", configPath, "err", err)
	}
	config.ApplyDashPreset(&cfg, g.preset)
	g.cfg = cfg

	g.skin = skins.Resolve(runtime.Skin)
	g.sim = sim.New(cfg,
		sim.WithSeed(runtime.Seed),
		sim.WithSkin(g.skin.ID),
		sim.WithLogger(logger.With("mode", g.id)),
	)
	g.frame = sim.Frame{Snapshot: g.sim.Snapshot()}
	g.paused = false
	g.ticks = 0
}

// Step advances the run by the elapsed wall-clock time.
//
// Jump or Confirm starts a run from the start screen, Restart begins a new
// run after a crash, and Pause freezes a run in progress.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	switch g.sim.Phase() {
	case sim.PhaseIdle:
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			g.sim.Start()
		}
	case sim.PhaseRunning:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			return core.StepResult{State: g.State()}
		}
		if in.Has(core.ActionJump) {
			g.sim.RequestJump()
		}
	case sim.PhaseDead:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.sim.Reset()
			g.sim.Start()
		}
	}

	g.ticks++
	g.frame = g.sim.Step(sim.Input{}, dt.Seconds())

	return core.StepResult{State: g.State(), Cues: cuesFor(g.frame.Events)}
}

// cuesFor maps simulation events to platform feedback cues.
func cuesFor(events []sim.Event) []core.Cue {
	var cues []core.Cue
	for _, e := range events {
		switch e.(type) {
		case sim.Jumped:
			cues = append(cues, core.CueJump)
		case sim.CoinCollected:
			cues = append(cues, core.CueCoin)
		case sim.PadBounced:
			cues = append(cues, core.CuePad)
		case sim.Died:
			cues = append(cues, core.CueHit)
		}
	}
	return cues
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	snap := g.frame.Snapshot
	return core.GameState{
		Score:    snap.Score(),
		Coins:    snap.Coins(),
		GameOver: snap.Phase == sim.PhaseDead,
		Paused:   g.paused,
	}
}

// Snapshot returns the world as of the last step.
func (g *Game) Snapshot() sim.Snapshot {
	return g.frame.Snapshot
}

// Mode describes one registered difficulty.
type Mode struct {
	ID     string
	Title  string
	Preset config.DifficultyPreset
}

// modes registers every difficulty as its own game so scores stay separate.
var modes = []Mode{
	{"dash", "Neon Dash", config.DifficultyNormal},
	{"dash_easy", "Neon Dash (Easy)", config.DifficultyEasy},
	{"dash_hard", "Neon Dash (Hard)", config.DifficultyHard},
	{"dash_fixed", "Neon Dash (Steady Speed)", config.DifficultyFixed},
}

// Modes returns the registered difficulties, default first.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

// ModeFor returns the mode registered for a preset. Unknown presets map
// to the default mode.
func ModeFor(preset config.DifficultyPreset) Mode {
	for _, m := range modes {
		if m.Preset == preset {
			return m
		}
	}
	return modes[0]
}

func init() {
	for _, m := range modes {
		m := m
		registry.Register(m.ID, func() registry.Game {
			return New(m.ID, m.Title, m.Preset)
		})
	}
}
