package dash

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/neon-dash/internal/config"
	"github.com/vovakirdan/neon-dash/internal/core"
	"github.com/vovakirdan/neon-dash/internal/registry"
	"github.com/vovakirdan/neon-dash/internal/sim"
)

const tick = 16 * time.Millisecond

func newTestGame(t *testing.T, id string) *Game {
	t.Helper()
	g, err := registry.Create(id)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", id, err)
	}
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	g.Reset(cfg)
	return g.(*Game)
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"dash", "dash_easy", "dash_hard", "dash_fixed"} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
		}
	}
	if g := newTestGame(t, "dash"); g.Title() != "Neon Dash" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestModeFor(t *testing.T) {
	tests := []struct {
		preset config.DifficultyPreset
		want   string
	}{
		{config.DifficultyNormal, "dash"},
		{config.DifficultyEasy, "dash_easy"},
		{config.DifficultyHard, "dash_hard"},
		{config.DifficultyFixed, "dash_fixed"},
		{"", "dash"},
	}
	for _, tt := range tests {
		if got := ModeFor(tt.preset).ID; got != tt.want {
			t.Errorf("ModeFor(%q) = %q, expected %q", tt.preset, got, tt.want)
		}
	}
	if Modes()[0].ID != "dash" {
		t.Error("default mode should be listed first")
	}
}

func TestPresetsChangeTuning(t *testing.T) {
	normal := newTestGame(t, "dash")
	easy := newTestGame(t, "dash_easy")
	hard := newTestGame(t, "dash_hard")
	fixed := newTestGame(t, "dash_fixed")

	if !(easy.cfg.Physics.InitialSpeed < normal.cfg.Physics.InitialSpeed &&
		normal.cfg.Physics.InitialSpeed < hard.cfg.Physics.InitialSpeed) {
		t.Errorf("initial speeds not ordered: easy %v normal %v hard %v",
			easy.cfg.Physics.InitialSpeed, normal.cfg.Physics.InitialSpeed, hard.cfg.Physics.InitialSpeed)
	}
	if fixed.cfg.Physics.SpeedRamp != 0 {
		t.Errorf("fixed preset ramp = %v", fixed.cfg.Physics.SpeedRamp)
	}
}

func TestStartAndJump(t *testing.T) {
	g := newTestGame(t, "dash")

	// Waiting on the start screen.
	g.Step(core.NewInputFrame(), tick)
	if g.Snapshot().Phase != sim.PhaseIdle {
		t.Fatalf("phase = %v, expected idle", g.Snapshot().Phase)
	}

	g.Step(press(core.ActionJump), tick)
	if g.Snapshot().Phase != sim.PhaseRunning {
		t.Fatalf("phase = %v, expected running", g.Snapshot().Phase)
	}

	res := g.Step(press(core.ActionJump), tick)
	if !slices.Equal(res.Cues, []core.Cue{core.CueJump}) {
		t.Errorf("cues = %v, expected a single jump cue", res.Cues)
	}
}

func TestPauseFreezesRun(t *testing.T) {
	g := newTestGame(t, "dash")
	g.Step(press(core.ActionConfirm), tick)
	g.Step(core.NewInputFrame(), tick)

	g.Step(press(core.ActionPause), tick)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	before := g.Snapshot().Session.Distance
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame(), tick)
	}
	if g.Snapshot().Session.Distance != before {
		t.Error("distance advanced while paused")
	}

	g.Step(press(core.ActionPause), tick)
	g.Step(core.NewInputFrame(), tick)
	if g.Snapshot().Session.Distance == before {
		t.Error("distance did not advance after resuming")
	}
}

func TestRunEndsAndRestarts(t *testing.T) {
	g := newTestGame(t, "dash")
	g.Step(press(core.ActionJump), tick)

	var hit bool
	for i := 0; i < 20000 && !g.State().GameOver; i++ {
		res := g.Step(core.NewInputFrame(), tick)
		hit = slices.Contains(res.Cues, core.CueHit)
	}
	if !g.State().GameOver || !hit {
		t.Fatal("run without jumping should end in a crash with a hit cue")
	}

	// The crash screen stays until a restart is requested.
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame(), tick)
	}
	if !g.State().GameOver {
		t.Fatal("game over should persist")
	}

	g.Step(press(core.ActionRestart), tick)
	if g.State().GameOver || g.Snapshot().Phase != sim.PhaseRunning {
		t.Errorf("restart did not begin a new run: %+v", g.State())
	}
	if g.State().Score != 0 {
		t.Errorf("new run score = %d", g.State().Score)
	}
}

func TestCuesFor(t *testing.T) {
	events := []sim.Event{
		sim.Jumped{},
		sim.CoinCollected{TotalThisRun: 1},
		sim.PadBounced{},
		sim.Died{Score: 3},
	}
	want := []core.Cue{core.CueJump, core.CueCoin, core.CuePad, core.CueHit}
	if got := cuesFor(events); !slices.Equal(got, want) {
		t.Errorf("cuesFor() = %v, expected %v", got, want)
	}
	if cuesFor(nil) != nil {
		t.Error("no events should produce no cues")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, "dash")
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "N E O N") {
		t.Error("start screen should show the title")
	}
	if !strings.Contains(screen.Row(0), "SCORE 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}

	g.Step(press(core.ActionJump), tick)
	g.Step(core.NewInputFrame(), tick)
	g.Render(screen)

	// Ground sits at 82% of the playfield.
	groundY := 442.0
	groundRow := hudRows + int(groundY*23/540)
	if !strings.Contains(screen.Row(groundRow), string(GroundChar)) {
		t.Errorf("row %d = %q, expected ground", groundRow, screen.Row(groundRow))
	}

	// Runner body is drawn in the skin color.
	snap := g.Snapshot()
	v := newViewport(screen, snap, 0)
	body := v.rect(snap.Runner.Bounds())
	if c := screen.GetCell(body.X, body.Y+body.H-1); c.Color != g.skin.Color {
		t.Errorf("runner cell = %+v, expected skin color %v", c, g.skin.Color)
	}
}

func TestViewportRectNeverEmpty(t *testing.T) {
	screen := core.NewScreen(20, 6)
	snap := sim.Snapshot{Width: 960, Height: 540}
	v := newViewport(screen, snap, 0)

	r := v.rect(core.RectF{X: 100, Y: 100, W: 1, H: 1})
	if r.W < 1 || r.H < 1 {
		t.Errorf("rect = %+v, expected at least one cell", r)
	}
}
