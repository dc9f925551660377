package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-dash/internal/core"
	"github.com/vovakirdan/neon-dash/internal/storage"
)

// stubGame records what the model feeds it and reports a scripted state.
type stubGame struct {
	id     string
	resets int
	steps  []time.Duration
	inputs []core.InputFrame
	state  core.GameState
	cues   []core.Cue
}

func (g *stubGame) ID() string               { return g.id }
func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Render(dst *core.Screen)  { dst.Clear() }
func (g *stubGame) State() core.GameState    { return g.state }
func (g *stubGame) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.steps = append(g.steps, dt)
	cp := core.NewInputFrame()
	for a := range in.Actions {
		cp.Set(a)
	}
	g.inputs = append(g.inputs, cp)
	return core.StepResult{State: g.state, Cues: g.cues}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 60, Seed: 7}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// tick delivers a tick for the model's own loop.
func tick(t *testing.T, m GameModel, at time.Time) GameModel {
	t.Helper()
	next, _ := m.Update(TickMsg{At: at, Loop: m.loop})
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func press(t *testing.T, m GameModel, msg tea.KeyMsg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(GameModel)
}

func TestGameModelMeasuresElapsedTime(t *testing.T) {
	game := &stubGame{id: "stub"}
	m := NewGameModel(game, nil, testConfig(), nil)
	m.Init()

	start := time.Unix(1000, 0)
	m = tick(t, m, start)
	m = tick(t, m, start.Add(20*time.Millisecond))
	m = tick(t, m, start.Add(45*time.Millisecond))

	want := []time.Duration{0, 20 * time.Millisecond, 25 * time.Millisecond}
	if len(game.steps) != len(want) {
		t.Fatalf("steps = %v, expected %v", game.steps, want)
	}
	for i := range want {
		if game.steps[i] != want[i] {
			t.Errorf("step %d dt = %v, expected %v", i, game.steps[i], want[i])
		}
	}
	if game.resets != 1 {
		t.Errorf("Init should reset once, got %d", game.resets)
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	game := &stubGame{id: "stub"}
	m := NewGameModel(game, nil, testConfig(), nil)

	next, cmd := m.Update(TickMsg{At: time.Now(), Loop: m.loop + 100})
	if _, ok := next.(GameModel); !ok {
		t.Fatalf("Update returned %T", next)
	}
	if cmd != nil {
		t.Error("stale tick should not schedule another")
	}
	if len(game.steps) != 0 {
		t.Error("stale tick should not step the game")
	}
}

func TestGameModelForwardsInputOnce(t *testing.T) {
	game := &stubGame{id: "stub"}
	m := NewGameModel(game, nil, testConfig(), nil)

	m = press(t, m, runeKey("w"))
	now := time.Now()
	m = tick(t, m, now)
	m = tick(t, m, now.Add(16*time.Millisecond))

	if !game.inputs[0].Has(core.ActionJump) {
		t.Error("first step should carry the jump")
	}
	if game.inputs[1].Has(core.ActionJump) {
		t.Error("input should be cleared after a step")
	}
}

func TestGameModelRecordsRunOnce(t *testing.T) {
	store := openTestStore(t)
	game := &stubGame{id: "dash"}
	m := NewGameModel(game, store, testConfig(), nil)

	now := time.Now()
	m = tick(t, m, now)

	game.state = core.GameState{Score: 42, Coins: 5, GameOver: true}
	for i := 1; i <= 5; i++ {
		m = tick(t, m, now.Add(time.Duration(i)*16*time.Millisecond))
	}

	scores, err := store.TopScores("dash", 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected exactly one recorded run, got %d", len(scores))
	}
	if scores[0].Score != 42 || scores[0].Coins != 5 {
		t.Errorf("recorded %+v", scores[0])
	}

	rec := m.Record()
	if rec == nil || !rec.NewBest || rec.Wallet != 5 {
		t.Fatalf("Record() = %+v", rec)
	}

	// A new run clears the record; its crash is committed again
	game.state = core.GameState{Score: 3}
	m = tick(t, m, now.Add(time.Second))
	if m.Record() != nil {
		t.Error("record should clear when a new run starts")
	}
	game.state = core.GameState{Score: 10, Coins: 1, GameOver: true}
	m = tick(t, m, now.Add(2*time.Second))

	coins, err := store.Coins()
	if err != nil {
		t.Fatalf("Coins failed: %v", err)
	}
	if coins != 6 {
		t.Errorf("wallet = %d, expected 6", coins)
	}
	if m.Record().NewBest {
		t.Error("10 should not beat 42")
	}
}

func TestGameModelBackOnlyWhenOverOrPaused(t *testing.T) {
	game := &stubGame{id: "stub"}
	m := NewGameModel(game, nil, testConfig(), nil)
	m = tick(t, m, time.Now())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored during a run")
	}

	game.state.Paused = true
	m = tick(t, m, time.Now())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should leave a paused run")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := NewGameModel(&stubGame{id: "stub"}, nil, testConfig(), nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("ctrl+c should quit")
	}
	if next.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelViewShowsRecord(t *testing.T) {
	store := openTestStore(t)
	game := &stubGame{id: "dash", state: core.GameState{Score: 9, Coins: 2, GameOver: true}}
	m := NewGameModel(game, store, testConfig(), nil)
	m = tick(t, m, time.Now())

	m.View()
	if row := m.screen.Row(m.screen.Height() - 1); !strings.Contains(row, "NEW BEST!") {
		t.Errorf("bottom row = %q", row)
	}
}

func TestBellRingsForAudibleCues(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf)

	for _, c := range []core.Cue{core.CueJump, core.CueCoin, core.CuePad, core.CueHit} {
		if err := b.Play(c); err != nil {
			t.Fatalf("Play(%v) failed: %v", c, err)
		}
	}
	if buf.String() != "\a\a\a" {
		t.Errorf("bell output = %q, expected three bells", buf.String())
	}

	var nilBell *Bell
	if err := nilBell.Play(core.CueHit); err != nil {
		t.Error("nil bell should be silent")
	}
}

func TestCueCmdPlaysFrameCues(t *testing.T) {
	var buf bytes.Buffer
	cmd := cueCmd(NewBell(&buf), []core.Cue{core.CueCoin, core.CueJump, core.CueHit})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	cmd()
	if buf.String() != "\a\a" {
		t.Errorf("bell output = %q", buf.String())
	}

	if cueCmd(NewBell(&buf), nil) != nil || cueCmd(nil, []core.Cue{core.CueHit}) != nil {
		t.Error("nothing to play should yield no command")
	}
}
