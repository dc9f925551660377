package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-dash/internal/core"
	"github.com/vovakirdan/neon-dash/internal/registry"
	"github.com/vovakirdan/neon-dash/internal/storage"
)

// GameModel runs one game mode inside Bubble Tea. It measures the real time
// between ticks, commits each finished run to the store exactly once and
// forwards feedback cues to the bell.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	bell       *Bell
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	loop       uint64
	lastTick   time.Time
	recorded   bool
	record     *storage.RunRecord
	recordErr  error
	standalone bool // back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. store and bell may be nil.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, bell *Bell) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		bell:       bell,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		loop:       nextLoop(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		// The renderer scales the world to any size, so a resize never
		// interrupts the run.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.At)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// B or Esc leaves once the run is over or paused
	action, _ := m.keyMapper.MapKey(msg)
	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleTick advances the game by the time elapsed since the previous tick.
// The first tick reports zero and the simulation substitutes a nominal frame.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		if !m.recorded {
			m.recordRun()
			m.recorded = true
		}
	} else if m.recorded {
		// A new run started
		m.recorded = false
		m.record = nil
		m.recordErr = nil
	}

	return m, tea.Batch(tickCmd(m.config.TickRate, m.loop), cueCmd(m.bell, result.Cues))
}

// recordRun commits the finished run: score row plus coin credit.
func (m *GameModel) recordRun() {
	if m.store == nil {
		return
	}
	rec, err := m.store.RecordRun(m.game.ID(), m.gameState.Score, m.gameState.Coins)
	if err != nil {
		m.recordErr = err
		return
	}
	m.record = &rec
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".neondash", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.drawRecord()
	return RenderScreen(m.screen)
}

// drawRecord writes the committed run's outcome on the bottom row.
func (m GameModel) drawRecord() {
	row := m.screen.Height() - 1
	switch {
	case m.recordErr != nil:
		m.screen.DrawTextColored(1, row, "could not save run: "+m.recordErr.Error(), core.ColorBrightRed)
	case m.record != nil:
		line := fmt.Sprintf(" BEST %d   WALLET %d (+%d) ", m.record.Best, m.record.Wallet, m.record.Credited)
		color := core.ColorBrightYellow
		if m.record.NewBest {
			line = " NEW BEST!" + line
			color = core.ColorBrightMagenta
		}
		m.screen.DrawTextColored((m.screen.Width()-len([]rune(line)))/2, row, line, color)
	}
}

// Record returns the stored outcome of the last finished run, if any.
func (m GameModel) Record() *storage.RunRecord {
	return m.record
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game mode until the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, bell *Bell) error {
	model := NewGameModel(game, store, cfg, bell)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
