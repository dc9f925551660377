package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-dash/internal/core"
	"github.com/vovakirdan/neon-dash/internal/registry"
	"github.com/vovakirdan/neon-dash/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenShop
	screenScores
)

// SessionModel manages the full flow: menu, game, shop and scoreboard.
// It is the top-level model for SSH sessions and for the local menu.
type SessionModel struct {
	store     *storage.Store
	config    core.RuntimeConfig
	bell      *Bell
	logger    *log.Logger
	screen    sessionScreen
	menu      MenuModel
	gameModel *GameModel
	shop      ShopModel
	scores    ScoreboardModel
	quitting  bool
}

// NewSessionModel creates a new session model. store and bell may be nil.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, bell *Bell) SessionModel {
	return SessionModel{
		store:  store,
		config: cfg,
		bell:   bell,
		logger: log.New(io.Discard),
		menu:   NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenShop:
		return m.updateShop(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode. The menu ends its own
// program when used standalone, so its quit command is dropped here.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	switch selected.Kind {
	case MenuItemShop:
		m.shop = NewShopModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenShop
		return m, m.shop.Init()

	case MenuItemScores:
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()

	case MenuItemGame:
		game, err := registry.Create(selected.GameID)
		if err != nil {
			// Shouldn't happen since menu only shows registered games
			m.logger.Error("cannot create game", "game", selected.GameID, "err", err)
			return m.backToMenu()
		}

		cfg := m.menu.Config()
		cfg.Seed = time.Now().UnixNano()
		m.config = cfg

		gameModel := NewGameModel(game, m.store, cfg, m.bell)
		m.gameModel = &gameModel
		m.screen = screenGame
		m.logger.Info("run started", "game", game.ID(), "skin", cfg.Skin)
		return m, m.gameModel.Init()
	}

	return m.backToMenu()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		prev := m.gameModel.Record()
		m.gameModel = &gameModel
		if rec := gameModel.Record(); rec != nil && rec != prev {
			m.logger.Info("run recorded", "game", gameModel.game.ID(),
				"score", gameModel.gameState.Score, "coins", rec.Credited,
				"wallet", rec.Wallet, "best", rec.NewBest)
		}
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		return m.backToMenu()
	}

	return m, cmd
}

// updateShop handles updates when in the skin shop.
func (m SessionModel) updateShop(msg tea.Msg) (tea.Model, tea.Cmd) {
	newShop, cmd := m.shop.Update(msg)
	if shopModel, ok := newShop.(ShopModel); ok {
		m.shop = shopModel
	}

	switch {
	case m.shop.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.shop.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

// updateScores handles updates when on the scoreboard.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newScores, cmd := m.scores.Update(msg)
	if scoresModel, ok := newScores.(ScoreboardModel); ok {
		m.scores = scoresModel
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

// backToMenu rebuilds the menu so wallet, skin and bests are current.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.store, m.config)
	m.config = m.menu.Config()
	m.screen = screenMenu
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case screenShop:
		return m.shop.View()
	case screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// RunSession runs the menu-driven session locally until the user quits.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, bell *Bell, logger *log.Logger) error {
	model := NewSessionModel(store, cfg, bell)
	if logger != nil {
		model.logger = logger
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
