package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-dash/internal/core"
	"github.com/vovakirdan/neon-dash/internal/registry"
)

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{id: "stub"} })
}

func sessionKey(t *testing.T, m SessionModel, msg tea.KeyMsg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

// menuIndex returns the position of the first item of the given kind.
func menuIndex(t *testing.T, m MenuModel, kind MenuItemKind, gameID string) int {
	t.Helper()
	for i, item := range m.items {
		if item.Kind == kind && item.GameID == gameID {
			return i
		}
	}
	t.Fatalf("no menu item of kind %v (%q)", kind, gameID)
	return -1
}

func TestMenuListsModesAndScreens(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	menuIndex(t, m, MenuItemGame, "stub")
	menuIndex(t, m, MenuItemShop, "")
	menuIndex(t, m, MenuItemScores, "")

	last := m.items[len(m.items)-1]
	if last.Kind != MenuItemQuit {
		t.Errorf("last item = %+v, expected quit", last)
	}
}

func TestMenuReadsWalletAndSkin(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.RecordRun("stub", 12, 40); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	if _, err := store.BuySkin("violet", 35); err != nil {
		t.Fatalf("BuySkin failed: %v", err)
	}
	if err := store.EquipSkin("violet"); err != nil {
		t.Fatalf("EquipSkin failed: %v", err)
	}

	m := NewMenuModel(store, testConfig())
	if m.wallet != 5 {
		t.Errorf("wallet = %d, expected 5", m.wallet)
	}
	if m.Config().Skin != "violet" {
		t.Errorf("config skin = %q, expected violet", m.Config().Skin)
	}
	if best := m.items[menuIndex(t, m, MenuItemGame, "stub")].Best; best != 12 {
		t.Errorf("best = %d, expected 12", best)
	}
}

func TestSessionPlaysAndReturnsToMenu(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), nil)
	m.menu.cursor = menuIndex(t, m.menu, MenuItemGame, "stub")

	m = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatalf("screen = %v, expected game", m.screen)
	}
	stub := m.gameModel.game.(*stubGame)
	if stub.resets != 1 {
		t.Errorf("game should be reset once on start, got %d", stub.resets)
	}

	stub.state = core.GameState{Score: 4, GameOver: true}
	next, _ := m.Update(TickMsg{At: time.Now(), Loop: m.gameModel.loop})
	m = next.(SessionModel)

	m = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.gameModel != nil {
		t.Errorf("screen = %v, expected menu after back", m.screen)
	}
	if m.quitting {
		t.Error("back should not end the session")
	}
}

func TestSessionOpensShopAndScores(t *testing.T) {
	m := NewSessionModel(openTestStore(t), testConfig(), nil)

	m = sessionKey(t, m, runeKey("$"))
	if m.screen != screenShop {
		t.Fatalf("screen = %v, expected shop", m.screen)
	}
	m = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu", m.screen)
	}

	m = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %v, expected scores", m.screen)
	}
	m = sessionKey(t, m, runeKey("q"))
	if !m.quitting {
		t.Error("q on the scoreboard should end the session")
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), nil)
	next, cmd := m.Update(runeKey("q"))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q should end the session")
	}
}
