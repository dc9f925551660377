package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-dash/internal/skins"
	"github.com/vovakirdan/neon-dash/internal/storage"
)

// ShopKeyMap defines the key bindings for the skin shop.
type ShopKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ShopKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ShopKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Back, k.Quit},
	}
}

// DefaultShopKeyMap returns default key bindings.
func DefaultShopKeyMap() ShopKeyMap {
	return ShopKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "prev"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "buy/equip"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShopModel is the Bubble Tea model for buying and equipping skins.
type ShopModel struct {
	store     *storage.Store
	items     []skins.Skin
	owned     map[string]bool
	equipped  string
	wallet    int
	cursor    int
	notice    string
	failed    bool // notice describes an error
	keys      ShopKeyMap
	help      help.Model
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewShopModel creates a shop over the skin catalog.
func NewShopModel(store *storage.Store, width, height int) ShopModel {
	m := ShopModel{
		store:    store,
		items:    skins.Catalog(),
		owned:    map[string]bool{skins.DefaultID: true},
		equipped: skins.DefaultID,
		keys:     DefaultShopKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	if store == nil {
		m.setError("the shop needs a scores database")
		return m
	}
	if err := m.reload(); err != nil {
		m.setError(err.Error())
	}
	return m
}

// reload reads the wallet, owned set and equipped skin from the store.
func (m *ShopModel) reload() error {
	wallet, err := m.store.Coins()
	if err != nil {
		return err
	}
	ids, err := m.store.OwnedSkins()
	if err != nil {
		return err
	}
	equipped, err := m.store.EquippedSkin()
	if err != nil {
		return err
	}

	m.wallet = wallet
	m.owned = make(map[string]bool, len(ids))
	for _, id := range ids {
		m.owned[id] = true
	}
	m.equipped = skins.Resolve(equipped).ID
	return nil
}

// Init initializes the shop model.
func (m ShopModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the shop.
func (m ShopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Select):
			m.activate()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// activate buys the skin under the cursor, or equips it when already owned.
// A fresh purchase is equipped right away.
func (m *ShopModel) activate() {
	if m.store == nil || len(m.items) == 0 {
		return
	}
	s := m.items[m.cursor]

	switch {
	case s.ID == m.equipped:
		m.setNotice(s.Name + " is already equipped")
		return

	case !m.owned[s.ID]:
		_, err := m.store.BuySkin(s.ID, s.Price)
		switch {
		case errors.Is(err, storage.ErrInsufficientCoins):
			m.setError(fmt.Sprintf("%s costs %d, you have %d", s.Name, s.Price, m.wallet))
			return
		case err != nil && !errors.Is(err, storage.ErrAlreadyOwned):
			m.setError(err.Error())
			return
		}
		if err := m.store.EquipSkin(s.ID); err != nil {
			m.setError(err.Error())
			return
		}
		m.setNotice(fmt.Sprintf("Bought and equipped %s", s.Name))

	default:
		if err := m.store.EquipSkin(s.ID); err != nil {
			m.setError(err.Error())
			return
		}
		m.setNotice("Equipped " + s.Name)
	}

	if err := m.reload(); err != nil {
		m.setError(err.Error())
	}
}

func (m *ShopModel) setNotice(s string) {
	m.notice = s
	m.failed = false
}

func (m *ShopModel) setError(s string) {
	m.notice = s
	m.failed = true
}

// View renders the shop.
func (m ShopModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(theme.Title.Render("S K I N   S H O P"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(theme.Wallet.Render(fmt.Sprintf("● %d coins", m.wallet)), m.width))
	b.WriteString("\n\n")

	rows := make([]string, len(m.items))
	for i, s := range m.items {
		rows[i] = m.renderRow(i, s)
	}
	panel := theme.Panel.Render(strings.Join(rows, "\n"))
	for _, line := range strings.Split(panel, "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.notice != "" {
		style := theme.Notice
		if m.failed {
			style = theme.Error
		}
		b.WriteString(centerText(style.Render(m.notice), m.width))
	}
	b.WriteString("\n\n")
	b.WriteString(centerText(theme.Help.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// renderRow draws one catalog entry: swatch, name and its status.
func (m ShopModel) renderRow(i int, s skins.Skin) string {
	cursor := "  "
	nameStyle := theme.ItemNormal
	if i == m.cursor {
		cursor = "> "
		nameStyle = theme.ItemActive
	}

	swatch := lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.Glow)).
		Background(lipgloss.Color(s.Fill)).
		Render(" █ ")

	var status string
	switch {
	case s.ID == m.equipped:
		status = theme.Equipped.Render("equipped")
	case m.owned[s.ID]:
		status = theme.Owned.Render("owned")
	case s.Price > m.wallet:
		status = theme.Locked.Render(fmt.Sprintf("● %d", s.Price))
	default:
		status = theme.Price.Render(fmt.Sprintf("● %d", s.Price))
	}

	name := nameStyle.Render(fmt.Sprintf("%-10s", s.Name))
	return cursor + swatch + " " + name + " " + status
}

// Equipped returns the identifier of the equipped skin.
func (m ShopModel) Equipped() string {
	return m.equipped
}

// Wallet returns the coin balance as last read from the store.
func (m ShopModel) Wallet() int {
	return m.wallet
}

// Notice returns the last status message and whether it reports an error.
func (m ShopModel) Notice() (string, bool) {
	return m.notice, m.failed
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ShopModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ShopModel) IsQuitting() bool {
	return m.quitting
}

// RunShop runs the shop screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunShop(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewShopModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ShopModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
