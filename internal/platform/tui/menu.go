package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/registry"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

// MenuItem represents a selectable puzzle in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// MenuModel is the Bubble Tea model for the puzzle picker menu.
type MenuModel struct {
	items          []MenuItem
	stats          map[string]*storage.GameStats
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a puzzle
	openScoreboard bool      // True if user pressed Tab for history
}

// NewMenuModel creates a new menu model. store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{
			GameID: g.ID,
			Title:  g.Title,
		})
	}

	var stats map[string]*storage.GameStats
	if store != nil {
		// Missing stats only hide the summary line
		stats, _ = store.AllGamesStats()
	}

	return MenuModel{
		items:     items,
		stats:     stats,
		cursor:    0,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the puzzle
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show history
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle, "  S L I D E  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a puzzle", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Title, m.width))
		b.WriteString("\n")
	}

	// Summary for the highlighted puzzle
	b.WriteString("\n")
	if len(m.items) > 0 {
		b.WriteString(centerStyled(dimStyle, m.summary(m.items[m.cursor].GameID), m.width))
	}
	b.WriteString("\n\n")

	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: History  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// summary describes past sessions of a puzzle.
func (m MenuModel) summary(gameID string) string {
	st, ok := m.stats[gameID]
	if !ok || st.Sessions == 0 {
		return "Not played yet"
	}
	line := fmt.Sprintf("%d sessions, %d solved", st.Sessions, st.SolvedCount)
	if st.BestMoves > 0 {
		line += fmt.Sprintf(", best %d moves", st.BestMoves)
	}
	return line
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the session history.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// centerStyled centers text by its plain width, then applies style.
func centerStyled(style lipgloss.Style, text string, width int) string {
	if len(text) >= width {
		return style.Render(text)
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + style.Render(text)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.GameID = m.Selected().GameID
	} else {
		result.Quit = true
	}

	return result, nil
}
