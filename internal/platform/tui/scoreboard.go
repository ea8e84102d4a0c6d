package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-slide/internal/registry"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

// History board layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show puzzle list sidebar
	sidebarWidth       = 22  // Width of puzzle list sidebar
	maxSessions        = 100 // Max sessions to load
)

// ScoreboardKeyMap defines the key bindings for the history board.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Clear    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Clear, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev puzzle"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next puzzle"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next puzzle"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev puzzle"),
		),
		Clear: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "clear history"),
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

// ScoreboardModel is the Bubble Tea model for the session history screen.
type ScoreboardModel struct {
	games       []registry.GameInfo
	gameCursor  int
	store       *storage.Store
	sessions    []storage.Session
	stats       *storage.GameStats
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool
}

// NewScoreboardModel creates a new history board model. store may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		games:       registry.List(),
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	if len(m.games) > 0 {
		m.loadSessions(m.games[0].ID)
	}

	return m
}

// createTable creates a new table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Size", Width: 5},
		{Title: "Moves", Width: 6},
		{Title: "Clicks", Width: 6},
		{Title: "Drags", Width: 7},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: 12},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	// Give spare width to the date column
	used := 0
	for _, c := range columns[:len(columns)-1] {
		used += c.Width + 2
	}
	if spare := tableWidth - used - 2; spare > columns[6].Width {
		columns[6].Width = min(spare, 18)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, summary and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSessions loads the history and summary for the given puzzle.
func (m *ScoreboardModel) loadSessions(gameID string) {
	m.sessions = nil
	m.stats = nil
	if m.store != nil {
		if sessions, err := m.store.RecentSessions(gameID, maxSessions); err == nil {
			m.sessions = sessions
		}
		if stats, err := m.store.GameStats(gameID); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows fills the table from the loaded sessions.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		moves := fmt.Sprintf("%d", s.Moves)
		if s.Solved && s.Moves > 0 {
			moves += "*"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", s.ID),
			fmt.Sprintf("%dx%d", s.Dimension, s.Dimension),
			moves,
			fmt.Sprintf("%d", s.Clicks),
			fmt.Sprintf("%d/%d", s.DragsCommitted, s.DragsCommitted+s.DragsCancelled),
			formatDuration(s.Duration),
			s.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatDuration renders seconds as m:ss.
func formatDuration(secs int) string {
	d := time.Duration(secs) * time.Second
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), secs%60)
}

// Init initializes the history board model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history board.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame), key.Matches(msg, m.keys.Right):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.loadSessions(m.games[m.gameCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame), key.Matches(msg, m.keys.Left):
			if len(m.games) > 0 {
				m.gameCursor--
				if m.gameCursor < 0 {
					m.gameCursor = len(m.games) - 1
				}
				m.loadSessions(m.games[m.gameCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			if m.store != nil && len(m.games) > 0 {
				id := m.games[m.gameCursor].ID
				if err := m.store.ClearSessions(id); err == nil {
					m.loadSessions(id)
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history board.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "HISTORY"
	if len(m.games) > 0 {
		title = fmt.Sprintf("HISTORY - %s", m.games[m.gameCursor].Title)
	}

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(dimStyle.Render(m.summaryLine()))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// summaryLine describes the aggregated stats of the selected puzzle.
func (m ScoreboardModel) summaryLine() string {
	if m.stats == nil || m.stats.Sessions == 0 {
		return ""
	}
	st := m.stats
	line := fmt.Sprintf("Sessions: %d  Solved: %d  Avg moves: %.1f  Played: %s",
		st.Sessions, st.SolvedCount, st.AvgMoves, formatDuration(int(st.TotalDuration)))
	if st.BestMoves > 0 {
		line += fmt.Sprintf("  Best: %d", st.BestMoves)
	}
	return line
}

// renderWideLayout renders the history with a sidebar for puzzle selection.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Puzzles\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, g := range m.games {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.gameCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := g.Title
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the history with puzzle tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.games))
	plain := 0
	for i, g := range m.games {
		shortName := g.ID
		plain += len(shortName) + 3
		if i == m.gameCursor {
			tabs[i] = activeTabStyle.Render(shortName)
		} else {
			tabs[i] = tabStyle.Render(" " + shortName + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if plain > m.width-4 && len(m.games) > 0 {
		tabLine = fmt.Sprintf("< %s >", m.games[m.gameCursor].Title)
	}
	b.WriteString(tabLine)
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(tableStyle.Render(m.renderTableContent()))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.sessions) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No sessions recorded yet.\nSolve a puzzle to start your history!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the history screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
