package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/registry"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

// Model is the Bubble Tea model for running a puzzle.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	logger     *log.Logger
	started    time.Time // Start of the current session
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		logger:     logger,
		started:    time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := m.keyMapper.MapMouse(msg); ok {
			m.inputFrame.AddPointer(ev)
		}
		return m, nil

	case tea.BlurMsg:
		// Pointer capture does not survive losing focus.
		m.inputFrame.Set(core.ActionCaptureLost)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveSession()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	// Update screen size
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Games that can follow a resize keep their board
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config)
	} else {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for reset
	if m.inputFrame.Has(core.ActionReset) {
		m.saveSession()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.started = time.Now()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveSession records the current session if any move was made.
func (m *Model) saveSession() {
	stats := m.game.Stats()
	if stats.Moves == 0 || m.store == nil {
		return
	}

	id, err := m.store.SaveSession(storage.Session{
		GameID:         m.game.ID(),
		Dimension:      stats.Dimension,
		Moves:          stats.Moves,
		Clicks:         stats.Clicks,
		DragsCommitted: stats.DragsCommitted,
		DragsCancelled: stats.DragsCancelled,
		Solved:         stats.Solved,
		Duration:       int(time.Since(m.started).Seconds()),
	})
	if err != nil {
		m.logger.Warn("session not saved", "game", m.game.ID(), "error", err)
		return
	}
	m.logger.Info("session saved", "game", m.game.ID(), "id", id, "moves", stats.Moves, "solved", stats.Solved)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".slide", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot not saved", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press, release and drag motion
		tea.WithReportFocus(),     // Blur cancels pointer capture
	)

	_, err := p.Run()
	return err
}
