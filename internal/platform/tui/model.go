package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rockdodge/internal/core"
	"github.com/vovakirdan/rockdodge/internal/registry"
)

// footerRows is the number of rows reserved for the help line.
const footerRows = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options tunes the terminal front end.
type Options struct {
	// Logger receives lifecycle events. Nil discards them.
	Logger *log.Logger
	// HoldDuration is the key hold window; zero uses DefaultHoldDuration.
	HoldDuration time.Duration
	// ScreenshotDir is where ctrl+s writes frames. Empty uses
	// ~/.rockdodge/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	hold      *HoldTracker
	pressed   core.InputFrame // one-shot actions since the last tick
	gameState core.GameState
	logger    *log.Logger
	shotDir   string
	now       func() time.Time
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerRows, 0)),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		hold:    NewHoldTracker(opts.HoldDuration),
		pressed: core.NewInputFrame(),
		logger:  logger,
		shotDir: opts.ScreenshotDir,
		now:     time.Now,
	}
	m.help.Width = cfg.ScreenW

	// Reset here rather than in Init: Init has a value receiver and the
	// state read back below would be lost.
	game.Reset(cfg)
	m.gameState = game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started",
		"game", m.game.ID(),
		"seed", m.config.Seed,
		"fps", m.config.TickRate,
		"screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("quit",
			"score", m.gameState.Score,
			"lives", m.gameState.Lives,
			"game_over", m.gameState.GameOver)
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case isMovement(action):
		m.hold.Press(action, m.now())
	case action == core.ActionRestart && !m.gameState.GameOver:
		// restart only applies on the game over screen
	default:
		m.pressed.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The world is measured in its own units, so the game keeps running and
// only the projection onto the terminal changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerRows, 0))
	m.help.Width = msg.Width
	m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the
// previous tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := core.NewInputFrame()
	for a := range m.pressed.Actions {
		frame.Set(a)
	}
	m.hold.Apply(&frame, m.now())

	prev := m.gameState
	result := m.game.Step(frame)
	m.gameState = result.State
	m.pressed.Clear()

	m.logTransition(prev, result)

	return m, tickCmd(m.config.TickRate)
}

func (m Model) logTransition(prev core.GameState, result core.StepResult) {
	state := result.State
	switch {
	case result.Restarted:
		m.hold.Reset()
		m.logger.Info("game restarted", "previous_score", prev.Score)
	case result.LivesLost > 0:
		m.logger.Info("life lost", "lost", result.LivesLost, "lives", state.Lives, "score", state.Score)
	}
	if state.GameOver && !prev.GameOver {
		m.logger.Info("game over", "score", state.Score)
	}
	if state.Paused != prev.Paused {
		m.logger.Debug("pause toggled", "paused", state.Paused)
	}
}

// saveScreenshot saves the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".rockdodge", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
