package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bowmaster/internal/core"
	"github.com/vovakirdan/bowmaster/internal/registry"
)

// holdWindow is how long a walk key counts as held after its last key
// event. Terminals only report repeats, never releases.
const holdWindow = 150 * time.Millisecond

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	clock     core.Clock
	fixedSeed bool

	inputFrame core.InputFrame
	held       map[core.Action]time.Time
	gameState  core.GameState
	quitting   bool
	err        error
}

// Option configures a Model.
type Option func(*Model)

// WithLogger routes platform logging to l.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) {
		m.keys = k
	}
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ...Option) Model {
	fixedSeed := cfg.Seed != 0
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.NominalRate
	}

	m := Model{
		game:       game,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     log.New(io.Discard),
		fixedSeed:  fixedSeed,
		inputFrame: core.NewInputFrame(),
		held:       make(map[core.Action]time.Time),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight(cfg.ScreenH))

	game.Reset(m.gameConfig())
	m.gameState = game.State()
	return m
}

// gameHeight leaves the bottom rows to the help footer.
func (m Model) gameHeight(h int) int {
	return max(h-m.helpHeight(), 1)
}

func (m Model) helpHeight() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 0
	for _, column := range m.keys.FullHelp() {
		rows = max(rows, len(column))
	}
	return rows
}

func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.screen.Height()
	return cfg
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.gameHeight(m.config.ScreenH))
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.held[core.ActionLeft] = time.Now()
	case key.Matches(msg, m.keys.Right):
		m.held[core.ActionRight] = time.Now()
	}
	return m, nil
}

// handleMouse records the pointer position and button state.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.inputFrame.Mouse.X = msg.X
	m.inputFrame.Mouse.Y = msg.Y

	button := -1
	switch msg.Button {
	case tea.MouseButtonLeft:
		button = int(core.MouseLeft)
	case tea.MouseButtonMiddle:
		button = int(core.MouseMiddle)
	case tea.MouseButtonRight:
		button = int(core.MouseRight)
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if button >= 0 {
			m.inputFrame.Buttons[button] = true
		}
	case tea.MouseActionRelease:
		// X10 mouse mode reports releases without a button.
		if button < 0 {
			m.inputFrame.Buttons = [3]bool{}
		} else {
			m.inputFrame.Buttons[button] = false
		}
	}
	return m, nil
}

// handleResize resizes the buffer. The game keeps running and adapts its
// viewport on the next Render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.gameHeight(msg.Height))
	m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver && m.gameState.Err == nil {
		if !m.fixedSeed {
			m.config.Seed = now.UnixNano()
		}
		m.logger.Info("restarting", "game", m.game.ID(), "seed", m.config.Seed)
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		clear(m.held)
		m.clock.Reset()
		return m, tickCmd(m.config.TickRate)
	}

	for action, at := range m.held {
		if now.Sub(at) < holdWindow {
			m.inputFrame.Set(action)
		} else {
			delete(m.held, action)
		}
	}
	m.inputFrame.Delta = m.clock.Tick(now)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.Err != nil {
		m.err = m.gameState.Err
		m.logger.Error("game stopped", "game", m.game.ID(), "err", m.err)
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Err returns the fatal game error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for game and blocks until it exits.
// A fatal game error is returned after the terminal is restored.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
