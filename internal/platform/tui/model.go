package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
	"github.com/vovakirdan/snake-arcade/internal/registry"
)

// Muter is an audio backend that can be muted from the keyboard.
type Muter interface {
	ToggleMute() bool
}

// Options configures the terminal frontend.
type Options struct {
	Config core.RuntimeConfig
	Audio  snake.Audio // Optional; also used for muting if it implements Muter
	Logger *log.Logger // Optional; discards when nil
}

// hookable is implemented by games that notify render, audio and overlay hooks.
type hookable interface {
	SetHooks(h snake.Hooks)
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	status     *statusLine
	muter      Muter
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	ticking    bool
	muted      bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickPeriod <= 0 {
		cfg.TickPeriod = core.DefaultTickPeriod
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, screenRows(cfg.ScreenH)),
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       help.New(),
		status:     &statusLine{},
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}

	audio := opts.Audio
	if audio == nil {
		audio = snake.NopAudio{}
	}
	if muter, ok := audio.(Muter); ok {
		m.muter = muter
	}

	if h, ok := game.(hookable); ok {
		h.SetHooks(snake.Hooks{
			Renderer: frameLogger(logger),
			Audio:    loggedAudio{next: audio, logger: logger, score: func() int { return game.State().Score }},
			Overlay:  m.status,
		})
	}

	// Reset here rather than in Init: the value receiver there cannot keep
	// the state it sets.
	game.Reset(cfg)
	m.gameState = game.State()
	m.ticking = true
	return m
}

// screenRows leaves the last terminal row for the help line.
func screenRows(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickPeriod)
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

// handleKey processes keyboard input. Steering is queued for the next tick;
// restart after game over takes effect at once and restarts the clock.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionMute:
		if m.muter != nil {
			m.muted = m.muter.ToggleMute()
			m.logger.Debug("mute toggled", "muted", m.muted)
		}
		return m, nil
	case core.ActionRestart:
		if !m.gameState.GameOver || m.ticking {
			return m, nil
		}
		m.inputFrame.Set(core.ActionRestart)
		m.logger.Info("restart")
		return m.handleTick()
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events. The board has a fixed size,
// so the session continues untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, screenRows(msg.Height))
	return m, nil
}

// handleTick runs one step and schedules the next tick only while the
// session is running.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		m.ticking = false
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickPeriod)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.statusView()
}

// statusView returns the game-over prompt or the key help.
func (m Model) statusView() string {
	if m.status.message != "" {
		line := m.status.message
		if m.status.restart {
			line = fmt.Sprintf("%s %s", line, snake.RestartHint)
		}
		return statusStyle.Render(line)
	}
	helpLine := m.help.View(m.keys.Keys())
	if m.muted {
		helpLine += "  [muted]"
	}
	return helpLine
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
