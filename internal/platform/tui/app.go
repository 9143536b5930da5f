package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/registry"
	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

// Options configures the application model.
type Options struct {
	Packs    *registry.Registry
	Settings config.Config
	Runtime  core.RuntimeConfig
	Rand     wordle.Rand // nil uses the session default
	Logger   *log.Logger // nil discards
}

// AppModel manages the full flow: language menu -> game -> menu.
// It owns the single session shared by both screens.
type AppModel struct {
	opts     Options
	logger   *log.Logger
	session  *wordle.Session
	events   *eventQueue
	config   core.RuntimeConfig
	menu     MenuModel
	game     *GameModel
	quitting bool
}

// NewAppModel creates the application model. If opts.Settings.Language is
// set, the menu is skipped and a game in that language starts immediately.
func NewAppModel(opts Options) (AppModel, error) {
	if opts.Packs == nil {
		return AppModel{}, fmt.Errorf("tui: no language packs")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	events := &eventQueue{}
	session := wordle.NewSession(opts.Packs,
		wordle.WithRand(opts.Rand),
		wordle.WithKeyPolicy(opts.Settings.KeyPolicy()),
	)
	session.Subscribe(events.push)

	m := AppModel{
		opts:    opts,
		logger:  logger,
		session: session,
		events:  events,
		config:  opts.Runtime,
		menu:    NewMenuModel(opts.Packs, opts.Runtime),
	}

	if id := opts.Settings.Language; id != "" {
		if err := m.startGame(id); err != nil {
			return AppModel{}, err
		}
	}
	return m, nil
}

// startGame selects language id and switches to the game screen.
func (m *AppModel) startGame(id string) error {
	if _, err := m.session.SelectLanguage(id); err != nil {
		return err
	}
	m.logger.Info("language selected", "language", id)

	game := NewGameModel(m.session, m.events, m.opts.Settings, m.config, m.logger)
	m.game = &game
	return nil
}

// Init initializes the session.
func (m AppModel) Init() tea.Cmd {
	if m.game != nil {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		if err := m.startGame(selected.Info.ID); err != nil {
			m.logger.Warn("cannot start game", "language", selected.Info.ID, "error", err)
			m.menu.Reject(err)
			return m, nil
		}
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.menu = NewMenuModel(m.opts.Packs, m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	if m.game != nil {
		return m.game.View()
	}
	return m.menu.View()
}

// Session returns the session driven by the model.
func (m AppModel) Session() *wordle.Session {
	return m.session
}

// InGame reports whether the game screen is active.
func (m AppModel) InGame() bool {
	return m.game != nil
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := NewAppModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
