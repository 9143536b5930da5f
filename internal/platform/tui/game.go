package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

// Result screen messages
const (
	wonMessage  = "Congratulations, you have guessed the correct word!"
	lostMessage = "That's a shame! The word was: %s"
)

// eventQueue buffers session events until the model turns them into
// commands. The session delivers events synchronously during Submit.
type eventQueue struct {
	pending []wordle.Event
}

func (q *eventQueue) push(e wordle.Event) {
	q.pending = append(q.pending, e)
}

func (q *eventQueue) drain() []wordle.Event {
	out := q.pending
	q.pending = nil
	return out
}

// GameModel is the Bubble Tea model for one language: the board, the
// keyboard hints, transient notices and the result screen.
type GameModel struct {
	session    *wordle.Session
	events     *eventQueue
	screen     *core.Screen
	config     core.RuntimeConfig
	settings   config.Config
	theme      Theme
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	help       help.Model
	logger     *log.Logger

	notice    string
	noticeGen int
	gameGen   int
	revealed  bool

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model for a session that is already playing.
func NewGameModel(session *wordle.Session, events *eventQueue, settings config.Config, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return GameModel{
		session:    session,
		events:     events,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		config:     cfg,
		settings:   settings,
		theme:      ThemeFromConfig(settings.Theme),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		help:       h,
		logger:     logger,
	}
}

// Init initializes the game.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case NoticeExpiredMsg:
		if msg.Gen == m.noticeGen {
			m.notice = ""
		}
		return m, nil

	case RevealMsg:
		if msg.Gen == m.gameGen && m.session.State().Terminal() {
			m.revealed = true
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.inputFrame.Clear()
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionHelp) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	state := m.session.State()
	switch {
	case state == wordle.StatePlaying:
		return m.handlePlaying()
	case state.Terminal() && m.revealed:
		return m.handleResult()
	}

	// Input between the last guess and the result screen is ignored.
	return m, nil
}

// handlePlaying applies the current input frame to the session.
func (m GameModel) handlePlaying() (tea.Model, tea.Cmd) {
	f := m.inputFrame

	if f.Has(core.ActionBack) {
		if err := m.session.Abandon(); err != nil {
			m.logger.Error("abandon game", "error", err)
			return m, nil
		}
		m.logger.Debug("game abandoned")
		m.backToMenu = true
		return m, nil
	}

	for _, r := range f.Letters {
		m.session.Type(r)
	}
	if f.Has(core.ActionErase) {
		m.session.Erase()
	}
	if f.Has(core.ActionConfirm) {
		if _, err := m.session.Enter(); err != nil && !errors.Is(err, wordle.ErrInvalidWord) {
			m.logger.Error("submit guess", "error", err)
		}
	}

	return m, m.drainEvents()
}

// handleResult applies the current input frame on the result screen.
func (m GameModel) handleResult() (tea.Model, tea.Cmd) {
	f := m.inputFrame

	switch {
	case f.Has(core.ActionConfirm):
		return m.restart(m.settings.RestartMode())
	case f.Has(core.ActionRestart):
		return m.restart(wordle.RestartSameLanguage)
	case f.Has(core.ActionBack):
		return m.restart(wordle.RestartToMenu)
	}
	return m, nil
}

// restart leaves the finished game according to mode.
func (m GameModel) restart(mode wordle.RestartMode) (tea.Model, tea.Cmd) {
	state, err := m.session.Restart(mode)
	if err != nil {
		m.logger.Error("restart", "mode", mode, "error", err)
		return m, nil
	}

	m.gameGen++
	m.revealed = false
	m.notice = ""

	if state == wordle.StateSelecting {
		m.backToMenu = true
		return m, nil
	}

	m.logger.Info("new game", "language", m.session.Language().ID())
	return m, nil
}

// drainEvents turns pending session events into notices and timers.
func (m *GameModel) drainEvents() tea.Cmd {
	var cmds []tea.Cmd

	for _, e := range m.events.drain() {
		switch e.Kind {
		case wordle.EventInvalidWord:
			m.noticeGen++
			m.notice = e.Err.Reason.String()
			m.logger.Debug("invalid word", "word", e.Err.Word, "reason", e.Err.Reason)
			cmds = append(cmds, noticeCmd(m.settings.Timing.InvalidNotice, m.noticeGen))

		case wordle.EventWon, wordle.EventLost:
			m.logger.Info("game finished",
				"result", e.Kind,
				"language", e.Language,
				"secret", e.Secret,
				"attempts", e.Attempts,
			)
			cmds = append(cmds, revealCmd(m.settings.Timing.ResultDelay, m.gameGen))
		}
	}

	return tea.Batch(cmds...)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	if m.revealed {
		m.drawResult()
	} else {
		m.drawPlaying()
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(gameHelp{k: m.keyMapper.Keys(), result: m.revealed})
}

// drawPlaying draws the title, board, notice and keyboard.
func (m GameModel) drawPlaying() {
	s := m.screen
	area := core.CenteredIn(s.Bounds(), core.Max(boardW, keyboardW), gameH)

	title := " WORDLE "
	if p := m.session.Language(); p != nil {
		title = fmt.Sprintf(" WORDLE · %s ", p.Info().Label)
	}
	s.DrawTextCenteredColored(area.Y, title, m.theme.Text, m.theme.Correct)

	y := area.Y + 2
	if b := m.session.Board(); b != nil {
		typing := m.session.State() == wordle.StatePlaying
		drawBoard(s, area.X+(area.W-boardW)/2, y, b.Attempts(), m.session.Input(), typing, m.theme)
	}

	y += boardH + 1
	if m.notice != "" {
		s.DrawTextCenteredColored(y, " "+m.notice+" ", core.ColorBlack, core.ColorWhite)
	}

	y += 2
	var keys *wordle.KeyState
	if b := m.session.Board(); b != nil {
		keys = b.Keys()
	}
	drawKeyboard(s, area.X+(area.W-keyboardW)/2, y, keys, m.theme)
}

// drawResult draws the end-of-game message and the restart prompt.
func (m GameModel) drawResult() {
	s := m.screen

	lines := []string{wonMessage}
	if b := m.session.Board(); b != nil {
		if b.Lost() {
			lines = []string{fmt.Sprintf(lostMessage, b.Secret())}
		} else {
			lines = append(lines, fmt.Sprintf("Solved in %d/%d", len(b.Attempts()), wordle.MaxAttempts))
		}
	}

	w := 0
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}
	box := core.CenteredIn(s.Bounds(), w+6, len(lines)+6)
	s.DrawBox(box, core.ColorGray)

	y := box.Y + 2
	for _, l := range lines {
		s.DrawTextCentered(y, l)
		y++
	}
	s.DrawTextCenteredColored(box.Bottom()-3, " Restart ", m.theme.Text, m.theme.Correct)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the session went back to language selection.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Notice returns the transient message currently shown, if any.
func (m GameModel) Notice() string {
	return m.notice
}

// Revealed reports whether the result screen is showing.
func (m GameModel) Revealed() bool {
	return m.revealed
}

// Screen returns the screen buffer drawn by the last View call.
func (m GameModel) Screen() *core.Screen {
	return m.screen
}
