package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wordle/internal/core"
)

// KeyMap defines the key bindings for the menu and the game.
// Letters are never bound: during play every letter types into the guess.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Type     key.Binding // help only; its key never matches a message
	Erase    key.Binding
	Submit   key.Binding
	Back     key.Binding
	Restart  key.Binding
	Help     key.Binding
	Quit     key.Binding
	MenuQuit key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Type: key.NewBinding(
			key.WithKeys("a-z"),
			key.WithHelp("a-z", "type"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("⌫", "erase"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "guess"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "languages"),
		),
		Restart: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "same language"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		MenuQuit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// menuHelp lists the bindings shown under the language menu.
type menuHelp struct{ k KeyMap }

func (h menuHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Up, h.k.Down, h.k.Select, h.k.MenuQuit}
}

func (h menuHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// gameHelp lists the bindings shown under the board.
type gameHelp struct {
	k      KeyMap
	result bool // the result screen is showing
}

func (h gameHelp) ShortHelp() []key.Binding {
	if h.result {
		again := h.k.Submit
		again.SetHelp("enter", "play again")
		return []key.Binding{again, h.k.Back, h.k.Quit}
	}
	return []key.Binding{h.k.Type, h.k.Erase, h.k.Submit, h.k.Help}
}

func (h gameHelp) FullHelp() [][]key.Binding {
	if h.result {
		return [][]key.Binding{h.ShortHelp(), {h.k.Restart}}
	}
	return [][]key.Binding{
		{h.k.Type, h.k.Erase, h.k.Submit},
		{h.k.Back, h.k.Help, h.k.Quit},
	}
}

// KeyMapper translates Bubble Tea key messages to input frames.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Submit):
		return core.ActionConfirm, false
	case key.Matches(msg, km.keys.Erase):
		return core.ActionErase, false
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, km.keys.Help):
		return core.ActionHelp, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Letter keys are added to frame.Letters; other runes are dropped.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
		return isQuit
	}

	if msg.Type == tea.KeyRunes && !msg.Alt {
		for _, r := range msg.Runes {
			frame.AddLetter(r)
		}
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionHelp
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, km.keys.MenuQuit):
		return MenuActionQuit
	case key.Matches(msg, km.keys.Up):
		return MenuActionUp
	case key.Matches(msg, km.keys.Down):
		return MenuActionDown
	case key.Matches(msg, km.keys.Select):
		return MenuActionSelect
	case key.Matches(msg, km.keys.Help):
		return MenuActionHelp
	}

	return MenuActionNone
}
