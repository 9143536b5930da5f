package core

// Action represents a semantic input action, abstracted from physical key presses.
// Letter keys are not actions; they travel in InputFrame.Letters.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow - move menu cursor up
	ActionDown           // Down arrow - move menu cursor down
	ActionErase          // Backspace, Delete - remove last letter
	ActionConfirm        // Enter - submit guess or confirm selection
	ActionBack           // Escape - leave game for the language menu
	ActionRestart        // Ctrl+R - new game after the result is shown
	ActionQuit           // Ctrl+C - exit
	ActionHelp           // ? - toggle full help
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionErase:
		return "Erase"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input produced by one key message.
type InputFrame struct {
	// Actions maps action types to whether they were triggered.
	Actions map[Action]bool

	// Letters holds typed letters in order, upper-cased A-Z.
	Letters []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddLetter appends r if it is a letter a-z or A-Z, upper-casing it.
// Returns false for anything else.
func (f *InputFrame) AddLetter(r rune) bool {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 'A' || r > 'Z' {
		return false
	}
	f.Letters = append(f.Letters, r)
	return true
}

// Empty reports whether the frame carries no actions and no letters.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return len(f.Letters) == 0
}

// Clear resets all actions and letters for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Letters = f.Letters[:0]
}
