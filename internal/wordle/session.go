package wordle

import (
	"errors"
	"fmt"

	"lukechampine.com/frand"
)

// State is the high-level phase of a session.
type State int

const (
	StateSelecting State = iota // choosing a language
	StatePlaying
	StateWon
	StateLost
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateSelecting:
		return "selecting"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends a game.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// RestartMode selects where Restart leads.
type RestartMode string

const (
	RestartToMenu       RestartMode = "menu"
	RestartSameLanguage RestartMode = "same_language"
)

// ParseRestartMode converts a config string to a RestartMode.
// The empty string selects RestartToMenu.
func ParseRestartMode(s string) (RestartMode, error) {
	switch RestartMode(s) {
	case "", RestartToMenu:
		return RestartToMenu, nil
	case RestartSameLanguage:
		return RestartSameLanguage, nil
	default:
		return "", fmt.Errorf("wordle: unknown restart mode %q", s)
	}
}

// EventKind identifies a session notification.
type EventKind int

const (
	EventWon EventKind = iota + 1
	EventLost
	EventInvalidWord
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventWon:
		return "gameWon"
	case EventLost:
		return "gameLost"
	case EventInvalidWord:
		return "invalidWord"
	default:
		return "unknown"
	}
}

// Event is delivered to listeners registered with Session.Subscribe.
type Event struct {
	Kind     EventKind
	Language string
	Secret   string // set for EventWon and EventLost
	Attempts int
	Err      *InvalidWordError // set for EventInvalidWord
}

// Listener receives session events synchronously.
type Listener func(Event)

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used to draw secret words.
func WithRand(r Rand) Option {
	return func(s *Session) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithKeyPolicy sets the keyboard folding policy for every board.
func WithKeyPolicy(p KeyPolicy) Option {
	return func(s *Session) {
		if p != "" {
			s.policy = p
		}
	}
}

// Session drives one player through language selection, play and restart.
// It is not safe for concurrent use; the UI delivers input serially.
type Session struct {
	packs     PackSource
	rng       Rand
	policy    KeyPolicy
	state     State
	pack      *LanguagePack
	board     *Board
	input     []byte
	listeners []Listener
}

// NewSession creates a session in StateSelecting.
func NewSession(packs PackSource, opts ...Option) *Session {
	s := &Session{
		packs:  packs,
		rng:    frand.New(),
		policy: KeyPolicyUpgrade,
		state:  StateSelecting,
		input:  make([]byte, 0, WordLength),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers l for all future events of this session.
func (s *Session) Subscribe(l Listener) {
	if l != nil {
		s.listeners = append(s.listeners, l)
	}
}

func (s *Session) emit(e Event) {
	for _, l := range s.listeners {
		l(e)
	}
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Language returns the selected pack, or nil while selecting.
func (s *Session) Language() *LanguagePack { return s.pack }

// Board returns the current board, or nil while selecting.
func (s *Session) Board() *Board { return s.board }

// Input returns the letters typed for the next guess.
func (s *Session) Input() string { return string(s.input) }

// SelectLanguage starts a game in the language with the given ID.
func (s *Session) SelectLanguage(id string) (State, error) {
	if s.state != StateSelecting {
		return s.state, fmt.Errorf("select language while %s: %w", s.state, ErrWrongState)
	}

	pack, err := s.packs.Get(id)
	if err != nil {
		return s.state, err
	}
	if pack.Info().Disabled {
		return s.state, fmt.Errorf("language %q: %w", id, ErrLanguageDisabled)
	}

	s.start(pack)
	return s.state, nil
}

// start draws a fresh secret from pack and enters StatePlaying.
func (s *Session) start(pack *LanguagePack) {
	s.pack = pack
	s.board = NewBoard(pack.RandomAnswer(s.rng), pack, s.policy)
	s.input = s.input[:0]
	s.state = StatePlaying
}

// Type appends a letter to the input buffer.
// Only A-Z (any case) is accepted and only while the buffer is not full.
func (s *Session) Type(r rune) bool {
	if s.state != StatePlaying || len(s.input) >= WordLength {
		return false
	}
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 'A' || r > 'Z' {
		return false
	}
	s.input = append(s.input, byte(r))
	return true
}

// Erase removes the last typed letter.
func (s *Session) Erase() bool {
	if s.state != StatePlaying || len(s.input) == 0 {
		return false
	}
	s.input = s.input[:len(s.input)-1]
	return true
}

// Enter submits the input buffer. A buffer shorter than WordLength is
// rejected with ReasonLength and does not raise EventInvalidWord.
func (s *Session) Enter() (AttemptOutcome, error) {
	if s.state != StatePlaying {
		return AttemptOutcome{}, fmt.Errorf("enter while %s: %w", s.state, ErrWrongState)
	}
	if len(s.input) != WordLength {
		return AttemptOutcome{}, &InvalidWordError{Word: string(s.input), Reason: ReasonLength}
	}
	return s.Submit(string(s.input))
}

// Submit plays text as the next guess.
//
// An invalid word leaves the session in StatePlaying and raises
// EventInvalidWord. A valid word clears the input buffer; a win or the last
// allowed miss moves the session to StateWon or StateLost and raises the
// matching event exactly once.
func (s *Session) Submit(text string) (AttemptOutcome, error) {
	if s.state != StatePlaying {
		return AttemptOutcome{}, fmt.Errorf("submit while %s: %w", s.state, ErrWrongState)
	}

	out, err := s.board.Submit(text)
	if err != nil {
		var iwe *InvalidWordError
		if errors.As(err, &iwe) {
			s.emit(Event{
				Kind:     EventInvalidWord,
				Language: s.pack.ID(),
				Attempts: len(s.board.attempts),
				Err:      iwe,
			})
		}
		return out, err
	}

	s.input = s.input[:0]

	switch {
	case out.Won:
		s.state = StateWon
		s.emit(s.finishEvent(EventWon))
	case out.Lost:
		s.state = StateLost
		s.emit(s.finishEvent(EventLost))
	}
	return out, nil
}

func (s *Session) finishEvent(kind EventKind) Event {
	return Event{
		Kind:     kind,
		Language: s.pack.ID(),
		Secret:   s.board.Secret(),
		Attempts: len(s.board.attempts),
	}
}

// Restart leaves a finished game. RestartToMenu returns to StateSelecting;
// RestartSameLanguage starts a new game with a fresh secret from the same
// pack. Attempts, keyboard state and the input buffer are cleared.
func (s *Session) Restart(mode RestartMode) (State, error) {
	if !s.state.Terminal() {
		return s.state, fmt.Errorf("restart while %s: %w", s.state, ErrWrongState)
	}

	if mode == RestartSameLanguage {
		s.start(s.pack)
		return s.state, nil
	}
	s.reset()
	return s.state, nil
}

// Abandon leaves a game in progress and returns to language selection.
func (s *Session) Abandon() error {
	if s.state != StatePlaying {
		return fmt.Errorf("abandon while %s: %w", s.state, ErrWrongState)
	}
	s.reset()
	return nil
}

func (s *Session) reset() {
	s.pack = nil
	s.board = nil
	s.input = s.input[:0]
	s.state = StateSelecting
}
