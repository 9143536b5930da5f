package wordle

import "strings"

// Attempt is an accepted guess together with its verdicts.
type Attempt struct {
	Word     string
	Verdicts [WordLength]Verdict
}

// AttemptOutcome is the result of a successful submission.
type AttemptOutcome struct {
	Attempt   Attempt
	Won       bool
	Lost      bool
	Remaining int // guesses left after this one
}

// Board holds the secret word and the attempts made against it.
type Board struct {
	secret   string
	pack     *LanguagePack
	attempts []Attempt
	keys     *KeyState
	won      bool
	lost     bool
}

// NewBoard creates a board for secret using pack as the dictionary.
// secret is upper-cased.
func NewBoard(secret string, pack *LanguagePack, policy KeyPolicy) *Board {
	return &Board{
		secret:   strings.ToUpper(secret),
		pack:     pack,
		attempts: make([]Attempt, 0, MaxAttempts),
		keys:     NewKeyState(policy),
	}
}

// Submit validates, scores and records a guess.
//
// Rejected guesses return an *InvalidWordError and leave the board and the
// keyboard untouched. Submitting after the board finished returns ErrGameOver.
func (b *Board) Submit(guess string) (AttemptOutcome, error) {
	if b.Finished() {
		return AttemptOutcome{}, ErrGameOver
	}

	guess = strings.ToUpper(strings.TrimSpace(guess))
	if err := ValidateWord(guess); err != nil {
		return AttemptOutcome{}, err
	}
	if !b.pack.IsValid(guess) {
		return AttemptOutcome{}, &InvalidWordError{Word: guess, Reason: ReasonNotInList}
	}

	a := Attempt{Word: guess, Verdicts: Score(b.secret, guess)}
	b.attempts = append(b.attempts, a)
	b.keys.RecordAttempt(a)

	switch {
	case guess == b.secret:
		b.won = true
	case len(b.attempts) >= MaxAttempts:
		b.lost = true
	}

	return AttemptOutcome{
		Attempt:   a,
		Won:       b.won,
		Lost:      b.lost,
		Remaining: MaxAttempts - len(b.attempts),
	}, nil
}

// Attempts returns a copy of the accepted attempts in order.
func (b *Board) Attempts() []Attempt {
	out := make([]Attempt, len(b.attempts))
	copy(out, b.attempts)
	return out
}

// Keys returns the keyboard aggregate.
func (b *Board) Keys() *KeyState { return b.keys }

// Secret returns the secret word.
func (b *Board) Secret() string { return b.secret }

// Pack returns the language pack used as dictionary.
func (b *Board) Pack() *LanguagePack { return b.pack }

// Won reports whether the secret was guessed.
func (b *Board) Won() bool { return b.won }

// Lost reports whether all attempts were used without a win.
func (b *Board) Lost() bool { return b.lost }

// Finished reports whether the board reached a terminal state.
func (b *Board) Finished() bool { return b.won || b.lost }
