package wordle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWord is matched by every *InvalidWordError.
	ErrInvalidWord = errors.New("invalid word")

	// ErrGameOver is returned when a guess is submitted to a finished board.
	ErrGameOver = errors.New("game is over")

	// ErrWrongState is returned when a session operation is not allowed
	// in the current state.
	ErrWrongState = errors.New("operation not allowed in current state")

	// ErrUnknownLanguage is returned for a language ID that is not loaded.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrLanguageDisabled is returned when a disabled pack is selected.
	ErrLanguageDisabled = errors.New("language is disabled")
)

// Reason explains why a guess was rejected.
type Reason int

const (
	ReasonLength Reason = iota + 1
	ReasonAlphabet
	ReasonNotInList
)

// String returns the user-facing message for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonLength:
		return "Not enough letters"
	case ReasonAlphabet:
		return "Letters A-Z only"
	case ReasonNotInList:
		return "Not in word list"
	default:
		return "Invalid word"
	}
}

// InvalidWordError reports a rejected guess. The board is left unchanged.
type InvalidWordError struct {
	Word   string
	Reason Reason
}

func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("wordle: %q rejected: %s", e.Word, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidWord) succeed.
func (e *InvalidWordError) Is(target error) bool {
	return target == ErrInvalidWord
}

// ValidateWord checks that w is exactly WordLength letters A-Z.
// It does not consult any dictionary.
func ValidateWord(w string) error {
	if len(w) != WordLength {
		return &InvalidWordError{Word: w, Reason: ReasonLength}
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return &InvalidWordError{Word: w, Reason: ReasonAlphabet}
		}
	}
	return nil
}
