// Package wordle implements the rules of the word-guessing game: scoring a
// guess against the secret word, aggregating keyboard hints, the board of
// attempts and the session state machine. It has no dependency on the
// terminal UI so the rules stay pure and testable.
package wordle

import "strings"

const (
	// WordLength is the number of letters in every secret word and guess.
	WordLength = 5

	// MaxAttempts is the number of guesses allowed before the game is lost.
	MaxAttempts = 6
)

// Verdict is the classification of a single letter of a guess.
// The zero value Unseen is only used by KeyState for letters not guessed yet.
type Verdict uint8

const (
	Unseen  Verdict = iota
	Absent          // letter does not occur in the secret (or its budget is used up)
	Present         // letter occurs elsewhere in the secret
	Correct         // letter is in the right position
)

// String returns a human-readable name for the verdict.
func (v Verdict) String() string {
	switch v {
	case Unseen:
		return "unseen"
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	default:
		return "unknown"
	}
}

// Symbol returns a one-character marker used for plain-text output.
func (v Verdict) Symbol() rune {
	switch v {
	case Absent:
		return '.'
	case Present:
		return '?'
	case Correct:
		return '*'
	default:
		return ' '
	}
}

// Outranks reports whether v carries more information than other.
// Priority is Correct > Present > Absent > Unseen.
func (v Verdict) Outranks(other Verdict) bool {
	return v > other
}

// Score classifies every letter of guess against secret.
// Both words must be WordLength upper-case letters; callers validate first.
//
// Duplicate letters are resolved with an occurrence budget: a repeated guess
// letter is Absent once earlier copies have used up the copies in the secret,
// and an earlier copy defers to a later copy that is an exact match.
func Score(secret, guess string) [WordLength]Verdict {
	var out [WordLength]Verdict

	for i := 0; i < WordLength; i++ {
		out[i] = scoreLetter(secret, guess, i)
	}
	return out
}

// scoreLetter returns the verdict for position i of guess.
func scoreLetter(secret, guess string, i int) Verdict {
	c := guess[i]

	if strings.IndexByte(secret, c) < 0 {
		return Absent
	}
	if secret[i] == c {
		return Correct
	}

	letter := guess[i : i+1]
	if strings.Count(guess, letter) > 1 {
		before := strings.Count(guess[:i], letter)
		if before >= strings.Count(secret, letter) {
			return Absent
		}
		if next := strings.IndexByte(guess[i+1:], c); next >= 0 {
			j := i + 1 + next
			if secret[j] == guess[j] {
				return Absent
			}
		}
	}
	return Present
}

// Solved reports whether every verdict is Correct.
func Solved(verdicts [WordLength]Verdict) bool {
	for _, v := range verdicts {
		if v != Correct {
			return false
		}
	}
	return true
}
