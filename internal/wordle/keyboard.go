package wordle

import "fmt"

// KeyPolicy decides how a new verdict is folded into the keyboard aggregate.
type KeyPolicy string

const (
	// KeyPolicyUpgrade keeps the strongest verdict seen so far for a letter.
	// A key never regresses and a Present key is upgraded by a later Correct.
	KeyPolicyUpgrade KeyPolicy = "upgrade"

	// KeyPolicyFirstWrite records a verdict only for letters with no verdict
	// yet. A letter first seen as Present stays Present even after it is
	// guessed in the right position.
	KeyPolicyFirstWrite KeyPolicy = "first_write"
)

// ParseKeyPolicy converts a config string to a KeyPolicy.
// The empty string selects KeyPolicyUpgrade.
func ParseKeyPolicy(s string) (KeyPolicy, error) {
	switch KeyPolicy(s) {
	case "", KeyPolicyUpgrade:
		return KeyPolicyUpgrade, nil
	case KeyPolicyFirstWrite:
		return KeyPolicyFirstWrite, nil
	default:
		return "", fmt.Errorf("wordle: unknown key policy %q", s)
	}
}

// KeyState is the per-letter keyboard hint aggregated across attempts.
// Letters are 'A'..'Z'; anything else is ignored.
type KeyState struct {
	policy KeyPolicy
	keys   [26]Verdict
}

// NewKeyState creates an empty aggregate using the given policy.
func NewKeyState(policy KeyPolicy) *KeyState {
	if policy == "" {
		policy = KeyPolicyUpgrade
	}
	return &KeyState{policy: policy}
}

// Policy returns the folding policy of this aggregate.
func (k *KeyState) Policy() KeyPolicy {
	return k.policy
}

// Get returns the verdict recorded for letter, or Unseen.
func (k *KeyState) Get(letter byte) Verdict {
	idx, ok := letterIndex(letter)
	if !ok {
		return Unseen
	}
	return k.keys[idx]
}

// Record folds verdict v for letter according to the policy.
// Returns true if the stored verdict changed.
func (k *KeyState) Record(letter byte, v Verdict) bool {
	idx, ok := letterIndex(letter)
	if !ok || v == Unseen {
		return false
	}

	cur := k.keys[idx]
	switch k.policy {
	case KeyPolicyFirstWrite:
		if cur != Unseen {
			return false
		}
	default:
		if !v.Outranks(cur) {
			return false
		}
	}
	k.keys[idx] = v
	return true
}

// RecordAttempt folds every letter of a scored attempt, left to right.
func (k *KeyState) RecordAttempt(a Attempt) {
	for i := 0; i < len(a.Word) && i < WordLength; i++ {
		k.Record(a.Word[i], a.Verdicts[i])
	}
}

// Snapshot returns a copy of all non-Unseen keys.
func (k *KeyState) Snapshot() map[byte]Verdict {
	out := make(map[byte]Verdict)
	for i, v := range k.keys {
		if v != Unseen {
			out[byte('A'+i)] = v
		}
	}
	return out
}

// Reset forgets every recorded verdict.
func (k *KeyState) Reset() {
	k.keys = [26]Verdict{}
}

func letterIndex(letter byte) (int, bool) {
	if letter < 'A' || letter > 'Z' {
		return 0, false
	}
	return int(letter - 'A'), true
}
