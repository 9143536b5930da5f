package wordle

import (
	"fmt"
	"strings"
)

// Rand is the random source used to draw secret words.
// *math/rand.Rand and *frand.RNG both satisfy it.
type Rand interface {
	Intn(n int) int
}

// PackInfo describes a language pack for menus and listings.
type PackInfo struct {
	ID       string
	Label    string
	Flag     string
	Disabled bool
}

// LanguagePack bundles the secret-word candidates and the valid-guess
// dictionary for one language. It is immutable once built.
type LanguagePack struct {
	info    PackInfo
	answers []string
	valid   map[string]struct{}
}

// NewLanguagePack builds a pack from normalised word lists.
// answers and words must already be upper-case WordLength words; the valid
// set is their union. An enabled pack needs at least one answer.
func NewLanguagePack(info PackInfo, answers, words []string) (*LanguagePack, error) {
	if info.ID == "" {
		return nil, fmt.Errorf("wordle: language pack without id")
	}
	if len(answers) == 0 && !info.Disabled {
		return nil, fmt.Errorf("wordle: language %q has no answers", info.ID)
	}

	p := &LanguagePack{
		info:    info,
		answers: make([]string, 0, len(answers)),
		valid:   make(map[string]struct{}, len(answers)+len(words)),
	}
	for _, w := range answers {
		if err := ValidateWord(w); err != nil {
			return nil, fmt.Errorf("wordle: language %q answer: %w", info.ID, err)
		}
		p.answers = append(p.answers, w)
		p.valid[w] = struct{}{}
	}
	for _, w := range words {
		if err := ValidateWord(w); err != nil {
			return nil, fmt.Errorf("wordle: language %q word: %w", info.ID, err)
		}
		p.valid[w] = struct{}{}
	}
	return p, nil
}

// ID returns the language identifier.
func (p *LanguagePack) ID() string { return p.info.ID }

// Info returns the display metadata of the pack.
func (p *LanguagePack) Info() PackInfo { return p.info }

// Answers returns a copy of the secret-word candidates.
func (p *LanguagePack) Answers() []string {
	out := make([]string, len(p.answers))
	copy(out, p.answers)
	return out
}

// AnswerCount returns the number of secret-word candidates.
func (p *LanguagePack) AnswerCount() int { return len(p.answers) }

// ValidCount returns the size of the valid-guess dictionary.
func (p *LanguagePack) ValidCount() int { return len(p.valid) }

// IsValid reports whether w (any case) is an accepted guess.
func (p *LanguagePack) IsValid(w string) bool {
	_, ok := p.valid[strings.ToUpper(w)]
	return ok
}

// RandomAnswer draws one answer uniformly using r.
func (p *LanguagePack) RandomAnswer(r Rand) string {
	return p.answers[r.Intn(len(p.answers))]
}

// PackSource looks up language packs by ID.
type PackSource interface {
	Get(id string) (*LanguagePack, error)
}
