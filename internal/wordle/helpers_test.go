package wordle

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// seqRand returns the queued values in order, wrapping around.
type seqRand struct {
	vals []int
	next int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.next%len(r.vals)]
	r.next++
	return v % n
}

// packMap is an in-memory PackSource.
type packMap map[string]*LanguagePack

func (m packMap) Get(id string) (*LanguagePack, error) {
	p, ok := m[id]
	if !ok {
		return nil, fmt.Errorf("lookup %q: %w", id, ErrUnknownLanguage)
	}
	return p, nil
}

var (
	testAnswers = []string{"CRANE", "ALLOY", "ABBEY"}
	testWords   = []string{"LOLLY", "ROUTE", "BUILT", "SLATE", "MOUNT", "PLUSH", "DWELT", "GHOST", "BABES"}
)

func newTestPack(t *testing.T) *LanguagePack {
	t.Helper()
	p, err := NewLanguagePack(PackInfo{ID: "en", Label: "English"}, testAnswers, testWords)
	require.NoError(t, err)
	return p
}

func newTestSession(t *testing.T, r Rand, opts ...Option) (*Session, *[]Event) {
	t.Helper()

	off, err := NewLanguagePack(PackInfo{ID: "xx", Label: "Disabled", Disabled: true}, nil, nil)
	require.NoError(t, err)

	packs := packMap{"en": newTestPack(t), "xx": off}
	s := NewSession(packs, append([]Option{WithRand(r)}, opts...)...)

	var events []Event
	s.Subscribe(func(e Event) { events = append(events, e) })
	return s, &events
}
