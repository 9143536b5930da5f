package wordle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSelectLanguage(t *testing.T) {
	s, _ := newTestSession(t, &seqRand{vals: []int{0}})
	require.Equal(t, StateSelecting, s.State())
	assert.Nil(t, s.Board())

	st, err := s.SelectLanguage("en")
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, st)
	assert.Equal(t, "en", s.Language().ID())
	assert.Equal(t, "CRANE", s.Board().Secret())

	_, err = s.SelectLanguage("en")
	assert.ErrorIs(t, err, ErrWrongState)
}

func TestSessionSelectLanguageErrors(t *testing.T) {
	s, _ := newTestSession(t, &seqRand{vals: []int{0}})

	_, err := s.SelectLanguage("tlh")
	assert.ErrorIs(t, err, ErrUnknownLanguage)

	_, err = s.SelectLanguage("xx")
	assert.ErrorIs(t, err, ErrLanguageDisabled)

	assert.Equal(t, StateSelecting, s.State())
}

func TestSessionWin(t *testing.T) {
	s, events := newTestSession(t, &seqRand{vals: []int{0}})
	_, err := s.SelectLanguage("en")
	require.NoError(t, err)

	out, err := s.Submit("CRANE")
	require.NoError(t, err)

	assert.True(t, out.Won)
	for _, v := range out.Attempt.Verdicts {
		assert.Equal(t, Correct, v)
	}
	assert.Equal(t, StateWon, s.State())
	require.Len(t, *events, 1)
	assert.Equal(t, EventWon, (*events)[0].Kind)
	assert.Equal(t, "CRANE", (*events)[0].Secret)
	assert.Equal(t, 1, (*events)[0].Attempts)

	_, err = s.Submit("SLATE")
	assert.ErrorIs(t, err, ErrWrongState)
	assert.Len(t, *events, 1)
}

func TestSessionLoss(t *testing.T) {
	s, events := newTestSession(t, &seqRand{vals: []int{0}})
	_, err := s.SelectLanguage("en")
	require.NoError(t, err)

	for _, g := range []string{"ROUTE", "BUILT", "SLATE", "MOUNT", "PLUSH"} {
		_, err := s.Submit(g)
		require.NoError(t, err)
		assert.Equal(t, StatePlaying, s.State())
	}
	out, err := s.Submit("DWELT")
	require.NoError(t, err)

	assert.True(t, out.Lost)
	assert.Equal(t, 0, out.Remaining)
	assert.Equal(t, StateLost, s.State())
	require.Len(t, *events, 1)
	assert.Equal(t, EventLost, (*events)[0].Kind)
	assert.Equal(t, MaxAttempts, (*events)[0].Attempts)
}

func TestSessionInvalidWordLeavesStateUnchanged(t *testing.T) {
	s, events := newTestSession(t, &seqRand{vals: []int{0}})
	_, err := s.SelectLanguage("en")
	require.NoError(t, err)

	_, err = s.Submit("ROUTE")
	require.NoError(t, err)
	keys := s.Board().Keys().Snapshot()

	_, err = s.Submit("ZZZZZ")
	require.ErrorIs(t, err, ErrInvalidWord)

	assert.Equal(t, StatePlaying, s.State())
	assert.Len(t, s.Board().Attempts(), 1)
	assert.Equal(t, keys, s.Board().Keys().Snapshot())
	require.Len(t, *events, 1)
	assert.Equal(t, EventInvalidWord, (*events)[0].Kind)
	assert.Equal(t, ReasonNotInList, (*events)[0].Err.Reason)
}

func TestSessionInputBuffer(t *testing.T) {
	s, events := newTestSession(t, &seqRand{vals: []int{0}})

	assert.False(t, s.Type('a'), "typing before a language is chosen")
	_, err := s.SelectLanguage("en")
	require.NoError(t, err)

	assert.False(t, s.Type('1'))
	assert.False(t, s.Type('é'))
	for _, r := range "slat" {
		assert.True(t, s.Type(r))
	}
	assert.Equal(t, "SLAT", s.Input())

	_, err = s.Enter()
	var iwe *InvalidWordError
	require.True(t, errors.As(err, &iwe))
	assert.Equal(t, ReasonLength, iwe.Reason)
	assert.Empty(t, *events, "short input raises no event")

	assert.True(t, s.Type('x'))
	assert.False(t, s.Type('e'), "buffer is full")
	assert.Equal(t, "SLATX", s.Input())

	_, err = s.Enter()
	require.ErrorIs(t, err, ErrInvalidWord)
	assert.Equal(t, "SLATX", s.Input(), "invalid word keeps the buffer")

	assert.True(t, s.Erase())
	assert.True(t, s.Type('E'))
	out, err := s.Enter()
	require.NoError(t, err)
	assert.Equal(t, "SLATE", out.Attempt.Word)
	assert.Empty(t, s.Input())
	assert.False(t, s.Erase())
}

func TestSessionRestartSameLanguage(t *testing.T) {
	s, _ := newTestSession(t, &seqRand{vals: []int{0, 1}})
	_, err := s.SelectLanguage("en")
	require.NoError(t, err)
	s.Type('C')

	_, err = s.Restart(RestartSameLanguage)
	assert.ErrorIs(t, err, ErrWrongState, "cannot restart a game in progress")

	_, err = s.Submit("CRANE")
	require.NoError(t, err)

	st, err := s.Restart(RestartSameLanguage)
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, st)
	assert.Empty(t, s.Board().Attempts())
	assert.Empty(t, s.Board().Keys().Snapshot())
	assert.Empty(t, s.Input())
	assert.Equal(t, "ALLOY", s.Board().Secret())
	assert.Contains(t, s.Language().Answers(), s.Board().Secret())
}

func TestSessionRestartToMenu(t *testing.T) {
	s, _ := newTestSession(t, &seqRand{vals: []int{0}})
	_, err := s.SelectLanguage("en")
	require.NoError(t, err)
	_, err = s.Submit("CRANE")
	require.NoError(t, err)

	st, err := s.Restart(RestartToMenu)
	require.NoError(t, err)
	assert.Equal(t, StateSelecting, st)
	assert.Nil(t, s.Board())
	assert.Nil(t, s.Language())

	_, err = s.SelectLanguage("en")
	assert.NoError(t, err)
}

func TestSessionAbandon(t *testing.T) {
	s, _ := newTestSession(t, &seqRand{vals: []int{0}})
	assert.ErrorIs(t, s.Abandon(), ErrWrongState)

	_, err := s.SelectLanguage("en")
	require.NoError(t, err)
	s.Type('A')

	require.NoError(t, s.Abandon())
	assert.Equal(t, StateSelecting, s.State())
	assert.Empty(t, s.Input())
}

func TestSessionKeyPolicyOption(t *testing.T) {
	s, _ := newTestSession(t, &seqRand{vals: []int{0}}, WithKeyPolicy(KeyPolicyFirstWrite))
	_, err := s.SelectLanguage("en")
	require.NoError(t, err)

	assert.Equal(t, KeyPolicyFirstWrite, s.Board().Keys().Policy())
}

func TestParseRestartMode(t *testing.T) {
	m, err := ParseRestartMode("")
	require.NoError(t, err)
	assert.Equal(t, RestartToMenu, m)

	m, err = ParseRestartMode("same_language")
	require.NoError(t, err)
	assert.Equal(t, RestartSameLanguage, m)

	_, err = ParseRestartMode("forever")
	assert.Error(t, err)
}
