package wordle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardWinOnExactGuess(t *testing.T) {
	b := NewBoard("crane", newTestPack(t), KeyPolicyUpgrade)

	out, err := b.Submit("crane")
	require.NoError(t, err)

	assert.True(t, out.Won)
	assert.False(t, out.Lost)
	assert.Equal(t, MaxAttempts-1, out.Remaining)
	assert.True(t, Solved(out.Attempt.Verdicts))
	assert.True(t, b.Won())
	assert.True(t, b.Finished())
}

func TestBoardRejectsInvalidGuesses(t *testing.T) {
	tests := []struct {
		guess  string
		reason Reason
	}{
		{"CRAN", ReasonLength},
		{"CRANES", ReasonLength},
		{"CR4NE", ReasonAlphabet},
		{"ZZZZZ", ReasonNotInList},
	}

	for _, tt := range tests {
		t.Run(tt.guess, func(t *testing.T) {
			b := NewBoard("CRANE", newTestPack(t), KeyPolicyUpgrade)

			_, err := b.Submit(tt.guess)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidWord))

			var iwe *InvalidWordError
			require.True(t, errors.As(err, &iwe))
			assert.Equal(t, tt.reason, iwe.Reason)

			assert.Empty(t, b.Attempts())
			assert.Empty(t, b.Keys().Snapshot())
			assert.False(t, b.Finished())
		})
	}
}

func TestBoardInvalidGuessKeepsKeyboard(t *testing.T) {
	b := NewBoard("CRANE", newTestPack(t), KeyPolicyUpgrade)

	_, err := b.Submit("ROUTE")
	require.NoError(t, err)
	before := b.Keys().Snapshot()

	_, err = b.Submit("QQQQQ")
	require.ErrorIs(t, err, ErrInvalidWord)

	assert.Equal(t, before, b.Keys().Snapshot())
	assert.Len(t, b.Attempts(), 1)
}

func TestBoardLosesAfterMaxAttempts(t *testing.T) {
	b := NewBoard("CRANE", newTestPack(t), KeyPolicyUpgrade)
	misses := []string{"ROUTE", "BUILT", "SLATE", "MOUNT", "PLUSH", "DWELT"}

	for i, g := range misses {
		out, err := b.Submit(g)
		require.NoError(t, err)
		assert.False(t, out.Won)
		assert.Equal(t, i == len(misses)-1, out.Lost, "guess %d", i+1)
	}

	assert.True(t, b.Lost())
	assert.False(t, b.Won())
	assert.Len(t, b.Attempts(), MaxAttempts)

	_, err := b.Submit("CRANE")
	assert.ErrorIs(t, err, ErrGameOver)
	assert.False(t, b.Won())
}

func TestBoardAttemptsAreCopies(t *testing.T) {
	b := NewBoard("CRANE", newTestPack(t), KeyPolicyUpgrade)
	_, err := b.Submit("SLATE")
	require.NoError(t, err)

	got := b.Attempts()
	got[0].Word = "XXXXX"
	assert.Equal(t, "SLATE", b.Attempts()[0].Word)
}
