package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticList struct {
	words []string
	err   error
}

func (l staticList) LoadWords() ([]string, error) { return l.words, l.err }

func TestNew_WordListFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("missing start.txt")
	_, err := New(NewEngine(), staticList{err: boom}, allWords())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	_, err = New(NewEngine(), nil, allWords())
	assert.Error(t, err)
}

func TestGame_Lifecycle(t *testing.T) {
	t.Parallel()

	g, err := New(NewEngine(WithPicker(FixedPicker(0))), staticList{words: []string{"silkworm"}}, allWords())
	require.NoError(t, err)
	assert.Equal(t, 1, g.WordCount())
	assert.Equal(t, StateNotStarted, g.State())

	_, ok := g.Session()
	assert.False(t, ok)

	_, err = g.Submit("silk")
	assert.ErrorIs(t, err, ErrNotStarted)

	s := g.Start()
	assert.Equal(t, StateInProgress, g.State())
	assert.Equal(t, "silkworm", s.RootWord)

	res, err := g.Submit("silk")
	require.NoError(t, err)
	assert.True(t, res.Accepted())

	res, err = g.Submit("silk")
	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadyUsed, res.Outcome)

	cur, ok := g.Session()
	require.True(t, ok)
	assert.Equal(t, []string{"silk"}, cur.UsedWords)
	assert.Equal(t, 4, cur.Score)

	// Copies don't alias the active session.
	cur.UsedWords[0] = "xxxx"
	again, _ := g.Session()
	assert.Equal(t, []string{"silk"}, again.UsedWords)

	restarted := g.Start()
	assert.Equal(t, StateInProgress, g.State())
	assert.Empty(t, restarted.UsedWords)
	assert.Zero(t, restarted.Score)
	assert.NotEqual(t, s.ID, restarted.ID)
}

func TestGame_EmptyListFallsBack(t *testing.T) {
	t.Parallel()

	g, err := New(nil, staticList{}, allWords())
	require.NoError(t, err)
	assert.Equal(t, DefaultRootWord, g.Start().RootWord)
}
