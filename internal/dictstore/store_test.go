package dictstore

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordscramble/assets"
	"github.com/robalobadob/wordscramble/internal/game"
)

var _ game.Dictionary = (*Store)(nil)

func newTestStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// Every pooled connection to :memory: is its own database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	schema, err := assets.FS.ReadFile("sql/001_dictionary.sql")
	require.NoError(t, err)
	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	return NewStore(db), db
}

func TestStore_SeedAndLookup(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	n, err := store.Seed(ctx, "en-US", []string{"Silk", "worm", " ", "silk"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	// Re-seeding is a no-op.
	n, err = store.Seed(ctx, "en", []string{"silk", "worm"})
	require.NoError(t, err)
	assert.Zero(t, n)

	count, err := store.Count(ctx, "en-GB")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.True(t, store.IsKnownWord("silk", "en"))
	assert.True(t, store.IsKnownWord("WORM", "en-AU"))
	assert.False(t, store.IsKnownWord("klis", "en"))
	assert.False(t, store.IsKnownWord("silk", "fr"))
}

func TestStore_DecomposedEntries(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	ctx := context.Background()

	n, err := store.Seed(ctx, "en", []string{"Cafe\u0301", "caf\u00e9"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "both spellings are one word")

	assert.True(t, store.IsKnownWord("caf\u00e9", "en"))
	assert.True(t, store.IsKnownWord("CAFE\u0301", "en"))
}

func TestStore_LookupErrorIsUnknown(t *testing.T) {
	t.Parallel()

	store, db := newTestStore(t)
	_, err := store.Seed(context.Background(), "en", []string{"silk"})
	require.NoError(t, err)

	require.NoError(t, db.Close())
	_, err = store.Lookup(context.Background(), "silk", "en")
	assert.Error(t, err)
	assert.False(t, store.IsKnownWord("silk", "en"))
}

func TestStore_AsGameDictionary(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	list, err := assets.DictionaryWords()
	require.NoError(t, err)
	_, err = store.Seed(context.Background(), "en", list)
	require.NoError(t, err)

	e := game.NewEngine()
	s := game.Session{ID: "t", RootWord: "cabbage", UsedWords: []string{}}

	res, s := e.SubmitWord("cab", s, store)
	assert.Equal(t, game.OutcomeAccepted, res.Outcome)
	res, _ = e.SubmitWord("gabe", s, store)
	assert.Equal(t, game.OutcomeNotReal, res.Outcome)
}
