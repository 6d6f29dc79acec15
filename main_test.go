package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/daily"
	"github.com/robalobadob/wordscramble/internal/dictstore"
	"github.com/robalobadob/wordscramble/internal/words"
)

func TestMigrate_Idempotent(t *testing.T) {
	db, err := openDB(":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, migrate(db))
	require.NoError(t, migrate(db))

	var applied int
	require.NoError(t, db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&applied))
	assert.Equal(t, 1, applied)
}

func TestSeedDictionary_OnlyWhenEmpty(t *testing.T) {
	db, err := openDB(":memory:")
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, migrate(db))

	ctx := context.Background()
	store := dictstore.NewStore(db)
	require.NoError(t, seedDictionary(ctx, store, "en", []string{"silk", "worm"}))
	require.NoError(t, seedDictionary(ctx, store, "en", []string{"milk"}))

	n, err := store.Count(ctx, "en")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.False(t, store.IsKnownWord("milk", "en"))
}

func TestBuildDictionary(t *testing.T) {
	base := config.Config{
		DictionaryBackend: config.BackendMemory,
		Locale:            "en",
		PickMode:          config.PickRandom,
		LogFormat:         "json",
	}

	t.Run("memory", func(t *testing.T) {
		dict, closeFn, err := buildDictionary(context.Background(), base)
		require.NoError(t, err)
		defer closeFn()
		assert.IsType(t, &words.Dictionary{}, dict)
		assert.True(t, dict.IsKnownWord("silk", "en"))
	})

	t.Run("sqlite file", func(t *testing.T) {
		cfg := base
		cfg.DictionaryBackend = config.BackendSQLite
		cfg.DictionaryDSN = filepath.Join(t.TempDir(), "nested", "dictionary.db")

		dict, closeFn, err := buildDictionary(context.Background(), cfg)
		require.NoError(t, err)
		assert.IsType(t, &dictstore.Store{}, dict)
		assert.True(t, dict.IsKnownWord("silk", "en"))
		assert.False(t, dict.IsKnownWord("klis", "en"))
		closeFn()

		// Reopening finds the seeded table.
		dict, closeFn, err = buildDictionary(context.Background(), cfg)
		require.NoError(t, err)
		defer closeFn()
		assert.True(t, dict.IsKnownWord("worm", "en"))
	})

	t.Run("missing word file", func(t *testing.T) {
		cfg := base
		cfg.DictionaryFile = filepath.Join(t.TempDir(), "missing.txt")
		_, _, err := buildDictionary(context.Background(), cfg)
		assert.Error(t, err)
	})
}

func TestPicker(t *testing.T) {
	cfg := config.Config{PickMode: config.PickSeeded, Seed: 9}
	a, b := picker(cfg, time.Now), picker(cfg, time.Now)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a(100), b(100))
	}

	day := func() time.Time { return time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC) }
	cfg = config.Config{PickMode: config.PickDaily, DailySalt: "s"}
	p := picker(cfg, day)
	assert.Equal(t, p(50), p(50))
	assert.Equal(t, daily.WordIndex(day(), "s", 50), p(50))

	v := picker(config.Config{PickMode: config.PickRandom}, time.Now)(3)
	assert.True(t, v >= 0 && v < 3)
}
