// internal/dictstore/store.go
//
// SQLite-backed game.Dictionary.
// The words table is created by the migrations in assets/sql; this package
// only reads and seeds it. Lookups are keyed by base language, matching the
// in-memory dictionary in internal/words.

package dictstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/words"
)

const defaultLookupTimeout = 2 * time.Second

// Store answers dictionary lookups from a words(locale, word) table.
type Store struct {
	db      *sql.DB
	timeout time.Duration
	log     zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLookupTimeout bounds each IsKnownWord query.
func WithLookupTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithLogger sets the logger used to report failed lookups.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

func NewStore(db *sql.DB, opts ...Option) *Store {
	s := &Store{db: db, timeout: defaultLookupTimeout, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed inserts list under locale in a single transaction. Existing words are
// left alone. Returns the number of rows actually inserted.
func (s *Store) Seed(ctx context.Context, locale string, list []string) (int64, error) {
	key := words.BaseLanguage(locale)
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words (locale, word) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare seed: %w", err)
	}
	defer stmt.Close()

	var inserted int64
	for _, w := range list {
		w = game.Normalize(w)
		if w == "" {
			continue
		}
		res, err := stmt.ExecContext(ctx, key, w)
		if err != nil {
			return 0, fmt.Errorf("insert %q: %w", w, err)
		}
		n, _ := res.RowsAffected()
		inserted += n
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed: %w", err)
	}
	return inserted, nil
}

// Count reports how many words are stored for locale.
func (s *Store) Count(ctx context.Context, locale string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM words WHERE locale=?`, words.BaseLanguage(locale),
	).Scan(&n)
	return n, err
}

// Lookup reports whether word is stored for locale.
func (s *Store) Lookup(ctx context.Context, word, locale string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM words WHERE locale=? AND word=?`,
		words.BaseLanguage(locale), game.Normalize(word),
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// IsKnownWord implements game.Dictionary. Query failures count as unknown.
func (s *Store) IsKnownWord(word, locale string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	ok, err := s.Lookup(ctx, word, locale)
	if err != nil {
		s.log.Warn().Err(err).Str("word", word).Str("locale", locale).Msg("dictionary lookup")
		return false
	}
	return ok
}
