// internal/words/dictionary.go
//
// In-memory game.Dictionary.
// Responsibilities:
//   - Keep one word set per base language (en-GB and en share a set).
//   - Normalize entries and lookups with game.Normalize.
package words

import (
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/internal/game"
)

// Dictionary is an in-memory set of words per base language.
// Safe for concurrent use.
type Dictionary struct {
	mu   sync.RWMutex
	sets map[string]map[string]struct{}
}

// NewDictionary returns an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{sets: make(map[string]map[string]struct{})}
}

// Add records words under locale's base language.
func (d *Dictionary) Add(locale string, words ...string) {
	key := BaseLanguage(locale)
	d.mu.Lock()
	defer d.mu.Unlock()
	set, ok := d.sets[key]
	if !ok {
		set = make(map[string]struct{}, len(words))
		d.sets[key] = set
	}
	for _, w := range words {
		if w = game.Normalize(w); w != "" {
			set[w] = struct{}{}
		}
	}
}

// IsKnownWord implements game.Dictionary.
func (d *Dictionary) IsKnownWord(word, locale string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.sets[BaseLanguage(locale)][game.Normalize(word)]
	return ok
}

// Len reports how many words are known for locale.
func (d *Dictionary) Len(locale string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.sets[BaseLanguage(locale)])
}

// BaseLanguage reduces a BCP 47 tag to its base language ("en-GB" → "en").
// Unparseable tags are lowercased and used as is.
func BaseLanguage(locale string) string {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(locale))
	}
	base, _ := tag.Base()
	return base.String()
}
