// internal/words/words.go
//
// Root word lists and the in-memory dictionary.
//
// Responsibilities:
//   - Load the candidate root words from a file or the embedded start.txt.
//   - Hold locale-keyed word sets answering game.Dictionary lookups.
//
// Word Lists:
//   - "start":      candidate root words, one per line.
//   - "dictionary": known words for a locale, one per line.
//
// Both lists go through game.Normalize; blank lines and '#' comments are
// skipped. Paths usually come from WORDS_START_FILE / WORDS_DICTIONARY_FILE.

package words

import (
	"errors"
	"fmt"
	"os"

	"github.com/robalobadob/wordscramble/assets"
)

// ErrEmptyList is returned when a word list has no usable entries.
var ErrEmptyList = errors.New("words: list is empty")

// StartList loads candidate root words. An empty Path means the embedded list.
type StartList struct {
	Path string
}

// LoadWords implements game.WordList.
// A missing or unreadable file is an error; so is a list with no words,
// since the caller can't start a meaningful game from it.
func (l StartList) LoadWords() ([]string, error) {
	var (
		list []string
		err  error
	)
	if l.Path == "" {
		list, err = assets.StartWords()
	} else {
		list, err = readWordFile(l.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("read start words: %w", err)
	}
	if len(list) == 0 {
		return nil, ErrEmptyList
	}
	return list, nil
}

// DictionaryList reads the dictionary words from path, or the embedded
// English list when path is empty.
func DictionaryList(path string) ([]string, error) {
	var (
		list []string
		err  error
	)
	if path == "" {
		list, err = assets.DictionaryWords()
	} else {
		list, err = readWordFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	if len(list) == 0 {
		return nil, ErrEmptyList
	}
	return list, nil
}

// LoadDictionary builds a Dictionary for locale from DictionaryList(path).
func LoadDictionary(path, locale string) (*Dictionary, error) {
	list, err := DictionaryList(path)
	if err != nil {
		return nil, err
	}
	d := NewDictionary()
	d.Add(locale, list...)
	return d, nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return assets.ReadLines(f)
}
