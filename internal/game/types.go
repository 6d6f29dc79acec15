// internal/game/types.go
//
// Core type definitions for the WordScramble engine.
// Defines:
//   - Session: state for one round (root word, used words, score).
//   - Outcome/Result: classification of a submitted word.
//   - Dictionary/WordList: capabilities the engine depends on.

package game

import "fmt"

// DefaultRootWord is used when the word list yields nothing to pick.
const DefaultRootWord = "silkworm"

// DebugWord is accepted unconditionally while the debug bypass is enabled.
// Kept from the original app; it looks like leftover test scaffolding.
const DebugWord = "debug"

// Session holds the state of a single round.
type Session struct {
	ID        string   // Random identifier, used for log correlation only.
	RootWord  string   // Lowercase; fixed for the lifetime of the session.
	UsedWords []string // Accepted words, most recent first.
	Score     int      // Sum of the rune lengths of UsedWords.
}

// Outcome classifies a submitted word.
// Possible values:
//   - "accepted":     word added to the session.
//   - "empty":        nothing left after normalization.
//   - "already_used": word was accepted earlier in this session.
//   - "not_possible": word can't be spelled from the root word's letters.
//   - "not_real":     dictionary doesn't know the word.
//   - "too_short":    fewer letters than the minimum.
//   - "same_as_root": word is the root word itself.
type Outcome string

const (
	OutcomeAccepted    Outcome = "accepted"
	OutcomeEmpty       Outcome = "empty"
	OutcomeAlreadyUsed Outcome = "already_used"
	OutcomeNotPossible Outcome = "not_possible"
	OutcomeNotReal     Outcome = "not_real"
	OutcomeTooShort    Outcome = "too_short"
	OutcomeSameAsRoot  Outcome = "same_as_root"
)

// Result is what SubmitWord reports back to the presentation layer.
type Result struct {
	Outcome    Outcome
	Word       string // Normalized candidate.
	ScoreDelta int    // Non-zero only when accepted.
}

// Accepted reports whether the word was added to the session.
func (r Result) Accepted() bool { return r.Outcome == OutcomeAccepted }

// Title returns the alert title shown for a rejection, or "" otherwise.
func (r Result) Title() string {
	switch r.Outcome {
	case OutcomeAlreadyUsed:
		return "Word used already"
	case OutcomeNotPossible:
		return "Word not possible"
	case OutcomeNotReal:
		return "Word not recognized"
	case OutcomeTooShort:
		return "Word too short"
	case OutcomeSameAsRoot:
		return "Word is same as start word"
	}
	return ""
}

// Message returns the alert body for a rejection, or "" otherwise.
func (r Result) Message() string {
	switch r.Outcome {
	case OutcomeAlreadyUsed:
		return "Be more original"
	case OutcomeNotPossible:
		return fmt.Sprintf("You can't spell %q from those letters", r.Word)
	case OutcomeNotReal:
		return "You can't just make them up, you know!"
	case OutcomeTooShort:
		return fmt.Sprintf("Words need at least %d letters", minWordLength)
	case OutcomeSameAsRoot:
		return "You can't just copy the start word"
	}
	return ""
}

// Dictionary decides whether a word is real in a given locale.
// Implementations may be backed by memory, SQLite, a spell-check service, etc.
type Dictionary interface {
	IsKnownWord(word, locale string) bool
}

// WordList supplies the candidate root words.
type WordList interface {
	LoadWords() ([]string, error)
}

// DictionaryFunc adapts a plain function to Dictionary.
type DictionaryFunc func(word, locale string) bool

// IsKnownWord calls f(word, locale).
func (f DictionaryFunc) IsKnownWord(word, locale string) bool { return f(word, locale) }

// State is the coarse lifecycle of a Game.
type State string

const (
	StateNotStarted State = "not_started"
	StateInProgress State = "in_progress"
)
