// internal/game/engine.go
//
// Core rules for a single WordScramble session.
// Responsibilities:
//   - Start sessions from a root word list (with a fixed fallback word).
//   - Normalize and classify submitted words in a fixed order.
//   - Apply accepted words to a Session value and keep the score in step.
//
// Notes:
//   - The engine never mutates the Session it is given; it returns a new one.
//   - Randomness and the dictionary are injected so results are reproducible.
package game

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

const (
	defaultLocale = "en"
	minWordLength = 3
)

// Engine applies the game rules. It holds configuration only, no session state,
// so one Engine can serve any number of sessions.
type Engine struct {
	pick        Picker
	locale      string
	debugBypass bool
	log         zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithPicker sets the root word selection function.
func WithPicker(p Picker) Option {
	return func(e *Engine) {
		if p != nil {
			e.pick = p
		}
	}
}

// WithLocale sets the locale passed to Dictionary lookups.
func WithLocale(locale string) Option {
	return func(e *Engine) {
		if locale != "" {
			e.locale = locale
		}
	}
}

// WithDebugBypass toggles unconditional acceptance of DebugWord.
func WithDebugBypass(enabled bool) Option {
	return func(e *Engine) { e.debugBypass = enabled }
}

// WithLogger sets the logger used for per-submission debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// NewEngine returns an Engine with a crypto-random picker, locale "en"
// and the debug bypass enabled.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		pick:        RandomPicker(),
		locale:      defaultLocale,
		debugBypass: true,
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Locale reports the locale used for dictionary lookups.
func (e *Engine) Locale() string { return e.locale }

// StartGame picks a root word from words and returns a fresh session.
// Falls back to DefaultRootWord when words is empty or the pick is blank.
func (e *Engine) StartGame(words []string) Session {
	root := ""
	if n := len(words); n > 0 {
		root = Normalize(words[e.pick(n)])
	}
	if root == "" {
		root = DefaultRootWord
	}
	s := Session{
		ID:        uuid.NewString(),
		RootWord:  root,
		UsedWords: []string{},
	}
	e.log.Debug().Str("session_id", s.ID).Str("root", root).Int("candidates", len(words)).Msg("session started")
	return s
}

// SubmitWord classifies raw against s and returns the result with the
// (possibly) updated session.
//
// Evaluation order, stopping at the first failure:
//   - empty after normalization
//   - already used
//   - not spellable from the root word's letters
//   - unknown to dict
//   - shorter than three letters
//   - equal to the root word
//
// DebugWord skips every check while the bypass is enabled.
func (e *Engine) SubmitWord(raw string, s Session, dict Dictionary) (Result, Session) {
	word := Normalize(raw)
	res := e.classify(word, s, dict)
	if res.Accepted() {
		s = accept(s, word)
	}
	e.log.Debug().
		Str("session_id", s.ID).
		Str("word", word).
		Str("outcome", string(res.Outcome)).
		Int("score", s.Score).
		Msg("word submitted")
	return res, s
}

func (e *Engine) classify(word string, s Session, dict Dictionary) Result {
	res := Result{Word: word}
	switch {
	case e.debugBypass && word == DebugWord:
		res.Outcome = OutcomeAccepted
	case word == "":
		res.Outcome = OutcomeEmpty
	case !isOriginal(word, s.UsedWords):
		res.Outcome = OutcomeAlreadyUsed
	case !isPossible(word, s.RootWord):
		res.Outcome = OutcomeNotPossible
	case !isReal(word, e.locale, dict):
		res.Outcome = OutcomeNotReal
	case utf8.RuneCountInString(word) < minWordLength:
		res.Outcome = OutcomeTooShort
	case word == Normalize(s.RootWord):
		res.Outcome = OutcomeSameAsRoot
	default:
		res.Outcome = OutcomeAccepted
	}
	if res.Outcome == OutcomeAccepted {
		res.ScoreDelta = utf8.RuneCountInString(word)
	}
	return res
}

// accept prepends word to a copy of s.UsedWords and bumps the score.
func accept(s Session, word string) Session {
	used := make([]string, 0, len(s.UsedWords)+1)
	used = append(used, word)
	used = append(used, s.UsedWords...)
	s.UsedWords = used
	s.Score += utf8.RuneCountInString(word)
	return s
}

// Normalize trims whitespace and newlines, composes to NFC and lowercases.
// Root words, submissions and dictionary entries all go through it so they
// compare rune for rune.
func Normalize(raw string) string {
	w := strings.TrimSpace(raw)
	if w == "" {
		return ""
	}
	return cases.Lower(language.Und).String(norm.NFC.String(w))
}

// isOriginal reports whether word hasn't been accepted yet.
func isOriginal(word string, used []string) bool {
	return !slices.Contains(used, word)
}

// isPossible reports whether every letter of word can be drawn from root,
// using each occurrence in root at most once.
func isPossible(word, root string) bool {
	counts := make(map[rune]int, len(root))
	for _, r := range Normalize(root) {
		counts[r]++
	}
	for _, r := range word {
		if counts[r] == 0 {
			return false
		}
		counts[r]--
	}
	return true
}

// isReal asks dict about word. A nil dictionary knows no words.
func isReal(word, locale string, dict Dictionary) bool {
	if dict == nil {
		return false
	}
	return dict.IsKnownWord(word, locale)
}
