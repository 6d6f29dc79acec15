// internal/game/game.go
//
// Holder for the single active session.
// Responsibilities:
//   - Load the root word list once, failing fast on error.
//   - Start and replace sessions; route submissions through the Engine.
//   - Report the NotStarted / InProgress state.
package game

import (
	"errors"
	"fmt"
)

// ErrNotStarted is returned by Submit before the first Start.
var ErrNotStarted = errors.New("game: not started")

// Game owns the single active Session and the collaborators it is played
// against. It moves from StateNotStarted to StateInProgress on the first
// Start; later Starts replace the session. There is no terminal state.
//
// Game is not safe for concurrent use.
type Game struct {
	engine  *Engine
	words   []string
	dict    Dictionary
	session *Session
}

// New loads the root word list once and returns a Game that hasn't started.
// A load failure is returned as is: without a word list there is nothing
// sensible to play, so callers are expected to abort.
func New(engine *Engine, list WordList, dict Dictionary) (*Game, error) {
	if engine == nil {
		engine = NewEngine()
	}
	if list == nil {
		return nil, errors.New("game: nil word list")
	}
	words, err := list.LoadWords()
	if err != nil {
		return nil, fmt.Errorf("load root words: %w", err)
	}
	return &Game{engine: engine, words: words, dict: dict}, nil
}

// Start begins a new session, discarding any active one.
func (g *Game) Start() Session {
	s := g.engine.StartGame(g.words)
	g.session = &s
	return s
}

// Submit applies raw to the active session.
func (g *Game) Submit(raw string) (Result, error) {
	if g.session == nil {
		return Result{}, ErrNotStarted
	}
	res, s := g.engine.SubmitWord(raw, *g.session, g.dict)
	g.session = &s
	return res, nil
}

// State reports whether a session is active.
func (g *Game) State() State {
	if g.session == nil {
		return StateNotStarted
	}
	return StateInProgress
}

// Session returns a copy of the active session and whether one exists.
func (g *Game) Session() (Session, bool) {
	if g.session == nil {
		return Session{}, false
	}
	s := *g.session
	s.UsedWords = append([]string(nil), s.UsedWords...)
	return s, true
}

// WordCount reports how many candidate root words were loaded.
func (g *Game) WordCount() int { return len(g.words) }
