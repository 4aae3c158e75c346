// Package session keeps a registry of games in progress, safe for
// concurrent use.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/bitchess-go/internal/chess"
	"github.com/lgbarn/bitchess-go/internal/engine"
	"github.com/lgbarn/bitchess-go/internal/errors"
	"github.com/lgbarn/bitchess-go/internal/notation"
)

// Session is one game in the registry. Its game is only reached through
// the Manager, which holds the session lock for every read and move.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	game      *engine.Game
	updatedAt time.Time
}

// Snapshot returns a copy of the game that the caller may use freely.
func (s *Session) Snapshot() *engine.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Clone()
}

// UpdatedAt returns the time of the last accepted move.
func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

// Manager maps session IDs to games.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager returns an empty registry.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// New starts a game from the standard position.
func (m *Manager) New() *Session {
	return m.add(engine.NewGame())
}

// NewFromFEN starts a game from a FEN position.
func (m *Manager) NewFromFEN(fen string) (*Session, error) {
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return m.add(g), nil
}

func (m *Manager) add(g *engine.Game) *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		game:      g,
		updatedAt: now,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s
}

// Get looks up a session, failing with ErrGameNotFound for unknown IDs.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, errors.ErrGameNotFound)
	}
	return s, nil
}

// Delete removes a session.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("%q: %w", id, errors.ErrGameNotFound)
	}
	delete(m.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// with runs fn on the game of session id under the session lock.
func (m *Manager) with(id string, fn func(g *engine.Game) error) error {
	s, err := m.Get(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.game)
}

// Move plays one move given in algebraic or coordinate notation and
// returns it in standard algebraic notation.
func (m *Manager) Move(id, text string) (string, error) {
	s, err := m.Get(id)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := notation.Decode(text)
	if err != nil {
		return "", err
	}
	mv, err := notation.Resolve(s.game, r)
	if err != nil {
		return "", err
	}
	san := notation.Format(s.game, mv)
	if err := s.game.Apply(mv); err != nil {
		return "", err
	}
	s.updatedAt = time.Now()
	return san, nil
}

// Legal returns the legal moves of the side to move in standard
// algebraic notation.
func (m *Manager) Legal(id string) ([]string, error) {
	var moves []string
	err := m.with(id, func(g *engine.Game) error {
		for _, mv := range g.LegalMoves() {
			moves = append(moves, notation.Format(g, mv))
		}
		return nil
	})
	return moves, err
}

// Render draws the board of session id.
func (m *Manager) Render(id string, glyphs chess.Glyphs) (string, error) {
	var out string
	err := m.with(id, func(g *engine.Game) error {
		out = g.Board.Render(glyphs)
		return nil
	})
	return out, err
}

// Status returns the game status of session id.
func (m *Manager) Status(id string) (chess.GameStatus, error) {
	var status chess.GameStatus
	err := m.with(id, func(g *engine.Game) error {
		status = g.Status
		return nil
	})
	return status, err
}

// FEN returns the position of session id as a FEN string.
func (m *Manager) FEN(id string) (string, error) {
	var fen string
	err := m.with(id, func(g *engine.Game) error {
		fen = g.FEN()
		return nil
	})
	return fen, err
}
