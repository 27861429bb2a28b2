package server

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/IX-Erich/oregon-trail/internal/game"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrStoreFull    = errors.New("game store is full")
)

// session serializes the actions of one game; a Game is not safe for
// concurrent use.
type session struct {
	mu   sync.Mutex
	game *game.Game
}

// Store keeps running games in memory, keyed by a random UUID. Games are
// lost when the process exits.
type Store struct {
	mu       sync.RWMutex
	games    map[string]*session
	maxGames int
}

func NewStore(maxGames int) *Store {
	return &Store{
		games:    make(map[string]*session),
		maxGames: maxGames,
	}
}

func (s *Store) Create(cfg game.Config) (string, *game.Game, error) {
	g, err := game.New(cfg)
	if err != nil {
		return "", nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.maxGames > 0 && len(s.games) >= s.maxGames {
		return "", nil, ErrStoreFull
	}
	id := uuid.NewString()
	s.games[id] = &session{game: g}
	return id, g, nil
}

// Do runs fn with exclusive access to the game.
func (s *Store) Do(id string, fn func(g *game.Game) error) error {
	s.mu.RLock()
	sess, ok := s.games[id]
	s.mu.RUnlock()
	if !ok {
		return ErrGameNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess.game)
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return ErrGameNotFound
	}
	delete(s.games, id)
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
