package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/MohcineSafi/Battle-Arena/internal/engine"
	"github.com/google/uuid"
)

// matchRecord is a live match plus its pacing state. Every field is guarded
// by mu.
type matchRecord struct {
	mu sync.Mutex

	id    uuid.UUID
	match *engine.Match
	rng   *rand.Rand

	readyAt       time.Time
	enemyActAt    time.Time
	lastActivity  time.Time
	lastEnemyTurn *engine.AutoTurn
	removed       bool
}

// matchStore keeps matches in memory keyed by id. Operations on one match
// are serialized by the record lock; different matches never contend.
type matchStore struct {
	mu      sync.RWMutex
	matches map[uuid.UUID]*matchRecord
}

func newMatchStore() *matchStore {
	return &matchStore{matches: make(map[uuid.UUID]*matchRecord)}
}

func (s *matchStore) put(rec *matchRecord) {
	s.mu.Lock()
	s.matches[rec.id] = rec
	s.mu.Unlock()
}

// with runs fn while holding the lock of the match with the given id.
func (s *matchStore) with(id uuid.UUID, fn func(rec *matchRecord) error) error {
	s.mu.RLock()
	rec, ok := s.matches[id]
	s.mu.RUnlock()
	if !ok {
		return ErrMatchNotFound
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.removed {
		return ErrMatchNotFound
	}
	return fn(rec)
}

func (s *matchStore) remove(id uuid.UUID) bool {
	s.mu.Lock()
	rec, ok := s.matches[id]
	delete(s.matches, id)
	s.mu.Unlock()
	if !ok {
		return false
	}
	rec.mu.Lock()
	rec.removed = true
	rec.mu.Unlock()
	return true
}

func (s *matchStore) ids() []uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]uuid.UUID, 0, len(s.matches))
	for id := range s.matches {
		out = append(out, id)
	}
	return out
}

func (s *matchStore) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.matches)
}
