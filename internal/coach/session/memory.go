package session

import (
	"sync"

	"financial-coach/internal/coach"
)

type entry struct {
	mu    sync.Mutex
	turns []coach.Turn
}

type memoryStore struct {
	mu       sync.RWMutex
	entries  map[string]*entry
	maxTurns int
}

// NewMemory creates a Store that keeps 2*maxHistoryLength turns per user.
func NewMemory(maxHistoryLength int) Store {
	if maxHistoryLength <= 0 {
		maxHistoryLength = coach.DefaultMaxHistoryLength
	}
	return &memoryStore{
		entries:  make(map[string]*entry),
		maxTurns: 2 * maxHistoryLength,
	}
}

// MaxTurns is the number of turns a store built with maxHistoryLength keeps per user.
func MaxTurns(maxHistoryLength int) int {
	if maxHistoryLength <= 0 {
		maxHistoryLength = coach.DefaultMaxHistoryLength
	}
	return 2 * maxHistoryLength
}

func (s *memoryStore) Append(userID string, turn coach.Turn) {
	e := s.getOrCreate(userID)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.turns = append(e.turns, turn)
	if over := len(e.turns) - s.maxTurns; over > 0 {
		kept := make([]coach.Turn, s.maxTurns)
		copy(kept, e.turns[over:])
		e.turns = kept
	}
}

func (s *memoryStore) Recent(userID string, limit int) []coach.Turn {
	s.mu.RLock()
	e, ok := s.entries[userID]
	s.mu.RUnlock()
	if !ok || limit <= 0 {
		return []coach.Turn{}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	start := len(e.turns) - limit
	if start < 0 {
		start = 0
	}
	out := make([]coach.Turn, len(e.turns)-start)
	copy(out, e.turns[start:])
	return out
}

func (s *memoryStore) Has(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[userID]
	return ok
}

func (s *memoryStore) Seed(userID string, turns []coach.Turn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[userID]; ok {
		return false
	}

	if over := len(turns) - s.maxTurns; over > 0 {
		turns = turns[over:]
	}
	seeded := make([]coach.Turn, len(turns))
	copy(seeded, turns)
	s.entries[userID] = &entry{turns: seeded}
	return true
}

func (s *memoryStore) getOrCreate(userID string) *entry {
	s.mu.RLock()
	e, ok := s.entries[userID]
	s.mu.RUnlock()
	if ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok = s.entries[userID]; ok {
		return e
	}
	e = &entry{}
	s.entries[userID] = e
	return e
}
