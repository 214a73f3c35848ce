package store

import (
	"errors"
	"sync"

	"squad-maker-service/internal/domain/players"
)

// ErrDuplicatePlayer is returned when adding a player whose id is already stored.
var ErrDuplicatePlayer = errors.New("player already exists")

// MemoryStore keeps a thread-safe roster in memory, preserving insertion order.
type MemoryStore struct {
	mu      sync.RWMutex
	players map[string]players.Player
	order   []string
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		players: make(map[string]players.Player),
	}
}

// ListPlayers returns copies of the stored players in roster order.
func (s *MemoryStore) ListPlayers() []players.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]players.Player, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.players[id].Clone())
	}
	return result
}

// GetPlayer retrieves a player by ID.
func (s *MemoryStore) GetPlayer(id string) (players.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[id]
	if !ok {
		return players.Player{}, false
	}
	return p.Clone(), true
}

// SetRoster replaces the club players. Guests survive the swap and stay after the club roster.
func (s *MemoryStore) SetRoster(roster []players.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]players.Player, len(roster))
	order := make([]string, 0, len(roster))
	for _, p := range roster {
		if _, dup := next[p.ID]; dup {
			continue
		}
		p = p.Clone()
		p.IsGuest = false
		next[p.ID] = p
		order = append(order, p.ID)
	}
	for _, id := range s.order {
		g := s.players[id]
		if !g.IsGuest {
			continue
		}
		if _, clash := next[id]; clash {
			continue
		}
		next[id] = g
		order = append(order, id)
	}

	s.players = next
	s.order = order
}

// AddPlayer appends a single player, typically a guest.
func (s *MemoryStore) AddPlayer(p players.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.players[p.ID]; exists {
		return ErrDuplicatePlayer
	}
	s.players[p.ID] = p.Clone()
	s.order = append(s.order, p.ID)
	return nil
}

// Len reports the number of stored players.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
