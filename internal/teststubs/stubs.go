package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"squad-maker-service/internal/domain/players"
)

// StubProvider is a test double for roster.Provider.
type StubProvider struct {
	Players []players.Player
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}
}

// FetchPlayers returns configured players and error while tracking calls.
func (s *StubProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]players.Player, len(s.Players))
	for i, p := range s.Players {
		out[i] = p.Clone()
	}
	return out, nil
}

// StubRosterSink is a test double for poller.RosterSink.
type StubRosterSink struct {
	mu      sync.Mutex
	Rosters [][]players.Player
}

// SetRoster records the roster for verification in tests.
func (s *StubRosterSink) SetRoster(roster []players.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Rosters = append(s.Rosters, roster)
}

// Last returns the most recent roster, or nil.
func (s *StubRosterSink) Last() []players.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Rosters) == 0 {
		return nil
	}
	return s.Rosters[len(s.Rosters)-1]
}

// StubSelectionStore is a test double for selection.Store.
type StubSelectionStore struct {
	mu      sync.Mutex
	IDs     []string
	Saves   int
	SaveErr error
}

// Load returns the stored ids.
func (s *StubSelectionStore) Load() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.IDs...)
}

// Save records ids unless SaveErr is set.
func (s *StubSelectionStore) Save(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Saves++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.IDs = append([]string(nil), ids...)
	return nil
}
