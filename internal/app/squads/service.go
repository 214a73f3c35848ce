package squads

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"squad-maker-service/internal/balancer"
	"squad-maker-service/internal/domain/players"
	"squad-maker-service/internal/domain/teams"
	"squad-maker-service/internal/logging"
	"squad-maker-service/internal/metrics"
	"squad-maker-service/internal/selection"
)

const (
	// DefaultGuestRating applies when a guest is added without a rating.
	DefaultGuestRating = 7.0
	guestIDPrefix      = "guest-"
)

// Roster is the player store the service reads from and adds guests to.
type Roster interface {
	ListPlayers() []players.Player
	GetPlayer(id string) (players.Player, bool)
	AddPlayer(p players.Player) error
}

// Service owns the selection and the current session's teams.
type Service struct {
	roster    Roster
	selection selection.Store
	logger    *slog.Logger
	metrics   *metrics.Recorder
	now       func() time.Time
	newID     func() string

	rngMu sync.Mutex
	rng   *rand.Rand

	mu       sync.Mutex
	selected map[string]struct{}
	current  *Matchup
}

// Option customises a Service.
type Option func(*Service)

// WithLogger sets the fallback logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics sets the recorder balance runs are reported to.
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(s *Service) { s.metrics = recorder }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRand sets the source used to shuffle on regeneration.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// WithIDGenerator overrides guest id generation.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

// NewService constructs a Service and restores the persisted selection.
func NewService(roster Roster, sel selection.Store, opts ...Option) *Service {
	s := &Service{
		roster:    roster,
		selection: sel,
		now:       time.Now,
		newID:     func() string { return guestIDPrefix + uuid.NewString() },
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		selected:  make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if sel != nil {
		for _, id := range sel.Load() {
			s.selected[id] = struct{}{}
		}
	}
	return s
}

// Players returns the roster with selection flags applied.
func (s *Service) Players() []players.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playersLocked()
}

func (s *Service) playersLocked() []players.Player {
	return selection.Apply(s.roster.ListPlayers(), s.selectedIDsLocked())
}

func (s *Service) selectedIDsLocked() []string {
	ids := make([]string, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	return ids
}

// Select replaces the selection. Every id must exist in the roster.
func (s *Service) Select(ctx context.Context, ids []string) ([]players.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := s.roster.GetPlayer(id); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
		}
		next[id] = struct{}{}
	}
	s.selected = next
	s.persistLocked(ctx)

	logging.Info(s.log(ctx), "selection updated", logging.FieldCount, len(next))
	return s.playersLocked(), nil
}

// persistLocked saves the selected club players. Guests live only for the session.
func (s *Service) persistLocked(ctx context.Context) {
	if s.selection == nil {
		return
	}
	ids := make([]string, 0, len(s.selected))
	for _, p := range s.roster.ListPlayers() {
		if _, ok := s.selected[p.ID]; ok && !p.IsGuest {
			ids = append(ids, p.ID)
		}
	}
	if err := s.selection.Save(ids); err != nil {
		logging.Warn(s.log(ctx), "selection persist failed", "error", err)
	}
}

// AddGuest adds a session-only player and selects it.
func (s *Service) AddGuest(ctx context.Context, name string, positions []players.Position, rating float64) (players.Player, error) {
	if rating == 0 {
		rating = DefaultGuestRating
	}
	guest := players.Player{
		ID:         s.newID(),
		Name:       strings.TrimSpace(name),
		Positions:  append([]players.Position(nil), positions...),
		Rating:     rating,
		IsGuest:    true,
		IsSelected: true,
	}
	if err := guest.Validate(); err != nil {
		return players.Player{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.roster.AddPlayer(guest); err != nil {
		return players.Player{}, err
	}
	s.selected[guest.ID] = struct{}{}

	logging.Info(s.log(ctx), "guest added", logging.FieldPlayerID, guest.ID)
	return guest.Clone(), nil
}

// Generate balances the selected players in roster order.
func (s *Service) Generate(ctx context.Context) (Matchup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balanceLocked(ctx, "generate", selection.Selected(s.playersLocked()))
}

// Regenerate balances a shuffled copy of the last generation's players, or of
// the selection when nothing has been generated yet.
func (s *Service) Regenerate(ctx context.Context) (Matchup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pool []players.Player
	if s.current != nil {
		pool = s.current.Players()
		for i := range pool {
			pool[i] = pool[i].Clone()
			pool[i].AssignedPosition = nil
		}
	} else {
		pool = selection.Selected(s.playersLocked())
	}

	s.rngMu.Lock()
	shuffled := balancer.Shuffle(pool, s.rng)
	s.rngMu.Unlock()

	return s.balanceLocked(ctx, "regenerate", shuffled)
}

func (s *Service) balanceLocked(ctx context.Context, op string, pool []players.Player) (Matchup, error) {
	logger := s.log(ctx)
	start := time.Now()

	a, b, err := balancer.Balance(pool)
	if err != nil {
		s.metrics.RecordBalance(time.Since(start), 0, err)
		logging.Warn(logger, "balance rejected", "op", op, logging.FieldCount, len(pool), "error", err)
		return Matchup{}, err
	}

	m := Matchup{TeamA: a, TeamB: b, GeneratedAt: s.now().UTC()}
	s.current = &m
	s.metrics.RecordBalance(time.Since(start), m.RatingGap(), nil)

	logging.Info(logger, "teams generated",
		"op", op,
		logging.FieldCount, len(pool),
		logging.FieldTeamASize, a.Size(),
		logging.FieldTeamBSize, b.Size(),
		logging.FieldRatingGap, m.RatingGap(),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return m.clone(), nil
}

// Move relocates a player to the given team and optionally assigns a display position.
func (s *Service) Move(ctx context.Context, playerID string, to teams.ID, position *players.Position) (Matchup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return Matchup{}, ErrNoTeams
	}
	dest, ok := s.current.Team(to)
	if !ok {
		return Matchup{}, fmt.Errorf("%w: %q", ErrUnknownTeam, to)
	}

	var src *teams.Team
	switch {
	case s.current.TeamA.Contains(playerID):
		src = &s.current.TeamA
	case s.current.TeamB.Contains(playerID):
		src = &s.current.TeamB
	default:
		return Matchup{}, fmt.Errorf("%w: %s", ErrUnknownPlayer, playerID)
	}

	if err := teams.MovePlayer(src, dest, playerID, position); err != nil {
		return Matchup{}, err
	}
	s.metrics.RecordManualMove()
	logging.Info(s.log(ctx), "player moved",
		logging.FieldPlayerID, playerID,
		logging.FieldTeam, string(to),
		logging.FieldRatingGap, s.current.RatingGap(),
	)
	return s.current.clone(), nil
}

// Teams returns the current session teams.
func (s *Service) Teams() (Matchup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Matchup{}, ErrNoTeams
	}
	return s.current.clone(), nil
}

// Reset discards the session teams. The selection is kept.
func (s *Service) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	logging.Info(s.log(ctx), "teams reset")
}

func (s *Service) log(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, s.logger)
}
