package squads

import (
	"math"
	"time"

	"squad-maker-service/internal/domain/players"
	"squad-maker-service/internal/domain/teams"
)

// Matchup is the session's current pair of teams.
type Matchup struct {
	TeamA       teams.Team `json:"teamA"`
	TeamB       teams.Team `json:"teamB"`
	GeneratedAt time.Time  `json:"generatedAt"`
}

// RatingGap is the absolute difference between the team averages.
func (m Matchup) RatingGap() float64 {
	return math.Abs(m.TeamA.AverageRating - m.TeamB.AverageRating)
}

// Players returns both rosters, Team A first.
func (m Matchup) Players() []players.Player {
	out := make([]players.Player, 0, m.TeamA.Size()+m.TeamB.Size())
	out = append(out, m.TeamA.Players...)
	return append(out, m.TeamB.Players...)
}

// Team returns a pointer to the team with the given id.
func (m *Matchup) Team(id teams.ID) (*teams.Team, bool) {
	switch id {
	case teams.TeamA:
		return &m.TeamA, true
	case teams.TeamB:
		return &m.TeamB, true
	}
	return nil, false
}

// clone returns a deep copy so callers never share slices with the session.
func (m Matchup) clone() Matchup {
	return Matchup{
		TeamA:       m.TeamA.Clone(),
		TeamB:       m.TeamB.Clone(),
		GeneratedAt: m.GeneratedAt,
	}
}
