package teams

import (
	"errors"
	"fmt"

	"squad-maker-service/internal/domain/players"
)

// ID identifies one of the two fixed team slots.
type ID string

const (
	TeamA ID = "A"
	TeamB ID = "B"
)

var (
	// ErrPlayerNotFound is returned when a move references a player outside the source team.
	ErrPlayerNotFound = errors.New("player not found in team")
	// ErrInvalidPosition is returned when a move assigns a position the player cannot play.
	ErrInvalidPosition = errors.New("player cannot play assigned position")
)

// Team is one side of a generated match. AverageRating is derived from Players
// and must be refreshed through Recompute whenever membership changes.
type Team struct {
	ID            ID               `json:"id"`
	Name          string           `json:"name"`
	Players       []players.Player `json:"players"`
	AverageRating float64          `json:"averageRating"`
}

// Composition counts the players eligible for each position.
type Composition struct {
	Goalkeepers int `json:"goalkeepers"`
	Defenders   int `json:"defenders"`
	Midfielders int `json:"midfielders"`
	Forwards    int `json:"forwards"`
}

// New returns an empty team for the given slot.
func New(id ID) Team {
	return Team{ID: id, Name: "Team " + string(id), Players: []players.Player{}}
}

// AverageRating is the arithmetic mean of the members' ratings, 0 for no members.
func AverageRating(members []players.Player) float64 {
	if len(members) == 0 {
		return 0
	}
	var sum float64
	for _, p := range members {
		sum += p.Rating
	}
	return sum / float64(len(members))
}

// Recompute refreshes AverageRating from the current membership.
func (t *Team) Recompute() {
	t.AverageRating = AverageRating(t.Players)
}

// Size returns the number of members.
func (t Team) Size() int {
	return len(t.Players)
}

// Add appends p without touching the average.
func (t *Team) Add(p players.Player) {
	t.Players = append(t.Players, p)
}

// Goalkeepers counts goalkeeper-eligible members.
func (t Team) Goalkeepers() int {
	n := 0
	for _, p := range t.Players {
		if p.IsGoalkeeper() {
			n++
		}
	}
	return n
}

// Composition reports per-position eligibility counts. Multi-position players count once per position.
func (t Team) Composition() Composition {
	var c Composition
	for _, p := range t.Players {
		for _, pos := range p.Positions {
			switch pos {
			case players.Goalkeeper:
				c.Goalkeepers++
			case players.Defender:
				c.Defenders++
			case players.Midfielder:
				c.Midfielders++
			case players.Forward:
				c.Forwards++
			}
		}
	}
	return c
}

func (t Team) indexOf(playerID string) int {
	for i, p := range t.Players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

// Contains reports whether the player is a member.
func (t Team) Contains(playerID string) bool {
	return t.indexOf(playerID) >= 0
}

// Clone returns a deep copy.
func (t Team) Clone() Team {
	out := t
	out.Players = make([]players.Player, len(t.Players))
	for i, p := range t.Players {
		out.Players[i] = p.Clone()
	}
	return out
}

// MovePlayer relocates a player between teams after generation. When position is
// non-nil it is recorded as the player's assigned position for display. Both
// averages are recomputed from the new memberships. Moving within one team only
// updates the assigned position and keeps the player's slot.
func MovePlayer(from, to *Team, playerID string, position *players.Position) error {
	idx := from.indexOf(playerID)
	if idx < 0 {
		return fmt.Errorf("%w: %s in team %s", ErrPlayerNotFound, playerID, from.ID)
	}
	p := from.Players[idx]
	if position != nil {
		if !p.CanPlay(*position) {
			return fmt.Errorf("%w: %s as %s", ErrInvalidPosition, p.Name, *position)
		}
		pos := *position
		p.AssignedPosition = &pos
	}

	if from == to {
		from.Players[idx] = p
		from.Recompute()
		return nil
	}

	from.Players = append(from.Players[:idx:idx], from.Players[idx+1:]...)
	to.Players = append(to.Players, p)

	from.Recompute()
	to.Recompute()
	return nil
}
