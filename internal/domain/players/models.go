package players

import (
	"errors"
	"fmt"
	"strings"
)

// Position is one of the four field roles a player can cover.
type Position string

const (
	Goalkeeper Position = "Goalkeeper"
	Defender   Position = "Defender"
	Midfielder Position = "Midfielder"
	Forward    Position = "Forward"
)

// AllPositions lists every position in display order.
var AllPositions = []Position{Goalkeeper, Defender, Midfielder, Forward}

// ErrInvalidPlayer is wrapped by every roster validation failure.
var ErrInvalidPlayer = errors.New("invalid player")

// Player is a rated roster entry. Positions are ordered; the first entry is the primary position.
type Player struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Positions        []Position `json:"positions"`
	Rating           float64    `json:"rating"`
	IsSelected       bool       `json:"isSelected,omitempty"`
	IsGuest          bool       `json:"isGuest,omitempty"`
	AssignedPosition *Position  `json:"assignedPosition,omitempty"`
}

// Valid reports whether p is one of the known positions.
func (p Position) Valid() bool {
	switch p {
	case Goalkeeper, Defender, Midfielder, Forward:
		return true
	}
	return false
}

// ParsePosition accepts the canonical names case-insensitively plus the GK/DEF/MID/FWD abbreviations.
func ParsePosition(raw string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "goalkeeper", "gk":
		return Goalkeeper, nil
	case "defender", "def":
		return Defender, nil
	case "midfielder", "mid":
		return Midfielder, nil
	case "forward", "fwd":
		return Forward, nil
	}
	return "", fmt.Errorf("%w: unknown position %q", ErrInvalidPlayer, raw)
}

// PrimaryPosition returns the first listed position, or "" when none.
func (p Player) PrimaryPosition() Position {
	if len(p.Positions) == 0 {
		return ""
	}
	return p.Positions[0]
}

// CanPlay reports whether pos is among the player's eligible positions.
func (p Player) CanPlay(pos Position) bool {
	for _, candidate := range p.Positions {
		if candidate == pos {
			return true
		}
	}
	return false
}

// IsGoalkeeper reports goalkeeper eligibility.
func (p Player) IsGoalkeeper() bool {
	return p.CanPlay(Goalkeeper)
}

// Clone returns a copy that shares no slices or pointers with p.
func (p Player) Clone() Player {
	out := p
	out.Positions = append([]Position(nil), p.Positions...)
	if p.AssignedPosition != nil {
		pos := *p.AssignedPosition
		out.AssignedPosition = &pos
	}
	return out
}

// Validate checks the fields every roster entry must carry.
func (p Player) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidPlayer)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: player %s has no name", ErrInvalidPlayer, p.ID)
	}
	if len(p.Positions) == 0 || len(p.Positions) > len(AllPositions) {
		return fmt.Errorf("%w: player %s must have 1 to %d positions", ErrInvalidPlayer, p.ID, len(AllPositions))
	}
	seen := make(map[Position]struct{}, len(p.Positions))
	for _, pos := range p.Positions {
		if !pos.Valid() {
			return fmt.Errorf("%w: player %s has unknown position %q", ErrInvalidPlayer, p.ID, pos)
		}
		if _, dup := seen[pos]; dup {
			return fmt.Errorf("%w: player %s lists %s twice", ErrInvalidPlayer, p.ID, pos)
		}
		seen[pos] = struct{}{}
	}
	return nil
}

// ValidateRoster validates each player and rejects duplicate ids.
func ValidateRoster(roster []Player) error {
	ids := make(map[string]struct{}, len(roster))
	for _, p := range roster {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, dup := ids[p.ID]; dup {
			return fmt.Errorf("%w: duplicate id %s", ErrInvalidPlayer, p.ID)
		}
		ids[p.ID] = struct{}{}
	}
	return nil
}
