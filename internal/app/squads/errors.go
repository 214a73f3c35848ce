package squads

import "errors"

var (
	// ErrUnknownPlayer is returned when a selection or move references a player not in the roster.
	ErrUnknownPlayer = errors.New("unknown player")
	// ErrUnknownTeam is returned when a move targets a team other than A or B.
	ErrUnknownTeam = errors.New("unknown team")
	// ErrNoTeams is returned when teams are requested before any generation.
	ErrNoTeams = errors.New("no teams generated")
)
