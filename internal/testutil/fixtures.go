package testutil

import (
	"squad-maker-service/internal/domain/players"
)

// SamplePlayer returns a roster entry with a single position.
func SamplePlayer(id string, pos players.Position, rating float64) players.Player {
	return players.Player{
		ID:        id,
		Name:      "Player " + id,
		Positions: []players.Position{pos},
		Rating:    rating,
	}
}

// SampleRoster builds a small valid roster with two keepers and a spread of outfield players.
func SampleRoster() []players.Player {
	return []players.Player{
		SamplePlayer("gk1", players.Goalkeeper, 8),
		SamplePlayer("gk2", players.Goalkeeper, 7),
		SamplePlayer("d1", players.Defender, 7.5),
		SamplePlayer("d2", players.Defender, 6.5),
		SamplePlayer("m1", players.Midfielder, 8),
		SamplePlayer("m2", players.Midfielder, 7),
		SamplePlayer("f1", players.Forward, 9),
		SamplePlayer("f2", players.Forward, 6),
	}
}

// IDs returns the ids of the given players in order.
func IDs(roster []players.Player) []string {
	out := make([]string, len(roster))
	for i, p := range roster {
		out[i] = p.ID
	}
	return out
}
