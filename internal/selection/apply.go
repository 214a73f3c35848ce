package selection

import "squad-maker-service/internal/domain/players"

// Apply returns a copy of roster with IsSelected set from ids. Ids not in the roster are ignored.
func Apply(roster []players.Player, ids []string) []players.Player {
	selected := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		selected[id] = struct{}{}
	}
	out := make([]players.Player, len(roster))
	for i, p := range roster {
		p = p.Clone()
		_, p.IsSelected = selected[p.ID]
		out[i] = p
	}
	return out
}

// Selected filters roster down to the players marked selected, preserving order.
func Selected(roster []players.Player) []players.Player {
	out := make([]players.Player, 0, len(roster))
	for _, p := range roster {
		if p.IsSelected {
			out = append(out, p)
		}
	}
	return out
}
