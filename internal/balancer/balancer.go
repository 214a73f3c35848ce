package balancer

import (
	"errors"
	"math"
	"math/rand"
	"sort"

	"squad-maker-service/internal/domain/players"
	"squad-maker-service/internal/domain/teams"
)

// MinPlayers is the smallest pool Balance accepts.
const MinPlayers = 2

// nearTie is the average-rating gap below which team size wins over rating.
const nearTie = 0.1

// ErrInsufficientPlayers is returned when fewer than MinPlayers are supplied.
var ErrInsufficientPlayers = errors.New("need at least 2 players to create teams")

// outfieldOrder is the order outfield buckets are dealt out in.
var outfieldOrder = []players.Position{players.Defender, players.Midfielder, players.Forward}

// Balance partitions roster into Team A and Team B. The input slice is not modified.
func Balance(roster []players.Player) (teams.Team, teams.Team, error) {
	if len(roster) < MinPlayers {
		return teams.Team{}, teams.Team{}, ErrInsufficientPlayers
	}

	a := teams.New(teams.TeamA)
	b := teams.New(teams.TeamB)

	buckets, unplaced := bucketByPosition(roster)

	keepers := sortByRating(buckets[players.Goalkeeper])
	var surplus []players.Player
	for i, gk := range keepers {
		switch i {
		case 0:
			a.Add(gk)
		case 1:
			b.Add(gk)
		default:
			surplus = append(surplus, gk)
		}
	}

	for _, pos := range outfieldOrder {
		dealBucket(&a, &b, sortByRating(buckets[pos]))
	}

	for _, p := range surplus {
		assignToLowerAverage(&a, &b, p)
	}
	for _, p := range unplaced {
		assignToLowerAverage(&a, &b, p)
	}

	evenOutSizes(&a, &b, len(roster))

	a.Recompute()
	b.Recompute()
	return a, b, nil
}

// Shuffle returns a shuffled copy of roster. A nil rng uses the package-level source.
func Shuffle(roster []players.Player, rng *rand.Rand) []players.Player {
	out := append([]players.Player(nil), roster...)
	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
	if rng == nil {
		rand.Shuffle(len(out), swap)
	} else {
		rng.Shuffle(len(out), swap)
	}
	return out
}

// bucketByPosition puts every player into the eligible position that currently
// holds the fewest players, earlier listed positions winning ties. Players with
// no recognised position are returned separately.
func bucketByPosition(roster []players.Player) (map[players.Position][]players.Player, []players.Player) {
	buckets := make(map[players.Position][]players.Player, len(players.AllPositions))
	var unplaced []players.Player

	for _, p := range roster {
		best := players.Position("")
		for _, pos := range p.Positions {
			if !pos.Valid() {
				continue
			}
			if best == "" || len(buckets[pos]) < len(buckets[best]) {
				best = pos
			}
		}
		if best == "" {
			unplaced = append(unplaced, p)
			continue
		}
		buckets[best] = append(buckets[best], p)
	}
	return buckets, unplaced
}

// sortByRating returns a copy ordered by rating, highest first. Ties keep input order.
func sortByRating(bucket []players.Player) []players.Player {
	out := append([]players.Player(nil), bucket...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})
	return out
}

// dealBucket splits the largest even prefix as A, B, B, A, B, A, ... and hands an
// odd last player to the lower-average side.
func dealBucket(a, b *teams.Team, sorted []players.Player) {
	even := len(sorted) / 2 * 2
	for i := 0; i < even; i++ {
		if snakeToA(i) {
			a.Add(sorted[i])
		} else {
			b.Add(sorted[i])
		}
	}
	if even < len(sorted) {
		assignToLowerAverage(a, b, sorted[even])
	}
}

func snakeToA(i int) bool {
	switch i {
	case 0:
		return true
	case 1:
		return false
	}
	return i%2 == 1
}

// assignToLowerAverage gives p to the side with the lower average rating. When
// the averages are within nearTie and the sizes differ, the smaller side wins.
func assignToLowerAverage(a, b *teams.Team, p players.Player) {
	avgA := teams.AverageRating(a.Players)
	avgB := teams.AverageRating(b.Players)

	if math.Abs(avgA-avgB) < nearTie && a.Size() != b.Size() {
		if a.Size() < b.Size() {
			a.Add(p)
		} else {
			b.Add(p)
		}
		return
	}
	if avgA <= avgB {
		a.Add(p)
		return
	}
	b.Add(p)
}

// evenOutSizes moves the lowest-rated movable player from the larger side until
// the sizes differ by at most one. It gives up when nothing can move.
func evenOutSizes(a, b *teams.Team, limit int) {
	for i := 0; i < limit; i++ {
		larger, smaller := a, b
		if b.Size() > a.Size() {
			larger, smaller = b, a
		}
		if larger.Size()-smaller.Size() <= 1 {
			return
		}
		idx := lowestMovable(*larger)
		if idx < 0 {
			return
		}
		// The player is known to be in larger, so the move cannot fail.
		_ = teams.MovePlayer(larger, smaller, larger.Players[idx].ID, nil)
	}
}

// lowestMovable returns the index of the lowest-rated player that can leave t
// without leaving it keeperless, or -1.
func lowestMovable(t teams.Team) int {
	keepers := t.Goalkeepers()
	best := -1
	for i, p := range t.Players {
		if p.IsGoalkeeper() && keepers <= 1 {
			continue
		}
		if best < 0 || p.Rating < t.Players[best].Rating {
			best = i
		}
	}
	return best
}
