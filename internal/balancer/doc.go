// Package balancer splits a pool of selected players into two teams.
//
// The split is a deterministic single-pass greedy heuristic rather than an
// optimal search. Players are first collapsed into one position bucket each,
// goalkeepers are split one per side, every outfield bucket is dealt out in a
// snake pattern by rating, odd leftovers go to the side with the lower average,
// and a final pass evens out team sizes without stripping a side's only keeper.
//
// Given the same input order Balance always returns the same teams. Callers
// that want a different but equally valid split pass a Shuffle'd copy.
package balancer
