// Package sokoban solves Sokoban puzzles optimally in box-push count.
//
// Given a rectangular character grid (walls, floor, goals, the player, and
// one or more boxes), Solve returns the shortest sequence of box pushes —
// optionally interleaved with the player walks needed to reach each push —
// that places every box on a goal, or reports that no solution exists.
//
// The search is a best-first search over macro moves (one state per box
// push, not per player step): states are canonicalized by sorting box
// positions and normalizing the player to the lexicographically smallest
// cell it can freely walk to, so that two paths reaching the same
// configuration by a different walk collapse to one visited state. An
// admissible heuristic (greedy bipartite matching of boxes to goals over
// precomputed per-goal distance maps) together with static and dynamic
// deadlock pruning keeps the search tractable on nontrivial levels.
//
// The package supports at most 15 boxes and grids up to 127x127, matching
// the bit-width of its internal heuristic bitmask and coordinate type.
package sokoban
