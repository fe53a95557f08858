// Package render pretty-prints a sokoban board to a string, the way
// examples/sokoban/main.go's print/valueOf/reverse functions did for the
// teacher's own byte-bitmask board, adapted here to work off the sokoban
// package's Grid/Boxes/Pos types instead of a flat byte slice.
package render

import (
	"strings"

	"github.com/bertbaron/sokoban"
)

// Board renders grid with the given box positions, player position, and
// goal set into the standard Sokoban character grid (spec.md §6): '#'
// wall, ' ' floor, '.' goal, '$' box, '*' box-on-goal, '@' player, '+'
// player-on-goal.
func Board(grid *sokoban.Grid, boxes sokoban.Boxes, player sokoban.Pos, goals sokoban.Boxes) string {
	var b strings.Builder
	for r := 0; r < grid.Height(); r++ {
		for c := 0; c < grid.Width(); c++ {
			p := sokoban.Pos{R: int8(r), C: int8(c)}
			b.WriteByte(cellChar(grid, boxes, goals, player, p))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func cellChar(grid *sokoban.Grid, boxes, goals sokoban.Boxes, player sokoban.Pos, p sokoban.Pos) byte {
	onGoal := goals.Contains(p)
	onBox := boxes.Contains(p)
	onPlayer := p == player

	switch {
	case grid.IsWall(p):
		return '#'
	case onPlayer && onGoal:
		return '+'
	case onPlayer:
		return '@'
	case onBox && onGoal:
		return '*'
	case onBox:
		return '$'
	case onGoal:
		return '.'
	default:
		return ' '
	}
}
