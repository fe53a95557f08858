package sokoban

// quadrants lists the four diagonal directions (dr, dc) around a box that
// frozenBlock checks, one 2x2 square per quadrant.
var quadrants = [4][2]int8{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

func isBlocked(grid *Grid, boxes Boxes, p Pos) bool {
	return grid.IsWall(p) || boxes.contains(p)
}

// frozenBlock implements the dynamic 2x2 frozen-square test (spec.md
// §4.5 test 2): for each diagonal quadrant around the just-pushed box, if
// the two orthogonally adjacent cells and the diagonal cell are all
// blocked (wall or box) and at least one of the four cells in that 2x2
// holds a box that is not on a goal, the box can never move again.
//
// Only the 2x2 squares touching the just-pushed box are checked — a
// full-configuration scan would be quadratic and is deliberately left out
// (spec.md §9), on the understanding that every other box was already
// cleared by this same test when it was pushed.
func frozenBlock(box Pos, boxes, goals Boxes, grid *Grid) bool {
	for _, q := range quadrants {
		dr, dc := q[0], q[1]
		vertical := Pos{box.R + dr, box.C}
		horizontal := Pos{box.R, box.C + dc}
		diagonal := Pos{box.R + dr, box.C + dc}

		if !isBlocked(grid, boxes, vertical) || !isBlocked(grid, boxes, horizontal) || !isBlocked(grid, boxes, diagonal) {
			continue
		}

		corners := [4]Pos{box, vertical, horizontal, diagonal}
		for _, p := range corners {
			if boxes.contains(p) && !goals.contains(p) {
				return true
			}
		}
	}
	return false
}

// axisLocked implements the axis-lock test (spec.md §4.5 test 3): any box
// not already on a goal is dead if walls bracket it on one axis and
// either neighbor on the other axis is blocked (wall or box). Runs over
// every box in the configuration, not just the one just pushed.
func axisLocked(boxes, goals Boxes, grid *Grid) bool {
	for _, b := range boxes {
		if goals.contains(b) {
			continue
		}
		up := grid.IsWall(Pos{b.R - 1, b.C})
		down := grid.IsWall(Pos{b.R + 1, b.C})
		left := grid.IsWall(Pos{b.R, b.C - 1})
		right := grid.IsWall(Pos{b.R, b.C + 1})

		hBlocked := isBlocked(grid, boxes, Pos{b.R, b.C - 1}) || isBlocked(grid, boxes, Pos{b.R, b.C + 1})
		vBlocked := isBlocked(grid, boxes, Pos{b.R - 1, b.C}) || isBlocked(grid, boxes, Pos{b.R + 1, b.C})

		if (up && down && hBlocked) || (left && right && vBlocked) {
			return true
		}
	}
	return false
}
