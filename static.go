package sokoban

// MaxDistance is the sentinel for "unreachable" in a distanceMap. It is
// the maximum value of the map's element width, matching spec.md
// §3/§7's "numeric sentinel" rule: arithmetic that would sum a sentinel
// must short-circuit before overflow, which heuristic.go does by checking
// for this exact value rather than ever adding it in.
const MaxDistance = ^uint16(0)

// distanceMap holds, for one goal, the shortest walking distance around
// walls from any cell to that goal, ignoring every other box and where the
// player would have to stand; it is never more than the pushes needed to
// move a box from that cell to the goal. Cells the goal cannot be reached
// from (through walls) hold MaxDistance.
type distanceMap [][]uint16

func (d distanceMap) at(p Pos) uint16 {
	return d[p.R][p.C]
}

// deadSquares computes, for the given terrain and goal set, the set of
// cells from which no box can ever reach any goal.
//
// It runs a reverse-push flood from the goals: a cell c is "alive" if some
// goal is reachable from it by a sequence of pushes. From an already-alive
// cell c, the previous box position for a push in direction d would be
// c-d, with the player then standing at c-2d; if both of those cells exist
// and are not walls, c-d is alive too (boxes at other cells never block
// this — it is a purely static, box-position-independent reachability
// question, per spec.md §4.1). The dead mask is the complement of the
// alive set.
func deadSquares(grid *Grid, goals Boxes) [][]bool {
	height, width := grid.Height(), grid.Width()
	alive := make([][]bool, height)
	for r := range alive {
		alive[r] = make([]bool, width)
	}

	stack := make([]Pos, 0, height*width)
	for _, g := range goals {
		alive[g.R][g.C] = true
		stack = append(stack, g)
	}

	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]

		for _, d := range directions {
			prevBox := cur.sub(d)
			player := Pos{cur.R - 2*d.dr, cur.C - 2*d.dc}
			if !grid.inBounds(prevBox) || !grid.inBounds(player) {
				continue
			}
			if grid.IsWall(prevBox) || grid.IsWall(player) {
				continue
			}
			if !alive[prevBox.R][prevBox.C] {
				alive[prevBox.R][prevBox.C] = true
				stack = append(stack, prevBox)
			}
		}
	}

	dead := make([][]bool, height)
	for r := range dead {
		dead[r] = make([]bool, width)
		for c := range dead[r] {
			dead[r][c] = !alive[r][c]
		}
	}
	return dead
}

// computeDistanceMap runs a breadth-first expansion from goal, treating
// only walls as obstacles (other boxes are ignored — this yields an
// admissible lower bound when later summed by the matching heuristic).
func computeDistanceMap(grid *Grid, goal Pos) distanceMap {
	height, width := grid.Height(), grid.Width()
	dist := make(distanceMap, height)
	for r := range dist {
		dist[r] = make([]uint16, width)
		for c := range dist[r] {
			dist[r][c] = uint16(MaxDistance)
		}
	}

	queue := make([]Pos, 0, height*width)
	dist[goal.R][goal.C] = 0
	queue = append(queue, goal)

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		curDist := dist[cur.R][cur.C]
		if curDist == uint16(MaxDistance)-1 {
			continue
		}
		for _, d := range directions {
			next := cur.add(d)
			if !grid.inBounds(next) || grid.IsWall(next) {
				continue
			}
			if dist[next.R][next.C] == uint16(MaxDistance) {
				dist[next.R][next.C] = curDist + 1
				queue = append(queue, next)
			}
		}
	}
	return dist
}
