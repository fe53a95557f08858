package sokoban

import "container/heap"

// state is one search node: a box configuration reached after g pushes,
// the player's resting cell, the accumulated move string, and priority
// f = g + h. The priority queue owns live states; a state's Boxes and
// moves are never shared with another state once it leaves its parent.
type state struct {
	boxes  Boxes
	player Pos
	moves  []byte
	g      uint32
	f      uint32
}

// pqueue is a min-heap ordered on (f ascending, g descending), the tie
// break spec.md §4.7 calls for: among equal-f nodes, deeper (higher g)
// nodes pop first, which biases the search toward depth-first behavior on
// cost plateaus and tends to surface a solution sooner. This is the same
// container/heap-backed priority queue shape as the teacher's own
// priorityQueue (bertbaron/solve's pathfinding.go/strategies.go), just
// ordered directly on the (f, g) pair instead of a single float64 value.
type pqueue []*state

func (q pqueue) Len() int { return len(q) }

func (q pqueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].g > q[j].g
}

func (q pqueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *pqueue) Push(x any) {
	*q = append(*q, x.(*state))
}

func (q *pqueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// Options control the shape of the returned move string.
type Options struct {
	// Interleaved, when true, includes the lowercase player-walk steps
	// between pushes. When false (the default), the returned move string
	// contains only the uppercase push characters (spec.md §9 Open
	// Question, resolved in favor of push-only as the default — see
	// SPEC_FULL.md §4).
	Interleaved bool
}

// Solution is a successful Solve result.
type Solution struct {
	// Moves is the move string: uppercase pushes, and (if Options.Interleaved
	// was set) lowercase walk steps between them.
	Moves string
	// Pushes is the number of uppercase characters in Moves — the
	// quantity this package minimizes.
	Pushes int
	// Visited is the number of states popped off the priority queue.
	Visited int
	// Expanded is the number of successor states pushed onto the priority
	// queue (the initial state is not counted).
	Expanded int
}

// Solver runs repeated solves against one Puzzle, reusing its scratch
// buffers across calls; the priority queue and visited set are created
// fresh by each Solve call. It is not safe
// for concurrent use by multiple goroutines; create one Solver per
// goroutine (Puzzle itself is read-only and safe to share).
type Solver struct {
	puzzle *Puzzle
	s      *scratch
	// norm is used by player normalization, so that it does not overwrite
	// the popped state's reachable mask in s while successors are generated.
	norm *scratch
}

// NewSolver creates a Solver bound to p, allocating its scratch buffers
// once up front.
func (p *Puzzle) NewSolver() *Solver {
	return &Solver{
		puzzle: p,
		s:      newScratch(p.grid.Height(), p.grid.Width()),
		norm:   newScratch(p.grid.Height(), p.grid.Width()),
	}
}

// Solve runs the best-first search described in spec.md §4.7 and returns
// the optimal (minimum push count) solution, or ok=false if the puzzle has
// no solution.
func (sv *Solver) Solve(opts Options) (Solution, bool) {
	p := sv.puzzle
	grid := p.grid

	visited := make(map[string]struct{}, 1<<16)
	queue := make(pqueue, 0, 1<<10)
	heap.Init(&queue)

	normPlayer := normalizePlayer(grid, p.boxes, p.player, sv.s)
	visited[visitKey(p.boxes, normPlayer)] = struct{}{}

	root := &state{
		boxes:  p.boxes,
		player: p.player,
		g:      0,
		f:      heuristicGreedyMatch(p.boxes, p.distanceMaps),
	}
	heap.Push(&queue, root)

	visitedCount := 0
	expandedCount := 0

	for queue.Len() > 0 {
		cur := heap.Pop(&queue).(*state)
		visitedCount++

		if onGoal(cur.boxes, p.goals) {
			return Solution{
				Moves:    string(cur.moves),
				Pushes:   countPushes(cur.moves),
				Visited:  visitedCount,
				Expanded: expandedCount,
			}, true
		}

		markReachableWithPath(grid, cur.boxes, cur.player, sv.s)

		for _, box := range cur.boxes {
			for _, d := range directions {
				playerOrigin := box.sub(d)
				newBoxPos := box.add(d)

				if !grid.inBounds(playerOrigin) || !sv.s.reachable[playerOrigin.R][playerOrigin.C] {
					continue
				}
				if !grid.inBounds(newBoxPos) || p.dead[newBoxPos.R][newBoxPos.C] {
					continue
				}
				if grid.IsWall(newBoxPos) || cur.boxes.contains(newBoxPos) {
					continue
				}

				newBoxes := cur.boxes.withReplacement(box, newBoxPos)

				if frozenBlock(newBoxPos, newBoxes, p.goals, grid) {
					continue
				}
				if axisLocked(newBoxes, p.goals, grid) {
					continue
				}

				normPlayer := normalizePlayer(grid, newBoxes, box, sv.norm)
				key := visitKey(newBoxes, normPlayer)
				if _, seen := visited[key]; seen {
					continue
				}
				visited[key] = struct{}{}

				h := heuristicGreedyMatch(newBoxes, p.distanceMaps)
				if h >= MaxHeuristic {
					continue
				}

				walk := reconstructPath(playerOrigin, cur.player, sv.s.predecessor)
				moves := make([]byte, 0, len(cur.moves)+len(walk)+1)
				moves = append(moves, cur.moves...)
				if opts.Interleaved {
					moves = append(moves, walk...)
				}
				moves = append(moves, d.push)

				next := &state{
					boxes:  newBoxes,
					player: box,
					moves:  moves,
					g:      cur.g + 1,
					f:      cur.g + 1 + h,
				}
				heap.Push(&queue, next)
				expandedCount++
			}
		}
	}

	return Solution{}, false
}

func visitKey(boxes Boxes, player Pos) string {
	buf := make([]byte, 0, len(boxes)*2+2)
	buf = append(buf, byte(player.R), byte(player.C))
	for _, p := range boxes {
		buf = append(buf, byte(p.R), byte(p.C))
	}
	return string(buf)
}

func countPushes(moves []byte) int {
	n := 0
	for _, m := range moves {
		if m >= 'A' && m <= 'Z' {
			n++
		}
	}
	return n
}
