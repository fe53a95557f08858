package sokoban

import "sort"

// MaxHeuristic is the sentinel returned when fewer than len(boxes) boxes
// can be matched to distinct goals — the configuration is unsolvable and
// should be pruned, per spec.md §4.6.
const MaxHeuristic = ^uint32(0)

type edge struct {
	dist uint16
	box  uint8
	goal uint8
}

// heuristicGreedyMatch returns a lower bound on the remaining number of
// pushes to place every box on a goal: it builds the edge set (distance,
// box, goal) for every finite-distance box/goal pair, sorts ascending by
// distance, and greedily assigns each edge whose box and goal are both
// still free, tracking assignment with bitmasks (boxes and goals are each
// capped at MaxBoxes, so a single uint16 masks either set).
//
// This is not the optimal assignment (that would need Hungarian, O(n^3));
// greedy is O(E log E) and, since every edge distance is itself an
// admissible lower bound for that one box, the greedy sum is still an
// admissible lower bound for the whole configuration (spec.md §4.6).
func heuristicGreedyMatch(boxes Boxes, distanceMaps []distanceMap) uint32 {
	edges := make([]edge, 0, len(boxes)*len(distanceMaps))
	for bi, box := range boxes {
		for gi, dm := range distanceMaps {
			d := dm.at(box)
			if d != MaxDistance {
				edges = append(edges, edge{d, uint8(bi), uint8(gi)})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].dist < edges[j].dist })

	var total uint32
	var matchedBoxes, takenGoals uint16
	need := len(boxes)
	matched := 0

	for _, e := range edges {
		bMask := uint16(1) << e.box
		gMask := uint16(1) << e.goal
		if matchedBoxes&bMask != 0 || takenGoals&gMask != 0 {
			continue
		}
		total += uint32(e.dist)
		matchedBoxes |= bMask
		takenGoals |= gMask
		matched++
		if matched == need {
			return total
		}
	}
	return MaxHeuristic
}
