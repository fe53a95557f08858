package sokoban

import "testing"

func TestHeuristicGreedyMatchPrefersDisjointGoals(t *testing.T) {
	// Two boxes, two goals, in a straight corridor:
	//   box1 box2 goal1 goal2 floor
	// Manhattan-summing each box to its nearest goal independently would
	// double count goal1; the matching heuristic must assign one box per
	// goal.
	rows := []string{
		"########",
		"#@$$.. #",
		"########",
	}
	level, err := parseGrid(rows)
	if err != nil {
		t.Fatalf("parseGrid: %v", err)
	}
	distanceMaps := make([]distanceMap, len(level.goals))
	for i, g := range level.goals {
		distanceMaps[i] = computeDistanceMap(level.grid, g)
	}
	h := heuristicGreedyMatch(level.boxes, distanceMaps)
	if h == MaxHeuristic {
		t.Fatalf("expected a finite heuristic value")
	}
	if h == 0 {
		t.Errorf("expected a positive lower bound, got 0")
	}
}

func TestHeuristicGreedyMatchUnmatchableIsSentinel(t *testing.T) {
	// A box that is walled off from every goal must report MaxHeuristic.
	rows := []string{
		"#####",
		"#@#.#",
		"#$# #",
		"#####",
	}
	level, err := parseGrid(rows)
	if err != nil {
		t.Fatalf("parseGrid: %v", err)
	}
	distanceMaps := make([]distanceMap, len(level.goals))
	for i, g := range level.goals {
		distanceMaps[i] = computeDistanceMap(level.grid, g)
	}
	h := heuristicGreedyMatch(level.boxes, distanceMaps)
	if h != MaxHeuristic {
		t.Errorf("h = %d, want MaxHeuristic (box is unreachable from the goal)", h)
	}
}

func TestHeuristicAdmissibleOnInitialState(t *testing.T) {
	// The heuristic must never exceed the true optimal push count.
	rows := []string{
		"#####",
		"# @ #",
		"#.$.#",
		"# $ #",
		"#.$ #",
		"#####",
	}
	sol, ok := mustSolve(t, rows)
	if !ok {
		t.Fatalf("expected a solution")
	}
	level, err := parseGrid(rows)
	if err != nil {
		t.Fatalf("parseGrid: %v", err)
	}
	distanceMaps := make([]distanceMap, len(level.goals))
	for i, g := range level.goals {
		distanceMaps[i] = computeDistanceMap(level.grid, g)
	}
	h := heuristicGreedyMatch(level.boxes, distanceMaps)
	if uint32(h) > uint32(sol.Pushes) {
		t.Errorf("heuristic %d exceeds true optimal push count %d", h, sol.Pushes)
	}
}
