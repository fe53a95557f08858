package sokoban

import "testing"

func mustParse(t *testing.T, rows []string) *parsedLevel {
	t.Helper()
	level, err := parseGrid(rows)
	if err != nil {
		t.Fatalf("parseGrid: %v", err)
	}
	return level
}

func TestDeadSquaresCornerIsDead(t *testing.T) {
	rows := []string{
		"#####",
		"#@$ #",
		"#  .#",
		"#####",
	}
	level := mustParse(t, rows)
	dead := deadSquares(level.grid, level.goals)

	// A box pushed into the top-left corner (1,1) can never reach the
	// goal at (2,3): no sequence of pushes walks it out of a corner.
	if !dead[1][1] {
		t.Errorf("expected (1,1) corner to be dead")
	}
	if dead[2][3] {
		t.Errorf("expected the goal cell itself to be alive")
	}
}

func TestDeadSquareMonotonicityUnderAddedWalls(t *testing.T) {
	open := mustParse(t, []string{
		"######",
		"#@  .#",
		"#   $#",
		"######",
	})
	walled := mustParse(t, []string{
		"######",
		"#@# .#",
		"#   $#",
		"######",
	})

	deadOpen := deadSquares(open.grid, open.goals)
	deadWalled := deadSquares(walled.grid, walled.goals)

	// Adding walls must never turn a dead cell into an alive one.
	for r := range deadOpen {
		for c := range deadOpen[r] {
			if deadOpen[r][c] && !deadWalled[r][c] {
				t.Errorf("cell (%d,%d) was dead and became alive after adding walls", r, c)
			}
		}
	}
}

func TestComputeDistanceMapIgnoresBoxes(t *testing.T) {
	level := mustParse(t, []string{
		"#####",
		"#@$.#",
		"#####",
	})
	goal := level.goals[0]
	dm := computeDistanceMap(level.grid, goal)

	if dm.at(goal) != 0 {
		t.Errorf("distance to goal itself = %d, want 0", dm.at(goal))
	}
	if dm.at(Pos{1, 1}) != 2 {
		t.Errorf("distance from player cell = %d, want 2", dm.at(Pos{1, 1}))
	}
	if dm.at(Pos{0, 0}) != MaxDistance {
		t.Errorf("distance to a wall cell should be the sentinel")
	}
}
