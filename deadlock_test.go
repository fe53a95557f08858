package sokoban

import "testing"

func TestFrozenBlockDetectsCornerPair(t *testing.T) {
	// Two boxes pushed together into a corner: neither box nor its
	// diagonal/orthogonal neighbors can ever move again, and neither box
	// sits on a goal.
	level := mustParse(t, []string{
		"#####",
		"#$$.#",
		"#@ .#",
		"#####",
	})
	if !frozenBlock(Pos{1, 1}, level.boxes, level.goals, level.grid) {
		t.Errorf("expected the corner-pair box at (1,1) to be frozen")
	}
}

func TestFrozenBlockNotTriggeredWhenBoxOnGoal(t *testing.T) {
	// Same shape, but every box in the quadrant already sits on a goal:
	// the configuration is a finished state, not a deadlock.
	level := mustParse(t, []string{
		"#####",
		"#** #",
		"#@  #",
		"#####",
	})
	if frozenBlock(Pos{1, 1}, level.boxes, level.goals, level.grid) {
		t.Errorf("did not expect a frozen report when every box in the block is on a goal")
	}
}

func TestFrozenBlockNotTriggeredInOpenSpace(t *testing.T) {
	level := mustParse(t, []string{
		"######",
		"#    #",
		"#  $ #",
		"#   .#",
		"#@   #",
		"######",
	})
	if frozenBlock(Pos{2, 3}, level.boxes, level.goals, level.grid) {
		t.Errorf("did not expect a box in open space to be reported frozen")
	}
}

func TestAxisLockedVerticalCorridor(t *testing.T) {
	// Walls directly above and below the box, and a wall immediately to
	// its right: the box can never be pushed on either axis.
	level := mustParse(t, []string{
		"######",
		"# # .#",
		"#@$# #",
		"# #  #",
		"######",
	})
	if !axisLocked(level.boxes, level.goals, level.grid) {
		t.Errorf("expected the box at (2,2) to be axis-locked")
	}
}

func TestAxisLockedNotTriggeredOnGoal(t *testing.T) {
	level := mustParse(t, []string{
		"######",
		"# #  #",
		"#@*# #",
		"# #  #",
		"######",
	})
	if axisLocked(level.boxes, level.goals, level.grid) {
		t.Errorf("a box already on a goal must never be reported locked")
	}
}

func TestAxisLockedNotTriggeredWithOpenSide(t *testing.T) {
	level := mustParse(t, []string{
		"######",
		"# # .#",
		"#@$  #",
		"# #  #",
		"######",
	})
	if axisLocked(level.boxes, level.goals, level.grid) {
		t.Errorf("did not expect a lock when the box still has an open escape axis")
	}
}
