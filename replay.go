package sokoban

import "fmt"

// Step is a snapshot of the board immediately after one applied move, used
// by callers (cmd/sokoban's replay command) that want to display the board
// as it evolves rather than only the final outcome.
type Step struct {
	Move   byte
	Player Pos
	Boxes  Boxes
	Pushed bool
}

// Replay simulates moves (a string over {U,D,L,R,u,d,l,r}) against the
// level described by rows, following ordinary Sokoban mechanics: a
// lowercase step walks the player into an adjacent empty cell; an
// uppercase step pushes the box in front of the player one cell further
// in the same direction, provided the destination is empty. It reports
// whether every box ends the walk on a goal square — the soundness
// property spec.md §8 requires of any move string this package returns.
//
// Replay is independent of the search engine: it only re-derives the
// grid/boxes/goals from rows and mechanically applies moves, so it is
// suitable as an external check on a Solve result. The player only moves
// by the steps in moves, so a push-only move string (the default Solve
// output, with no walk steps) replays only when each push starts where the
// previous one ended; an Options.Interleaved result replays in full.
func Replay(rows []string, moves string) (solved bool, err error) {
	_, boxes, goals, err := replaySteps(rows, moves, nil)
	if err != nil {
		return false, err
	}
	return onGoal(boxes, goals), nil
}

// ReplaySteps is like Replay but also returns a Step per applied move, so a
// caller can render the board as it progresses.
func ReplaySteps(rows []string, moves string) ([]Step, bool, error) {
	var steps []Step
	player, boxes, goals, err := replaySteps(rows, moves, &steps)
	_ = player
	if err != nil {
		return nil, false, err
	}
	return steps, onGoal(boxes, goals), nil
}

func replaySteps(rows []string, moves string, steps *[]Step) (Pos, Boxes, Boxes, error) {
	level, err := parseGrid(rows)
	if err != nil {
		return Pos{}, nil, nil, err
	}

	grid := level.grid
	boxes := level.boxes.clone()
	player := level.player

	for i, ch := range []byte(moves) {
		d := directionFor(ch)
		if d == nil {
			return Pos{}, nil, nil, fmt.Errorf("sokoban: replay: invalid move character %q at index %d", ch, i)
		}

		target := player.add(*d)
		if grid.IsWall(target) {
			return Pos{}, nil, nil, fmt.Errorf("sokoban: replay: move %q at index %d walks into a wall", ch, i)
		}

		pushed := false
		if isUpper(ch) {
			idx := boxes.indexOf(target)
			if idx < 0 {
				return Pos{}, nil, nil, fmt.Errorf("sokoban: replay: push %q at index %d has no box to push", ch, i)
			}
			beyond := target.add(*d)
			if grid.IsWall(beyond) || boxes.contains(beyond) {
				return Pos{}, nil, nil, fmt.Errorf("sokoban: replay: push %q at index %d is blocked", ch, i)
			}
			boxes = boxes.withReplacement(target, beyond)
			player = target
			pushed = true
		} else {
			if boxes.contains(target) {
				return Pos{}, nil, nil, fmt.Errorf("sokoban: replay: walk %q at index %d is blocked by a box", ch, i)
			}
			player = target
		}

		if steps != nil {
			*steps = append(*steps, Step{Move: ch, Player: player, Boxes: boxes.clone(), Pushed: pushed})
		}
	}

	return player, boxes, level.goals, nil
}

func isUpper(ch byte) bool {
	return ch >= 'A' && ch <= 'Z'
}

func directionFor(ch byte) *dir {
	for i, d := range directions {
		if d.push == ch || d.walk == ch {
			return &directions[i]
		}
	}
	return nil
}
