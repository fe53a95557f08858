package sokoban

import "errors"

// Precondition errors returned by NewPuzzle. These are programmer/input
// errors (malformed level), never returned once a Puzzle is solving.
var (
	ErrEmptyGrid       = errors.New("sokoban: grid has no rows")
	ErrGridTooLarge    = errors.New("sokoban: grid exceeds the 127x127 limit")
	ErrNoPlayer        = errors.New("sokoban: grid has no player")
	ErrNoBoxes         = errors.New("sokoban: grid has no boxes")
	ErrNoGoals         = errors.New("sokoban: grid has no goals")
	ErrBoxGoalMismatch = errors.New("sokoban: number of boxes does not match number of goals")
	ErrTooManyBoxes    = errors.New("sokoban: more than 15 boxes")
)
