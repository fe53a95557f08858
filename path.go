package sokoban

// reconstructPath walks predecessor backward from dest to start and
// returns the forward lowercase walk sequence (spec.md §4.8). predecessor
// entries are the direction character of the step that *arrived* at each
// cell, so walking backward applies the inverse direction at each step;
// the accumulated (reversed) sequence is reversed once more before
// returning.
func reconstructPath(dest, start Pos, predecessor [][]byte) []byte {
	if dest == start {
		return nil
	}

	rev := make([]byte, 0, 16)
	cur := dest
	maxLen := len(predecessor) * len(predecessor[0])

	for i := 0; i < maxLen && cur != start; i++ {
		step := predecessor[cur.R][cur.C]
		if step == 0 {
			break
		}
		rev = append(rev, step)
		cur = cur.sub(walkDir(step))
	}

	for l, r := 0, len(rev)-1; l < r; l, r = l+1, r-1 {
		rev[l], rev[r] = rev[r], rev[l]
	}
	return rev
}
