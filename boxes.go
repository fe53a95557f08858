package sokoban

import "sort"

// Boxes is the canonical form of a box configuration: the sorted sequence
// of box positions. Boxes are interchangeable — the only identity of a
// configuration is the *set* of occupied cells — so a strictly sorted
// sequence gives cheap equality and a cheap hash key without the overhead
// of a general set type.
type Boxes []Pos

func (b Boxes) Len() int           { return len(b) }
func (b Boxes) Less(i, j int) bool { return b[i].less(b[j]) }
func (b Boxes) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }

func (b Boxes) sort() {
	sort.Sort(b)
}

// clone returns an independent copy, used whenever a successor state
// replaces one box position (the original configuration must remain
// untouched since the priority queue may still hold it).
func (b Boxes) clone() Boxes {
	cp := make(Boxes, len(b))
	copy(cp, b)
	return cp
}

// contains reports whether p is one of the box positions, via binary
// search over the sorted slice.
func (b Boxes) contains(p Pos) bool {
	return b.indexOf(p) >= 0
}

// Contains reports whether p is one of the box positions. Exported for
// callers outside the package (internal/render) that need to test a
// position against a box or goal set without reimplementing the search.
func (b Boxes) Contains(p Pos) bool {
	return b.contains(p)
}

func (b Boxes) indexOf(p Pos) int {
	i := sort.Search(len(b), func(i int) bool { return !b[i].less(p) })
	if i < len(b) && b[i] == p {
		return i
	}
	return -1
}

// withReplacement returns a new, re-sorted Boxes with the box at oldPos
// moved to newPos. Panics if oldPos is not a current box position — a
// violation of the search loop's own invariant, not recoverable input.
func (b Boxes) withReplacement(oldPos, newPos Pos) Boxes {
	idx := b.indexOf(oldPos)
	if idx < 0 {
		panic("sokoban: withReplacement: oldPos is not a box position")
	}
	next := b.clone()
	next[idx] = newPos
	next.sort()
	return next
}

// key renders the configuration as a byte string suitable for use as a map
// key: two configurations compare equal under key iff they contain the
// same set of positions, which (since the slice is kept sorted) is exactly
// slice equality.
func (b Boxes) key() string {
	buf := make([]byte, len(b)*2)
	for i, p := range b {
		buf[2*i] = byte(p.R)
		buf[2*i+1] = byte(p.C)
	}
	return string(buf)
}

// onGoal reports whether every box in b sits on one of goals. Both slices
// are sorted, so a linear merge would suffice, but goals is at most 15
// elements and this is called once per popped state, so contains' binary
// search is simpler and plenty fast.
func onGoal(boxes, goals Boxes) bool {
	for _, p := range boxes {
		if !goals.contains(p) {
			return false
		}
	}
	return true
}
