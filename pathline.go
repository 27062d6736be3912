package freehand

import "fmt"

// PathLine is one fitted straight run of the pointer path, an ordered pair of
// integer pointer points. A PathLine spans one or more turns; it is not
// necessarily axis-aligned.
//
// A PathLine is null iff both endpoints coincide. Null path lines are valid
// and meaningful (e.g. at stream start, and as flush markers), but must never
// be rendered as segments.
type PathLine struct {
	P1, P2 PointerPoint
}

// NewPathLine constructs a path line between two pointer points.
func NewPathLine(p1, p2 PointerPoint) PathLine {
	return PathLine{P1: p1, P2: p2}
}

// NullPathLine is a zero length path line at a point.
func NullPathLine(p PointerPoint) PathLine {
	return PathLine{P1: p, P2: p}
}

// IsNull is a predicate: do both endpoints coincide?
func (l PathLine) IsNull() bool {
	return l.P1 == l.P2
}

// Pretty Stringer for path lines.
func (l PathLine) String() string {
	if l.IsNull() {
		return fmt.Sprintf("[null at %s]", l.P1)
	}
	return fmt.Sprintf("[%s - %s]", l.P1, l.P2)
}
