package pipeline

import (
	"fmt"

	freehand "github.com/bootchk/freehandTool"
)

// Constraints is the line-fitting funnel: a pair of integer vectors whose
// origin is near the starting turn of the current run. It may help to think
// of them as crossing, from the extremities of the first pixel's corners to
// the "opposite", but nearest to centerline, corner of the extreme pixel in
// the path. The funnel is the cone of directions for which there still
// exists one approximating vector touching all pixels seen since the run
// started.
//
// Both vectors start as the zero vector, meaning unconstrained.
type Constraints struct {
	left, right freehand.PointerPoint
}

// Pretty Stringer for constraint pairs.
func (c *Constraints) String() string {
	return fmt.Sprintf("left %s right %s", c.left, c.right)
}

// Reset returns the funnel to the unconstrained state.
func (c *Constraints) Reset() {
	c.left = freehand.PointerPoint{}
	c.right = freehand.PointerPoint{}
}

// IsViolatedBy is a predicate: does vector v lie outside the funnel?
func (c *Constraints) IsViolatedBy(v freehand.PointerPoint) bool {
	return c.left.Cross(v) < 0 || c.right.Cross(v) > 0
}

// Update widens the funnel to also admit vector v, the direction via all
// turns since the run started. v must satisfy the constraints.
//
// The two candidate vectors are v nudged by ±1 in each coordinate according
// to the signs of v's components (eight-way cardinal adjustment, matching
// pixel-corner geometry; the literal conditions are potrace's). Each side is
// replaced only if doing so does not shrink the funnel, so feeding the same
// vector twice is a fixed point.
func (c *Constraints) Update(v freehand.PointerPoint) {
	ox, oy := -1, -1
	if v.Y >= 0 && (v.Y > 0 || v.X < 0) {
		ox = 1
	}
	if v.X <= 0 && (v.X < 0 || v.Y < 0) {
		oy = 1
	}
	offset := freehand.Pt(v.X+ox, v.Y+oy)
	if c.left.Cross(offset) >= 0 {
		c.left = offset
	}

	ox, oy = -1, -1
	if v.Y <= 0 && (v.Y < 0 || v.X < 0) {
		ox = 1
	}
	if v.X >= 0 && (v.X > 0 || v.Y < 0) {
		oy = 1
	}
	offset = freehand.Pt(v.X+ox, v.Y+oy)
	if c.right.Cross(offset) <= 0 {
		c.right = offset
	}
}
