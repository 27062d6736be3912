/*
Package freehand implements incremental tracing of freehand pointer strokes
into vector paths of straight lines and cubic splines.

Tracing means generating vector graphics from a discrete point sequence.
Batch tracers (notably potrace) see the complete input before they start.
Here the input is a live stream of pointer positions (mouse, pen, touch),
and segments are generated while the user is still drawing: every incoming
position is absorbed in O(1) amortized work and partial results are emitted
as soon as they are geometrically certain.

This root package holds the geometry primitives shared by the pipeline
stages: integer-valued points of the pointer device plane (PointerPoint),
real-valued points of the working plane (Pair), and the integer straight-run
approximation exchanged between the fitting stages (PathLine).

The streaming stages themselves live in package pipeline, the generated
segment model in package segments, and polygon views of finished strokes in
package polygon.

# License

Copyright (c) Lloyd Konneker

This is free software, covered by the GNU General Public License.

Please refer to the license file for more information.
*/
package freehand

import "fmt"

// === Pointer Plane (integers) ==============================================

// PointerPoint is an integer-valued point in pointer device space.
// Equality is exact. We frequently use the vector interpretation of a point
// (having a direction), especially for Cross.
type PointerPoint struct {
	X, Y int
}

// Pt is a quick notation for constructing a pointer point from ints.
func Pt(x, y int) PointerPoint {
	return PointerPoint{X: x, Y: y}
}

// Pretty Stringer for pointer points.
func (p PointerPoint) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Sub returns the vector p − q.
func (p PointerPoint) Sub(q PointerPoint) PointerPoint {
	return PointerPoint{X: p.X - q.X, Y: p.Y - q.Y}
}

// Cross is the 2-D vector cross product p × q. The result is an int,
// with no loss of precision.
func (p PointerPoint) Cross(q PointerPoint) int {
	return p.X*q.Y - p.Y*q.X
}

// Pair maps a pointer point into the real-valued working plane.
func (p PointerPoint) Pair() Pair {
	return P(float64(p.X), float64(p.Y))
}

// === Working Plane (reals) =================================================

// Pair is a real-valued 2D-point, used where the fitting math is real.
type Pair complex128

// P is a quick notation for constructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// Interval returns the point a fraction of the way along the line from p to
// other, i.e. a fractional sect (e.g. bisect) between vectors.
func (p Pair) Interval(other Pair, fraction float64) Pair {
	return P(p.X()+fraction*(other.X()-p.X()),
		p.Y()+fraction*(other.Y()-p.Y()))
}

// CardinalLeft90 returns a vector 90 degrees counterclockwise from
// other − p, clamped to one of the eight cardinal directions (n, nw, w, ...).
func (p Pair) CardinalLeft90(other Pair) Pair {
	return P(-sgn(other.Y()-p.Y()), sgn(other.X()-p.X()))
}

func sgn(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
