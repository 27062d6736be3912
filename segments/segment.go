// Package segments models the output of the freehand pipeline: strings of
// connected cubic segments.
//
// The pipeline wants an API offering lines and curves; a SegmentString
// represents both by the mathematical abstraction curve, a cubic Bezier
// (curves for straight lines are created straight, with both direction
// control points at the midpoint). Users can subsequently manipulate
// segments the same way regardless of curvature, via control points and the
// relations between them.
package segments

import (
	"errors"
	"fmt"

	freehand "github.com/bootchk/freehandTool"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'freehand.segments'
func tracer() tracing.Trace {
	return tracing.Select("freehand.segments")
}

// ErrNullSegment indicates coincident segment endpoints. During cusp fitting
// this arises from sub-pixel numerical degeneracy and is expected and
// recoverable; it takes many minutes of drawing, usually very small
// movements back and forth, to provoke it.
var ErrNullSegment = errors.New("segment endpoints coincide")

// Segment is one line-like curve of a segment string: a cubic Bezier given
// by four control points in the working plane: start anchor, two direction
// points, end anchor. Segments are immutable once constructed; construction
// fails with ErrNullSegment when the anchors coincide.
type Segment struct {
	points [4]freehand.Pair
}

// NewCurveSegment constructs a cubic segment from its anchors and direction
// control points.
func NewCurveSegment(start, control1, control2, end freehand.Pair) (Segment, error) {
	if start == end {
		return Segment{}, fmt.Errorf("%w: curve at %s", ErrNullSegment, start)
	}
	return Segment{points: [4]freehand.Pair{start, control1, control2, end}}, nil
}

// NewLineSegment constructs a straight segment. The line is represented as a
// cubic whose two direction control points both lie at the midpoint.
func NewLineSegment(start, end freehand.Pair) (Segment, error) {
	if start == end {
		return Segment{}, fmt.Errorf("%w: line at %s", ErrNullSegment, start)
	}
	midpoint := start.Interval(end, 0.5)
	return Segment{points: [4]freehand.Pair{start, midpoint, midpoint, end}}, nil
}

// StartPoint returns the start anchor.
func (s Segment) StartPoint() freehand.Pair {
	return s.points[0]
}

// EndPoint returns the end anchor.
func (s Segment) EndPoint() freehand.Pair {
	return s.points[3]
}

// Control1 returns the direction control point adjacent to the start anchor.
func (s Segment) Control1() freehand.Pair {
	return s.points[1]
}

// Control2 returns the direction control point adjacent to the end anchor.
func (s Segment) Control2() freehand.Pair {
	return s.points[2]
}

// Points returns the four control points in canonical order: start anchor,
// direction points, end anchor.
func (s Segment) Points() [4]freehand.Pair {
	return s.points
}

// IsLine is a predicate: does this segment represent a straight line?
func (s Segment) IsLine() bool {
	midpoint := s.points[0].Interval(s.points[3], 0.5)
	return s.points[1] == midpoint && s.points[2] == midpoint
}

// Pretty Stringer for segments.
func (s Segment) String() string {
	return fmt.Sprintf("%s .. controls %s and %s .. %s",
		s.points[0], s.points[1], s.points[2], s.points[3])
}
