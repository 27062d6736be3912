package pipeline

import (
	"errors"
	"fmt"

	freehand "github.com/bootchk/freehandTool"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'freehand.pipeline'
func tracer() tracing.Trace {
	return tracing.Select("freehand.pipeline")
}

var (
	// ErrAmbiguousAxis indicates an attempt to determine axis orientation
	// from two diagonal points.
	ErrAmbiguousAxis = errors.New("cannot determine axis orientation from diagonal points")
)

// Orientation is the three-valued orientation of an axis: horizontal,
// vertical, or not yet known.
type Orientation uint8

const (
	OrientationUnknown Orientation = iota
	Horizontal
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "H"
	case Vertical:
		return "V"
	}
	return "unknown"
}

// Alignment along the fixed axes of the device plane.

func horizontallyAligned(p1, p2 freehand.PointerPoint) bool {
	return p1.Y == p2.Y
}

func verticallyAligned(p1, p2 freehand.PointerPoint) bool {
	return p1.X == p2.X
}

func orthogonal(p1, p2 freehand.PointerPoint) bool {
	return horizontallyAligned(p1, p2) || verticallyAligned(p1, p2)
}

// Axis anchors a run of same-axis positions. States:
//   - only the start position is known, orientation unknown (one point seen)
//   - orientation known (at least two distinct points seen)
//
// Responsibilities: know the start position, lazily determine the three
// valued orientation, decide whether a position is diagonal (off-axis), and
// project a position onto the known axis.
type Axis struct {
	orientation Orientation
	start       freehand.PointerPoint
}

// Reset discards orientation. The given position becomes the anchor.
func (ax *Axis) Reset(start freehand.PointerPoint) {
	ax.orientation = OrientationUnknown
	ax.start = start
}

// ResetStart moves the anchor but keeps the orientation. The new anchor must
// lie on the known axis.
func (ax *Axis) ResetStart(start freehand.PointerPoint) {
	if !ax.onKnownAxis(start) {
		panic(fmt.Sprintf("pipeline: axis anchor %s off the %s axis through %s",
			start, ax.orientation, ax.start))
	}
	ax.start = start
}

// Start returns the anchor position.
func (ax *Axis) Start() freehand.PointerPoint {
	return ax.start
}

// Orientation returns the current orientation (possibly unknown).
func (ax *Axis) Orientation() Orientation {
	return ax.orientation
}

// OrientationKnown is a predicate: has the orientation been determined?
func (ax *Axis) OrientationKnown() bool {
	return ax.orientation != OrientationUnknown
}

// TryDetermineOrientation attempts to determine the orientation from an
// aligned position (even the anchor itself, which is a no-op).
func (ax *Axis) TryDetermineOrientation(position freehand.PointerPoint) error {
	if position == ax.start {
		return nil
	}
	return ax.DetermineOrientation(position)
}

// DetermineOrientation definitely determines the orientation from a position
// that differs from the anchor. Fails with ErrAmbiguousAxis if the position
// shares neither coordinate with the anchor.
func (ax *Axis) DetermineOrientation(position freehand.PointerPoint) error {
	if ax.OrientationKnown() {
		panic("pipeline: axis orientation should only be determined once")
	}
	if position == ax.start {
		panic("pipeline: cannot determine axis orientation from the anchor itself")
	}
	switch {
	case horizontallyAligned(ax.start, position):
		ax.orientation = Horizontal
	case verticallyAligned(ax.start, position):
		ax.orientation = Vertical
	default:
		return fmt.Errorf("%w: %s and %s", ErrAmbiguousAxis, ax.start, position)
	}
	tracer().Debugf("axis orientation determined %s", ax.orientation)
	return nil
}

// OnAxisValue projects a position onto the known axis: x for horizontal,
// y for vertical. The position must be collinear with the anchor.
func (ax *Axis) OnAxisValue(position freehand.PointerPoint) int {
	switch ax.orientation {
	case Horizontal:
		if position.Y != ax.start.Y {
			panic(fmt.Sprintf("pipeline: %s off the horizontal axis through %s", position, ax.start))
		}
		return position.X
	case Vertical:
		if position.X != ax.start.X {
			panic(fmt.Sprintf("pipeline: %s off the vertical axis through %s", position, ax.start))
		}
		return position.Y
	}
	panic("pipeline: on-axis value of an axis with unknown orientation")
}

// IsPositionDiagonal is a predicate, in an extended sense: a position not on
// the known axis, or, while the orientation is unknown, a position diagonal
// to the anchor. While the orientation is unknown, a position orthogonal to
// the anchor is not diagonal.
func (ax *Axis) IsPositionDiagonal(position freehand.PointerPoint) bool {
	var diagonal bool
	if ax.OrientationKnown() {
		diagonal = !ax.onKnownAxis(position)
	} else {
		diagonal = !orthogonal(ax.start, position)
	}
	tracer().Debugf("isPositionDiagonal %s returns %v", position, diagonal)
	return diagonal
}

func (ax *Axis) onKnownAxis(position freehand.PointerPoint) bool {
	if ax.orientation == Horizontal {
		return horizontallyAligned(ax.start, position)
	}
	return verticallyAligned(ax.start, position)
}
