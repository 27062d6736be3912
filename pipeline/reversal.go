package pipeline

import (
	"fmt"

	freehand "github.com/bootchk/freehandTool"
)

type growth uint8

const (
	growthUnknown growth = iota
	growingLower
	growingUpper
)

// ReversalDetector consumes a stream of positions and reports turns.
//
// A position off the current axis (diagonal) is itself a turn. While the
// stream stays on one axis the detector maintains a growing limit pair along
// that axis; when a new position is a reversal (a certain distance back
// inside the limits) it reports the extreme position that was reversed from,
// not the new position. Reversals of one unit are ignored as jitter.
//
// Batch tracers ignore reversing spikes; for live strokes a deliberate
// pause-and-reverse must still produce a turn, so the growth direction along
// the axis is tracked explicitly.
type ReversalDetector struct {
	axis         Axis
	lower, upper int
	growth       growth
	extreme      freehand.PointerPoint
}

// NewReversalDetector returns a detector anchored at the stroke's initial
// position, with orientation not yet known.
func NewReversalDetector(initial freehand.PointerPoint) *ReversalDetector {
	d := &ReversalDetector{}
	d.resetToAxisUnknown(initial)
	return d
}

func (d *ReversalDetector) resetToAxisUnknown(start freehand.PointerPoint) {
	tracer().Debugf("reversal detector reset to axis unknown at %s", start)
	d.growth = growthUnknown
	d.extreme = freehand.PointerPoint{}
	d.axis.Reset(start)
}

// Detect receives one position from the stream. It returns the position
// itself if it is diagonal to the current axis, or a limit position if the
// stream reverses along the axis, with ok reporting whether a turn was
// found. The error is the axis tracker's contract violation and cannot
// occur for positions that passed the diagonality test.
func (d *ReversalDetector) Detect(position freehand.PointerPoint) (turn freehand.PointerPoint, ok bool, err error) {
	if d.axis.IsPositionDiagonal(position) {
		d.resetToAxisUnknown(position)
		return position, true, nil
	}
	turn, ok, err = d.detectReversal(position)
	if err != nil {
		return freehand.PointerPoint{}, false, err
	}
	if ok {
		d.resetAfterReversal(position)
	}
	return turn, ok, nil
}

// detectReversal reports the extreme historical position on the axis if the
// new position retraces far enough back inside the limits.
func (d *ReversalDetector) detectReversal(position freehand.PointerPoint) (freehand.PointerPoint, bool, error) {
	if !d.axis.OrientationKnown() {
		if err := d.axis.TryDetermineOrientation(position); err != nil {
			return freehand.PointerPoint{}, false, err
		}
		if d.axis.OrientationKnown() {
			// Orientation was just determined, so determine limits too.
			d.setInitialLimits(position)
		}
	}
	if !d.axis.OrientationKnown() {
		// Position equal to the anchor: no axis determinable yet.
		return freehand.PointerPoint{}, false, nil
	}
	value := d.axis.OnAxisValue(position)
	d.expandLimits(value, position)
	if d.growth != growthUnknown && d.isReversal(value) {
		tracer().Debugf("reversal at %s from extreme %s", position, d.extreme)
		return d.extreme, true, nil
	}
	return freehand.PointerPoint{}, false, nil
}

// resetAfterReversal rebuilds the detector so that the old extreme becomes
// the anchor and the new position is the first move away from it. The axis
// keeps its orientation, the growth direction flips.
func (d *ReversalDetector) resetAfterReversal(position freehand.PointerPoint) {
	if d.extreme == position {
		panic(fmt.Sprintf("pipeline: reversal onto the extreme position %s", position))
	}
	d.axis.ResetStart(d.extreme)
	d.flipGrowth()
	d.setInitialLimits(position)
}

// setInitialLimits establishes the limit pair from two separate positions,
// the anchor and the given position, on the axis they share. The given
// position becomes the extreme.
func (d *ReversalDetector) setInitialLimits(position freehand.PointerPoint) {
	a := d.axis.OnAxisValue(d.axis.Start())
	b := d.axis.OnAxisValue(position)
	if a == b {
		panic(fmt.Sprintf("pipeline: limits from coincident on-axis values at %s", position))
	}
	if a < b {
		d.lower, d.upper = a, b
	} else {
		d.lower, d.upper = b, a
	}
	d.extreme = position
}

// expandLimits grows the limit pair if the value exceeds it, remembering the
// growth direction and the position that set the bound. A contained value
// leaves everything unchanged; growth may still be unknown afterwards.
func (d *ReversalDetector) expandLimits(value int, position freehand.PointerPoint) {
	switch {
	case value < d.lower:
		d.lower = value
		d.growth = growingLower
		d.extreme = position
	case value > d.upper:
		d.upper = value
		d.growth = growingUpper
		d.extreme = position
	}
}

// isReversal tolerates one unit of jitter: only a value strictly more than
// one unit back inside the growing bound is a reversal. The interval must
// hold at least three distinct values.
func (d *ReversalDetector) isReversal(value int) bool {
	if d.upper-d.lower+1 <= 2 {
		return false
	}
	if d.growth == growingLower {
		return value > d.lower+1
	}
	return value < d.upper-1
}

func (d *ReversalDetector) flipGrowth() {
	switch d.growth {
	case growingLower:
		d.growth = growingUpper
	case growingUpper:
		d.growth = growingLower
	default:
		panic("pipeline: cannot flip unknown growth direction")
	}
}
