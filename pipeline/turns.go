package pipeline

import (
	freehand "github.com/bootchk/freehandTool"
)

// Turn is a position recognized as a vertex between two axis-aligned
// sub-paths, or a detected reversal point. Forced marks a flush: the turn
// was re-delivered on pause or shutdown and must produce output downstream
// without further samples.
type Turn struct {
	Pos    freehand.PointerPoint
	Forced bool
}

// TurnGenerator is stream stage 1: positions in, turns out.
//
// It absorbs positions that stay on one axis and emits a turn when the
// reversal detector recognizes one. History remembers the position of the
// last emitted turn (start) versus the most recently seen position (end).
type TurnGenerator struct {
	history  History[freehand.PointerPoint]
	detector *ReversalDetector
}

// NewTurnGenerator starts a turn stream at a stroke's initial position.
func NewTurnGenerator(start freehand.PointerPoint) *TurnGenerator {
	return &TurnGenerator{
		history:  NewHistory(start),
		detector: NewReversalDetector(start),
	}
}

// Push feeds one position into the stage. The same position may arrive
// consecutively, and consecutive positions need not be contiguous in any
// sense: the windowing system may get busy or confused. Forced positions
// are passed through unconditionally as flush turns.
func (g *TurnGenerator) Push(position freehand.PointerPoint, forced bool) ([]Turn, error) {
	if forced {
		g.history.Collapse(position)
		return []Turn{{Pos: position, Forced: true}}, nil
	}
	turn, ok, err := g.detector.Detect(position)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Path is still on an axis with history.Start: wait.
		g.history.UpdateEnd(position)
		return nil, nil
	}
	g.history.Collapse(position)
	return []Turn{{Pos: turn}}, nil
}

// Close flushes the stage. If a position was absorbed but never sent, it is
// forced out as a final turn.
func (g *TurnGenerator) Close() []Turn {
	tracer().Debugf("flush turn generator")
	if g.history.IsCollapsed() {
		return nil
	}
	return []Turn{{Pos: g.history.End, Forced: true}}
}
