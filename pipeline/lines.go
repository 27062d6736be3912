package pipeline

import (
	freehand "github.com/bootchk/freehandTool"
)

// Line is one fitted straight run handed to the curve stage, with the flush
// marker carried along.
type Line struct {
	PathLine freehand.PathLine
	Forced   bool
}

// LineGenerator is stream stage 2: turns in, path lines out.
//
// It consumes turns until the pixels of the pointer path can no longer be
// approximated by (impinged upon by) one vector, i.e. until the constraint
// funnel is violated. Generally speaking this is a line simplification
// algorithm, with epsilon fixed at half a pixel.
//
// Note this stage works on three turns: history.Start, history.End, and the
// current turn, updating history.End on every push instead of only when it
// emits.
type LineGenerator struct {
	history     History[freehand.PointerPoint]
	constraints Constraints
}

// NewLineGenerator starts a line stream at a stroke's initial position.
func NewLineGenerator(start freehand.PointerPoint) *LineGenerator {
	return &LineGenerator{history: NewHistory(start)}
}

// Push feeds one turn into the stage.
//
// A non-forced turn either widens the funnel (and is deferred), or violates
// it, in which case the run up to the previous turn is emitted: no sub-pixel
// backtracking is attempted, the previous turn is the best achievable
// endpoint. A forced turn always emits a line to itself regardless of fit,
// possibly a null line when a reversal collapsed onto the run's start, and
// leaves the history collapsed.
func (g *LineGenerator) Push(turn freehand.PointerPoint, forced bool) []Line {
	if forced {
		return []Line{g.forcedLine(turn)}
	}
	viaAllTurns := turn.Sub(g.history.Start)
	if !g.constraints.IsViolatedBy(viaAllTurns) {
		// Current run still satisfied by one line: discard intermediate
		// turns, don't emit. Diagonal jitter may send consecutive turns
		// ending where we started, so history may collapse here.
		g.constraints.Update(viaAllTurns)
		g.history.UpdateEnd(turn)
		return nil
	}
	tracer().Debugf("line for constraint violation at %s", turn)
	line := freehand.NewPathLine(g.history.Start, g.history.End)
	g.constraints.Reset()
	g.history.Roll()
	g.history.UpdateEnd(turn)
	return []Line{{PathLine: line}}
}

// forcedLine makes a line that forces downstream output to the current turn,
// regardless of constraints. The user paused: emit now so the rendered path
// catches up with the pointer (a cusp-like fit downstream).
func (g *LineGenerator) forcedLine(turn freehand.PointerPoint) Line {
	g.constraints.Reset()
	defer g.history.Collapse(turn)
	if g.history.Start == turn {
		// A reversal in the turns: a line from start to current is null.
		// We must still send some line, to flush the curve stage.
		tracer().Debugf("forced null line at %s", turn)
		return Line{PathLine: freehand.NullPathLine(turn), Forced: true}
	}
	tracer().Debugf("forced line %s to %s", g.history.Start, turn)
	return Line{PathLine: freehand.NewPathLine(g.history.Start, turn), Forced: true}
}

// Close flushes the stage. A pending run is emitted as an ordinary line;
// then, regardless, one terminating null line follows, so the curve stage
// always receives a line anchoring the very end of the stroke.
func (g *LineGenerator) Close() []Line {
	tracer().Debugf("flush line generator")
	var out []Line
	if !g.history.IsCollapsed() {
		out = append(out, Line{PathLine: freehand.NewPathLine(g.history.Start, g.history.End)})
	}
	out = append(out, Line{PathLine: freehand.NullPathLine(g.history.End)})
	return out
}
