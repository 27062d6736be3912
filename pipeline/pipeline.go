package pipeline

import (
	freehand "github.com/bootchk/freehandTool"
	"github.com/bootchk/freehandTool/segments"
)

// A SegmentSink consumes the fitted segments of a stroke as they become
// geometrically certain. Both slices always have equal length: one cuspness
// flag per segment. segments.SegmentString is the default implementation.
type SegmentSink interface {
	AppendSegments(segs []segments.Segment, cuspness []bool)
}

// Pipeline wires the three stream stages of one stroke: positions are pushed
// one at a time into the turn stage, and each stage, on recognizing enough
// structure, pushes a coarser object downstream. The curve stage is the only
// one that emits externally visible segments, to the sink.
//
// The call chain is single-threaded and synchronous: each sample is
// processed to completion before the next is accepted, and outputs are
// emitted in input order. A pipeline serves exactly one stroke; a new stroke
// requires a new pipeline.
type Pipeline struct {
	turns  *TurnGenerator
	lines  *LineGenerator
	curves *CurveGenerator
	sink   SegmentSink
	closed bool
}

// NewPipeline creates the filter pipe for one stroke starting at the given
// position. The stages feed each other in order of creation. mapPoint may be
// nil for the identity device-to-working-plane mapping.
func NewPipeline(start freehand.PointerPoint, sink SegmentSink, mapPoint MapFunc) *Pipeline {
	if sink == nil {
		panic("pipeline: nil segment sink")
	}
	return &Pipeline{
		turns:  NewTurnGenerator(start),
		lines:  NewLineGenerator(start),
		curves: NewCurveGenerator(start, mapPoint),
		sink:   sink,
	}
}

// Sample feeds one pointer position into the pipe. Forced samples are
// re-deliveries of the last known position, used to flush the pipe when the
// user pauses: the caller's timer decides, the pipeline is agnostic of time.
//
// Sampling a closed pipeline is a contract violation and panics. An error
// terminates the stroke; the caller may start a fresh pipeline.
func (pl *Pipeline) Sample(position freehand.PointerPoint, forced bool) error {
	if pl.closed {
		panic("pipeline: sample after close")
	}
	turns, err := pl.turns.Push(position, forced)
	if err != nil {
		return err
	}
	pl.feedTurns(turns)
	return nil
}

// Close flushes and shuts the pipe. Stages close in pipeline order, since
// closing a stage can synchronously push a final value that the next stage
// must handle before its own close. The remaining buffered structure
// generates final segments reaching the last sampled position; afterwards no
// stage is resumable, and a second Close is a contract violation.
func (pl *Pipeline) Close() {
	if pl.closed {
		panic("pipeline: close after close")
	}
	pl.closed = true
	pl.feedTurns(pl.turns.Close())
	pl.feedLines(pl.lines.Close())
	pl.curves.Close()
}

// PathEnd returns the working-plane end point of the path generated so far,
// e.g. for anchoring ghost feedback between pipe output and live pointer.
func (pl *Pipeline) PathEnd() freehand.Pair {
	return pl.curves.PathEnd()
}

func (pl *Pipeline) feedTurns(turns []Turn) {
	for _, t := range turns {
		pl.feedLines(pl.lines.Push(t.Pos, t.Forced))
	}
}

func (pl *Pipeline) feedLines(lines []Line) {
	for _, l := range lines {
		segs, cuspness := pl.curves.Push(l.PathLine, l.Forced)
		if len(segs) > 0 {
			pl.sink.AppendSegments(segs, cuspness)
		}
	}
}
