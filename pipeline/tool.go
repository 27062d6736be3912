package pipeline

import (
	freehand "github.com/bootchk/freehandTool"
)

// Tool adapts the pipeline to the usual pointer event algebra of a drawing
// tool:
//
//	tool := create use*
//	use  := Press Move* Release
//
// It is deliberately free of timers and toolkit types: the caller converts
// its pointer events to positions and drives Pause from its own timer when
// no Move arrived for a while. The algebra is enforced: Move before Press is
// quietly ignored, Press during a stroke and Release without a stroke are
// contract violations and panic (the caller broke the single stroke
// contract, e.g. overlapping strokes).
type Tool struct {
	sink     SegmentSink
	mapPoint MapFunc
	pipe     *Pipeline
	lastPos  freehand.PointerPoint
	pressed  bool
	moved    bool
}

// NewTool creates a reusable freehand tool writing into sink.
func NewTool(sink SegmentSink, mapPoint MapFunc) *Tool {
	if sink == nil {
		panic("pipeline: nil segment sink")
	}
	return &Tool{sink: sink, mapPoint: mapPoint}
}

// Press starts a stroke at a position: a fresh pipeline, new stage state.
func (t *Tool) Press(position freehand.PointerPoint) {
	if t.pressed {
		panic("pipeline: consecutive press")
	}
	t.pipe = NewPipeline(position, t.sink, t.mapPoint)
	t.pressed = true
	t.moved = false
	t.lastPos = position
}

// Move feeds one pointer movement into the stroke. Moves before a press are
// quietly ignored.
func (t *Tool) Move(position freehand.PointerPoint) error {
	if !t.pressed {
		return nil
	}
	if err := t.pipe.Sample(position, false); err != nil {
		return err
	}
	t.lastPos = position
	t.moved = true
	return nil
}

// Pause re-delivers the last known position as a flush, eliminating the
// pipeline lag: the rendered segments catch up with the pointer, and the
// user can pause to make a cusp. A pause before any movement does nothing.
func (t *Tool) Pause() error {
	if !t.pressed || !t.moved {
		return nil
	}
	return t.pipe.Sample(t.lastPos, true)
}

// Release ends the stroke, flushing remaining buffered structure. If no Move
// ever arrived the pipe is discarded unclosed, since closing generates at
// least one flush; a degenerate click yields zero segments.
func (t *Tool) Release() {
	if !t.pressed {
		panic("pipeline: release without press")
	}
	if t.moved {
		t.pipe.Close()
	}
	t.pipe = nil
	t.pressed = false
	t.moved = false
}

// IsGenerating is a predicate: is a stroke in progress with at least one
// movement received?
func (t *Tool) IsGenerating() bool {
	return t.pressed && t.moved
}
