package pipeline

import (
	"testing"

	freehand "github.com/bootchk/freehandTool"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func line(x1, y1, x2, y2 int) freehand.PathLine {
	return freehand.NewPathLine(freehand.Pt(x1, y1), freehand.Pt(x2, y2))
}

func TestCurvesStartupSpline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := NewCurveGenerator(freehand.Pt(0, 0), nil)
	// The first line abuts the startup null line: one spline from the stroke
	// start to the line's midpoint.
	segs, cuspness := g.Push(line(0, 0, 10, 0), false)
	assert.Len(t, segs, 1)
	assert.Equal(t, []bool{false}, cuspness)
	assert.Equal(t, freehand.P(0, 0), segs[0].StartPoint())
	assert.Equal(t, freehand.P(5, 0), segs[0].EndPoint())
	assert.Equal(t, freehand.P(5, 0), g.PathEnd())
}

func TestCurvesSmoothBend(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := NewCurveGenerator(freehand.Pt(0, 0), nil)
	g.Push(line(0, 0, 10, 0), false)
	// A right-angle bend of two long lines is still smooth: one spline from
	// midpoint to midpoint, both control points pulled onto the corner.
	segs, cuspness := g.Push(line(10, 0, 10, 10), false)
	assert.Len(t, segs, 1)
	assert.Equal(t, []bool{false}, cuspness)
	assert.False(t, segs[0].IsLine())
	assert.Equal(t, freehand.P(5, 0), segs[0].StartPoint())
	assert.Equal(t, freehand.P(10, 0), segs[0].Control1())
	assert.Equal(t, freehand.P(10, 0), segs[0].Control2())
	assert.Equal(t, freehand.P(10, 5), segs[0].EndPoint())
}

func TestCurvesReversalCusp(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := NewCurveGenerator(freehand.Pt(0, 0), nil)
	g.Push(line(0, 0, 10, 0), false)
	// A collinear reversal is the sharpest possible bend: two straight
	// segments meeting in a cusp at the reversal point.
	segs, cuspness := g.Push(line(10, 0, 0, 0), false)
	assert.Len(t, segs, 2)
	assert.Equal(t, []bool{true, false}, cuspness)
	assert.True(t, segs[0].IsLine())
	assert.True(t, segs[1].IsLine())
	assert.Equal(t, freehand.P(5, 0), segs[0].StartPoint())
	assert.Equal(t, freehand.P(10, 0), segs[0].EndPoint())
	assert.Equal(t, freehand.P(10, 0), segs[1].StartPoint())
	assert.Equal(t, freehand.P(5, 0), segs[1].EndPoint())
}

func TestCurvesForcedSingleLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := NewCurveGenerator(freehand.Pt(0, 0), nil)
	// Press, move straight, release: the whole stroke is one forced line and
	// becomes exactly one straight segment, end to end.
	segs, cuspness := g.Push(line(0, 0, 10, 0), true)
	assert.Len(t, segs, 1)
	assert.Equal(t, []bool{true}, cuspness)
	assert.True(t, segs[0].IsLine())
	assert.Equal(t, freehand.P(0, 0), segs[0].StartPoint())
	assert.Equal(t, freehand.P(10, 0), segs[0].EndPoint())
}

func TestCurvesForcedMidToEnd(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := NewCurveGenerator(freehand.Pt(0, 0), nil)
	g.Push(line(0, 0, 10, 0), false)
	// A forced line with history pending fits to its midpoint as usual, then
	// appends a straight tail reaching the line's very end.
	segs, cuspness := g.Push(line(10, 0, 10, 10), true)
	assert.Len(t, segs, 2)
	assert.Equal(t, []bool{false, true}, cuspness)
	assert.True(t, segs[1].IsLine())
	assert.Equal(t, freehand.P(10, 5), segs[1].StartPoint())
	assert.Equal(t, freehand.P(10, 10), segs[1].EndPoint())
	assert.Equal(t, freehand.P(10, 10), g.PathEnd())
}

func TestCurvesAlreadyFlushed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := NewCurveGenerator(freehand.Pt(0, 0), nil)
	g.Push(line(0, 0, 10, 0), true)
	// Pause followed by close: a forced null line after a flush is a no-op.
	segs, cuspness := g.Push(freehand.NullPathLine(freehand.Pt(10, 0)), true)
	assert.Empty(t, segs)
	assert.Empty(t, cuspness)
	g.Close()
}

func TestCurvesClosePanicsOnPendingLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := NewCurveGenerator(freehand.Pt(0, 0), nil)
	g.Push(line(0, 0, 10, 0), false)
	mustPanic(t, func() { g.Close() })
}

func TestCurvesMapFunc(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	double := func(p freehand.PointerPoint) freehand.Pair {
		return freehand.P(float64(2*p.X), float64(2*p.Y))
	}
	g := NewCurveGenerator(freehand.Pt(0, 0), double)
	segs, _ := g.Push(line(0, 0, 10, 0), true)
	assert.Len(t, segs, 1)
	assert.Equal(t, freehand.P(20, 0), segs[0].EndPoint())
}

func TestCurvesAlphaMaxOverride(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := NewCurveGenerator(freehand.Pt(0, 0), nil)
	g.Push(line(0, 0, 10, 0), false)
	// With all smoothing disabled even a right angle becomes a cusp.
	g.SetAlphaMax(-1)
	segs, cuspness := g.Push(line(10, 0, 10, 10), false)
	assert.Len(t, segs, 2)
	assert.Equal(t, []bool{true, false}, cuspness)
	assert.True(t, segs[0].IsLine())
	assert.True(t, segs[1].IsLine())
}
