package pipeline

import (
	"errors"
	"fmt"
	"math"

	freehand "github.com/bootchk/freehandTool"
	"github.com/bootchk/freehandTool/segments"
)

// AlphaMax is the default degree of smoothing for curve fitting:
//
//	< 0   : no smoothing, all straight lines
//	> 4/3 : no cusps, all splines
//
// potrace defaults to 1, which suits bitmap images. For freehand drawing
// 1.2 works better.
const AlphaMax = 1.2

// MapFunc maps a pointer point of the device plane into the real-valued
// working plane of the generated segments (e.g. a toolkit's view-to-scene
// transform). The zero value means the identity mapping.
type MapFunc func(freehand.PointerPoint) freehand.Pair

func identityMap(p freehand.PointerPoint) freehand.Pair {
	return p.Pair()
}

// CurveGenerator is stream stage 3, the curve fitter: path lines in,
// straight or cubic segments out.
//
// A smooth bend between two consecutive path lines becomes one cubic from
// midpoint to midpoint; a sharp bend (alpha above AlphaMax) becomes a cusp
// of two straight segments meeting at the bend. History holds the previous
// path line; on startup it is a null line, which still works. Don't assume
// any pushed line is not null.
type CurveGenerator struct {
	history  History[freehand.PathLine]
	mapPoint MapFunc
	alphaMax float64
	// Last path end point generated, cached in the working plane so the
	// cusp fit does not suffer round-trip precision loss.
	lastEnd freehand.Pair
}

// NewCurveGenerator starts a curve stream at a stroke's initial position.
// mapPoint may be nil for the identity mapping.
func NewCurveGenerator(start freehand.PointerPoint, mapPoint MapFunc) *CurveGenerator {
	if mapPoint == nil {
		mapPoint = identityMap
	}
	return &CurveGenerator{
		history:  NewHistory(freehand.NullPathLine(start)),
		mapPoint: mapPoint,
		alphaMax: AlphaMax,
		lastEnd:  mapPoint(start),
	}
}

// SetAlphaMax overrides the smoothing threshold for this stroke.
func (g *CurveGenerator) SetAlphaMax(alphaMax float64) {
	g.alphaMax = alphaMax
}

// Push feeds one path line into the stage and returns the segments fitted so
// far, with one cuspness flag per segment: true iff the segment's trailing
// joint is a sharp corner. Both slices always have equal length.
func (g *CurveGenerator) Push(line freehand.PathLine, forced bool) ([]segments.Segment, []bool) {
	if !forced {
		segs, pathEnd, cuspness := g.segmentsMidToMid(g.history.End, line)
		g.history.UpdateEnd(line)
		return g.put(segs, pathEnd, cuspness)
	}
	// Forced line, from a user pause or from closing the pipeline: make a
	// cusp-like fit regardless of the angle between path lines.
	if g.history.End.IsNull() {
		if line.IsNull() {
			// Never generated any segments, or already flushed by a prior
			// pause. Might be a pause followed by close: not an error.
			tracer().Debugf("already flushed, or empty")
			return nil, nil
		}
		segs, pathEnd, cuspness := g.segmentsEndToEnd(g.history.End, line)
		g.history.UpdateEnd(freehand.NullPathLine(line.P2))
		return g.put(segs, pathEnd, cuspness)
	}
	segs, pathEnd, cuspness := g.segmentsMidToEnd(g.history.End, line)
	g.history.UpdateEnd(freehand.NullPathLine(line.P2))
	return g.put(segs, pathEnd, cuspness)
}

// Close checks the stage's exit invariant: the upstream line generator's
// terminating flush guarantees the history ends on a null line, so the
// generated segments already reach the end of the pointer track.
func (g *CurveGenerator) Close() {
	tracer().Debugf("flush curve generator")
	if !g.history.End.IsNull() {
		panic(fmt.Sprintf("pipeline: curve generator closed with pending line %s", g.history.End))
	}
}

// PathEnd returns the working-plane end point of the path generated so far.
func (g *CurveGenerator) PathEnd() freehand.Pair {
	return g.lastEnd
}

func (g *CurveGenerator) put(segs []segments.Segment, pathEnd freehand.Pair, cuspness []bool) ([]segments.Segment, []bool) {
	g.lastEnd = pathEnd
	return segs, cuspness
}

// segmentsMidToMid fits the midpoints of two abutting path lines. Two cases,
// depending on the angle between the lines: an obtuse bend yields one cubic
// that fits the bend smoothly; an acute bend yields a cusp of two straight
// segments. Also returns the new path end point.
func (g *CurveGenerator) segmentsMidToMid(line1, line2 freehand.PathLine) ([]segments.Segment, freehand.Pair, []bool) {
	// Three points defined by two abutting path lines. Here begins real
	// valued math, in the working plane.
	point1 := g.mapPoint(line1.P1)
	point2 := g.mapPoint(line1.P2)
	point3 := g.mapPoint(line2.P2)

	midpoint1 := point2.Interval(point1, 0.5)
	midpoint2 := point3.Interval(point2, 0.5)

	var alpha float64
	denom := ddenom(point1, point3)
	if denom != 0 {
		dd := math.Abs(areaOfParallelogram(point1, point2, point3) / denom)
		if dd > 1 {
			alpha = (1 - 1.0/dd) / 0.75
		}
	} else {
		alpha = 4.0 / 3.0
	}

	if alpha > g.alphaMax {
		return g.segmentsForCusp(point2, midpoint2)
	}
	alpha = clampAlpha(alpha)
	// The first control point of this spline lies on the same path line as
	// the second control point of the previous spline, so the control
	// points are colinear and the joint between consecutive splines is
	// smooth.
	curve, err := segments.NewCurveSegment(midpoint1,
		point1.Interval(point2, 0.5+0.5*alpha),
		point3.Interval(point2, 0.5+0.5*alpha),
		midpoint2)
	if err != nil {
		// Sub-pixel degeneracy: omit the curve but still advance the path
		// end to the midpoint.
		tracer().Debugf("null curve segment omitted at %s", midpoint2)
		return nil, midpoint2, nil
	}
	tracer().Debugf("mid to mid curve, alpha %g", alpha)
	return []segments.Segment{curve}, midpoint2, []bool{false}
}

// segmentsMidToEnd fits from the midpoint of the first path line all the way
// to the end of the second. At least the trailing segment is a cusp.
func (g *CurveGenerator) segmentsMidToEnd(line1, line2 freehand.PathLine) ([]segments.Segment, freehand.Pair, []bool) {
	segs, midEnd, cuspness := g.segmentsMidToMid(line1, line2)
	finalEnd := g.mapPoint(line2.P2)
	tail, err := segments.NewLineSegment(midEnd, finalEnd)
	if err != nil {
		// The mid-to-mid fit already reached the line's end.
		tracer().Debugf("null tail segment omitted at %s", finalEnd)
		return segs, finalEnd, cuspness
	}
	tracer().Debugf("mid to end")
	return append(segs, tail), finalEnd, append(cuspness, true)
}

// segmentsEndToEnd fits a single straight segment from the end of the first
// path line to the end of the second. This happens when the previous line
// already ended in a flush (segments were generated to its very end), and
// when the only line of a stroke arrives: press, move straight, release.
func (g *CurveGenerator) segmentsEndToEnd(line1, line2 freehand.PathLine) ([]segments.Segment, freehand.Pair, []bool) {
	start := g.mapPoint(line1.P2)
	end := g.mapPoint(line2.P2)
	seg, err := segments.NewLineSegment(start, end)
	if err != nil {
		tracer().Debugf("null end-to-end segment omitted at %s", end)
		return nil, end, nil
	}
	return []segments.Segment{seg}, end, []bool{true}
}

// segmentsForCusp makes a sharp corner: two straight segments from the last
// generated path end via the point where the generating path lines meet, to
// the midpoint of the second line. Coincident endpoints from floating point
// degeneracy are expected here; each candidate segment is constructed on its
// own and a degenerate one is silently omitted, keeping the cuspness list in
// lockstep with whichever segments survive.
func (g *CurveGenerator) segmentsForCusp(cuspPoint, endPoint freehand.Pair) ([]segments.Segment, freehand.Pair, []bool) {
	tracer().Debugf("cusp at %s", cuspPoint)
	first, errFirst := segments.NewLineSegment(g.lastEnd, cuspPoint)
	second, errSecond := segments.NewLineSegment(cuspPoint, endPoint)
	switch {
	case errFirst == nil && errSecond == nil:
		return []segments.Segment{first, second}, endPoint, []bool{true, false}
	case errFirst == nil:
		g.expectNullSegment(errSecond)
		return []segments.Segment{first}, endPoint, []bool{false}
	case errSecond == nil:
		g.expectNullSegment(errFirst)
		return []segments.Segment{second}, endPoint, []bool{false}
	}
	g.expectNullSegment(errFirst)
	g.expectNullSegment(errSecond)
	return nil, endPoint, nil
}

// expectNullSegment recovers from the one expected construction failure.
// Anything else is a program error.
func (g *CurveGenerator) expectNullSegment(err error) {
	if !errors.Is(err, segments.ErrNullSegment) {
		panic(fmt.Sprintf("pipeline: unexpected segment construction failure: %v", err))
	}
}

// ddenom and areaOfParallelogram have the property that the square of radius
// 1 centered at p1 intersects the line p0-p2 iff
// |areaOfParallelogram(p0,p1,p2)| <= ddenom(p0,p2).

func ddenom(p0, p1 freehand.Pair) float64 {
	r := p0.CardinalLeft90(p1)
	return r.Y()*(p1.X()-p0.X()) - r.X()*(p1.Y()-p0.Y())
}

// Vector cross product of p1−p0 and p2−p0, i.e. the area of the
// parallelogram defined by the three points.
func areaOfParallelogram(p0, p1, p2 freehand.Pair) float64 {
	return (p1.X()-p0.X())*(p2.Y()-p0.Y()) - (p2.X()-p0.X())*(p1.Y()-p0.Y())
}

func clampAlpha(alpha float64) float64 {
	switch {
	case alpha < 0.55:
		return 0.55
	case alpha > 1:
		return 1
	}
	return alpha
}
