// Package polygon provides polygon views of freehand strokes.
//
// Polygons are built with a builder pattern, mirroring path construction:
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
//
// A finished stroke's segment string can be flattened into a polygon by
// adaptive subdivision of its cubics, and polygons support boolean set
// operations (union, intersection, overlap tests), e.g. for hit testing a
// drawn stroke against a rectangular region.
package polygon

import (
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	freehand "github.com/bootchk/freehandTool"
	"github.com/bootchk/freehandTool/segments"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to trace with key 'freehand.polygon'
func L() tracing.Trace {
	return tracing.Select("freehand.polygon")
}

// DefaultTolerance is the flattening tolerance for stroke outlines, in
// working-plane units.
const DefaultTolerance = 0.25

// Polygon is a sequence of knots joined by straight lines, optionally
// closed into a cycle.
type Polygon struct {
	knots []freehand.Pair
	cycle bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(p freehand.Pair) *Polygon {
	pg.knots = append(pg.knots, p)
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	if pg.N() < 3 {
		panic("polygon: cannot close a polygon with fewer than 3 knots")
	}
	pg.cycle = true
	return pg
}

// Box creates a rectangular polygon from two opposite corners.
func Box(corner1, corner2 freehand.Pair) *Polygon {
	return NullPolygon().
		Knot(corner1).
		Knot(freehand.P(corner2.X(), corner1.Y())).
		Knot(corner2).
		Knot(freehand.P(corner1.X(), corner2.Y())).
		Cycle()
}

// N returns the knot count.
func (pg *Polygon) N() int {
	return len(pg.knots)
}

// Z returns the knot at position (i mod N).
func (pg *Polygon) Z(i int) freehand.Pair {
	if i < 0 || i >= pg.N() {
		i = ((i % pg.N()) + pg.N()) % pg.N()
	}
	return pg.knots[i]
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// AsString returns a polygon in MetaPost-like form:
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i, knot := range pg.knots {
		if i > 0 {
			b.WriteString(" -- ")
		}
		b.WriteString(knot.String())
	}
	if pg.cycle {
		b.WriteString(" -- cycle")
	}
	return b.String()
}

// Polyclip returns the polygon as a polyclip contour set, for boolean
// operations. Only closed polygons convert; an open polygon panics.
func (pg *Polygon) Polyclip() polyclip.Polygon {
	if !pg.cycle {
		panic("polygon: boolean operation on an open polygon")
	}
	contour := make(polyclip.Contour, 0, pg.N())
	for _, knot := range pg.knots {
		contour = append(contour, polyclip.Point{X: knot.X(), Y: knot.Y()})
	}
	return polyclip.Polygon{contour}
}

// Union returns the set union of two closed polygons.
func Union(pg1, pg2 *Polygon) polyclip.Polygon {
	return pg1.Polyclip().Construct(polyclip.UNION, pg2.Polyclip())
}

// Intersection returns the set intersection of two closed polygons.
func Intersection(pg1, pg2 *Polygon) polyclip.Polygon {
	return pg1.Polyclip().Construct(polyclip.INTERSECTION, pg2.Polyclip())
}

// Overlaps is a predicate: do two closed polygons share any area?
func (pg *Polygon) Overlaps(other *Polygon) bool {
	overlap := Intersection(pg, other)
	L().Debugf("overlap has %d contour(s)", len(overlap))
	return len(overlap) > 0
}

// Outline flattens a stroke's segment string into a closed polygon,
// subdividing each cubic until its control points lie within tolerance of
// the chord. The polygon is closed by the chord from the stroke's end back
// to its start. Strings flattening to fewer than 3 knots (in particular the
// empty string) stay open.
func Outline(ss *segments.SegmentString, tolerance float64) *Polygon {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	pg := NullPolygon()
	if ss.IsEmpty() {
		return pg
	}
	for i := 0; i < ss.N(); i++ {
		s := ss.Segment(i)
		// Each segment contributes its start and interior flattening; the
		// shared joints appear once.
		pg.knots = flattenCubic(pg.knots,
			s.StartPoint(), s.Control1(), s.Control2(), s.EndPoint(),
			tolerance*tolerance, maxSubdivisionDepth)
	}
	pg.Knot(ss.EndPoint())
	L().Debugf("outline of %d segment(s) has %d knot(s)", ss.N(), pg.N())
	if pg.N() >= 3 {
		pg.Cycle()
	}
	return pg
}

const maxSubdivisionDepth = 16

// flattenCubic appends polyline vertices approximating a cubic, leaving the
// last vertex off so a following curve can continue the polyline.
func flattenCubic(out []freehand.Pair, p0, p1, p2, p3 freehand.Pair, sqTolerance float64, depth int) []freehand.Pair {
	if depth == 0 ||
		(sqDistToChord(p1, p0, p3) <= sqTolerance && sqDistToChord(p2, p0, p3) <= sqTolerance) {
		return append(out, p0)
	}
	p01 := p0.Interval(p1, 0.5)
	p12 := p1.Interval(p2, 0.5)
	p23 := p2.Interval(p3, 0.5)
	p012 := p01.Interval(p12, 0.5)
	p123 := p12.Interval(p23, 0.5)
	p0123 := p012.Interval(p123, 0.5)
	out = flattenCubic(out, p0, p01, p012, p0123, sqTolerance, depth-1)
	return flattenCubic(out, p0123, p123, p23, p3, sqTolerance, depth-1)
}

// sqDistToChord is the squared distance from p to the chord a-b.
func sqDistToChord(p, a, b freehand.Pair) float64 {
	px, py := p.X()-a.X(), p.Y()-a.Y()
	bx, by := b.X()-a.X(), b.Y()-a.Y()
	num := px*bx + py*by
	if num <= 0 {
		return px*px + py*py
	}
	den := bx*bx + by*by
	if num >= den {
		dx, dy := bx-px, by-py
		return dx*dx + dy*dy
	}
	t := num / den
	dx, dy := bx*t-px, by*t-py
	return dx*dx + dy*dy
}
