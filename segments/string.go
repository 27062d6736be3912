package segments

import (
	"fmt"
	"strings"

	freehand "github.com/bootchk/freehandTool"
)

// SegmentString is a connected sequence of segments, a.k.a. a polyline,
// multiline, or polycurve: the end point of one segment is coincident with
// the start point of the next. It is the default sink of the freehand
// pipeline and is populated, batch by batch, with per-segment cuspness as a
// stroke is drawn.
//
// A SegmentString stores plain segment values; it knows nothing of any
// toolkit's path representation.
type SegmentString struct {
	segments []Segment
	cuspness []bool
}

// NewSegmentString creates an empty segment string.
func NewSegmentString() *SegmentString {
	return &SegmentString{}
}

// AppendSegments appends a batch of segments with their cuspness flags, one
// flag per segment: true iff the segment's trailing joint is a sharp corner.
// Mismatched lengths are a contract violation and panic. Appending a null
// segment likewise panics: the pipeline never emits one.
func (ss *SegmentString) AppendSegments(segs []Segment, cuspness []bool) {
	if len(segs) != len(cuspness) {
		panic(fmt.Sprintf("segments: %d segments with %d cuspness flags", len(segs), len(cuspness)))
	}
	for _, s := range segs {
		if s.StartPoint() == s.EndPoint() {
			panic(fmt.Sprintf("segments: null segment at %s appended", s.StartPoint()))
		}
	}
	tracer().Debugf("append %d segment(s)", len(segs))
	ss.segments = append(ss.segments, segs...)
	ss.cuspness = append(ss.cuspness, cuspness...)
}

// N returns the segment count.
func (ss *SegmentString) N() int {
	return len(ss.segments)
}

// IsEmpty is a predicate: no segments yet? A degenerate micro-movement
// stroke legitimately leaves its string empty.
func (ss *SegmentString) IsEmpty() bool {
	return len(ss.segments) == 0
}

// Segment returns the i-th segment.
func (ss *SegmentString) Segment(i int) Segment {
	return ss.segments[i]
}

// IsCusp is a predicate: is the trailing joint of the i-th segment a sharp
// corner rather than a smooth (colinear-tangent) joint?
func (ss *SegmentString) IsCusp(i int) bool {
	return ss.cuspness[i]
}

// StartPoint returns the start of the first segment. Panics when empty.
func (ss *SegmentString) StartPoint() freehand.Pair {
	if ss.IsEmpty() {
		panic("segments: start point of empty segment string")
	}
	return ss.segments[0].StartPoint()
}

// EndPoint returns the end of the last segment. Panics when empty.
func (ss *SegmentString) EndPoint() freehand.Pair {
	if ss.IsEmpty() {
		panic("segments: end point of empty segment string")
	}
	return ss.segments[len(ss.segments)-1].EndPoint()
}

// IsContiguous is a predicate: does every segment start where its
// predecessor ended? The pipeline guarantees this for every stroke.
func (ss *SegmentString) IsContiguous() bool {
	for i := 1; i < len(ss.segments); i++ {
		if ss.segments[i].StartPoint() != ss.segments[i-1].EndPoint() {
			return false
		}
	}
	return true
}

// AsString returns a segment string in a MetaPost-like (debugging) form,
// one segment per line:
//
//	(0,0) .. controls (5,0) and (5,0) .. (10,0) [cusp]
func AsString(ss *SegmentString) string {
	var b strings.Builder
	for i, s := range ss.segments {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s.String())
		if ss.cuspness[i] {
			b.WriteString(" [cusp]")
		}
	}
	return b.String()
}
