package segments

import (
	freehand "github.com/bootchk/freehandTool"
)

// ControlPoint is the model of one point of a segment that determines the
// segment's shape. Control points are not necessarily on the segment. An
// editor manipulates a drawn control point to shape a segment; control
// points themselves are models, not drawables.
//
// A control point does not know its type. The types follow from the index:
// 0 and 3 are anchors (segment ends), 1 and 2 are direction points (ends of
// control arms).
type ControlPoint struct {
	coordinate     freehand.Pair
	segmentIndex   int
	indexInSegment int
	traversed      bool
}

// Coordinate returns the control point's working-plane coordinate.
func (cp *ControlPoint) Coordinate() freehand.Pair {
	return cp.coordinate
}

// SetCoordinate sets the coordinate, without any notion of updating a
// drawing.
func (cp *ControlPoint) SetCoordinate(coordinate freehand.Pair) {
	cp.coordinate = coordinate
}

// SegmentIndex returns the index of the parent segment in its string.
func (cp *ControlPoint) SegmentIndex() int {
	return cp.segmentIndex
}

// IndexInSegment returns the control point's index within its segment, 0–3.
func (cp *ControlPoint) IndexInSegment() int {
	return cp.indexInSegment
}

// Traversed reports the walking mark, used by Walk.
func (cp *ControlPoint) Traversed() bool {
	return cp.traversed
}

// SetTraversed sets the walking mark.
func (cp *ControlPoint) SetTraversed(traversed bool) {
	cp.traversed = traversed
}

// IsAnchor is a predicate: is this control point a segment end?
func (cp *ControlPoint) IsAnchor() bool {
	return cp.indexInSegment == 0 || cp.indexInSegment == 3
}

// ControlPointSet materializes the control points of every segment of a
// string, together with the standard relations between them: within each
// segment the left anchor is OppositeTo the right anchor and ArmTo its
// direction point (similarly on the right), and the left anchor of each
// segment is TiedTo the end anchor of the previous segment.
//
// The set is created on demand, typically when a string becomes the operand
// of an editor, and persists only as long as the caller keeps it.
func (ss *SegmentString) ControlPointSet() ([]*ControlPoint, *Relations) {
	relations := NewRelations()
	var points []*ControlPoint
	var previousEndAnchor *ControlPoint
	for i, seg := range ss.segments {
		cps := make([]*ControlPoint, 4)
		for j, coord := range seg.Points() {
			cps[j] = &ControlPoint{coordinate: coord, segmentIndex: i, indexInSegment: j}
		}
		relations.Relate(cps[0], cps[3], OppositeTo)
		relations.Relate(cps[0], cps[1], ArmTo)
		relations.Relate(cps[2], cps[3], ArmTo)
		relations.Relate(cps[0], previousEndAnchor, TiedTo)
		previousEndAnchor = cps[3]
		points = append(points, cps...)
	}
	tracer().Debugf("control point set of %d point(s)", len(points))
	return points, relations
}
