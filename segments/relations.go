package segments

import (
	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/emirpasic/gods/maps/treemap"
)

// RelationKind distinguishes the relation types between control points.
type RelationKind int

const (
	// TiedTo relates the end anchor of one segment to the start anchor of
	// the next: they move together.
	TiedTo RelationKind = iota + 1
	// OppositeTo relates the two anchors of one segment.
	OppositeTo
	// ArmTo relates an anchor to its adjacent direction point.
	ArmTo
)

func (k RelationKind) String() string {
	switch k {
	case TiedTo:
		return "TiedTo"
	case OppositeTo:
		return "OppositeTo"
	case ArmTo:
		return "ArmTo"
	}
	return "unknown"
}

// Relations stores binary, symmetric relations between control points:
// binary as between two points (not three), symmetric as commutative: A
// related to B implies B related to A. Many relation kinds share the same
// store: per control point, a sorted map from kind to the related point.
type Relations struct {
	relations *hashmap.Map // *ControlPoint -> *treemap.Map (kind -> *ControlPoint)
}

// NewRelations creates an empty relation store.
func NewRelations() *Relations {
	return &Relations{relations: hashmap.New()}
}

// Relate stores a relation between two control points. Nil points are
// tolerated and ignored (e.g. the first segment has no previous anchor to
// tie to).
func (r *Relations) Relate(cp1, cp2 *ControlPoint, kind RelationKind) {
	if cp1 == nil || cp2 == nil {
		return
	}
	r.kinds(cp1).Put(int(kind), cp2)
	r.kinds(cp2).Put(int(kind), cp1)
}

// Related returns the control point related to the given one by kind.
func (r *Relations) Related(cp *ControlPoint, kind RelationKind) (*ControlPoint, bool) {
	kinds, found := r.relations.Get(cp)
	if !found {
		return nil, false
	}
	related, found := kinds.(*treemap.Map).Get(int(kind))
	if !found {
		return nil, false
	}
	return related.(*ControlPoint), true
}

// IsRelated is a predicate: is the control point related by kind?
func (r *Relations) IsRelated(cp *ControlPoint, kind RelationKind) bool {
	_, found := r.Related(cp, kind)
	return found
}

// IsSolelyRelated is a predicate: is the given kind the control point's only
// relation?
func (r *Relations) IsSolelyRelated(cp *ControlPoint, kind RelationKind) bool {
	kinds, found := r.relations.Get(cp)
	if !found {
		return false
	}
	m := kinds.(*treemap.Map)
	if m.Size() != 1 {
		return false
	}
	_, found = m.Get(int(kind))
	return found
}

// Clear drops all relations.
func (r *Relations) Clear() {
	r.relations.Clear()
}

func (r *Relations) kinds(cp *ControlPoint) *treemap.Map {
	if kinds, found := r.relations.Get(cp); found {
		return kinds.(*treemap.Map)
	}
	kinds := treemap.NewWithIntComparator()
	r.relations.Put(cp, kinds)
	return kinds
}

// Walk traverses the network of relations: starting at root, following only
// the given relation kinds, down to maxDepth, applying the visitor to every
// control point reached. Traversal marks prevent revisiting; the caller owns
// resetting them between walks.
func Walk(root *ControlPoint, relations *Relations, follow []RelationKind, visit func(*ControlPoint), maxDepth int) {
	tracer().Debugf("visit %s", root.Coordinate())
	visit(root)
	root.SetTraversed(true)
	for _, kind := range follow {
		related, found := relations.Related(root, kind)
		if !found || related.Traversed() {
			continue
		}
		if maxDepth > 0 {
			Walk(related, relations, follow, visit, maxDepth-1)
		}
	}
}
