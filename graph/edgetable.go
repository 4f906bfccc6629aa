package graph

import (
	"github.com/planargeo/overlay/geom"
	"github.com/planargeo/overlay/label"
)

// EdgeTable deduplicates noded segments into a set of distinct Edges,
// merging labels and accumulating signed depth.
type EdgeTable struct {
	edges   []*Edge
	byKey   map[string]int
}

// NewEdgeTable returns an empty table.
func NewEdgeTable() *EdgeTable {
	return &EdgeTable{byKey: make(map[string]int)}
}

// Edges returns the deduplicated edges built so far.
func (t *EdgeTable) Edges() []*Edge { return t.edges }

// Add inserts a noded segment's coordinates and label into the table,
// merging with a matching existing edge when one exists.
//
// New: the edge is inserted with a null (uninitialized) depth.
//
// Match: on the first duplicate, the existing edge's depth is initialized
// from its own label; the incoming label is flipped if its direction is
// reversed relative to the stored (canonical) orientation; the flipped
// label's depths are added to the existing depth; and the label is merged.
func (t *EdgeTable) Add(coords []geom.Coordinate, lbl label.Label) {
	key, reversed := normKey(coords)
	canon := coords
	if reversed {
		canon = reverseCoords(coords)
		lbl = lbl.Flip()
	}

	if idx, ok := t.byKey[key]; ok {
		e := t.edges[idx]
		if e.Depth.IsNull() {
			e.Depth = e.Depth.InitializeFromLabel(e.Lbl)
		}
		e.Depth = e.Depth.Add(lbl)
		// Where both labels are area on an operand, the depth now carries
		// the combined LEFT/RIGHT (rewritten by NormalizeAndRewrite), so
		// the existing sides are kept instead of merging a conflict.
		in := lbl
		for op := 0; op < 2; op++ {
			if e.Lbl.IsArea(op) && in.IsArea(op) {
				in = in.SetSide(op, e.Lbl.Side[op])
			}
		}
		e.Lbl = e.Lbl.Merge(in)
		return
	}

	t.byKey[key] = len(t.edges)
	t.edges = append(t.edges, newEdge(canon, lbl))
}

// NormalizeAndRewrite runs the post-merge pass: for every edge with a
// non-null depth, normalize it and rewrite the label on any area-labelled
// operand from the normalized depths, detecting dimensional collapse
// (delta == 0) and demoting that operand's label to a line label. Collapse
// detection folds into the same pass since the edge's identity (its
// coordinate sequence, and hence its table slot) never changes — only its
// label does.
func (t *EdgeTable) NormalizeAndRewrite() {
	for _, e := range t.edges {
		if e.Depth.IsNull() {
			continue
		}
		e.Depth = e.Depth.Normalize()
		collapsedAny := false
		for op := 0; op < 2; op++ {
			if !e.Lbl.IsArea(op) {
				continue
			}
			if e.Depth.Delta(op) == 0 {
				e.Lbl = e.Lbl.ToLine(op)
				collapsedAny = true
				continue
			}
			left := geom.LocationExterior
			if e.Depth.At(op, geom.PositionLeft) > 0 {
				left = geom.LocationInterior
			}
			right := geom.LocationExterior
			if e.Depth.At(op, geom.PositionRight) > 0 {
				right = geom.LocationInterior
			}
			side := e.Lbl.Side[op]
			side.Left, side.Right = left, right
			e.Lbl = e.Lbl.SetSide(op, side)
		}
		e.IsCollapsed = collapsedAny
	}
}
