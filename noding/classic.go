package noding

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/planargeo/overlay/geom"
	"github.com/planargeo/overlay/intersect"
)

// minSpatialLength keeps rtreego.NewRect from rejecting a zero-width
// bounding box for an axis-aligned segment.
const minSpatialLength = 1e-9

// atomicSegment is one input edge's elementary two-point piece, the unit
// classic noding operates on: every input edge is decomposed into its
// constituent segments up front, each is robust-intersected against every
// other candidate segment (pruned by rtreego bounding-box overlap), and the
// resulting per-segment split points are re-assembled into NodedSegments.
type atomicSegment struct {
	edgeIdx, segIdx int
	a, b            geom.Coordinate
}

// Bounds implements rtreego.Spatial.
func (s *atomicSegment) Bounds() rtreego.Rect {
	minX, maxX := s.a.X, s.b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := s.a.Y, s.b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	lenX, lenY := maxX-minX, maxY-minY
	if lenX < minSpatialLength {
		lenX = minSpatialLength
	}
	if lenY < minSpatialLength {
		lenY = minSpatialLength
	}
	rect, _ := rtreego.NewRect(rtreego.Point{minX, minY}, []float64{lenX, lenY})
	return rect
}

// classicNoder implements classic robust noding: pairwise segment
// intersection via RobustLineIntersector, with rtreego pruning candidate
// pairs instead of a full O(n^2) scan.
type classicNoder struct{}

// NewClassicNoder returns a Noder implementing classic pairwise robust
// noding.
func NewClassicNoder() Noder { return classicNoder{} }

func (classicNoder) Node(edges []InputEdge, pm *geom.PrecisionModel) ([]NodedSegment, error) {
	var atoms []*atomicSegment
	for ei, e := range edges {
		for si := 0; si < len(e.Coords)-1; si++ {
			atoms = append(atoms, &atomicSegment{edgeIdx: ei, segIdx: si, a: e.Coords[si], b: e.Coords[si+1]})
		}
	}
	if len(atoms) == 0 {
		return nil, nil
	}

	tree := rtreego.NewTree(2, 4, 16)
	for _, a := range atoms {
		tree.Insert(a)
	}

	// splitParams[key] collects, for each atomic segment, the parametric
	// positions (0..1 along a->b) at which it must be split.
	type splitKey struct{ edgeIdx, segIdx int }
	splitParams := make(map[splitKey][]float64)
	addSplit := func(s *atomicSegment, p geom.Coordinate) {
		t := paramOf(s.a, s.b, p)
		k := splitKey{s.edgeIdx, s.segIdx}
		splitParams[k] = append(splitParams[k], t)
	}

	li := intersect.NewRobustLineIntersector(pm)
	seen := make(map[[2]int]bool)
	for _, s := range atoms {
		for _, cand := range tree.SearchIntersect(s.Bounds()) {
			o := cand.(*atomicSegment)
			if o == s {
				continue
			}
			key := pairKey(s, o)
			if seen[key] {
				continue
			}
			seen[key] = true

			li.ComputeIntersection(s.a, s.b, o.a, o.b)
			if !li.HasIntersection() {
				continue
			}
			for i := 0; i < li.GetIntersectionNum(); i++ {
				p := li.GetIntersection(i)
				addSplit(s, p)
				addSplit(o, p)
			}
		}
	}

	var out []NodedSegment
	for _, s := range atoms {
		k := splitKey{s.edgeIdx, s.segIdx}
		ts := append([]float64{0, 1}, splitParams[k]...)
		sort.Float64s(ts)
		edge := edges[s.edgeIdx]
		// Deduplicate and walk consecutive distinct parameters, emitting
		// one NodedSegment per sub-piece.
		uniq := dedupeSorted(ts)
		for i := 0; i < len(uniq)-1; i++ {
			t0, t1 := uniq[i], uniq[i+1]
			if t1-t0 < 1e-12 {
				continue
			}
			p0 := pm.Snap(lerp(s.a, s.b, t0))
			p1 := pm.Snap(lerp(s.a, s.b, t1))
			if p0.Equals(p1) {
				continue
			}
			out = append(out, NodedSegment{
				Coords:  []geom.Coordinate{p0, p1},
				Operand: edge.Operand,
				Lbl:     edge.Lbl,
			})
		}
	}
	return out, nil
}

func pairKey(a, b *atomicSegment) [2]int {
	ai := a.edgeIdx*1_000_000 + a.segIdx
	bi := b.edgeIdx*1_000_000 + b.segIdx
	if ai > bi {
		ai, bi = bi, ai
	}
	return [2]int{ai, bi}
}

func paramOf(a, b, p geom.Coordinate) float64 {
	d := b.Sub(a)
	norm2 := d.Dot(d)
	if norm2 == 0 {
		return 0
	}
	t := p.Sub(a).Dot(d) / norm2
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t
}

func lerp(a, b geom.Coordinate, t float64) geom.Coordinate {
	return geom.Coordinate{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
}

func dedupeSorted(ts []float64) []float64 {
	sort.Float64s(ts)
	out := ts[:0:0]
	var prev float64 = -1
	first := true
	for _, t := range ts {
		if first || t-prev > 1e-12 {
			out = append(out, t)
			prev = t
			first = false
		}
	}
	return out
}
