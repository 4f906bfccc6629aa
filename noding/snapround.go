package noding

import (
	"sort"

	"github.com/planargeo/overlay/geom"
	"github.com/planargeo/overlay/intersect"
)

// snapRoundingNoder implements the snap-rounding strategy: every vertex and
// every computed intersection is snapped to the precision model's fixed
// grid (a "hot pixel"), and a near-vertex rule additionally forces a node
// wherever a segment passes close enough to an unrelated vertex that
// floating-point near-collinearity could otherwise hide a crossing.
type snapRoundingNoder struct{}

// NewSnapRoundingNoder returns a Noder implementing snap-rounding.
func NewSnapRoundingNoder() Noder { return snapRoundingNoder{} }

// nearVertexTau returns the near-vertex tolerance tau = 1/(scale*10), a
// fraction of the grid spacing small enough to never merge two distinct
// grid points.
func nearVertexTau(pm *geom.PrecisionModel) float64 {
	if pm == nil || pm.Kind != geom.Fixed || pm.Scale == 0 {
		return 0
	}
	return 1 / (pm.Scale * 10)
}

func (snapRoundingNoder) Node(edges []InputEdge, pm *geom.PrecisionModel) ([]NodedSegment, error) {
	tau := nearVertexTau(pm)

	// Collect every input vertex as a candidate hot pixel.
	var hotPixels []geom.Coordinate
	seen := make(map[geom.Coordinate]bool)
	addPixel := func(c geom.Coordinate) {
		snapped := pm.Snap(c)
		if !seen[snapped] {
			seen[snapped] = true
			hotPixels = append(hotPixels, snapped)
		}
	}
	for _, e := range edges {
		for _, c := range e.Coords {
			addPixel(c)
		}
	}

	// Classic pairwise intersection still finds genuine crossings; the
	// hot-pixel grid additionally snaps everything (including those
	// crossing points) onto the fixed grid, and the near-vertex rule below
	// forces extra nodes the crossing test alone could miss.
	li := intersect.NewRobustLineIntersector(pm)
	type atom struct {
		edgeIdx, segIdx int
		a, b            geom.Coordinate
	}
	var atoms []atom
	for ei, e := range edges {
		for si := 0; si < len(e.Coords)-1; si++ {
			atoms = append(atoms, atom{ei, si, e.Coords[si], e.Coords[si+1]})
		}
	}

	splitParams := make(map[[2]int][]float64)
	addSplit := func(a atom, p geom.Coordinate) {
		t := paramOf(a.a, a.b, p)
		k := [2]int{a.edgeIdx, a.segIdx}
		splitParams[k] = append(splitParams[k], t)
	}

	for i := 0; i < len(atoms); i++ {
		for j := i + 1; j < len(atoms); j++ {
			a, b := atoms[i], atoms[j]
			if a.edgeIdx == b.edgeIdx && a.segIdx == b.segIdx {
				continue
			}
			li.ComputeIntersection(a.a, a.b, b.a, b.b)
			if !li.HasIntersection() {
				continue
			}
			for k := 0; k < li.GetIntersectionNum(); k++ {
				p := li.GetIntersection(k)
				addSplit(a, p)
				addSplit(b, p)
			}
		}
	}

	// Near-vertex rule: for every hot pixel p and every segment (p0, p1)
	// not already incident to p, add an intersection at p if p is farther
	// than tau from both endpoints but closer than tau to the segment
	// itself.
	if tau > 0 {
		for _, p := range hotPixels {
			for _, a := range atoms {
				if p.Equals(a.a) || p.Equals(a.b) {
					continue
				}
				if p.Distance(a.a) >= tau && p.Distance(a.b) >= tau &&
					geom.DistanceToSegment(p, a.a, a.b) < tau {
					addSplit(a, p)
				}
			}
		}
	}

	var out []NodedSegment
	for _, a := range atoms {
		k := [2]int{a.edgeIdx, a.segIdx}
		ts := append([]float64{0, 1}, splitParams[k]...)
		uniq := dedupeSorted(ts)
		edge := edges[a.edgeIdx]
		for i := 0; i < len(uniq)-1; i++ {
			p0 := pm.Snap(lerp(a.a, a.b, uniq[i]))
			p1 := pm.Snap(lerp(a.a, a.b, uniq[i+1]))
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
	sort.Slice(out, func(i, j int) bool { return out[i].Operand < out[j].Operand })
	return out, nil
}
