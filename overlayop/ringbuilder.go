package overlayop

import (
	"github.com/planargeo/overlay/geom"
	"github.com/planargeo/overlay/graph"
)

// ringGroup is the set of minimal rings traced out of one maximal edge
// ring: at most one shell, plus zero or more holes nested directly inside
// it.
type ringGroup struct {
	shell []geom.Coordinate
	holes [][]geom.Coordinate
}

// BuildPolygons links in-result area edges into maximal edge rings,
// decomposes each into minimal rings, classifies each by orientation into
// a shell or a hole, and nests free holes into the smallest shell that
// contains them.
func BuildPolygons(g *graph.PlanarGraph, factory *geom.GeometryFactory) ([]*geom.Polygon, error) {
	linkResultEdges(g)

	maximal, err := traceMaximalRings(g)
	if err != nil {
		return nil, err
	}

	var shells [][]geom.Coordinate
	var freeHoles [][]geom.Coordinate
	for _, edgeRing := range maximal {
		for _, m := range decomposeMinimalRings(g, edgeRing) {
			// Result edges carry the result interior on their RIGHT, so a
			// shell is traced clockwise and a hole counter-clockwise; each
			// is reversed into the CCW-shell / CW-hole convention.
			if geom.IsCCW(m) {
				freeHoles = append(freeHoles, reverseRing(m))
			} else {
				shells = append(shells, reverseRing(m))
			}
		}
	}

	groups := make([]*ringGroup, len(shells))
	for i, s := range shells {
		groups[i] = &ringGroup{shell: s}
	}
	for _, hole := range freeHoles {
		best := -1
		bestArea := 0.0
		for i, s := range shells {
			if len(hole) == 0 || !geom.PointInRing(hole[0], s) {
				continue
			}
			a := geom.Area(s)
			if best < 0 || a < bestArea {
				best = i
				bestArea = a
			}
		}
		if best < 0 {
			var c *geom.Coordinate
			if len(hole) > 0 {
				c = &hole[0]
			}
			return nil, newTopologyException("unable to assign hole to a containing shell", c)
		}
		groups[best].holes = append(groups[best].holes, hole)
	}

	var out []*geom.Polygon
	for _, grp := range groups {
		out = append(out, factory.CreatePolygon(grp.shell, grp.holes))
	}
	return out, nil
}

// linkResultEdges sets, at each in-result directed edge's destination
// node, Next to the next CCW in-result edge originating there (found by
// scanning forward from the edge's own sym in that node's star) — the
// standard ring-tracing link.
func linkResultEdges(g *graph.PlanarGraph) {
	for _, de := range g.DirectedEdges {
		de.Next = -1
	}
	for _, de := range g.DirectedEdges {
		if !de.InResult {
			continue
		}
		n := g.Nodes[de.To]
		sym := g.Sym(de)
		pos := -1
		for i, idx := range n.Star {
			if g.DirectedEdges[idx] == sym {
				pos = i
				break
			}
		}
		if pos < 0 {
			continue
		}
		for step := 1; step <= len(n.Star); step++ {
			idx := n.Star[(pos+step)%len(n.Star)]
			cand := g.DirectedEdges[idx]
			if cand.InResult {
				de.Next = idx
				break
			}
		}
	}
}

// traceMaximalRings walks the Next links built by linkResultEdges into
// closed cycles of directed-edge indices, each a maximal edge ring.
func traceMaximalRings(g *graph.PlanarGraph) ([][]int, error) {
	visited := make([]bool, len(g.DirectedEdges))
	var rings [][]int
	for i, de := range g.DirectedEdges {
		if !de.InResult || visited[i] {
			continue
		}
		var ring []int
		cur := i
		for {
			if visited[cur] {
				if cur != i {
					c := g.Nodes[g.DirectedEdges[cur].Origin].Coord
					return nil, newTopologyException("broken result ring", &c)
				}
				break
			}
			visited[cur] = true
			ring = append(ring, cur)
			next := g.DirectedEdges[cur].Next
			if next < 0 {
				c := g.Nodes[g.DirectedEdges[cur].To].Coord
				return nil, newTopologyException("unlinked result edge", &c)
			}
			cur = next
		}
		rings = append(rings, ring)
	}
	return rings, nil
}

// decomposeMinimalRings converts one maximal edge ring (a cycle of
// directed-edge indices) into its coordinate sequence, splitting out a
// sub-cycle wherever the ring revisits a node (a node whose degree within
// the ring exceeds 2) to recover the minimal rings the maximal ring was
// stitched together from.
func decomposeMinimalRings(g *graph.PlanarGraph, edgeRing []int) [][]geom.Coordinate {
	nodes := make([]int, len(edgeRing))
	for i, deIdx := range edgeRing {
		nodes[i] = g.DirectedEdges[deIdx].Origin
	}

	var rings [][]geom.Coordinate
	lastSeenAt := make(map[int]int)
	var stack []int // indices into nodes/edgeRing still pending assembly
	for i, n := range nodes {
		if j, ok := lastSeenAt[n]; ok {
			// Close a sub-ring out of stack[j+1:] plus the repeated node,
			// splicing the shared node back to the tail of the stack.
			sub := append([]int{}, stack[j:]...)
			rings = append(rings, coordsOfEdgeRun(g, edgeRing, sub))
			stack = stack[:j+1]
			lastSeenAt[n] = j
			continue
		}
		lastSeenAt[n] = len(stack)
		stack = append(stack, i)
	}
	if len(stack) > 1 {
		rings = append(rings, coordsOfEdgeRun(g, edgeRing, stack))
	}
	return rings
}

// coordsOfEdgeRun returns the closed coordinate ring traced by the
// directed edges at positions idxPositions within edgeRing.
func coordsOfEdgeRun(g *graph.PlanarGraph, edgeRing []int, idxPositions []int) []geom.Coordinate {
	var out []geom.Coordinate
	for _, pos := range idxPositions {
		de := g.DirectedEdges[edgeRing[pos]]
		coords := g.Coords(de)
		if len(out) == 0 {
			out = append(out, coords...)
		} else {
			out = append(out, coords[1:]...)
		}
	}
	if len(out) > 0 && !out[0].Equals(out[len(out)-1]) {
		out = append(out, out[0])
	}
	return out
}
