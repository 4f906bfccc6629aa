package overlayop

import (
	"github.com/planargeo/overlay/geom"
	"github.com/planargeo/overlay/graph"
	"github.com/planargeo/overlay/label"
	"github.com/planargeo/overlay/locate"
)

// Labeller completes the partial labels noding and edge-table dedup leave
// on the planar graph, in three passes: per-node star propagation,
// sym-pair merge, and node-label update, followed by component and
// isolated-node classification against a PointLocator.
type Labeller struct {
	Locator locate.PointLocator
	Geoms   [2]geom.Geometry
}

// Run executes all labelling passes over g in place.
func (lb Labeller) Run(g *graph.PlanarGraph) {
	for _, n := range g.Nodes {
		lb.fillStar(g, n)
	}
	lb.mergeSyms(g)
	lb.updateNodes(g)
	lb.labelDisjointComponents(g)
	lb.labelIsolated(g)
}

// fillStar walks node n's CCW directed-edge star once per operand,
// starting from an edge with a known label and propagating its leading
// (LEFT) location forward onto every edge lacking that operand's label —
// since consecutive wedges around a node share a boundary ray, the LEFT
// side of one edge is the same region as the RIGHT side of the next edge
// CCW.
func (lb Labeller) fillStar(g *graph.PlanarGraph, n *graph.Node) {
	star := n.Star
	if len(star) == 0 {
		return
	}
	for operand := 0; operand < 2; operand++ {
		start := -1
		for i, idx := range star {
			if !g.DirectedEdges[idx].Lbl.IsNone(operand) {
				start = i
				break
			}
		}
		if start < 0 {
			continue
		}
		curLoc := g.DirectedEdges[star[start]].Lbl.Side[operand].Left
		for step := 1; step < len(star); step++ {
			de := g.DirectedEdges[star[(start+step)%len(star)]]
			if de.Lbl.IsNone(operand) {
				de.Lbl = de.Lbl.SetSide(operand, label.TopoPosition{On: curLoc, Left: curLoc, Right: curLoc})
				continue
			}
			curLoc = de.Lbl.Side[operand].Left
		}
	}
}

// mergeSyms reconciles each edge's two directions, since they were filled
// independently from opposite endpoints and may each know something the
// other doesn't.
func (lb Labeller) mergeSyms(g *graph.PlanarGraph) {
	visited := make([]bool, len(g.DirectedEdges))
	for i, de := range g.DirectedEdges {
		if visited[i] {
			continue
		}
		sym := g.Sym(de)
		merged := de.Lbl.Merge(sym.Lbl.Flip())
		de.Lbl = merged
		sym.Lbl = merged.Flip()
		visited[i] = true
		visited[de.Sym] = true
	}
}

// updateNodes sets each node's own Label from the ON location of its
// incident directed edges.
func (lb Labeller) updateNodes(g *graph.PlanarGraph) {
	for _, n := range g.Nodes {
		for _, idx := range n.Star {
			de := g.DirectedEdges[idx]
			for operand := 0; operand < 2; operand++ {
				loc := de.Lbl.Side[operand].On
				if loc == geom.LocationNone {
					continue
				}
				side := n.Lbl.Side[operand]
				if side.On == geom.LocationNone {
					side.On = loc
					n.Lbl = n.Lbl.SetSide(operand, side)
				}
			}
		}
	}
}

// labelDisjointComponents handles the case fillStar cannot: a connected
// component of the graph (e.g. one operand's ring) that never shares a
// node with the other operand at all, so every edge and node in it still
// carries LocationNone on that operand after the per-node/sym passes.
// Such a component is entirely inside or entirely outside the other
// operand's geometry; one PointLocator query against a representative
// coordinate resolves it for the whole component, the same principle
// labelIsolated applies to single unconnected nodes, generalized here to
// components larger than a single point.
func (lb Labeller) labelDisjointComponents(g *graph.PlanarGraph) {
	n := len(g.Nodes)
	if n == 0 {
		return
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}
	for _, de := range g.DirectedEdges {
		union(de.Origin, de.To)
	}

	components := make(map[int][]int)
	for i := range g.Nodes {
		r := find(i)
		components[r] = append(components[r], i)
	}

	for _, members := range components {
		for operand := 0; operand < 2; operand++ {
			if lb.Geoms[operand] == nil {
				continue
			}
			if !componentIsNone(g, members, operand) {
				continue
			}
			rep := g.Nodes[members[0]].Coord
			loc := lb.Locator.Locate(rep, lb.Geoms[operand])
			pos := label.TopoPosition{On: loc, Left: loc, Right: loc}
			for _, nodeIdx := range members {
				node := g.Nodes[nodeIdx]
				side := node.Lbl.Side[operand]
				side.On = loc
				node.Lbl = node.Lbl.SetSide(operand, side)
				for _, deIdx := range node.Star {
					de := g.DirectedEdges[deIdx]
					if de.Lbl.IsNone(operand) {
						de.Lbl = de.Lbl.SetSide(operand, pos)
					}
				}
			}
		}
	}
}

func componentIsNone(g *graph.PlanarGraph, members []int, operand int) bool {
	for _, nodeIdx := range members {
		node := g.Nodes[nodeIdx]
		if !node.Lbl.IsNone(operand) {
			return false
		}
		for _, deIdx := range node.Star {
			if !g.DirectedEdges[deIdx].Lbl.IsNone(operand) {
				return false
			}
		}
	}
	return true
}

// labelIsolated classifies nodes with no incident edges directly against
// each operand's geometry via the PointLocator.
func (lb Labeller) labelIsolated(g *graph.PlanarGraph) {
	for _, n := range g.Nodes {
		if !n.IsIsolated() {
			continue
		}
		for operand := 0; operand < 2; operand++ {
			if n.Lbl.Side[operand].On != geom.LocationNone {
				continue
			}
			if lb.Geoms[operand] == nil {
				continue
			}
			loc := lb.Locator.Locate(n.Coord, lb.Geoms[operand])
			side := n.Lbl.Side[operand]
			side.On = loc
			n.Lbl = n.Lbl.SetSide(operand, side)
		}
	}
}
