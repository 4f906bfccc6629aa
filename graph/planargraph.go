package graph

import (
	"math"
	"sort"

	"github.com/planargeo/overlay/geom"
)

// PlanarGraph is a node-and-directed-edge-star graph, built from a
// deduplicated EdgeTable. Nodes and directed edges live in two flat
// arenas indexed by int rather than linked by pointer, keeping the graph
// free of reference cycles.
type PlanarGraph struct {
	Edges         *EdgeTable
	Nodes         []*Node
	DirectedEdges []*DirectedEdge

	nodeIndex map[geom.Coordinate]int
}

// NewPlanarGraph returns a graph over the edges already collected in et.
func NewPlanarGraph(et *EdgeTable) *PlanarGraph {
	return &PlanarGraph{Edges: et, nodeIndex: make(map[geom.Coordinate]int)}
}

// GetOrAddNode returns the index of the node at c, creating it if absent.
func (g *PlanarGraph) GetOrAddNode(c geom.Coordinate) int {
	if idx, ok := g.nodeIndex[c]; ok {
		return idx
	}
	idx := len(g.Nodes)
	g.nodeIndex[c] = idx
	g.Nodes = append(g.Nodes, &Node{Coord: c})
	return idx
}

// Sym returns de's symmetric twin.
func (g *PlanarGraph) Sym(de *DirectedEdge) *DirectedEdge { return g.DirectedEdges[de.Sym] }

// Build constructs the directed-edge pair for every edge in the table and
// splices each into its origin node's star in CCW azimuth order.
// Degenerate (single-point) edges are skipped.
func (g *PlanarGraph) Build() {
	for edgeIdx, e := range g.Edges.edges {
		if len(e.Coords) < 2 {
			continue
		}
		origin := g.GetOrAddNode(e.Coords[0])
		to := g.GetOrAddNode(e.Coords[len(e.Coords)-1])

		fwdIdx := len(g.DirectedEdges)
		g.DirectedEdges = append(g.DirectedEdges, &DirectedEdge{
			EdgeIdx: edgeIdx, Forward: true, Origin: origin, To: to, Next: -1, Lbl: e.Lbl,
		})
		revIdx := len(g.DirectedEdges)
		g.DirectedEdges = append(g.DirectedEdges, &DirectedEdge{
			EdgeIdx: edgeIdx, Forward: false, Origin: to, To: origin, Next: -1, Lbl: e.Lbl.Flip(),
		})
		g.DirectedEdges[fwdIdx].Sym = revIdx
		g.DirectedEdges[revIdx].Sym = fwdIdx

		g.Nodes[origin].Star = append(g.Nodes[origin].Star, fwdIdx)
		g.Nodes[to].Star = append(g.Nodes[to].Star, revIdx)
	}
	for _, n := range g.Nodes {
		g.sortStarCCW(n)
	}
}

// sortStarCCW orders a node's directed-edge star by increasing azimuth of
// each edge's outgoing direction from the node.
func (g *PlanarGraph) sortStarCCW(n *Node) {
	origin := n.Coord
	azimuth := func(deIdx int) float64 {
		de := g.DirectedEdges[deIdx]
		c := g.Coords(de)
		next := c[1]
		return math.Atan2(next.Y-origin.Y, next.X-origin.X)
	}
	sort.Slice(n.Star, func(i, j int) bool { return azimuth(n.Star[i]) < azimuth(n.Star[j]) })
}

// CopyOperandNodes writes locs[coord] into operand i's ON location at every
// node keyed by coord, creating isolated nodes as needed. This overrides
// any prior value unconditionally, since an operand's own vertex position
// is authoritative for that operand's node label even if the labeller
// later computes something else from incident edges.
func (g *PlanarGraph) CopyOperandNodes(operand int, locs map[geom.Coordinate]geom.Location) {
	for c, loc := range locs {
		idx := g.GetOrAddNode(c)
		n := g.Nodes[idx]
		side := n.Lbl.Side[operand]
		side.On = loc
		n.Lbl = n.Lbl.SetSide(operand, side)
	}
}

// NextCCWSym returns the directed edge that is the sym of the next
// CCW-adjacent outgoing edge after de in de's origin node's star.
func (g *PlanarGraph) NextCCWSym(de *DirectedEdge) *DirectedEdge {
	n := g.Nodes[de.Origin]
	pos := -1
	for i, idx := range n.Star {
		if g.DirectedEdges[idx] == de {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil
	}
	nextIdx := n.Star[(pos+1)%len(n.Star)]
	return g.Sym(g.DirectedEdges[nextIdx])
}
