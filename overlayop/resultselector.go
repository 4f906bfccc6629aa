package overlayop

import "github.com/planargeo/overlay/graph"

// SelectResult marks every directed edge that belongs in op's result: an
// edge is a genuine result boundary iff op's predicate gives a different
// answer on its LEFT than on its RIGHT — crossing the edge has
// to actually flip the result's in/out status. An edge where every operand
// has LEFT==RIGHT (crossing it changes nothing for either operand, e.g. a
// collapsed duplicate) always fails that test and is never selected;
// critically, an edge where only ONE operand is ambiguous but the other
// still discriminates (e.g. one polygon's ring lying entirely inside the
// other's interior) is still selected when that operand's own LEFT/RIGHT
// difference flips the predicate. Of an edge and its sym, only the
// direction with the result interior on its RIGHT is kept, so ring
// tracing always has a consistent side to follow; the final pass cancels
// out the rare case where both still end up marked (a genuine
// anti-parallel duplicate), since tracing both would double the boundary.
func SelectResult(op OpCode, g *graph.PlanarGraph) {
	for _, de := range g.DirectedEdges {
		de.InResult = false
		de.IsInteriorAreaEdge = false
		if !de.Lbl.IsAreaAny() {
			continue
		}
		resultLeft := op.Predicate(de.Lbl.Side[0].Left, de.Lbl.Side[1].Left)
		resultRight := op.Predicate(de.Lbl.Side[0].Right, de.Lbl.Side[1].Right)
		if resultLeft == resultRight {
			de.IsInteriorAreaEdge = true
			continue
		}
		if resultRight {
			de.InResult = true
		}
	}

	visited := make([]bool, len(g.DirectedEdges))
	for i, de := range g.DirectedEdges {
		if visited[i] {
			continue
		}
		sym := g.Sym(de)
		visited[i] = true
		visited[de.Sym] = true
		if de.InResult && sym.InResult {
			de.InResult = false
			sym.InResult = false
		}
	}
}
