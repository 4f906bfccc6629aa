package graph

import (
	"github.com/planargeo/overlay/geom"
	"github.com/planargeo/overlay/label"
)

// DirectedEdge is one Edge traversed in a given direction. EdgeIdx/Forward
// identify the underlying Edge and orientation; Origin, Sym, and Next are
// stable handles into the PlanarGraph's arenas rather than pointers, so the
// graph stays free of reference cycles.
type DirectedEdge struct {
	EdgeIdx int
	Forward bool

	Origin int // node index this directed edge starts at
	To     int // node index this directed edge ends at
	Sym    int // directed edge index of the symmetric twin
	Next   int // directed edge index of the next in-result edge leaving To (ring-tracing link); -1 until linked

	Lbl                label.Label // forward-oriented label (Flip()ped for the reverse direction)
	InResult           bool
	IsInteriorAreaEdge bool
}

// Coords returns this directed edge's coordinate sequence oriented from
// Origin to To.
func (g *PlanarGraph) Coords(de *DirectedEdge) []geom.Coordinate {
	e := g.Edges.edges[de.EdgeIdx]
	if de.Forward {
		return e.Coords
	}
	return e.Reversed()
}
