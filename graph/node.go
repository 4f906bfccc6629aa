package graph

import (
	"github.com/planargeo/overlay/geom"
	"github.com/planargeo/overlay/label"
)

// Node is a coordinate shared by zero or more directed edges, plus its own
// Label. A node with an empty star is isolated.
type Node struct {
	Coord geom.Coordinate
	Lbl   label.Label
	Star  []int // indices into PlanarGraph.DirectedEdges, CCW by azimuth
}

// IsIsolated reports whether no directed edge originates at this node.
func (n *Node) IsIsolated() bool { return len(n.Star) == 0 }
