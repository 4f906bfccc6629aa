package overlayop

import (
	"github.com/planargeo/overlay/geom"
	"github.com/planargeo/overlay/graph"
)

// BuildPoints turns every isolated node whose per-operand ON locations
// satisfy op's predicate into a result point, unless it is already
// covered by a result line or polygon.
func BuildPoints(g *graph.PlanarGraph, op OpCode, factory *geom.GeometryFactory, polygons []*geom.Polygon, lines []*geom.LineString) []*geom.Point {
	var out []*geom.Point
	for _, n := range g.Nodes {
		if !n.IsIsolated() {
			continue
		}
		if !op.Predicate(n.Lbl.Side[0].On, n.Lbl.Side[1].On) {
			continue
		}
		if coveredByPolygons(n.Coord, polygons) || coveredByLines(n.Coord, lines) {
			continue
		}
		out = append(out, factory.CreatePoint(n.Coord))
	}
	return out
}
