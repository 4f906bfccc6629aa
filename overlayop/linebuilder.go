package overlayop

import (
	"github.com/planargeo/overlay/geom"
	"github.com/planargeo/overlay/graph"
)

// BuildLines turns every deduplicated edge labelled as a line on both
// operands (never area on either) whose ON locations satisfy op's
// predicate into a result linestring, unless it is already covered by a
// result polygon.
func BuildLines(g *graph.PlanarGraph, op OpCode, factory *geom.GeometryFactory, polygons []*geom.Polygon) []*geom.LineString {
	var out []*geom.LineString
	for _, e := range g.Edges.Edges() {
		if !e.Lbl.IsLineBoth() {
			continue
		}
		if !op.Predicate(e.Lbl.Side[0].On, e.Lbl.Side[1].On) {
			continue
		}
		if len(e.Coords) < 2 {
			continue
		}
		if coveredByPolygons(midpoint(e.Coords), polygons) {
			continue
		}
		out = append(out, factory.CreateLineString(e.Coords))
	}
	return out
}
