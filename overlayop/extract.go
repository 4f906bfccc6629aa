package overlayop

import (
	"github.com/planargeo/overlay/geom"
	"github.com/planargeo/overlay/label"
	"github.com/planargeo/overlay/noding"
)

// extractOperand walks one input geometry, producing the InputEdges
// (already area- or line-labelled) plus the authoritative location of
// each of the operand's own vertices, to be copied onto the graph once
// it's built.
func extractOperand(operand int, g geom.Geometry) ([]noding.InputEdge, map[geom.Coordinate]geom.Location) {
	locs := make(map[geom.Coordinate]geom.Location)
	var edges []noding.InputEdge
	collectOperand(operand, g, &edges, locs)
	return edges, locs
}

func collectOperand(operand int, g geom.Geometry, edges *[]noding.InputEdge, locs map[geom.Coordinate]geom.Location) {
	switch v := g.(type) {
	case nil:
		return
	case *geom.Point:
		locs[v.C] = geom.LocationInterior
	case *geom.LineString:
		collectLine(operand, v.Coords, edges, locs)
	case *geom.Polygon:
		collectRing(operand, v.Shell, true, edges, locs)
		for _, h := range v.Holes {
			collectRing(operand, h, false, edges, locs)
		}
	case *geom.GeometryCollection:
		for _, p := range v.Points {
			collectOperand(operand, p, edges, locs)
		}
		for _, l := range v.Lines {
			collectOperand(operand, l, edges, locs)
		}
		for _, pg := range v.Polygons {
			collectOperand(operand, pg, edges, locs)
		}
	}
}

func collectLine(operand int, coords []geom.Coordinate, edges *[]noding.InputEdge, locs map[geom.Coordinate]geom.Location) {
	if len(coords) < 2 {
		return
	}
	lineLbl := newOperandLineLabel(operand)
	*edges = append(*edges, noding.InputEdge{Coords: coords, Operand: operand, Lbl: lineLbl})

	closed := geom.IsRingClosed(coords)
	for i, c := range coords {
		if !closed && (i == 0 || i == len(coords)-1) {
			locs[c] = geom.LocationBoundary
		} else if _, ok := locs[c]; !ok {
			locs[c] = geom.LocationInterior
		}
	}
}

func newOperandLineLabel(operand int) label.Label {
	if operand == 0 {
		return label.NewLineLabel(geom.LocationInterior, geom.LocationNone)
	}
	return label.NewLineLabel(geom.LocationNone, geom.LocationInterior)
}

func collectRing(operand int, ring []geom.Coordinate, shell bool, edges *[]noding.InputEdge, locs map[geom.Coordinate]geom.Location) {
	if len(ring) < 4 {
		return
	}
	oriented := ring
	switch {
	case shell && !geom.IsCCW(ring):
		oriented = reverseRing(ring)
	case !shell && geom.IsCCW(ring):
		oriented = reverseRing(ring)
	}
	for _, c := range oriented {
		locs[c] = geom.LocationBoundary
	}
	for i := 0; i < len(oriented)-1; i++ {
		seg := []geom.Coordinate{oriented[i], oriented[i+1]}
		*edges = append(*edges, noding.InputEdge{Coords: seg, Operand: operand, Lbl: newOperandAreaLabel(operand)})
	}
}

func newOperandAreaLabel(operand int) label.Label {
	return label.NewAreaLabel(operand, geom.LocationBoundary, geom.LocationInterior, geom.LocationExterior)
}

func reverseRing(ring []geom.Coordinate) []geom.Coordinate {
	out := make([]geom.Coordinate, len(ring))
	for i, c := range ring {
		out[len(out)-1-i] = c
	}
	return out
}
