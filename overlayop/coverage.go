package overlayop

import "github.com/planargeo/overlay/geom"

// coveredByPolygons reports whether c lies in the interior or on the
// boundary of any of polys — used by the line and point builders to drop
// a result candidate that is already covered by a higher-dimension result
// element.
func coveredByPolygons(c geom.Coordinate, polys []*geom.Polygon) bool {
	for _, p := range polys {
		if onRing(c, p.Shell) {
			return true
		}
		holeContains := false
		for _, h := range p.Holes {
			if onRing(c, h) {
				return true
			}
			if geom.PointInRing(c, h) {
				holeContains = true
			}
		}
		if !holeContains && geom.PointInRing(c, p.Shell) {
			return true
		}
	}
	return false
}

// coveredByLines reports whether c lies on any of lines.
func coveredByLines(c geom.Coordinate, lines []*geom.LineString) bool {
	for _, l := range lines {
		for i := 0; i < len(l.Coords)-1; i++ {
			if geom.DistanceToSegment(c, l.Coords[i], l.Coords[i+1]) == 0 {
				return true
			}
		}
	}
	return false
}

func onRing(c geom.Coordinate, ring []geom.Coordinate) bool {
	for i := 0; i < len(ring)-1; i++ {
		if geom.DistanceToSegment(c, ring[i], ring[i+1]) == 0 {
			return true
		}
	}
	return false
}

// midpoint returns a point guaranteed to lie on the first segment of
// coords, used as a representative interior test point for an edge.
func midpoint(coords []geom.Coordinate) geom.Coordinate {
	a, b := coords[0], coords[1]
	return geom.Coordinate{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
