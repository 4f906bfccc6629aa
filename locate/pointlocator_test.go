package locate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/planargeo/overlay/geom"
)

func square() *geom.Polygon {
	return &geom.Polygon{Shell: []geom.Coordinate{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}}
}

func TestLocateInPolygon(t *testing.T) {
	loc := Default{}
	sq := square()
	assert.Equal(t, geom.LocationInterior, loc.Locate(geom.Coordinate{2, 2}, sq))
	assert.Equal(t, geom.LocationBoundary, loc.Locate(geom.Coordinate{0, 2}, sq))
	assert.Equal(t, geom.LocationExterior, loc.Locate(geom.Coordinate{10, 10}, sq))
}

func TestLocateInPolygonWithHole(t *testing.T) {
	loc := Default{}
	sq := square()
	sq.Holes = [][]geom.Coordinate{{{1, 1}, {3, 1}, {3, 3}, {1, 3}, {1, 1}}}
	assert.Equal(t, geom.LocationExterior, loc.Locate(geom.Coordinate{2, 2}, sq))
	assert.Equal(t, geom.LocationInterior, loc.Locate(geom.Coordinate{0.5, 0.5}, sq))
}

func TestLocateOnLine(t *testing.T) {
	loc := Default{}
	line := &geom.LineString{Coords: []geom.Coordinate{{0, 0}, {10, 0}}}
	assert.Equal(t, geom.LocationBoundary, loc.Locate(geom.Coordinate{0, 0}, line))
	assert.Equal(t, geom.LocationInterior, loc.Locate(geom.Coordinate{5, 0}, line))
	assert.Equal(t, geom.LocationExterior, loc.Locate(geom.Coordinate{5, 5}, line))
}

func TestLocatePoint(t *testing.T) {
	loc := Default{}
	pt := &geom.Point{C: geom.Coordinate{1, 1}}
	assert.Equal(t, geom.LocationInterior, loc.Locate(geom.Coordinate{1, 1}, pt))
	assert.Equal(t, geom.LocationExterior, loc.Locate(geom.Coordinate{2, 2}, pt))
}
