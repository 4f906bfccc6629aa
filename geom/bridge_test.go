package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolygonIntersectsLineString(t *testing.T) {
	square := &Polygon{Shell: []Coordinate{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}}
	crossing := &LineString{Coords: []Coordinate{{-1, 2}, {5, 2}}}
	outside := &LineString{Coords: []Coordinate{{10, 10}, {20, 20}}}

	hit, err := square.Intersects(crossing)
	require.NoError(t, err)
	assert.True(t, hit)

	hit, err = square.Intersects(outside)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestPolygonContainsPoint(t *testing.T) {
	square := &Polygon{Shell: []Coordinate{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}}
	inside := &Point{C: Coordinate{2, 2}}
	outside := &Point{C: Coordinate{10, 10}}

	ok, err := square.Contains(inside)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = square.Contains(outside)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGeometryCollectionIntersects(t *testing.T) {
	pt := &Point{C: Coordinate{1, 1}}
	gc := &GeometryCollection{Points: []*Point{pt}}
	same := &Point{C: Coordinate{1, 1}}

	hit, err := gc.Intersects(same)
	require.NoError(t, err)
	assert.True(t, hit)
}
