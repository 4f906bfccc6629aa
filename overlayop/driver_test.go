package overlayop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planargeo/overlay/geom"
	"github.com/planargeo/overlay/locate"
)

func squarePolygon(x0, y0, x1, y1 float64) *geom.Polygon {
	return &geom.Polygon{Shell: []geom.Coordinate{
		{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0},
	}}
}

func totalArea(g geom.Geometry) float64 {
	coll, ok := g.(*geom.GeometryCollection)
	if !ok {
		return 0
	}
	var a float64
	for _, p := range coll.Polygons {
		a += p.Area()
	}
	return a
}

func runOverlay(t *testing.T, a, b *geom.Polygon, op OpCode) geom.Geometry {
	t.Helper()
	pm := geom.NewFloatingPrecisionModel()
	factory := geom.NewGeometryFactory(pm)
	result, err := Overlay(a, pm, b, pm, op, Options{}, factory, locate.Default{})
	require.NoError(t, err)
	return result
}

func TestOverlayIntersectionOfOverlappingSquares(t *testing.T) {
	a := squarePolygon(0, 0, 4, 4)
	b := squarePolygon(2, 2, 6, 6)

	result := runOverlay(t, a, b, Intersection)
	assert.InDelta(t, 4.0, totalArea(result), 1e-6)
}

func TestOverlayUnionOfOverlappingSquares(t *testing.T) {
	a := squarePolygon(0, 0, 4, 4)
	b := squarePolygon(2, 2, 6, 6)

	result := runOverlay(t, a, b, Union)
	assert.InDelta(t, 28.0, totalArea(result), 1e-6)
}

func TestOverlayDifferenceOfOverlappingSquares(t *testing.T) {
	a := squarePolygon(0, 0, 4, 4)
	b := squarePolygon(2, 2, 6, 6)

	result := runOverlay(t, a, b, Difference)
	assert.InDelta(t, 12.0, totalArea(result), 1e-6)
}

func TestOverlaySymDifferenceOfOverlappingSquares(t *testing.T) {
	a := squarePolygon(0, 0, 4, 4)
	b := squarePolygon(2, 2, 6, 6)

	result := runOverlay(t, a, b, SymDifference)
	assert.InDelta(t, 24.0, totalArea(result), 1e-6)
}

func TestOverlayDisjointSquaresUnion(t *testing.T) {
	a := squarePolygon(0, 0, 2, 2)
	b := squarePolygon(10, 10, 12, 12)

	result := runOverlay(t, a, b, Union)
	coll, ok := result.(*geom.GeometryCollection)
	require.True(t, ok)
	assert.Len(t, coll.Polygons, 2)
}

func TestOverlayDisjointSquaresIntersectionIsEmpty(t *testing.T) {
	a := squarePolygon(0, 0, 2, 2)
	b := squarePolygon(10, 10, 12, 12)

	result := runOverlay(t, a, b, Intersection)
	assert.True(t, result.IsEmpty())
	assert.Equal(t, 2, result.Dimension())
}

func TestOverlayIdenticalSquaresDifferenceIsEmpty(t *testing.T) {
	a := squarePolygon(0, 0, 4, 4)
	b := squarePolygon(0, 0, 4, 4)

	result := runOverlay(t, a, b, Difference)
	assert.True(t, result.IsEmpty())
}

// B sits entirely inside A with no shared vertex or crossing edge, so the
// two rings form separate connected components of the noded graph. Only
// labelDisjointComponents can resolve A's classification of B's ring.
func TestOverlayNestedSquaresIntersectionReturnsInner(t *testing.T) {
	a := squarePolygon(0, 0, 10, 10)
	b := squarePolygon(2, 2, 4, 4)

	result := runOverlay(t, a, b, Intersection)
	assert.InDelta(t, 4.0, totalArea(result), 1e-6)
}

func TestOverlayNestedSquaresUnionReturnsOuter(t *testing.T) {
	a := squarePolygon(0, 0, 10, 10)
	b := squarePolygon(2, 2, 4, 4)

	result := runOverlay(t, a, b, Union)
	assert.InDelta(t, 100.0, totalArea(result), 1e-6)
}

func TestOverlayNestedSquaresDifferenceIsAnnulus(t *testing.T) {
	a := squarePolygon(0, 0, 10, 10)
	b := squarePolygon(2, 2, 4, 4)

	result := runOverlay(t, a, b, Difference)
	assert.InDelta(t, 96.0, totalArea(result), 1e-6)
}
