package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateArithmetic(t *testing.T) {
	a := Coordinate{X: 1, Y: 2}
	b := Coordinate{X: 3, Y: 5}
	assert.Equal(t, Coordinate{X: 4, Y: 7}, a.Add(b))
	assert.Equal(t, Coordinate{X: -2, Y: -3}, a.Sub(b))
	assert.Equal(t, 1.0*5-2.0*3, a.Cross(b))
	assert.True(t, a.IsValid())
	assert.Equal(t, -1, a.CompareTo(b))
}

func TestDistanceToSegment(t *testing.T) {
	a := Coordinate{X: 0, Y: 0}
	b := Coordinate{X: 10, Y: 0}
	assert.Equal(t, 0.0, DistanceToSegment(Coordinate{X: 5, Y: 0}, a, b))
	assert.Equal(t, 3.0, DistanceToSegment(Coordinate{X: 5, Y: 3}, a, b))
	assert.Equal(t, 5.0, DistanceToSegment(Coordinate{X: -5, Y: 0}, a, b))
}

func TestPrecisionModelSnap(t *testing.T) {
	pm := NewFixedPrecisionModel(10)
	got := pm.Snap(Coordinate{X: 1.24, Y: 1.26})
	assert.InDelta(t, 1.2, got.X, 1e-9)
	assert.InDelta(t, 1.3, got.Y, 1e-9)

	floating := NewFloatingPrecisionModel()
	same := Coordinate{X: 1.23456789, Y: -9.87654321}
	assert.Equal(t, same, floating.Snap(same))
}

func TestPrecisionModelOrdering(t *testing.T) {
	floating := NewFloatingPrecisionModel()
	fixed := NewFixedPrecisionModel(1000)
	fixedCoarse := NewFixedPrecisionModel(10)

	assert.Equal(t, -1, floating.CompareTo(fixed))
	assert.Equal(t, 1, fixed.CompareTo(fixedCoarse))
	assert.Same(t, fixed, Higher(fixed, floating))
	assert.Same(t, fixed, Higher(floating, fixed))
}

func TestRingOrientationAndArea(t *testing.T) {
	ccw := []Coordinate{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}
	cw := []Coordinate{{0, 0}, {0, 4}, {4, 4}, {4, 0}, {0, 0}}
	assert.True(t, IsCCW(ccw))
	assert.False(t, IsCCW(cw))
	assert.Equal(t, 16.0, Area(ccw))
	assert.Equal(t, 16.0, Area(cw))
	assert.True(t, IsRingClosed(ccw))
}

func TestPointInRing(t *testing.T) {
	square := []Coordinate{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}
	assert.True(t, PointInRing(Coordinate{2, 2}, square))
	assert.False(t, PointInRing(Coordinate{5, 5}, square))
}

func TestEnvelope(t *testing.T) {
	env := EnvelopeOf([]Coordinate{{0, 0}, {4, 4}, {-1, 2}})
	assert.Equal(t, Envelope{MinX: -1, MinY: 0, MaxX: 4, MaxY: 4}, env)
	assert.True(t, env.ContainsCoordinate(Coordinate{0, 0}))
	assert.False(t, env.ContainsCoordinate(Coordinate{10, 10}))

	other := EnvelopeOf([]Coordinate{{10, 10}, {12, 12}})
	assert.False(t, env.Intersects(other))
	union := env.Union(other)
	assert.Equal(t, 12.0, union.MaxX)
}

func TestGeometryFactory(t *testing.T) {
	f := NewGeometryFactory(nil)
	require.NotNil(t, f.PM)

	pt := f.CreatePoint(Coordinate{1, 1})
	assert.Equal(t, 0, pt.Dimension())

	ls := f.CreateLineString([]Coordinate{{0, 0}, {1, 1}})
	assert.Equal(t, 1, ls.Dimension())
	assert.False(t, ls.IsClosed())

	pg := f.CreatePolygon([]Coordinate{{0, 0}, {1, 0}, {1, 1}, {0, 0}}, nil)
	assert.Equal(t, 2, pg.Dimension())

	empty := f.CreateEmpty(-1)
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, -1, empty.Dimension())

	coll := f.CreateCollection([]*Point{pt}, []*LineString{ls}, []*Polygon{pg})
	assert.False(t, coll.IsEmpty())
	assert.Equal(t, 2, coll.Dimension())
}
