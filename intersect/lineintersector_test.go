package intersect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/planargeo/overlay/geom"
)

func TestLineIntersectorGeneralPosition(t *testing.T) {
	li := NewRobustLineIntersector(geom.NewFloatingPrecisionModel())
	li.ComputeIntersection(
		geom.Coordinate{X: 0, Y: 0}, geom.Coordinate{X: 4, Y: 4},
		geom.Coordinate{X: 0, Y: 4}, geom.Coordinate{X: 4, Y: 0},
	)
	assert.True(t, li.HasIntersection())
	assert.Equal(t, 1, li.GetIntersectionNum())
	assert.True(t, li.IsInteriorIntersection())
	p := li.GetIntersection(0)
	assert.InDelta(t, 2.0, p.X, 1e-9)
	assert.InDelta(t, 2.0, p.Y, 1e-9)
}

func TestLineIntersectorNoIntersection(t *testing.T) {
	li := NewRobustLineIntersector(geom.NewFloatingPrecisionModel())
	li.ComputeIntersection(
		geom.Coordinate{X: 0, Y: 0}, geom.Coordinate{X: 1, Y: 0},
		geom.Coordinate{X: 0, Y: 5}, geom.Coordinate{X: 1, Y: 5},
	)
	assert.False(t, li.HasIntersection())
}

func TestLineIntersectorCollinearOverlap(t *testing.T) {
	li := NewRobustLineIntersector(geom.NewFloatingPrecisionModel())
	li.ComputeIntersection(
		geom.Coordinate{X: 0, Y: 0}, geom.Coordinate{X: 10, Y: 0},
		geom.Coordinate{X: 5, Y: 0}, geom.Coordinate{X: 15, Y: 0},
	)
	assert.True(t, li.HasIntersection())
	assert.True(t, li.IsCollinear())
	assert.Equal(t, 2, li.GetIntersectionNum())
}

func TestLineIntersectorEndpointTouch(t *testing.T) {
	li := NewRobustLineIntersector(geom.NewFloatingPrecisionModel())
	li.ComputeIntersection(
		geom.Coordinate{X: 0, Y: 0}, geom.Coordinate{X: 1, Y: 0},
		geom.Coordinate{X: 1, Y: 0}, geom.Coordinate{X: 1, Y: 1},
	)
	assert.True(t, li.HasIntersection())
	assert.False(t, li.IsInteriorIntersection())
}
