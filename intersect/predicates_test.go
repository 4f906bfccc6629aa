package intersect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/planargeo/overlay/geom"
)

func TestSignOrientation(t *testing.T) {
	a := geom.Coordinate{X: 0, Y: 0}
	b := geom.Coordinate{X: 1, Y: 0}
	assert.Equal(t, CounterClockwise, Sign(a, b, geom.Coordinate{X: 0, Y: 1}))
	assert.Equal(t, Clockwise, Sign(a, b, geom.Coordinate{X: 0, Y: -1}))
	assert.Equal(t, Collinear, Sign(a, b, geom.Coordinate{X: 2, Y: 0}))
}

func TestSignExactFallback(t *testing.T) {
	a := geom.Coordinate{X: 0, Y: 0}
	b := geom.Coordinate{X: 1e8, Y: 1}
	c := geom.Coordinate{X: 2e8, Y: 2}
	assert.Equal(t, Collinear, Sign(a, b, c))
}
