package overlayop

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/planargeo/overlay/geom"
)

func TestPredicateTreatsBoundaryAsInterior(t *testing.T) {
	assert.True(t, Intersection.Predicate(geom.LocationBoundary, geom.LocationInterior))
	assert.False(t, Intersection.Predicate(geom.LocationBoundary, geom.LocationExterior))
	assert.True(t, Union.Predicate(geom.LocationExterior, geom.LocationInterior))
	assert.True(t, Difference.Predicate(geom.LocationInterior, geom.LocationExterior))
	assert.False(t, Difference.Predicate(geom.LocationInterior, geom.LocationInterior))
	assert.True(t, SymDifference.Predicate(geom.LocationInterior, geom.LocationExterior))
	assert.False(t, SymDifference.Predicate(geom.LocationInterior, geom.LocationInterior))
}

func TestResultDimension(t *testing.T) {
	assert.Equal(t, 0, Intersection.ResultDimension(0, 2))
	assert.Equal(t, 2, Union.ResultDimension(0, 2))
	assert.Equal(t, 1, Difference.ResultDimension(1, 2))
	assert.Equal(t, 2, SymDifference.ResultDimension(0, 2))
}
