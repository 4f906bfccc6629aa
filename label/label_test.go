package label

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/planargeo/overlay/geom"
)

func TestLabelAreaAndLine(t *testing.T) {
	area := NewAreaLabel(0, geom.LocationBoundary, geom.LocationInterior, geom.LocationExterior)
	assert.True(t, area.IsArea(0))
	assert.False(t, area.IsArea(1))
	assert.True(t, area.IsAreaAny())
	assert.False(t, area.IsLineBoth())

	line := NewLineLabel(geom.LocationInterior, geom.LocationInterior)
	assert.False(t, line.IsArea(0))
	assert.True(t, line.IsLineBoth())
}

func TestLabelFlip(t *testing.T) {
	l := NewAreaLabel(0, geom.LocationBoundary, geom.LocationInterior, geom.LocationExterior)
	flipped := l.Flip()
	assert.Equal(t, geom.LocationExterior, flipped.Side[0].Left)
	assert.Equal(t, geom.LocationInterior, flipped.Side[0].Right)
}

func TestLabelMerge(t *testing.T) {
	a := NewAreaLabel(0, geom.LocationBoundary, geom.LocationInterior, geom.LocationExterior)
	b := NewLineLabel(geom.LocationNone, geom.LocationInterior)
	merged := a.Merge(b)
	assert.True(t, merged.IsArea(0))
	assert.Equal(t, geom.LocationInterior, merged.Side[1].On)
}

func TestLabelMergeConflictPanics(t *testing.T) {
	a := NewLineLabel(geom.LocationInterior, geom.LocationNone)
	b := NewLineLabel(geom.LocationExterior, geom.LocationNone)
	assert.Panics(t, func() { a.Merge(b) })
}

func TestLabelToLine(t *testing.T) {
	a := NewAreaLabel(0, geom.LocationBoundary, geom.LocationInterior, geom.LocationExterior)
	collapsed := a.ToLine(0)
	assert.False(t, collapsed.IsArea(0))
	assert.Equal(t, geom.LocationBoundary, collapsed.Side[0].On)
}

func TestDepthNormalizeAndDelta(t *testing.T) {
	d := NewNullDepth()
	assert.True(t, d.IsNull())

	l := NewAreaLabel(0, geom.LocationBoundary, geom.LocationInterior, geom.LocationExterior)
	d = d.InitializeFromLabel(l)
	assert.False(t, d.IsNull())
	assert.Equal(t, 1, d.At(0, geom.PositionLeft))
	assert.Equal(t, 0, d.At(0, geom.PositionRight))

	d = d.Add(l)
	assert.Equal(t, 2, d.At(0, geom.PositionLeft))

	norm := d.Normalize()
	assert.Equal(t, 2, norm.Delta(0))
}
