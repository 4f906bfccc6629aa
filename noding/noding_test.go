package noding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planargeo/overlay/geom"
	"github.com/planargeo/overlay/label"
)

func crossingEdges() []InputEdge {
	lbl0 := label.NewLineLabel(geom.LocationInterior, geom.LocationNone)
	lbl1 := label.NewLineLabel(geom.LocationNone, geom.LocationInterior)
	return []InputEdge{
		{Coords: []geom.Coordinate{{0, 2}, {4, 2}}, Operand: 0, Lbl: lbl0},
		{Coords: []geom.Coordinate{{2, 0}, {2, 4}}, Operand: 1, Lbl: lbl1},
	}
}

func TestClassicNoderSplitsAtCrossing(t *testing.T) {
	noder := NewClassicNoder()
	segs, err := noder.Node(crossingEdges(), geom.NewFloatingPrecisionModel())
	require.NoError(t, err)
	require.NoError(t, Validate(segs))

	// Each of the two input edges must be split into two segments at the
	// crossing point (2, 2).
	assert.Len(t, segs, 4)
	for _, s := range segs {
		for _, c := range s.Coords {
			if c.Equals(geom.Coordinate{X: 2, Y: 2}) {
				return
			}
		}
	}
	t.Fatal("no noded segment touches the crossing point")
}

func TestClassicNoderNoCrossing(t *testing.T) {
	noder := NewClassicNoder()
	edges := []InputEdge{
		{Coords: []geom.Coordinate{{0, 0}, {1, 0}}, Operand: 0},
		{Coords: []geom.Coordinate{{0, 5}, {1, 5}}, Operand: 1},
	}
	segs, err := noder.Node(edges, geom.NewFloatingPrecisionModel())
	require.NoError(t, err)
	assert.Len(t, segs, 2)
}

func TestSnapRoundingNoderSnapsToGrid(t *testing.T) {
	noder := NewSnapRoundingNoder()
	pm := geom.NewFixedPrecisionModel(10)
	edges := []InputEdge{
		{Coords: []geom.Coordinate{{0.04, 2.02}, {3.98, 1.97}}, Operand: 0},
	}
	segs, err := noder.Node(edges, pm)
	require.NoError(t, err)
	require.Len(t, segs, 1)
	for _, c := range segs[0].Coords {
		snapped := pm.Snap(c)
		assert.Equal(t, snapped, c)
	}
}

func TestValidateDetectsCollinearOverlap(t *testing.T) {
	segs := []NodedSegment{
		{Coords: []geom.Coordinate{{0, 0}, {10, 0}}},
		{Coords: []geom.Coordinate{{5, 0}, {15, 0}}},
	}
	assert.ErrorIs(t, Validate(segs), ErrNoding)
}
