package geom

import "math"

// PrecisionKind selects the rounding regime a PrecisionModel enforces.
type PrecisionKind int

const (
	// Floating keeps full double precision.
	Floating PrecisionKind = iota
	// FloatingSingle rounds to single-precision float granularity.
	FloatingSingle
	// Fixed snaps ordinates to a 1/Scale grid.
	Fixed
)

// PrecisionModel describes the precision at which coordinates are
// interpreted. Fixed models carry a positive Scale; Snap rounds each
// ordinate to the nearest grid point at 1/Scale spacing.
type PrecisionModel struct {
	Kind  PrecisionKind
	Scale float64 // only meaningful when Kind == Fixed
}

// NewFloatingPrecisionModel returns the default, unrounded model.
func NewFloatingPrecisionModel() *PrecisionModel {
	return &PrecisionModel{Kind: Floating}
}

// NewFixedPrecisionModel returns a model that snaps to a 1/scale grid.
// scale must be positive.
func NewFixedPrecisionModel(scale float64) *PrecisionModel {
	return &PrecisionModel{Kind: Fixed, Scale: scale}
}

// Snap rounds c to this model's grid. Floating and FloatingSingle models
// return c unchanged (FloatingSingle is tracked only for ordering purposes,
// per spec; this engine does not need to truncate to float32 bits to
// preserve that ordering).
func (pm *PrecisionModel) Snap(c Coordinate) Coordinate {
	if pm == nil || pm.Kind != Fixed {
		return c
	}
	return Coordinate{
		X: math.Round(c.X*pm.Scale) / pm.Scale,
		Y: math.Round(c.Y*pm.Scale) / pm.Scale,
	}
}

// rank orders precision strictly: Floating < FloatingSingle < Fixed(scale),
// and among Fixed models, larger scale (finer grid) is higher precision.
func (pm *PrecisionModel) rank() float64 {
	switch pm.Kind {
	case Floating:
		return 0
	case FloatingSingle:
		return 1
	default: // Fixed
		return 1 + pm.Scale
	}
}

// CompareTo orders precision models by increasing precision: floating is
// least precise, and among fixed models a larger scale (finer grid) wins.
// Returns -1, 0, or 1.
func (pm *PrecisionModel) CompareTo(o *PrecisionModel) int {
	a, b := pm.rank(), o.rank()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Higher returns whichever of pm, o has greater precision (ties favor pm).
func Higher(pm, o *PrecisionModel) *PrecisionModel {
	if o.CompareTo(pm) > 0 {
		return o
	}
	return pm
}

// GridSize returns the spacing of this model's snap grid, or 0 for
// Floating/FloatingSingle models (no grid).
func (pm *PrecisionModel) GridSize() float64 {
	if pm == nil || pm.Kind != Fixed || pm.Scale == 0 {
		return 0
	}
	return 1 / pm.Scale
}
