package overlayop

import (
	"github.com/planargeo/overlay/geom"
	"github.com/planargeo/overlay/noding"
)

// Options configures one Overlay call.
type Options struct {
	// Noder selects the noding strategy. Nil selects classic robust noding
	// unless NodingPrecision is a Fixed model, in which case snap-rounding
	// is used, since a fixed grid makes snap-rounding's hot-pixel approach
	// both correct and cheap.
	Noder noding.Noder

	// NodingPrecision overrides the precision model noding is performed at.
	// Nil selects the higher-precision of the two operands' models.
	NodingPrecision *geom.PrecisionModel

	// ValidateNoding overrides whether the noder's output is checked for
	// remaining crossings. Only consulted when Noder is nil; an explicitly
	// supplied Noder is responsible for its own validation policy.
	ValidateNoding *bool
}

// resolve returns the noder to use and whether its output should be run
// through noding.Validate.
func (o Options) resolve(pm *geom.PrecisionModel) (noding.Noder, bool) {
	if o.Noder != nil {
		validate := false
		if o.ValidateNoding != nil {
			validate = *o.ValidateNoding
		}
		return o.Noder, validate
	}
	if pm != nil && pm.Kind == geom.Fixed {
		validate := false
		if o.ValidateNoding != nil {
			validate = *o.ValidateNoding
		}
		return noding.NewSnapRoundingNoder(), validate
	}
	validate := true
	if o.ValidateNoding != nil {
		validate = *o.ValidateNoding
	}
	return noding.NewClassicNoder(), validate
}
