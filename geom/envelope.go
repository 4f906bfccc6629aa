package geom

import "math"

// Envelope is an axis-aligned bounding box, used by the noder to prune
// candidate segment pairs and by coverage tests in the line/point builders.
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyEnvelope returns an envelope that contains nothing; ExpandToInclude
// grows it correctly from this starting state.
func EmptyEnvelope() Envelope {
	return Envelope{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// IsEmpty reports whether this envelope contains no points.
func (e Envelope) IsEmpty() bool { return e.MinX > e.MaxX || e.MinY > e.MaxY }

// ExpandToInclude grows e, if necessary, to contain c.
func (e Envelope) ExpandToInclude(c Coordinate) Envelope {
	return Envelope{
		MinX: math.Min(e.MinX, c.X), MinY: math.Min(e.MinY, c.Y),
		MaxX: math.Max(e.MaxX, c.X), MaxY: math.Max(e.MaxY, c.Y),
	}
}

// Union returns the smallest envelope containing both e and o.
func (e Envelope) Union(o Envelope) Envelope {
	if e.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return e
	}
	return Envelope{
		MinX: math.Min(e.MinX, o.MinX), MinY: math.Min(e.MinY, o.MinY),
		MaxX: math.Max(e.MaxX, o.MaxX), MaxY: math.Max(e.MaxY, o.MaxY),
	}
}

// Intersects reports whether e and o share at least one point.
func (e Envelope) Intersects(o Envelope) bool {
	if e.IsEmpty() || o.IsEmpty() {
		return false
	}
	return e.MinX <= o.MaxX && e.MaxX >= o.MinX && e.MinY <= o.MaxY && e.MaxY >= o.MinY
}

// ContainsCoordinate reports whether c lies within e (inclusive).
func (e Envelope) ContainsCoordinate(c Coordinate) bool {
	return c.X >= e.MinX && c.X <= e.MaxX && c.Y >= e.MinY && c.Y <= e.MaxY
}

// EnvelopeOf returns the bounding envelope of a coordinate sequence.
func EnvelopeOf(coords []Coordinate) Envelope {
	env := EmptyEnvelope()
	for _, c := range coords {
		env = env.ExpandToInclude(c)
	}
	return env
}
