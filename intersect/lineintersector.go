package intersect

import (
	"github.com/planargeo/overlay/geom"
)

// Crossing is the tri-state result of testing two segments against each
// other: disjoint, a single crossing point, or full collinear overlap.
type Crossing int

const (
	// CrossingNone: the segments do not meet at all.
	CrossingNone Crossing = iota
	// CrossingPoint: the segments meet at exactly one point.
	CrossingPoint
	// CrossingCollinear: the segments overlap along a sub-segment.
	CrossingCollinear
)

// RobustLineIntersector computes the intersection of two line segments at
// a given precision, snapping reported intersection coordinates to the
// bound PrecisionModel so noding splits land exactly on grid points.
type RobustLineIntersector struct {
	pm *geom.PrecisionModel

	kind   Crossing
	points [2]geom.Coordinate
	n      int
	// interior tracks whether the single intersection point (when n==1) is
	// interior to both input segments (not an endpoint of either).
	interior bool
}

// NewRobustLineIntersector returns an intersector bound to pm.
func NewRobustLineIntersector(pm *geom.PrecisionModel) *RobustLineIntersector {
	if pm == nil {
		pm = geom.NewFloatingPrecisionModel()
	}
	return &RobustLineIntersector{pm: pm}
}

// SetPrecisionModel rebinds the intersector to a new model.
func (li *RobustLineIntersector) SetPrecisionModel(pm *geom.PrecisionModel) { li.pm = pm }

// ComputeIntersection computes the intersection of segment p0p1 with
// segment q0q1 and records it for the Has/Is/GetIntersection* accessors.
func (li *RobustLineIntersector) ComputeIntersection(p0, p1, q0, q1 geom.Coordinate) {
	li.kind, li.points, li.n, li.interior = CrossingNone, [2]geom.Coordinate{}, 0, false

	s1 := Sign(p0, p1, q0)
	s2 := Sign(p0, p1, q1)
	if s1 == s2 && s1 != Collinear {
		return
	}
	s3 := Sign(q0, q1, p0)
	s4 := Sign(q0, q1, p1)
	if s3 == s4 && s3 != Collinear {
		return
	}

	if s1 != Collinear || s2 != Collinear || s3 != Collinear || s4 != Collinear {
		// General position (or a single touching endpoint): there is at
		// most one intersection point, found by solving the two line
		// equations directly.
		if pt, ok := lineLineIntersection(p0, p1, q0, q1); ok {
			li.kind = CrossingPoint
			li.n = 1
			li.points[0] = li.pm.Snap(pt)
			li.interior = !onEndpoint(li.points[0], p0, p1) && !onEndpoint(li.points[0], q0, q1)
		}
		return
	}

	// All four orientation tests are collinear: the segments lie on a
	// common line. Resolve by projecting onto the dominant axis and
	// intersecting the two 1D intervals.
	li.computeCollinear(p0, p1, q0, q1)
}

func onEndpoint(pt, a, b geom.Coordinate) bool { return pt.Equals(a) || pt.Equals(b) }

func lineLineIntersection(p0, p1, q0, q1 geom.Coordinate) (geom.Coordinate, bool) {
	d1 := p1.Sub(p0)
	d2 := q1.Sub(q0)
	denom := d1.Cross(d2)
	if denom == 0 {
		return geom.Coordinate{}, false
	}
	diff := q0.Sub(p0)
	t := diff.Cross(d2) / denom
	return geom.Coordinate{X: p0.X + t*d1.X, Y: p0.Y + t*d1.Y}, true
}

func (li *RobustLineIntersector) computeCollinear(p0, p1, q0, q1 geom.Coordinate) {
	// Parameterize all four points along the line through p0-p1 using
	// whichever ordinate varies most, to avoid dividing by a near-zero span.
	useX := absf(p1.X-p0.X) >= absf(p1.Y-p0.Y)
	param := func(c geom.Coordinate) float64 {
		if useX {
			return c.X
		}
		return c.Y
	}
	pa, pb := param(p0), param(p1)
	qa, qb := param(q0), param(q1)
	if pa > pb {
		pa, pb = pb, pa
	}
	if qa > qb {
		qa, qb = qb, qa
	}
	lo, hi := maxf(pa, qa), minf(pb, qb)
	if lo > hi {
		return
	}
	at := func(t float64) geom.Coordinate {
		// Reconstruct a point at parameter t along p0-p1 (the two segments
		// are collinear so either line reconstructs the same point).
		t0, t1 := param(p0), param(p1)
		if t1 == t0 {
			return p0
		}
		frac := (t - t0) / (t1 - t0)
		return geom.Coordinate{X: p0.X + frac*(p1.X-p0.X), Y: p0.Y + frac*(p1.Y-p0.Y)}
	}
	if lo == hi {
		li.kind = CrossingPoint
		li.n = 1
		li.points[0] = li.pm.Snap(at(lo))
		return
	}
	li.kind = CrossingCollinear
	li.n = 2
	li.points[0] = li.pm.Snap(at(lo))
	li.points[1] = li.pm.Snap(at(hi))
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// HasIntersection reports whether the two segments meet at all.
func (li *RobustLineIntersector) HasIntersection() bool { return li.kind != CrossingNone }

// IsInteriorIntersection reports whether the (single) intersection point
// is interior to both segments, i.e. not an endpoint of either.
func (li *RobustLineIntersector) IsInteriorIntersection() bool {
	return li.kind == CrossingPoint && li.interior
}

// GetIntersectionNum returns how many intersection points were found (0,
// 1, or 2 for a collinear overlap).
func (li *RobustLineIntersector) GetIntersectionNum() int { return li.n }

// GetIntersection returns the i'th intersection point.
func (li *RobustLineIntersector) GetIntersection(i int) geom.Coordinate { return li.points[i] }

// IsCollinear reports whether the two input segments overlap along a
// common sub-segment; collinear segments that are disjoint or meet at a
// single point report false.
func (li *RobustLineIntersector) IsCollinear() bool { return li.kind == CrossingCollinear }
