package geom

// SignedArea returns twice the signed area enclosed by a closed ring
// (first coordinate == last), positive for counter-clockwise rings — the
// cheapest reliable way to tell a shell (CCW) from a hole (CW).
func SignedArea(ring []Coordinate) float64 {
	if len(ring) < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < len(ring)-1; i++ {
		a, b := ring[i], ring[i+1]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}

// Area returns the unsigned area enclosed by a closed ring.
func Area(ring []Coordinate) float64 {
	a := SignedArea(ring)
	if a < 0 {
		a = -a
	}
	return a / 2
}

// IsCCW reports whether a closed ring is oriented counter-clockwise.
func IsCCW(ring []Coordinate) bool { return SignedArea(ring) > 0 }

// IsRingClosed reports whether the first and last coordinates coincide.
func IsRingClosed(ring []Coordinate) bool {
	return len(ring) > 0 && ring[0].Equals(ring[len(ring)-1])
}

// PointInRing reports whether p lies inside the closed ring using the
// standard crossing-number test. Points exactly on the boundary may be
// reported either way (callers that care about boundary membership must
// test that separately, e.g. via locate.PointLocator).
func PointInRing(p Coordinate, ring []Coordinate) bool {
	inside := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[i], ring[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xint := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < xint {
				inside = !inside
			}
		}
	}
	return inside
}
