package geom

import index "github.com/blevesearch/bleve_index_api"

// This file bridges the result geometry types to bleve's index.GeoJSON
// query surface (Intersects/Contains) with a segment-crossing test over
// Coordinate, so the geom package itself can satisfy the interface without
// depending on the intersect package (which already depends on geom, and
// would otherwise cycle).
//
// These are coarse vertex/segment tests, not full DE-9IM evaluation: good
// enough for an index's coarse filtering pass, not a substitute for
// Overlay when exact topology matters.

// orientation returns 0 for collinear, 1 for clockwise, 2 for
// counter-clockwise.
func orientation(p, q, r Coordinate) int {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case val == 0:
		return 0
	case val > 0:
		return 1
	default:
		return 2
	}
}

func onSegmentBetween(p, q, r Coordinate) bool {
	return q.X <= maxF(p.X, r.X) && q.X >= minF(p.X, r.X) &&
		q.Y <= maxF(p.Y, r.Y) && q.Y >= minF(p.Y, r.Y)
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// segmentsIntersect reports whether segment p1p2 intersects segment q1q2,
// including touching endpoints and collinear overlap.
func segmentsIntersect(p1, p2, q1, q2 Coordinate) bool {
	o1 := orientation(p1, p2, q1)
	o2 := orientation(p1, p2, q2)
	o3 := orientation(q1, q2, p1)
	o4 := orientation(q1, q2, p2)

	if o1 != o2 && o3 != o4 {
		return true
	}
	if o1 == 0 && onSegmentBetween(p1, q1, p2) {
		return true
	}
	if o2 == 0 && onSegmentBetween(p1, q2, p2) {
		return true
	}
	if o3 == 0 && onSegmentBetween(q1, p1, q2) {
		return true
	}
	if o4 == 0 && onSegmentBetween(q1, p2, q2) {
		return true
	}
	return false
}

// coordsAndEnvelopeOf recovers the coordinate sequence and envelope of
// any index.GeoJSON value this package produced; a shape implemented by
// some other index.GeoJSON provider reports ok=false, since there is no
// portable way to recover its coordinates through that interface alone.
func coordsAndEnvelopeOf(g index.GeoJSON) (coords []Coordinate, env Envelope, ok bool) {
	switch v := g.(type) {
	case *Point:
		return []Coordinate{v.C}, v.Envelope(), true
	case *LineString:
		return v.Coords, v.Envelope(), true
	case *Polygon:
		out := append([]Coordinate{}, v.Shell...)
		for _, h := range v.Holes {
			out = append(out, h...)
		}
		return out, v.Envelope(), true
	default:
		return nil, Envelope{}, false
	}
}

func segmentsOf(coords []Coordinate) [][2]Coordinate {
	var out [][2]Coordinate
	for i := 0; i+1 < len(coords); i++ {
		out = append(out, [2]Coordinate{coords[i], coords[i+1]})
	}
	return out
}

func anySegmentIntersects(a, b []Coordinate) bool {
	for _, sa := range segmentsOf(a) {
		for _, sb := range segmentsOf(b) {
			if segmentsIntersect(sa[0], sa[1], sb[0], sb[1]) {
				return true
			}
		}
	}
	return false
}

func anyVertexIn(coords []Coordinate, p *Polygon) bool {
	for _, c := range coords {
		if !PointInRing(c, p.Shell) {
			continue
		}
		inHole := false
		for _, h := range p.Holes {
			if PointInRing(c, h) {
				inHole = true
				break
			}
		}
		if !inHole {
			return true
		}
	}
	return false
}

func allVerticesIn(coords []Coordinate, p *Polygon) bool {
	for _, c := range coords {
		if !anyVertexIn([]Coordinate{c}, p) {
			return false
		}
	}
	return true
}

// shapesIntersect implements the shared Intersects logic for any of this
// package's concrete shapes against an arbitrary index.GeoJSON value.
func shapesIntersect(selfCoords []Coordinate, selfEnv Envelope, selfPolygon *Polygon, other index.GeoJSON) (bool, error) {
	if gc, isColl := other.(*GeometryCollection); isColl {
		for _, m := range gc.Members() {
			if hit, err := shapesIntersect(selfCoords, selfEnv, selfPolygon, m); err == nil && hit {
				return true, nil
			}
		}
		return false, nil
	}
	otherCoords, otherEnv, ok := coordsAndEnvelopeOf(other)
	if !ok {
		return false, nil
	}
	if !selfEnv.Intersects(otherEnv) {
		return false, nil
	}
	if selfPolygon != nil && anyVertexIn(otherCoords, selfPolygon) {
		return true, nil
	}
	if otherPolygon, isPoly := other.(*Polygon); isPoly && anyVertexIn(selfCoords, otherPolygon) {
		return true, nil
	}
	if len(selfCoords) == 1 || len(otherCoords) == 1 {
		// A lone point has no segments of its own; fall back to an
		// exact-match / on-segment test against the other shape.
		for _, a := range selfCoords {
			for _, b := range otherCoords {
				if a.Equals(b) {
					return true, nil
				}
			}
			for _, seg := range segmentsOf(otherCoords) {
				if DistanceToSegment(a, seg[0], seg[1]) == 0 {
					return true, nil
				}
			}
		}
		for _, b := range otherCoords {
			for _, seg := range segmentsOf(selfCoords) {
				if DistanceToSegment(b, seg[0], seg[1]) == 0 {
					return true, nil
				}
			}
		}
		return false, nil
	}
	return anySegmentIntersects(selfCoords, otherCoords), nil
}

// Intersects satisfies index.GeoJSON: other must be one of this package's
// concrete shapes (or a GeometryCollection of them) for a meaningful
// result; any other implementation reports no intersection.
func (p *Point) Intersects(other index.GeoJSON) (bool, error) {
	return shapesIntersect([]Coordinate{p.C}, p.Envelope(), nil, other)
}

// Intersects satisfies index.GeoJSON.
func (l *LineString) Intersects(other index.GeoJSON) (bool, error) {
	return shapesIntersect(l.Coords, l.Envelope(), nil, other)
}

// Intersects satisfies index.GeoJSON.
func (pg *Polygon) Intersects(other index.GeoJSON) (bool, error) {
	coords, _, _ := coordsAndEnvelopeOf(pg)
	return shapesIntersect(coords, pg.Envelope(), pg, other)
}

// Intersects satisfies index.GeoJSON: true if any member intersects other.
func (g *GeometryCollection) Intersects(other index.GeoJSON) (bool, error) {
	for _, m := range g.Members() {
		if hit, err := m.Intersects(other); err == nil && hit {
			return true, nil
		}
	}
	return false, nil
}

// Contains reports whether other is a point equal to p: a point cannot
// contain anything with positive extent.
func (p *Point) Contains(other index.GeoJSON) (bool, error) {
	o, ok := other.(*Point)
	if !ok {
		return false, nil
	}
	return p.C.Equals(o.C), nil
}

// Contains reports whether every vertex of other lies on l.
func (l *LineString) Contains(other index.GeoJSON) (bool, error) {
	otherCoords, _, ok := coordsAndEnvelopeOf(other)
	if !ok {
		return false, nil
	}
	for _, c := range otherCoords {
		onLine := false
		for _, seg := range segmentsOf(l.Coords) {
			if DistanceToSegment(c, seg[0], seg[1]) == 0 {
				onLine = true
				break
			}
		}
		if !onLine {
			return false, nil
		}
	}
	return true, nil
}

// Contains reports whether other lies entirely within pg (shell minus
// holes), tested vertex-wise.
func (pg *Polygon) Contains(other index.GeoJSON) (bool, error) {
	otherCoords, _, ok := coordsAndEnvelopeOf(other)
	if !ok {
		return false, nil
	}
	return allVerticesIn(otherCoords, pg), nil
}

// Contains reports whether other is contained in at least one member,
// mirroring Intersects' any-member semantics.
func (g *GeometryCollection) Contains(other index.GeoJSON) (bool, error) {
	for _, m := range g.Members() {
		if hit, err := m.Contains(other); err == nil && hit {
			return true, nil
		}
	}
	return false, nil
}
