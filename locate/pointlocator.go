// Copyright 2025 The Planargeo Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package locate implements a pure, thread-safe point-in-geometry
// classifier. The overlay engine calls it only for isolated nodes and
// line/area coverage tests; it never participates in noding or labelling
// directly.
package locate

import "github.com/planargeo/overlay/geom"

// PointLocator classifies a coordinate's position relative to a geometry.
type PointLocator interface {
	Locate(c geom.Coordinate, g geom.Geometry) geom.Location
}

// Default is the engine's built-in PointLocator: a crossing-number
// ray-casting test for polygons, exact-match/on-segment tests for points
// and linestrings.
type Default struct{}

// Locate implements PointLocator.
func (Default) Locate(c geom.Coordinate, g geom.Geometry) geom.Location {
	switch v := g.(type) {
	case *geom.Point:
		if c.Equals(v.C) {
			return geom.LocationInterior
		}
		return geom.LocationExterior
	case *geom.LineString:
		return locateOnLine(c, v.Coords)
	case *geom.Polygon:
		return locateInPolygon(c, v)
	case *geom.GeometryCollection:
		return locateInCollection(c, v)
	default:
		return geom.LocationExterior
	}
}

func locateOnLine(c geom.Coordinate, coords []geom.Coordinate) geom.Location {
	if len(coords) == 0 {
		return geom.LocationExterior
	}
	closed := geom.IsRingClosed(coords)
	for i := 0; i < len(coords)-1; i++ {
		a, b := coords[i], coords[i+1]
		if geom.DistanceToSegment(c, a, b) == 0 {
			// Endpoints of an open (non-closed) line are its boundary
			// under the OGC mod-2 rule for a single linestring; a closed
			// ring has no boundary.
			if !closed && (c.Equals(coords[0]) || c.Equals(coords[len(coords)-1])) {
				return geom.LocationBoundary
			}
			return geom.LocationInterior
		}
	}
	return geom.LocationExterior
}

func locateInPolygon(c geom.Coordinate, p *geom.Polygon) geom.Location {
	if onRingBoundary(c, p.Shell) {
		return geom.LocationBoundary
	}
	for _, h := range p.Holes {
		if onRingBoundary(c, h) {
			return geom.LocationBoundary
		}
	}
	if !geom.PointInRing(c, p.Shell) {
		return geom.LocationExterior
	}
	for _, h := range p.Holes {
		if geom.PointInRing(c, h) {
			return geom.LocationExterior
		}
	}
	return geom.LocationInterior
}

func onRingBoundary(c geom.Coordinate, ring []geom.Coordinate) bool {
	for i := 0; i < len(ring)-1; i++ {
		if geom.DistanceToSegment(c, ring[i], ring[i+1]) == 0 {
			return true
		}
	}
	return false
}

func locateInCollection(c geom.Coordinate, g *geom.GeometryCollection) geom.Location {
	best := geom.LocationExterior
	classify := func(loc geom.Location) {
		if loc == geom.LocationInterior {
			best = geom.LocationInterior
		} else if loc == geom.LocationBoundary && best != geom.LocationInterior {
			best = geom.LocationBoundary
		}
	}
	for _, p := range g.Points {
		classify(Default{}.Locate(c, p))
	}
	for _, l := range g.Lines {
		classify(Default{}.Locate(c, l))
	}
	for _, pg := range g.Polygons {
		classify(Default{}.Locate(c, pg))
	}
	return best
}
