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

// Package geom holds the value objects the overlay engine treats as
// external collaborators: coordinates, precision models, and the minimal
// point/line/polygon geometry types needed to construct and report a
// result. None of this package implements topology; it is the "geometry
// factory" side of the engine's narrow interfaces.
package geom

import (
	"fmt"
	"math"
)

// Coordinate is an ordered pair of finite IEEE-754 doubles.
type Coordinate struct {
	X, Y float64
}

func (c Coordinate) String() string { return fmt.Sprintf("(%v, %v)", c.X, c.Y) }

// Equals reports exact (bitwise-value) coordinate equality.
func (c Coordinate) Equals(o Coordinate) bool { return c.X == o.X && c.Y == o.Y }

// Sub returns c - o as a free vector.
func (c Coordinate) Sub(o Coordinate) Coordinate { return Coordinate{c.X - o.X, c.Y - o.Y} }

// Add returns c + o.
func (c Coordinate) Add(o Coordinate) Coordinate { return Coordinate{c.X + o.X, c.Y + o.Y} }

// Cross returns the z-component of the 3D cross product of c and o treated
// as vectors from the origin; this is twice the signed area of the
// triangle (origin, c, o).
func (c Coordinate) Cross(o Coordinate) float64 { return c.X*o.Y - c.Y*o.X }

// Dot returns the dot product of c and o.
func (c Coordinate) Dot(o Coordinate) float64 { return c.X*o.X + c.Y*o.Y }

// Distance returns the Euclidean distance between c and o.
func (c Coordinate) Distance(o Coordinate) float64 {
	dx, dy := c.X-o.X, c.Y-o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// CompareTo orders coordinates lexicographically by (X, Y), giving a total
// order suitable for use as a map/sort key.
func (c Coordinate) CompareTo(o Coordinate) int {
	if c.X != o.X {
		if c.X < o.X {
			return -1
		}
		return 1
	}
	if c.Y != o.Y {
		if c.Y < o.Y {
			return -1
		}
		return 1
	}
	return 0
}

// IsValid reports whether both ordinates are finite.
func (c Coordinate) IsValid() bool {
	return !math.IsNaN(c.X) && !math.IsInf(c.X, 0) &&
		!math.IsNaN(c.Y) && !math.IsInf(c.Y, 0)
}

// DistanceToSegment returns the minimum distance from p to the segment (a, b).
func DistanceToSegment(p, a, b Coordinate) float64 {
	if a.Equals(b) {
		return p.Distance(a)
	}
	ab := b.Sub(a)
	ap := p.Sub(a)
	t := ap.Dot(ab) / ab.Dot(ab)
	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}
	proj := Coordinate{a.X + t*ab.X, a.Y + t*ab.Y}
	return p.Distance(proj)
}
