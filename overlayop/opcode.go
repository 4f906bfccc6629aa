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

// Package overlayop implements labelling, result selection, ring/polygon
// assembly, line/point assembly, and the top-level Overlay driver.
package overlayop

import "github.com/planargeo/overlay/geom"

// OpCode selects which Boolean combination Overlay computes.
type OpCode int

const (
	Intersection  OpCode = 1
	Union         OpCode = 2
	Difference    OpCode = 3
	SymDifference OpCode = 4
)

func (op OpCode) String() string {
	switch op {
	case Intersection:
		return "INTERSECTION"
	case Union:
		return "UNION"
	case Difference:
		return "DIFFERENCE"
	case SymDifference:
		return "SYMDIFFERENCE"
	default:
		return "UNKNOWN"
	}
}

// asInterior treats BOUNDARY as INTERIOR for the purposes of the result
// predicate below: only the interior/exterior split distinguishes the four
// Boolean operations.
func asInterior(loc geom.Location) geom.Location {
	if loc == geom.LocationBoundary {
		return geom.LocationInterior
	}
	return loc
}

// Predicate evaluates P(loc0, loc1) for this operation code.
func (op OpCode) Predicate(loc0, loc1 geom.Location) bool {
	loc0, loc1 = asInterior(loc0), asInterior(loc1)
	in0 := loc0 == geom.LocationInterior
	in1 := loc1 == geom.LocationInterior
	switch op {
	case Intersection:
		return in0 && in1
	case Union:
		return in0 || in1
	case Difference:
		return in0 && !in1
	case SymDifference:
		return in0 != in1
	default:
		return false
	}
}

// ResultDimension returns the dimension of the empty result geometry when
// an operation produces no points, lines, or polygons. dim0/dim1 are the
// operands' dimensions (use -1 for an empty operand).
func (op OpCode) ResultDimension(dim0, dim1 int) int {
	switch op {
	case Intersection:
		return minInt(dim0, dim1)
	case Union:
		return maxInt(dim0, dim1)
	case Difference:
		return dim0
	case SymDifference:
		return maxInt(dim0, dim1)
	default:
		return -1
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
