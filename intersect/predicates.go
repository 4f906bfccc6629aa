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

// Package intersect implements the robust predicates noding and labelling
// depend on: orientation (Sign) and the RobustLineIntersector. Sign tries
// a fast double-precision determinant first and only escalates to exact
// arithmetic when the fast path's error bound cannot rule out zero.
package intersect

import (
	"math/big"

	"github.com/planargeo/overlay/geom"
)

// dblEpsilon bounds the relative rounding error of a single double
// operation.
const dblEpsilon = 2.220446049250313e-16

// orientationErrorBound is the maximum magnitude error in computing the
// 2x2 determinant (b-a) x (c-a) in double arithmetic, proportional to the
// product of operand magnitudes and dblEpsilon.
const orientationErrorBound = 4 * dblEpsilon

// Direction is the result of the orientation predicate.
type Direction int

const (
	Clockwise Direction = -1
	Collinear Direction = 0
	CounterClockwise Direction = 1
)

// Sign returns the orientation of the triple (a, b, c): CounterClockwise if
// c is to the left of the directed line ab, Clockwise if to the right, and
// Collinear if the three points lie on a common line (within the robust
// cascade's exact-arithmetic resolution). A fast double-precision
// determinant (triageSign) is tried first, and only escalated to exact
// big.Rat arithmetic (exactSign) when the fast result's error bound cannot
// rule out the zero case.
func Sign(a, b, c geom.Coordinate) Direction {
	if d := triageSign(a, b, c); d != Collinear {
		return d
	}
	return exactSign(a, b, c)
}

func det2(ab, ac geom.Coordinate) float64 { return ab.X*ac.Y - ab.Y*ac.X }

func triageSign(a, b, c geom.Coordinate) Direction {
	ab := b.Sub(a)
	ac := c.Sub(a)
	det := det2(ab, ac)

	// Conservative error bound scaled by operand magnitude.
	bound := orientationErrorBound * (absf(ab.X)*absf(ac.Y) + absf(ab.Y)*absf(ac.X) + 1e-300)
	switch {
	case det > bound:
		return CounterClockwise
	case det < -bound:
		return Clockwise
	default:
		return Collinear
	}
}

// exactSign recomputes the determinant with exact rational arithmetic,
// used only on the rare near-zero cases triageSign cannot resolve.
func exactSign(a, b, c geom.Coordinate) Direction {
	ax, ay := new(big.Rat).SetFloat64(a.X), new(big.Rat).SetFloat64(a.Y)
	bx, by := new(big.Rat).SetFloat64(b.X), new(big.Rat).SetFloat64(b.Y)
	cx, cy := new(big.Rat).SetFloat64(c.X), new(big.Rat).SetFloat64(c.Y)

	abx := new(big.Rat).Sub(bx, ax)
	aby := new(big.Rat).Sub(by, ay)
	acx := new(big.Rat).Sub(cx, ax)
	acy := new(big.Rat).Sub(cy, ay)

	t1 := new(big.Rat).Mul(abx, acy)
	t2 := new(big.Rat).Mul(aby, acx)
	det := new(big.Rat).Sub(t1, t2)

	switch det.Sign() {
	case 1:
		return CounterClockwise
	case -1:
		return Clockwise
	default:
		return Collinear
	}
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
