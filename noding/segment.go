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

// Package noding splits the two input operands' edges so that no two
// output segments cross except at shared endpoints. Two strategies are
// offered, selected per call: classic robust noding (pairwise intersection
// with rtreego-pruned candidate pairing) and snap-rounding (a
// fixed-precision hot-pixel grid).
package noding

import (
	"errors"

	"github.com/planargeo/overlay/geom"
	"github.com/planargeo/overlay/label"
)

// NodedSegment is one two-point piece of an input edge segment between
// consecutive split points, produced by splitting each input segment at
// every collected intersection point, carrying the operand index it came
// from and its initial label.
type NodedSegment struct {
	Coords  []geom.Coordinate
	Operand int
	Lbl     label.Label
}

// InputEdge is a single polyline of an input operand, already carrying its
// initial per-edge label (e.g. ON=BOUNDARY, LEFT/RIGHT=EXTERIOR/INTERIOR
// for a polygon ring edge, derived from ring orientation before noding).
type InputEdge struct {
	Coords  []geom.Coordinate
	Operand int
	Lbl     label.Label
}

// ErrNoding is returned by Validate when two output segments meet other
// than at endpoints; the top-level driver reports this as a
// TopologyException.
var ErrNoding = errors.New("noding failure: output segments cross at a non-endpoint")

// Noder produces noded segment strings from a list of input edges drawn
// from both operands.
type Noder interface {
	Node(edges []InputEdge, pm *geom.PrecisionModel) ([]NodedSegment, error)
}

// Options configures a noding pass.
type Options struct {
	// ValidateOutput requests the internal crossing validator over the
	// noder's output. Neither noder in this package reads it; the overlay
	// driver's own Options.ValidateNoding decides whether Validate runs
	// (on by default for classic noding, off for snap-rounding).
	ValidateOutput bool
}
