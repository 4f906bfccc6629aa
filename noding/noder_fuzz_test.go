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

package noding

import (
	"math"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planargeo/overlay/geom"
	"github.com/planargeo/overlay/label"
)

// randomEdge fills an InputEdge with two finite, boundedly-sized
// coordinates so the fuzzed segments stay in a region small enough that
// random pairs are likely to actually cross.
func randomEdge(f *fuzz.Fuzzer, operand int) InputEdge {
	var x0, y0, x1, y1 float64
	for _, v := range []*float64{&x0, &y0, &x1, &y1} {
		f.Fuzz(v)
		*v = math.Mod(*v, 20)
		if math.IsNaN(*v) || math.IsInf(*v, 0) {
			*v = 0
		}
	}
	lbl := label.NewLineLabel(geom.LocationInterior, geom.LocationNone)
	return InputEdge{
		Coords:  []geom.Coordinate{{X: x0, Y: y0}, {X: x1, Y: y1}},
		Operand: operand,
		Lbl:     lbl,
	}
}

// TestClassicNoderFuzzProducesNonCrossingSegments feeds the classic noder
// many rounds of randomly generated, frequently-crossing segment sets and
// asserts its invariant (no two output segments cross except at a shared
// endpoint) holds every time, via the same Validate check
// TestValidateDetectsCollinearOverlap exercises directly.
func TestClassicNoderFuzzProducesNonCrossingSegments(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(2, 2)
	noder := NewClassicNoder()
	pm := geom.NewFloatingPrecisionModel()

	for round := 0; round < 200; round++ {
		n := 2 + round%4
		edges := make([]InputEdge, 0, n)
		for i := 0; i < n; i++ {
			e := randomEdge(f, i%2)
			if e.Coords[0].Equals(e.Coords[1]) {
				continue
			}
			edges = append(edges, e)
		}
		if len(edges) < 2 {
			continue
		}

		segs, err := noder.Node(edges, pm)
		require.NoError(t, err)
		assert.NoError(t, Validate(segs), "round %d: %+v", round, edges)
	}
}
