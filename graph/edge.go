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

// Package graph builds the deduplicated edge table and the planar graph of
// nodes and directed edges assembled from it.
package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/planargeo/overlay/geom"
	"github.com/planargeo/overlay/label"
)

// Edge is a deduplicated noded edge: an ordered coordinate sequence
// carrying a merged Label and signed Depth.
type Edge struct {
	Coords      []geom.Coordinate
	Lbl         label.Label
	Depth       label.Depth
	IsCollapsed bool
}

// newEdge constructs an edge with a null depth; the depth is filled in
// later as additional coincident edges are merged into it.
func newEdge(coords []geom.Coordinate, lbl label.Label) *Edge {
	return &Edge{Coords: coords, Lbl: lbl, Depth: label.NewNullDepth()}
}

// Reversed returns this edge's coordinate sequence reversed.
func (e *Edge) Reversed() []geom.Coordinate {
	out := make([]geom.Coordinate, len(e.Coords))
	for i, c := range e.Coords {
		out[len(out)-1-i] = c
	}
	return out
}

// IsPointwiseEqual reports coordinate-by-coordinate same-direction equality.
func (e *Edge) IsPointwiseEqual(o *Edge) bool {
	if len(e.Coords) != len(o.Coords) {
		return false
	}
	for i := range e.Coords {
		if !e.Coords[i].Equals(o.Coords[i]) {
			return false
		}
	}
	return true
}

// normKey returns a coordinate-sequence key that is identical for an edge
// and its reverse, used to deduplicate edges regardless of direction. It
// also reports whether coords was the reversed-relative-to-canonical
// direction, so callers can flip labels accordingly.
func normKey(coords []geom.Coordinate) (key string, reversed bool) {
	fwd := seqKey(coords)
	rev := seqKey(reverseCoords(coords))
	if fwd <= rev {
		return fwd, false
	}
	return rev, true
}

func seqKey(coords []geom.Coordinate) string {
	var b strings.Builder
	for _, c := range coords {
		b.WriteString(strconv.FormatFloat(c.X, 'g', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(c.Y, 'g', -1, 64))
		b.WriteByte(';')
	}
	return b.String()
}

func reverseCoords(coords []geom.Coordinate) []geom.Coordinate {
	out := make([]geom.Coordinate, len(coords))
	for i, c := range coords {
		out[len(out)-1-i] = c
	}
	return out
}

func (e *Edge) String() string {
	return fmt.Sprintf("Edge%v %v", e.Coords, e.Lbl)
}
