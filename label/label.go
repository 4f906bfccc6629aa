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

// Package label implements the per-operand topological Label and the
// per-side signed Depth: the core topology primitives everything else in
// the engine builds on.
package label

import (
	"fmt"

	"github.com/planargeo/overlay/geom"
)

// TopoPosition is one operand's contribution to a Label: either
// NONE (uninitialized) or a complete ON/LEFT/RIGHT triple.
type TopoPosition struct {
	On, Left, Right geom.Location
}

// none reports whether this side carries no information at all.
func (t TopoPosition) none() bool {
	return t.On == geom.LocationNone && t.Left == geom.LocationNone && t.Right == geom.LocationNone
}

// isArea reports whether both LEFT and RIGHT are set, i.e. this operand
// has an area (polygon) interpretation on this edge.
func (t TopoPosition) isArea() bool {
	return t.Left != geom.LocationNone && t.Right != geom.LocationNone
}

func (t TopoPosition) flip() TopoPosition {
	return TopoPosition{On: t.On, Left: t.Right, Right: t.Left}
}

// merge combines t with o, taking the stricter (non-NONE) value on each
// side. Two conflicting non-NONE values is a programming error and panics
// rather than silently picking one, since it indicates the caller fed
// inconsistent topology into the same physical edge.
func (t TopoPosition) merge(o TopoPosition) TopoPosition {
	return TopoPosition{
		On:    mergeLoc(t.On, o.On),
		Left:  mergeLoc(t.Left, o.Left),
		Right: mergeLoc(t.Right, o.Right),
	}
}

func mergeLoc(a, b geom.Location) geom.Location {
	if a == geom.LocationNone {
		return b
	}
	if b == geom.LocationNone || a == b {
		return a
	}
	panic(fmt.Sprintf("label: conflicting locations %v vs %v", a, b))
}

// Label is a complete two-operand topological classification, attached to
// every Edge, DirectedEdge, and Node in the planar graph.
type Label struct {
	Side [2]TopoPosition
}

// NewLabel builds a label from the two operands' positions directly.
func NewLabel(op0, op1 TopoPosition) Label { return Label{Side: [2]TopoPosition{op0, op1}} }

// NewLineLabel builds a label for a line edge with a single ON location
// per operand (area sides left NONE).
func NewLineLabel(loc0, loc1 geom.Location) Label {
	return Label{Side: [2]TopoPosition{{On: loc0}, {On: loc1}}}
}

// NewAreaLabel builds an area-edge label for one operand, leaving the
// other operand's side entirely NONE (it is filled in later by the
// labeller or by merging with another edge).
func NewAreaLabel(operand int, on, left, right geom.Location) Label {
	var l Label
	l.Side[operand] = TopoPosition{On: on, Left: left, Right: right}
	return l
}

// IsNone reports whether operand i carries no information.
func (l Label) IsNone(operand int) bool { return l.Side[operand].none() }

// IsArea reports whether operand i is area-labelled (both sides set).
func (l Label) IsArea(operand int) bool { return l.Side[operand].isArea() }

// IsAreaAny reports whether either operand is area-labelled.
func (l Label) IsAreaAny() bool { return l.IsArea(0) || l.IsArea(1) }

// IsLineBoth reports whether both operands are set but neither is area —
// the condition a result line edge must satisfy.
func (l Label) IsLineBoth() bool {
	for i := 0; i < 2; i++ {
		if l.IsNone(i) || l.IsArea(i) {
			return false
		}
	}
	return true
}

// Flip swaps LEFT/RIGHT on both operands; used when merging a
// reverse-direction duplicate edge into its canonical forward twin.
func (l Label) Flip() Label {
	return Label{Side: [2]TopoPosition{l.Side[0].flip(), l.Side[1].flip()}}
}

// ToLine collapses operand i to an ON-only label, discarding LEFT/RIGHT.
// Used when an edge undergoes dimensional collapse on that operand.
func (l Label) ToLine(operand int) Label {
	out := l
	out.Side[operand] = TopoPosition{On: l.Side[operand].On}
	return out
}

// Merge combines l with o side-by-side, keeping the stricter
// (non-NONE) value wherever they disagree-by-absence, and panicking on a
// genuine conflict.
func (l Label) Merge(o Label) Label {
	return Label{Side: [2]TopoPosition{l.Side[0].merge(o.Side[0]), l.Side[1].merge(o.Side[1])}}
}

// SetSide sets operand i's On/Left/Right directly, overriding any prior
// value unconditionally (used when copying an operand's own node location,
// which must win over any prior computed value).
func (l Label) SetSide(operand int, pos TopoPosition) Label {
	out := l
	out.Side[operand] = pos
	return out
}

func (l Label) String() string {
	return fmt.Sprintf("[%v/%v/%v | %v/%v/%v]",
		l.Side[0].On, l.Side[0].Left, l.Side[0].Right,
		l.Side[1].On, l.Side[1].Left, l.Side[1].Right)
}
