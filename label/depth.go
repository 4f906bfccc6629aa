package label

import "github.com/planargeo/overlay/geom"

// Depth tracks, per operand and per side (LEFT/RIGHT), an integer count of
// how many area coverages overlap a directed edge. Comparing the two
// sides after normalizing detects dimensional collapse when several edges
// with conflicting area labels are merged into one.
type Depth struct {
	d      [2][2]int // [operand][side], side 0=LEFT 1=RIGHT
	isNull bool
}

// NewNullDepth returns a depth in the "uninitialized" sentinel state used
// for a newly inserted, not-yet-duplicated edge.
func NewNullDepth() Depth { return Depth{isNull: true} }

// IsNull reports whether this depth has never been initialized.
func (d Depth) IsNull() bool { return d.isNull }

func sideIndex(s geom.Position) int {
	if s == geom.PositionRight {
		return 1
	}
	return 0
}

// InitializeFromLabel seeds a null depth from an existing label: any side
// already labelled INTERIOR starts at depth 1, EXTERIOR at depth 0. Called
// when an edge's first duplicate arrives, turning its existing label into
// a starting depth count.
func (d Depth) InitializeFromLabel(l Label) Depth {
	out := d
	out.isNull = false
	for op := 0; op < 2; op++ {
		if l.Side[op].Left == geom.LocationInterior {
			out.d[op][0] = 1
		}
		if l.Side[op].Right == geom.LocationInterior {
			out.d[op][1] = 1
		}
	}
	return out
}

// Add increments this depth by 1 on every side a label marks INTERIOR.
func (d Depth) Add(l Label) Depth {
	out := d
	out.isNull = false
	for op := 0; op < 2; op++ {
		if l.Side[op].Left == geom.LocationInterior {
			out.d[op][0]++
		}
		if l.Side[op].Right == geom.LocationInterior {
			out.d[op][1]++
		}
	}
	return out
}

// Normalize subtracts, per operand, the minimum of its two sides, so that
// depths stay non-negative and at least one side of each operand is 0.
func (d Depth) Normalize() Depth {
	out := d
	for op := 0; op < 2; op++ {
		m := out.d[op][0]
		if out.d[op][1] < m {
			m = out.d[op][1]
		}
		if m != 0 {
			out.d[op][0] -= m
			out.d[op][1] -= m
		}
	}
	return out
}

// Delta returns depth[op][LEFT] - depth[op][RIGHT] after normalization; 0
// indicates dimensional collapse on that operand.
func (d Depth) Delta(operand int) int { return d.d[operand][0] - d.d[operand][1] }

// At returns the raw depth count for (operand, side).
func (d Depth) At(operand int, side geom.Position) int { return d.d[operand][sideIndex(side)] }
