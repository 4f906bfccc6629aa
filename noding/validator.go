package noding

import (
	"github.com/planargeo/overlay/geom"
	"github.com/planargeo/overlay/intersect"
)

// Validate re-checks that no two noded segments meet anywhere other than
// at an endpoint of both, performing the all-pairs crossing check and
// reporting on the first offending pair found. Coincident duplicate
// segments (same endpoints) pass, since the edge table merges them.
func Validate(segs []NodedSegment) error {
	li := intersect.NewRobustLineIntersector(geom.NewFloatingPrecisionModel())
	for i := 0; i < len(segs); i++ {
		a0, a1 := segs[i].Coords[0], segs[i].Coords[len(segs[i].Coords)-1]
		for j := i + 1; j < len(segs); j++ {
			b0, b1 := segs[j].Coords[0], segs[j].Coords[len(segs[j].Coords)-1]
			li.ComputeIntersection(a0, a1, b0, b1)
			if !li.HasIntersection() {
				continue
			}
			for k := 0; k < li.GetIntersectionNum(); k++ {
				p := li.GetIntersection(k)
				if !isEndpointOf(p, a0, a1) || !isEndpointOf(p, b0, b1) {
					return ErrNoding
				}
			}
		}
	}
	return nil
}

func isEndpointOf(p, a, b geom.Coordinate) bool { return p.Equals(a) || p.Equals(b) }
