package overlayop

import (
	"fmt"

	"github.com/planargeo/overlay/geom"
	"github.com/planargeo/overlay/graph"
	"github.com/planargeo/overlay/locate"
	"github.com/planargeo/overlay/noding"
)

// Overlay is the top-level driver: it nodes the two operands' edges,
// deduplicates and labels them, builds the planar graph, selects the
// edges belonging to op's result, assembles polygons/lines/points from
// them, and returns the combined geometry (or the correctly-dimensioned
// empty geometry, if the result is empty).
//
// pm0 and pm1 are the precision models of geom0 and geom1 respectively;
// factory is used to build every result value, including the empty case,
// so the result always carries the first input's factory.
func Overlay(
	geom0 geom.Geometry, pm0 *geom.PrecisionModel,
	geom1 geom.Geometry, pm1 *geom.PrecisionModel,
	op OpCode, opts Options,
	factory *geom.GeometryFactory,
	locator locate.PointLocator,
) (geom.Geometry, error) {
	nodingPM := opts.NodingPrecision
	if nodingPM == nil {
		nodingPM = geom.Higher(pm0, pm1)
	}

	edges0, locs0 := extractOperand(0, geom0)
	edges1, locs1 := extractOperand(1, geom1)
	allEdges := append(append([]noding.InputEdge{}, edges0...), edges1...)

	noder, validate := opts.resolve(opts.NodingPrecision)
	segments, err := noder.Node(allEdges, nodingPM)
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}
	if validate {
		if verr := noding.Validate(segments); verr != nil {
			return nil, newTopologyException(verr.Error(), nil)
		}
	}

	et := graph.NewEdgeTable()
	for _, seg := range segments {
		et.Add(seg.Coords, seg.Lbl)
	}
	et.NormalizeAndRewrite()

	pg := graph.NewPlanarGraph(et)
	pg.Build()
	pg.CopyOperandNodes(0, locs0)
	pg.CopyOperandNodes(1, locs1)

	lb := Labeller{Locator: locator, Geoms: [2]geom.Geometry{geom0, geom1}}
	lb.Run(pg)

	SelectResult(op, pg)

	polys, err := BuildPolygons(pg, factory)
	if err != nil {
		return nil, err
	}
	lines := BuildLines(pg, op, factory, polys)
	points := BuildPoints(pg, op, factory, polys, lines)

	result := factory.CreateCollection(points, lines, polys)
	if result.IsEmpty() {
		dim := op.ResultDimension(dimensionOf(geom0), dimensionOf(geom1))
		return factory.CreateEmpty(dim), nil
	}
	return result, nil
}

func dimensionOf(g geom.Geometry) int {
	if g == nil || g.IsEmpty() {
		return -1
	}
	return g.Dimension()
}
