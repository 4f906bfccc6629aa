package geom

// Geometry is the minimal surface the overlay engine needs from a result
// value: its dimension (to pick the right empty result when an operation
// yields nothing) and its bounding envelope (for coverage pruning in the
// line/point builders).
type Geometry interface {
	Dimension() int
	IsEmpty() bool
	Envelope() Envelope
}

// Point is a single coordinate.
type Point struct {
	C Coordinate
}

func (p *Point) Dimension() int      { return 0 }
func (p *Point) IsEmpty() bool       { return false }
func (p *Point) Envelope() Envelope  { return EnvelopeOf([]Coordinate{p.C}) }

// LineString is an open or closed chain of at least two coordinates.
type LineString struct {
	Coords []Coordinate
}

func (l *LineString) Dimension() int     { return 1 }
func (l *LineString) IsEmpty() bool      { return len(l.Coords) == 0 }
func (l *LineString) Envelope() Envelope { return EnvelopeOf(l.Coords) }

// IsClosed reports whether this linestring's endpoints coincide.
func (l *LineString) IsClosed() bool { return IsRingClosed(l.Coords) }

// Polygon is a shell ring (conventionally CCW) plus zero or more hole rings
// (conventionally CW), each ring closed (first coordinate == last).
type Polygon struct {
	Shell []Coordinate
	Holes [][]Coordinate
}

func (p *Polygon) Dimension() int { return 2 }
func (p *Polygon) IsEmpty() bool  { return len(p.Shell) == 0 }
func (p *Polygon) Envelope() Envelope {
	env := EnvelopeOf(p.Shell)
	for _, h := range p.Holes {
		env = env.Union(EnvelopeOf(h))
	}
	return env
}

// Area returns the polygon's area (shell area minus hole areas).
func (p *Polygon) Area() float64 {
	a := Area(p.Shell)
	for _, h := range p.Holes {
		a -= Area(h)
	}
	return a
}

// GeometryCollection holds a heterogeneous bundle of result elements in
// the canonical emission order: points, then lines, then polygons.
type GeometryCollection struct {
	Points   []*Point
	Lines    []*LineString
	Polygons []*Polygon
}

func (g *GeometryCollection) IsEmpty() bool {
	return len(g.Points) == 0 && len(g.Lines) == 0 && len(g.Polygons) == 0
}

// Dimension returns the highest dimension present among this collection's
// elements, or -1 if the collection is empty.
func (g *GeometryCollection) Dimension() int {
	dim := -1
	if len(g.Points) > 0 {
		dim = 0
	}
	if len(g.Lines) > 0 {
		dim = 1
	}
	if len(g.Polygons) > 0 {
		dim = 2
	}
	return dim
}

func (g *GeometryCollection) Envelope() Envelope {
	env := EmptyEnvelope()
	for _, p := range g.Points {
		env = env.Union(p.Envelope())
	}
	for _, l := range g.Lines {
		env = env.Union(l.Envelope())
	}
	for _, pg := range g.Polygons {
		env = env.Union(pg.Envelope())
	}
	return env
}

// GeometryFactory constructs result values at a fixed precision model. The
// overlay driver always builds results with the first operand's factory;
// callers wire in their own factory (e.g. a full DE-9IM geometry library's
// factory) by implementing the same narrow surface this type exposes.
type GeometryFactory struct {
	PM *PrecisionModel
}

// NewGeometryFactory returns a factory bound to pm (or a floating model if
// pm is nil).
func NewGeometryFactory(pm *PrecisionModel) *GeometryFactory {
	if pm == nil {
		pm = NewFloatingPrecisionModel()
	}
	return &GeometryFactory{PM: pm}
}

// emptyGeometry is the atomic empty value of a given dimension: an empty
// point, empty line, or empty polygon. dim -1 ("undefined") is
// represented by an empty GeometryCollection instead, since it has no
// atomic shape.
type emptyGeometry struct{ dim int }

func (e emptyGeometry) Dimension() int     { return e.dim }
func (e emptyGeometry) IsEmpty() bool      { return true }
func (e emptyGeometry) Envelope() Envelope { return EmptyEnvelope() }

// CreateEmpty returns an empty geometry of the requested dimension; dim -1
// yields an empty collection.
func (f *GeometryFactory) CreateEmpty(dim int) Geometry {
	switch dim {
	case 0, 1, 2:
		return emptyGeometry{dim: dim}
	default:
		return &GeometryCollection{}
	}
}

// CreatePoint returns a single-point geometry.
func (f *GeometryFactory) CreatePoint(c Coordinate) *Point { return &Point{C: c} }

// CreateLineString returns a linestring geometry from coords.
func (f *GeometryFactory) CreateLineString(coords []Coordinate) *LineString {
	return &LineString{Coords: coords}
}

// CreatePolygon returns a polygon geometry from a shell and holes.
func (f *GeometryFactory) CreatePolygon(shell []Coordinate, holes [][]Coordinate) *Polygon {
	return &Polygon{Shell: shell, Holes: holes}
}

// CreateCollection bundles points, lines, and polygons in the canonical
// points -> lines -> polygons emission order.
func (f *GeometryFactory) CreateCollection(points []*Point, lines []*LineString, polygons []*Polygon) *GeometryCollection {
	return &GeometryCollection{Points: points, Lines: lines, Polygons: polygons}
}
