package geom

import (
	index "github.com/blevesearch/bleve_index_api"
	jsoniter "github.com/json-iterator/go"
)

// jsonAPI is configured once with the standard-library-compatible
// settings used to bridge this engine's output to bleve's GeoJSON index
// API.
var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

type geojsonPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type geojsonLineString struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

type geojsonPolygon struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}

type geojsonCollection struct {
	Type       string            `json:"type"`
	Geometries []jsoniter.RawMessage `json:"geometries"`
}

func ring(coords []Coordinate) [][]float64 {
	out := make([][]float64, len(coords))
	for i, c := range coords {
		out[i] = []float64{c.X, c.Y}
	}
	return out
}

// MarshalGeoJSON encodes p as a GeoJSON Point.
func (p *Point) MarshalGeoJSON() ([]byte, error) {
	return jsonAPI.Marshal(geojsonPoint{Type: "Point", Coordinates: []float64{p.C.X, p.C.Y}})
}

// MarshalGeoJSON encodes l as a GeoJSON LineString.
func (l *LineString) MarshalGeoJSON() ([]byte, error) {
	return jsonAPI.Marshal(geojsonLineString{Type: "LineString", Coordinates: ring(l.Coords)})
}

// MarshalGeoJSON encodes p as a GeoJSON Polygon (shell followed by holes).
func (p *Polygon) MarshalGeoJSON() ([]byte, error) {
	rings := make([][][]float64, 0, 1+len(p.Holes))
	rings = append(rings, ring(p.Shell))
	for _, h := range p.Holes {
		rings = append(rings, ring(h))
	}
	return jsonAPI.Marshal(geojsonPolygon{Type: "Polygon", Coordinates: rings})
}

// MarshalGeoJSON encodes g as a GeoJSON GeometryCollection.
func (g *GeometryCollection) MarshalGeoJSON() ([]byte, error) {
	var raws []jsoniter.RawMessage
	for _, p := range g.Points {
		b, err := p.MarshalGeoJSON()
		if err != nil {
			return nil, err
		}
		raws = append(raws, jsoniter.RawMessage(b))
	}
	for _, l := range g.Lines {
		b, err := l.MarshalGeoJSON()
		if err != nil {
			return nil, err
		}
		raws = append(raws, jsoniter.RawMessage(b))
	}
	for _, pg := range g.Polygons {
		b, err := pg.MarshalGeoJSON()
		if err != nil {
			return nil, err
		}
		raws = append(raws, jsoniter.RawMessage(b))
	}
	return jsonAPI.Marshal(geojsonCollection{Type: "GeometryCollection", Geometries: raws})
}

// Members returns the collection's elements as index.GeoJSON shapes.
func (g *GeometryCollection) Members() []index.GeoJSON {
	out := make([]index.GeoJSON, 0, len(g.Points)+len(g.Lines)+len(g.Polygons))
	for _, p := range g.Points {
		out = append(out, p)
	}
	for _, l := range g.Lines {
		out = append(out, l)
	}
	for _, pg := range g.Polygons {
		out = append(out, pg)
	}
	return out
}

// Type satisfies index.GeoJSON.
func (p *Point) Type() string              { return "Point" }
func (l *LineString) Type() string         { return "LineString" }
func (p *Polygon) Type() string            { return "Polygon" }
func (g *GeometryCollection) Type() string { return "GeometryCollection" }
