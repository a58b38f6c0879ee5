// Package geojson reads and writes RFC 7946 GeoJSON: the six geometry
// types plus GeometryCollection, and the Feature/FeatureCollection
// wrappers. Foreign members on a Feature (anything beyond type,
// geometry, properties, id) are preserved verbatim on round-trip rather
// than dropped, following the pass-through-JSON idiom common to
// go-geom-style wrappers (encoding/json passthrough rather than a fixed
// struct shape).
package geojson

import (
	"encoding/json"
	"fmt"

	tg "github.com/tidwall/tg-go"
)

// maxDepth bounds GeometryCollection/Feature nesting to guard against
// stack-exhausting adversarial input.
const maxDepth = 1024

// ErrSyntax reports a GeoJSON decode failure.
type ErrSyntax struct {
	Reason string
}

func (e *ErrSyntax) Error() string { return "geojson: " + e.Reason }

type rawGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates,omitempty"`
	Geometries  json.RawMessage `json:"geometries,omitempty"`
}

type rawFeature struct {
	Type       string          `json:"type"`
	Geometry   json.RawMessage `json:"geometry"`
	Properties json.RawMessage `json:"properties"`
	ID         json.RawMessage `json:"id,omitempty"`
}

// Parse decodes a single GeoJSON Geometry, Feature, or FeatureCollection
// value.
func Parse(data []byte) (tg.Geometry, error) {
	return parseValue(data, 0)
}

func parseValue(data []byte, depth int) (tg.Geometry, error) {
	if depth > maxDepth {
		return tg.Geometry{}, &ErrSyntax{Reason: "max recursion depth exceeded"}
	}
	var peek struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &peek); err != nil {
		return tg.Geometry{}, &ErrSyntax{Reason: "invalid JSON: " + err.Error()}
	}
	switch peek.Type {
	case "Feature":
		return parseFeature(data, depth)
	case "FeatureCollection":
		return parseFeatureCollection(data, depth)
	default:
		return parseGeometry(data, depth)
	}
}

func parseFeature(data []byte, depth int) (tg.Geometry, error) {
	var rf rawFeature
	if err := json.Unmarshal(data, &rf); err != nil {
		return tg.Geometry{}, &ErrSyntax{Reason: "invalid Feature: " + err.Error()}
	}
	var g tg.Geometry
	var err error
	if len(rf.Geometry) > 0 && string(rf.Geometry) != "null" {
		g, err = parseGeometry(rf.Geometry, depth+1)
		if err != nil {
			return tg.Geometry{}, err
		}
	} else {
		g = tg.NewGeometryCollection(nil)
	}
	return g.AsFeature().WithExtraJSON(string(data)), nil
}

func parseFeatureCollection(data []byte, depth int) (tg.Geometry, error) {
	var raw struct {
		Features []json.RawMessage `json:"features"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return tg.Geometry{}, &ErrSyntax{Reason: "invalid FeatureCollection: " + err.Error()}
	}
	geoms := make([]tg.Geometry, 0, len(raw.Features))
	for _, f := range raw.Features {
		g, err := parseFeature(f, depth+1)
		if err != nil {
			return tg.Geometry{}, err
		}
		geoms = append(geoms, g)
	}
	out := tg.NewGeometryCollection(geoms).AsFeatureCollection()
	return out.WithExtraJSON(string(data)), nil
}

func parseGeometry(data []byte, depth int) (tg.Geometry, error) {
	if depth > maxDepth {
		return tg.Geometry{}, &ErrSyntax{Reason: "max recursion depth exceeded"}
	}
	var rg rawGeometry
	if err := json.Unmarshal(data, &rg); err != nil {
		return tg.Geometry{}, &ErrSyntax{Reason: "invalid geometry: " + err.Error()}
	}
	switch rg.Type {
	case "Point":
		var c []float64
		if err := json.Unmarshal(rg.Coordinates, &c); err != nil {
			return tg.Geometry{}, &ErrSyntax{Reason: "bad Point coordinates"}
		}
		return pointGeometry(c)
	case "LineString":
		var c [][]float64
		if err := json.Unmarshal(rg.Coordinates, &c); err != nil {
			return tg.Geometry{}, &ErrSyntax{Reason: "bad LineString coordinates"}
		}
		if len(c) == 0 {
			return tg.NewEmptyLineString(), nil
		}
		pts, err := pointSlice(c)
		if err != nil {
			return tg.Geometry{}, err
		}
		return tg.NewLineStringGeometry(pts, tg.BuildOptions{})
	case "Polygon":
		var rings [][][]float64
		if err := json.Unmarshal(rg.Coordinates, &rings); err != nil {
			return tg.Geometry{}, &ErrSyntax{Reason: "bad Polygon coordinates"}
		}
		return polygonGeometry(rings)
	case "MultiPoint":
		var c [][]float64
		if err := json.Unmarshal(rg.Coordinates, &c); err != nil {
			return tg.Geometry{}, &ErrSyntax{Reason: "bad MultiPoint coordinates"}
		}
		pts, err := pointSlice(c)
		if err != nil {
			return tg.Geometry{}, err
		}
		return tg.NewMultiPoint(pts), nil
	case "MultiLineString":
		var lines [][][]float64
		if err := json.Unmarshal(rg.Coordinates, &lines); err != nil {
			return tg.Geometry{}, &ErrSyntax{Reason: "bad MultiLineString coordinates"}
		}
		children := make([]tg.Geometry, 0, len(lines))
		for _, l := range lines {
			if len(l) == 0 {
				children = append(children, tg.NewEmptyLineString())
				continue
			}
			pts, err := pointSlice(l)
			if err != nil {
				return tg.Geometry{}, err
			}
			g, err := tg.NewLineStringGeometry(pts, tg.BuildOptions{})
			if err != nil {
				return tg.Geometry{}, err
			}
			children = append(children, g)
		}
		return tg.NewMultiLineString(children), nil
	case "MultiPolygon":
		var polys [][][][]float64
		if err := json.Unmarshal(rg.Coordinates, &polys); err != nil {
			return tg.Geometry{}, &ErrSyntax{Reason: "bad MultiPolygon coordinates"}
		}
		children := make([]tg.Geometry, 0, len(polys))
		for _, rings := range polys {
			g, err := polygonGeometry(rings)
			if err != nil {
				return tg.Geometry{}, err
			}
			children = append(children, g)
		}
		return tg.NewMultiPolygon(children), nil
	case "GeometryCollection":
		var rawGeoms []json.RawMessage
		if err := json.Unmarshal(rg.Geometries, &rawGeoms); err != nil {
			return tg.Geometry{}, &ErrSyntax{Reason: "bad GeometryCollection geometries"}
		}
		children := make([]tg.Geometry, 0, len(rawGeoms))
		for _, raw := range rawGeoms {
			g, err := parseGeometry(raw, depth+1)
			if err != nil {
				return tg.Geometry{}, err
			}
			children = append(children, g)
		}
		return tg.NewGeometryCollection(children), nil
	default:
		return tg.Geometry{}, &ErrSyntax{Reason: fmt.Sprintf("unknown geometry type %q", rg.Type)}
	}
}

func pointGeometry(c []float64) (tg.Geometry, error) {
	if len(c) < 2 {
		return tg.Geometry{}, &ErrSyntax{Reason: "Point needs at least 2 coordinates"}
	}
	g := tg.NewPoint(tg.Point{X: c[0], Y: c[1]})
	if len(c) >= 3 {
		g = g.WithZM([]float64{c[2]}, nil)
	}
	return g, nil
}

func pointSlice(c [][]float64) ([]tg.Point, error) {
	pts := make([]tg.Point, len(c))
	for i, p := range c {
		if len(p) < 2 {
			return nil, &ErrSyntax{Reason: "coordinate needs at least 2 members"}
		}
		pts[i] = tg.Point{X: p[0], Y: p[1]}
	}
	return pts, nil
}

func polygonGeometry(rings [][][]float64) (tg.Geometry, error) {
	if len(rings) == 0 {
		return tg.NewEmptyPolygon(), nil
	}
	ext, err := pointSlice(rings[0])
	if err != nil {
		return tg.Geometry{}, err
	}
	var holes [][]tg.Point
	for _, r := range rings[1:] {
		h, err := pointSlice(r)
		if err != nil {
			return tg.Geometry{}, err
		}
		holes = append(holes, h)
	}
	return tg.NewPolygonGeometry(ext, holes, tg.BuildOptions{})
}
