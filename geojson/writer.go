package geojson

import (
	"encoding/json"

	tg "github.com/tidwall/tg-go"
)

// Format renders g as a GeoJSON byte slice. A Feature or
// FeatureCollection reuses its stored raw JSON (captured verbatim at
// parse time) as the base object so foreign members and properties
// survive round-trip, only ever overwriting the "geometry"/"features"
// member with the current geometry.
func Format(g tg.Geometry) ([]byte, error) {
	if g.IsFeature() {
		return formatFeature(g)
	}
	if g.IsFeatureCollection() {
		return formatFeatureCollection(g)
	}
	return formatGeometry(g)
}

func formatFeature(g tg.Geometry) ([]byte, error) {
	obj := map[string]json.RawMessage{}
	if raw := g.ExtraJSON(); raw != "" {
		_ = json.Unmarshal([]byte(raw), &obj)
	}
	geomJSON, err := formatGeometry(g)
	if err != nil {
		return nil, err
	}
	obj["type"] = json.RawMessage(`"Feature"`)
	obj["geometry"] = geomJSON
	if _, ok := obj["properties"]; !ok {
		obj["properties"] = json.RawMessage("null")
	}
	return json.Marshal(obj)
}

func formatFeatureCollection(g tg.Geometry) ([]byte, error) {
	obj := map[string]json.RawMessage{}
	if raw := g.ExtraJSON(); raw != "" {
		_ = json.Unmarshal([]byte(raw), &obj)
	}
	features := make([]json.RawMessage, g.NumGeometries())
	for i := 0; i < g.NumGeometries(); i++ {
		f, err := Format(g.GeometryAt(i))
		if err != nil {
			return nil, err
		}
		features[i] = f
	}
	featuresJSON, err := json.Marshal(features)
	if err != nil {
		return nil, err
	}
	obj["type"] = json.RawMessage(`"FeatureCollection"`)
	obj["features"] = featuresJSON
	return json.Marshal(obj)
}

func formatGeometry(g tg.Geometry) ([]byte, error) {
	switch g.Typeof() {
	case tg.KindPoint:
		if g.IsEmpty() {
			return json.Marshal(rawGeomOut{Type: "Point", Coordinates: []float64{}})
		}
		pt, _ := g.AsPoint()
		return json.Marshal(rawGeomOut{Type: "Point", Coordinates: []float64{pt.X, pt.Y}})
	case tg.KindLineString:
		l, ok := g.AsLine()
		if !ok {
			return json.Marshal(rawGeomOut{Type: "LineString", Coordinates: [][]float64{}})
		}
		return json.Marshal(rawGeomOut{Type: "LineString", Coordinates: lineCoords(l)})
	case tg.KindPolygon:
		return json.Marshal(rawGeomOut{Type: "Polygon", Coordinates: polygonCoords(g)})
	case tg.KindMultiPoint:
		coords := make([][]float64, g.NumPoints())
		for i := range coords {
			pt, _ := g.PointAt(i).AsPoint()
			coords[i] = []float64{pt.X, pt.Y}
		}
		return json.Marshal(rawGeomOut{Type: "MultiPoint", Coordinates: coords})
	case tg.KindMultiLineString:
		coords := make([][][]float64, g.NumLines())
		for i := range coords {
			l, _ := g.LineAt(i).AsLine()
			coords[i] = lineCoords(l)
		}
		return json.Marshal(rawGeomOut{Type: "MultiLineString", Coordinates: coords})
	case tg.KindMultiPolygon:
		coords := make([][][][]float64, g.NumPolys())
		for i := range coords {
			coords[i] = polygonCoords(g.PolyAt(i))
		}
		return json.Marshal(rawGeomOut{Type: "MultiPolygon", Coordinates: coords})
	case tg.KindGeometryCollection:
		geoms := make([]json.RawMessage, g.NumGeometries())
		for i := range geoms {
			gj, err := formatGeometry(g.GeometryAt(i))
			if err != nil {
				return nil, err
			}
			geoms[i] = gj
		}
		return json.Marshal(rawGeomCollOut{Type: "GeometryCollection", Geometries: geoms})
	default:
		return json.Marshal(rawGeomCollOut{Type: "GeometryCollection", Geometries: []json.RawMessage{}})
	}
}

type rawGeomOut struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates"`
}

type rawGeomCollOut struct {
	Type       string            `json:"type"`
	Geometries []json.RawMessage `json:"geometries"`
}

func lineCoords(l *tg.Ring) [][]float64 {
	if l == nil {
		return [][]float64{}
	}
	out := make([][]float64, l.NumPoints())
	for i := 0; i < l.NumPoints(); i++ {
		p := l.PointAt(i)
		out[i] = []float64{p.X, p.Y}
	}
	return out
}

func ringCoords(r *tg.Ring) [][]float64 {
	pts := r.Points()
	out := make([][]float64, len(pts))
	for i, p := range pts {
		out[i] = []float64{p.X, p.Y}
	}
	return out
}

func polygonCoords(g tg.Geometry) [][][]float64 {
	poly, ok := g.AsPolygon()
	if !ok || poly.Empty() {
		return [][][]float64{}
	}
	out := make([][][]float64, 1+poly.NumHoles())
	out[0] = ringCoords(poly.Exterior())
	for i := 0; i < poly.NumHoles(); i++ {
		out[i+1] = ringCoords(poly.HoleAt(i))
	}
	return out
}
