package main

import (
	"fmt"
	"log"
	"math"

	tg "github.com/tidwall/tg-go"
	"github.com/tidwall/tg-go/wkt"
)

func processGeometry(g tg.Geometry) {
	switch g.Typeof() {
	case tg.KindPoint:
		pt, _ := g.AsPoint()
		fmt.Printf("Point: %.6f, %.6f\n", pt.X, pt.Y)

	case tg.KindLineString:
		line, _ := g.AsLine()
		fmt.Printf("LineString with %d points:\n", line.NumPoints())
		for i := 0; i < line.NumPoints(); i++ {
			p := line.PointAt(i)
			fmt.Printf("  %d: %.6f, %.6f\n", i, p.X, p.Y)
		}

	case tg.KindPolygon:
		poly, _ := g.AsPolygon()
		ext := poly.Exterior()
		fmt.Printf("Polygon with %d vertices:\n", ext.NumPoints())
		for i := 0; i < ext.NumPoints(); i++ {
			p := ext.PointAt(i)
			fmt.Printf("  %d: %.6f, %.6f\n", i, p.X, p.Y)
		}
	}
}

// lineLength sums segment lengths (simplified, assumes small distances
// where planar distance approximates great-circle distance).
func lineLength(g tg.Geometry) float64 {
	if g.Typeof() != tg.KindLineString {
		return 0
	}
	line, _ := g.AsLine()
	length := 0.0
	for i := 0; i < line.NumSegs(); i++ {
		seg := line.SegmentAt(i)
		dx := seg.B.X - seg.A.X
		dy := seg.B.Y - seg.A.Y
		length += math.Sqrt(dx*dx + dy*dy)
	}
	return length
}

func main() {
	inputs := []string{
		"POINT (-71.05 42.35)",
		"LINESTRING (-71.06 42.36, -71.05 42.37, -71.04 42.36)",
		"POLYGON ((-71.10 42.30, -71.00 42.30, -71.00 42.40, -71.10 42.40, -71.10 42.30))",
	}

	for _, w := range inputs {
		g, err := wkt.Parse(w)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("\n%s:\n", g.Typeof())
		processGeometry(g)
		if g.Typeof() == tg.KindLineString {
			fmt.Printf("Length: %.6f degrees\n", lineLength(g))
		}
	}
}
