package main

import (
	"fmt"
	"log"

	tg "github.com/tidwall/tg-go"
	"github.com/tidwall/tg-go/catalog"
	"github.com/tidwall/tg-go/wkt"
)

func main() {
	parcels := map[string]string{
		"parcel-17": "POLYGON ((-71.10 42.30, -71.05 42.30, -71.05 42.35, -71.10 42.35, -71.10 42.30))",
		"parcel-22": "POLYGON ((-71.05 42.33, -71.00 42.33, -71.00 42.40, -71.05 42.40, -71.05 42.33))",
	}

	var entries []catalog.Entry
	for key, w := range parcels {
		g, err := wkt.Parse(w)
		if err != nil {
			log.Fatal(err)
		}
		entries = append(entries, catalog.Entry{Key: key, Geom: g})
	}
	cat := catalog.Build(entries)

	fmt.Printf("Catalog contains %d parcels\n\n", cat.Count())
	for _, e := range cat.All() {
		r := e.Geom.Rect()
		fmt.Printf("Parcel: %s\n", e.Key)
		fmt.Printf("  Bounds: [%.4f,%.4f] to [%.4f,%.4f]\n", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
	}

	loc := tg.NewPoint(tg.Point{X: -71.05, Y: 42.35})
	var matches []catalog.Entry
	for _, e := range cat.Query(loc.Rect(), catalog.QueryOptions{}) {
		if tg.Contains(e.Geom, loc) {
			matches = append(matches, e)
		}
	}
	fmt.Printf("\nParcels containing location %.4f, %.4f: %d\n", -71.05, 42.35, len(matches))
}
