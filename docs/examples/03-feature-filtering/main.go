package main

import (
	"fmt"
	"log"

	"github.com/tidwall/tg-go/catalog"
	"github.com/tidwall/tg-go/wkt"
)

func entry(key, tag, w string) catalog.Entry {
	g, err := wkt.Parse(w)
	if err != nil {
		log.Fatal(err)
	}
	return catalog.Entry{Key: key, Geom: g, Tags: []string{tag}}
}

func main() {
	cat := catalog.Build([]catalog.Entry{
		entry("contour-10m", "depth-contour", "LINESTRING (-71.05 42.34, -71.04 42.35, -71.03 42.34)"),
		entry("contour-20m", "depth-contour", "LINESTRING (-71.06 42.36, -71.05 42.37, -71.04 42.36)"),
		entry("buoy-red-1", "nav-aid", "POINT (-71.05 42.35)"),
		entry("light-main", "nav-aid", "POINT (-71.02 42.33)"),
	})

	// Tags filter within the catalog's own bounds, so the query
	// effectively becomes a pure tag lookup.
	bounds, _ := cat.Bounds()

	contours := cat.Query(bounds, catalog.QueryOptions{Tags: []string{"depth-contour"}})
	fmt.Printf("Depth contours: %d\n", len(contours))

	navAids := cat.Query(bounds, catalog.QueryOptions{Tags: []string{"nav-aid"}})
	fmt.Printf("Navigation aids: %d\n", len(navAids))
}
