package main

import (
	"fmt"
	"log"

	tg "github.com/tidwall/tg-go"
	"github.com/tidwall/tg-go/catalog"
	"github.com/tidwall/tg-go/wkt"
)

func main() {
	berths := []string{
		"POINT (-71.05 42.35)",
		"POINT (-71.02 42.33)",
		"POINT (-70.90 42.50)",
	}

	var entries []catalog.Entry
	for i, w := range berths {
		g, err := wkt.Parse(w)
		if err != nil {
			log.Fatal(err)
		}
		entries = append(entries, catalog.Entry{Key: fmt.Sprintf("berth-%d", i), Geom: g})
	}
	cat := catalog.Build(entries)

	// Boston Harbor area
	viewport := tg.Rect{
		Min: tg.Point{X: -71.10, Y: 42.30},
		Max: tg.Point{X: -71.00, Y: 42.40},
	}

	visible := cat.Query(viewport, catalog.QueryOptions{})
	fmt.Printf("Visible entries: %d\n", len(visible))
	for _, e := range visible {
		fmt.Printf("  %s: %s\n", e.Key, e.Geom.Typeof())
	}
}
