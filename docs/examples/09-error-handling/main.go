package main

import (
	"errors"
	"fmt"
	"log"

	tg "github.com/tidwall/tg-go"
	"github.com/tidwall/tg-go/wkt"
)

func safeParse(s string) (tg.Geometry, error) {
	g, err := wkt.Parse(s)
	if err != nil {
		var serr *wkt.ErrSyntax
		if errors.As(err, &serr) {
			return tg.Geometry{}, fmt.Errorf("malformed WKT at offset %d: %w", serr.Offset, err)
		}
		return tg.Geometry{}, err
	}
	if g.IsEmpty() {
		log.Printf("warning: %q parsed to an empty geometry", s)
	}
	return g, nil
}

func main() {
	g, err := safeParse("POINT (-71.05 42.35)")
	if err != nil {
		log.Printf("Error: %v", err)
		return
	}
	fmt.Printf("Successfully parsed: %s\n", g.Typeof())

	_, err = safeParse("POINT (-71.05)")
	if err != nil {
		log.Printf("Expected error: %v", err)
	}

	_, err = safeParse("POLYGON ((-71.1 42.3, -71.0 42.3))")
	if err != nil {
		log.Printf("Expected error: %v", err)
	}
}
