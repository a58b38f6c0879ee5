package main

import (
	"fmt"
	"log"

	tg "github.com/tidwall/tg-go"
	"github.com/tidwall/tg-go/wkt"
)

func main() {
	g, err := wkt.Parse("POLYGON ((-71.10 42.30, -71.00 42.30, -71.00 42.40, -71.10 42.40, -71.10 42.30))")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Kind: %s\n", g.Typeof())
	fmt.Printf("Points: %d\n", g.NumPoints())

	rect := g.Rect()
	fmt.Printf("Bounds: [%.4f,%.4f] to [%.4f,%.4f]\n",
		rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y)

	harbor := tg.NewPoint(tg.Point{X: -71.05, Y: 42.35})
	fmt.Printf("Contains harbor point: %v\n", tg.Contains(g, harbor))
}
