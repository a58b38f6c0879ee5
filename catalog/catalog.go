// Package catalog indexes many independently-owned geometries behind a
// single R-tree, for region queries over a collection (a city's parcels,
// a fleet's vehicle positions) rather than the CORE engine's own
// per-geometry indexes (Natural Index, Y-Stripes, Multi's hilbert index),
// which each describe the internal structure of one geometry. Grounded
// on a nautical chart catalog's ChartIndex/BuildIndex/Query shape,
// generalized from chart metadata to arbitrary tagged geometries.
package catalog

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	tg "github.com/tidwall/tg-go"
)

// Entry is one catalog member: a geometry plus caller-assigned metadata
// used for query filtering and result ordering.
type Entry struct {
	// Key identifies the entry to the caller (a feature ID, a file path).
	Key string

	// Geom is the indexed geometry. Its Rect() becomes the R-tree leaf's
	// bounding box.
	Geom tg.Geometry

	// Priority orders results within a query: lower sorts first,
	// mirroring the chart catalog's scale-then-edition-then-update
	// tie-break.
	Priority int

	// Tags are optional caller-defined labels (a layer name, a usage
	// band) usable as a QueryOptions filter.
	Tags []string
}

// rtreeEntry adapts Entry to rtreego.Spatial without exporting rtreego's
// types on Entry itself.
type rtreeEntry struct {
	Entry
	bounds rtreego.Rect
}

func (e rtreeEntry) Bounds() rtreego.Rect { return e.bounds }

func toRTreeRect(r tg.Rect) rtreego.Rect {
	point := rtreego.Point{r.Min.X, r.Min.Y}
	lengths := []float64{
		maxf(r.Max.X-r.Min.X, minRectSpan),
		maxf(r.Max.Y-r.Min.Y, minRectSpan),
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// minRectSpan keeps degenerate (point or axis-aligned line) geometries
// from producing a zero-length rtreego.Rect dimension, which rtreego
// rejects.
const minRectSpan = 1e-9

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Catalog is an R-tree-backed index over a fixed set of Entry values.
// It is built once via Build or BuildParallel and queried concurrently
// thereafter; it is not safe to mutate after construction.
type Catalog struct {
	entries []Entry
	rtree   *rtreego.Rtree
	rect    tg.Rect
	hasRect bool
}

// Build indexes entries into a new Catalog. The R-tree uses rtreego's
// standard branching factors (min 25, max 50 children per node), matching
// the chart catalog's tuning.
func Build(entries []Entry) *Catalog {
	c := &Catalog{entries: entries}
	if len(entries) == 0 {
		return c
	}
	c.rtree = rtreego.NewTree(2, 25, 50)
	for i, e := range entries {
		r := e.Geom.Rect()
		if i == 0 {
			c.rect = r
		} else {
			c.rect = c.rect.Union(r)
		}
		c.rtree.Insert(rtreeEntry{Entry: e, bounds: toRTreeRect(r)})
	}
	c.hasRect = true
	return c
}

// QueryOptions filters and bounds a Catalog.Query call.
type QueryOptions struct {
	// Tags, if non-empty, restricts results to entries carrying at
	// least one matching tag.
	Tags []string
}

// Query returns every entry whose geometry's rect intersects bounds,
// ordered by ascending Priority. Entries with equal Priority keep the
// order in which the R-tree search returns them, which is not
// necessarily insertion order.
func (c *Catalog) Query(bounds tg.Rect, opts QueryOptions) []Entry {
	var result []Entry
	if c.rtree == nil {
		for _, e := range c.entries {
			if !bounds.Intersects(e.Geom.Rect()) {
				continue
			}
			if !matchesTags(e, opts.Tags) {
				continue
			}
			result = append(result, e)
		}
	} else {
		spatials := c.rtree.SearchIntersect(toRTreeRect(bounds))
		for _, s := range spatials {
			e := s.(rtreeEntry).Entry
			if !matchesTags(e, opts.Tags) {
				continue
			}
			result = append(result, e)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Priority < result[j].Priority
	})
	return result
}

func matchesTags(e Entry, want []string) bool {
	if len(want) == 0 {
		return true
	}
	for _, w := range want {
		for _, t := range e.Tags {
			if t == w {
				return true
			}
		}
	}
	return false
}

// Count returns the number of entries in the catalog.
func (c *Catalog) Count() int { return len(c.entries) }

// Bounds returns the union rect of every entry's geometry. The second
// return is false for an empty catalog.
func (c *Catalog) Bounds() (tg.Rect, bool) { return c.rect, c.hasRect }

// All returns every entry in the catalog, in insertion order.
func (c *Catalog) All() []Entry { return c.entries }
