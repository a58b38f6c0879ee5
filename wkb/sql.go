package wkb

import (
	"database/sql/driver"
	"fmt"
	"strings"

	tg "github.com/tidwall/tg-go"
	"github.com/tidwall/tg-go/wkt"
)

// Value wraps a tg.Geometry for storage in a database column, following
// the common go-geom wrapper idiom (a thin struct implementing
// sql.Scanner/driver.Valuer around the library's own geometry type,
// rather than the geometry type implementing the interfaces itself,
// which avoids an import cycle back from tg into its own codec
// packages.
type Value struct {
	G tg.Geometry
}

// Value returns WKB bytes for storage (e.g. in a PostGIS geometry
// column).
func (v Value) Value() (driver.Value, error) {
	if v.G.Typeof() == tg.KindUnknown {
		return nil, nil
	}
	return Format(v.G), nil
}

// Scan accepts WKB bytes, a hex-WKB string, or a WKT string and
// populates v.G.
func (v *Value) Scan(src interface{}) error {
	if src == nil {
		v.G = tg.Geometry{}
		return nil
	}
	switch s := src.(type) {
	case []byte:
		if looksLikeHex(s) {
			if g, err := ParseHex(string(s)); err == nil {
				v.G = g
				return nil
			}
		}
		if g, err := Parse(s); err == nil {
			v.G = g
			return nil
		}
		if g, err := wkt.Parse(string(s)); err == nil {
			v.G = g
			return nil
		}
		return fmt.Errorf("wkb: unable to scan geometry from %d bytes", len(s))
	case string:
		trimmed := strings.TrimSpace(s)
		if looksLikeHex([]byte(trimmed)) {
			if g, err := ParseHex(trimmed); err == nil {
				v.G = g
				return nil
			}
		}
		g, err := wkt.Parse(trimmed)
		if err != nil {
			return fmt.Errorf("wkb: unable to scan geometry from string: %w", err)
		}
		v.G = g
		return nil
	default:
		return fmt.Errorf("wkb: unsupported Scan source type %T", src)
	}
}

func looksLikeHex(b []byte) bool {
	if len(b) == 0 || len(b)%2 != 0 {
		return false
	}
	for _, c := range b {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
