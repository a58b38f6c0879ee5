package tg

import "fmt"

// Errors of the tg package. ErrDegenerateRing (often wrapped with %w by
// constructors) and ErrUnsupportedPredicate are sentinel values for
// errors.Is. ErrCoordinateRange and ErrInvalidGeometry are struct types
// with a formatted Error() string, so callers can errors.As their way to
// the failing field; no function in this package returns them.

// ErrDegenerateRing indicates a ring or line was built with too few
// distinct points to satisfy its own closure contract.
var ErrDegenerateRing = fmt.Errorf("tg: degenerate ring or line")

// ErrUnsupportedPredicate is returned by Crosses and Overlaps: an
// acknowledged, permanent limitation — no DE-9IM computation is
// implemented, so these predicates
// cannot be answered and always report false alongside this error.
var ErrUnsupportedPredicate = fmt.Errorf("tg: predicate not supported (no DE-9IM)")

// ErrCoordinateRange reports a coordinate outside an accepted range.
type ErrCoordinateRange struct {
	X, Y float64
}

func (e *ErrCoordinateRange) Error() string {
	return fmt.Sprintf("tg: coordinate out of range: x=%g y=%g", e.X, e.Y)
}

// ErrInvalidGeometry indicates a parsed or constructed geometry violates
// a structural rule (wrong coordinate arity, unknown type tag, etc).
type ErrInvalidGeometry struct {
	Kind   Kind
	Reason string
}

func (e *ErrInvalidGeometry) Error() string {
	if e.Kind != KindUnknown {
		return fmt.Sprintf("tg: invalid %s geometry: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("tg: invalid geometry: %s", e.Reason)
}

// poisonGeometry wraps a parse error so the caller still receives a
// Geometry-shaped value it can inspect uniformly: every
// constructor/parser returns a Geometry, never a bare error channel.
func poisonGeometry(err error) Geometry {
	return Geometry{
		kind:    KindPoint,
		base:    baseError,
		errMsg:  err.Error(),
		isError: true,
	}
}

// Error returns the poison message carried by g, or "" if g is not an
// error geometry.
func (g Geometry) Error() string {
	if !g.isError {
		return ""
	}
	return g.errMsg
}

// IsError reports whether g is a poison geometry produced by a failed
// parse.
func (g Geometry) IsError() bool { return g.isError }
