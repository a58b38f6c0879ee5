package tg

import "fmt"

// Polygon is an exterior ring plus zero or more hole rings. When there
// are no holes, Polygon.holes is nil and most operations delegate
// straight to the exterior ring, avoiding an extra allocation,
// reimplemented here as
// simply skipping the holes loop rather than as a distinct union arm.
type Polygon struct {
	exterior *Ring
	holes    []*Ring
}

// NewPolygon builds a polygon from an exterior ring and any number of
// hole rings. Ownership of the rings is shared (Clone, not Copy).
func NewPolygon(exterior *Ring, holes []*Ring) (*Polygon, error) {
	if exterior == nil || exterior.Empty() {
		return nil, fmt.Errorf("tg: polygon exterior ring is empty or nil: %w", ErrDegenerateRing)
	}
	p := &Polygon{exterior: exterior.Clone()}
	if len(holes) > 0 {
		p.holes = make([]*Ring, len(holes))
		for i, h := range holes {
			if h == nil || h.Empty() {
				return nil, fmt.Errorf("tg: polygon hole %d is empty or nil: %w", i, ErrDegenerateRing)
			}
			p.holes[i] = h.Clone()
		}
	}
	return p, nil
}

// Exterior returns the polygon's outer boundary ring.
func (p *Polygon) Exterior() *Ring { return p.exterior }

// NumHoles returns the number of interior rings.
func (p *Polygon) NumHoles() int { return len(p.holes) }

// HoleAt returns the i'th hole ring, 0 <= i < NumHoles().
func (p *Polygon) HoleAt(i int) *Ring { return p.holes[i] }

// Rect returns the polygon's MBR, which by construction equals the
// exterior ring's MBR (holes are always interior to it).
func (p *Polygon) Rect() Rect { return p.exterior.Rect() }

// Empty reports whether the polygon's exterior is degenerate.
func (p *Polygon) Empty() bool { return p == nil || p.exterior.Empty() }

// ContainsPoint implements point-in-polygon-with-holes: the exterior
// must contain p (per allowOnEdge), and p must not land in the interior
// of any hole. A point on a hole boundary counts as covered but not
// contained by the polygon, matching the exterior's own covers/contains
// distinction.
func (p *Polygon) ContainsPoint(pt Point, allowOnEdge bool) bool {
	if p.Empty() || !p.exterior.rect.ContainsPoint(pt) {
		return false
	}
	if !p.exterior.ContainsPoint(pt, allowOnEdge).Hit {
		return false
	}
	for _, h := range p.holes {
		res := h.ContainsPoint(pt, !allowOnEdge)
		if res.Hit {
			return false
		}
	}
	return true
}

// Clone returns a shared-ownership handle (refcount retain on the
// exterior and each hole).
func (p *Polygon) Clone() *Polygon {
	if p == nil {
		return nil
	}
	out := &Polygon{exterior: p.exterior.Clone()}
	if len(p.holes) > 0 {
		out.holes = make([]*Ring, len(p.holes))
		for i, h := range p.holes {
			out.holes[i] = h.Clone()
		}
	}
	return out
}

// Copy returns a fully independent deep copy.
func (p *Polygon) Copy() *Polygon {
	if p == nil {
		return nil
	}
	out := &Polygon{exterior: p.exterior.Copy()}
	if len(p.holes) > 0 {
		out.holes = make([]*Ring, len(p.holes))
		for i, h := range p.holes {
			out.holes[i] = h.Copy()
		}
	}
	return out
}
