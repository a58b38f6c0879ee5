package tg

import "sync/atomic"

// refCounted implements a shared-ownership lifetime: counters start at
// 1, retain is a relaxed fetch-add, release is a fetch-sub that signals
// teardown once the count reaches zero (Go's atomics already provide
// sequential consistency, so no separate acquire fence is needed).
//
// In a garbage-collected runtime nothing is actually freed by Release;
// the counter exists so Ring/Polygon/Multi can expose Clone-is-cheap /
// Copy-is-deep semantics, and so a borrowed (noheap) value can detect
// that it must deep-copy instead of sharing.
type refCounted struct {
	n atomic.Int32
}

func newRefCounted() *refCounted {
	rc := &refCounted{}
	rc.n.Store(1)
	return rc
}

func (rc *refCounted) retain() {
	rc.n.Add(1)
}

func (rc *refCounted) release() (dropped bool) {
	return rc.n.Add(-1) == 0
}

func (rc *refCounted) count() int32 {
	return rc.n.Load()
}

// Clone returns a cheap, shared-ownership handle to the same underlying
// points/index storage: an O(1) refcount increment, unless r is borrowed
// (noheap), in which case Clone falls back to a full Copy.
func (r *Ring) Clone() *Ring {
	if r == nil {
		return nil
	}
	if r.isBorrowed() {
		return r.Copy()
	}
	r.rc.retain()
	return r
}

// Copy returns an independent, deep copy of r: new point storage and a
// freshly rebuilt index, never sharing state with the original.
func (r *Ring) Copy() *Ring {
	if r == nil {
		return nil
	}
	pts := make([]Point, r.NumPoints())
	copy(pts, r.points[:r.NumPoints()])
	kind := IndexNone
	if r.index != nil {
		kind = IndexNatural
	} else if r.ystripes != nil {
		kind = IndexYStripes
	}
	out, _ := buildRing(pts, r.closed, BuildOptions{Index: kind})
	return out
}

// isBorrowed reports whether r's header is externally owned (e.g. built
// by rectRing) and thus ineligible for refcount-sharing.
func (r *Ring) isBorrowed() bool {
	return r.borrowed
}

// Release decrements r's reference count. It is a no-op beyond
// bookkeeping in this garbage-collected implementation (see refCounted
// doc comment) but is kept for API parity with an explicit C-style
// lifetime model and so tests can assert refcount behavior.
func (r *Ring) Release() {
	if r == nil || r.isBorrowed() {
		return
	}
	r.rc.release()
}

// RefCount reports the current shared-ownership count, primarily useful
// for tests.
func (r *Ring) RefCount() int32 {
	if r == nil || r.isBorrowed() {
		return 0
	}
	return r.rc.count()
}
