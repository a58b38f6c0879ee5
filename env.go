package tg

import "sync/atomic"

// env holds the package's global, set-once-at-startup configuration.
// Concurrent mutation of these knobs after startup is documented as
// unsupported, so plain atomics (no lock, no init-once gate) are the
// correct-weight tool — a late write is still not a data race, and no
// one pays for synchronization nobody is contractually owed.
type env struct {
	indexKindVal     atomic.Int32
	spreadVal        atomic.Int32
	printFixedFloats atomic.Bool
}

var defaultEnv = newEnv()

func newEnv() *env {
	e := &env{}
	e.indexKindVal.Store(int32(IndexNatural))
	e.spreadVal.Store(16)
	return e
}

func (e *env) indexKind() IndexKind { return IndexKind(e.indexKindVal.Load()) }
func (e *env) spread() int          { return int(e.spreadVal.Load()) }

// SetDefaultIndex sets the package-wide default index kind used by
// BuildOptions{Index: IndexDefault}. IndexDefault itself is rejected
// (it would be circular).
func SetDefaultIndex(kind IndexKind) {
	if kind == IndexDefault {
		return
	}
	defaultEnv.indexKindVal.Store(int32(kind))
}

// SetDefaultSpread sets the package-wide default Natural Index / Y-Stripes
// fan-out, clamped to the legal range [2, 4096].
func SetDefaultSpread(spread int) {
	defaultEnv.spreadVal.Store(int32(clampSpread(spread)))
}

// SetPrintFixedFloats toggles fixed-notation float formatting in the WKT
// writer; when true, WKT coordinates are never emitted in exponential
// form. The GeoJSON and WKB writers do not consult it.
func SetPrintFixedFloats(on bool) {
	defaultEnv.printFixedFloats.Store(on)
}

// printFixedFloats reports the current formatting mode for codec writers.
func printFixedFloats() bool {
	return defaultEnv.printFixedFloats.Load()
}

// PrintFixedFloats reports the current formatting mode set by
// SetPrintFixedFloats; the wkt package's writer reads it.
func PrintFixedFloats() bool {
	return printFixedFloats()
}

// Allocator mirrors the C surface's env_set_allocator(malloc, realloc,
// free) for interface parity. Go has no custom-allocator hook in a
// garbage-collected runtime, so the functions are accepted and ignored;
// this is documented here rather than silently omitted (DESIGN.md).
type Allocator struct {
	Malloc  func(size int) []byte
	Realloc func(buf []byte, size int) []byte
	Free    func(buf []byte)
}

// SetAllocator is a documented no-op retained for API-surface parity
// with a C allocator-hook surface; see the Allocator doc comment.
func SetAllocator(Allocator) {}
