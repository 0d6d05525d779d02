// Package handle owns references to native engine objects.
//
// A Ref holds exactly one engine reference (or none, when bound). The
// reference is dropped by Release, or by a cleanup attached to the Ref if
// the program loses it without releasing; the latter is logged as a leak.
package handle

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/gogpu/cairo/backend"
)

// Ref is an owned or bound reference to an engine object of kind K.
//
// A Ref is safe to share between goroutines: Release is idempotent and
// accessors on a released Ref behave as on the nil object.
type Ref[K Kind] struct {
	be      backend.Backend
	ptr     atomic.Uintptr
	bound   bool
	cleanup runtime.Cleanup
}

type leak[K Kind] struct {
	be  backend.Backend
	ptr backend.Ptr
}

// Adopt takes ownership of a reference the caller already holds, typically
// the one returned by a constructor. The engine count is not changed.
func Adopt[K Kind](be backend.Backend, p backend.Ptr) *Ref[K] {
	return newRef[K](be, p, false)
}

// Share adds an engine reference to p and owns it. Use it for objects
// returned by getters that do not transfer ownership.
func Share[K Kind](be backend.Backend, p backend.Ptr) *Ref[K] {
	var k K
	return newRef[K](be, k.reference(be, p), false)
}

// Bind wraps p without owning a reference. Release on a bound Ref never
// destroys the object. The caller guarantees p outlives the Ref.
func Bind[K Kind](be backend.Backend, p backend.Ptr) *Ref[K] {
	return newRef[K](be, p, true)
}

func newRef[K Kind](be backend.Backend, p backend.Ptr, bound bool) *Ref[K] {
	r := &Ref[K]{be: be, bound: bound}
	r.ptr.Store(uintptr(p))
	if !bound && p != 0 {
		r.cleanup = runtime.AddCleanup(r, leaked[K], leak[K]{be: be, ptr: p})
	}
	return r
}

// leaked runs when a Ref becomes unreachable without Release.
func leaked[K Kind](l leak[K]) {
	var k K
	backend.Logger().Warn("handle: unreleased reference collected",
		"kind", k.name(), "ptr", fmt.Sprintf("%#x", uintptr(l.ptr)))
	if k.count(l.be, l.ptr) > 0 {
		k.destroy(l.be, l.ptr)
	}
}

// Clone returns a new owning Ref to the same object, adding one engine
// reference. Cloning a released Ref yields a Ref to the nil object.
func (r *Ref[K]) Clone() *Ref[K] {
	return Share[K](r.be, r.Ptr())
}

// Release drops the reference held by r. Subsequent calls do nothing.
// Static error objects, whose count reads 0, are never destroyed.
func (r *Ref[K]) Release() {
	p := backend.Ptr(r.ptr.Swap(0))
	if p == 0 {
		return
	}
	r.cleanup.Stop()
	if r.bound {
		return
	}
	var k K
	if k.count(r.be, p) == 0 {
		return
	}
	k.destroy(r.be, p)
}

// Ptr returns the engine identifier, or 0 once r has been released.
func (r *Ref[K]) Ptr() backend.Ptr {
	return backend.Ptr(r.ptr.Load())
}

// Backend returns the engine that owns the object.
func (r *Ref[K]) Backend() backend.Backend {
	return r.be
}

// Bound reports whether r was created by Bind.
func (r *Ref[K]) Bound() bool {
	return r.bound
}

// Released reports whether Release has been called.
func (r *Ref[K]) Released() bool {
	return r.ptr.Load() == 0
}

// Status returns the engine status of the object. A released Ref reports
// StatusNullPointer.
func (r *Ref[K]) Status() backend.Status {
	p := r.Ptr()
	if p == 0 {
		return backend.StatusNullPointer
	}
	var k K
	return k.status(r.be, p)
}

// ReferenceCount returns the engine count of the object, 0 for static
// error objects and released Refs.
func (r *Ref[K]) ReferenceCount() uint32 {
	p := r.Ptr()
	if p == 0 {
		return 0
	}
	var k K
	return k.count(r.be, p)
}

func (r *Ref[K]) String() string {
	var k K
	return fmt.Sprintf("%s(%#x)", k.name(), r.ptr.Load())
}
