// Package software implements the backend contract in pure Go.
//
// Objects live in a table keyed by backend.Ptr and follow cairo's model:
// explicit reference counts, static error objects for failed
// constructors, and sticky status codes. Image surfaces store pixels in
// cairo's native formats; fills and paints are rasterized through
// gogpu/gg. Stream surfaces record drawing and emit SVG, PDF, PostScript
// or a script transcript through the registered write callback.
//
// The engine serializes access to its table with a single mutex and never
// holds it while calling write callbacks or destroy notifications.
package software

import (
	"sync"

	"github.com/gogpu/cairo/backend"
)

func init() {
	backend.Register(backend.BackendSoftware, func() backend.Backend {
		return Default()
	})
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the process-wide engine registered with the backend
// registry.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = New()
	})
	return defaultEngine
}

type kind uint8

const (
	kindSurface kind = iota + 1
	kindPattern
	kindContext
	kindPath
)

func (k kind) String() string {
	switch k {
	case kindSurface:
		return "surface"
	case kindPattern:
		return "pattern"
	case kindContext:
		return "context"
	case kindPath:
		return "path"
	default:
		return "unknown"
	}
}

// Static error objects occupy [errorBase, firstID). Their identifier
// encodes the object kind and status, so they need no table entry.
const (
	errorBase backend.Ptr = 1 << 16
	firstID   backend.Ptr = 1 << 20
)

func errorPtr(k kind, st backend.Status) backend.Ptr {
	return errorBase + backend.Ptr(k)<<8 + backend.Ptr(st)
}

func isErrorPtr(p backend.Ptr) bool {
	return p >= errorBase && p < firstID
}

// errorStatus decodes the status of a static error object of kind k. A
// static object of another kind reads as a null pointer.
func errorStatus(p backend.Ptr, k kind) backend.Status {
	off := p - errorBase
	if kind(off>>8) != k {
		return backend.StatusNullPointer
	}
	return backend.Status(off & 0xff)
}

// object is the header shared by every table entry.
type object struct {
	kind   kind
	refs   uint32
	status backend.Status
}

func (o *object) header() *object { return o }

// setError makes st the sticky status of o unless an error is already set.
func (o *object) setError(st backend.Status) {
	if o.status == backend.StatusSuccess {
		o.status = st
	}
}

type entry interface {
	header() *object
}

// Engine is a pure-Go drawing engine.
type Engine struct {
	mu      sync.Mutex
	objects map[backend.Ptr]entry
	next    backend.Ptr
}

// New returns an empty engine. Engines are independent; objects from one
// engine must not be passed to another.
func New() *Engine {
	return &Engine{
		objects: make(map[backend.Ptr]entry),
		next:    firstID,
	}
}

// Name implements backend.Backend.
func (e *Engine) Name() string {
	return backend.BackendSoftware
}

// Live returns the number of objects currently in the table.
func (e *Engine) Live() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.objects)
}

// add stores obj with one reference. Caller holds e.mu.
func (e *Engine) add(obj entry) backend.Ptr {
	h := obj.header()
	h.refs = 1
	p := e.next
	e.next++
	e.objects[p] = obj
	backend.Logger().Debug("software: created", "kind", h.kind.String(), "ptr", uint64(p))
	return p
}

// lookup returns the live object p of kind k, or the status to report for
// p when it is not one. Caller holds e.mu.
func (e *Engine) lookup(p backend.Ptr, k kind) (entry, backend.Status) {
	if p == 0 {
		return nil, backend.StatusNullPointer
	}
	if isErrorPtr(p) {
		return nil, errorStatus(p, k)
	}
	obj, ok := e.objects[p]
	if !ok || obj.header().kind != k {
		return nil, backend.StatusNullPointer
	}
	return obj, backend.StatusSuccess
}

func (e *Engine) reference(p backend.Ptr, k kind) backend.Ptr {
	e.mu.Lock()
	defer e.mu.Unlock()
	if obj, _ := e.lookup(p, k); obj != nil {
		obj.header().refs++
	}
	return p
}

func (e *Engine) referenceCount(p backend.Ptr, k kind) uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if obj, _ := e.lookup(p, k); obj != nil {
		return obj.header().refs
	}
	return 0
}

func (e *Engine) status(p backend.Ptr, k kind) backend.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	obj, st := e.lookup(p, k)
	if obj == nil {
		return st
	}
	return obj.header().status
}

// unref drops one reference and reports whether it was the last. The
// object stays in the table; the caller removes it with forget once any
// teardown that needs it has run. Caller holds e.mu.
func (e *Engine) unref(p backend.Ptr, k kind) (entry, bool) {
	obj, _ := e.lookup(p, k)
	if obj == nil {
		return nil, false
	}
	h := obj.header()
	if h.refs == 0 {
		return nil, false
	}
	h.refs--
	return obj, h.refs == 0
}

// forget removes p from the table. Caller holds e.mu.
func (e *Engine) forget(p backend.Ptr) {
	if obj, ok := e.objects[p]; ok {
		backend.Logger().Debug("software: freed", "kind", obj.header().kind.String(), "ptr", uint64(p))
		delete(e.objects, p)
	}
}

var _ backend.Backend = (*Engine)(nil)
