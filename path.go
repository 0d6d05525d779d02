package cairo

import (
	"fmt"
	"iter"
	"runtime"
	"sync/atomic"

	"github.com/gogpu/cairo/backend"
	"github.com/gogpu/cairo/pathdata"
)

// Path is an engine path buffer, as returned by Context.CopyPath and
// Mesh.Path. It is read-only and owned by the caller until Release.
type Path struct {
	be      backend.Backend
	ptr     atomic.Uintptr
	cleanup runtime.Cleanup
}

type pathLeak struct {
	be  backend.Backend
	ptr backend.Ptr
}

func adoptPath(be backend.Backend, p backend.Ptr, op string) (*Path, error) {
	path := &Path{be: be}
	path.ptr.Store(uintptr(p))
	if p != 0 {
		path.cleanup = runtime.AddCleanup(path, func(l pathLeak) {
			backend.Logger().Warn("cairo: unreleased path collected", "ptr", fmt.Sprintf("%#x", uintptr(l.ptr)))
			l.be.PathDestroy(l.ptr)
		}, pathLeak{be: be, ptr: p})
	}
	if st := path.Status(); st != backend.StatusSuccess {
		path.Release()
		return nil, &StatusError{Op: op, Status: st}
	}
	return path, nil
}

func (p *Path) records() ([]pathdata.Record, backend.Status) {
	ptr := backend.Ptr(p.ptr.Load())
	if ptr == 0 {
		return nil, backend.StatusNullPointer
	}
	return p.be.PathRecords(ptr)
}

// Status returns the status recorded in the path.
func (p *Path) Status() Status {
	_, st := p.records()
	return st
}

// Err returns the path status as an error.
func (p *Path) Err() error {
	return statusErr("path", p.Status())
}

// Records returns the raw record buffer. It aliases engine memory and is
// valid until Release.
func (p *Path) Records() []pathdata.Record {
	recs, _ := p.records()
	return recs
}

// Segments returns a single-pass iterator over the decoded segments. A
// malformed buffer ends the iteration early.
func (p *Path) Segments() iter.Seq[PathSegment] {
	return pathdata.Decode(p.Records())
}

// Release frees the engine path. Safe to call more than once.
func (p *Path) Release() {
	ptr := backend.Ptr(p.ptr.Swap(0))
	if ptr == 0 {
		return
	}
	p.cleanup.Stop()
	p.be.PathDestroy(ptr)
}
