package handle

import "github.com/gogpu/cairo/backend"

// Kind selects the family of engine functions a Ref manages. The kinds are
// zero-size types; a Ref[Surface] can only be adopted, shared or released
// through the surface functions of its backend.
type Kind interface {
	Surface | Pattern | Context

	reference(be backend.Backend, p backend.Ptr) backend.Ptr
	destroy(be backend.Backend, p backend.Ptr)
	count(be backend.Backend, p backend.Ptr) uint32
	status(be backend.Backend, p backend.Ptr) backend.Status
	name() string
}

// Surface manages cairo_surface_t-like objects.
type Surface struct{}

func (Surface) reference(be backend.Backend, p backend.Ptr) backend.Ptr {
	return be.SurfaceReference(p)
}
func (Surface) destroy(be backend.Backend, p backend.Ptr) { be.SurfaceDestroy(p) }
func (Surface) count(be backend.Backend, p backend.Ptr) uint32 {
	return be.SurfaceReferenceCount(p)
}
func (Surface) status(be backend.Backend, p backend.Ptr) backend.Status {
	return be.SurfaceStatus(p)
}
func (Surface) name() string { return "surface" }

// Pattern manages cairo_pattern_t-like objects.
type Pattern struct{}

func (Pattern) reference(be backend.Backend, p backend.Ptr) backend.Ptr {
	return be.PatternReference(p)
}
func (Pattern) destroy(be backend.Backend, p backend.Ptr) { be.PatternDestroy(p) }
func (Pattern) count(be backend.Backend, p backend.Ptr) uint32 {
	return be.PatternReferenceCount(p)
}
func (Pattern) status(be backend.Backend, p backend.Ptr) backend.Status {
	return be.PatternStatus(p)
}
func (Pattern) name() string { return "pattern" }

// Context manages cairo_t-like objects.
type Context struct{}

func (Context) reference(be backend.Backend, p backend.Ptr) backend.Ptr {
	return be.ContextReference(p)
}
func (Context) destroy(be backend.Backend, p backend.Ptr) { be.ContextDestroy(p) }
func (Context) count(be backend.Backend, p backend.Ptr) uint32 {
	return be.ContextReferenceCount(p)
}
func (Context) status(be backend.Backend, p backend.Ptr) backend.Status {
	return be.ContextStatus(p)
}
func (Context) name() string { return "context" }
