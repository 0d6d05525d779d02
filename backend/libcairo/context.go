//go:build cgo && libcairo

package libcairo

/*
#include <cairo.h>
*/
import "C"

import (
	"unsafe"

	"github.com/gogpu/cairo/backend"
)

func (b *Backend) cr(p backend.Ptr) *C.cairo_t {
	if p == 0 {
		return b.nilContext
	}
	return (*C.cairo_t)(unsafe.Pointer(uintptr(p)))
}

// Create implements backend.Backend.
func (b *Backend) Create(target backend.Ptr) backend.Ptr {
	return ptr(C.cairo_create(b.s(target)))
}

// ContextReference implements backend.Backend.
func (b *Backend) ContextReference(p backend.Ptr) backend.Ptr {
	if p == 0 {
		return 0
	}
	return ptr(C.cairo_reference(b.cr(p)))
}

// ContextDestroy implements backend.Backend.
func (b *Backend) ContextDestroy(p backend.Ptr) {
	if p == 0 {
		return
	}
	C.cairo_destroy(b.cr(p))
}

// ContextReferenceCount implements backend.Backend.
func (b *Backend) ContextReferenceCount(p backend.Ptr) uint32 {
	return uint32(C.cairo_get_reference_count(b.cr(p)))
}

// ContextStatus implements backend.Backend.
func (b *Backend) ContextStatus(p backend.Ptr) backend.Status {
	return status(C.cairo_status(b.cr(p)))
}

// ContextTarget implements backend.Backend.
func (b *Backend) ContextTarget(p backend.Ptr) backend.Ptr {
	return ptr(C.cairo_get_target(b.cr(p)))
}

// Source implements backend.Backend.
func (b *Backend) Source(p backend.Ptr) backend.Ptr {
	return ptr(C.cairo_get_source(b.cr(p)))
}

// SetSource implements backend.Backend.
func (b *Backend) SetSource(p, pattern backend.Ptr) {
	C.cairo_set_source(b.cr(p), b.pt(pattern))
}

// SetSourceRGBA implements backend.Backend.
func (b *Backend) SetSourceRGBA(p backend.Ptr, r, g, bl, a float64) {
	C.cairo_set_source_rgba(b.cr(p), C.double(r), C.double(g), C.double(bl), C.double(a))
}

// SetSourceSurface implements backend.Backend.
func (b *Backend) SetSourceSurface(p, s backend.Ptr, x, y float64) {
	C.cairo_set_source_surface(b.cr(p), b.s(s), C.double(x), C.double(y))
}

// NewPath implements backend.Backend.
func (b *Backend) NewPath(p backend.Ptr) {
	C.cairo_new_path(b.cr(p))
}

// MoveTo implements backend.Backend.
func (b *Backend) MoveTo(p backend.Ptr, x, y float64) {
	C.cairo_move_to(b.cr(p), C.double(x), C.double(y))
}

// LineTo implements backend.Backend.
func (b *Backend) LineTo(p backend.Ptr, x, y float64) {
	C.cairo_line_to(b.cr(p), C.double(x), C.double(y))
}

// CurveTo implements backend.Backend.
func (b *Backend) CurveTo(p backend.Ptr, x1, y1, x2, y2, x3, y3 float64) {
	C.cairo_curve_to(b.cr(p), C.double(x1), C.double(y1),
		C.double(x2), C.double(y2), C.double(x3), C.double(y3))
}

// ClosePath implements backend.Backend.
func (b *Backend) ClosePath(p backend.Ptr) {
	C.cairo_close_path(b.cr(p))
}

// Rectangle implements backend.Backend.
func (b *Backend) Rectangle(p backend.Ptr, x, y, width, height float64) {
	C.cairo_rectangle(b.cr(p), C.double(x), C.double(y), C.double(width), C.double(height))
}

// CopyPath implements backend.Backend.
func (b *Backend) CopyPath(p backend.Ptr) backend.Ptr {
	return ptr(C.cairo_copy_path(b.cr(p)))
}

// AppendPath implements backend.Backend.
func (b *Backend) AppendPath(p, path backend.Ptr) {
	if path == 0 {
		// cairo asserts on a NULL path; report it through the context.
		C.cairo_append_path(b.cr(p), &C.cairo_path_t{status: C.CAIRO_STATUS_NULL_POINTER})
		return
	}
	C.cairo_append_path(b.cr(p), (*C.cairo_path_t)(unsafe.Pointer(uintptr(path))))
}

// Paint implements backend.Backend.
func (b *Backend) Paint(p backend.Ptr) {
	C.cairo_paint(b.cr(p))
}

// Fill implements backend.Backend.
func (b *Backend) Fill(p backend.Ptr) {
	C.cairo_fill(b.cr(p))
}

// ShowPage implements backend.Backend.
func (b *Backend) ShowPage(p backend.Ptr) {
	C.cairo_show_page(b.cr(p))
}
