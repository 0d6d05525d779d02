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

func (b *Backend) pt(p backend.Ptr) *C.cairo_pattern_t {
	if p == 0 {
		return b.nilPattern
	}
	return (*C.cairo_pattern_t)(unsafe.Pointer(uintptr(p)))
}

// PatternReference implements backend.Backend.
func (b *Backend) PatternReference(p backend.Ptr) backend.Ptr {
	if p == 0 {
		return 0
	}
	return ptr(C.cairo_pattern_reference(b.pt(p)))
}

// PatternDestroy implements backend.Backend.
func (b *Backend) PatternDestroy(p backend.Ptr) {
	if p == 0 {
		return
	}
	C.cairo_pattern_destroy(b.pt(p))
}

// PatternReferenceCount implements backend.Backend.
func (b *Backend) PatternReferenceCount(p backend.Ptr) uint32 {
	return uint32(C.cairo_pattern_get_reference_count(b.pt(p)))
}

// PatternStatus implements backend.Backend.
func (b *Backend) PatternStatus(p backend.Ptr) backend.Status {
	return status(C.cairo_pattern_status(b.pt(p)))
}

// PatternType implements backend.Backend.
func (b *Backend) PatternType(p backend.Ptr) backend.PatternType {
	return backend.PatternType(C.cairo_pattern_get_type(b.pt(p)))
}

// PatternSetExtend implements backend.Backend.
func (b *Backend) PatternSetExtend(p backend.Ptr, e backend.Extend) {
	C.cairo_pattern_set_extend(b.pt(p), C.cairo_extend_t(e))
}

// PatternExtend implements backend.Backend.
func (b *Backend) PatternExtend(p backend.Ptr) backend.Extend {
	return backend.Extend(C.cairo_pattern_get_extend(b.pt(p)))
}

// PatternSetFilter implements backend.Backend.
func (b *Backend) PatternSetFilter(p backend.Ptr, f backend.Filter) {
	C.cairo_pattern_set_filter(b.pt(p), C.cairo_filter_t(f))
}

// PatternFilter implements backend.Backend.
func (b *Backend) PatternFilter(p backend.Ptr) backend.Filter {
	return backend.Filter(C.cairo_pattern_get_filter(b.pt(p)))
}

func toC(m backend.Matrix) C.cairo_matrix_t {
	return C.cairo_matrix_t{
		xx: C.double(m.XX), yx: C.double(m.YX),
		xy: C.double(m.XY), yy: C.double(m.YY),
		x0: C.double(m.X0), y0: C.double(m.Y0),
	}
}

func fromC(m C.cairo_matrix_t) backend.Matrix {
	return backend.Matrix{
		XX: float64(m.xx), YX: float64(m.yx),
		XY: float64(m.xy), YY: float64(m.yy),
		X0: float64(m.x0), Y0: float64(m.y0),
	}
}

// PatternSetMatrix implements backend.Backend.
func (b *Backend) PatternSetMatrix(p backend.Ptr, m backend.Matrix) {
	cm := toC(m)
	C.cairo_pattern_set_matrix(b.pt(p), &cm)
}

// PatternMatrix implements backend.Backend.
func (b *Backend) PatternMatrix(p backend.Ptr) backend.Matrix {
	var cm C.cairo_matrix_t
	C.cairo_pattern_get_matrix(b.pt(p), &cm)
	return fromC(cm)
}

// PatternCreateRGBA implements backend.Backend.
func (b *Backend) PatternCreateRGBA(r, g, bl, a float64) backend.Ptr {
	return ptr(C.cairo_pattern_create_rgba(C.double(r), C.double(g), C.double(bl), C.double(a)))
}

// PatternRGBA implements backend.Backend.
func (b *Backend) PatternRGBA(p backend.Ptr) (r, g, bl, a float64, st backend.Status) {
	var cr, cg, cb, ca C.double
	st = status(C.cairo_pattern_get_rgba(b.pt(p), &cr, &cg, &cb, &ca))
	return float64(cr), float64(cg), float64(cb), float64(ca), st
}

// PatternCreateLinear implements backend.Backend.
func (b *Backend) PatternCreateLinear(x0, y0, x1, y1 float64) backend.Ptr {
	return ptr(C.cairo_pattern_create_linear(C.double(x0), C.double(y0), C.double(x1), C.double(y1)))
}

// PatternLinearPoints implements backend.Backend.
func (b *Backend) PatternLinearPoints(p backend.Ptr) (x0, y0, x1, y1 float64, st backend.Status) {
	var a, c, d, e C.double
	st = status(C.cairo_pattern_get_linear_points(b.pt(p), &a, &c, &d, &e))
	return float64(a), float64(c), float64(d), float64(e), st
}

// PatternCreateRadial implements backend.Backend.
func (b *Backend) PatternCreateRadial(cx0, cy0, r0, cx1, cy1, r1 float64) backend.Ptr {
	return ptr(C.cairo_pattern_create_radial(C.double(cx0), C.double(cy0), C.double(r0),
		C.double(cx1), C.double(cy1), C.double(r1)))
}

// PatternRadialCircles implements backend.Backend.
func (b *Backend) PatternRadialCircles(p backend.Ptr) (cx0, cy0, r0, cx1, cy1, r1 float64, st backend.Status) {
	var x0, y0, ra, x1, y1, rb C.double
	st = status(C.cairo_pattern_get_radial_circles(b.pt(p), &x0, &y0, &ra, &x1, &y1, &rb))
	return float64(x0), float64(y0), float64(ra), float64(x1), float64(y1), float64(rb), st
}

// PatternAddColorStopRGBA implements backend.Backend.
func (b *Backend) PatternAddColorStopRGBA(p backend.Ptr, offset, r, g, bl, a float64) {
	C.cairo_pattern_add_color_stop_rgba(b.pt(p), C.double(offset),
		C.double(r), C.double(g), C.double(bl), C.double(a))
}

// PatternColorStopCount implements backend.Backend.
func (b *Backend) PatternColorStopCount(p backend.Ptr) (int, backend.Status) {
	var n C.int
	st := status(C.cairo_pattern_get_color_stop_count(b.pt(p), &n))
	return int(n), st
}

// PatternColorStopRGBA implements backend.Backend.
func (b *Backend) PatternColorStopRGBA(p backend.Ptr, index int) (offset, r, g, bl, a float64, st backend.Status) {
	var o, cr, cg, cb, ca C.double
	st = status(C.cairo_pattern_get_color_stop_rgba(b.pt(p), C.int(index), &o, &cr, &cg, &cb, &ca))
	return float64(o), float64(cr), float64(cg), float64(cb), float64(ca), st
}

// PatternCreateForSurface implements backend.Backend.
func (b *Backend) PatternCreateForSurface(s backend.Ptr) backend.Ptr {
	return ptr(C.cairo_pattern_create_for_surface(b.s(s)))
}

// PatternSurface implements backend.Backend.
func (b *Backend) PatternSurface(p backend.Ptr) (backend.Ptr, backend.Status) {
	var cs *C.cairo_surface_t
	st := status(C.cairo_pattern_get_surface(b.pt(p), &cs))
	if cs == nil {
		return 0, st
	}
	return ptr(cs), st
}
