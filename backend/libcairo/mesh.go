//go:build cgo && libcairo

package libcairo

/*
#include <cairo.h>
*/
import "C"

import "github.com/gogpu/cairo/backend"

// PatternCreateMesh implements backend.Backend.
func (b *Backend) PatternCreateMesh() backend.Ptr {
	return ptr(C.cairo_pattern_create_mesh())
}

// MeshBeginPatch implements backend.Backend.
func (b *Backend) MeshBeginPatch(p backend.Ptr) {
	C.cairo_mesh_pattern_begin_patch(b.pt(p))
}

// MeshEndPatch implements backend.Backend.
func (b *Backend) MeshEndPatch(p backend.Ptr) {
	C.cairo_mesh_pattern_end_patch(b.pt(p))
}

// MeshMoveTo implements backend.Backend.
func (b *Backend) MeshMoveTo(p backend.Ptr, x, y float64) {
	C.cairo_mesh_pattern_move_to(b.pt(p), C.double(x), C.double(y))
}

// MeshLineTo implements backend.Backend.
func (b *Backend) MeshLineTo(p backend.Ptr, x, y float64) {
	C.cairo_mesh_pattern_line_to(b.pt(p), C.double(x), C.double(y))
}

// MeshCurveTo implements backend.Backend.
func (b *Backend) MeshCurveTo(p backend.Ptr, x1, y1, x2, y2, x3, y3 float64) {
	C.cairo_mesh_pattern_curve_to(b.pt(p), C.double(x1), C.double(y1),
		C.double(x2), C.double(y2), C.double(x3), C.double(y3))
}

// MeshSetControlPoint implements backend.Backend.
func (b *Backend) MeshSetControlPoint(p backend.Ptr, point int, x, y float64) {
	C.cairo_mesh_pattern_set_control_point(b.pt(p), C.uint(point), C.double(x), C.double(y))
}

// MeshSetCornerColorRGBA implements backend.Backend.
func (b *Backend) MeshSetCornerColorRGBA(p backend.Ptr, corner int, r, g, bl, a float64) {
	C.cairo_mesh_pattern_set_corner_color_rgba(b.pt(p), C.uint(corner),
		C.double(r), C.double(g), C.double(bl), C.double(a))
}

// MeshPatchCount implements backend.Backend.
func (b *Backend) MeshPatchCount(p backend.Ptr) (int, backend.Status) {
	var n C.uint
	st := status(C.cairo_mesh_pattern_get_patch_count(b.pt(p), &n))
	return int(n), st
}

// MeshPath implements backend.Backend.
func (b *Backend) MeshPath(p backend.Ptr, patch int) backend.Ptr {
	return ptr(C.cairo_mesh_pattern_get_path(b.pt(p), C.uint(patch)))
}

// MeshControlPoint implements backend.Backend.
func (b *Backend) MeshControlPoint(p backend.Ptr, patch, point int) (x, y float64, st backend.Status) {
	var cx, cy C.double
	st = status(C.cairo_mesh_pattern_get_control_point(b.pt(p), C.uint(patch), C.uint(point), &cx, &cy))
	return float64(cx), float64(cy), st
}

// MeshCornerColorRGBA implements backend.Backend.
func (b *Backend) MeshCornerColorRGBA(p backend.Ptr, patch, corner int) (r, g, bl, a float64, st backend.Status) {
	var cr, cg, cb, ca C.double
	st = status(C.cairo_mesh_pattern_get_corner_color_rgba(b.pt(p), C.uint(patch), C.uint(corner),
		&cr, &cg, &cb, &ca))
	return float64(cr), float64(cg), float64(cb), float64(ca), st
}
