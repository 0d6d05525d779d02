//go:build cgo && libcairo

package libcairo

/*
#cgo pkg-config: cairo
#include <stdlib.h>
#include <cairo.h>
#include "trampoline.h"
*/
import "C"

import (
	"runtime"
	"sync"
	"unsafe"

	"github.com/gogpu/cairo/backend"
	"github.com/gogpu/cairo/pathdata"
)

func init() {
	backend.Register(backend.BackendLibcairo, func() backend.Backend {
		return Default()
	})
}

var (
	defaultOnce sync.Once
	defaultBe   *Backend
)

// Default returns the process-wide binding.
func Default() *Backend {
	defaultOnce.Do(func() {
		defaultBe = New()
	})
	return defaultBe
}

// Backend implements backend.Backend on top of libcairo.
type Backend struct {
	nilSurface *C.cairo_surface_t
	nilPattern *C.cairo_pattern_t
	nilContext *C.cairo_t
}

// New returns a binding. The nil objects it hands out for the zero Ptr are
// cairo's static error objects carrying CAIRO_STATUS_NULL_POINTER.
func New() *Backend {
	cr := C.cairo_create(nil)
	return &Backend{
		nilContext: cr,
		nilSurface: C.cairo_get_target(cr),
		nilPattern: C.cairo_pattern_create_for_surface(nil),
	}
}

// Name implements backend.Backend.
func (b *Backend) Name() string {
	return backend.BackendLibcairo
}

// Version returns the runtime cairo version string.
func Version() string {
	return C.GoString(C.cairo_version_string())
}

func ptr[T any](p *T) backend.Ptr {
	return backend.Ptr(uintptr(unsafe.Pointer(p)))
}

func (b *Backend) s(p backend.Ptr) *C.cairo_surface_t {
	if p == 0 {
		return b.nilSurface
	}
	return (*C.cairo_surface_t)(unsafe.Pointer(uintptr(p)))
}

func status(st C.cairo_status_t) backend.Status {
	return backend.Status(st)
}

// SurfaceReference implements backend.Backend.
func (b *Backend) SurfaceReference(p backend.Ptr) backend.Ptr {
	if p == 0 {
		return 0
	}
	return ptr(C.cairo_surface_reference(b.s(p)))
}

// SurfaceDestroy implements backend.Backend. Script surfaces flush their
// device before the last reference goes, so trailing output reaches the
// writer while it is still registered.
func (b *Backend) SurfaceDestroy(p backend.Ptr) {
	if p == 0 {
		return
	}
	cs := b.s(p)
	if C.cairo_surface_get_reference_count(cs) == 1 && C.cairo_surface_get_type(cs) == C.CAIRO_SURFACE_TYPE_SCRIPT {
		b.SurfaceFinish(p)
	}
	C.cairo_surface_destroy(cs)
}

// SurfaceReferenceCount implements backend.Backend.
func (b *Backend) SurfaceReferenceCount(p backend.Ptr) uint32 {
	return uint32(C.cairo_surface_get_reference_count(b.s(p)))
}

// SurfaceStatus implements backend.Backend.
func (b *Backend) SurfaceStatus(p backend.Ptr) backend.Status {
	return status(C.cairo_surface_status(b.s(p)))
}

// SurfaceType implements backend.Backend.
func (b *Backend) SurfaceType(p backend.Ptr) backend.SurfaceType {
	return backend.SurfaceType(C.cairo_surface_get_type(b.s(p)))
}

// SurfaceContent implements backend.Backend.
func (b *Backend) SurfaceContent(p backend.Ptr) backend.Content {
	return backend.Content(C.cairo_surface_get_content(b.s(p)))
}

// SurfaceFlush implements backend.Backend.
func (b *Backend) SurfaceFlush(p backend.Ptr) {
	C.cairo_surface_flush(b.s(p))
}

// SurfaceFinish implements backend.Backend.
func (b *Backend) SurfaceFinish(p backend.Ptr) {
	cs := b.s(p)
	C.cairo_surface_finish(cs)
	if C.cairo_surface_get_type(cs) == C.CAIRO_SURFACE_TYPE_SCRIPT {
		if dev := C.cairo_surface_get_device(cs); dev != nil {
			C.cairo_device_flush(dev)
		}
	}
}

// SurfaceMarkDirty implements backend.Backend.
func (b *Backend) SurfaceMarkDirty(p backend.Ptr) {
	C.cairo_surface_mark_dirty(b.s(p))
}

// SurfaceMarkDirtyRectangle implements backend.Backend.
func (b *Backend) SurfaceMarkDirtyRectangle(p backend.Ptr, x, y, width, height int) {
	C.cairo_surface_mark_dirty_rectangle(b.s(p), C.int(x), C.int(y), C.int(width), C.int(height))
}

// SurfaceCreateSimilar implements backend.Backend.
func (b *Backend) SurfaceCreateSimilar(p backend.Ptr, content backend.Content, width, height int) backend.Ptr {
	return ptr(C.cairo_surface_create_similar(b.s(p), C.cairo_content_t(content), C.int(width), C.int(height)))
}

// SurfaceOnDestroy implements backend.Backend.
func (b *Backend) SurfaceOnDestroy(p backend.Ptr, fn func()) backend.Status {
	var token C.uintptr_t
	if st := status(C.cgo_on_destroy(b.s(p), &token)); st != backend.StatusSuccess {
		return st
	}
	registerNotifier(uintptr(token), fn)
	return backend.StatusSuccess
}

// SurfaceWriteToPNGStream implements backend.Backend.
func (b *Backend) SurfaceWriteToPNGStream(p backend.Ptr, write backend.WriteFunc, closure uintptr) backend.Status {
	if write == nil {
		return backend.StatusNullPointer
	}
	key := registerWriter(write, closure)
	defer unregisterWriter(key)
	return status(C.cgo_write_png(b.s(p), C.uintptr_t(key)))
}

// FormatStrideForWidth implements backend.Backend.
func (b *Backend) FormatStrideForWidth(f backend.Format, width int) int {
	return int(C.cairo_format_stride_for_width(C.cairo_format_t(f), C.int(width)))
}

// ImageSurfaceCreate implements backend.Backend.
func (b *Backend) ImageSurfaceCreate(f backend.Format, width, height int) backend.Ptr {
	return ptr(C.cairo_image_surface_create(C.cairo_format_t(f), C.int(width), C.int(height)))
}

// ImageSurfaceCreateForData implements backend.Backend. data is pinned
// until cairo drops the surface.
func (b *Backend) ImageSurfaceCreateForData(data []byte, f backend.Format, width, height, stride int) backend.Ptr {
	if len(data) < stride*height || len(data) == 0 {
		return ptr(C.cairo_image_surface_create_for_data(nil, C.cairo_format_t(f), C.int(width), C.int(height), C.int(stride)))
	}

	pinner := new(runtime.Pinner)
	pinner.Pin(&data[0])
	cs := C.cairo_image_surface_create_for_data((*C.uchar)(unsafe.Pointer(&data[0])),
		C.cairo_format_t(f), C.int(width), C.int(height), C.int(stride))
	p := ptr(cs)

	if C.cairo_surface_status(cs) != C.CAIRO_STATUS_SUCCESS {
		pinner.Unpin()
		return p
	}
	if st := b.SurfaceOnDestroy(p, pinner.Unpin); st != backend.StatusSuccess {
		// Without a notification the buffer could be unpinned while cairo
		// still uses it; keep it pinned for the life of the process.
		backend.Logger().Warn("libcairo: cannot track data lifetime", "status", st.String())
	}
	return p
}

// ImageSurfaceData implements backend.Backend.
func (b *Backend) ImageSurfaceData(p backend.Ptr) []byte {
	cs := b.s(p)
	data := C.cairo_image_surface_get_data(cs)
	if data == nil {
		return nil
	}
	n := int(C.cairo_image_surface_get_stride(cs)) * int(C.cairo_image_surface_get_height(cs))
	return unsafe.Slice((*byte)(unsafe.Pointer(data)), n)
}

// ImageSurfaceFormat implements backend.Backend.
func (b *Backend) ImageSurfaceFormat(p backend.Ptr) backend.Format {
	return backend.Format(C.cairo_image_surface_get_format(b.s(p)))
}

// ImageSurfaceWidth implements backend.Backend.
func (b *Backend) ImageSurfaceWidth(p backend.Ptr) int {
	return int(C.cairo_image_surface_get_width(b.s(p)))
}

// ImageSurfaceHeight implements backend.Backend.
func (b *Backend) ImageSurfaceHeight(p backend.Ptr) int {
	return int(C.cairo_image_surface_get_height(b.s(p)))
}

// ImageSurfaceStride implements backend.Backend.
func (b *Backend) ImageSurfaceStride(p backend.Ptr) int {
	return int(C.cairo_image_surface_get_stride(b.s(p)))
}

// StreamSurfaceCreate implements backend.Backend.
func (b *Backend) StreamSurfaceCreate(kind backend.StreamKind, write backend.WriteFunc, closure uintptr, width, height float64) backend.Ptr {
	if write == nil {
		return b.errorSurface()
	}
	key := registerWriter(write, closure)
	cs := C.cgo_stream_surface(C.int(kind), C.uintptr_t(key), C.double(width), C.double(height))
	p := ptr(cs)
	if C.cairo_surface_status(cs) != C.CAIRO_STATUS_SUCCESS {
		unregisterWriter(key)
		return p
	}

	release := func() { unregisterWriter(key) }
	if kind == backend.StreamScript {
		// Script output comes from the device, which the surface releases
		// only after its user data. Finish the device while the writer is
		// still registered.
		dev := C.cairo_surface_get_device(cs)
		release = func() {
			C.cairo_device_flush(dev)
			C.cairo_device_finish(dev)
			unregisterWriter(key)
		}
	}
	if st := b.SurfaceOnDestroy(p, release); st != backend.StatusSuccess {
		backend.Logger().Warn("libcairo: writer will not be released", "status", st.String())
	}
	return p
}

// errorSurface returns the static nil surface.
func (b *Backend) errorSurface() backend.Ptr {
	return ptr(b.nilSurface)
}

// PathRecords implements backend.Backend.
func (b *Backend) PathRecords(p backend.Ptr) ([]pathdata.Record, backend.Status) {
	if p == 0 {
		return nil, backend.StatusNullPointer
	}
	path := (*C.cairo_path_t)(unsafe.Pointer(uintptr(p)))
	st := status(path.status)
	if path.data == nil || path.num_data <= 0 {
		return nil, st
	}
	return unsafe.Slice((*pathdata.Record)(unsafe.Pointer(path.data)), int(path.num_data)), st
}

// PathDestroy implements backend.Backend.
func (b *Backend) PathDestroy(p backend.Ptr) {
	if p == 0 {
		return
	}
	C.cairo_path_destroy((*C.cairo_path_t)(unsafe.Pointer(uintptr(p))))
}

var _ backend.Backend = (*Backend)(nil)
