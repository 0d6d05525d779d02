package software

import (
	"github.com/gogpu/cairo/backend"
)

type surface struct {
	object

	typ      backend.SurfaceType
	content  backend.Content
	finished bool

	// Image surfaces.
	px    pixels
	owned bool

	// Stream surfaces.
	stream *vectorStream

	onDestroy  []func()
	dirtyCalls int
}

func (e *Engine) surface(p backend.Ptr) (*surface, backend.Status) {
	obj, st := e.lookup(p, kindSurface)
	if obj == nil {
		return nil, st
	}
	return obj.(*surface), backend.StatusSuccess
}

func errorSurface(st backend.Status) backend.Ptr {
	return errorPtr(kindSurface, st)
}

// SurfaceReference implements backend.Backend.
func (e *Engine) SurfaceReference(s backend.Ptr) backend.Ptr {
	return e.reference(s, kindSurface)
}

// SurfaceReferenceCount implements backend.Backend.
func (e *Engine) SurfaceReferenceCount(s backend.Ptr) uint32 {
	return e.referenceCount(s, kindSurface)
}

// SurfaceStatus implements backend.Backend.
func (e *Engine) SurfaceStatus(s backend.Ptr) backend.Status {
	return e.status(s, kindSurface)
}

// SurfaceDestroy implements backend.Backend. Dropping the last reference
// finishes the surface, then runs destroy notifications.
func (e *Engine) SurfaceDestroy(s backend.Ptr) {
	e.mu.Lock()
	obj, last := e.unref(s, kindSurface)
	if !last {
		e.mu.Unlock()
		return
	}
	surf := obj.(*surface)
	finished := surf.finished
	e.mu.Unlock()

	if !finished {
		e.SurfaceFinish(s)
	}

	e.mu.Lock()
	fns := surf.onDestroy
	surf.onDestroy = nil
	e.forget(s)
	e.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// SurfaceType implements backend.Backend.
func (e *Engine) SurfaceType(s backend.Ptr) backend.SurfaceType {
	e.mu.Lock()
	defer e.mu.Unlock()
	if surf, _ := e.surface(s); surf != nil {
		return surf.typ
	}
	return backend.SurfaceTypeImage
}

// SurfaceContent implements backend.Backend.
func (e *Engine) SurfaceContent(s backend.Ptr) backend.Content {
	e.mu.Lock()
	defer e.mu.Unlock()
	if surf, _ := e.surface(s); surf != nil {
		return surf.content
	}
	return backend.ContentColor
}

// SurfaceFlush implements backend.Backend.
func (e *Engine) SurfaceFlush(s backend.Ptr) {
	e.mu.Lock()
	surf, _ := e.surface(s)
	if surf == nil || surf.status != backend.StatusSuccess || surf.finished || surf.stream == nil {
		e.mu.Unlock()
		return
	}
	chunks := surf.stream.flush()
	e.mu.Unlock()

	e.deliver(s, surf, chunks)
}

// SurfaceFinish implements backend.Backend. Stream surfaces emit their
// remaining output; image surfaces release storage they own.
func (e *Engine) SurfaceFinish(s backend.Ptr) {
	e.mu.Lock()
	surf, _ := e.surface(s)
	if surf == nil || surf.finished {
		e.mu.Unlock()
		return
	}
	surf.finished = true

	var chunks [][]byte
	if surf.stream != nil && surf.status == backend.StatusSuccess {
		chunks = surf.stream.finish()
	}
	if surf.owned {
		surf.px.data = nil
	}
	e.mu.Unlock()

	e.deliver(s, surf, chunks)
}

// deliver passes chunks to the stream's write function, outside the lock.
// The first failure makes the surface status sticky and drops the rest.
func (e *Engine) deliver(s backend.Ptr, surf *surface, chunks [][]byte) {
	if len(chunks) == 0 {
		return
	}
	write, closure := surf.stream.write, surf.stream.closure
	for _, chunk := range chunks {
		if st := write(closure, chunk); st != backend.StatusSuccess {
			backend.Logger().Warn("software: stream write failed", "ptr", uint64(s), "status", st.String())
			e.mu.Lock()
			surf.setError(backend.StatusWriteError)
			e.mu.Unlock()
			return
		}
	}
}

// SurfaceMarkDirty implements backend.Backend.
func (e *Engine) SurfaceMarkDirty(s backend.Ptr) {
	e.SurfaceMarkDirtyRectangle(s, 0, 0, -1, -1)
}

// SurfaceMarkDirtyRectangle implements backend.Backend.
func (e *Engine) SurfaceMarkDirtyRectangle(s backend.Ptr, x, y, width, height int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	surf, _ := e.surface(s)
	if surf == nil {
		return
	}
	surf.dirtyCalls++
	if surf.status != backend.StatusSuccess {
		return
	}
	if surf.finished {
		surf.setError(backend.StatusSurfaceFinished)
	}
}

// MarkDirtyCalls returns how many times s was marked dirty.
func (e *Engine) MarkDirtyCalls(s backend.Ptr) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if surf, _ := e.surface(s); surf != nil {
		return surf.dirtyCalls
	}
	return 0
}

// SurfaceCreateSimilar implements backend.Backend. Similar surfaces are
// always image surfaces of the format matching content.
func (e *Engine) SurfaceCreateSimilar(s backend.Ptr, content backend.Content, width, height int) backend.Ptr {
	e.mu.Lock()
	surf, st := e.surface(s)
	switch {
	case surf == nil:
		e.mu.Unlock()
		return errorSurface(st)
	case surf.status != backend.StatusSuccess:
		st = surf.status
		e.mu.Unlock()
		return errorSurface(st)
	case surf.finished:
		e.mu.Unlock()
		return errorSurface(backend.StatusSurfaceFinished)
	}
	e.mu.Unlock()

	switch content {
	case backend.ContentColor, backend.ContentAlpha, backend.ContentColorAlpha:
	default:
		return errorSurface(backend.StatusInvalidContent)
	}
	return e.ImageSurfaceCreate(backend.FormatForContent(content), width, height)
}

// SurfaceOnDestroy implements backend.Backend.
func (e *Engine) SurfaceOnDestroy(s backend.Ptr, fn func()) backend.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	surf, st := e.surface(s)
	if surf == nil {
		return st
	}
	surf.onDestroy = append(surf.onDestroy, fn)
	return backend.StatusSuccess
}

// FormatStrideForWidth implements backend.Backend.
func (e *Engine) FormatStrideForWidth(f backend.Format, width int) int {
	return backend.StrideForWidth(f, width)
}

func validSize(width, height int) bool {
	return width >= 0 && height >= 0 && width <= backend.MaxImageSize && height <= backend.MaxImageSize
}

// ImageSurfaceCreate implements backend.Backend.
func (e *Engine) ImageSurfaceCreate(f backend.Format, width, height int) backend.Ptr {
	if f.BitsPerPixel() == 0 {
		return errorSurface(backend.StatusInvalidFormat)
	}
	if !validSize(width, height) {
		return errorSurface(backend.StatusInvalidSize)
	}
	stride := backend.StrideForWidth(f, width)
	return e.addImage(make([]byte, stride*height), f, width, height, stride, true)
}

// ImageSurfaceCreateForData implements backend.Backend.
func (e *Engine) ImageSurfaceCreateForData(data []byte, f backend.Format, width, height, stride int) backend.Ptr {
	if f.BitsPerPixel() == 0 {
		return errorSurface(backend.StatusInvalidFormat)
	}
	if stride%backend.StrideAlignment != 0 {
		return errorSurface(backend.StatusInvalidStride)
	}
	if !validSize(width, height) {
		return errorSurface(backend.StatusInvalidSize)
	}
	if stride < backend.StrideForWidth(f, width) {
		return errorSurface(backend.StatusInvalidStride)
	}
	if len(data) < stride*height {
		return errorSurface(backend.StatusInvalidSize)
	}
	return e.addImage(data[:stride*height:stride*height], f, width, height, stride, false)
}

func (e *Engine) addImage(data []byte, f backend.Format, width, height, stride int, owned bool) backend.Ptr {
	surf := &surface{
		object:  object{kind: kindSurface},
		typ:     backend.SurfaceTypeImage,
		content: backend.ContentForFormat(f),
		px:      pixels{format: f, width: width, height: height, stride: stride, data: data},
		owned:   owned,
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.add(surf)
}

func (e *Engine) image(s backend.Ptr) *surface {
	surf, _ := e.surface(s)
	if surf == nil || surf.typ != backend.SurfaceTypeImage {
		return nil
	}
	return surf
}

// ImageSurfaceData implements backend.Backend.
func (e *Engine) ImageSurfaceData(s backend.Ptr) []byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	if surf := e.image(s); surf != nil {
		return surf.px.data
	}
	return nil
}

// ImageSurfaceFormat implements backend.Backend.
func (e *Engine) ImageSurfaceFormat(s backend.Ptr) backend.Format {
	e.mu.Lock()
	defer e.mu.Unlock()
	if surf := e.image(s); surf != nil {
		return surf.px.format
	}
	return backend.FormatInvalid
}

// ImageSurfaceWidth implements backend.Backend.
func (e *Engine) ImageSurfaceWidth(s backend.Ptr) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if surf := e.image(s); surf != nil {
		return surf.px.width
	}
	return 0
}

// ImageSurfaceHeight implements backend.Backend.
func (e *Engine) ImageSurfaceHeight(s backend.Ptr) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if surf := e.image(s); surf != nil {
		return surf.px.height
	}
	return 0
}

// ImageSurfaceStride implements backend.Backend.
func (e *Engine) ImageSurfaceStride(s backend.Ptr) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if surf := e.image(s); surf != nil {
		return surf.px.stride
	}
	return 0
}
