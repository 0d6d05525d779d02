package software

import (
	"image"
	"image/color"
	"image/png"

	"github.com/gogpu/cairo/backend"
)

// streamWriter adapts a backend.WriteFunc to io.Writer.
type streamWriter struct {
	write   backend.WriteFunc
	closure uintptr
	status  backend.Status
}

func (w *streamWriter) Write(p []byte) (int, error) {
	if w.status != backend.StatusSuccess {
		return 0, w.status
	}
	if st := w.write(w.closure, p); st != backend.StatusSuccess {
		w.status = backend.StatusWriteError
		return 0, w.status
	}
	return len(p), nil
}

// SurfaceWriteToPNGStream implements backend.Backend.
func (e *Engine) SurfaceWriteToPNGStream(s backend.Ptr, write backend.WriteFunc, closure uintptr) backend.Status {
	if write == nil {
		return backend.StatusNullPointer
	}

	e.mu.Lock()
	surf, st := e.surface(s)
	switch {
	case surf == nil:
		e.mu.Unlock()
		return st
	case surf.status != backend.StatusSuccess:
		st = surf.status
		e.mu.Unlock()
		return st
	case surf.finished:
		e.mu.Unlock()
		return backend.StatusSurfaceFinished
	case surf.typ != backend.SurfaceTypeImage:
		e.mu.Unlock()
		return backend.StatusSurfaceTypeMismatch
	}
	img := toNRGBA(&surf.px)
	e.mu.Unlock()

	w := &streamWriter{write: write, closure: closure}
	if err := png.Encode(w, img); err != nil {
		if w.status != backend.StatusSuccess {
			return w.status
		}
		return backend.StatusPNGError
	}
	return backend.StatusSuccess
}

// toNRGBA converts premultiplied engine pixels to a straight-alpha image.
func toNRGBA(px *pixels) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, px.width, px.height))
	for y := range px.height {
		for x := range px.width {
			img.SetNRGBA(x, y, unpremultiply(px.at(x, y)))
		}
	}
	return img
}

func unpremultiply(c premul) color.NRGBA {
	if c.a <= 0 {
		return color.NRGBA{}
	}
	return color.NRGBA{
		R: uint8(to8(c.r / c.a)),
		G: uint8(to8(c.g / c.a)),
		B: uint8(to8(c.b / c.a)),
		A: uint8(to8(c.a)),
	}
}
