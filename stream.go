package cairo

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gogpu/cairo/backend"
	"github.com/gogpu/cairo/internal/stream"
)

// StreamSurface is a vector surface writing its output to a W.
//
// The engine pushes output through a callback during drawing, Flush and
// Finish. Errors returned by the writer cannot travel through the engine;
// the first one is kept and reported by IOError, while the surface moves
// to StatusWriteError and produces no further output.
type StreamSurface[W io.Writer] struct {
	*Surface

	env  *stream.Env
	sink W
}

// NewStreamSurface creates a surface of the given kind, width x height
// points in size, writing to w.
func NewStreamSurface[W io.Writer](kind StreamKind, w W, width, height float64, opts ...Option) (*StreamSurface[W], error) {
	be, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	env := stream.NewEnv(w)
	key := stream.Register(env)
	s, err := adoptSurface(be, be.StreamSurfaceCreate(kind, stream.Trampoline, key, width, height),
		"create "+kind.String()+" surface")
	if err != nil {
		stream.Unregister(key)
		return nil, err
	}

	// The environment must outlive every callback, so it is dropped only
	// when the engine destroys the surface.
	if st := be.SurfaceOnDestroy(s.ptr(), func() {
		stream.Unregister(key)
		Logger().Debug("cairo: stream environment released", "kind", kind.String(), "key", key)
	}); st != backend.StatusSuccess {
		Logger().Warn("cairo: stream environment will not be released", "kind", kind.String(), "status", st.String())
	}

	Logger().Debug("cairo: stream surface created", "kind", kind.String(), "key", key,
		"width", width, "height", height)
	return &StreamSurface[W]{Surface: s, env: env, sink: w}, nil
}

// NewPDFSurface creates a PDF surface writing to w.
func NewPDFSurface[W io.Writer](w W, width, height float64, opts ...Option) (*StreamSurface[W], error) {
	return NewStreamSurface(StreamPDF, w, width, height, opts...)
}

// NewPSSurface creates a PostScript surface writing to w.
func NewPSSurface[W io.Writer](w W, width, height float64, opts ...Option) (*StreamSurface[W], error) {
	return NewStreamSurface(StreamPS, w, width, height, opts...)
}

// NewSVGSurface creates an SVG surface writing to w.
func NewSVGSurface[W io.Writer](w W, width, height float64, opts ...Option) (*StreamSurface[W], error) {
	return NewStreamSurface(StreamSVG, w, width, height, opts...)
}

// NewScriptSurface creates a CairoScript recording surface writing to w.
// Scripts are written as drawing happens.
func NewScriptSurface[W io.Writer](w W, width, height float64, opts ...Option) (*StreamSurface[W], error) {
	return NewStreamSurface(StreamScript, w, width, height, opts...)
}

// NewBufferedPDFSurface would create a PDF surface collecting its output in
// memory. It is not supported; use NewPDFSurface with a *bytes.Buffer.
func NewBufferedPDFSurface(width, height float64, opts ...Option) (*StreamSurface[*bytes.Buffer], error) {
	return nil, fmt.Errorf("%w: buffered PDF surface", ErrNotSupported)
}

// Writer returns the sink.
func (s *StreamSurface[W]) Writer() W {
	return s.sink
}

// IOError returns the first error the sink reported, if any.
func (s *StreamSurface[W]) IOError() error {
	return s.env.Err()
}

// TakeIOError returns the first error the sink reported and clears it.
func (s *StreamSurface[W]) TakeIOError() error {
	return s.env.TakeErr()
}

// Finish finishes the surface, emitting all remaining output, releases the
// reference held by s and returns the sink. IOError and TakeIOError stay
// usable afterwards.
func (s *StreamSurface[W]) Finish() W {
	s.Surface.Finish()
	s.Release()
	return s.sink
}

// WithStreamSurface creates a stream surface writing to w, passes it to
// fn and finishes it before returning. The bridge to w ends with the call:
// if fn keeps a clone of the surface, later output is dropped rather than
// written to w.
//
// The result is the first of: fn's error, the sink's error, the surface
// status.
func WithStreamSurface(kind StreamKind, w io.Writer, width, height float64, fn func(s *Surface) error, opts ...Option) (err error) {
	s, err := NewStreamSurface(kind, w, width, height, opts...)
	if err != nil {
		return err
	}
	defer func() {
		s.Surface.Finish()
		ioErr := s.TakeIOError()
		st := s.Status()
		s.env.Detach()
		s.Release()
		err = firstErr(err, ioErr, statusErr("finish "+kind.String()+" surface", st))
	}()
	return fn(s.Surface)
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
