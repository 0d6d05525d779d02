package cairo

import (
	"io"
	"sync/atomic"

	"github.com/gogpu/cairo/backend"
	"github.com/gogpu/cairo/internal/handle"
	"github.com/gogpu/cairo/internal/stream"
)

// Surface is an owned reference to an engine surface of any type.
//
// Every Surface holds exactly one engine reference. Clone adds one, Release
// drops it; the engine destroys the surface when the last one goes. A
// Surface that is never released is released by the garbage collector and
// reported through the logger.
type Surface struct {
	ref *handle.Ref[handle.Surface]

	// borrowed is set while an ImageData view over this reference is open.
	// Every ImageSurface wrapping the same Surface shares it.
	borrowed atomic.Bool
}

// adoptSurface wraps a constructor result, converting an error object into
// a *StatusError.
func adoptSurface(be backend.Backend, p backend.Ptr, op string) (*Surface, error) {
	ref := handle.Adopt[handle.Surface](be, p)
	if st := ref.Status(); st != backend.StatusSuccess {
		ref.Release()
		return nil, &StatusError{Op: op, Status: st}
	}
	return &Surface{ref: ref}, nil
}

func shareSurface(be backend.Backend, p backend.Ptr) *Surface {
	return &Surface{ref: handle.Share[handle.Surface](be, p)}
}

func (s *Surface) be() backend.Backend { return s.ref.Backend() }
func (s *Surface) ptr() backend.Ptr    { return s.ref.Ptr() }

// Backend returns the engine that owns s.
func (s *Surface) Backend() backend.Backend {
	return s.ref.Backend()
}

// Clone returns a new owner of the same surface.
func (s *Surface) Clone() *Surface {
	return &Surface{ref: s.ref.Clone()}
}

// Release drops the reference held by s. It is safe to call more than once.
func (s *Surface) Release() {
	s.ref.Release()
}

// Status returns the engine status of the surface.
func (s *Surface) Status() Status {
	return s.ref.Status()
}

// Err returns the surface status as an error, nil if it is StatusSuccess.
func (s *Surface) Err() error {
	return statusErr("surface", s.Status())
}

// ReferenceCount returns the engine reference count.
func (s *Surface) ReferenceCount() uint32 {
	return s.ref.ReferenceCount()
}

// Type returns the engine surface type.
func (s *Surface) Type() SurfaceType {
	return s.be().SurfaceType(s.ptr())
}

// Content returns what the surface stores.
func (s *Surface) Content() Content {
	return s.be().SurfaceContent(s.ptr())
}

// Flush completes pending drawing so the surface storage can be read.
func (s *Surface) Flush() {
	s.be().SurfaceFlush(s.ptr())
}

// Finish completes all output and drops external resources. Drawing on a
// finished surface puts it in StatusSurfaceFinished.
func (s *Surface) Finish() {
	s.be().SurfaceFinish(s.ptr())
}

// MarkDirty tells the engine the storage was changed outside of it.
func (s *Surface) MarkDirty() {
	s.be().SurfaceMarkDirty(s.ptr())
}

// MarkDirtyRectangle is MarkDirty restricted to a rectangle.
func (s *Surface) MarkDirtyRectangle(x, y, width, height int) {
	s.be().SurfaceMarkDirtyRectangle(s.ptr(), x, y, width, height)
}

// CreateSimilar creates a surface suitable for drawing onto s.
func (s *Surface) CreateSimilar(content Content, width, height int) (*Surface, error) {
	return adoptSurface(s.be(), s.be().SurfaceCreateSimilar(s.ptr(), content, width, height), "create similar")
}

// WriteToPNG encodes the surface as PNG into w. An error returned by w takes
// precedence over the engine status it causes.
func (s *Surface) WriteToPNG(w io.Writer) error {
	env := stream.NewEnv(w)
	key := stream.Register(env)
	defer stream.Unregister(key)

	st := s.be().SurfaceWriteToPNGStream(s.ptr(), stream.Trampoline, key)
	if err := env.Err(); err != nil {
		return err
	}
	return statusErr("write png", st)
}

func (s *Surface) String() string {
	return s.ref.String()
}

func sameBackend(a, b backend.Backend) bool {
	return a == b
}
