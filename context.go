package cairo

import (
	"github.com/gogpu/cairo/backend"
	"github.com/gogpu/cairo/internal/handle"
)

// Context issues drawing operations against a target surface. It carries
// just enough of the drawing API to bind patterns, build paths and produce
// output; stroking, text and clipping are not exposed.
type Context struct {
	ref *handle.Ref[handle.Context]
}

// NewContext creates a context drawing on target. The context keeps its own
// reference to target.
func NewContext(target *Surface) (*Context, error) {
	be := target.be()
	ref := handle.Adopt[handle.Context](be, be.Create(target.ptr()))
	if st := ref.Status(); st != backend.StatusSuccess {
		ref.Release()
		return nil, &StatusError{Op: "create context", Status: st}
	}
	return &Context{ref: ref}, nil
}

func (c *Context) be() backend.Backend { return c.ref.Backend() }
func (c *Context) ptr() backend.Ptr    { return c.ref.Ptr() }

// Release drops the context. Safe to call more than once.
func (c *Context) Release() {
	c.ref.Release()
}

// Status returns the sticky context status.
func (c *Context) Status() Status {
	return c.ref.Status()
}

// Err returns the context status as an error.
func (c *Context) Err() error {
	return statusErr("context", c.Status())
}

// Target returns a new owner of the target surface.
func (c *Context) Target() *Surface {
	return shareSurface(c.be(), c.be().ContextTarget(c.ptr()))
}

// SetSource makes p the paint for subsequent drawing. The context takes its
// own reference; p may be released afterwards.
func (c *Context) SetSource(p Pattern) error {
	b := p.base()
	if !sameBackend(b.be(), c.be()) {
		return ErrBackendMismatch
	}
	c.be().SetSource(c.ptr(), b.ptr())
	return c.Err()
}

// Source returns the current source pattern, bound to the context. The
// returned pattern is valid until the source is replaced or the context is
// released; Clone it with ClonePattern to keep it longer.
func (c *Context) Source() (Pattern, error) {
	return wrapPattern(handle.Bind[handle.Pattern](c.be(), c.be().Source(c.ptr())))
}

func (c *Context) SetSourceRGB(r, g, b float64) {
	c.be().SetSourceRGBA(c.ptr(), r, g, b, 1)
}

func (c *Context) SetSourceRGBA(r, g, b, a float64) {
	c.be().SetSourceRGBA(c.ptr(), r, g, b, a)
}

// SetSourceSurface paints s with its origin at (x, y).
func (c *Context) SetSourceSurface(s *Surface, x, y float64) error {
	if !sameBackend(s.be(), c.be()) {
		return ErrBackendMismatch
	}
	c.be().SetSourceSurface(c.ptr(), s.ptr(), x, y)
	return c.Err()
}

// NewPath clears the current path.
func (c *Context) NewPath() {
	c.be().NewPath(c.ptr())
}

func (c *Context) MoveTo(x, y float64) {
	c.be().MoveTo(c.ptr(), x, y)
}

// LineTo adds a line. Without a current point it acts as MoveTo.
func (c *Context) LineTo(x, y float64) {
	c.be().LineTo(c.ptr(), x, y)
}

func (c *Context) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	c.be().CurveTo(c.ptr(), x1, y1, x2, y2, x3, y3)
}

func (c *Context) ClosePath() {
	c.be().ClosePath(c.ptr())
}

// Rectangle adds a closed rectangle sub-path.
func (c *Context) Rectangle(x, y, width, height float64) {
	c.be().Rectangle(c.ptr(), x, y, width, height)
}

// CopyPath returns a copy of the current path.
func (c *Context) CopyPath() (*Path, error) {
	return adoptPath(c.be(), c.be().CopyPath(c.ptr()), "copy path")
}

// AppendPath adds the segments of p to the current path.
func (c *Context) AppendPath(p *Path) error {
	if p.be != c.be() {
		return ErrBackendMismatch
	}
	c.be().AppendPath(c.ptr(), backend.Ptr(p.ptr.Load()))
	return c.Err()
}

// Paint paints the source everywhere within the clip.
func (c *Context) Paint() error {
	c.be().Paint(c.ptr())
	return c.Err()
}

// Fill fills the current path with the source and clears the path.
func (c *Context) Fill() error {
	c.be().Fill(c.ptr())
	return c.Err()
}

// ShowPage emits the current page on multi-page targets.
func (c *Context) ShowPage() error {
	c.be().ShowPage(c.ptr())
	return c.Err()
}
