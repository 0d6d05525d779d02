package software

import (
	"github.com/gogpu/cairo/backend"
	"github.com/gogpu/cairo/pathdata"
)

// context is a drawing context bound to one target surface. It holds a
// reference to its target and to its source pattern.
type context struct {
	object
	target backend.Ptr
	source backend.Ptr
	path   pathBuilder
}

func errorContext(st backend.Status) backend.Ptr {
	return errorPtr(kindContext, st)
}

func (e *Engine) context(cr backend.Ptr) (*context, backend.Status) {
	obj, st := e.lookup(cr, kindContext)
	if obj == nil {
		return nil, st
	}
	return obj.(*context), backend.StatusSuccess
}

// active returns cr if it is live and not in error. Caller holds e.mu.
func (e *Engine) active(cr backend.Ptr) *context {
	c, _ := e.context(cr)
	if c == nil || c.status != backend.StatusSuccess {
		return nil
	}
	return c
}

// Create implements backend.Backend. The initial source is opaque black.
func (e *Engine) Create(target backend.Ptr) backend.Ptr {
	e.mu.Lock()
	surf, st := e.surface(target)
	switch {
	case surf == nil:
		e.mu.Unlock()
		return errorContext(st)
	case surf.status != backend.StatusSuccess:
		st = surf.status
		e.mu.Unlock()
		return errorContext(st)
	case surf.finished:
		e.mu.Unlock()
		return errorContext(backend.StatusSurfaceFinished)
	}
	surf.refs++
	e.mu.Unlock()

	src := e.PatternCreateRGBA(0, 0, 0, 1)

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.add(&context{
		object: object{kind: kindContext},
		target: target,
		source: src,
	})
}

// ContextReference implements backend.Backend.
func (e *Engine) ContextReference(cr backend.Ptr) backend.Ptr {
	return e.reference(cr, kindContext)
}

// ContextReferenceCount implements backend.Backend.
func (e *Engine) ContextReferenceCount(cr backend.Ptr) uint32 {
	return e.referenceCount(cr, kindContext)
}

// ContextStatus implements backend.Backend.
func (e *Engine) ContextStatus(cr backend.Ptr) backend.Status {
	return e.status(cr, kindContext)
}

// ContextDestroy implements backend.Backend.
func (e *Engine) ContextDestroy(cr backend.Ptr) {
	e.mu.Lock()
	obj, last := e.unref(cr, kindContext)
	if !last {
		e.mu.Unlock()
		return
	}
	c := obj.(*context)
	e.forget(cr)
	e.mu.Unlock()

	e.PatternDestroy(c.source)
	e.SurfaceDestroy(c.target)
}

// ContextTarget implements backend.Backend.
func (e *Engine) ContextTarget(cr backend.Ptr) backend.Ptr {
	e.mu.Lock()
	defer e.mu.Unlock()
	c, st := e.context(cr)
	if c == nil {
		return errorSurface(st)
	}
	return c.target
}

// Source implements backend.Backend.
func (e *Engine) Source(cr backend.Ptr) backend.Ptr {
	e.mu.Lock()
	defer e.mu.Unlock()
	c, st := e.context(cr)
	if c == nil {
		return errorPattern(st)
	}
	return c.source
}

// SetSource implements backend.Backend.
func (e *Engine) SetSource(cr, p backend.Ptr) {
	e.mu.Lock()
	c := e.active(cr)
	if c == nil {
		e.mu.Unlock()
		return
	}
	pat, st := e.pattern(p)
	if pat == nil {
		c.setError(st)
		e.mu.Unlock()
		return
	}
	if pat.status != backend.StatusSuccess {
		c.setError(pat.status)
		e.mu.Unlock()
		return
	}
	pat.refs++
	old := c.source
	c.source = p
	e.mu.Unlock()

	e.PatternDestroy(old)
}

// SetSourceRGBA implements backend.Backend.
func (e *Engine) SetSourceRGBA(cr backend.Ptr, r, g, b, a float64) {
	p := e.PatternCreateRGBA(r, g, b, a)
	e.SetSource(cr, p)
	e.PatternDestroy(p)
}

// SetSourceSurface implements backend.Backend. The surface origin is
// placed at (x, y) in user space.
func (e *Engine) SetSourceSurface(cr, s backend.Ptr, x, y float64) {
	p := e.PatternCreateForSurface(s)
	e.PatternSetMatrix(p, backend.Identity().Translate(-x, -y))
	e.SetSource(cr, p)
	e.PatternDestroy(p)
}

// NewPath implements backend.Backend.
func (e *Engine) NewPath(cr backend.Ptr) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if c := e.active(cr); c != nil {
		c.path.reset()
	}
}

// MoveTo implements backend.Backend.
func (e *Engine) MoveTo(cr backend.Ptr, x, y float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if c := e.active(cr); c != nil {
		c.path.moveTo(x, y)
	}
}

// LineTo implements backend.Backend.
func (e *Engine) LineTo(cr backend.Ptr, x, y float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if c := e.active(cr); c != nil {
		c.path.lineTo(x, y)
	}
}

// CurveTo implements backend.Backend.
func (e *Engine) CurveTo(cr backend.Ptr, x1, y1, x2, y2, x3, y3 float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if c := e.active(cr); c != nil {
		c.path.curveTo(x1, y1, x2, y2, x3, y3)
	}
}

// ClosePath implements backend.Backend.
func (e *Engine) ClosePath(cr backend.Ptr) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if c := e.active(cr); c != nil {
		c.path.closePath()
	}
}

// Rectangle implements backend.Backend.
func (e *Engine) Rectangle(cr backend.Ptr, x, y, width, height float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if c := e.active(cr); c != nil {
		c.path.rectangle(x, y, width, height)
	}
}

// CopyPath implements backend.Backend. A context in error yields a path
// object carrying that status.
func (e *Engine) CopyPath(cr backend.Ptr) backend.Ptr {
	e.mu.Lock()
	defer e.mu.Unlock()
	c, st := e.context(cr)
	if c == nil {
		return errorPath(st)
	}
	if c.status != backend.StatusSuccess {
		return errorPath(c.status)
	}
	return e.add(&path{
		object:  object{kind: kindPath},
		records: c.path.records(),
	})
}

// AppendPath implements backend.Backend.
func (e *Engine) AppendPath(cr, p backend.Ptr) {
	e.mu.Lock()
	defer e.mu.Unlock()
	c := e.active(cr)
	if c == nil {
		return
	}
	obj, st := e.lookup(p, kindPath)
	if obj == nil {
		c.setError(st)
		return
	}
	pa := obj.(*path)
	if pa.status != backend.StatusSuccess {
		c.setError(pa.status)
		return
	}
	if !c.path.appendRecords(pa.records) {
		c.setError(backend.StatusInvalidPathData)
	}
}

// Paint implements backend.Backend.
func (e *Engine) Paint(cr backend.Ptr) {
	e.draw(cr, true)
}

// Fill implements backend.Backend. The path is cleared afterwards.
func (e *Engine) Fill(cr backend.Ptr) {
	e.draw(cr, false)
}

func (e *Engine) draw(cr backend.Ptr, paint bool) {
	e.mu.Lock()
	c := e.active(cr)
	if c == nil {
		e.mu.Unlock()
		return
	}
	var segs []pathdata.Segment
	if !paint {
		segs = pathdata.Collect(c.path.b.Records())
		c.path.reset()
	}

	surf, pat, ok := e.drawable(c)
	if !ok {
		e.mu.Unlock()
		return
	}

	if surf.stream == nil {
		e.rasterize(surf, pat, segs, paint)
		e.mu.Unlock()
		return
	}

	vs := surf.stream
	op := vectorOp{paint: paint, segs: segs}
	outline := segs
	if paint {
		outline = pageRect(vs.width, vs.height)
	}
	op.src = e.vectorSource(pat, outline)
	chunks := vs.record(op)
	e.mu.Unlock()

	e.deliver(c.target, surf, chunks)
	e.propagate(cr, c.target)
}

// ShowPage implements backend.Backend.
func (e *Engine) ShowPage(cr backend.Ptr) {
	e.mu.Lock()
	c := e.active(cr)
	if c == nil {
		e.mu.Unlock()
		return
	}
	surf, _, ok := e.drawable(c)
	if !ok || surf.stream == nil {
		e.mu.Unlock()
		return
	}
	chunks := surf.stream.showPage()
	e.mu.Unlock()

	e.deliver(c.target, surf, chunks)
	e.propagate(cr, c.target)
}

// drawable resolves the target and source of c, moving c into error when
// either cannot be drawn with. Caller holds e.mu.
func (e *Engine) drawable(c *context) (*surface, *pattern, bool) {
	surf, st := e.surface(c.target)
	if surf == nil {
		c.setError(st)
		return nil, nil, false
	}
	if surf.status != backend.StatusSuccess {
		c.setError(surf.status)
		return nil, nil, false
	}
	if surf.finished {
		c.setError(backend.StatusSurfaceFinished)
		return nil, nil, false
	}
	pat, st := e.pattern(c.source)
	if pat == nil {
		c.setError(st)
		return nil, nil, false
	}
	return surf, pat, true
}

// propagate copies a target failure raised while delivering output into
// the context status.
func (e *Engine) propagate(cr, target backend.Ptr) {
	e.mu.Lock()
	defer e.mu.Unlock()
	c, _ := e.context(cr)
	surf, _ := e.surface(target)
	if c != nil && surf != nil && surf.status != backend.StatusSuccess {
		c.setError(surf.status)
	}
}

// vectorSource snapshots pat for a vector operation covering outline.
// Caller holds e.mu.
func (e *Engine) vectorSource(pat *pattern, outline []pathdata.Segment) vectorSource {
	cx, cy := bboxCenter(outline)
	return vectorSource{
		typ:    pat.typ,
		color:  e.sampleColor(pat, cx, cy),
		x0:     pat.x0,
		y0:     pat.y0,
		r0:     pat.r0,
		x1:     pat.x1,
		y1:     pat.y1,
		r1:     pat.r1,
		stops:  append([]colorStop(nil), pat.stops...),
		extend: pat.extend,
		matrix: pat.matrix,
	}
}
