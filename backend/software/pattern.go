package software

import (
	"sort"

	"github.com/gogpu/cairo/backend"
)

type colorStop struct {
	offset     float64
	r, g, b, a float64
}

type pattern struct {
	object

	typ    backend.PatternType
	extend backend.Extend
	filter backend.Filter
	matrix backend.Matrix

	// Solid.
	r, g, b, a float64

	// Linear: (x0, y0) to (x1, y1). Radial: circles (x0, y0, r0) and
	// (x1, y1, r1).
	x0, y0, r0 float64
	x1, y1, r1 float64
	stops      []colorStop

	// Surface; holds one reference.
	surface backend.Ptr

	mesh *mesh
}

func (e *Engine) pattern(p backend.Ptr) (*pattern, backend.Status) {
	obj, st := e.lookup(p, kindPattern)
	if obj == nil {
		return nil, st
	}
	return obj.(*pattern), backend.StatusSuccess
}

func errorPattern(st backend.Status) backend.Ptr {
	return errorPtr(kindPattern, st)
}

func (e *Engine) addPattern(pat *pattern) backend.Ptr {
	pat.kind = kindPattern
	pat.matrix = backend.Identity()
	pat.filter = backend.FilterGood
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.add(pat)
}

// PatternReference implements backend.Backend.
func (e *Engine) PatternReference(p backend.Ptr) backend.Ptr {
	return e.reference(p, kindPattern)
}

// PatternReferenceCount implements backend.Backend.
func (e *Engine) PatternReferenceCount(p backend.Ptr) uint32 {
	return e.referenceCount(p, kindPattern)
}

// PatternStatus implements backend.Backend.
func (e *Engine) PatternStatus(p backend.Ptr) backend.Status {
	return e.status(p, kindPattern)
}

// PatternDestroy implements backend.Backend.
func (e *Engine) PatternDestroy(p backend.Ptr) {
	e.mu.Lock()
	obj, last := e.unref(p, kindPattern)
	if !last {
		e.mu.Unlock()
		return
	}
	src := obj.(*pattern).surface
	e.forget(p)
	e.mu.Unlock()

	if src != 0 {
		e.SurfaceDestroy(src)
	}
}

// PatternType implements backend.Backend. Error objects report solid.
func (e *Engine) PatternType(p backend.Ptr) backend.PatternType {
	e.mu.Lock()
	defer e.mu.Unlock()
	if pat, _ := e.pattern(p); pat != nil {
		return pat.typ
	}
	return backend.PatternTypeSolid
}

// mutable returns p for modification, or nil if p is an error object or
// already in error.
func (e *Engine) mutable(p backend.Ptr) *pattern {
	pat, _ := e.pattern(p)
	if pat == nil || pat.status != backend.StatusSuccess {
		return nil
	}
	return pat
}

// PatternSetExtend implements backend.Backend.
func (e *Engine) PatternSetExtend(p backend.Ptr, ext backend.Extend) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if pat := e.mutable(p); pat != nil {
		if ext < backend.ExtendNone || ext > backend.ExtendPad {
			pat.setError(backend.StatusInvalidStatus)
			return
		}
		pat.extend = ext
	}
}

// PatternExtend implements backend.Backend.
func (e *Engine) PatternExtend(p backend.Ptr) backend.Extend {
	e.mu.Lock()
	defer e.mu.Unlock()
	if pat, _ := e.pattern(p); pat != nil {
		return pat.extend
	}
	return backend.ExtendNone
}

// PatternSetFilter implements backend.Backend.
func (e *Engine) PatternSetFilter(p backend.Ptr, f backend.Filter) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if pat := e.mutable(p); pat != nil {
		pat.filter = f
	}
}

// PatternFilter implements backend.Backend.
func (e *Engine) PatternFilter(p backend.Ptr) backend.Filter {
	e.mu.Lock()
	defer e.mu.Unlock()
	if pat, _ := e.pattern(p); pat != nil {
		return pat.filter
	}
	return backend.FilterGood
}

// PatternSetMatrix implements backend.Backend. A non-invertible matrix
// puts the pattern in StatusInvalidMatrix.
func (e *Engine) PatternSetMatrix(p backend.Ptr, m backend.Matrix) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if pat := e.mutable(p); pat != nil {
		if !m.Invertible() {
			pat.setError(backend.StatusInvalidMatrix)
			return
		}
		pat.matrix = m
	}
}

// PatternMatrix implements backend.Backend.
func (e *Engine) PatternMatrix(p backend.Ptr) backend.Matrix {
	e.mu.Lock()
	defer e.mu.Unlock()
	if pat, _ := e.pattern(p); pat != nil {
		return pat.matrix
	}
	return backend.Identity()
}

// PatternCreateRGBA implements backend.Backend. Components are clamped to
// [0, 1].
func (e *Engine) PatternCreateRGBA(r, g, b, a float64) backend.Ptr {
	return e.addPattern(&pattern{
		typ: backend.PatternTypeSolid,
		r:   clamp01(r), g: clamp01(g), b: clamp01(b), a: clamp01(a),
	})
}

// PatternRGBA implements backend.Backend.
func (e *Engine) PatternRGBA(p backend.Ptr) (r, g, b, a float64, st backend.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pat, st := e.pattern(p)
	if pat == nil {
		return 0, 0, 0, 0, st
	}
	if pat.typ != backend.PatternTypeSolid {
		return 0, 0, 0, 0, backend.StatusPatternTypeMismatch
	}
	return pat.r, pat.g, pat.b, pat.a, backend.StatusSuccess
}

// PatternCreateLinear implements backend.Backend.
func (e *Engine) PatternCreateLinear(x0, y0, x1, y1 float64) backend.Ptr {
	return e.addPattern(&pattern{
		typ:    backend.PatternTypeLinearGradient,
		extend: backend.ExtendPad,
		x0:     x0, y0: y0, x1: x1, y1: y1,
	})
}

// PatternLinearPoints implements backend.Backend.
func (e *Engine) PatternLinearPoints(p backend.Ptr) (x0, y0, x1, y1 float64, st backend.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pat, st := e.pattern(p)
	if pat == nil {
		return 0, 0, 0, 0, st
	}
	if pat.typ != backend.PatternTypeLinearGradient {
		return 0, 0, 0, 0, backend.StatusPatternTypeMismatch
	}
	return pat.x0, pat.y0, pat.x1, pat.y1, backend.StatusSuccess
}

// PatternCreateRadial implements backend.Backend.
func (e *Engine) PatternCreateRadial(cx0, cy0, r0, cx1, cy1, r1 float64) backend.Ptr {
	if r0 < 0 || r1 < 0 {
		return errorPattern(backend.StatusInvalidSize)
	}
	return e.addPattern(&pattern{
		typ:    backend.PatternTypeRadialGradient,
		extend: backend.ExtendPad,
		x0:     cx0, y0: cy0, r0: r0,
		x1: cx1, y1: cy1, r1: r1,
	})
}

// PatternRadialCircles implements backend.Backend.
func (e *Engine) PatternRadialCircles(p backend.Ptr) (cx0, cy0, r0, cx1, cy1, r1 float64, st backend.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pat, st := e.pattern(p)
	if pat == nil {
		return 0, 0, 0, 0, 0, 0, st
	}
	if pat.typ != backend.PatternTypeRadialGradient {
		return 0, 0, 0, 0, 0, 0, backend.StatusPatternTypeMismatch
	}
	return pat.x0, pat.y0, pat.r0, pat.x1, pat.y1, pat.r1, backend.StatusSuccess
}

func isGradient(t backend.PatternType) bool {
	return t == backend.PatternTypeLinearGradient || t == backend.PatternTypeRadialGradient
}

// PatternAddColorStopRGBA implements backend.Backend. Stops are kept
// sorted by offset; a stop whose offset equals existing ones goes after
// them.
func (e *Engine) PatternAddColorStopRGBA(p backend.Ptr, offset, r, g, b, a float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pat := e.mutable(p)
	if pat == nil {
		return
	}
	if !isGradient(pat.typ) {
		pat.setError(backend.StatusPatternTypeMismatch)
		return
	}
	stop := colorStop{
		offset: clamp01(offset),
		r:      clamp01(r), g: clamp01(g), b: clamp01(b), a: clamp01(a),
	}
	i := sort.Search(len(pat.stops), func(i int) bool {
		return pat.stops[i].offset > stop.offset
	})
	pat.stops = append(pat.stops, colorStop{})
	copy(pat.stops[i+1:], pat.stops[i:])
	pat.stops[i] = stop
}

// PatternColorStopCount implements backend.Backend.
func (e *Engine) PatternColorStopCount(p backend.Ptr) (int, backend.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pat, st := e.pattern(p)
	if pat == nil {
		return 0, st
	}
	if !isGradient(pat.typ) {
		return 0, backend.StatusPatternTypeMismatch
	}
	return len(pat.stops), backend.StatusSuccess
}

// PatternColorStopRGBA implements backend.Backend.
func (e *Engine) PatternColorStopRGBA(p backend.Ptr, index int) (offset, r, g, b, a float64, st backend.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pat, st := e.pattern(p)
	if pat == nil {
		return 0, 0, 0, 0, 0, st
	}
	if !isGradient(pat.typ) {
		return 0, 0, 0, 0, 0, backend.StatusPatternTypeMismatch
	}
	if index < 0 || index >= len(pat.stops) {
		return 0, 0, 0, 0, 0, backend.StatusInvalidIndex
	}
	s := pat.stops[index]
	return s.offset, s.r, s.g, s.b, s.a, backend.StatusSuccess
}

// PatternCreateForSurface implements backend.Backend. The pattern holds a
// reference to s.
func (e *Engine) PatternCreateForSurface(s backend.Ptr) backend.Ptr {
	e.mu.Lock()
	surf, st := e.surface(s)
	if surf == nil {
		e.mu.Unlock()
		return errorPattern(st)
	}
	if surf.status != backend.StatusSuccess {
		st = surf.status
		e.mu.Unlock()
		return errorPattern(st)
	}
	surf.refs++
	e.mu.Unlock()

	return e.addPattern(&pattern{
		typ:     backend.PatternTypeSurface,
		extend:  backend.ExtendNone,
		surface: s,
	})
}

// PatternSurface implements backend.Backend.
func (e *Engine) PatternSurface(p backend.Ptr) (backend.Ptr, backend.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pat, st := e.pattern(p)
	if pat == nil {
		return 0, st
	}
	if pat.typ != backend.PatternTypeSurface {
		return 0, backend.StatusPatternTypeMismatch
	}
	return pat.surface, backend.StatusSuccess
}

// PatternCreateRasterSource creates a raster-source pattern. The engine
// cannot render it; it exists so callers can exercise pattern kinds they
// do not wrap.
func (e *Engine) PatternCreateRasterSource(content backend.Content, width, height int) backend.Ptr {
	if width < 0 || height < 0 {
		return errorPattern(backend.StatusInvalidSize)
	}
	return e.addPattern(&pattern{typ: backend.PatternTypeRasterSource})
}
