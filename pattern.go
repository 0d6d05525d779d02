package cairo

import (
	"github.com/gogpu/cairo/backend"
	"github.com/gogpu/cairo/internal/handle"
)

// Pattern is the paint used for drawing. The concrete type is one of
// *SolidPattern, *SurfacePattern, *LinearGradient, *RadialGradient or *Mesh;
// a type switch selects the kind-specific operations.
type Pattern interface {
	Type() PatternType

	Extend() Extend
	SetExtend(e Extend)
	Filter() Filter
	SetFilter(f Filter)
	Matrix() Matrix
	SetMatrix(m Matrix)

	ReferenceCount() uint32
	Status() Status
	Err() error

	// Bound reports whether the pattern belongs to a drawing context. A
	// bound pattern is released by its context, never by Release.
	Bound() bool
	Release()

	base() *patternBase
}

// patternBase holds the reference shared by every pattern kind.
type patternBase struct {
	ref *handle.Ref[handle.Pattern]
}

func (p *patternBase) base() *patternBase  { return p }
func (p *patternBase) be() backend.Backend { return p.ref.Backend() }
func (p *patternBase) ptr() backend.Ptr    { return p.ref.Ptr() }

// Type returns the engine type tag.
func (p *patternBase) Type() PatternType {
	return p.be().PatternType(p.ptr())
}

// Extend returns how the pattern is drawn outside its natural area.
func (p *patternBase) Extend() Extend {
	return p.be().PatternExtend(p.ptr())
}

func (p *patternBase) SetExtend(e Extend) {
	p.be().PatternSetExtend(p.ptr(), e)
}

// Filter returns the sampling filter.
func (p *patternBase) Filter() Filter {
	return p.be().PatternFilter(p.ptr())
}

func (p *patternBase) SetFilter(f Filter) {
	p.be().PatternSetFilter(p.ptr(), f)
}

// Matrix returns the transformation from user space to pattern space.
func (p *patternBase) Matrix() Matrix {
	return p.be().PatternMatrix(p.ptr())
}

// SetMatrix sets the pattern matrix. A non-invertible matrix puts the
// pattern in StatusInvalidMatrix.
func (p *patternBase) SetMatrix(m Matrix) {
	p.be().PatternSetMatrix(p.ptr(), m)
}

func (p *patternBase) ReferenceCount() uint32 {
	return p.ref.ReferenceCount()
}

func (p *patternBase) Status() Status {
	return p.ref.Status()
}

// Err returns the pattern status as an error, nil if it is StatusSuccess.
func (p *patternBase) Err() error {
	return statusErr("pattern", p.Status())
}

func (p *patternBase) Bound() bool {
	return p.ref.Bound()
}

// Release drops the reference held by the pattern. Safe to call more than
// once.
func (p *patternBase) Release() {
	p.ref.Release()
}

func (p *patternBase) String() string {
	return p.ref.String()
}

// check returns the pattern status after op as an error.
func (p *patternBase) check(op string) error {
	return statusErr(op, p.Status())
}

// wrapPattern returns the variant matching the engine type tag of ref. Kinds
// without a wrapper release ref and return *UnsupportedPatternError.
func wrapPattern(ref *handle.Ref[handle.Pattern]) (Pattern, error) {
	base := patternBase{ref: ref}
	switch t := ref.Backend().PatternType(ref.Ptr()); t {
	case PatternTypeSolid:
		return &SolidPattern{base}, nil
	case PatternTypeSurface:
		return &SurfacePattern{base}, nil
	case PatternTypeLinearGradient:
		return &LinearGradient{gradient{base}}, nil
	case PatternTypeRadialGradient:
		return &RadialGradient{gradient{base}}, nil
	case PatternTypeMesh:
		return &Mesh{base}, nil
	default:
		ref.Release()
		return nil, &UnsupportedPatternError{Type: t}
	}
}

// adoptPattern wraps a constructor result, converting an error object into
// a *StatusError.
func adoptPattern(be backend.Backend, p backend.Ptr, op string) (patternBase, error) {
	ref := handle.Adopt[handle.Pattern](be, p)
	if st := ref.Status(); st != backend.StatusSuccess {
		ref.Release()
		return patternBase{}, &StatusError{Op: op, Status: st}
	}
	return patternBase{ref: ref}, nil
}

// WrapPattern takes over a pattern reference p held on be and returns its
// typed wrapper.
func WrapPattern(be backend.Backend, p backend.Ptr) (Pattern, error) {
	return wrapPattern(handle.Adopt[handle.Pattern](be, p))
}

// ClonePattern returns a new owner of the pattern behind p, of the same
// concrete type.
func ClonePattern(p Pattern) (Pattern, error) {
	return wrapPattern(p.base().ref.Clone())
}
