package cairo

// Gradient is implemented by *LinearGradient and *RadialGradient.
type Gradient interface {
	Pattern

	AddColorStopRGB(offset, r, g, b float64)
	AddColorStopRGBA(offset, r, g, b, a float64)
	ColorStopCount() (int, error)
	ColorStopRGBA(index int) (offset, r, g, b, a float64, err error)
}

type gradient struct {
	patternBase
}

// AddColorStopRGB adds an opaque colour stop. Offsets are clamped to
// [0, 1]; stops with equal offsets keep their insertion order.
func (p *gradient) AddColorStopRGB(offset, r, g, b float64) {
	p.AddColorStopRGBA(offset, r, g, b, 1)
}

// AddColorStopRGBA adds a translucent colour stop.
func (p *gradient) AddColorStopRGBA(offset, r, g, b, a float64) {
	p.be().PatternAddColorStopRGBA(p.ptr(), offset, r, g, b, a)
}

// ColorStopCount returns the number of colour stops.
func (p *gradient) ColorStopCount() (int, error) {
	n, st := p.be().PatternColorStopCount(p.ptr())
	return n, statusErr("color stop count", st)
}

// ColorStopRGBA returns stop index, which must lie in [0, ColorStopCount).
// The index is checked by the engine, which reports StatusInvalidIndex.
func (p *gradient) ColorStopRGBA(index int) (offset, r, g, b, a float64, err error) {
	offset, r, g, b, a, st := p.be().PatternColorStopRGBA(p.ptr(), index)
	return offset, r, g, b, a, statusErr("color stop rgba", st)
}

// LinearGradient blends colours along the line between two points.
type LinearGradient struct {
	gradient
}

// NewLinearGradient creates a gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64, opts ...Option) (*LinearGradient, error) {
	be, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	base, err := adoptPattern(be, be.PatternCreateLinear(x0, y0, x1, y1), "create linear gradient")
	if err != nil {
		return nil, err
	}
	return &LinearGradient{gradient{base}}, nil
}

// LinearPoints returns the end points of the gradient.
func (p *LinearGradient) LinearPoints() (x0, y0, x1, y1 float64, err error) {
	x0, y0, x1, y1, st := p.be().PatternLinearPoints(p.ptr())
	return x0, y0, x1, y1, statusErr("linear points", st)
}

// Clone returns a new owner of the same gradient.
func (p *LinearGradient) Clone() *LinearGradient {
	return &LinearGradient{gradient{patternBase{ref: p.ref.Clone()}}}
}

// RadialGradient blends colours between two circles.
type RadialGradient struct {
	gradient
}

// NewRadialGradient creates a gradient from the circle (cx0, cy0, r0) to
// the circle (cx1, cy1, r1). A negative radius fails with
// StatusInvalidSize.
func NewRadialGradient(cx0, cy0, r0, cx1, cy1, r1 float64, opts ...Option) (*RadialGradient, error) {
	be, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	base, err := adoptPattern(be, be.PatternCreateRadial(cx0, cy0, r0, cx1, cy1, r1), "create radial gradient")
	if err != nil {
		return nil, err
	}
	return &RadialGradient{gradient{base}}, nil
}

// RadialCircles returns both circles of the gradient.
func (p *RadialGradient) RadialCircles() (cx0, cy0, r0, cx1, cy1, r1 float64, err error) {
	cx0, cy0, r0, cx1, cy1, r1, st := p.be().PatternRadialCircles(p.ptr())
	return cx0, cy0, r0, cx1, cy1, r1, statusErr("radial circles", st)
}

// Clone returns a new owner of the same gradient.
func (p *RadialGradient) Clone() *RadialGradient {
	return &RadialGradient{gradient{patternBase{ref: p.ref.Clone()}}}
}

var (
	_ Gradient = (*LinearGradient)(nil)
	_ Gradient = (*RadialGradient)(nil)
)
