package cairo

// SolidPattern is a uniform colour.
type SolidPattern struct {
	patternBase
}

// NewSolidPatternRGB creates an opaque colour pattern. Components are
// clamped to [0, 1].
func NewSolidPatternRGB(r, g, b float64, opts ...Option) (*SolidPattern, error) {
	return NewSolidPatternRGBA(r, g, b, 1, opts...)
}

// NewSolidPatternRGBA creates a translucent colour pattern.
func NewSolidPatternRGBA(r, g, b, a float64, opts ...Option) (*SolidPattern, error) {
	be, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	base, err := adoptPattern(be, be.PatternCreateRGBA(r, g, b, a), "create solid pattern")
	if err != nil {
		return nil, err
	}
	return &SolidPattern{base}, nil
}

// RGBA returns the colour of the pattern.
func (p *SolidPattern) RGBA() (r, g, b, a float64, err error) {
	r, g, b, a, st := p.be().PatternRGBA(p.ptr())
	return r, g, b, a, statusErr("solid pattern rgba", st)
}

// Clone returns a new owner of the same pattern.
func (p *SolidPattern) Clone() *SolidPattern {
	return &SolidPattern{patternBase{ref: p.ref.Clone()}}
}
