package cairo

// SurfacePattern paints the contents of a surface.
type SurfacePattern struct {
	patternBase
}

// NewSurfacePattern creates a pattern drawing s. The pattern keeps its own
// reference to s, so s may be released afterwards.
func NewSurfacePattern(s *Surface) (*SurfacePattern, error) {
	be := s.be()
	base, err := adoptPattern(be, be.PatternCreateForSurface(s.ptr()), "create surface pattern")
	if err != nil {
		return nil, err
	}
	return &SurfacePattern{base}, nil
}

// Surface returns a new owner of the surface behind the pattern.
func (p *SurfacePattern) Surface() (*Surface, error) {
	sp, st := p.be().PatternSurface(p.ptr())
	if err := statusErr("pattern surface", st); err != nil {
		return nil, err
	}
	return shareSurface(p.be(), sp), nil
}

// Clone returns a new owner of the same pattern.
func (p *SurfacePattern) Clone() *SurfacePattern {
	return &SurfacePattern{patternBase{ref: p.ref.Clone()}}
}
