package cairo

import "github.com/gogpu/cairo/backend"

// ImageSurface is a surface whose pixels live in memory.
type ImageSurface struct {
	*Surface
}

// NewImageSurface creates an image surface with engine-owned storage,
// cleared to transparent black.
func NewImageSurface(format Format, width, height int, opts ...Option) (*ImageSurface, error) {
	be, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	s, err := adoptSurface(be, be.ImageSurfaceCreate(format, width, height), "create image surface")
	if err != nil {
		return nil, err
	}
	return &ImageSurface{Surface: s}, nil
}

// NewImageSurfaceForData creates an image surface over data. The engine
// draws directly into data until the surface is destroyed, and data is kept
// reachable until then. stride must be at least FormatStrideForWidth and a
// multiple of 4.
func NewImageSurfaceForData(data []byte, format Format, width, height, stride int, opts ...Option) (*ImageSurface, error) {
	if height > 0 && stride > 0 && len(data) < height*stride {
		return nil, ErrBufferTooSmall
	}
	be, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	s, err := adoptSurface(be, be.ImageSurfaceCreateForData(data, format, width, height, stride), "create image surface for data")
	if err != nil {
		return nil, err
	}
	return &ImageSurface{Surface: s}, nil
}

// AsImageSurface converts s into an image surface, taking over its
// reference. On failure s is left untouched. The result shares s, including
// any open pixel borrow.
func AsImageSurface(s *Surface) (*ImageSurface, error) {
	if st := s.Status(); st != backend.StatusSuccess {
		return nil, &StatusError{Op: "as image surface", Status: st}
	}
	if s.Type() != SurfaceTypeImage {
		return nil, &StatusError{Op: "as image surface", Status: StatusSurfaceTypeMismatch}
	}
	return &ImageSurface{Surface: s}, nil
}

// Clone returns a new owner of the same image surface.
func (s *ImageSurface) Clone() *ImageSurface {
	return &ImageSurface{Surface: s.Surface.Clone()}
}

// Format returns the pixel format.
func (s *ImageSurface) Format() Format {
	return s.be().ImageSurfaceFormat(s.ptr())
}

// Width returns the width in pixels.
func (s *ImageSurface) Width() int {
	return s.be().ImageSurfaceWidth(s.ptr())
}

// Height returns the height in pixels.
func (s *ImageSurface) Height() int {
	return s.be().ImageSurfaceHeight(s.ptr())
}

// Stride returns the distance in bytes between rows.
func (s *ImageSurface) Stride() int {
	return s.be().ImageSurfaceStride(s.ptr())
}

// FormatStrideForWidth returns the stride an image surface of the given
// format and width uses.
func FormatStrideForWidth(format Format, width int) (int, error) {
	stride := backend.StrideForWidth(format, width)
	if stride < 0 {
		return 0, &StatusError{Op: "stride for width", Status: StatusInvalidFormat}
	}
	return stride, nil
}
