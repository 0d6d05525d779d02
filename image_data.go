package cairo

import "slices"

// ImageData is exclusive access to the pixels of an ImageSurface.
//
// The view is valid until Close. Writes made through Mutable or Set are
// announced to the engine with a single MarkDirty at Close; a view that was
// only read causes no notification.
type ImageData struct {
	surface *ImageSurface
	data    []byte

	width, height, stride int

	dirty  bool
	closed bool
}

// Data borrows the pixel storage of s. It fails with ErrNonExclusive if s
// has another owner or another borrow is open, with a *StatusError if the
// surface is in an error state after flushing, and with ErrSurfaceFinished
// if the storage is gone.
func (s *ImageSurface) Data() (*ImageData, error) {
	if s.ReferenceCount() != 1 || !s.borrowed.CompareAndSwap(false, true) {
		return nil, ErrNonExclusive
	}

	s.Flush()
	if st := s.Status(); st != StatusSuccess {
		s.borrowed.Store(false)
		return nil, &StatusError{Op: "image data", Status: st}
	}
	buf := s.be().ImageSurfaceData(s.ptr())
	if buf == nil {
		s.borrowed.Store(false)
		return nil, ErrSurfaceFinished
	}

	height, stride := s.Height(), s.Stride()
	return &ImageData{
		surface: s,
		data:    buf[:height*stride],
		width:   s.Width(),
		height:  height,
		stride:  stride,
	}, nil
}

// WithData borrows the pixels of s for the duration of fn. The borrow is
// closed however fn returns.
func (s *ImageSurface) WithData(fn func(d *ImageData) error) error {
	d, err := s.Data()
	if err != nil {
		return err
	}
	defer d.Close()
	return fn(d)
}

// Bytes returns a copy of the pixels. Use Mutable or Set to write.
func (d *ImageData) Bytes() []byte {
	return slices.Clone(d.data)
}

// Mutable returns the pixels for writing and marks the view dirty.
func (d *ImageData) Mutable() []byte {
	d.dirty = true
	return d.data
}

// Set stores v at byte offset i.
func (d *ImageData) Set(i int, v byte) {
	d.data[i] = v
	d.dirty = true
}

// Len returns stride*height.
func (d *ImageData) Len() int { return len(d.data) }

func (d *ImageData) Stride() int { return d.stride }
func (d *ImageData) Width() int  { return d.width }
func (d *ImageData) Height() int { return d.height }

// Dirty reports whether the view has been written to.
func (d *ImageData) Dirty() bool { return d.dirty }

// Close ends the borrow. It is safe to call more than once.
func (d *ImageData) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.data = nil
	if d.dirty {
		d.surface.MarkDirty()
	}
	d.surface.borrowed.Store(false)
	return nil
}
