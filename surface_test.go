package cairo

import (
	"bytes"
	"errors"
	"image/png"
	"testing"
)

func TestNewImageSurface(t *testing.T) {
	_, opt := newEngine(t)
	s := newImage(t, opt, 10, 7)
	defer s.Release()

	if s.Type() != SurfaceTypeImage || s.Format() != FormatARGB32 {
		t.Errorf("type %v, format %v", s.Type(), s.Format())
	}
	if s.Width() != 10 || s.Height() != 7 || s.Stride() != 40 {
		t.Errorf("geometry %dx%d stride %d", s.Width(), s.Height(), s.Stride())
	}
	if s.Content() != ContentColorAlpha {
		t.Errorf("content = %v", s.Content())
	}
	if err := s.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}

func TestNewImageSurfaceErrors(t *testing.T) {
	_, opt := newEngine(t)
	tests := []struct {
		name   string
		format Format
		w, h   int
		want   Status
	}{
		{"invalid format", FormatInvalid, 1, 1, StatusInvalidFormat},
		{"negative width", FormatARGB32, -1, 1, StatusInvalidSize},
		{"too tall", FormatA8, 1, 32768, StatusInvalidSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewImageSurface(tt.format, tt.w, tt.h, opt)
			if s != nil {
				t.Fatal("expected nil surface")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewImageSurfaceForData(t *testing.T) {
	_, opt := newEngine(t)
	stride, err := FormatStrideForWidth(FormatARGB32, 3)
	if err != nil || stride != 12 {
		t.Fatalf("stride = %d, %v", stride, err)
	}

	tests := []struct {
		name   string
		buf    int
		stride int
		want   error
	}{
		{"exact", 12 * 4, 12, nil},
		{"larger", 100, 12, nil},
		{"one byte short", 12*4 - 1, 12, ErrBufferTooSmall},
		{"stride below minimum", 64, 8, StatusInvalidStride},
		{"unaligned stride", 64, 13, StatusInvalidStride},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewImageSurfaceForData(make([]byte, tt.buf), FormatARGB32, 3, 4, tt.stride, opt)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				s.Release()
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestForDataSharesBuffer(t *testing.T) {
	_, opt := newEngine(t)
	buf := make([]byte, 4*2*2)
	s, err := NewImageSurfaceForData(buf, FormatARGB32, 2, 2, 8, opt)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Release()

	cr, err := NewContext(s.Surface)
	if err != nil {
		t.Fatal(err)
	}
	defer cr.Release()
	cr.SetSourceRGB(0, 0, 1)
	if err := cr.Paint(); err != nil {
		t.Fatal(err)
	}
	s.Flush()
	if !bytes.Contains(buf, []byte{0xff}) {
		t.Error("painting did not reach the caller buffer")
	}
}

func TestSurfaceCloneRelease(t *testing.T) {
	e, opt := newEngine(t)
	s := newImage(t, opt, 1, 1)

	const n = 5
	clones := make([]*Surface, n)
	for i := range clones {
		clones[i] = s.Surface.Clone()
	}
	if got := s.ReferenceCount(); got != n+1 {
		t.Fatalf("count = %d, want %d", got, n+1)
	}
	for _, c := range clones {
		c.Release()
		c.Release() // idempotent
	}
	if got := s.ReferenceCount(); got != 1 {
		t.Fatalf("count after releases = %d, want 1", got)
	}
	if e.Live() != 1 {
		t.Fatalf("surface destroyed early")
	}
	s.Release()
	if e.Live() != 0 {
		t.Error("final release did not destroy the surface")
	}
}

func TestReleasedSurface(t *testing.T) {
	_, opt := newEngine(t)
	s := newImage(t, opt, 1, 1)
	s.Release()

	if s.Status() != StatusNullPointer {
		t.Errorf("status = %v", s.Status())
	}
	if s.ReferenceCount() != 0 {
		t.Errorf("count = %d", s.ReferenceCount())
	}
	// Must not panic.
	s.Flush()
	s.MarkDirty()
	s.Clone().Release()
}

func TestCreateSimilar(t *testing.T) {
	_, opt := newEngine(t)
	s := newImage(t, opt, 4, 4)
	defer s.Release()

	sim, err := s.CreateSimilar(ContentAlpha, 8, 2)
	if err != nil {
		t.Fatal(err)
	}
	defer sim.Release()
	img, err := AsImageSurface(sim)
	if err != nil {
		t.Fatal(err)
	}
	if img.Format() != FormatA8 || img.Width() != 8 || img.Height() != 2 {
		t.Errorf("similar = %v %dx%d", img.Format(), img.Width(), img.Height())
	}

	if _, err := s.CreateSimilar(Content(7), 1, 1); !errors.Is(err, StatusInvalidContent) {
		t.Errorf("bad content err = %v", err)
	}
}

func TestAsImageSurfaceMismatch(t *testing.T) {
	_, opt := newEngine(t)
	var buf bytes.Buffer
	s, err := NewSVGSurface(&buf, 10, 10, opt)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Release()

	if _, err := AsImageSurface(s.Surface); !errors.Is(err, StatusSurfaceTypeMismatch) {
		t.Errorf("err = %v", err)
	}
	if s.Status() != StatusSuccess {
		t.Error("failed conversion must leave the surface untouched")
	}
}

func TestWriteToPNG(t *testing.T) {
	_, opt := newEngine(t)
	s := newImage(t, opt, 3, 2)
	defer s.Release()

	cr, err := NewContext(s.Surface)
	if err != nil {
		t.Fatal(err)
	}
	cr.SetSourceRGB(1, 0, 0)
	cr.Rectangle(0, 0, 1, 2)
	if err := cr.Fill(); err != nil {
		t.Fatal(err)
	}
	cr.Release()

	var buf bytes.Buffer
	if err := s.WriteToPNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds = %v", b)
	}
	r, g, _, a := img.At(0, 0).RGBA()
	if r != 0xffff || g != 0 || a != 0xffff {
		t.Errorf("pixel (0,0) = %x %x %x", r, g, a)
	}
	if _, _, _, a := img.At(2, 1).RGBA(); a != 0 {
		t.Errorf("pixel (2,1) alpha = %x", a)
	}
}

type failWriter struct {
	err   error
	calls int
}

func (w *failWriter) Write(p []byte) (int, error) {
	w.calls++
	return 0, w.err
}

func TestWriteToPNGWriterError(t *testing.T) {
	_, opt := newEngine(t)
	s := newImage(t, opt, 2, 2)
	defer s.Release()

	boom := errors.New("disk full")
	if err := s.WriteToPNG(&failWriter{err: boom}); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}

func TestWriteToPNGFinished(t *testing.T) {
	_, opt := newEngine(t)
	s := newImage(t, opt, 2, 2)
	defer s.Release()
	s.Finish()

	var buf bytes.Buffer
	if err := s.WriteToPNG(&buf); !errors.Is(err, StatusSurfaceFinished) {
		t.Errorf("err = %v", err)
	}
}
