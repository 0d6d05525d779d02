package cairo

import (
	"image"
	"image/color"
	"testing"
)

func TestImageRoundTrip(t *testing.T) {
	_, opt := newEngine(t)

	src := image.NewRGBA(image.Rect(5, 5, 9, 8))
	src.Set(5, 5, color.RGBA{R: 0xff, A: 0xff})
	src.Set(8, 7, color.RGBA{G: 0x40, B: 0x40, A: 0x80})

	s, err := NewImageSurfaceFromImage(src, opt)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Release()
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("size %dx%d", s.Width(), s.Height())
	}

	got, err := s.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if c := got.RGBAAt(0, 0); c != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("(0,0) = %v", c)
	}
	if c := got.RGBAAt(3, 2); c != (color.RGBA{G: 0x40, B: 0x40, A: 0x80}) {
		t.Errorf("(3,2) = %v", c)
	}
	if c := got.RGBAAt(1, 1); c.A != 0 {
		t.Errorf("(1,1) = %v", c)
	}
}

func TestScaledSnapshot(t *testing.T) {
	_, opt := newEngine(t)
	s := newImage(t, opt, 8, 8)
	defer s.Release()

	img, err := s.ScaledSnapshot(3, 5)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 5 {
		t.Errorf("bounds = %v", b)
	}
}

func TestSnapshotRGB24(t *testing.T) {
	_, opt := newEngine(t)
	s, err := NewImageSurface(FormatRGB24, 2, 1, opt)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Release()

	img, err := s.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if c := img.RGBAAt(1, 0); c != (color.RGBA{A: 0xff}) {
		t.Errorf("RGB24 pixel = %v, want opaque black", c)
	}
}
