package software

import (
	"bytes"
	"encoding/binary"
	"image/png"
	"testing"

	"github.com/gogpu/cairo/backend"
)

func TestImageSurfaceGeometry(t *testing.T) {
	e := New()
	s := e.ImageSurfaceCreate(backend.FormatRGB24, 3, 2)
	defer e.SurfaceDestroy(s)

	if got := e.ImageSurfaceStride(s); got != 12 {
		t.Errorf("stride = %d, want 12", got)
	}
	if got := len(e.ImageSurfaceData(s)); got != 24 {
		t.Errorf("len(data) = %d, want 24", got)
	}
	if e.ImageSurfaceWidth(s) != 3 || e.ImageSurfaceHeight(s) != 2 {
		t.Error("unexpected size")
	}
	if e.ImageSurfaceFormat(s) != backend.FormatRGB24 {
		t.Error("unexpected format")
	}
	if e.SurfaceContent(s) != backend.ContentColor {
		t.Errorf("content = %#x", e.SurfaceContent(s))
	}
	if e.SurfaceType(s) != backend.SurfaceTypeImage {
		t.Error("unexpected type")
	}
}

func TestFinishReleasesOwnedData(t *testing.T) {
	e := New()
	s := e.ImageSurfaceCreate(backend.FormatARGB32, 2, 2)
	defer e.SurfaceDestroy(s)

	e.SurfaceFinish(s)
	if e.ImageSurfaceData(s) != nil {
		t.Error("owned data should be released by finish")
	}
	if st := e.SurfaceStatus(s); st != backend.StatusSuccess {
		t.Errorf("finish changed status to %v", st)
	}
}

func TestCreateForData(t *testing.T) {
	e := New()
	buf := make([]byte, 8*2)
	s := e.ImageSurfaceCreateForData(buf, backend.FormatARGB32, 2, 2, 8)
	if st := e.SurfaceStatus(s); st != backend.StatusSuccess {
		t.Fatalf("status = %v", st)
	}

	data := e.ImageSurfaceData(s)
	data[0] = 0x7f
	if buf[0] != 0x7f {
		t.Error("surface data must alias the caller's buffer")
	}

	e.SurfaceFinish(s)
	if e.ImageSurfaceData(s) == nil {
		t.Error("caller-owned data should survive finish")
	}
	e.SurfaceDestroy(s)
}

func TestMarkDirty(t *testing.T) {
	e := New()
	s := e.ImageSurfaceCreateForData(make([]byte, 16), backend.FormatARGB32, 2, 2, 8)
	defer e.SurfaceDestroy(s)

	e.SurfaceMarkDirty(s)
	e.SurfaceMarkDirtyRectangle(s, 0, 0, 1, 1)
	if got := e.MarkDirtyCalls(s); got != 2 {
		t.Errorf("MarkDirtyCalls = %d, want 2", got)
	}

	e.SurfaceFinish(s)
	e.SurfaceMarkDirty(s)
	if st := e.SurfaceStatus(s); st != backend.StatusSurfaceFinished {
		t.Errorf("marking a finished surface dirty gave status %v", st)
	}
}

func TestOnDestroyRunsAfterFinish(t *testing.T) {
	e := New()
	var events []string
	write := func(_ uintptr, data []byte) backend.Status {
		events = append(events, "write")
		return backend.StatusSuccess
	}
	s := e.StreamSurfaceCreate(backend.StreamSVG, write, 1, 10, 10)
	if st := e.SurfaceOnDestroy(s, func() { events = append(events, "destroy") }); st != backend.StatusSuccess {
		t.Fatalf("SurfaceOnDestroy = %v", st)
	}

	e.SurfaceReference(s)
	e.SurfaceDestroy(s)
	if len(events) != 0 {
		t.Fatalf("events before last reference dropped: %v", events)
	}

	e.SurfaceDestroy(s)
	if len(events) < 2 || events[len(events)-1] != "destroy" || events[0] != "write" {
		t.Errorf("events = %v, want writes followed by destroy", events)
	}
}

func TestCreateSimilar(t *testing.T) {
	e := New()
	s := e.ImageSurfaceCreate(backend.FormatARGB32, 4, 4)
	defer e.SurfaceDestroy(s)

	sim := e.SurfaceCreateSimilar(s, backend.ContentAlpha, 3, 3)
	defer e.SurfaceDestroy(sim)
	if e.ImageSurfaceFormat(sim) != backend.FormatA8 {
		t.Errorf("similar format = %v", e.ImageSurfaceFormat(sim))
	}

	bad := e.SurfaceCreateSimilar(s, backend.Content(7), 3, 3)
	if st := e.SurfaceStatus(bad); st != backend.StatusInvalidContent {
		t.Errorf("status = %v", st)
	}

	e.SurfaceFinish(s)
	fin := e.SurfaceCreateSimilar(s, backend.ContentColor, 1, 1)
	if st := e.SurfaceStatus(fin); st != backend.StatusSurfaceFinished {
		t.Errorf("similar of finished surface = %v", st)
	}
}

func TestWriteToPNGStream(t *testing.T) {
	e := New()
	s := e.ImageSurfaceCreate(backend.FormatARGB32, 2, 1)
	defer e.SurfaceDestroy(s)

	data := e.ImageSurfaceData(s)
	// Half-transparent premultiplied red.
	binary.NativeEndian.PutUint32(data[0:], 0x80800000)

	var buf bytes.Buffer
	write := func(_ uintptr, p []byte) backend.Status {
		buf.Write(p)
		return backend.StatusSuccess
	}
	if st := e.SurfaceWriteToPNGStream(s, write, 0); st != backend.StatusSuccess {
		t.Fatalf("SurfaceWriteToPNGStream = %v", st)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	r, _, _, a := img.At(0, 0).RGBA()
	if a>>8 != 0x80 || r>>8 < 0x7e {
		t.Errorf("pixel (0,0) = r %#x a %#x", r>>8, a>>8)
	}
	if _, _, _, a := img.At(1, 0).RGBA(); a != 0 {
		t.Errorf("pixel (1,0) alpha = %#x, want 0", a)
	}
}

func TestWriteToPNGStreamErrors(t *testing.T) {
	e := New()
	fail := func(uintptr, []byte) backend.Status { return backend.StatusWriteError }

	s := e.ImageSurfaceCreate(backend.FormatARGB32, 1, 1)
	defer e.SurfaceDestroy(s)
	if st := e.SurfaceWriteToPNGStream(s, fail, 0); st != backend.StatusWriteError {
		t.Errorf("failing writer gave %v", st)
	}
	if st := e.SurfaceWriteToPNGStream(s, nil, 0); st != backend.StatusNullPointer {
		t.Errorf("nil writer gave %v", st)
	}

	v := e.StreamSurfaceCreate(backend.StreamPDF, fail, 0, 1, 1)
	defer e.SurfaceDestroy(v)
	if st := e.SurfaceWriteToPNGStream(v, fail, 0); st != backend.StatusSurfaceTypeMismatch {
		t.Errorf("vector surface gave %v", st)
	}
}

func TestPixelFormats(t *testing.T) {
	tests := []struct {
		format backend.Format
		in     premul
		want   premul
	}{
		{backend.FormatARGB32, premul{0.5, 0.25, 0, 0.5}, premul{128.0 / 255, 64.0 / 255, 0, 128.0 / 255}},
		{backend.FormatRGB24, premul{1, 0, 0, 0.3}, premul{1, 0, 0, 1}},
		{backend.FormatA8, premul{1, 1, 1, 1}, premul{a: 1}},
		{backend.FormatA1, premul{a: 0.7}, premul{a: 1}},
		{backend.FormatRGB16565, premul{1, 0, 1, 1}, premul{1, 0, 1, 1}},
		{backend.FormatRGB30, premul{0, 1, 0, 1}, premul{0, 1, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			stride := backend.StrideForWidth(tt.format, 9)
			px := pixels{format: tt.format, width: 9, height: 1, stride: stride, data: make([]byte, stride)}
			px.set(8, 0, tt.in)
			if got := px.at(8, 0); got != tt.want {
				t.Errorf("at() = %+v, want %+v", got, tt.want)
			}
			if got := px.at(7, 0); got.a != 0 && tt.format != backend.FormatRGB24 &&
				tt.format != backend.FormatRGB16565 && tt.format != backend.FormatRGB30 {
				t.Errorf("neighbour pixel changed: %+v", got)
			}
		})
	}
}
