//go:build cgo && libcairo

package libcairo

import (
	"bytes"
	"testing"

	"github.com/gogpu/cairo/backend"
	"github.com/gogpu/cairo/pathdata"
)

func TestRegistered(t *testing.T) {
	b := backend.Get(backend.BackendLibcairo)
	if b == nil {
		t.Fatal("libcairo backend not available")
	}
	if b.Name() != backend.BackendLibcairo {
		t.Errorf("Name() = %q", b.Name())
	}
	if Version() == "" {
		t.Error("empty version string")
	}
}

func TestNilObjects(t *testing.T) {
	b := New()
	if st := b.SurfaceStatus(0); st != backend.StatusNullPointer {
		t.Errorf("SurfaceStatus(0) = %v", st)
	}
	if st := b.PatternStatus(0); st != backend.StatusNullPointer {
		t.Errorf("PatternStatus(0) = %v", st)
	}
	if st := b.ContextStatus(0); st != backend.StatusNullPointer {
		t.Errorf("ContextStatus(0) = %v", st)
	}
	b.SurfaceDestroy(0)
	b.PatternDestroy(0)
	b.ContextDestroy(0)
	b.PathDestroy(0)
}

func TestImageForData(t *testing.T) {
	b := New()
	stride := b.FormatStrideForWidth(backend.FormatARGB32, 4)
	data := make([]byte, stride*4)
	s := b.ImageSurfaceCreateForData(data, backend.FormatARGB32, 4, 4, stride)
	if st := b.SurfaceStatus(s); st != backend.StatusSuccess {
		t.Fatalf("status = %v", st)
	}

	cr := b.Create(s)
	b.SetSourceRGBA(cr, 1, 0, 0, 1)
	b.Paint(cr)
	b.ContextDestroy(cr)
	b.SurfaceFlush(s)

	if got := b.ImageSurfaceData(s); &got[0] != &data[0] {
		t.Error("data does not alias the caller buffer")
	}
	if data[3] != 0xff {
		t.Errorf("alpha byte = %#x after paint", data[3])
	}

	fired := 0
	b.SurfaceOnDestroy(s, func() { fired++ })
	b.SurfaceDestroy(s)
	if fired != 1 {
		t.Errorf("destroy notification fired %d times", fired)
	}
}

func TestStreamSurface(t *testing.T) {
	b := New()
	for _, kind := range []backend.StreamKind{backend.StreamPDF, backend.StreamPS, backend.StreamSVG} {
		t.Run(kind.String(), func(t *testing.T) {
			var buf bytes.Buffer
			write := func(_ uintptr, p []byte) backend.Status {
				buf.Write(p)
				return backend.StatusSuccess
			}
			s := b.StreamSurfaceCreate(kind, write, 0, 10, 10)
			if got := b.SurfaceType(s); got != kind.SurfaceType() {
				t.Errorf("type = %d, want %d", got, kind.SurfaceType())
			}
			cr := b.Create(s)
			b.Rectangle(cr, 1, 1, 5, 5)
			b.Fill(cr)
			b.ContextDestroy(cr)
			b.SurfaceFinish(s)
			b.SurfaceDestroy(s)
			if buf.Len() == 0 {
				t.Error("no output written")
			}
		})
	}
}

func TestStreamWritersReleased(t *testing.T) {
	b := New()
	for _, kind := range []backend.StreamKind{backend.StreamPDF, backend.StreamScript} {
		t.Run(kind.String(), func(t *testing.T) {
			before := writerCount()
			var buf bytes.Buffer
			s := b.StreamSurfaceCreate(kind, func(_ uintptr, p []byte) backend.Status {
				buf.Write(p)
				return backend.StatusSuccess
			}, 0, 10, 10)
			if writerCount() != before+1 {
				t.Fatalf("writers = %d, want %d", writerCount(), before+1)
			}

			// A pattern keeps the surface alive past SurfaceDestroy; the
			// writer must go when the engine drops the last reference.
			pat := b.PatternCreateForSurface(s)
			cr := b.Create(s)
			b.SetSourceRGBA(cr, 0, 0, 1, 1)
			b.Paint(cr)
			b.ContextDestroy(cr)
			b.SurfaceDestroy(s)
			if writerCount() != before+1 {
				t.Error("writer released while the surface is still referenced")
			}

			b.PatternDestroy(pat)
			if got := writerCount(); got != before {
				t.Errorf("writers after last destroy = %d, want %d", got, before)
			}
			if buf.Len() == 0 {
				t.Error("no output written")
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	b := New()
	s := b.StreamSurfaceCreate(backend.StreamPDF, func(uintptr, []byte) backend.Status {
		return backend.StatusWriteError
	}, 0, 10, 10)
	b.SurfaceFinish(s)
	if st := b.SurfaceStatus(s); st != backend.StatusWriteError {
		t.Errorf("status = %v, want write error", st)
	}
	b.SurfaceDestroy(s)
}

func TestCopyPath(t *testing.T) {
	b := New()
	s := b.ImageSurfaceCreate(backend.FormatARGB32, 8, 8)
	cr := b.Create(s)
	b.MoveTo(cr, 1, 2)
	b.LineTo(cr, 3, 4)
	b.ClosePath(cr)
	path := b.CopyPath(cr)
	recs, st := b.PathRecords(path)
	if st != backend.StatusSuccess {
		t.Fatalf("status = %v", st)
	}
	segs := pathdata.Collect(recs)
	if len(segs) != 4 || segs[2].Type != pathdata.ClosePath {
		t.Errorf("segments = %v", segs)
	}
	b.PathDestroy(path)
	b.ContextDestroy(cr)
	b.SurfaceDestroy(s)
}

func TestMesh(t *testing.T) {
	b := New()
	p := b.PatternCreateMesh()
	b.MeshBeginPatch(p)
	b.MeshMoveTo(p, 0, 0)
	b.MeshLineTo(p, 90, 0)
	b.MeshLineTo(p, 90, 90)
	b.MeshLineTo(p, 0, 90)
	b.MeshSetCornerColorRGBA(p, 0, 1, 0, 0, 1)
	b.MeshEndPatch(p)

	if n, st := b.MeshPatchCount(p); n != 1 || st != backend.StatusSuccess {
		t.Fatalf("patch count = %d, %v", n, st)
	}
	x, y, _ := b.MeshControlPoint(p, 0, 0)
	if x != 30 || y != 30 {
		t.Errorf("control point 0 = (%v, %v), want (30, 30)", x, y)
	}
	path := b.MeshPath(p, 0)
	recs, _ := b.PathRecords(path)
	if len(recs) != 18 {
		t.Errorf("mesh path records = %d, want 18", len(recs))
	}
	b.PathDestroy(path)
	b.PatternDestroy(p)
}
