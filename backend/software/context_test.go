package software

import (
	"encoding/binary"
	"reflect"
	"testing"

	"github.com/gogpu/cairo/backend"
	"github.com/gogpu/cairo/pathdata"
)

func newCanvas(t *testing.T, e *Engine, w, h int) (surf, cr backend.Ptr) {
	t.Helper()
	surf = e.ImageSurfaceCreate(backend.FormatARGB32, w, h)
	cr = e.Create(surf)
	if st := e.ContextStatus(cr); st != backend.StatusSuccess {
		t.Fatalf("Create: %v", st)
	}
	t.Cleanup(func() {
		e.ContextDestroy(cr)
		e.SurfaceDestroy(surf)
	})
	return surf, cr
}

func pixel(e *Engine, s backend.Ptr, x, y int) (a, r, g, b uint8) {
	data := e.ImageSurfaceData(s)
	v := binary.NativeEndian.Uint32(data[y*e.ImageSurfaceStride(s)+x*4:])
	return uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)
}

func copyPath(t *testing.T, e *Engine, cr backend.Ptr) []pathdata.Segment {
	t.Helper()
	p := e.CopyPath(cr)
	defer e.PathDestroy(p)
	records, st := e.PathRecords(p)
	if st != backend.StatusSuccess {
		t.Fatalf("CopyPath status %v", st)
	}
	return pathdata.Collect(records)
}

func TestPathCurrentPointRules(t *testing.T) {
	e := New()
	_, cr := newCanvas(t, e, 1, 1)

	e.LineTo(cr, 1, 1) // no current point: acts as MoveTo
	e.LineTo(cr, 2, 2)
	e.ClosePath(cr)
	e.LineTo(cr, 3, 3)

	got := copyPath(t, e, cr)
	want := []pathdata.Segment{
		{Type: pathdata.MoveTo, Points: []pathdata.Point{{X: 1, Y: 1}}},
		{Type: pathdata.LineTo, Points: []pathdata.Point{{X: 2, Y: 2}}},
		{Type: pathdata.ClosePath},
		{Type: pathdata.MoveTo, Points: []pathdata.Point{{X: 1, Y: 1}}},
		{Type: pathdata.LineTo, Points: []pathdata.Point{{X: 3, Y: 3}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("path =\n%v\nwant\n%v", got, want)
	}
}

func TestRectangleAndAppendPath(t *testing.T) {
	e := New()
	_, cr := newCanvas(t, e, 1, 1)

	e.Rectangle(cr, 1, 2, 3, 4)
	p := e.CopyPath(cr)
	defer e.PathDestroy(p)
	records, _ := e.PathRecords(p)
	if len(records) != 9 {
		t.Fatalf("rectangle records = %d, want 9", len(records))
	}

	e.NewPath(cr)
	if segs := copyPath(t, e, cr); len(segs) != 0 {
		t.Fatalf("NewPath left %d segments", len(segs))
	}

	e.AppendPath(cr, p)
	if got := copyPath(t, e, cr); !reflect.DeepEqual(got, pathdata.Collect(records)) {
		t.Errorf("appended path differs: %v", got)
	}
}

func TestAppendErrorPath(t *testing.T) {
	e := New()
	_, cr := newCanvas(t, e, 1, 1)

	e.AppendPath(cr, errorPath(backend.StatusNoMemory))
	if st := e.ContextStatus(cr); st != backend.StatusNoMemory {
		t.Errorf("status = %v", st)
	}
	if _, st := e.PathRecords(e.CopyPath(cr)); st != backend.StatusNoMemory {
		t.Errorf("CopyPath on errored context = %v", st)
	}
}

func TestFillRectangle(t *testing.T) {
	e := New()
	surf, cr := newCanvas(t, e, 10, 10)

	e.SetSourceRGBA(cr, 1, 0, 0, 1)
	e.Rectangle(cr, 2, 2, 6, 6)
	e.Fill(cr)

	if st := e.ContextStatus(cr); st != backend.StatusSuccess {
		t.Fatalf("status = %v", st)
	}
	if a, r, g, b := pixel(e, surf, 5, 5); a < 0xf0 || r < 0xf0 || g != 0 || b != 0 {
		t.Errorf("inside pixel = %02x %02x %02x %02x", a, r, g, b)
	}
	if a, _, _, _ := pixel(e, surf, 0, 0); a != 0 {
		t.Errorf("outside pixel alpha = %#x", a)
	}
	if segs := copyPath(t, e, cr); len(segs) != 0 {
		t.Error("Fill should clear the path")
	}
}

func TestPaintLinearGradient(t *testing.T) {
	e := New()
	surf, cr := newCanvas(t, e, 16, 1)

	p := e.PatternCreateLinear(0, 0, 16, 0)
	e.PatternAddColorStopRGBA(p, 0, 0, 0, 0, 1)
	e.PatternAddColorStopRGBA(p, 1, 1, 1, 1, 1)
	e.SetSource(cr, p)
	e.PatternDestroy(p)
	e.Paint(cr)

	_, left, _, _ := pixel(e, surf, 0, 0)
	_, right, _, _ := pixel(e, surf, 15, 0)
	if left >= right {
		t.Errorf("gradient not increasing: left %#x right %#x", left, right)
	}
}

func TestSetSourceSurface(t *testing.T) {
	e := New()
	surf, cr := newCanvas(t, e, 4, 4)

	src := e.ImageSurfaceCreate(backend.FormatARGB32, 1, 1)
	binary.NativeEndian.PutUint32(e.ImageSurfaceData(src), 0xff00ff00)
	e.SetSourceSurface(cr, src, 2, 1)
	e.SurfaceDestroy(src)
	e.Paint(cr)

	if a, _, g, _ := pixel(e, surf, 2, 1); a != 0xff || g != 0xff {
		t.Errorf("painted pixel = a %#x g %#x", a, g)
	}
	if a, _, _, _ := pixel(e, surf, 0, 0); a != 0 {
		t.Errorf("pixel outside source = %#x, want transparent", a)
	}
}

func TestPaintMesh(t *testing.T) {
	e := New()
	surf, cr := newCanvas(t, e, 8, 8)

	p := e.PatternCreateMesh()
	e.MeshBeginPatch(p)
	e.MeshMoveTo(p, 0, 0)
	e.MeshLineTo(p, 4, 0)
	e.MeshLineTo(p, 4, 4)
	e.MeshLineTo(p, 0, 4)
	for c := range 4 {
		e.MeshSetCornerColorRGBA(p, c, 0, 0, 1, 1)
	}
	e.MeshEndPatch(p)
	e.SetSource(cr, p)
	e.PatternDestroy(p)
	e.Paint(cr)

	if a, _, _, b := pixel(e, surf, 1, 1); a < 0xf0 || b < 0xf0 {
		t.Errorf("pixel inside patch = a %#x b %#x", a, b)
	}
	if a, _, _, _ := pixel(e, surf, 6, 6); a != 0 {
		t.Errorf("pixel outside patch alpha = %#x", a)
	}
}

func TestSetSourceErrorPattern(t *testing.T) {
	e := New()
	_, cr := newCanvas(t, e, 1, 1)

	e.SetSource(cr, errorPattern(backend.StatusInvalidMatrix))
	if st := e.ContextStatus(cr); st != backend.StatusInvalidMatrix {
		t.Errorf("status = %v", st)
	}
}

func TestSourceIsBorrowed(t *testing.T) {
	e := New()
	_, cr := newCanvas(t, e, 1, 1)

	src := e.Source(cr)
	if e.PatternType(src) != backend.PatternTypeSolid {
		t.Fatalf("default source type = %v", e.PatternType(src))
	}
	r, g, b, a, _ := e.PatternRGBA(src)
	if r != 0 || g != 0 || b != 0 || a != 1 {
		t.Errorf("default source = %v %v %v %v, want opaque black", r, g, b, a)
	}
	if n := e.PatternReferenceCount(src); n != 1 {
		t.Errorf("Source() changed the count to %d", n)
	}
}

func TestContextKeepsTargetAlive(t *testing.T) {
	e := New()
	s := e.ImageSurfaceCreate(backend.FormatA8, 2, 2)
	cr := e.Create(s)
	e.SurfaceDestroy(s)

	if e.ContextTarget(cr) != s || e.SurfaceStatus(s) != backend.StatusSuccess {
		t.Fatal("context should hold its target")
	}
	e.ContextDestroy(cr)
	if e.Live() != 0 {
		t.Errorf("Live() = %d after destroying the context", e.Live())
	}
}

func TestDrawOnFinishedTarget(t *testing.T) {
	e := New()
	s, cr := newCanvas(t, e, 2, 2)
	e.SurfaceFinish(s)
	e.Paint(cr)
	if st := e.ContextStatus(cr); st != backend.StatusSurfaceFinished {
		t.Errorf("status = %v", st)
	}
	if st := e.ContextStatus(e.Create(s)); st != backend.StatusSurfaceFinished {
		t.Errorf("Create on finished surface = %v", st)
	}
}
