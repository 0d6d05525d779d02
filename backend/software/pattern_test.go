package software

import (
	"testing"

	"github.com/gogpu/cairo/backend"
)

func TestSolidPattern(t *testing.T) {
	e := New()
	p := e.PatternCreateRGBA(0.25, 2, -1, 0.5)
	defer e.PatternDestroy(p)

	if e.PatternType(p) != backend.PatternTypeSolid {
		t.Fatalf("type = %v", e.PatternType(p))
	}
	r, g, b, a, st := e.PatternRGBA(p)
	if st != backend.StatusSuccess || r != 0.25 || g != 1 || b != 0 || a != 0.5 {
		t.Errorf("PatternRGBA = %v %v %v %v %v", r, g, b, a, st)
	}
	if _, _, _, _, st := e.PatternLinearPoints(p); st != backend.StatusPatternTypeMismatch {
		t.Errorf("LinearPoints on solid = %v", st)
	}
}

func TestColorStopsSorted(t *testing.T) {
	e := New()
	p := e.PatternCreateLinear(0, 0, 10, 0)
	defer e.PatternDestroy(p)

	e.PatternAddColorStopRGBA(p, 1, 0, 0, 1, 1)
	e.PatternAddColorStopRGBA(p, 0, 1, 0, 0, 1)
	e.PatternAddColorStopRGBA(p, 0.5, 0, 1, 0, 1)
	e.PatternAddColorStopRGBA(p, 0.5, 0, 0, 0, 1)
	e.PatternAddColorStopRGBA(p, 3, 1, 1, 1, 1)

	n, st := e.PatternColorStopCount(p)
	if st != backend.StatusSuccess || n != 5 {
		t.Fatalf("count = %d, %v", n, st)
	}

	want := []struct{ off, r, g, b float64 }{
		{0, 1, 0, 0},
		{0.5, 0, 1, 0},
		{0.5, 0, 0, 0},
		{1, 0, 0, 1},
		{1, 1, 1, 1},
	}
	for i, w := range want {
		off, r, g, b, _, st := e.PatternColorStopRGBA(p, i)
		if st != backend.StatusSuccess || off != w.off || r != w.r || g != w.g || b != w.b {
			t.Errorf("stop %d = (%v %v %v %v) %v, want %+v", i, off, r, g, b, st, w)
		}
	}
	if _, _, _, _, _, st := e.PatternColorStopRGBA(p, 5); st != backend.StatusInvalidIndex {
		t.Errorf("out of range stop = %v", st)
	}
}

func TestAddColorStopTypeMismatch(t *testing.T) {
	e := New()
	p := e.PatternCreateRGBA(0, 0, 0, 1)
	defer e.PatternDestroy(p)

	e.PatternAddColorStopRGBA(p, 0, 1, 1, 1, 1)
	if st := e.PatternStatus(p); st != backend.StatusPatternTypeMismatch {
		t.Errorf("status = %v", st)
	}
	// Sticky: later valid calls do not clear it.
	e.PatternSetExtend(p, backend.ExtendPad)
	if st := e.PatternStatus(p); st != backend.StatusPatternTypeMismatch {
		t.Errorf("status after later call = %v", st)
	}
}

func TestRadialPattern(t *testing.T) {
	e := New()
	p := e.PatternCreateRadial(1, 2, 3, 4, 5, 6)
	defer e.PatternDestroy(p)

	cx0, cy0, r0, cx1, cy1, r1, st := e.PatternRadialCircles(p)
	if st != backend.StatusSuccess || cx0 != 1 || cy0 != 2 || r0 != 3 || cx1 != 4 || cy1 != 5 || r1 != 6 {
		t.Errorf("RadialCircles = %v %v %v %v %v %v %v", cx0, cy0, r0, cx1, cy1, r1, st)
	}
	if e.PatternExtend(p) != backend.ExtendPad {
		t.Errorf("default extend = %v", e.PatternExtend(p))
	}

	bad := e.PatternCreateRadial(0, 0, -1, 0, 0, 1)
	if st := e.PatternStatus(bad); st != backend.StatusInvalidSize {
		t.Errorf("negative radius = %v", st)
	}
}

func TestPatternMatrix(t *testing.T) {
	e := New()
	p := e.PatternCreateLinear(0, 0, 1, 1)
	defer e.PatternDestroy(p)

	m := backend.Identity().Translate(3, 4)
	e.PatternSetMatrix(p, m)
	if got := e.PatternMatrix(p); got != m {
		t.Errorf("matrix = %+v", got)
	}

	e.PatternSetMatrix(p, backend.Matrix{})
	if st := e.PatternStatus(p); st != backend.StatusInvalidMatrix {
		t.Errorf("singular matrix gave %v", st)
	}
}

func TestSurfacePatternHoldsReference(t *testing.T) {
	e := New()
	s := e.ImageSurfaceCreate(backend.FormatARGB32, 1, 1)
	p := e.PatternCreateForSurface(s)

	if got := e.SurfaceReferenceCount(s); got != 2 {
		t.Fatalf("surface count = %d, want 2", got)
	}
	got, st := e.PatternSurface(p)
	if st != backend.StatusSuccess || got != s {
		t.Errorf("PatternSurface = %v, %v", got, st)
	}
	if e.PatternExtend(p) != backend.ExtendNone {
		t.Errorf("surface pattern extend = %v", e.PatternExtend(p))
	}

	e.SurfaceDestroy(s)
	if e.SurfaceStatus(s) != backend.StatusSuccess {
		t.Fatal("pattern should keep the surface alive")
	}
	e.PatternDestroy(p)
	if e.Live() != 0 {
		t.Errorf("Live() = %d after destroying pattern", e.Live())
	}
}

func TestPatternForErrorSurface(t *testing.T) {
	e := New()
	p := e.PatternCreateForSurface(e.ImageSurfaceCreate(backend.FormatInvalid, 1, 1))
	if st := e.PatternStatus(p); st != backend.StatusInvalidFormat {
		t.Errorf("status = %v", st)
	}
	if st := e.PatternStatus(e.PatternCreateForSurface(0)); st != backend.StatusNullPointer {
		t.Errorf("nil surface gave %v", st)
	}
}

func TestRasterSourcePattern(t *testing.T) {
	e := New()
	p := e.PatternCreateRasterSource(backend.ContentColorAlpha, 1, 1)
	defer e.PatternDestroy(p)
	if e.PatternType(p) != backend.PatternTypeRasterSource {
		t.Errorf("type = %v", e.PatternType(p))
	}
}
