package cairo

import (
	"errors"
	"testing"
)

func buildSquare(t *testing.T, m *Mesh) {
	t.Helper()
	steps := []func() error{
		m.BeginPatch,
		func() error { return m.MoveTo(0, 0) },
		func() error { return m.LineTo(90, 0) },
		func() error { return m.LineTo(90, 90) },
		func() error { return m.LineTo(0, 90) },
		func() error { return m.SetCornerColorRGB(MeshCorner0, 1, 0, 0) },
		func() error { return m.SetCornerColorRGBA(MeshCorner1, 0, 1, 0, 0.5) },
		m.EndPatch,
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
}

func TestMesh(t *testing.T) {
	_, opt := newEngine(t)
	m, err := NewMesh(opt)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Release()
	buildSquare(t, m)

	n, err := m.PatchCount()
	if err != nil || n != 1 {
		t.Fatalf("PatchCount() = %d, %v", n, err)
	}

	x, y, err := m.ControlPoint(0, MeshCorner2)
	if err != nil || x != 60 || y != 60 {
		t.Errorf("ControlPoint(0, 2) = (%v, %v), %v", x, y, err)
	}
	_, g, _, a, err := m.CornerColorRGBA(0, MeshCorner1)
	if err != nil || g != 1 || a != 0.5 {
		t.Errorf("corner 1 = g %v a %v, %v", g, a, err)
	}
	if _, _, err := m.ControlPoint(1, MeshCorner0); !errors.Is(err, StatusInvalidIndex) {
		t.Errorf("patch out of range: err = %v", err)
	}

	path, err := m.Path(0)
	if err != nil {
		t.Fatal(err)
	}
	defer path.Release()

	var types []PathDataType
	for seg := range path.Segments() {
		types = append(types, seg.Type)
	}
	want := []PathDataType{PathMoveTo, PathCurveTo, PathCurveTo, PathCurveTo, PathCurveTo}
	if len(types) != len(want) {
		t.Fatalf("segments = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("segment %d = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestMeshConstructionError(t *testing.T) {
	_, opt := newEngine(t)
	m, err := NewMesh(opt)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Release()

	if err := m.EndPatch(); !errors.Is(err, StatusInvalidMeshConstruction) {
		t.Fatalf("EndPatch without BeginPatch: err = %v", err)
	}
	// The status is sticky.
	if err := m.BeginPatch(); !errors.Is(err, StatusInvalidMeshConstruction) {
		t.Errorf("BeginPatch after failure: err = %v", err)
	}
	if _, err := m.PatchCount(); err == nil {
		t.Error("PatchCount on a failed mesh should report the status")
	}
}

func TestMeshSetControlPointIndex(t *testing.T) {
	_, opt := newEngine(t)
	m, err := NewMesh(opt)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Release()

	if err := m.BeginPatch(); err != nil {
		t.Fatal(err)
	}
	if err := m.SetControlPoint(MeshCorner(4), 0, 0); !errors.Is(err, StatusInvalidIndex) {
		t.Errorf("err = %v", err)
	}
}

func TestPaintMesh(t *testing.T) {
	_, opt := newEngine(t)
	img := newImage(t, opt, 90, 90)
	defer img.Release()
	m, err := NewMesh(opt)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Release()
	buildSquare(t, m)

	cr, err := NewContext(img.Surface)
	if err != nil {
		t.Fatal(err)
	}
	defer cr.Release()
	if err := cr.SetSource(m); err != nil {
		t.Fatal(err)
	}
	if err := cr.Paint(); err != nil {
		t.Fatal(err)
	}
	// The context holds a reference to img, which blocks the borrow.
	cr.Release()

	snap, err := img.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if c := snap.RGBAAt(1, 1); c.R < 0x80 || c.A < 0x80 {
		t.Errorf("pixel near red corner = %v", c)
	}
}
