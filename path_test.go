package cairo

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/cairo/pathdata"
)

func newContext(t *testing.T, opt Option) (*ImageSurface, *Context) {
	t.Helper()
	s := newImage(t, opt, 16, 16)
	cr, err := NewContext(s.Surface)
	if err != nil {
		s.Release()
		t.Fatal(err)
	}
	t.Cleanup(func() {
		cr.Release()
		s.Release()
	})
	return s, cr
}

func TestCopyPathSegments(t *testing.T) {
	_, opt := newEngine(t)
	_, cr := newContext(t, opt)

	cr.MoveTo(0, 0)
	cr.LineTo(10, 10)
	cr.CurveTo(1, 1, 2, 2, 3, 3)
	cr.ClosePath()

	p, err := cr.CopyPath()
	if err != nil {
		t.Fatal(err)
	}
	defer p.Release()

	var got []PathSegment
	for seg := range p.Segments() {
		got = append(got, seg)
	}
	want := []PathSegment{
		{Type: PathMoveTo, Points: []Point{{X: 0, Y: 0}}},
		{Type: PathLineTo, Points: []Point{{X: 10, Y: 10}}},
		{Type: PathCurveTo, Points: []Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}},
		{Type: PathClosePath},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("segments =\n%v\nwant\n%v", got, want)
	}
	if len(p.Records()) != 9 {
		t.Errorf("records = %d, want 9", len(p.Records()))
	}
}

func TestEmptyPath(t *testing.T) {
	_, opt := newEngine(t)
	_, cr := newContext(t, opt)

	p, err := cr.CopyPath()
	if err != nil {
		t.Fatal(err)
	}
	defer p.Release()
	for seg := range p.Segments() {
		t.Errorf("unexpected segment %v", seg)
	}
}

func TestAppendPath(t *testing.T) {
	_, opt := newEngine(t)
	_, cr := newContext(t, opt)

	cr.Rectangle(1, 2, 3, 4)
	p, err := cr.CopyPath()
	if err != nil {
		t.Fatal(err)
	}
	defer p.Release()

	cr.NewPath()
	if err := cr.AppendPath(p); err != nil {
		t.Fatal(err)
	}
	if err := cr.AppendPath(p); err != nil {
		t.Fatal(err)
	}
	twice, err := cr.CopyPath()
	if err != nil {
		t.Fatal(err)
	}
	defer twice.Release()
	if got, want := len(twice.Records()), 2*len(p.Records()); got != want {
		t.Errorf("records = %d, want %d", got, want)
	}
}

func TestReleasedPath(t *testing.T) {
	_, opt := newEngine(t)
	_, cr := newContext(t, opt)
	cr.MoveTo(1, 1)

	p, err := cr.CopyPath()
	if err != nil {
		t.Fatal(err)
	}
	p.Release()
	p.Release()
	if p.Status() != StatusNullPointer || p.Records() != nil {
		t.Errorf("released path: status %v, %d records", p.Status(), len(p.Records()))
	}

	if err := cr.AppendPath(p); !errors.Is(err, StatusNullPointer) {
		t.Errorf("appending a released path: err = %v", err)
	}
}

func TestPathDecodeMatchesBuilder(t *testing.T) {
	var b pathdata.Builder
	b.MoveTo(0, 0)
	b.LineTo(10, 10)
	b.CurveTo(1, 1, 2, 2, 3, 3)
	b.ClosePath()

	_, opt := newEngine(t)
	_, cr := newContext(t, opt)
	cr.MoveTo(0, 0)
	cr.LineTo(10, 10)
	cr.CurveTo(1, 1, 2, 2, 3, 3)
	cr.ClosePath()
	p, err := cr.CopyPath()
	if err != nil {
		t.Fatal(err)
	}
	defer p.Release()

	if !reflect.DeepEqual(p.Records(), b.Records()) {
		t.Error("engine records differ from the builder's layout")
	}
}
