package main

import (
	"fmt"
	"io"

	"github.com/gogpu/cairo"
)

// drawScene paints the demo scene on s: a diagonal gradient background,
// a mesh patch and three translucent squares.
func drawScene(s *cairo.Surface, width, height int) error {
	cr, err := cairo.NewContext(s)
	if err != nil {
		return err
	}
	defer cr.Release()

	w, h := float64(width), float64(height)

	bg, err := cairo.NewLinearGradient(0, 0, w, h, cairo.WithBackend(s.Backend()))
	if err != nil {
		return err
	}
	bg.AddColorStopRGB(0, 0.10, 0.20, 0.40)
	bg.AddColorStopRGB(1, 0.50, 0.50, 0.60)
	err = cr.SetSource(bg)
	bg.Release()
	if err != nil {
		return err
	}
	if err := cr.Paint(); err != nil {
		return err
	}

	mesh, err := demoMesh(s, w, h)
	if err != nil {
		return err
	}
	err = cr.SetSource(mesh)
	mesh.Release()
	if err != nil {
		return err
	}
	cr.Rectangle(w/8, h/8, w/2, h/2)
	if err := cr.Fill(); err != nil {
		return err
	}

	colors := [][4]float64{{1, 0.3, 0.3, 0.8}, {0.3, 1, 0.3, 0.8}, {0.3, 0.3, 1, 0.8}}
	for i, c := range colors {
		cr.SetSourceRGBA(c[0], c[1], c[2], c[3])
		off := float64(i+2) * w / 8
		cr.Rectangle(off, off, w/5, h/5)
		if err := cr.Fill(); err != nil {
			return err
		}
	}
	return cr.ShowPage()
}

// demoMesh returns a single-patch mesh covering the upper left quadrant.
func demoMesh(s *cairo.Surface, w, h float64) (*cairo.Mesh, error) {
	m, err := cairo.NewMesh(cairo.WithBackend(s.Backend()))
	if err != nil {
		return nil, err
	}
	steps := []func() error{
		m.BeginPatch,
		func() error { return m.MoveTo(w/8, h/8) },
		func() error { return m.CurveTo(w/4, 0, w/2, h/4, w*5/8, h/8) },
		func() error { return m.LineTo(w*5/8, h*5/8) },
		func() error { return m.LineTo(w/8, h*5/8) },
		func() error { return m.SetCornerColorRGB(cairo.MeshCorner0, 1, 0, 0) },
		func() error { return m.SetCornerColorRGB(cairo.MeshCorner1, 0, 1, 0) },
		func() error { return m.SetCornerColorRGB(cairo.MeshCorner2, 0, 0, 1) },
		func() error { return m.SetCornerColorRGBA(cairo.MeshCorner3, 1, 1, 0, 0.5) },
		m.EndPatch,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			m.Release()
			return nil, err
		}
	}
	return m, nil
}

// printMeshPath writes the decoded outline of the demo mesh patch.
func printMeshPath(out io.Writer) error {
	s, err := cairo.NewImageSurface(cairo.FormatARGB32, 1, 1)
	if err != nil {
		return err
	}
	defer s.Release()

	m, err := demoMesh(s.Surface, 256, 256)
	if err != nil {
		return err
	}
	defer m.Release()

	path, err := m.Path(0)
	if err != nil {
		return err
	}
	defer path.Release()

	for seg := range path.Segments() {
		fmt.Fprintf(out, "%-8s", seg.Type)
		for _, p := range seg.Points {
			fmt.Fprintf(out, " (%g, %g)", p.X, p.Y)
		}
		fmt.Fprintln(out)
	}
	return nil
}
