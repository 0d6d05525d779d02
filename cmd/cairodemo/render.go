package main

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/pgzip"

	"github.com/gogpu/cairo"
)

// countingWriter counts the bytes passed to w.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

var streamKinds = map[string]cairo.StreamKind{
	"pdf":    cairo.StreamPDF,
	"ps":     cairo.StreamPS,
	"svg":    cairo.StreamSVG,
	"script": cairo.StreamScript,
}

// renderTo renders the scene in cfg.Format to cfg.Output and returns the
// number of bytes written.
func renderTo(cfg config) (n int64, err error) {
	var out io.Writer = os.Stdout
	if cfg.Output != "-" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return 0, err
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		out = f
	}
	cw := &countingWriter{w: out}
	if err := render(cw, cfg); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// render writes the scene to w.
func render(w io.Writer, cfg config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Format == "png" {
		return renderPNG(w, cfg)
	}
	kind, ok := streamKinds[cfg.Format]
	if !ok {
		return fmt.Errorf("unknown format %q", cfg.Format)
	}

	if !cfg.Gzip {
		return cairo.WithStreamSurface(kind, w, float64(cfg.Width), float64(cfg.Height), func(s *cairo.Surface) error {
			return drawScene(s, cfg.Width, cfg.Height)
		})
	}

	zw := pgzip.NewWriter(w)
	err := cairo.WithStreamSurface(kind, zw, float64(cfg.Width), float64(cfg.Height), func(s *cairo.Surface) error {
		return drawScene(s, cfg.Width, cfg.Height)
	})
	if cerr := zw.Close(); err == nil {
		err = cerr
	}
	return err
}

func renderPNG(w io.Writer, cfg config) error {
	s, err := cairo.NewImageSurface(cairo.FormatARGB32, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer s.Release()
	if err := drawScene(s.Surface, cfg.Width, cfg.Height); err != nil {
		return err
	}
	return s.WriteToPNG(w)
}
