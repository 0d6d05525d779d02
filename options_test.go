package cairo

import (
	"errors"
	"testing"

	"github.com/gogpu/cairo/backend"
	"github.com/gogpu/cairo/backend/software"
)

func resetDefaultBackend(t *testing.T) {
	t.Helper()
	if err := SetDefaultBackend(""); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = SetDefaultBackend("") })
}

func TestSetDefaultBackend(t *testing.T) {
	resetDefaultBackend(t)

	if err := SetDefaultBackend("no-such-engine"); !errors.Is(err, backend.ErrBackendNotAvailable) {
		t.Errorf("unknown backend: err = %v", err)
	}
	if err := SetDefaultBackend(backend.BackendSoftware); err != nil {
		t.Fatal(err)
	}
	if b := DefaultBackend(); b != backend.Backend(software.Default()) {
		t.Errorf("DefaultBackend() = %v", b)
	}

	s, err := NewImageSurface(FormatA8, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Release()
	if s.Backend().Name() != backend.BackendSoftware {
		t.Errorf("surface created on %q", s.Backend().Name())
	}
}

func TestBackendFromEnvironment(t *testing.T) {
	resetDefaultBackend(t)
	t.Setenv(EnvBackend, backend.BackendSoftware)

	if b := DefaultBackend(); b == nil || b.Name() != backend.BackendSoftware {
		t.Errorf("DefaultBackend() = %v", b)
	}
}

func TestBackendFromEnvironmentUnknown(t *testing.T) {
	resetDefaultBackend(t)
	t.Setenv(EnvBackend, "no-such-engine")

	if b := DefaultBackend(); b == nil {
		t.Error("unknown CAIRO_BACKEND should fall back to the registry default")
	}
}

func TestWithBackend(t *testing.T) {
	e, opt := newEngine(t)
	p, err := NewSolidPatternRGB(0, 0, 0, opt)
	if err != nil {
		t.Fatal(err)
	}
	if e.Live() != 1 {
		t.Errorf("pattern not created on the selected engine")
	}
	p.Release()
}
