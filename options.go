package cairo

import (
	"os"
	"sync"

	"github.com/gogpu/cairo/backend"

	// Engines register themselves with the backend registry.
	_ "github.com/gogpu/cairo/backend/libcairo"
	_ "github.com/gogpu/cairo/backend/software"
)

// EnvBackend names the environment variable that selects the default
// backend when SetDefaultBackend has not been called.
const EnvBackend = "CAIRO_BACKEND"

// Option configures object creation.
//
// Example:
//
//	// Default engine (libcairo when built with -tags libcairo)
//	s, err := cairo.NewImageSurface(cairo.FormatARGB32, 64, 64)
//
//	// Explicit engine
//	s, err := cairo.NewImageSurface(cairo.FormatARGB32, 64, 64,
//	    cairo.WithBackend(software.New()))
type Option func(*options)

type options struct {
	backend backend.Backend
}

// WithBackend creates the object on b instead of the default backend.
// Objects from different backends cannot be combined.
func WithBackend(b backend.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

var (
	defaultMu      sync.Mutex
	defaultBackend backend.Backend
)

// SetDefaultBackend selects the registered backend used when no
// WithBackend option is given. An empty name restores automatic selection.
func SetDefaultBackend(name string) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if name == "" {
		defaultBackend = nil
		return nil
	}
	b, err := backend.Select(name)
	if err != nil {
		return err
	}
	defaultBackend = b
	Logger().Debug("cairo: default backend set", "backend", b.Name())
	return nil
}

// DefaultBackend returns the backend used when no WithBackend option is
// given. The first call honours CAIRO_BACKEND; otherwise the registry's
// priority order applies. It returns nil if no backend is available.
func DefaultBackend() backend.Backend {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultBackend != nil {
		return defaultBackend
	}
	name := os.Getenv(EnvBackend)
	b, err := backend.Select(name)
	if err != nil {
		Logger().Warn("cairo: requested backend unavailable, using default",
			"backend", name, "err", err)
		b = backend.Default()
	}
	if b == nil {
		return nil
	}
	defaultBackend = b
	Logger().Debug("cairo: backend selected", "backend", b.Name())
	return b
}

func resolve(opts []Option) (backend.Backend, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.backend != nil {
		return o.backend, nil
	}
	if b := DefaultBackend(); b != nil {
		return b, nil
	}
	return nil, backend.ErrBackendNotAvailable
}
