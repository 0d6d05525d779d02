package backend

import (
	"errors"
	"sort"
	"sync"
)

// Backend names.
const (
	// BackendLibcairo binds the system cairo library through cgo.
	BackendLibcairo = "libcairo"

	// BackendSoftware is the pure-Go engine, always available.
	BackendSoftware = "software"
)

// ErrBackendNotAvailable is returned when no backend can be selected.
var ErrBackendNotAvailable = errors.New("backend: no backend available")

// Factory creates a backend instance. A factory may return nil when the
// backend was compiled out or cannot run on this host.
type Factory func() Backend

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for backend selection (first available wins).
	// The system library is preferred; the software engine is the fallback.
	backendPriority = []string{BackendLibcairo, BackendSoftware}
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it will be replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the sorted names of registered backends whose factory
// produces an instance.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name, factory := range backends {
		if factory != nil && factory() != nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get returns a backend instance by name.
// Returns nil if the backend is not registered or unavailable.
func Get(name string) Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := backends[name]
	if !ok || factory == nil {
		return nil
	}
	return factory()
}

// Default returns the best available backend based on priority.
// Returns nil if no backends are registered.
func Default() Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if factory, ok := backends[name]; ok && factory != nil {
			if b := factory(); b != nil {
				return b
			}
		}
	}

	// Fallback: first available in name order, so the choice is stable.
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if factory := backends[name]; factory != nil {
			if b := factory(); b != nil {
				return b
			}
		}
	}

	return nil
}

// MustDefault returns the default backend or panics.
func MustDefault() Backend {
	b := Default()
	if b == nil {
		panic(ErrBackendNotAvailable)
	}
	return b
}

// Select returns the backend named name, or the default backend when name
// is empty.
func Select(name string) (Backend, error) {
	if name == "" {
		if b := Default(); b != nil {
			return b, nil
		}
		return nil, ErrBackendNotAvailable
	}
	if b := Get(name); b != nil {
		return b, nil
	}
	return nil, ErrBackendNotAvailable
}
