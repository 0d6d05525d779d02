//go:build !(cgo && libcairo)

package libcairo

import "github.com/gogpu/cairo/backend"

// init registers a nil-returning factory when the binding is compiled out,
// so backend.Get(backend.BackendLibcairo) returns nil gracefully.
func init() {
	backend.Register(backend.BackendLibcairo, func() backend.Backend {
		return nil
	})
}
