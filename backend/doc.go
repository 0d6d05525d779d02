// Package backend defines the native drawing engine contract used by the
// cairo package.
//
// An engine is an operation table over opaque object identifiers ([Ptr]).
// Objects are reference counted, report failures through a sticky
// [Status], and accept the zero Ptr everywhere. The layout of the engine's
// path records is shared through the pathdata package.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime:
//
//	import _ "github.com/gogpu/cairo/backend/software"
//
// The libcairo backend binds the system library through cgo and is only
// compiled with the libcairo build tag; without it the package registers
// a factory that reports itself unavailable.
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	b := backend.Default()
//	b := backend.Get(backend.BackendSoftware)
//
// # Available Backends
//
//   - "libcairo": the system cairo library (build tag libcairo)
//   - "software": pure-Go engine rendering through gogpu/gg
package backend
