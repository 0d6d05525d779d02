// Package libcairo binds the system cairo library as a backend.
//
// The binding is compiled only with cgo and the libcairo build tag:
//
//	go build -tags libcairo ./...
//
// Without the tag the package still registers itself, but its factory
// returns nil so backend.Default falls through to the software engine.
//
// Engine objects are identified by their C addresses. The zero Ptr maps to
// cairo's static nil objects, so every operation accepts it. Write
// callbacks cross the boundary through a single exported trampoline keyed
// by an integer, never through Go pointers stored in C.
package libcairo
