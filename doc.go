// Package cairo provides memory-safe Go bindings over a cairo rendering
// engine.
//
// # Overview
//
// Engine objects (surfaces, patterns, contexts, paths) are reference
// counted by the engine. Every Go wrapper owns exactly one reference: Clone
// adds one, Release drops it, and the engine frees the object when the last
// one goes. Wrappers that are never released are released by the garbage
// collector and reported through the logger.
//
// # Quick Start
//
//	import "github.com/gogpu/cairo"
//
//	s, err := cairo.NewImageSurface(cairo.FormatARGB32, 256, 256)
//	if err != nil {
//		return err
//	}
//	defer s.Release()
//
//	cr, err := cairo.NewContext(s.Surface)
//	if err != nil {
//		return err
//	}
//	defer cr.Release()
//
//	cr.SetSourceRGB(1, 0, 0)
//	cr.Rectangle(64, 64, 128, 128)
//	if err := cr.Fill(); err != nil {
//		return err
//	}
//	return s.WriteToPNG(f)
//
// # Errors
//
// The engine reports failures through a sticky status on the object rather
// than through return values. Constructors check it and return a
// *StatusError; mutating calls expose it through Err. Writer errors from
// stream surfaces are kept out of band and read with IOError.
//
// # Backends
//
// Objects are created on a backend (see package backend). The libcairo
// backend binds the system library and is compiled with -tags libcairo; the
// software backend is a pure Go engine and is always available. Select one
// with WithBackend, SetDefaultBackend or the CAIRO_BACKEND environment
// variable.
//
// # Pixel access
//
// ImageSurface.Data borrows the pixel storage of a surface that has no
// other owner. Writes are announced to the engine when the borrow is
// closed.
package cairo
