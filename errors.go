package cairo

import (
	"errors"
	"fmt"

	"github.com/gogpu/cairo/backend"
)

// Sentinel errors.
var (
	// ErrNonExclusive is returned by ImageSurface.Data when the surface has
	// another owner or an outstanding borrow.
	ErrNonExclusive = errors.New("cairo: surface is not exclusively owned")

	// ErrSurfaceFinished is returned when pixel storage was requested from a
	// surface that no longer has any.
	ErrSurfaceFinished = errors.New("cairo: surface has been finished")

	// ErrUnsupportedPattern matches *UnsupportedPatternError.
	ErrUnsupportedPattern = errors.New("cairo: unsupported pattern type")

	ErrBufferTooSmall  = errors.New("cairo: pixel buffer shorter than height*stride")
	ErrNotSupported    = errors.New("cairo: operation not supported")
	ErrBackendMismatch = errors.New("cairo: objects belong to different backends")
)

// StatusError reports a non-success engine status observed after Op.
type StatusError struct {
	Op     string
	Status Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cairo: %s: %s", e.Op, e.Status)
}

// Unwrap returns the engine status, so errors.Is(err, StatusWriteError)
// works on wrapped errors.
func (e *StatusError) Unwrap() error {
	return e.Status
}

// UnsupportedPatternError is returned when the engine hands back a pattern
// kind this package has no wrapper for, such as a raster source.
type UnsupportedPatternError struct {
	Type PatternType
}

func (e *UnsupportedPatternError) Error() string {
	return fmt.Sprintf("cairo: unsupported pattern type %s", e.Type)
}

// Is reports whether target is ErrUnsupportedPattern.
func (e *UnsupportedPatternError) Is(target error) bool {
	return target == ErrUnsupportedPattern
}

// statusErr converts st into an error, nil on success.
func statusErr(op string, st backend.Status) error {
	if st == backend.StatusSuccess {
		return nil
	}
	return &StatusError{Op: op, Status: st}
}
