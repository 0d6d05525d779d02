package cairo

import (
	"testing"

	"github.com/gogpu/cairo/backend/software"
)

// newEngine returns a private software engine and the option selecting it.
// The test fails if any engine object outlives it.
func newEngine(t *testing.T) (*software.Engine, Option) {
	t.Helper()
	e := software.New()
	t.Cleanup(func() {
		if n := e.Live(); n != 0 {
			t.Errorf("%d engine objects still alive", n)
		}
	})
	return e, WithBackend(e)
}

func newImage(t *testing.T, opt Option, w, h int) *ImageSurface {
	t.Helper()
	s, err := NewImageSurface(FormatARGB32, w, h, opt)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	return s
}
