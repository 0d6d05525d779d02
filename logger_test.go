package cairo

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/cairo/backend"
)

func TestLoggerDefaultIsSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestSetLoggerShared(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(l)
	defer SetLogger(nil)

	if backend.Logger() != l {
		t.Fatal("backends do not share the logger")
	}

	_, opt := newEngine(t)
	var out bytes.Buffer
	s, err := NewSVGSurface(&out, 1, 1, opt)
	if err != nil {
		t.Fatal(err)
	}
	s.Finish()

	if !strings.Contains(buf.String(), "stream surface created") {
		t.Errorf("log output = %q", buf.String())
	}
}
