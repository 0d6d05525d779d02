// Package stream bridges engine write callbacks to Go writers.
//
// The engine only carries an integer closure value between a stream
// surface and its callback. Each surface registers an Env, receives a key,
// and passes Trampoline with that key to the engine. The Env stays in the
// table until the surface is destroyed, so the key is valid for every
// callback the engine can make.
package stream

import (
	"io"
	"sync"

	"github.com/gogpu/cairo/backend"
)

// Env is the callback environment of one stream surface: the sink and the
// first error the sink reported.
type Env struct {
	mu   sync.Mutex
	sink io.Writer
	err  error
}

// NewEnv returns an environment writing to w.
func NewEnv(w io.Writer) *Env {
	return &Env{sink: w}
}

// Write forwards one chunk to the sink. The first failure is stored and
// later chunks are refused; a short write counts as a failure.
func (e *Env) Write(data []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.err != nil {
		return e.err
	}
	n, err := e.sink.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		e.err = err
	}
	return err
}

// Sink returns the writer the environment forwards to.
func (e *Env) Sink() io.Writer {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sink
}

// Err returns the stored error without clearing it.
func (e *Env) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

// TakeErr returns the stored error and clears it. The engine's surface
// status stays in the write-error state regardless.
func (e *Env) TakeErr() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	err := e.err
	e.err = nil
	return err
}

// Detach returns the sink and drops the environment's reference to it.
// Chunks arriving afterwards fail with io.ErrClosedPipe.
func (e *Env) Detach() io.Writer {
	e.mu.Lock()
	defer e.mu.Unlock()
	w := e.sink
	e.sink = closedSink{}
	return w
}

type closedSink struct{}

func (closedSink) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

var (
	tableMu sync.RWMutex
	table   = make(map[uintptr]*Env)
	nextKey uintptr
)

// Register stores e and returns the closure key to pass to the engine.
// Keys are never zero and never reused within a process.
func Register(e *Env) uintptr {
	tableMu.Lock()
	defer tableMu.Unlock()
	nextKey++
	table[nextKey] = e
	return nextKey
}

// Lookup returns the environment registered under key.
func Lookup(key uintptr) (*Env, bool) {
	tableMu.RLock()
	defer tableMu.RUnlock()
	e, ok := table[key]
	return e, ok
}

// Unregister removes key from the table.
func Unregister(key uintptr) {
	tableMu.Lock()
	defer tableMu.Unlock()
	delete(table, key)
}

// Len returns the number of registered environments.
func Len() int {
	tableMu.RLock()
	defer tableMu.RUnlock()
	return len(table)
}

// Trampoline is the single backend.WriteFunc used for every stream
// surface. It resolves closure to its Env and forwards data.
func Trampoline(closure uintptr, data []byte) backend.Status {
	e, ok := Lookup(closure)
	if !ok {
		backend.Logger().Warn("stream: write for unknown closure", "closure", closure)
		return backend.StatusWriteError
	}
	if err := e.Write(data); err != nil {
		backend.Logger().Warn("stream: sink write failed", "closure", closure, "err", err)
		return backend.StatusWriteError
	}
	return backend.StatusSuccess
}

var _ backend.WriteFunc = Trampoline
