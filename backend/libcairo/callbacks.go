//go:build cgo && libcairo

package libcairo

/*
#include <cairo.h>
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/gogpu/cairo/backend"
)

type writer struct {
	fn      backend.WriteFunc
	closure uintptr
}

var (
	callbackMu sync.RWMutex
	writers    = make(map[uintptr]writer)
	notifiers  = make(map[uintptr]func())
	nextWriter uintptr
)

func registerWriter(fn backend.WriteFunc, closure uintptr) uintptr {
	callbackMu.Lock()
	defer callbackMu.Unlock()
	nextWriter++
	writers[nextWriter] = writer{fn: fn, closure: closure}
	return nextWriter
}

func unregisterWriter(key uintptr) {
	callbackMu.Lock()
	defer callbackMu.Unlock()
	delete(writers, key)
}

func writerCount() int {
	callbackMu.RLock()
	defer callbackMu.RUnlock()
	return len(writers)
}

func registerNotifier(token uintptr, fn func()) {
	callbackMu.Lock()
	defer callbackMu.Unlock()
	notifiers[token] = fn
}

//export goWriteFunc
func goWriteFunc(closure unsafe.Pointer, data *C.uchar, length C.uint) C.cairo_status_t {
	callbackMu.RLock()
	w, ok := writers[uintptr(closure)]
	callbackMu.RUnlock()
	if !ok {
		return C.CAIRO_STATUS_WRITE_ERROR
	}
	var chunk []byte
	if length > 0 {
		chunk = unsafe.Slice((*byte)(unsafe.Pointer(data)), int(length))
	}
	return C.cairo_status_t(w.fn(w.closure, chunk))
}

//export goDestroyNotify
func goDestroyNotify(token unsafe.Pointer) {
	callbackMu.Lock()
	fn := notifiers[uintptr(token)]
	delete(notifiers, uintptr(token))
	callbackMu.Unlock()
	if fn != nil {
		fn()
	}
}
