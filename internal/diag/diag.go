// Package diag improves the messages produced when a host-facing call
// panics. Init is a one-time, process-wide setup; Guard wraps individual
// calls.
package diag

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
)

var once sync.Once

// Init enables full goroutine tracebacks for fatal panics. Only the first
// call has any effect; it reports whether this call performed the setup.
func Init(log *slog.Logger) bool {
	first := false
	once.Do(func() {
		debug.SetTraceback("all")
		first = true
		if log != nil {
			log.Debug("panic diagnostics installed")
		}
	})
	return first
}

// Guard runs fn. If fn panics, the panic value and stack are logged under op
// and the panic is re-raised so the host still fails loudly.
func Guard(log *slog.Logger, op string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if log != nil {
				log.Error("panic", "op", op, "value", fmt.Sprint(r), "stack", string(debug.Stack()))
			}
			panic(r)
		}
	}()
	fn()
}
