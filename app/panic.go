package app

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
)

// PanicError is a panic recovered while driving the panel.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// guard runs fn and turns a panic into a *PanicError. The stack is logged
// one frame line per record.
func guard(log *slog.Logger, fn func() error) (err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		pe := &PanicError{Value: v, Stack: debug.Stack()}
		log.Error("recovered panic", "panic", v)
		for _, line := range strings.Split(string(pe.Stack), "\n") {
			if line == "" {
				continue
			}
			log.Debug(strings.TrimSpace(line))
		}
		err = pe
	}()
	return fn()
}
