//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoHAL struct {
	logger *uartLogger
	panel  Panel
}

func (h *tinyGoHAL) Logger() Logger { return h.logger }
func (h *tinyGoHAL) Panel() Panel   { return h.panel }
func (h *tinyGoHAL) Clock() Clock   { return tinyGoClock{} }
func (h *tinyGoHAL) Close() error   { return h.panel.Close() }

// tinyGoClock reads the runtime clock. Without an RTC it starts at the
// build's epoch on every boot.
type tinyGoClock struct{}

func (tinyGoClock) Now() time.Time { return time.Now() }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}
