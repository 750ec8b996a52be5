// Package dbg is the out-of-band debug channel. It never shares a wire with
// the data UART.
package dbg

import (
	"fmt"
	"io"
	"sync"
	"time"

	"mcuctl-go/errcode"
)

// Logger writes tagged lines to a sink.
type Logger struct {
	mu  sync.Mutex
	w   io.Writer
	tag string
}

// New returns a logger for sink; a nil sink falls back to Default().
func New(sink io.Writer, tag string) *Logger {
	if sink == nil {
		sink = Default()
	}
	return &Logger{w: sink, tag: tag}
}

// With returns a logger sharing the sink under another tag.
func (l *Logger) With(tag string) *Logger { return &Logger{w: l.w, tag: tag} }

// Sink exposes the underlying writer, e.g. for the interrupt handler which
// writes preformatted lines.
func (l *Logger) Sink() io.Writer { return l.w }

func (l *Logger) Println(a ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.tag != "" {
		_, _ = io.WriteString(l.w, "["+l.tag+"] ")
	}
	_, _ = fmt.Fprintln(l.w, a...)
}

func (l *Logger) Printf(format string, a ...any) {
	s := fmt.Sprintf(format, a...)
	if n := len(s); n == 0 || s[n-1] != '\n' {
		s += "\n"
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.tag != "" {
		s = "[" + l.tag + "] " + s
	}
	_, _ = io.WriteString(l.w, s)
}

// Fault renders err as the single line reported before halting.
func Fault(err error) string {
	return "[fatal] " + errcode.ClassOf(err).String() + " " + string(errcode.Of(err)) + ": " + err.Error()
}

// Fatal reports err and halts. Nothing restarts the firmware afterwards.
func (l *Logger) Fatal(err error) {
	l.mu.Lock()
	_, _ = io.WriteString(l.w, Fault(err)+"\n")
	l.mu.Unlock()
	Halt()
}

// Halt parks the caller forever.
func Halt() {
	for {
		time.Sleep(time.Hour)
	}
}
