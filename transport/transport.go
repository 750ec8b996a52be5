// Package transport turns a non-blocking serial peripheral into blocking,
// byte-oriented reads and writes.
package transport

import (
	"errors"
	"fmt"
	"runtime"

	"mcuctl-go/errcode"
)

// ErrWouldBlock is returned by a Serial poll that is not ready yet.
var ErrWouldBlock = errors.New("would block")

// Serial is the poll-style view of a UART. Each call returns at once:
// ErrWouldBlock means "not ready", any other error is a line fault.
type Serial interface {
	TryReadByte() (byte, error)
	TryWriteByte(b byte) error
	TryFlush() error
}

// Transport spins on a Serial until each operation completes. It holds no
// buffer of its own and is owned by the main loop.
type Transport struct {
	s     Serial
	yield func()
}

type Option func(*Transport)

// WithYield replaces the hook called between polls. The default hands the
// CPU to other goroutines, so a spin is also a scheduler suspension point.
func WithYield(fn func()) Option {
	return func(t *Transport) {
		if fn != nil {
			t.yield = fn
		}
	}
}

func New(s Serial, opts ...Option) *Transport {
	t := &Transport{s: s, yield: runtime.Gosched}
	for _, o := range opts {
		o(t)
	}
	return t
}

// ReadByte blocks until a byte arrives.
func (t *Transport) ReadByte() (byte, error) {
	for {
		b, err := t.s.TryReadByte()
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, ErrWouldBlock) {
			return 0, fault("read", err)
		}
		t.yield()
	}
}

// WriteByte blocks until the transmitter accepts b.
func (t *Transport) WriteByte(b byte) error {
	for {
		err := t.s.TryWriteByte(b)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrWouldBlock) {
			return fault("write", err)
		}
		t.yield()
	}
}

// Write sends p in order and stops at the first failing byte.
func (t *Transport) Write(p []byte) (int, error) {
	for i, b := range p {
		if err := t.WriteByte(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

func (t *Transport) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if err := t.WriteByte(s[i]); err != nil {
			return i, err
		}
	}
	return len(s), nil
}

// Flush blocks until everything queued has left the transmitter.
func (t *Transport) Flush() error {
	for {
		err := t.s.TryFlush()
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrWouldBlock) {
			return fault("flush", err)
		}
		t.yield()
	}
}

// Printf formats onto the wire through Write.
func (t *Transport) Printf(format string, a ...any) error {
	_, err := fmt.Fprintf(t, format, a...)
	return err
}

func fault(op string, err error) error {
	return errcode.Wrap(errcode.MapDriverErr(err), op, err)
}
