// Package linebuf is a fixed-capacity byte accumulator for one line of input.
package linebuf

import (
	"io"
	"iter"

	"mcuctl-go/errcode"
)

// DefaultCapacity is the longest line accepted on the serial link.
const DefaultCapacity = 32

// Order selects the traversal direction.
type Order uint8

const (
	Forward Order = iota
	Reverse
)

// Buffer never grows past its capacity. Storage is allocated once.
type Buffer struct {
	buf []byte
}

// New returns an empty buffer; capacity below 1 is raised to 1.
func New(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Push appends b, or returns errcode.BufferFull leaving the contents as they
// were.
func (l *Buffer) Push(b byte) error {
	if len(l.buf) == cap(l.buf) {
		return errcode.BufferFull
	}
	l.buf = append(l.buf, b)
	return nil
}

// Clear empties the buffer and keeps its storage.
func (l *Buffer) Clear() { l.buf = l.buf[:0] }

func (l *Buffer) Len() int    { return len(l.buf) }
func (l *Buffer) Cap() int    { return cap(l.buf) }
func (l *Buffer) Full() bool  { return len(l.buf) == cap(l.buf) }
func (l *Buffer) Empty() bool { return len(l.buf) == 0 }

// Bytes returns a copy of the contents.
func (l *Buffer) Bytes() []byte { return append([]byte(nil), l.buf...) }

// All yields the contents in the given order. The sequence can be ranged over
// any number of times and never mutates the buffer.
func (l *Buffer) All(order Order) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		n := len(l.buf)
		for i := 0; i < n; i++ {
			j := i
			if order == Reverse {
				j = n - 1 - i
			}
			if !yield(l.buf[j]) {
				return
			}
		}
	}
}

// Emit writes the contents through w in the given order, stopping at the
// first error.
func (l *Buffer) Emit(w io.ByteWriter, order Order) error {
	for b := range l.All(order) {
		if err := w.WriteByte(b); err != nil {
			return err
		}
	}
	return nil
}
