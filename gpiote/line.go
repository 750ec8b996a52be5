package gpiote

import (
	"sync/atomic"

	"mcuctl-go/errcode"
)

// Line is one interrupt controller input. It starts masked with no handler.
// A pend while masked stays latched until Unpend or until the line is
// unmasked.
type Line struct {
	name    string
	handler func()

	bound   atomic.Bool
	masked  atomic.Bool
	pending atomic.Bool
	served  atomic.Uint32
	closed  atomic.Bool

	kick chan struct{} // host delivery only
	done chan struct{}
}

func NewLine(name string) *Line {
	l := &Line{name: name, kick: make(chan struct{}, 1), done: make(chan struct{})}
	l.masked.Store(true)
	return l
}

func (l *Line) Name() string { return l.name }

// Bind installs the handler. Rebinding is rejected.
func (l *Line) Bind(handler func()) error {
	if handler == nil {
		return &errcode.E{C: errcode.InvalidParams, Op: "bind", Msg: l.name}
	}
	if !l.bound.CompareAndSwap(false, true) {
		return &errcode.E{C: errcode.AlreadyBound, Op: "bind", Msg: l.name}
	}
	l.handler = handler
	l.start()
	return nil
}

// Pend marks the line pending; delivered at once if unmasked.
func (l *Line) Pend() {
	l.pending.Store(true)
	if !l.masked.Load() {
		l.raise()
	}
}

func (l *Line) Unpend() { l.pending.Store(false) }

func (l *Line) Unmask() {
	l.masked.Store(false)
	if l.pending.Load() {
		l.raise()
	}
}

func (l *Line) Mask() { l.masked.Store(true) }

// Close masks the line for good and stops host delivery. Pends after Close
// are never served.
func (l *Line) Close() {
	l.Mask()
	if l.closed.CompareAndSwap(false, true) {
		close(l.done)
	}
}

func (l *Line) IsPending() bool { return l.pending.Load() }
func (l *Line) IsMasked() bool  { return l.masked.Load() }

// Served counts handler invocations.
func (l *Line) Served() uint32 { return l.served.Load() }

// take claims a pending interrupt for delivery.
func (l *Line) take() bool {
	if !l.bound.Load() || l.masked.Load() || l.closed.Load() {
		return false
	}
	return l.pending.CompareAndSwap(true, false)
}

func (l *Line) run() {
	l.served.Add(1)
	l.handler()
}
