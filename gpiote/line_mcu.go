//go:build rp2040 || rp2350

package gpiote

import "runtime/interrupt"

func (l *Line) start() {}

// raise delivers from interrupt context only. A pend left over when the main
// context unmasks stays latched and is served with the next edge, unless it
// is cleared by Unpend first.
func (l *Line) raise() {
	if !interrupt.In() {
		return
	}
	if l.take() {
		l.run()
	}
}
