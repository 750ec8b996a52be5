//go:build !(rp2040 || rp2350)

package gpiote

import "mcuctl-go/critical"

// The host has no NVIC. A per-line goroutine plays the interrupt context: it
// can only claim the pend once no critical section is held, so an Unpend
// issued inside the same section as Unmask suppresses delivery. The goroutine
// exits on Close.
func (l *Line) start() {
	go func() {
		for {
			select {
			case <-l.done:
				return
			case <-l.kick:
			}
			var fire bool
			critical.Do(func(critical.Token) { fire = l.take() })
			if fire {
				l.run()
			}
		}
	}()
}

func (l *Line) raise() {
	select {
	case l.kick <- struct{}{}:
	default:
	}
}
