//go:build !(rp2040 || rp2350)

package critical

import "sync"

// Host stand-in for PRIMASK: one global lock shared by the main goroutine and
// the goroutine that emulates interrupt delivery.
var mask sync.Mutex

type state struct{}

func disable() state {
	mask.Lock()
	return state{}
}

func restore(state) { mask.Unlock() }
