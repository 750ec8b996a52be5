// internal/platform/board.go
package platform

import (
	"io"
	"sync/atomic"

	"mcuctl-go/errcode"
	"mcuctl-go/internal/halcore"
	"mcuctl-go/types"

	"tinygo.org/x/drivers"
)

// BoardConfig selects the peripherals Take wires up.
type BoardConfig struct {
	Serial    types.SerialConfig
	ButtonPin int
}

// Board owns the peripherals used by the firmware. There is one per process.
type Board struct {
	Serial  drivers.UART
	ButtonA halcore.IRQPin
	Debug   io.Writer
}

var taken atomic.Bool

// Take hands out the board once. Later calls fail with resource_taken.
func Take(cfg BoardConfig) (*Board, error) {
	if !taken.CompareAndSwap(false, true) {
		return nil, &errcode.E{C: errcode.ResourceTaken, Op: "take", Msg: "board already taken"}
	}
	b, err := newBoard(cfg)
	if err != nil {
		taken.Store(false)
		return nil, err
	}
	return b, nil
}

// Release returns the board so that Take succeeds again. Firmware never
// calls it; tests that boot more than once do.
func Release() { taken.Store(false) }
