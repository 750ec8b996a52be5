// internal/platform/factories_rp2xxx.go
//go:build rp2040 || rp2350

package platform

import (
	"machine"

	"mcuctl-go/errcode"
	"mcuctl-go/internal/halcore"
	"mcuctl-go/types"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

// newBoard configures uart0 on its default pins and a user GPIO for the
// button. Debug output goes to USB CDC.
func newBoard(cfg BoardConfig) (*Board, error) {
	// Constrain to RP2's user GPIOs (GP0..GP28).
	if cfg.ButtonPin < 0 || cfg.ButtonPin > 28 {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "take", Msg: "button pin"}
	}

	hw := uartx.UART0
	if err := hw.Configure(uartx.UARTConfig{
		BaudRate: cfg.Serial.Baud,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	}); err != nil {
		return nil, errcode.Wrap(errcode.Transport, "configure", err)
	}
	if err := hw.SetFormat(cfg.Serial.DataBits, cfg.Serial.StopBits, toUARTParity(cfg.Serial.Parity)); err != nil {
		return nil, errcode.Wrap(errcode.InvalidParams, "configure", err)
	}

	return &Board{
		Serial:  hw,
		ButtonA: &rp2Pin{p: machine.Pin(cfg.ButtonPin), n: cfg.ButtonPin},
		Debug:   machine.Serial,
	}, nil
}

func toUARTParity(p types.Parity) uartx.UARTParity {
	switch p {
	case types.ParityEven:
		return uartx.ParityEven
	case types.ParityOdd:
		return uartx.ParityOdd
	default:
		return uartx.ParityNone
	}
}

// ---- GPIO implementation (includes IRQ support) ----

type rp2Pin struct {
	p machine.Pin
	n int
}

func (r *rp2Pin) ConfigureInput(pull halcore.Pull) error {
	var mode machine.PinMode
	switch pull {
	case halcore.PullUp:
		mode = machine.PinInputPullup
	case halcore.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *rp2Pin) Set(level bool) { r.p.Set(level) }
func (r *rp2Pin) Get() bool      { return r.p.Get() }
func (r *rp2Pin) Number() int    { return r.n }

// IRQ support. The RP2 port provides SetInterrupt with PinChange flags; the
// callback runs in interrupt context.
func (r *rp2Pin) SetIRQ(edge halcore.Edge, handler func()) error {
	return r.p.SetInterrupt(toPinChange(edge), func(machine.Pin) { handler() })
}

func (r *rp2Pin) ClearIRQ() error {
	var zero machine.PinChange
	return r.p.SetInterrupt(zero, nil)
}

func toPinChange(e halcore.Edge) machine.PinChange {
	switch e {
	case halcore.EdgeRising:
		return machine.PinRising
	case halcore.EdgeFalling:
		return machine.PinFalling
	case halcore.EdgeBoth:
		return machine.PinToggle
	default:
		// Zero value is a no-op/disabled.
		var zero machine.PinChange
		return zero
	}
}
