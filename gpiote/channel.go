// Package gpiote models an edge-triggered event channel and the interrupt
// controller line it raises.
package gpiote

import (
	"sync/atomic"

	"mcuctl-go/errcode"
	"mcuctl-go/internal/halcore"
)

// State of an event channel.
type State uint32

const (
	Armed State = iota
	Triggered
)

func (s State) String() string {
	if s == Triggered {
		return "triggered"
	}
	return "armed"
}

// Channel watches one input pin. A configured edge latches Triggered and pends
// the line; only ResetEvents returns it to Armed.
type Channel struct {
	index int
	line  *Line

	pin  halcore.IRQPin
	edge halcore.Edge

	state      atomic.Uint32
	intEnabled atomic.Bool
}

func NewChannel(index int, line *Line) *Channel {
	return &Channel{index: index, line: line}
}

func (c *Channel) Index() int { return c.index }

// Configure selects the input pin and edge polarity.
func (c *Channel) Configure(pin halcore.IRQPin, edge halcore.Edge, pull halcore.Pull) error {
	if pin == nil || edge == halcore.EdgeNone {
		return &errcode.E{C: errcode.InvalidParams, Op: "configure", Msg: "pin and edge required"}
	}
	if err := pin.ConfigureInput(pull); err != nil {
		return errcode.Wrap(errcode.InvalidParams, "configure", err)
	}
	c.pin = pin
	c.edge = edge
	return nil
}

// EnableInterrupt arms the pin IRQ. Edges seen before this are not latched.
func (c *Channel) EnableInterrupt() error {
	if c.pin == nil {
		return &errcode.E{C: errcode.InvalidParams, Op: "enable_interrupt", Msg: "channel not configured"}
	}
	if err := c.pin.SetIRQ(c.edge, c.latch); err != nil {
		return errcode.Wrap(errcode.Unsupported, "enable_interrupt", err)
	}
	c.intEnabled.Store(true)
	return nil
}

// DisableInterrupt detaches the pin IRQ.
func (c *Channel) DisableInterrupt() error {
	c.intEnabled.Store(false)
	if c.pin == nil {
		return nil
	}
	return c.pin.ClearIRQ()
}

// latch is the hardware edge path; runs in interrupt context.
func (c *Channel) latch() {
	c.state.Store(uint32(Triggered))
	if c.intEnabled.Load() && c.line != nil {
		c.line.Pend()
	}
}

func (c *Channel) IsEventTriggered() bool { return c.State() == Triggered }

// ResetEvents re-arms the channel.
func (c *Channel) ResetEvents() { c.state.Store(uint32(Armed)) }

func (c *Channel) State() State { return State(c.state.Load()) }

func (c *Channel) Edge() halcore.Edge { return c.edge }
