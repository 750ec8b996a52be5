// Package dispatch holds the interrupt handler for edge-triggered event
// channels.
package dispatch

import (
	"io"
	"sync/atomic"

	"mcuctl-go/critical"
	"mcuctl-go/gpiote"
)

// Dispatcher is bound to one interrupt line. Handle runs in interrupt context
// and shares the channel with the main loop through cell.
type Dispatcher struct {
	cell *critical.Cell[*gpiote.Channel]
	sink io.Writer
	note []byte // built once; the handler must not allocate

	count atomic.Uint32
}

func New(cell *critical.Cell[*gpiote.Channel], sink io.Writer, source string) *Dispatcher {
	return &Dispatcher{
		cell: cell,
		sink: sink,
		note: []byte(source + " pressed!\n"),
	}
}

// Register binds Handle to line. A line accepts exactly one handler.
func (d *Dispatcher) Register(line *gpiote.Line) error {
	return line.Bind(d.Handle)
}

// Handle emits one notification per invocation that finds the channel
// triggered, then re-arms it. An empty cell means start-up has not finished;
// nothing happens. Contact bounce is not filtered.
func (d *Dispatcher) Handle() {
	critical.Do(func(cs critical.Token) {
		ch, ok := d.cell.Borrow(cs)
		if !ok || !ch.IsEventTriggered() {
			return
		}
		if d.sink != nil {
			_, _ = d.sink.Write(d.note)
		}
		ch.ResetEvents()
		d.count.Add(1)
	})
}

// Notifications returns how many notifications were emitted.
func (d *Dispatcher) Notifications() uint32 { return d.count.Load() }
