// internal/platform/factories_host.go
//go:build !(rp2040 || rp2350)

package platform

import (
	"os"
	"sync"

	"mcuctl-go/errcode"
	"mcuctl-go/internal/halcore"
)

func newBoard(cfg BoardConfig) (*Board, error) {
	if cfg.ButtonPin < 0 || cfg.ButtonPin > 28 {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "take", Msg: "button pin"}
	}
	return &Board{
		Serial:  NewHostUART(),
		ButtonA: &FakePin{number: cfg.ButtonPin, level: true},
		Debug:   os.Stderr,
	}, nil
}

// ----------------------------- UART (host) -----------------------------------

// HostUART implements drivers.UART for host-side tests. RX is fed by Inject;
// TX is recorded together with the TX offsets at which Flush was called.
type HostUART struct {
	mu      sync.Mutex
	rx      []byte
	tx      []byte
	flushes []int
	fault   error
	txBusy  int // polls to refuse before each accepted write
	stall   int
}

func NewHostUART() *HostUART { return &HostUART{} }

// Inject queues bytes as if they arrived on the wire.
func (u *HostUART) Inject(p []byte) {
	u.mu.Lock()
	u.rx = append(u.rx, p...)
	u.mu.Unlock()
}

// InjectFault latches a receive error reported by the next read poll.
func (u *HostUART) InjectFault(err error) {
	u.mu.Lock()
	u.fault = err
	u.mu.Unlock()
}

// SetTXBusy makes the transmitter refuse n polls before accepting each write.
func (u *HostUART) SetTXBusy(n int) {
	u.mu.Lock()
	u.txBusy = n
	u.mu.Unlock()
}

func (u *HostUART) Buffered() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.rx)
}

func (u *HostUART) Read(p []byte) (int, error) {
	u.mu.Lock()
	n := copy(p, u.rx)
	u.rx = u.rx[n:]
	u.mu.Unlock()
	return n, nil
}

func (u *HostUART) Write(p []byte) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.stall < u.txBusy {
		u.stall++
		return 0, nil
	}
	u.stall = 0
	u.tx = append(u.tx, p...)
	return len(p), nil
}

func (u *HostUART) Flush() error {
	u.mu.Lock()
	u.flushes = append(u.flushes, len(u.tx))
	u.mu.Unlock()
	return nil
}

// Fault returns and clears the latched receive error.
func (u *HostUART) Fault() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	err := u.fault
	u.fault = nil
	return err
}

// TX returns a copy of everything written so far.
func (u *HostUART) TX() []byte {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]byte(nil), u.tx...)
}

// FlushMarks returns the TX length at each Flush call.
func (u *HostUART) FlushMarks() []int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]int(nil), u.flushes...)
}

// Drained reports whether every injected byte has been consumed.
func (u *HostUART) Drained() bool { return u.Buffered() == 0 }

// ----------------------------- GPIO (host) -----------------------------------

// FakePin implements IRQPin for host-side tests. Set drives the level and
// fires the handler on a matching edge.
type FakePin struct {
	mu      sync.RWMutex
	number  int
	level   bool
	modeOut bool
	pull    halcore.Pull
	irqEdge halcore.Edge
	irqFunc func()
}

func NewFakePin(n int, level bool) *FakePin { return &FakePin{number: n, level: level} }

func (p *FakePin) ConfigureInput(pull halcore.Pull) error {
	p.mu.Lock()
	p.modeOut = false
	p.pull = pull
	switch pull {
	case halcore.PullUp:
		p.level = true
	case halcore.PullDown:
		p.level = false
	}
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.modeOut = true
	p.level = initial
	p.mu.Unlock()
	return nil
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	old := p.level
	p.level = level
	irq := p.irqFunc
	want := irqWanted(p.irqEdge, edgeFrom(old, level))
	p.mu.Unlock()
	if want && irq != nil {
		irq() // ISR-style callback
	}
}

func (p *FakePin) Get() bool {
	p.mu.RLock()
	v := p.level
	p.mu.RUnlock()
	return v
}

func (p *FakePin) Number() int { return p.number }

func (p *FakePin) Pull() halcore.Pull {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pull
}

func (p *FakePin) SetIRQ(edge halcore.Edge, handler func()) error {
	p.mu.Lock()
	p.irqEdge = edge
	p.irqFunc = handler
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ClearIRQ() error {
	p.mu.Lock()
	p.irqEdge = halcore.EdgeNone
	p.irqFunc = nil
	p.mu.Unlock()
	return nil
}

// Press drives a full high-low-high cycle, as a pulled-up button does.
func (p *FakePin) Press() {
	p.Set(false)
	p.Set(true)
}

func edgeFrom(old, new bool) halcore.Edge {
	switch {
	case !old && new:
		return halcore.EdgeRising
	case old && !new:
		return halcore.EdgeFalling
	default:
		return halcore.EdgeNone
	}
}

func irqWanted(cfg, seen halcore.Edge) bool {
	switch cfg {
	case halcore.EdgeBoth:
		return seen == halcore.EdgeRising || seen == halcore.EdgeFalling
	default:
		return cfg != halcore.EdgeNone && cfg == seen
	}
}
