package transport

import "tinygo.org/x/drivers"

// UARTPort adapts a drivers.UART (machine.UART, uartx.UART, host fakes) to
// Serial.
type UARTPort struct {
	u   drivers.UART
	one [1]byte
}

var _ Serial = (*UARTPort)(nil)

// FromUART wraps u. Flush and line-fault reporting are used when the port
// provides them.
func FromUART(u drivers.UART) *UARTPort { return &UARTPort{u: u} }

type flusher interface{ Flush() error }

// tryReader and tryWriter are the non-blocking paths of uartx.UART, whose
// Read and Write wait for the ISR.
type tryReader interface{ TryRead(p []byte) int }
type tryWriter interface{ TryWrite(p []byte) int }

// faulter reports a latched receive error (parity, framing, overrun).
type faulter interface{ Fault() error }

func (p *UARTPort) TryReadByte() (byte, error) {
	if f, ok := p.u.(faulter); ok {
		if err := f.Fault(); err != nil {
			return 0, err
		}
	}
	if r, ok := p.u.(tryReader); ok {
		if r.TryRead(p.one[:]) == 0 {
			return 0, ErrWouldBlock
		}
		return p.one[0], nil
	}
	if p.u.Buffered() == 0 {
		return 0, ErrWouldBlock
	}
	n, err := p.u.Read(p.one[:])
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrWouldBlock
	}
	return p.one[0], nil
}

func (p *UARTPort) TryWriteByte(b byte) error {
	p.one[0] = b
	if w, ok := p.u.(tryWriter); ok {
		if w.TryWrite(p.one[:]) == 0 {
			return ErrWouldBlock
		}
		return nil
	}
	n, err := p.u.Write(p.one[:])
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrWouldBlock
	}
	return nil
}

func (p *UARTPort) TryFlush() error {
	f, ok := p.u.(flusher)
	if !ok {
		return nil
	}
	return f.Flush()
}
