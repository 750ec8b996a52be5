// Package reverse reads CR-terminated lines from the data UART and writes
// each one back reversed.
package reverse

import (
	"context"

	"mcuctl-go/errcode"
	"mcuctl-go/linebuf"
	"mcuctl-go/services/config"
	"mcuctl-go/transport"
	"mcuctl-go/x/dbg"
)

type Service struct {
	t   *transport.Transport
	buf *linebuf.Buffer
	cfg config.LineConfig
	log *dbg.Logger
}

func New(t *transport.Transport, cfg config.LineConfig, log *dbg.Logger) *Service {
	return &Service{
		t:   t,
		buf: linebuf.New(cfg.Capacity),
		cfg: cfg,
		log: log,
	}
}

// Buffer exposes the line accumulator.
func (s *Service) Buffer() *linebuf.Buffer { return s.buf }

// ReadLine accumulates bytes until the terminator, which is not stored.
// When the buffer fills, the overflow notice is written and flushed once and
// the rest of the line is discarded; the bytes already held are kept.
func (s *Service) ReadLine() (overflowed bool, err error) {
	for {
		b, err := s.t.ReadByte()
		if err != nil {
			return overflowed, err
		}
		if b == s.cfg.Terminator {
			return overflowed, nil
		}
		if overflowed {
			continue
		}
		if err := s.buf.Push(b); err != nil {
			if errcode.Of(err) != errcode.BufferFull {
				return false, err
			}
			overflowed = true
			if err := s.notify(); err != nil {
				return true, err
			}
		}
	}
}

func (s *Service) notify() error {
	if _, err := s.t.WriteString(s.cfg.OverflowNotice); err != nil {
		return err
	}
	return s.t.Flush()
}

// ServeLine handles one line end to end: read, reverse, flush. The buffer
// is left empty for the next line.
func (s *Service) ServeLine() error {
	s.buf.Clear()
	over, err := s.ReadLine()
	if err != nil {
		return err
	}
	if over {
		s.log.Printf("line overflow, kept %d bytes", s.buf.Len())
	}
	if err := s.buf.Emit(s.t, linebuf.Reverse); err != nil {
		return err
	}
	if err := s.t.Flush(); err != nil {
		return err
	}
	s.buf.Clear()
	return nil
}

// Run serves lines until ctx is cancelled or the transport faults. The
// context is checked between lines only.
func (s *Service) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if err := s.ServeLine(); err != nil {
			return err
		}
	}
}
