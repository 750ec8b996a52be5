// Package echo writes every received byte straight back.
package echo

import (
	"context"

	"mcuctl-go/transport"
	"mcuctl-go/x/dbg"
)

type Service struct {
	t   *transport.Transport
	log *dbg.Logger
}

func New(t *transport.Transport, log *dbg.Logger) *Service {
	return &Service{t: t, log: log}
}

// EchoOne moves one byte from RX to TX and flushes.
func (s *Service) EchoOne() error {
	b, err := s.t.ReadByte()
	if err != nil {
		return err
	}
	s.log.Printf("Received: %c", b)
	if err := s.t.WriteByte(b); err != nil {
		return err
	}
	return s.t.Flush()
}

func (s *Service) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		if err := s.EchoOne(); err != nil {
			return err
		}
	}
	return nil
}
