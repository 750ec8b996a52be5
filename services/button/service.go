package button

import (
	"context"
	"time"

	"mcuctl-go/critical"
	"mcuctl-go/dispatch"
	"mcuctl-go/gpiote"
	"mcuctl-go/internal/halcore"
	"mcuctl-go/services/config"
	"mcuctl-go/x/dbg"
)

// Service reports presses of one button from interrupt context while the
// main loop idles.
type Service struct {
	cfg  config.ButtonConfig
	pin  halcore.IRQPin
	log  *dbg.Logger
	beat time.Duration

	line *gpiote.Line
	ch   *gpiote.Channel
	cell critical.Cell[*gpiote.Channel]
	disp *dispatch.Dispatcher
}

func New(cfg config.Config, pin halcore.IRQPin, log *dbg.Logger) *Service {
	s := &Service{
		cfg:  cfg.Button,
		pin:  pin,
		log:  log,
		beat: time.Duration(cfg.HeartbeatMs) * time.Millisecond,
		line: gpiote.NewLine("GPIOTE"),
	}
	s.ch = gpiote.NewChannel(0, s.line)
	s.disp = dispatch.New(&s.cell, log.Sink(), s.cfg.Source)
	return s
}

// Setup runs the start-up sequence. The order matters: the line is unmasked
// only once the channel sits in the cell, and whatever the unmask left
// pending is cleared before the section ends.
func (s *Service) Setup() error {
	if err := s.ch.Configure(s.pin, s.cfg.EdgeValue(), s.cfg.PullValue()); err != nil {
		return err
	}
	if err := s.ch.EnableInterrupt(); err != nil {
		return err
	}
	s.ch.ResetEvents()

	if err := s.disp.Register(s.line); err != nil {
		return err
	}

	critical.Do(func(cs critical.Token) {
		s.cell.Install(cs, s.ch)
		s.line.Unmask()
		s.line.Unpend()
	})
	return nil
}

// Run performs Setup, idles until ctx is done, then shuts the button down.
func (s *Service) Run(ctx context.Context) error {
	if err := s.Setup(); err != nil {
		return err
	}
	s.Idle(ctx)
	return s.Shutdown()
}

// Shutdown masks the line, then detaches the pin IRQ. Edges after this are
// neither latched nor reported.
func (s *Service) Shutdown() error {
	s.line.Close()
	if err := s.ch.DisableInterrupt(); err != nil {
		return err
	}
	s.log.Printf("%s closed after %d presses", s.line.Name(), s.disp.Notifications())
	return nil
}

// Idle parks the main context. With a heartbeat configured it logs the
// notification count on every tick.
func (s *Service) Idle(ctx context.Context) {
	if s.beat <= 0 {
		<-ctx.Done()
		return
	}
	tick := time.NewTicker(s.beat)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-tick.C:
			s.log.Println(t.Format("15:04:05"), "Heartbeat presses=", s.disp.Notifications())
		}
	}
}

func (s *Service) Notifications() uint32 { return s.disp.Notifications() }

// Line exposes the interrupt line, e.g. for diagnostics.
func (s *Service) Line() *gpiote.Line { return s.line }

// Channel exposes the event channel; access it only through a critical
// section once Setup has run.
func (s *Service) Channel() *gpiote.Channel { return s.ch }
