// Package app holds the start-up sequence shared by the firmware images.
package app

import (
	"time"

	"mcuctl-go/errcode"
	"mcuctl-go/internal/platform"
	"mcuctl-go/services/config"
	"mcuctl-go/transport"
	"mcuctl-go/x/dbg"
)

// Env is everything an image needs after boot.
type Env struct {
	Config config.Config
	Board  *platform.Board
	Log    *dbg.Logger
	Wire   *transport.Transport
}

// Sleep is the boot delay hook, replaced in tests.
var Sleep = time.Sleep

// Boot loads the device configuration, waits out the boot delay and takes
// the board. Any error is fatal to the caller.
func Boot(device, tag string) (*Env, error) {
	cfg, err := config.Load(device)
	if err != nil {
		return nil, err
	}
	if cfg.BootDelayMs > 0 {
		Sleep(time.Duration(cfg.BootDelayMs) * time.Millisecond)
	}
	b, err := platform.Take(platform.BoardConfig{
		Serial:    cfg.Serial,
		ButtonPin: cfg.Button.Pin,
	})
	if err != nil {
		return nil, err
	}
	log := dbg.New(b.Debug, tag)
	log.Printf("boot %s (%s)", device, cfg.Serial)
	return &Env{
		Config: cfg,
		Board:  b,
		Log:    log,
		Wire:   transport.New(transport.FromUART(b.Serial)),
	}, nil
}

// Check halts with a fault line when err is fatal. Recoverable errors are
// logged and dropped.
func (e *Env) Check(err error) {
	if err == nil {
		return
	}
	if !errcode.IsFatal(err) {
		e.Log.Printf("%v", err)
		return
	}
	e.Log.Fatal(err)
}

// MustBoot is Boot with the error reported on the default debug sink.
func MustBoot(device, tag string) *Env {
	env, err := Boot(device, tag)
	if err != nil {
		dbg.New(nil, tag).Fatal(err)
	}
	return env
}
