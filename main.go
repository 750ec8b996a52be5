package main

import (
	"context"

	"mcuctl-go/internal/app"
	"mcuctl-go/services/button"
	"mcuctl-go/services/config"
	"mcuctl-go/services/reverse"
	"mcuctl-go/x/dbg"
)

// Button presses are reported from interrupt context on the debug sink while
// the main loop serves reversed lines on the data UART.
func main() {
	env := app.MustBoot(config.DefaultDevice, "main")

	btn := button.New(env.Config, env.Board.ButtonA, env.Log.With("button"))
	env.Check(btn.Setup())
	env.Log.Println("button armed on pin", env.Config.Button.Pin)

	svc := reverse.New(env.Wire, env.Config.Line, env.Log.With("reverse"))
	env.Check(svc.Run(context.Background()))
	dbg.Halt()
}
