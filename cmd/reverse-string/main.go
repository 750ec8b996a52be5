package main

import (
	"context"

	"mcuctl-go/internal/app"
	"mcuctl-go/services/config"
	"mcuctl-go/services/reverse"
	"mcuctl-go/x/dbg"
)

func main() {
	env := app.MustBoot(config.DefaultDevice, "reverse")

	svc := reverse.New(env.Wire, env.Config.Line, env.Log)
	env.Check(svc.Run(context.Background()))
	dbg.Halt()
}
