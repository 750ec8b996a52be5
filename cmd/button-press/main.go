package main

import (
	"context"

	"mcuctl-go/internal/app"
	"mcuctl-go/services/button"
	"mcuctl-go/services/config"
	"mcuctl-go/x/dbg"
)

func main() {
	env := app.MustBoot(config.DefaultDevice, "button")

	svc := button.New(env.Config, env.Board.ButtonA, env.Log)
	env.Check(svc.Run(context.Background()))
	dbg.Halt()
}
