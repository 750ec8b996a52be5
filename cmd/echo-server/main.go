package main

import (
	"context"

	"mcuctl-go/internal/app"
	"mcuctl-go/services/config"
	"mcuctl-go/services/echo"
	"mcuctl-go/x/dbg"
)

func main() {
	env := app.MustBoot(config.DefaultDevice, "echo")
	env.Log.Println("echo server ready")

	env.Check(echo.New(env.Wire, env.Log).Run(context.Background()))
	dbg.Halt()
}
