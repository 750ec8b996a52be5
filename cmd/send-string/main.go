//go:build rp2040 || rp2350

package main

import (
	"mcuctl-go/internal/app"
	"mcuctl-go/services/announce"
	"mcuctl-go/services/config"
	"mcuctl-go/x/dbg"
)

func main() {
	env := app.MustBoot(config.DefaultDevice, "send")

	env.Check(announce.Send(env.Wire))
	env.Log.Println("sent")
	dbg.Halt()
}
