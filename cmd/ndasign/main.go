package main

import (
	"context"
	"log"
	"os"

	gioapp "gioui.org/app"
	"gioui.org/unit"
	"github.com/joho/godotenv"

	"github.com/ndalink/ndasign/internal/app"
	"github.com/ndalink/ndasign/internal/ui"
)

func main() {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	ndasignApp, err := app.NewApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	ndasignApp.CheckForUpdate(context.Background())

	if len(os.Args) > 1 {
		ndasignApp.OpenLink(os.Args[1])
	}

	go func() {
		w := new(gioapp.Window)
		w.Option(
			gioapp.Title("NDASign"),
			gioapp.Size(unit.Dp(1100), unit.Dp(860)),
		)
		if err := ui.Run(w, ndasignApp); err != nil {
			log.Fatalf("UI failed: %v", err)
		}
		os.Exit(0)
	}()

	gioapp.Main()
}
