package main

import (
	"fyne.io/fyne/v2/app"

	"github.com/menta2k/pixeldims"
	"github.com/menta2k/pixeldims/internal/config"
	"github.com/menta2k/pixeldims/internal/log"
	"github.com/menta2k/pixeldims/internal/ui"
	"github.com/menta2k/pixeldims/pkg/clipboard"
)

func main() {
	a := app.NewWithID(config.AppID)

	sink := clipboard.NewSystem()
	if err := sink.Init(); err != nil {
		// Drops still work; each one reports the clipboard error in the window.
		log.Printf("clipboard init failed: %v", err)
	}

	annotator := pixeldims.New(sink)
	log.Printf("%s %s starting", config.AppName, pixeldims.GetVersion())

	ui.NewDropWindow(a, annotator).ShowAndRun()
}
