// Package ui is the drop window of the desktop app.
package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/menta2k/pixeldims"
	"github.com/menta2k/pixeldims/internal/config"
	"github.com/menta2k/pixeldims/internal/log"
)

// DropWindow accepts dropped image files and shows the outcome in a label
type DropWindow struct {
	win       fyne.Window
	label     *widget.Label
	annotator *pixeldims.Annotator
}

// NewDropWindow creates the window and wires its drop handler
func NewDropWindow(a fyne.App, annotator *pixeldims.Annotator) *DropWindow {
	dw := &DropWindow{
		win:       a.NewWindow(config.WindowTitle),
		label:     widget.NewLabel(config.Placeholder),
		annotator: annotator,
	}
	dw.label.Alignment = fyne.TextAlignCenter

	// full width, vertically centered
	dw.win.SetContent(container.NewVBox(layout.NewSpacer(), dw.label, layout.NewSpacer()))
	dw.win.Resize(fyne.NewSize(MinWidth, MinHeight))
	dw.win.SetOnDropped(dw.HandleDrop)
	return dw
}

// Window returns the underlying fyne window
func (dw *DropWindow) Window() fyne.Window {
	return dw.win
}

// Status returns the text currently shown to the user
func (dw *DropWindow) Status() string {
	return dw.label.Text
}

// HandleDrop processes the first dropped item; the rest are ignored.
// It runs to completion before returning so drops are handled one at a time.
func (dw *DropWindow) HandleDrop(_ fyne.Position, uris []fyne.URI) {
	if len(uris) == 0 {
		return
	}
	if len(uris) > 1 {
		log.Printf("%d items dropped, only the first is used", len(uris))
	}

	result, err := dw.annotate(uris[0])
	if err != nil {
		log.Printf("drop of %s failed (%s): %v", uris[0], pixeldims.KindOf(err), err)
	}
	dw.label.SetText(StatusText(result, err))
}

func (dw *DropWindow) annotate(uri fyne.URI) (pixeldims.Result, error) {
	if uri.Scheme() != "file" {
		return pixeldims.Result{}, &pixeldims.Error{
			Kind: pixeldims.KindDecode,
			Path: uri.String(),
			Err:  fmt.Errorf("not a local file: %s", uri.String()),
		}
	}
	return dw.annotator.Annotate(context.Background(), uri.Path())
}

// ShowAndRun shows the window and runs the app until it is closed
func (dw *DropWindow) ShowAndRun() {
	dw.win.ShowAndRun()
}
