// Package pixeldims stamps an image's pixel dimensions onto a copy of it.
//
// An Annotator loads an image file, draws a badge reading "W × H pixels"
// at the bottom center, encodes the result as PNG and hands it to a
// clipboard sink:
//
//	sink := clipboard.NewSystem()
//	a := pixeldims.New(sink)
//
//	result, err := a.Annotate(ctx, "photo.jpg")
//	if err != nil {
//		switch pixeldims.KindOf(err) {
//		case pixeldims.KindDecode:
//			// not an image
//		case pixeldims.KindClipboard:
//			// clipboard unavailable
//		}
//	}
//	fmt.Println(result.Dimensions) // 1920 × 1080
//
// Badge size, padding, border and margin scale with the image; see
// overlay.ComputeLayout. The source file is never modified.
package pixeldims

import (
	"context"
	"image"

	"github.com/menta2k/pixeldims/internal/log"
	"github.com/menta2k/pixeldims/pkg/analyzer"
	"github.com/menta2k/pixeldims/pkg/clipboard"
	"github.com/menta2k/pixeldims/pkg/fonts"
	"github.com/menta2k/pixeldims/pkg/overlay"
)

// Version of the pixeldims library
const Version = "1.0.0"

// Annotator loads images, draws the dimension badge and publishes the result
type Annotator struct {
	analyzer *analyzer.ImageAnalyzer
	renderer *overlay.Renderer
	fonts    *fonts.Resolver
	sink     clipboard.Sink
}

// Option customizes an Annotator
type Option func(*Annotator)

// WithAnalyzer replaces the image loader
func WithAnalyzer(a *analyzer.ImageAnalyzer) Option {
	return func(an *Annotator) { an.analyzer = a }
}

// WithRenderer replaces the badge renderer
func WithRenderer(r *overlay.Renderer) Option {
	return func(an *Annotator) { an.renderer = r }
}

// WithFonts sets the font resolver on the renderer, whichever option
// supplied it
func WithFonts(f *fonts.Resolver) Option {
	return func(an *Annotator) { an.fonts = f }
}

// New creates an Annotator that publishes to sink
func New(sink clipboard.Sink, opts ...Option) *Annotator {
	a := &Annotator{
		analyzer: analyzer.New(),
		renderer: overlay.New(),
		sink:     sink,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.fonts != nil {
		a.renderer.SetFonts(a.fonts)
	}
	return a
}

// Result describes a successfully annotated image
type Result struct {
	Path       string
	Info       analyzer.ImageInfo
	Dimensions string
	PNG        []byte
}

// Annotate renders the badge for the image at path and copies it to the sink
func (a *Annotator) Annotate(ctx context.Context, path string) (Result, error) {
	result, err := a.RenderFile(path)
	if err != nil {
		return Result{}, err
	}

	if a.sink == nil {
		return Result{}, newError(KindClipboard, path, "no clipboard configured")
	}
	if err := a.sink.WriteImage(ctx, result.PNG); err != nil {
		return Result{}, &Error{Kind: KindClipboard, Path: path, Err: err}
	}

	log.Printf("copied %s (%s pixels, %d bytes) to clipboard", path, result.Dimensions, len(result.PNG))
	return result, nil
}

// RenderFile renders the badge for the image at path without publishing it
func (a *Annotator) RenderFile(path string) (Result, error) {
	img, err := a.analyzer.LoadImage(path)
	if err != nil {
		return Result{}, &Error{Kind: KindDecode, Path: path, Err: err}
	}
	return a.RenderImage(path, img)
}

// RenderImage renders the badge for an already decoded image. path is only
// used for reporting.
func (a *Annotator) RenderImage(path string, img image.Image) (Result, error) {
	if err := a.analyzer.ValidateImage(img); err != nil {
		return Result{}, &Error{Kind: KindDecode, Path: path, Err: err}
	}

	info := a.analyzer.GetImageInfo(img)
	data, err := a.renderer.Render(img, info.OverlayText())
	if err != nil {
		return Result{}, &Error{Kind: KindRender, Path: path, Err: err}
	}

	return Result{
		Path:       path,
		Info:       info,
		Dimensions: info.DimensionsText(),
		PNG:        data,
	}, nil
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
