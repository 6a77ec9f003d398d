// Package overlay draws the dimension badge onto a copy of an image.
//
// The badge is a black box with a red border and white monospace text,
// anchored at the bottom center of the image. All sizes scale with the
// image through ComputeLayout. Placement is never clamped to the image:
// when the text is wider than the image the badge extends past its edges
// and only the visible part is drawn.
package overlay

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/menta2k/pixeldims/internal/log"
	"github.com/menta2k/pixeldims/pkg/fonts"
	"github.com/menta2k/pixeldims/pkg/processing"
	"github.com/menta2k/pixeldims/pkg/types"
)

// ErrEmptyImage is returned for images without pixels
var ErrEmptyImage = errors.New("image has no pixels")

// Renderer composites dimension badges onto images
type Renderer struct {
	config    Config
	fonts     *fonts.Resolver
	processor *processing.Processor
}

// Config holds the badge colors
type Config struct {
	Background color.Color
	Border     color.Color
	Text       color.Color
}

// DefaultConfig returns the black/red/white badge style
func DefaultConfig() Config {
	return Config{
		Background: colornames.Black,
		Border:     colornames.Red,
		Text:       colornames.White,
	}
}

// New creates a new Renderer with default colors and system fonts
func New() *Renderer {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a new Renderer with custom colors
func NewWithConfig(config Config) *Renderer {
	return &Renderer{
		config:    config,
		fonts:     fonts.NewDefaultResolver(),
		processor: processing.NewProcessor(),
	}
}

// SetFonts replaces the font resolver
func (r *Renderer) SetFonts(resolver *fonts.Resolver) {
	r.fonts = resolver
}

// Plan computes the badge geometry for label on img without drawing
func (r *Renderer) Plan(img image.Image, label string) (types.Badge, error) {
	badge, face, _, err := r.plan(img, label)
	if err != nil {
		return types.Badge{}, err
	}
	face.Close()
	return badge, nil
}

// Compose draws the badge onto a copy of img and returns the copy
func (r *Renderer) Compose(img image.Image, label string) (*image.NRGBA, types.Badge, error) {
	badge, face, ink, err := r.plan(img, label)
	if err != nil {
		return nil, types.Badge{}, err
	}
	defer face.Close()

	canvas := r.processor.Clone(img)

	r.processor.FillRect(canvas, badge.Background, r.config.Background)
	// Stack of 1px outlines, each one pixel further out.
	for offset := 0; offset < badge.Layout.BorderThickness; offset++ {
		r.processor.StrokeRect(canvas, badge.Background.Grow(offset), r.config.Border)
	}

	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(r.config.Text),
		Face: face,
		Dot:  fixed.P(badge.X-ink.X, badge.Y-ink.Y),
	}
	d.DrawString(label)

	return canvas, badge, nil
}

// Render draws the badge onto a copy of img and returns it PNG encoded
func (r *Renderer) Render(img image.Image, label string) ([]byte, error) {
	canvas, badge, err := r.Compose(img, label)
	if err != nil {
		return nil, err
	}
	log.Debugf("badge %q at (%d,%d) size %dx%d font %d (%s)",
		badge.Text, badge.X, badge.Y, badge.TextWidth, badge.TextHeight, badge.Layout.FontSize, badge.FontSource)

	data, err := r.processor.EncodePNG(canvas)
	if err != nil {
		return nil, fmt.Errorf("render overlay: %w", err)
	}
	return data, nil
}

// plan resolves the face and places the text. ink is the offset of the
// glyph ink box from the drawing origin.
func (r *Renderer) plan(img image.Image, label string) (types.Badge, font.Face, image.Point, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return types.Badge{}, nil, image.Point{}, ErrEmptyImage
	}

	layout := ComputeLayout(width, height)
	face, source := r.fonts.Face(layout.FontSize)

	textWidth, textHeight, ink := MeasureInk(face, label)

	x := floorDiv(width-textWidth, 2)
	y := height - textHeight - layout.BottomMargin
	p := layout.Padding

	return types.Badge{
		Layout:     layout,
		Text:       label,
		X:          x,
		Y:          y,
		TextWidth:  textWidth,
		TextHeight: textHeight,
		Background: types.Rect{
			Left:   x - p,
			Top:    y - p,
			Right:  x + textWidth + p,
			Bottom: y + textHeight + p,
		},
		FontSource: string(source),
	}, face, ink, nil
}

// MeasureInk returns the pixel size of the glyph ink box of text and the
// offset of that box from the drawing origin. Advance widths and side
// bearings outside the ink are not counted.
func MeasureInk(face font.Face, text string) (width, height int, origin image.Point) {
	b, _ := font.BoundString(face, text)
	if b.Empty() {
		return 0, 0, image.Point{}
	}
	minX, minY := b.Min.X.Floor(), b.Min.Y.Floor()
	return b.Max.X.Ceil() - minX, b.Max.Y.Ceil() - minY, image.Pt(minX, minY)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
