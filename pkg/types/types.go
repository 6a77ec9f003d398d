package types

import "image"

// Layout holds the scale-dependent badge parameters derived from image dimensions
type Layout struct {
	FontSize        int `json:"font_size"`
	Padding         int `json:"padding"`
	BorderThickness int `json:"border_thickness"`
	BottomMargin    int `json:"bottom_margin"`
}

// Rect is a rectangle in pixel coordinates with inclusive corners,
// the way box outlines are specified for drawing
type Rect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// Grow returns the rectangle expanded by n pixels on every side
func (r Rect) Grow(n int) Rect {
	return Rect{
		Left:   r.Left - n,
		Top:    r.Top - n,
		Right:  r.Right + n,
		Bottom: r.Bottom + n,
	}
}

// Image converts the inclusive rectangle to a half-open image.Rectangle
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right+1, r.Bottom+1)
}

// Badge is the resolved geometry of one overlay
type Badge struct {
	Layout     Layout `json:"layout"`
	Text       string `json:"text"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	TextWidth  int    `json:"text_width"`
	TextHeight int    `json:"text_height"`
	Background Rect   `json:"background"`
	FontSource string `json:"font_source"`
}

// Outer returns the outermost border outline of the badge
func (b Badge) Outer() Rect {
	if b.Layout.BorderThickness <= 0 {
		return b.Background
	}
	return b.Background.Grow(b.Layout.BorderThickness - 1)
}

// InsideImage reports whether the whole badge, border included, lies within
// an image of the given size
func (b Badge) InsideImage(width, height int) bool {
	o := b.Outer()
	return o.Left >= 0 && o.Top >= 0 && o.Right < width && o.Bottom < height
}
