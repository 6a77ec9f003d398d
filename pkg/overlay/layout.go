package overlay

import "github.com/menta2k/pixeldims/pkg/types"

const (
	MinFontSize        = 16
	MaxFontSize        = 48
	MinPadding         = 10
	MinBorderThickness = 2

	paddingRatio      = 0.6
	borderRatio       = 0.08
	bottomMarginRatio = 0.03
)

// ScaleFor returns the font scale factor for the smaller image dimension.
// Smaller images get a proportionally larger badge.
func ScaleFor(minDim int) float64 {
	switch {
	case minDim <= 500:
		return 0.15
	case minDim <= 1000:
		return 0.10
	case minDim <= 2000:
		return 0.06
	default:
		return 0.04
	}
}

// ComputeLayout derives badge parameters from the image size.
// width and height must be positive.
func ComputeLayout(width, height int) types.Layout {
	minDim := min(width, height)

	fontSize := int(float64(minDim) * ScaleFor(minDim))
	fontSize = max(MinFontSize, min(MaxFontSize, fontSize))

	return types.Layout{
		FontSize:        fontSize,
		Padding:         max(MinPadding, int(float64(fontSize)*paddingRatio)),
		BorderThickness: max(MinBorderThickness, int(float64(fontSize)*borderRatio)),
		BottomMargin:    int(float64(height) * bottomMarginRatio),
	}
}
