package analyzer

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/menta2k/pixeldims/pkg/processing"
)

// ImageAnalyzer loads images and reports their pixel dimensions
type ImageAnalyzer struct {
	config    Config
	processor *processing.Processor
}

// Config holds configuration for the image analyzer
type Config struct {
	SupportedFormats []string
}

// New creates a new ImageAnalyzer with default configuration
func New() *ImageAnalyzer {
	return NewWithConfig(Config{
		SupportedFormats: []string{"jpeg", "png", "gif", "bmp", "tiff", "webp"},
	})
}

// NewWithConfig creates a new ImageAnalyzer with custom configuration
func NewWithConfig(config Config) *ImageAnalyzer {
	return &ImageAnalyzer{
		config:    config,
		processor: processing.NewProcessor(),
	}
}

// LoadImage loads an image from file, rejecting formats outside
// Config.SupportedFormats
func (a *ImageAnalyzer) LoadImage(filepath string) (image.Image, error) {
	img, format, err := a.processor.LoadImage(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if !a.isFormatSupported(format) {
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}

	return img, nil
}

// LoadImageFromReader loads an image from an io.Reader
func (a *ImageAnalyzer) LoadImageFromReader(reader io.Reader) (image.Image, error) {
	img, format, err := a.processor.DecodeImage(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if !a.isFormatSupported(format) {
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}

	return img, nil
}

// GetImageInfo returns basic information about an image
func (a *ImageAnalyzer) GetImageInfo(img image.Image) ImageInfo {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	info := ImageInfo{
		Width:  width,
		Height: height,
		Area:   width * height,
	}
	if height > 0 {
		info.AspectRatio = float64(width) / float64(height)
	}
	return info
}

// ImageInfo contains basic image metadata
type ImageInfo struct {
	Width       int
	Height      int
	AspectRatio float64
	Area        int
}

// DimensionsText formats the size as "W × H"
func (i ImageInfo) DimensionsText() string {
	return fmt.Sprintf("%d × %d", i.Width, i.Height)
}

// OverlayText is the label drawn onto the image, "W × H pixels"
func (i ImageInfo) OverlayText() string {
	return i.DimensionsText() + " pixels"
}

func (a *ImageAnalyzer) isFormatSupported(format string) bool {
	for _, supported := range a.config.SupportedFormats {
		if strings.EqualFold(format, supported) {
			return true
		}
	}
	return false
}

// ValidateImage checks that an image has pixels to annotate
func (a *ImageAnalyzer) ValidateImage(img image.Image) error {
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return fmt.Errorf("image has no pixels: %dx%d", bounds.Dx(), bounds.Dy())
	}
	return nil
}
