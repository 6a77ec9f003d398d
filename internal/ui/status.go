package ui

import (
	"fmt"

	"github.com/menta2k/pixeldims"
)

// Minimum window size in device independent pixels
const (
	MinWidth  = 300
	MinHeight = 200
)

// StatusText is the label text for the outcome of one drop
func StatusText(result pixeldims.Result, err error) string {
	if err != nil {
		return fmt.Sprintf("Error: %s", err)
	}
	return fmt.Sprintf("%s pixels\nImage with overlay copied to clipboard", result.Dimensions)
}
