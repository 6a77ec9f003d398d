package config

import "strings"

// AppName is the name of the application.
const AppName = "PixelDims"

// AppID is the unique fyne application identifier.
const AppID = "com.github.menta2k.pixeldims"

// WindowTitle is shown in the title bar of the drop window.
const WindowTitle = "Image Dimensions Viewer"

// Placeholder is the status text shown before anything is dropped.
const Placeholder = "Drop an image here"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// DefaultFontCandidates lists the system monospace fonts tried, in order,
// before falling back to the bundled faces.
func DefaultFontCandidates() []string {
	return []string{
		"/System/Library/Fonts/SFMono-Regular.otf",
		"/System/Library/Fonts/Monaco.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
		"/usr/share/fonts/TTF/DejaVuSansMono.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationMono-Regular.ttf",
		`C:\Windows\Fonts\consola.ttf`,
	}
}
