package pixeldims

import (
	"errors"
	"fmt"
)

// Kind classifies failures of a single annotate operation
type Kind int

const (
	// KindUnknown is reported for errors that did not come from an Annotator
	KindUnknown Kind = iota
	// KindDecode means the file could not be opened or is not a supported image
	KindDecode
	// KindRender means compositing or encoding the badge failed
	KindRender
	// KindClipboard means the clipboard rejected the image
	KindClipboard
)

func (k Kind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindRender:
		return "render"
	case KindClipboard:
		return "clipboard"
	default:
		return "unknown"
	}
}

// Error is returned by Annotator operations
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err, or KindUnknown
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func newError(kind Kind, path string, format string, args ...any) *Error {
	return &Error{Kind: kind, Path: path, Err: fmt.Errorf(format, args...)}
}
