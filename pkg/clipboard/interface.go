package clipboard

import "context"

// Sink receives PNG encoded images destined for the clipboard
type Sink interface {
	WriteImage(ctx context.Context, png []byte) error
}
