package clipboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.design/x/clipboard"
)

// ErrEmptyImage is returned when asked to copy an empty buffer
var ErrEmptyImage = errors.New("clipboard: empty image")

// System writes images to the operating system clipboard
type System struct {
	timeout time.Duration

	once    sync.Once
	initErr error
}

// NewSystem creates a system clipboard sink. The platform clipboard is
// initialized on first use.
func NewSystem() *System {
	return &System{timeout: 2 * time.Second}
}

// Init prepares the platform clipboard. It is safe to call repeatedly.
func (s *System) Init() error {
	s.once.Do(func() {
		if err := clipboard.Init(); err != nil {
			s.initErr = fmt.Errorf("clipboard unavailable: %w", err)
		}
	})
	return s.initErr
}

// WriteImage places png on the clipboard as image data
func (s *System) WriteImage(ctx context.Context, png []byte) error {
	if len(png) == 0 {
		return ErrEmptyImage
	}
	if err := s.Init(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// Write returns a channel that is closed when another program takes
	// ownership; the data is already on the clipboard when it returns.
	done := make(chan struct{})
	go func() {
		clipboard.Write(clipboard.FmtImage, png)
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("clipboard write: %w", ctx.Err())
	}
}
