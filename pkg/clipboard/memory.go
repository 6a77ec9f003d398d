package clipboard

import (
	"context"
	"sync"
)

// Memory is an in-process Sink that keeps the last image written
type Memory struct {
	mu     sync.Mutex
	last   []byte
	writes int
	err    error
}

// NewMemory creates an empty in-memory sink
func NewMemory() *Memory {
	return &Memory{}
}

// FailWith makes subsequent writes return err; nil restores normal behaviour
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// WriteImage records a copy of png
func (m *Memory) WriteImage(ctx context.Context, png []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(png) == 0 {
		return ErrEmptyImage
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.last = append([]byte(nil), png...)
	m.writes++
	return nil
}

// Last returns the most recent image, or nil
func (m *Memory) Last() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// Writes returns how many images were accepted
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
