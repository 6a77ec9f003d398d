// Package fonts resolves the monospace face used to draw dimension badges.
//
// Resolution walks an ordered list of font files on disk, then falls back to
// the bundled Go Mono face, and finally to the fixed-size basicfont face.
// It never fails: a missing or unreadable system font is logged and skipped.
package fonts

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"

	"github.com/menta2k/pixeldims/internal/config"
	"github.com/menta2k/pixeldims/internal/log"
)

// Source names the entry of the resolution chain a face came from
type Source string

const (
	// SourceGoMono is the Go Mono face bundled with golang.org/x/image
	SourceGoMono Source = "gomono"
	// SourceBasic is the fixed 7x13 bitmap face
	SourceBasic Source = "basicfont"
)

// DPI used for all faces; at 72 DPI one point is one pixel
const DPI = 72

// DefaultCandidates returns the system monospace fonts tried before the
// bundled fallbacks, in order of preference
func DefaultCandidates() []string {
	return config.DefaultFontCandidates()
}

// Resolver finds a usable monospace face for a requested pixel size
type Resolver struct {
	candidates []string
	readFile   func(string) ([]byte, error)

	mu     sync.Mutex
	parsed map[string]*opentype.Font
	failed map[string]bool
}

// NewResolver creates a resolver that tries the given font files in order.
// With no candidates only the bundled faces are used.
func NewResolver(candidates ...string) *Resolver {
	return &Resolver{
		candidates: candidates,
		readFile:   os.ReadFile,
		parsed:     make(map[string]*opentype.Font),
		failed:     make(map[string]bool),
	}
}

// NewDefaultResolver creates a resolver over DefaultCandidates
func NewDefaultResolver() *Resolver {
	return NewResolver(DefaultCandidates()...)
}

// Face returns a face at the given pixel size and where it came from
func (r *Resolver) Face(size int) (font.Face, Source) {
	for _, path := range r.candidates {
		f, err := r.load(path)
		if err != nil {
			log.Debugf("font %s unavailable: %v", path, err)
			continue
		}
		face, err := newFace(f, size)
		if err != nil {
			log.Debugf("font %s at size %d: %v", path, size, err)
			continue
		}
		return face, Source(path)
	}

	f, err := r.bundled()
	if err == nil {
		var face font.Face
		if face, err = newFace(f, size); err == nil {
			return face, SourceGoMono
		}
	}
	log.Printf("bundled monospace font unusable, using basicfont: %v", err)
	return basicfont.Face7x13, SourceBasic
}

func (r *Resolver) load(path string) (*opentype.Font, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f, ok := r.parsed[path]; ok {
		return f, nil
	}
	if r.failed[path] {
		return nil, fmt.Errorf("previously failed to load")
	}

	data, err := r.readFile(path)
	if err != nil {
		r.failed[path] = true
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		r.failed[path] = true
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	r.parsed[path] = f
	return f, nil
}

func (r *Resolver) bundled() (*opentype.Font, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f, ok := r.parsed[string(SourceGoMono)]; ok {
		return f, nil
	}
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, err
	}
	r.parsed[string(SourceGoMono)] = f
	return f, nil
}

func newFace(f *opentype.Font, size int) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     DPI,
		Hinting: font.HintingFull,
	})
}
