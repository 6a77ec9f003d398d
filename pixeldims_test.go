package pixeldims

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menta2k/pixeldims/pkg/clipboard"
	"github.com/menta2k/pixeldims/pkg/fonts"
	"github.com/menta2k/pixeldims/pkg/overlay"
)

// createTestImage creates a simple test image
func createTestImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{uint8(x % 256), uint8(y % 256), 200, 255})
		}
	}
	return img
}

func writeTestImage(t *testing.T, width, height int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), fmt.Sprintf("img_%dx%d.png", width, height))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, createTestImage(width, height)))
	return path
}

func newTestAnnotator(sink clipboard.Sink) *Annotator {
	return New(sink, WithFonts(fonts.NewResolver()))
}

func TestAnnotate(t *testing.T) {
	sink := clipboard.NewMemory()
	a := newTestAnnotator(sink)
	path := writeTestImage(t, 1000, 800)

	result, err := a.Annotate(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "1000 × 800", result.Dimensions)
	assert.Equal(t, 1000, result.Info.Width)
	assert.Equal(t, 800, result.Info.Height)
	assert.Equal(t, path, result.Path)

	require.Equal(t, 1, sink.Writes())
	assert.Equal(t, result.PNG, sink.Last())

	decoded, err := png.Decode(bytes.NewReader(sink.Last()))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 1000, 800), decoded.Bounds())
}

func TestAnnotateLeavesSourceFileUntouched(t *testing.T) {
	path := writeTestImage(t, 300, 200)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = newTestAnnotator(clipboard.NewMemory()).Annotate(context.Background(), path)
	require.NoError(t, err)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAnnotateUndecodableFile(t *testing.T) {
	sink := clipboard.NewMemory()
	a := newTestAnnotator(sink)

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("definitely not pixels"), 0o644))

	_, err := a.Annotate(context.Background(), path)
	require.Error(t, err)
	assert.Equal(t, KindDecode, KindOf(err))
	assert.Zero(t, sink.Writes())

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, path, e.Path)
}

func TestAnnotateMissingFile(t *testing.T) {
	sink := clipboard.NewMemory()

	_, err := newTestAnnotator(sink).Annotate(context.Background(), filepath.Join(t.TempDir(), "gone.png"))
	assert.Equal(t, KindDecode, KindOf(err))
	assert.Zero(t, sink.Writes())
}

func TestAnnotateClipboardFailure(t *testing.T) {
	sink := clipboard.NewMemory()
	boom := errors.New("clipboard busy")
	sink.FailWith(boom)

	_, err := newTestAnnotator(sink).Annotate(context.Background(), writeTestImage(t, 64, 64))
	require.Error(t, err)
	assert.Equal(t, KindClipboard, KindOf(err))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "clipboard busy", err.Error())
}

func TestAnnotateWithoutSink(t *testing.T) {
	_, err := newTestAnnotator(nil).Annotate(context.Background(), writeTestImage(t, 64, 64))
	assert.Equal(t, KindClipboard, KindOf(err))
}

func TestRenderImageRejectsEmpty(t *testing.T) {
	_, err := newTestAnnotator(nil).RenderImage("empty", image.NewRGBA(image.Rect(0, 0, 0, 0)))
	assert.Equal(t, KindDecode, KindOf(err))
}

func TestRenderFileIsDeterministic(t *testing.T) {
	a := newTestAnnotator(nil)
	path := writeTestImage(t, 256, 128)

	first, err := a.RenderFile(path)
	require.NoError(t, err)
	second, err := a.RenderFile(path)
	require.NoError(t, err)

	assert.Equal(t, first.PNG, second.PNG)
}

func TestWithFontsSurvivesLaterRenderer(t *testing.T) {
	// overlay.New resolves host fonts; the bundled-only resolver applies in either order
	for _, opts := range [][]Option{
		{WithFonts(fonts.NewResolver()), WithRenderer(overlay.New())},
		{WithRenderer(overlay.New()), WithFonts(fonts.NewResolver())},
	} {
		a := New(nil, opts...)
		badge, err := a.renderer.Plan(createTestImage(200, 200), "200 × 200 pixels")
		require.NoError(t, err)
		assert.Equal(t, string(fonts.SourceGoMono), badge.FontSource)
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindRender, KindOf(fmt.Errorf("wrapped: %w", &Error{Kind: KindRender, Err: errors.New("x")})))

	assert.Equal(t, "decode", KindDecode.String())
	assert.Equal(t, "render", KindRender.String())
	assert.Equal(t, "clipboard", KindClipboard.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}

func TestGetVersion(t *testing.T) {
	assert.Equal(t, Version, GetVersion())
}
