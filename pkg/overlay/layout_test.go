package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/menta2k/pixeldims/pkg/types"
)

func TestScaleFor(t *testing.T) {
	tests := []struct {
		minDim int
		scale  float64
	}{
		{1, 0.15},
		{499, 0.15},
		{500, 0.15},
		{501, 0.10},
		{1000, 0.10},
		{1001, 0.06},
		{2000, 0.06},
		{2001, 0.04},
		{100000, 0.04},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.scale, ScaleFor(tt.minDim), "minDim=%d", tt.minDim)
	}
}

func TestComputeLayout(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          types.Layout
	}{
		{"tiny", 1, 1, types.Layout{FontSize: 16, Padding: 10, BorderThickness: 2, BottomMargin: 0}},
		{"small square", 100, 100, types.Layout{FontSize: 16, Padding: 10, BorderThickness: 2, BottomMargin: 3}},
		{"small scaled", 160, 300, types.Layout{FontSize: 24, Padding: 14, BorderThickness: 2, BottomMargin: 9}},
		{"medium", 1000, 800, types.Layout{FontSize: 48, Padding: 28, BorderThickness: 3, BottomMargin: 24}},
		{"bucket edge 500", 500, 500, types.Layout{FontSize: 48, Padding: 28, BorderThickness: 3, BottomMargin: 15}},
		{"large", 4000, 3000, types.Layout{FontSize: 48, Padding: 28, BorderThickness: 3, BottomMargin: 90}},
		{"height drives margin", 5000, 1000, types.Layout{FontSize: 48, Padding: 28, BorderThickness: 3, BottomMargin: 30}},
		{"short strip", 2000, 33, types.Layout{FontSize: 16, Padding: 10, BorderThickness: 2, BottomMargin: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeLayout(tt.width, tt.height))
		})
	}
}

func TestComputeLayoutFontSizeFollowsBucket(t *testing.T) {
	for minDim := 1; minDim <= 500; minDim++ {
		want := max(16, min(48, int(float64(minDim)*0.15)))
		got := ComputeLayout(minDim, minDim+1).FontSize
		if got != want {
			t.Fatalf("minDim %d: expected font size %d, got %d", minDim, want, got)
		}
	}
}

func TestComputeLayoutBounds(t *testing.T) {
	for _, minDim := range []int{1, 2, 50, 106, 107, 320, 500, 501, 1000, 1001, 2000, 2001, 100000} {
		l := ComputeLayout(minDim, minDim)

		assert.GreaterOrEqual(t, l.FontSize, MinFontSize, "minDim=%d", minDim)
		assert.LessOrEqual(t, l.FontSize, MaxFontSize, "minDim=%d", minDim)
		assert.GreaterOrEqual(t, l.Padding, MinPadding, "minDim=%d", minDim)
		assert.GreaterOrEqual(t, l.BorderThickness, MinBorderThickness, "minDim=%d", minDim)
		assert.GreaterOrEqual(t, l.BottomMargin, 0, "minDim=%d", minDim)
	}
}

func TestBottomMargin(t *testing.T) {
	assert.Equal(t, 30, ComputeLayout(1200, 1000).BottomMargin)
	assert.Equal(t, 0, ComputeLayout(1200, 33).BottomMargin)
	assert.Equal(t, 1, ComputeLayout(1200, 34).BottomMargin)
}

func BenchmarkComputeLayout(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ComputeLayout(1920, 1080)
	}
}
