package domain_test

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/stylegen/internal/core/domain"
)

func gray(level uint8) colorful.Color {
	return colorful.Color{R: float64(level) / 255, G: float64(level) / 255, B: float64(level) / 255}
}

func TestLuminance(t *testing.T) {
	assert.InDelta(t, 1.0, domain.Luminance(gray(255)), 1e-9)
	assert.InDelta(t, 0.0, domain.Luminance(gray(0)), 1e-9)
	assert.InDelta(t, 0.588, domain.Luminance(gray(150)), 1e-3)
}

func TestForegroundFor(t *testing.T) {
	tests := []struct {
		name  string
		color colorful.Color
		want  colorful.Color
	}{
		{"white background", gray(255), domain.Black},
		{"black background", gray(0), domain.White},
		{"mid gray below threshold", gray(150), domain.White},
		{"light gray above threshold", gray(160), domain.Black},
		{"saturated blue", colorful.Color{R: 0, G: 0, B: 1}, domain.White},
		{"saturated yellow", colorful.Color{R: 1, G: 1, B: 0}, domain.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ForegroundFor(tt.color))
		})
	}
}

func TestNewBitmapInfo(t *testing.T) {
	info := domain.NewBitmapInfo(32, 16, gray(255))

	assert.Equal(t, 32, info.Width)
	assert.Equal(t, 16, info.Height)
	assert.Equal(t, "rgb(0, 0, 0)", domain.CSSColor(info.Foreground))
}

func TestCSSColor(t *testing.T) {
	assert.Equal(t, "rgb(255, 255, 255)", domain.CSSColor(domain.White))
	assert.Equal(t, "rgb(0, 0, 0)", domain.CSSColor(domain.Black))
	assert.Equal(t, "rgb(180, 180, 180)", domain.CSSGray(180))
}
