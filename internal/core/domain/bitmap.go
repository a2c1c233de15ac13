package domain

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ForegroundThreshold is the center-pixel luminance above which text is drawn black.
const ForegroundThreshold = 0.6

var (
	// Black is the foreground used on light sprites.
	Black = colorful.Color{R: 0, G: 0, B: 0}
	// White is the foreground used on dark sprites.
	White = colorful.Color{R: 1, G: 1, B: 1}
)

// BitmapInfo holds the facts sampled from one sprite image.
type BitmapInfo struct {
	Width      int
	Height     int
	Center     colorful.Color
	Foreground colorful.Color
}

// NewBitmapInfo builds a BitmapInfo and derives the foreground from the center color.
func NewBitmapInfo(width, height int, center colorful.Color) BitmapInfo {
	return BitmapInfo{
		Width:      width,
		Height:     height,
		Center:     center,
		Foreground: ForegroundFor(center),
	}
}

// Luminance returns the perceived brightness of c on a 0-1 scale using Rec. 601 weights.
func Luminance(c colorful.Color) float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// ForegroundFor picks black text for light backgrounds and white text otherwise.
func ForegroundFor(c colorful.Color) colorful.Color {
	if Luminance(c) > ForegroundThreshold {
		return Black
	}
	return White
}

// CSSColor formats c as an rgb() value with 8-bit channels.
func CSSColor(c colorful.Color) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// CSSGray formats an 8-bit gray level as an rgb() value.
func CSSGray(level int) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", level, level, level)
}
