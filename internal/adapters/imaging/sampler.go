// Package imaging implements the image sampler that reads sprite facts from PNG files.
package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"go.trai.ch/stylegen/internal/core/domain"
	"go.trai.ch/stylegen/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ImageSampler = (*Sampler)(nil)

// Sampler decodes PNG sprites and samples their center pixel.
type Sampler struct{}

// NewSampler creates a new Sampler.
func NewSampler() *Sampler {
	return &Sampler{}
}

// Sample decodes the image at path. The file is closed before Sample returns.
func (s *Sampler) Sample(path string) (domain.BitmapInfo, error) {
	img, err := decode(path)
	if err != nil {
		return domain.BitmapInfo{}, err
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return domain.BitmapInfo{}, zerr.With(zerr.Wrap(domain.ErrImageLoad, "image has no pixels"), "path", path)
	}

	center := CenterColor(img)
	return domain.NewBitmapInfo(bounds.Dx(), bounds.Dy(), center), nil
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from the scanned target directory
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrImageLoad, err.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	img, err := png.Decode(f)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrImageLoad, err.Error()), "path", path)
	}
	return img, nil
}

// CenterColor returns the straight-alpha color of the pixel at the center of img, ignoring alpha.
func CenterColor(img image.Image) colorful.Color {
	b := img.Bounds()
	px := color.NRGBAModel.Convert(img.At(b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2)).(color.NRGBA)
	return colorful.Color{
		R: float64(px.R) / 255,
		G: float64(px.G) / 255,
		B: float64(px.B) / 255,
	}
}
