package ports

import "go.trai.ch/stylegen/internal/core/domain"

// ImageSampler defines the interface for reading facts from a sprite image.
//
//go:generate go run go.uber.org/mock/mockgen -source=sampler.go -destination=mocks/mock_sampler.go -package=mocks
type ImageSampler interface {
	// Sample decodes the image at path and returns its dimensions and center-derived colors.
	Sample(path string) (domain.BitmapInfo, error)
}
