package ports

import "go.trai.ch/stylegen/internal/core/domain"

// ConfigLoader defines the interface for loading the style configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration for the given package root.
	// An empty path selects the default location below the root.
	// A missing file yields the default configuration.
	Load(root, path string) (domain.StyleConfig, error)
}
