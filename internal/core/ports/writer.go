package ports

import "go.trai.ch/stylegen/internal/core/domain"

// OutputWriter defines the interface for persisting generated files.
//
//go:generate go run go.uber.org/mock/mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type OutputWriter interface {
	// Write stores every output in dir, replacing existing files.
	Write(dir string, outputs ...domain.Output) error
}
