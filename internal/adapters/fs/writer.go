package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/stylegen/internal/core/domain"
	"go.trai.ch/stylegen/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OutputWriter = (*Writer)(nil)

// Writer persists generated files and reports their content digests.
type Writer struct {
	logger ports.Logger
}

// NewWriter creates a new Writer.
func NewWriter(logger ports.Logger) *Writer {
	return &Writer{logger: logger}
}

// Write stores every output in dir, overwriting existing files.
func (w *Writer) Write(dir string, outputs ...domain.Output) error {
	for _, out := range outputs {
		path := filepath.Join(dir, out.Name)

		//nolint:gosec // Generated stylesheets are meant to be world-readable
		if err := os.WriteFile(path, out.Content, 0o644); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write output"), "path", path)
		}

		w.logger.Info(fmt.Sprintf("wrote %s (%d bytes, xxhash %s)", path, len(out.Content), Digest(out.Content)))
	}
	return nil
}

// Digest returns the hex-encoded XXHash of content.
func Digest(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}
