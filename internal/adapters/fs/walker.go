// Package fs provides file system adapters for scanning sprites, locating the package root and writing outputs.
package fs

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/stylegen/internal/core/domain"
	"go.trai.ch/stylegen/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.AssetScanner = (*Walker)(nil)

const spriteExt = ".png"

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Scan returns the sorted PNG files below dir whose immediate parent directory is Default.
func (w *Walker) Scan(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		scanErr := zerr.Wrap(domain.ErrTargetNotFound, "invalid path")
		return nil, zerr.With(scanErr, "path", dir)
	}

	var files []string
	var walkErr error
	for path, err := range w.WalkFiles(dir) {
		if err != nil {
			walkErr = err
			break
		}
		if !strings.EqualFold(filepath.Ext(path), spriteExt) {
			continue
		}
		if !strings.EqualFold(filepath.Base(filepath.Dir(path)), domain.DefaultStateDir) {
			continue
		}
		files = append(files, path)
	}
	if walkErr != nil {
		return nil, zerr.With(zerr.Wrap(walkErr, "failed to scan directory"), "path", dir)
	}

	slices.Sort(files)
	return files, nil
}

// WalkFiles yields every regular file below root, skipping .git directories.
// A walk error is yielded once and ends the sequence.
func (w *Walker) WalkFiles(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				yield("", err)
				return filepath.SkipAll
			}

			if d.IsDir() {
				if d.Name() == ".git" {
					return filepath.SkipDir
				}
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}
