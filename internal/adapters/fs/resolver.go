package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/stylegen/internal/core/domain"
	"go.trai.ch/stylegen/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RootResolver = (*Resolver)(nil)

// PackageMarker is the file that identifies a package root.
const PackageMarker = "package.json"

// Resolver locates package roots by looking for the package marker file.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the package root for target.
// Without an override the search starts at the parent of target and walks up to the filesystem root.
func (r *Resolver) Resolve(target, override string) (string, error) {
	if override != "" {
		root, err := filepath.Abs(override)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to resolve root path"), "root", override)
		}
		if !hasMarker(root) {
			return "", zerr.With(zerr.Wrap(domain.ErrRootInvalid, "please provide a valid package root"), "root", root)
		}
		return root, nil
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve target path"), "path", target)
	}

	dir := filepath.Dir(abs)
	for {
		if hasMarker(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", zerr.With(zerr.Wrap(domain.ErrRootNotFound, "please provide a valid package root"), "path", abs)
}

func hasMarker(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, PackageMarker))
	return err == nil && !info.IsDir()
}
