package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// PackagesNamespace is the fixed scheme under which the consuming framework addresses package files.
const PackagesNamespace = "project://database/Packages/"

// AssetPath is a filesystem path paired with its logical asset identifier.
type AssetPath struct {
	Path string
	ID   string
}

// AssetNamer derives logical identifiers for files below a package root.
type AssetNamer struct {
	Root   string
	Prefix string
}

// NewAssetNamer creates an AssetNamer for the given package root and package name.
func NewAssetNamer(root, packageName string) AssetNamer {
	return AssetNamer{
		Root:   filepath.Clean(root),
		Prefix: PackagesNamespace + packageName + "/",
	}
}

// ID maps an absolute file path to its logical identifier.
func (n AssetNamer) ID(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve asset path"), "path", path)
	}

	rel, err := filepath.Rel(n.Root, abs)
	if err != nil {
		return "", zerr.With(zerr.Wrap(ErrAssetNotRelative, err.Error()), "path", path)
	}

	return n.Prefix + strings.ReplaceAll(filepath.ToSlash(rel), `\`, "/"), nil
}

// Name returns the AssetPath for the given file.
func (n AssetNamer) Name(path string) (AssetPath, error) {
	id, err := n.ID(path)
	if err != nil {
		return AssetPath{}, err
	}
	return AssetPath{Path: path, ID: id}, nil
}
