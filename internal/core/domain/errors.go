package domain

import "go.trai.ch/zerr"

var (
	// ErrRootNotFound is returned when no package root marker is found above the target directory.
	ErrRootNotFound = zerr.New("could not find package.json in any parent directory")

	// ErrRootInvalid is returned when an explicit package root does not contain the marker file.
	ErrRootInvalid = zerr.New("package root does not contain package.json")

	// ErrTargetNotFound is returned when the target directory does not exist or is not a directory.
	ErrTargetNotFound = zerr.New("target directory not found")

	// ErrImageLoad is returned when a sprite image cannot be opened or decoded.
	ErrImageLoad = zerr.New("failed to load image")

	// ErrConfigInvalid is returned when the style configuration cannot be parsed or holds invalid values.
	ErrConfigInvalid = zerr.New("invalid style configuration")

	// ErrAssetNotRelative is returned when an asset path cannot be expressed relative to the package root.
	ErrAssetNotRelative = zerr.New("asset path cannot be made relative to package root")
)
