// Package config provides the style configuration loader for stylegen.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/stylegen/internal/core/domain"
	"go.trai.ch/stylegen/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the package root.
const DefaultFilename = "stylegen.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration at path, or at the default location below root when path is empty.
// Only a missing default file falls back to the default configuration.
func (l *Loader) Load(root, path string) (domain.StyleConfig, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(root, DefaultFilename)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultStyleConfig(), nil
		}
		return domain.StyleConfig{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return domain.StyleConfig{}, zerr.With(err, "path", path)
	}

	l.logger.Info("using style configuration " + path)
	return cfg, nil
}

// Parse decodes YAML configuration data over the default configuration and validates the result.
func Parse(data []byte) (domain.StyleConfig, error) {
	var file Stylefile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.StyleConfig{}, zerr.Wrap(domain.ErrConfigInvalid, err.Error())
	}

	cfg := domain.DefaultStyleConfig()
	setString(&cfg.PackageName, file.PackageName)
	setInt(&cfg.SliceBorder, file.SliceBorder)
	setInt(&cfg.Padding, file.Padding)
	setInt(&cfg.ActiveTint, file.ActiveTint)
	setInt(&cfg.DisabledFontColor, file.DisabledFontColor)
	setString(&cfg.DisabledVariant, file.DisabledVariant)
	setString(&cfg.StylesheetFile, file.StylesheetFile)
	setString(&cfg.LayoutFile, file.LayoutFile)
	setString(&cfg.StylesheetRef, file.StylesheetRef)

	if err := cfg.Validate(); err != nil {
		return domain.StyleConfig{}, err
	}
	return cfg, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
