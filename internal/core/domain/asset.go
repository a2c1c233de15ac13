package domain

import (
	"path/filepath"
	"strings"
)

// DefaultStateDir is the directory name that holds the normal-state sprites of a variant.
const DefaultStateDir = "Default"

// WidgetKind is the UI widget archetype a sprite represents.
type WidgetKind int

const (
	// KindSkip marks a file that does not map to any widget.
	KindSkip WidgetKind = iota
	// KindRoundButton is a fixed-size button drawn from an unresizable sprite.
	KindRoundButton
	// KindSliceButton is a 9-slice button that also styles tabbed containers.
	KindSliceButton
	// KindCheckbox is a toggle whose checked image is the sibling _checkmark sprite.
	KindCheckbox
	// KindVerticalSlider is a vertical scroller built from the slider track and its siblings.
	KindVerticalSlider
)

// String returns the name of the kind.
func (k WidgetKind) String() string {
	switch k {
	case KindRoundButton:
		return "round_button"
	case KindSliceButton:
		return "slice_button"
	case KindCheckbox:
		return "checkbox"
	case KindVerticalSlider:
		return "vertical_slider"
	default:
		return "skip"
	}
}

// HasDemo reports whether the kind is represented in the demo layout.
func (k WidgetKind) HasDemo() bool {
	return k == KindRoundButton || k == KindSliceButton
}

// NeedsSample reports whether emitting the kind requires image facts.
func (k WidgetKind) NeedsSample() bool {
	return k == KindRoundButton || k == KindSliceButton || k == KindCheckbox
}

// Classify decides the widget archetype from a file base name and its parent directory.
// Matching is case-insensitive. Files outside a Default directory are skipped.
func Classify(name, parent string) WidgetKind {
	if !strings.EqualFold(parent, DefaultStateDir) {
		return KindSkip
	}

	lower := strings.ToLower(name)
	switch {
	case strings.HasPrefix(lower, "button_round"):
		return KindRoundButton
	case strings.HasPrefix(lower, "button_rectangle"), strings.HasPrefix(lower, "button_square"):
		return KindSliceButton
	case strings.HasPrefix(lower, "check_square"):
		if strings.HasSuffix(lower, "_cross") ||
			strings.HasSuffix(lower, "_square") ||
			strings.HasSuffix(lower, "_checkmark") {
			return KindSkip
		}
		return KindCheckbox
	case lower == "slide_vertical_color":
		return KindVerticalSlider
	default:
		return KindSkip
	}
}

// Asset is the classification record produced once per scanned sprite.
type Asset struct {
	// Path is the absolute path of the sprite.
	Path string
	// Name is the file base name without extension.
	Name string
	// Variant is the color-variant directory name above Default.
	Variant string
	Kind    WidgetKind
}

// NewAsset classifies the sprite at path using its name and directory layout.
func NewAsset(path string) Asset {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	variant := filepath.Base(filepath.Dir(dir))

	return Asset{
		Path:    path,
		Name:    name,
		Variant: variant,
		Kind:    Classify(name, filepath.Base(dir)),
	}
}

// Selector returns the compound class selector scoping every rule of the asset.
func (a Asset) Selector() string {
	return "." + strings.ToLower(a.Variant) + "." + a.Name
}

// ClassList returns the space-separated class attribute used in layout documents.
func (a Asset) ClassList() string {
	return strings.ToLower(a.Variant) + " " + a.Name
}

// VariantPath returns the same sprite under another color variant.
// Substituting the asset's own variant yields the same path.
func (a Asset) VariantPath(variant string) string {
	stateDir := filepath.Dir(a.Path)
	variantsDir := filepath.Dir(filepath.Dir(stateDir))
	return filepath.Join(variantsDir, variant, filepath.Base(stateDir), filepath.Base(a.Path))
}

// SiblingPath returns a file next to the sprite.
func (a Asset) SiblingPath(file string) string {
	return filepath.Join(filepath.Dir(a.Path), file)
}

// CheckedPath returns the checkmark sprite paired with a checkbox.
func (a Asset) CheckedPath() string {
	return a.SiblingPath(a.Name + "_checkmark" + filepath.Ext(a.Path))
}

// WithVariant returns a copy of the asset relocated to another color variant.
func (a Asset) WithVariant(variant string) Asset {
	moved := a
	moved.Path = a.VariantPath(variant)
	moved.Variant = variant
	return moved
}
