package domain

import "go.trai.ch/zerr"

// Default style configuration values.
const (
	DefaultPackageName       = "nl.kenney.uipack"
	DefaultSliceBorder       = 8
	DefaultPadding           = 8
	DefaultActiveTint        = 180
	DefaultDisabledFontColor = 204
	DefaultDisabledVariant   = "Grey"
	DefaultStylesheetFile    = "Styles.uss"
	DefaultLayoutFile        = "Buttons.uxml"
	DefaultStylesheetRef     = PackagesNamespace + DefaultPackageName +
		"/UIPack/Styles.uss?fileID=7433441132597879392&amp;guid=6b2ba52b893135e4bbb95e1628538ea0&amp;type=3#Styles"
)

// StyleConfig holds the fixed values that parameterize generated rules and output files.
type StyleConfig struct {
	// PackageName is the package segment of every logical asset identifier.
	PackageName string
	// SliceBorder is the 9-slice inset applied on all sides of resizable sprites.
	SliceBorder int
	// Padding is the extra padding of tab headers.
	Padding int
	// ActiveTint is the gray level used to darken pressed widgets.
	ActiveTint int
	// DisabledFontColor is the gray level of text on disabled slice buttons.
	DisabledFontColor int
	// DisabledVariant is the color variant whose sprites represent the disabled state.
	DisabledVariant string
	StylesheetFile  string
	LayoutFile      string
	// StylesheetRef is the already-escaped stylesheet resource referenced by the layout document.
	StylesheetRef string
}

// DefaultStyleConfig returns the configuration matching the stock sprite pack.
func DefaultStyleConfig() StyleConfig {
	return StyleConfig{
		PackageName:       DefaultPackageName,
		SliceBorder:       DefaultSliceBorder,
		Padding:           DefaultPadding,
		ActiveTint:        DefaultActiveTint,
		DisabledFontColor: DefaultDisabledFontColor,
		DisabledVariant:   DefaultDisabledVariant,
		StylesheetFile:    DefaultStylesheetFile,
		LayoutFile:        DefaultLayoutFile,
		StylesheetRef:     DefaultStylesheetRef,
	}
}

// Validate checks that every value can produce well-formed output.
func (c StyleConfig) Validate() error {
	switch {
	case c.PackageName == "":
		return invalidField("package_name", c.PackageName)
	case c.SliceBorder < 0:
		return invalidField("slice_border", c.SliceBorder)
	case c.Padding < 0:
		return invalidField("padding", c.Padding)
	case c.ActiveTint < 0 || c.ActiveTint > 255:
		return invalidField("active_tint", c.ActiveTint)
	case c.DisabledFontColor < 0 || c.DisabledFontColor > 255:
		return invalidField("disabled_font_color", c.DisabledFontColor)
	case c.DisabledVariant == "":
		return invalidField("disabled_variant", c.DisabledVariant)
	case c.StylesheetFile == "":
		return invalidField("stylesheet_file", c.StylesheetFile)
	case c.LayoutFile == "":
		return invalidField("layout_file", c.LayoutFile)
	}
	return nil
}

func invalidField(field string, value any) error {
	err := zerr.Wrap(ErrConfigInvalid, "value out of range")
	err = zerr.With(err, "value", value)
	return zerr.With(err, "field", field)
}

// Namer returns the AssetNamer for files below root.
func (c StyleConfig) Namer(root string) AssetNamer {
	return NewAssetNamer(root, c.PackageName)
}
