package config

// Stylefile represents the structure of the stylegen.yaml configuration file.
// Omitted fields keep their default values.
type Stylefile struct {
	PackageName       *string `yaml:"package_name"`
	SliceBorder       *int    `yaml:"slice_border"`
	Padding           *int    `yaml:"padding"`
	ActiveTint        *int    `yaml:"active_tint"`
	DisabledFontColor *int    `yaml:"disabled_font_color"`
	DisabledVariant   *string `yaml:"disabled_variant"`
	StylesheetFile    *string `yaml:"stylesheet_file"`
	LayoutFile        *string `yaml:"layout_file"`
	StylesheetRef     *string `yaml:"stylesheet_ref"`
}
