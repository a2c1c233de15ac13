// Package emitter turns classified sprites into stylesheet rules and demo layout entries.
package emitter

import (
	"strings"

	"go.trai.ch/stylegen/internal/core/domain"
)

// Emitter accumulates the generated stylesheet and demo layout for one run.
// Output order follows the order of Emit calls.
type Emitter struct {
	cfg    domain.StyleConfig
	namer  domain.AssetNamer
	styles strings.Builder
	demo   strings.Builder
	count  int
}

// New creates an Emitter that names assets relative to root.
func New(cfg domain.StyleConfig, root string) *Emitter {
	return &Emitter{
		cfg:   cfg,
		namer: cfg.Namer(root),
	}
}

// Emit appends the rules for a classified asset. Sampled facts are ignored for kinds that do not need them.
// Skipped assets produce no output.
func (e *Emitter) Emit(asset domain.Asset, info domain.BitmapInfo) error {
	var err error
	switch asset.Kind {
	case domain.KindRoundButton:
		err = e.roundButton(asset, info)
	case domain.KindSliceButton:
		err = e.sliceButton(asset, info)
	case domain.KindCheckbox:
		err = e.checkbox(asset, info)
	case domain.KindVerticalSlider:
		err = e.verticalSlider(asset)
	default:
		return nil
	}
	if err != nil {
		return err
	}

	if asset.Kind.HasDemo() {
		e.button(asset)
	}
	e.count++
	return nil
}

// Count returns the number of assets that produced rules.
func (e *Emitter) Count() int {
	return e.count
}

// Stylesheet returns the accumulated stylesheet.
func (e *Emitter) Stylesheet() string {
	return e.styles.String()
}

// Outputs returns the stylesheet and the demo layout as files named by the configuration.
func (e *Emitter) Outputs() []domain.Output {
	return []domain.Output{
		{Name: e.cfg.LayoutFile, Content: []byte(e.Layout())},
		{Name: e.cfg.StylesheetFile, Content: []byte(e.Stylesheet())},
	}
}

// ids resolves logical identifiers for the given paths in order.
func (e *Emitter) ids(paths ...string) ([]string, error) {
	out := make([]string, len(paths))
	for i, p := range paths {
		id, err := e.namer.ID(p)
		if err != nil {
			return nil, err
		}
		out[i] = id
	}
	return out, nil
}
