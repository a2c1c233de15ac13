package emitter

import (
	"fmt"

	"go.trai.ch/stylegen/internal/core/domain"
)

const (
	// sliderTrackInset leaves room for the thumb at both ends of the slider track.
	sliderTrackInset = 32
	hoverLift        = "translate: 0 -2px"
	pressDrop        = "translate: 0 2px"
	noTint           = "-unity-background-image-tint-color: rgb(255, 255, 255)"
	noBorder         = "border-width: 0"
	transparent      = "background-color: transparent"
	opaque           = "opacity: 1"
	bold             = "-unity-font-style: bold"
)

// rule appends one block with the given declarations to the stylesheet.
func (e *Emitter) rule(selector string, decls ...string) {
	e.styles.WriteString(selector)
	e.styles.WriteString(" {\n")
	for _, d := range decls {
		e.styles.WriteString("    ")
		e.styles.WriteString(d)
		e.styles.WriteString(";\n")
	}
	e.styles.WriteString("}\n\n")
}

func background(id string) string {
	return "background-image: url('" + id + "')"
}

func px(prop string, v int) string {
	return fmt.Sprintf("%s: %dpx", prop, v)
}

func (e *Emitter) activeTint() string {
	return "-unity-background-image-tint-color: " + domain.CSSGray(e.cfg.ActiveTint)
}

func insets(left, right, top, bottom int) []string {
	return []string{
		fmt.Sprintf("-unity-slice-left: %d", left),
		fmt.Sprintf("-unity-slice-right: %d", right),
		fmt.Sprintf("-unity-slice-top: %d", top),
		fmt.Sprintf("-unity-slice-bottom: %d", bottom),
	}
}

func (e *Emitter) uniformSlices() []string {
	b := e.cfg.SliceBorder
	return insets(b, b, b, b)
}

func decls(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func (e *Emitter) roundButton(a domain.Asset, info domain.BitmapInfo) error {
	ids, err := e.ids(a.Path, a.VariantPath(e.cfg.DisabledVariant))
	if err != nil {
		return err
	}
	normal, disabled := ids[0], ids[1]
	sel := a.Selector()

	e.rule(sel,
		background(normal),
		px("width", info.Width),
		px("height", info.Height),
		"color: "+domain.CSSColor(info.Foreground),
		noBorder,
		transparent,
		"flex-grow: 0",
		"flex-shrink: 0",
	)
	e.rule(sel+":disabled", background(disabled), opaque)
	e.rule(sel+":hover", hoverLift)
	e.rule(sel+":active", e.activeTint(), pressDrop)
	return nil
}

func (e *Emitter) sliceButton(a domain.Asset, info domain.BitmapInfo) error {
	ids, err := e.ids(a.Path, a.VariantPath(e.cfg.DisabledVariant))
	if err != nil {
		return err
	}
	normal, disabled := ids[0], ids[1]
	sel := a.Selector()
	fg := "color: " + domain.CSSColor(info.Foreground)
	border, pad := e.cfg.SliceBorder, e.cfg.Padding

	e.rule(sel, decls(
		[]string{background(normal)},
		e.uniformSlices(),
		[]string{px("min-width", info.Width), fg, bold, noBorder, transparent},
	)...)
	e.rule("Button"+sel+":hover", hoverLift)
	e.rule("Button"+sel+":active", e.activeTint(), pressDrop)
	e.rule(sel+":disabled",
		background(disabled),
		"color: "+domain.CSSGray(e.cfg.DisabledFontColor),
		opaque,
	)
	e.rule(sel+":disabled:hover", "translate: 0 0")

	// Tabbed container variant: the header overlaps the tab body to look raised.
	tabView := "TabView" + sel
	e.rule(tabView, "background-image: none")
	e.rule(tabView+" Tab", decls(
		[]string{background(normal)},
		e.uniformSlices(),
		[]string{px("padding", border)},
	)...)
	e.rule(tabView+" .unity-tab__header", decls(
		[]string{background(normal)},
		e.uniformSlices(),
		[]string{
			px("min-width", info.Width), fg, bold, noBorder, transparent,
			px("padding", pad),
			px("padding-bottom", pad+border),
			px("margin-left", 0),
			px("margin-right", pad),
			px("margin-top", -border),
			fmt.Sprintf("translate: 0 %dpx", border),
			e.activeTint(),
		},
	)...)
	e.rule(tabView+" .unity-tab__header:checked", noTint)
	return nil
}

func (e *Emitter) checkbox(a domain.Asset, info domain.BitmapInfo) error {
	disabled := a.WithVariant(e.cfg.DisabledVariant)
	ids, err := e.ids(a.Path, a.CheckedPath(), disabled.Path, disabled.CheckedPath())
	if err != nil {
		return err
	}
	normal, checked, disabledID, disabledChecked := ids[0], ids[1], ids[2], ids[3]
	sel := a.Selector()
	mark := " .unity-toggle__checkmark"

	e.rule(sel)
	e.rule(sel+mark,
		background(normal), noTint,
		px("min-width", info.Width),
		px("min-height", info.Height),
		noBorder, transparent,
	)
	e.rule(sel+":checked"+mark, background(checked), noTint, transparent)
	e.rule(sel+":disabled"+mark, background(disabledID), noTint, transparent, opaque)
	e.rule(sel+":checked:disabled"+mark, background(disabledChecked), noTint, transparent, opaque)
	return nil
}

func (e *Emitter) verticalSlider(a domain.Asset) error {
	ids, err := e.ids(
		a.SiblingPath("arrow_basic_n_small.png"),
		a.SiblingPath("arrow_basic_s_small.png"),
		a.Path,
		a.SiblingPath(a.Name+"_section.png"),
	)
	if err != nil {
		return err
	}
	low, high, tracker, dragger := ids[0], ids[1], ids[2], ids[3]
	sel := a.Selector()
	b := e.cfg.SliceBorder

	e.rule(sel+" .unity-scroller--vertical > .unity-scroller__low-button", background(low), noTint, transparent, noBorder)
	e.rule(sel+" .unity-scroller--vertical > .unity-scroller__high-button", background(high), noTint, transparent, noBorder)
	e.rule(sel+" .unity-base-slider--vertical .unity-base-slider__tracker", decls(
		[]string{background(tracker)},
		insets(b, b, sliderTrackInset, sliderTrackInset),
		[]string{noBorder, transparent},
	)...)
	e.rule(sel+" .unity-base-slider--vertical .unity-base-slider__dragger", decls(
		[]string{background(dragger)},
		e.uniformSlices(),
		[]string{transparent},
	)...)
	return nil
}
