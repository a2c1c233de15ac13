package emitter

import (
	"html"
	"strings"

	"go.trai.ch/stylegen/internal/core/domain"
)

const layoutRoot = `<ui:UXML xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:ui="UnityEngine.UIElements" ` +
	`xmlns:uie="UnityEditor.UIElements" noNamespaceSchemaLocation="../UIElementsSchema/UIElements.xsd" editor-extension-mode="False">`

// button appends a demo button carrying the asset's classes.
func (e *Emitter) button(a domain.Asset) {
	e.demo.WriteString(`        <ui:Button class="`)
	e.demo.WriteString(html.EscapeString(a.ClassList()))
	e.demo.WriteString(`" text="`)
	e.demo.WriteString(html.EscapeString(a.Name))
	e.demo.WriteString("\" />\n")
}

// Layout returns the demo layout document wrapping every emitted button in a scrollable container.
func (e *Emitter) Layout() string {
	var b strings.Builder
	b.WriteString(layoutRoot + "\n")
	b.WriteString(`    <Style src="` + e.cfg.StylesheetRef + "\"/>\n")
	b.WriteString("    <ui:ScrollView>\n")
	b.WriteString(`    <ui:VisualElement style="flex-direction: row; flex-wrap: wrap;">` + "\n")
	b.WriteString(e.demo.String())
	b.WriteString("    </ui:VisualElement>\n")
	b.WriteString("    </ui:ScrollView>\n")
	b.WriteString("</ui:UXML>\n")
	return b.String()
}
