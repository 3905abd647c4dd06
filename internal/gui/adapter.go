//go:build !nogui
// +build !nogui

package gui

import (
	"image/color"
	"strconv"
	"strings"

	"themed/internal/qss"
	"themed/internal/theme"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// Adapter exposes the registry's active theme as a fyne.Theme. Widget
// colors come from the stylesheet rules; everything a stylesheet does not
// express falls back to fyne's default theme.
type Adapter struct {
	registry *theme.Registry
	base     fyne.Theme
}

// NewAdapter wraps a registry for use with Settings().SetTheme.
func NewAdapter(registry *theme.Registry) *Adapter {
	return &Adapter{
		registry: registry,
		base:     fynetheme.DefaultTheme(),
	}
}

// Color implements fyne.Theme. The variant argument is ignored; the active
// theme decides whether the palette reads as light or dark.
func (a *Adapter) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if c, ok := a.lookup(name); ok {
		return c
	}
	return a.base.Color(name, a.Variant())
}

func (a *Adapter) lookup(name fyne.ThemeColorName) (color.Color, bool) {
	switch name {
	case fynetheme.ColorNameBackground:
		return a.backgroundOf(qss.Query{Class: "QWidget"})
	case fynetheme.ColorNameForeground:
		return a.colorProp(qss.Query{Class: "QWidget"}, "color")
	case fynetheme.ColorNameButton, fynetheme.ColorNamePrimary:
		return a.backgroundOf(qss.Query{Class: "QPushButton"})
	case fynetheme.ColorNameHover:
		return a.backgroundOf(qss.Query{Class: "QPushButton", States: []string{"hover"}})
	case fynetheme.ColorNameInputBackground:
		return a.backgroundOf(qss.Query{Class: "QLineEdit"})
	case fynetheme.ColorNameInputBorder:
		return a.colorProp(qss.Query{Class: "QLineEdit"}, "border")
	case fynetheme.ColorNameHeaderBackground:
		return a.backgroundOf(qss.Query{Class: "QHeaderView", SubElement: "section"})
	case fynetheme.ColorNameSelection:
		return a.colorProp(qss.Query{Class: "QTableWidget"}, "alternate-background-color")
	}
	return nil, false
}

// backgroundOf accepts both background and background-color spellings.
func (a *Adapter) backgroundOf(q qss.Query) (color.Color, bool) {
	props := a.registry.Resolve(q)
	if c, ok := parseColorValue(props["background"]); ok {
		return c, true
	}
	if c, ok := parseColorValue(props["background-color"]); ok {
		return c, true
	}
	return nil, false
}

func (a *Adapter) colorProp(q qss.Query, key string) (color.Color, bool) {
	return parseColorValue(a.registry.Resolve(q)[key])
}

// Variant judges the active theme by its window background luminance.
func (a *Adapter) Variant() fyne.ThemeVariant {
	if c, ok := a.backgroundOf(qss.Query{Class: "QWidget"}); ok {
		if nrgba, ok := c.(color.NRGBA); ok {
			// Rec. 601 luma
			luma := 0.299*float64(nrgba.R) + 0.587*float64(nrgba.G) + 0.114*float64(nrgba.B)
			if luma > 127 {
				return fynetheme.VariantLight
			}
		}
	}
	return fynetheme.VariantDark
}

// Font implements fyne.Theme.
func (a *Adapter) Font(style fyne.TextStyle) fyne.Resource {
	return a.base.Font(style)
}

// Icon implements fyne.Theme.
func (a *Adapter) Icon(name fyne.ThemeIconName) fyne.Resource {
	return a.base.Icon(name)
}

// Size implements fyne.Theme. The text size tracks the active theme's
// QWidget font-size when it is given in points.
func (a *Adapter) Size(name fyne.ThemeSizeName) float32 {
	if name == fynetheme.SizeNameText {
		if pts, ok := pointSize(a.registry.Resolve(qss.Query{Class: "QWidget"})["font-size"]); ok {
			return pts
		}
	}
	return a.base.Size(name)
}

// parseColorValue extracts a color from a property value, accepting bare
// #rgb / #rrggbb literals and shorthands such as "1px solid #444".
func parseColorValue(v string) (color.Color, bool) {
	for _, field := range strings.Fields(v) {
		if c, ok := parseHexColor(field); ok {
			return c, true
		}
	}
	return nil, false
}

func parseHexColor(v string) (color.NRGBA, bool) {
	if len(v) < 2 || v[0] != '#' {
		return color.NRGBA{}, false
	}

	n, err := strconv.ParseUint(v[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}

	switch len(v) - 1 {
	case 3:
		r := uint8(n >> 8 & 0xf)
		g := uint8(n >> 4 & 0xf)
		b := uint8(n & 0xf)
		return color.NRGBA{R: r * 17, G: g * 17, B: b * 17, A: 0xff}, true
	case 6:
		return color.NRGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, true
	}

	return color.NRGBA{}, false
}

func pointSize(v string) (float32, bool) {
	v = strings.TrimSpace(v)
	if !strings.HasSuffix(v, "pt") {
		return 0, false
	}

	pts, err := strconv.ParseFloat(strings.TrimSuffix(v, "pt"), 32)
	if err != nil || pts <= 0 {
		return 0, false
	}
	return float32(pts), true
}
