//go:build !nogui
// +build !nogui

package gui_test

import (
	"image/color"
	"testing"

	"themed/internal/gui"
	"themed/internal/theme"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) (*gui.Adapter, *theme.Registry) {
	t.Helper()

	registry, err := theme.NewWithBuiltins()
	require.NoError(t, err)

	return gui.NewAdapter(registry), registry
}

func nrgba(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func TestAdapterColors(t *testing.T) {
	adapter, registry := newTestAdapter(t)

	t.Run("dark is the default palette", func(t *testing.T) {
		tests := []struct {
			name     fyne.ThemeColorName
			expected color.NRGBA
		}{
			{fynetheme.ColorNameBackground, nrgba(0x1e, 0x1e, 0x1e)},
			{fynetheme.ColorNameForeground, nrgba(0xe0, 0xe0, 0xe0)},
			{fynetheme.ColorNameButton, nrgba(0x0d, 0x6e, 0xfd)},
			{fynetheme.ColorNamePrimary, nrgba(0x0d, 0x6e, 0xfd)},
			{fynetheme.ColorNameHover, nrgba(0x1a, 0x75, 0xff)},
			{fynetheme.ColorNameInputBackground, nrgba(0x2a, 0x2a, 0x2a)},
			{fynetheme.ColorNameHeaderBackground, nrgba(0x35, 0x35, 0x35)},
			{fynetheme.ColorNameSelection, nrgba(0x1f, 0x1f, 0x1f)},
		}

		for _, tt := range tests {
			got := adapter.Color(tt.name, fynetheme.VariantDark)
			assert.Equal(t, tt.expected, got, "color %s", tt.name)
		}
	})

	t.Run("follows the active theme", func(t *testing.T) {
		require.NoError(t, registry.SetActive("light"))
		defer func() { require.NoError(t, registry.SetActive("dark")) }()

		assert.Equal(t, nrgba(0xff, 0xff, 0xff), adapter.Color(fynetheme.ColorNameBackground, fynetheme.VariantDark))
		assert.Equal(t, nrgba(0x19, 0x76, 0xd2), adapter.Color(fynetheme.ColorNamePrimary, fynetheme.VariantDark))
		assert.Equal(t, nrgba(0x12, 0x59, 0xa4), adapter.Color(fynetheme.ColorNameHover, fynetheme.VariantDark))
	})

	t.Run("border shorthand yields its color component", func(t *testing.T) {
		// dark: QLineEdit { border: 1px solid #555; }
		assert.Equal(t, nrgba(0x55, 0x55, 0x55), adapter.Color(fynetheme.ColorNameInputBorder, fynetheme.VariantDark))
	})
}

func TestAdapterShortHexColors(t *testing.T) {
	adapter, registry := newTestAdapter(t)

	err := registry.Register("terse", `
QWidget { background: #123; color: #fff; }
`)
	require.NoError(t, err)
	require.NoError(t, registry.SetActive("terse"))

	assert.Equal(t, nrgba(0x11, 0x22, 0x33), adapter.Color(fynetheme.ColorNameBackground, fynetheme.VariantDark))
	assert.Equal(t, nrgba(0xff, 0xff, 0xff), adapter.Color(fynetheme.ColorNameForeground, fynetheme.VariantDark))
}

func TestAdapterFallbacks(t *testing.T) {
	adapter, registry := newTestAdapter(t)
	base := fynetheme.DefaultTheme()

	t.Run("unmapped color names come from the default theme", func(t *testing.T) {
		assert.Equal(t,
			base.Color(fynetheme.ColorNameScrollBar, fynetheme.VariantDark),
			adapter.Color(fynetheme.ColorNameScrollBar, fynetheme.VariantDark))
	})

	t.Run("unparseable values fall through", func(t *testing.T) {
		err := registry.Register("gradient", `
QWidget { background: qlineargradient(x1:0, y1:0, x2:0, y2:1, stop:0 #333, stop:1 #111); }
QPushButton { background: transparent; }
`)
		require.NoError(t, err)
		require.NoError(t, registry.SetActive("gradient"))
		defer func() { require.NoError(t, registry.SetActive("dark")) }()

		// The gradient still carries a hex stop, which is good enough
		// for a flat preview; "transparent" is not parseable and defers
		// to the base theme.
		assert.Equal(t, nrgba(0x33, 0x33, 0x33), adapter.Color(fynetheme.ColorNameBackground, fynetheme.VariantDark))
		assert.Equal(t,
			base.Color(fynetheme.ColorNameButton, fynetheme.VariantDark),
			adapter.Color(fynetheme.ColorNameButton, fynetheme.VariantDark))
	})

	t.Run("empty registry defers everything", func(t *testing.T) {
		empty := gui.NewAdapter(theme.New())
		assert.Equal(t,
			base.Color(fynetheme.ColorNameBackground, fynetheme.VariantDark),
			empty.Color(fynetheme.ColorNameBackground, fynetheme.VariantDark))
	})
}

func TestAdapterVariant(t *testing.T) {
	adapter, registry := newTestAdapter(t)

	assert.Equal(t, fynetheme.VariantDark, adapter.Variant())

	require.NoError(t, registry.SetActive("light"))
	assert.Equal(t, fynetheme.VariantLight, adapter.Variant())

	require.NoError(t, registry.SetActive("dark"))
	assert.Equal(t, fynetheme.VariantDark, adapter.Variant())
}

func TestAdapterChromeDelegation(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	base := fynetheme.DefaultTheme()

	assert.Equal(t, base.Font(fyne.TextStyle{}), adapter.Font(fyne.TextStyle{}))
	assert.Equal(t, base.Font(fyne.TextStyle{Bold: true}), adapter.Font(fyne.TextStyle{Bold: true}))
	assert.Equal(t, base.Icon(fynetheme.IconNameHome), adapter.Icon(fynetheme.IconNameHome))

	// Both builtin themes set QWidget font-size to 12pt
	assert.Equal(t, float32(12), adapter.Size(fynetheme.SizeNameText))
	assert.Equal(t, base.Size(fynetheme.SizeNamePadding), adapter.Size(fynetheme.SizeNamePadding))
}
