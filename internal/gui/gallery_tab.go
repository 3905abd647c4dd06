//go:build !nogui
// +build !nogui

package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// createGalleryTab builds a widget sampler so a theme can be judged on the
// widget classes the stylesheets actually target.
func (p *Preview) createGalleryTab() fyne.CanvasObject {
	title := widget.NewLabelWithStyle("Widget Gallery", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	primaryButton := widget.NewButton("Primary Action", func() {})
	primaryButton.Importance = widget.HighImportance
	secondaryButton := widget.NewButton("Secondary", func() {})
	disabledButton := widget.NewButton("Disabled", func() {})
	disabledButton.Disable()

	entry := widget.NewEntry()
	entry.SetPlaceHolder("QLineEdit text...")

	check := widget.NewCheck("Enable option", func(bool) {})
	check.SetChecked(true)

	slider := widget.NewSlider(0, 100)
	slider.Value = 40

	progress := widget.NewProgressBar()
	progress.SetValue(0.6)

	controlsCard := widget.NewCard("Controls", "Buttons, input and indicators", container.NewVBox(
		container.NewHBox(primaryButton, secondaryButton, disabledButton),
		entry,
		check,
		slider,
		progress,
	))

	// The table shows the button style as the registry resolves it, so a
	// theme switch is visible as data too, not just as colors.
	table := widget.NewTable(
		func() (int, int) {
			return len(p.registry.ResolveClass("QPushButton")) + 1, 2
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("placeholder value")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			if id.Row == 0 {
				label.TextStyle = fyne.TextStyle{Bold: true}
				if id.Col == 0 {
					label.SetText("Property")
				} else {
					label.SetText("Value")
				}
				return
			}

			label.TextStyle = fyne.TextStyle{}
			props := p.registry.ResolveClass("QPushButton")
			keys := props.Keys()
			if id.Row-1 >= len(keys) {
				label.SetText("")
				return
			}
			if id.Col == 0 {
				label.SetText(keys[id.Row-1])
			} else {
				label.SetText(props[keys[id.Row-1]])
			}
		},
	)
	table.SetColumnWidth(0, 180)
	table.SetColumnWidth(1, 220)

	resolvedCard := widget.NewLabelWithStyle("Resolved QPushButton style", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	split := container.NewHSplit(
		container.NewScroll(controlsCard),
		container.NewBorder(resolvedCard, nil, nil, nil, table),
	)
	split.SetOffset(0.5)

	return container.NewBorder(title, nil, nil, nil, split)
}
