//go:build !nogui
// +build !nogui

package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// createSettingsTab creates the settings tab
func (p *Preview) createSettingsTab() fyne.CanvasObject {
	// --- Theme Selection ---
	p.themeSelect = widget.NewSelect(p.registry.Names(), func(value string) {
		if value == "" || value == p.registry.Active() {
			return
		}
		if err := p.registry.SetActive(value); err != nil {
			p.ShowError("Failed to apply theme", err)
			return
		}
		p.refreshContent()
	})
	p.themeSelect.SetSelected(p.registry.Active())

	themeCard := widget.NewCard("Theme", "Applies immediately to this window", container.NewVBox(
		p.themeSelect,
	))

	// --- Import / Export ---
	importButton := widget.NewButton("Import Theme...", func() {
		dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil {
				p.ShowError("Import Failed", err)
				return
			}
			if reader == nil {
				return // cancelled
			}
			defer reader.Close()

			name, source, err := importThemeSource(reader)
			if err != nil {
				p.ShowError("Import Failed", err)
				return
			}
			if err := p.registry.Register(name, source); err != nil {
				p.ShowError("Import Failed", err)
				return
			}

			p.themeSelect.Options = p.registry.Names()
			p.themeSelect.Refresh()
			p.ShowInfo(fmt.Sprintf("Theme '%s' imported", name))
		}, p.mainWindow)
	})

	exportButton := widget.NewButton("Export Active Theme...", func() {
		dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil {
				p.ShowError("Export Failed", err)
				return
			}
			if writer == nil {
				return // cancelled
			}
			defer writer.Close()

			if err := exportThemeSource(p.registry, p.registry.Active(), writer); err != nil {
				p.ShowError("Export Failed", err)
				return
			}
			p.ShowInfo("Theme exported")
		}, p.mainWindow)
	})

	fileCard := widget.NewCard("Theme Files", "Stylesheets in the registry format", container.NewHBox(
		importButton,
		exportButton,
	))

	// --- Watch Mode ---
	watchStatus := widget.NewLabel("")
	updateWatchStatus := func() {
		if p.reloader == nil || !p.reloader.Status().Running {
			watchStatus.SetText("Not watching")
			return
		}
		status := p.reloader.Status()
		watchStatus.SetText(fmt.Sprintf("Watching %d directories", len(status.WatchDirectories)))
	}
	updateWatchStatus()

	startWatchButton := widget.NewButton("Start Watching", func() {
		p.startWatchMode()
		updateWatchStatus()
	})
	stopWatchButton := widget.NewButton("Stop Watching", func() {
		p.stopWatchMode()
		updateWatchStatus()
	})

	watchCard := widget.NewCard("Watch Mode", "Reload themes when their files change", container.NewVBox(
		watchStatus,
		container.NewHBox(startWatchButton, stopWatchButton),
	))

	return container.NewVBox(
		themeCard,
		fileCard,
		watchCard,
	)
}
