//go:build !nogui
// +build !nogui

package gui

import (
	"fmt"

	"themed/internal/config"
	"themed/internal/log"
	"themed/internal/theme"
	"themed/internal/watch"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	fynetheme "fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// observerID identifies the preview window's registry subscription.
const observerID = "gui-preview"

// Preview is the fyne application that renders the active theme across a
// gallery of widgets. It subscribes to the registry so an active-theme
// switch restyles the whole window.
type Preview struct {
	fyneApp     fyne.App
	mainWindow  fyne.Window
	cfg         *config.Config
	registry    *theme.Registry
	adapter     *Adapter
	reloader    *watch.Reloader
	statusLabel *widget.Label
	themeSelect *widget.Select
}

// NewPreview creates the preview application.
func NewPreview(cfg *config.Config, registry *theme.Registry) *Preview {
	return newPreviewWith(app.NewWithID("io.github.themed"), cfg, registry)
}

// newPreviewWith is split out so tests can supply a test app.
func newPreviewWith(fyneApp fyne.App, cfg *config.Config, registry *theme.Registry) *Preview {
	p := &Preview{
		fyneApp:  fyneApp,
		cfg:      cfg,
		registry: registry,
		adapter:  NewAdapter(registry),
	}

	p.fyneApp.Settings().SetTheme(p.adapter)

	p.mainWindow = p.fyneApp.NewWindow("Themed")
	p.setupMainWindow()

	// Restyle whenever the active theme changes, whatever triggered it
	if err := registry.SubscribeFunc(observerID, func(change theme.Change) {
		p.fyneApp.Settings().SetTheme(p.adapter)
		p.updateStatusText()
		if p.themeSelect != nil && p.themeSelect.Selected != change.Current {
			p.themeSelect.SetSelected(change.Current)
		}
	}); err != nil {
		log.Warnf("Could not subscribe the preview window: %v", err)
	}

	return p
}

// Run shows the main window and blocks until the application exits.
func (p *Preview) Run() {
	if p.cfg.Watch.Enabled {
		p.startWatchMode()
	}

	p.mainWindow.Show()
	p.fyneApp.Run()

	p.stopWatchMode()
	if err := p.registry.Unsubscribe(observerID); err != nil {
		log.Debugf("Unsubscribe on shutdown: %v", err)
	}
}

// setupMainWindow builds the window chrome: wordmark, toolbar, tabs and
// the status bar.
func (p *Preview) setupMainWindow() {
	p.mainWindow.Resize(fyne.NewSize(900, 700))

	accent := p.adapter.Color(fynetheme.ColorNamePrimary, p.adapter.Variant())

	wordmark := canvas.NewText("themed", accent)
	wordmark.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	wordmark.TextSize = 28
	wordmark.Alignment = fyne.TextAlignCenter

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(fynetheme.ViewRefreshIcon(), func() {
			p.refreshContent()
		}),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(fynetheme.HelpIcon(), func() {
			dialog.ShowInformation("About Themed",
				"Themed is a stylesheet-driven theme manager.\n"+
					"Register QSS themes, switch the active one at runtime\n"+
					"and preview the result across common widgets.",
				p.mainWindow)
		}),
	)

	tabs := container.NewAppTabs(
		container.NewTabItem("Gallery", p.createGalleryTab()),
		container.NewTabItem("Settings", p.createSettingsTab()),
	)
	tabs.SetTabLocation(container.TabLocationTop)

	content := container.NewBorder(
		container.NewVBox(
			wordmark,
			toolbar,
			canvas.NewLine(accent),
		),
		p.createStatusBar(),
		nil,
		nil,
		tabs,
	)

	p.mainWindow.SetContent(content)
}

// createStatusBar creates the status bar at the bottom of the window
func (p *Preview) createStatusBar() fyne.CanvasObject {
	p.statusLabel = widget.NewLabel("")
	p.updateStatusText()

	refreshButton := widget.NewButtonWithIcon("", fynetheme.ViewRefreshIcon(), func() {
		p.updateStatusText()
	})

	return container.NewHBox(
		p.statusLabel,
		layout.NewSpacer(),
		refreshButton,
	)
}

// updateStatusText refreshes the status bar from the registry and the
// reloader, when one is running.
func (p *Preview) updateStatusText() {
	text := fmt.Sprintf("Active theme: %s", p.registry.Active())

	if p.reloader != nil {
		status := p.reloader.Status()
		if status.Running {
			text += fmt.Sprintf("  |  Watching %d directories, %d reloads",
				len(status.WatchDirectories), status.ThemesReloaded)
		}
	}

	if p.statusLabel != nil {
		p.statusLabel.SetText(text)
	}
}

// refreshContent re-applies the theme and redraws the window content.
func (p *Preview) refreshContent() {
	p.fyneApp.Settings().SetTheme(p.adapter)
	p.updateStatusText()
	if content := p.mainWindow.Content(); content != nil {
		content.Refresh()
	}
}

// startWatchMode starts reloading themes from the configured directories.
// A reloader cannot be restarted once stopped, so each start builds a
// fresh one.
func (p *Preview) startWatchMode() {
	if p.reloader != nil && p.reloader.Status().Running {
		return
	}

	reloader, err := watch.NewReloader(p.registry, p.cfg)
	if err != nil {
		p.ShowError("Failed to create theme reloader", err)
		return
	}

	reloader.SetCallback(func(name string, err error) {
		if err != nil {
			log.Warnf("Theme %s failed to reload: %v", name, err)
		}
		p.refreshContent()
	})

	if err := reloader.Start(); err != nil {
		p.ShowError("Failed to start watching", err)
		return
	}

	p.reloader = reloader
	p.updateStatusText()
	log.Info("Theme watch mode started")
}

// stopWatchMode stops the active reloader, if any.
func (p *Preview) stopWatchMode() {
	if p.reloader == nil || !p.reloader.Status().Running {
		return
	}

	p.reloader.Stop()
	p.updateStatusText()
	log.Info("Theme watch mode stopped")
}

// ShowError displays an error dialog
func (p *Preview) ShowError(title string, err error) {
	if err == nil {
		return
	}
	log.Warnf("%s: %v", title, err)
	dialog.ShowError(err, p.mainWindow)
}

// ShowInfo displays an information dialog
func (p *Preview) ShowInfo(message string) {
	dialog.ShowInformation("Information", message, p.mainWindow)
}

// IsAvailable reports whether this build includes the GUI.
func IsAvailable() bool {
	return true
}

// Launch opens the preview window and blocks until it is closed.
func Launch(cfg *config.Config, registry *theme.Registry) error {
	NewPreview(cfg, registry).Run()
	return nil
}
