//go:build nogui
// +build nogui

package gui

import (
	"fmt"

	"themed/internal/config"
	"themed/internal/theme"
)

// Launch is a stub implementation for builds with the GUI disabled.
func Launch(*config.Config, *theme.Registry) error {
	fmt.Println("GUI is disabled in this build. Please use the CLI interface.")
	return fmt.Errorf("GUI not available in this build")
}

// IsAvailable reports whether this build includes the GUI.
func IsAvailable() bool {
	return false
}
