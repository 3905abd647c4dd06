//go:build !nogui
// +build !nogui

package gui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"themed/internal/theme"

	"fyne.io/fyne/v2"
)

// importThemeSource reads stylesheet text from an opened file. The registry
// name is derived from the file name, so "solarized.qss" registers as
// "solarized".
func importThemeSource(reader fyne.URIReadCloser) (name, source string, err error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", "", fmt.Errorf("error reading file: %w", err)
	}

	fileName := reader.URI().Name()
	if ext := filepath.Ext(fileName); !strings.EqualFold(ext, theme.FileExt) {
		return "", "", fmt.Errorf("unsupported file format: %s", ext)
	}

	return theme.NameFromPath(fileName), string(data), nil
}

// exportThemeSource writes a registered theme back out as stylesheet text.
func exportThemeSource(registry *theme.Registry, name string, writer fyne.URIWriteCloser) error {
	sheet, err := registry.Get(name)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(writer, sheet.String()); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}

	return nil
}
