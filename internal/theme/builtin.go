package theme

import (
	"embed"
	"io/fs"
	"path/filepath"
	"strings"

	"themed/internal/errors"
)

//go:embed builtin/*.qss
var builtinFS embed.FS

type themeSource struct {
	name   string
	source string
}

// builtinSources returns the bundled themes in file name order.
func builtinSources() ([]themeSource, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, errors.Wrap(err, "read builtin themes")
	}

	sources := make([]themeSource, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := builtinFS.ReadFile("builtin/" + entry.Name())
		if err != nil {
			return nil, errors.Wrapf(err, "read builtin theme %s", entry.Name())
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		sources = append(sources, themeSource{name: name, source: string(data)})
	}
	return sources, nil
}

// RegisterBuiltins registers the bundled themes into the registry.
func RegisterBuiltins(r *Registry) error {
	sources, err := builtinSources()
	if err != nil {
		return err
	}
	for _, src := range sources {
		if err := r.Register(src.name, src.source); err != nil {
			return errors.Wrapf(err, "register builtin theme %s", src.name)
		}
	}
	return nil
}

// BuiltinNames lists the bundled theme names without touching a registry.
func BuiltinNames() ([]string, error) {
	sources, err := builtinSources()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(sources))
	for _, src := range sources {
		names = append(names, src.name)
	}
	return names, nil
}
