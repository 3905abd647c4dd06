package theme

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"themed/internal/errors"
)

// FileExt is the extension theme files are recognized by.
const FileExt = ".qss"

// NameFromPath derives the registry name for a theme file from its base name.
func NameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// RegisterFile parses the file and registers it under its base name,
// returning the name it was registered as.
func (r *Registry) RegisterFile(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.ErrInvalidPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewFileError("file not found", path, errors.FileNotFound, err)
		}
		return "", errors.NewFileError("cannot read theme file", path, errors.FileAccessDenied, err)
	}

	name := NameFromPath(path)
	if err := r.Register(name, string(data)); err != nil {
		return "", err
	}
	return name, nil
}

// LoadDir registers every theme file in dir and returns the registered
// names in file order. A missing directory is not an error. A file that
// fails to parse aborts the load.
func (r *Registry) LoadDir(dir string) ([]string, error) {
	paths, err := listThemeFiles(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(paths))
	for _, path := range paths {
		name, err := r.RegisterFile(path)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// listThemeFiles returns the theme files in dir sorted by name. A missing
// directory yields no files.
func listThemeFiles(dir string) ([]string, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.NewFileError("cannot read theme directory", dir, errors.FileAccessDenied, err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.ToLower(filepath.Ext(entry.Name())) != FileExt {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
