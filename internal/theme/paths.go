package theme

import (
	"os"
	"path/filepath"

	"themed/internal/log"
)

// ThemeSearchPaths returns theme directories in precedence order: the
// project's themes directory first, then the user config directory.
func ThemeSearchPaths(projectDir string) []string {
	paths := make([]string, 0, 2)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, "themes"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "themed", "themes"))
	}

	return paths
}

// LoadSearchPaths fills the registry from the search paths with first-hit
// precedence by theme name, then adds the bundled themes for any name still
// unclaimed, so a user theme file shadows the builtin of the same name.
// Files that fail to parse are skipped with a warning; one broken theme
// never blocks the rest. Returns the names registered, in precedence order.
func LoadSearchPaths(r *Registry, projectDir string) ([]string, error) {
	seen := make(map[string]bool)
	loaded := make([]string, 0)

	for _, dir := range ThemeSearchPaths(projectDir) {
		paths, err := listThemeFiles(dir)
		if err != nil {
			return nil, err
		}
		for _, path := range paths {
			name := NameFromPath(path)
			if seen[name] {
				continue
			}
			if _, err := r.RegisterFile(path); err != nil {
				log.LogWithError(err).Warn("Skipping theme file")
				continue
			}
			seen[name] = true
			loaded = append(loaded, name)
		}
	}

	builtins, err := builtinSources()
	if err != nil {
		return nil, err
	}
	for _, src := range builtins {
		if seen[src.name] {
			continue
		}
		if err := r.Register(src.name, src.source); err != nil {
			return nil, err
		}
		seen[src.name] = true
		loaded = append(loaded, src.name)
	}

	return loaded, nil
}
