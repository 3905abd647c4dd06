package theme

import (
	"os"
	"path/filepath"
	"testing"

	"themed/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTheme(t *testing.T, dir, name, source string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(source), 0644))
	return path
}

func TestNameFromPath(t *testing.T) {
	assert.Equal(t, "midnight", NameFromPath("/themes/midnight.qss"))
	assert.Equal(t, "midnight", NameFromPath("midnight.qss"))
	assert.Equal(t, "solarized.dark", NameFromPath("solarized.dark.qss"))
	assert.Equal(t, "plain", NameFromPath("plain"))
}

func TestRegisterFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTheme(t, dir, "midnight.qss", `QWidget { background: #000022; }`)

	r := New()
	name, err := r.RegisterFile(path)
	require.NoError(t, err)
	assert.Equal(t, "midnight", name)

	require.NoError(t, r.SetActive("midnight"))
	assert.Equal(t, "#000022", r.ResolveClass("QWidget")["background"])
}

func TestRegisterFileMissing(t *testing.T) {
	r := New()
	_, err := r.RegisterFile(filepath.Join(t.TempDir(), "nope.qss"))
	require.Error(t, err)
	assert.True(t, errors.IsFileNotFound(err))

	_, err = r.RegisterFile("  ")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidPath)
}

func TestRegisterFileParseFailure(t *testing.T) {
	dir := t.TempDir()
	path := writeTheme(t, dir, "broken.qss", `QWidget {`)

	r := New()
	_, err := r.RegisterFile(path)
	require.Error(t, err)
	assert.True(t, errors.IsParseError(err))
	assert.False(t, r.Has("broken"))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "dawn.qss", `QWidget { color: #000; }`)
	writeTheme(t, dir, "dusk.qss", `QWidget { color: #888; }`)
	writeTheme(t, dir, "notes.txt", `not a theme`)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	r := New()
	names, err := r.LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"dawn", "dusk"}, names)
	assert.Equal(t, []string{"dawn", "dusk"}, r.Names())
}

func TestLoadDirMissing(t *testing.T) {
	r := New()
	names, err := r.LoadDir(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLoadDirAbortsOnBrokenFile(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "bad.qss", `QWidget { color }`)
	writeTheme(t, dir, "good.qss", `QWidget { color: #fff; }`)

	r := New()
	_, err := r.LoadDir(dir)
	require.Error(t, err)
	assert.True(t, errors.IsParseError(err))
}

func TestThemeSearchPaths(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	paths := ThemeSearchPaths("/work/project")
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join("/work/project", "themes"), paths[0])
	assert.Equal(t, filepath.Join("/home/tester", ".config", "themed", "themes"), paths[1])

	// Without a project dir only the user directory remains.
	paths = ThemeSearchPaths("")
	require.Len(t, paths, 1)
	assert.Equal(t, filepath.Join("/home/tester", ".config", "themed", "themes"), paths[0])
}

func TestLoadSearchPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	userDir := filepath.Join(home, ".config", "themed", "themes")
	require.NoError(t, os.MkdirAll(userDir, 0755))

	project := t.TempDir()
	projectThemes := filepath.Join(project, "themes")
	require.NoError(t, os.MkdirAll(projectThemes, 0755))

	// The project's dark shadows both the user copy and the builtin.
	writeTheme(t, projectThemes, "dark.qss", `QPushButton { background: #101010; }`)
	writeTheme(t, userDir, "dark.qss", `QPushButton { background: #505050; }`)
	writeTheme(t, userDir, "sepia.qss", `QWidget { background: #704214; }`)

	r := New()
	names, err := LoadSearchPaths(r, project)
	require.NoError(t, err)
	assert.Equal(t, []string{"dark", "sepia", "light"}, names)

	require.NoError(t, r.SetActive("dark"))
	assert.Equal(t, "#101010", r.ResolveClass("QPushButton")["background"])

	// The builtin light came through untouched.
	require.NoError(t, r.SetActive("light"))
	assert.Equal(t, "#1976D2", r.ResolveClass("QPushButton")["background"])
}

func TestLoadSearchPathsSkipsBrokenFiles(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	project := t.TempDir()
	projectThemes := filepath.Join(project, "themes")
	require.NoError(t, os.MkdirAll(projectThemes, 0755))
	writeTheme(t, projectThemes, "broken.qss", `QWidget {`)
	writeTheme(t, projectThemes, "ok.qss", `QWidget { color: #fff; }`)

	r := New()
	names, err := LoadSearchPaths(r, project)
	require.NoError(t, err)
	assert.Contains(t, names, "ok")
	assert.NotContains(t, names, "broken")

	// Builtins still land after the skip.
	assert.True(t, r.Has("dark"))
	assert.True(t, r.Has("light"))
}
