package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"themed/internal/qss"
	"themed/internal/theme"

	"github.com/spf13/cobra"
)

var checkStrict bool

var checkCmd = &cobra.Command{
	Use:   "check <file-or-dir>...",
	Short: "Parse-check theme files",
	Long: `Parse the given stylesheet files, or every theme file in the given
directories, and report what does not parse. The exit status is non-zero
when any file fails, so the command works as a pre-commit gate:

  themed check themes/
  themed check --strict dark.qss`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var paths []string
		for _, arg := range args {
			found, err := themeFilesAt(arg)
			if err != nil {
				return err
			}
			if len(found) == 0 {
				PrintWarning(fmt.Sprintf("No theme files at %s", arg))
			}
			paths = append(paths, found...)
		}

		failed := 0
		for _, path := range paths {
			data, err := os.ReadFile(path)
			if err != nil {
				PrintError(fmt.Sprintf("%s: %v", path, err))
				failed++
				continue
			}

			sheet, err := qss.Parse(string(data), filepath.Base(path))
			if err != nil {
				PrintError(fmt.Sprintf("%v", err))
				failed++
				continue
			}

			unknown := sheet.UnknownProperties()
			if checkStrict && len(unknown) > 0 {
				for _, key := range unknown {
					PrintError(fmt.Sprintf("%s: unknown property key: %s", path, key))
				}
				failed++
				continue
			}
			for _, key := range unknown {
				PrintWarning(fmt.Sprintf("%s: unknown property key: %s", path, key))
			}

			PrintSuccess(fmt.Sprintf("%s (%d rules)", path, len(sheet.Rules)))
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d stylesheet(s) failed", failed, len(paths))
		}
		return nil
	},
}

// themeFilesAt returns the theme files named by path: the file itself, or
// the theme files directly inside it when it is a directory.
func themeFilesAt(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.ToLower(filepath.Ext(entry.Name())) != theme.FileExt {
			continue
		}
		paths = append(paths, filepath.Join(path, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "treat unknown property keys as failures")
}
