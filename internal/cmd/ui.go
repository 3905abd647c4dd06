package cmd

import (
	"fmt"
	"strings"
)

// Terminal colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Println(colorGreen + "✓ " + message + colorReset)
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Println(colorRed + "✗ " + message + colorReset)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Println(colorYellow + "! " + message + colorReset)
}

// PrintInfo prints an informational message
func PrintInfo(message string) {
	fmt.Println(colorBlue + "ℹ " + message + colorReset)
}

// PrintHeader prints a section header
func PrintHeader(message string) {
	fmt.Println("\n" + colorCyan + colorBold + message + colorReset)
	fmt.Println(strings.Repeat("─", len(message)))
}

// DrawBox creates a colored box around content
func DrawBox(content, color string) string {
	lines := strings.Split(content, "\n")
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	result := color + "┌" + strings.Repeat("─", maxLen+2) + "┐\n"
	for _, line := range lines {
		result += "│ " + line + strings.Repeat(" ", maxLen-len(line)) + " │\n"
	}
	result += "└" + strings.Repeat("─", maxLen+2) + "┘" + colorReset

	return result
}

// DrawLogo returns the ASCII art logo for themed.
func DrawLogo() string {
	logo := `
'########:'##::::'##:'########:'##::::'##:'########:'########::
... ##..:: ##:::: ##: ##.....:: ###::'###: ##.....:: ##.... ##:
::: ##:::: ##:::: ##: ##::::::: ####'####: ##::::::: ##:::: ##:
::: ##:::: #########: ######::: ## ### ##: ######::: ##:::: ##:
::: ##:::: ##.... ##: ##...:::: ##. #: ##: ##...:::: ##:::: ##:
::: ##:::: ##:::: ##: ##::::::: ##:.:: ##: ##::::::: ##:::: ##:
::: ##:::: ##:::: ##: ########: ##:::: ##: ########: ########::
:::..:::::..:::::..::........::..:::::..::........::........:::
`

	return colorCyan + logo + colorReset
}
