package components

import (
	"strings"

	"themed/internal/tui/styles"
)

// PreviewStrip renders sample widgets with the inspected theme's palette
type PreviewStrip struct {
	palette styles.Palette
}

func NewPreviewStrip() *PreviewStrip {
	return &PreviewStrip{}
}

func (ps *PreviewStrip) SetPalette(p styles.Palette) {
	ps.palette = p
}

func (ps *PreviewStrip) View() string {
	var s strings.Builder

	s.WriteString(styles.Title.Render("Preview") + "\n")
	s.WriteString(ps.palette.Title.Render(" Window Title ") + "\n")
	s.WriteString(ps.palette.Window.Render(" The quick brown fox ") + "\n")
	s.WriteString(ps.palette.Button.Render("  OK  "))
	s.WriteString(" ")
	s.WriteString(ps.palette.ButtonHover.Render("  OK (hover)  ") + "\n")
	s.WriteString(ps.palette.Input.Render(" input text ") + "\n")
	s.WriteString(ps.palette.Header.Render(" Name    Value ") + "\n")

	return s.String()
}
