package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleValue   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
)

func printSummary(w io.Writer, dir string, files []string) {
	fmt.Fprintf(w, "%s %s %s\n", styleSuccess.Render("✓"), "Done! Files saved in:", styleValue.Render(dir))
	for _, f := range files {
		fmt.Fprintf(w, "%s %s\n", styleDim.Render("-"), f)
	}
}
