package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderArrangeHelp renders the help text for the arrange command with lipgloss styling
func renderArrangeHelp() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		MarginTop(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("10"))

	commandStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("14"))

	commentStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Italic(true)

	flagStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Examples"))
	b.WriteString("\n\n")

	examples := []struct {
		title   string
		command string
	}{
		{"Arrange every top-level group starting at UDIM 1001", "gouvtile arrange scene.obj"},
		{"Start at tile 11 (UDIM 1011) with tighter spacing", "gouvtile arrange scene.obj -t 11 --spacing 0.01"},
		{"Stack identical shells in blocks of four", "gouvtile arrange scene.obj -s bolts,nuts --stacking --stack-columns 4"},
		{"Preview the layout without touching the scene", "gouvtile arrange scene.obj --dry-run"},
		{"Run a configuration file and export a PDF preview", "gouvtile arrange -c job.yaml --preview layout.pdf --open"},
	}
	for _, e := range examples {
		b.WriteString(sectionStyle.Render(e.title))
		b.WriteString("\n")
		b.WriteString("  " + commandStyle.Render(e.command))
		b.WriteString("\n\n")
	}

	b.WriteString(sectionStyle.Render("Start tile modes:"))
	b.WriteString("\n")

	modes := []struct {
		flag string
		desc string
	}{
		{"-t N", "Start in tile N, 10 tiles per row (1 = UDIM 1001)"},
		{"--use-current-tile", "Start in the tile the first selected shell occupies"},
	}

	maxWidth := 0
	for _, m := range modes {
		if len(m.flag) > maxWidth {
			maxWidth = len(m.flag)
		}
	}

	for _, m := range modes {
		padding := strings.Repeat(" ", maxWidth-len(m.flag)+2)
		b.WriteString("  " + flagStyle.Render(m.flag) + padding + commentStyle.Render(m.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Flags override values from the configuration file"))
	b.WriteString("\n")
	b.WriteString("  " + commandStyle.Render("gouvtile config show job.yaml"))
	b.WriteString("\n")

	return b.String()
}
