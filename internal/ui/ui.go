package ui

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette
	primaryColor   = lipgloss.Color("#7D56F4") // Purple
	secondaryColor = lipgloss.Color("#00D9FF") // Cyan
	successColor   = lipgloss.Color("#04B575") // Green
	errorColor     = lipgloss.Color("#FF5F87") // Pink/Red
	warningColor   = lipgloss.Color("#FFAF00") // Orange
	mutedColor     = lipgloss.Color("#626262") // Gray
	accentColor    = lipgloss.Color("#FFD700") // Gold

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginTop(1).
			MarginBottom(1).
			PaddingLeft(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(secondaryColor).
			MarginTop(1).
			PaddingLeft(1)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	infoStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	keyStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	checkmark = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true).
			SetString("✓")

	cross = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true).
		SetString("✗")

	arrow = lipgloss.NewStyle().
		Foreground(secondaryColor).
		SetString("→")

	dot = lipgloss.NewStyle().
		Foreground(mutedColor).
		SetString("•")

	star = lipgloss.NewStyle().
		Foreground(accentColor).
		SetString("★")

	usedTile = lipgloss.NewStyle().
			Foreground(successColor).
			SetString("■")

	freeTile = lipgloss.NewStyle().
			Foreground(mutedColor).
			SetString("□")

	stepStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(lipgloss.Color("#FAFAFA"))

	highlightStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1).
			MarginTop(1).
			MarginBottom(1)

	warningBoxStyle = boxStyle.
			BorderForeground(warningColor)

	verbose bool
)

// PrintTitle prints a major title (for app name or major sections)
func PrintTitle(title string) {
	fmt.Println(titleStyle.Render("╭─ " + title + " ─╮"))
}

// PrintHeader prints a section header
func PrintHeader(title string) {
	fmt.Println(headerStyle.Render("\n▸ " + title))
}

// PrintStep prints a step with indentation
func PrintStep(step string) {
	fmt.Println(stepStyle.Render(arrow.String() + " " + step))
}

// PrintItem prints an item in a list
func PrintItem(item string) {
	fmt.Println(itemStyle.Render(dot.String() + " " + item))
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Println(stepStyle.Render(checkmark.String() + " " + successStyle.Render(message)))
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintln(os.Stderr, stepStyle.Render(cross.String()+" "+errorStyle.Render(message)))
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Println(stepStyle.Render("⚠ " + warningStyle.Render(message)))
}

// PrintInfo prints an info message
func PrintInfo(message string) {
	fmt.Println(stepStyle.Render(infoStyle.Render(message)))
}

// PrintHighlight prints highlighted text
func PrintHighlight(message string) {
	fmt.Println(stepStyle.Render(star.String() + " " + highlightStyle.Render(message)))
}

// PrintBox prints text in a rounded box
func PrintBox(content string) {
	fmt.Println(boxStyle.Render(content))
}

// PrintKeyValue prints a key-value pair with nice formatting
func PrintKeyValue(key, value string) {
	fmt.Println(stepStyle.Render(keyStyle.Render(key+":") + " " + value))
}

// PrintSeparator prints a visual separator
func PrintSeparator() {
	separator := lipgloss.NewStyle().
		Foreground(mutedColor).
		Render("─────────────────────────────────────────────")
	fmt.Println(separator)
}

// RenderUnarranged renders the parents whose shells could not be placed
func RenderUnarranged(parents []string) string {
	var b strings.Builder
	b.WriteString(warningStyle.Bold(true).Render("Could not arrange the following groups"))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render("their shells are larger than a tile"))
	for _, p := range parents {
		b.WriteString("\n")
		b.WriteString(dot.String() + " " + p)
	}
	return warningBoxStyle.Render(b.String())
}

// PrintUnarranged prints the unarranged report box
func PrintUnarranged(parents []string) {
	if len(parents) == 0 {
		return
	}
	fmt.Println(RenderUnarranged(parents))
}

// RenderTileGrid renders used tiles row by row, top row first like UV space.
// shells maps a 1-based tile index to the number of shells placed on it.
func RenderTileGrid(shells map[int]int, tilesPerRow int) string {
	if len(shells) == 0 || tilesPerRow < 1 {
		return ""
	}

	indices := make([]int, 0, len(shells))
	for idx := range shells {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	rows := (indices[len(indices)-1]-1)/tilesPerRow + 1

	lines := make([]string, 0, rows)
	for row := rows - 1; row >= 0; row-- {
		var b strings.Builder
		b.WriteString(infoStyle.Render(fmt.Sprintf("%d ", 1001+row*tilesPerRow)))
		for col := 0; col < tilesPerRow; col++ {
			if shells[row*tilesPerRow+col+1] > 0 {
				b.WriteString(usedTile.String())
			} else {
				b.WriteString(freeTile.String())
			}
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// Table prints aligned columns
type Table struct {
	widths []int
}

// NewTable creates a table with the given column widths
func NewTable(widths ...int) *Table {
	return &Table{widths: widths}
}

func (t *Table) format(columns []string) string {
	cells := make([]string, 0, len(columns))
	for i, col := range columns {
		if i >= len(t.widths) {
			break
		}
		w := t.widths[i]
		if len(col) > w {
			col = col[:w-3] + "..."
		} else {
			col += strings.Repeat(" ", w-len(col))
		}
		cells = append(cells, col)
	}
	return strings.Join(cells, " │ ")
}

// Header prints the header row and a separator line
func (t *Table) Header(headers ...string) {
	fmt.Println(stepStyle.Render(keyStyle.Render(t.format(headers))))

	parts := make([]string, 0, len(headers))
	for i := range headers {
		if i >= len(t.widths) {
			break
		}
		parts = append(parts, strings.Repeat("─", t.widths[i]))
	}
	fmt.Println(stepStyle.Render(infoStyle.Render(strings.Join(parts, "─┼─"))))
}

// Row prints a table row
func (t *Table) Row(columns ...string) {
	if len(columns) == 0 {
		return
	}
	fmt.Println(stepStyle.Render(t.format(columns)))
}

// SetVerbose switches progress bars to plain step lines
func SetVerbose(v bool) {
	verbose = v
}

// IsVerbose checks if verbose output is enabled
func IsVerbose() bool {
	return verbose || os.Getenv("CI") != ""
}

// PrintProgress prints a progress indicator
func PrintProgress(current, total int, message string) {
	if total <= 0 {
		return
	}
	if IsVerbose() {
		PrintStep(fmt.Sprintf("[%d/%d] %s", current, total, message))
		return
	}

	barWidth := 30
	filled := (current * barWidth) / total
	if filled > barWidth {
		filled = barWidth
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	pct := (current * 100) / total

	// Use carriage return to overwrite the line
	fmt.Printf("\r  [%s] %d%% %s", bar, pct, message)

	if current >= total {
		fmt.Println()
	}
}
