package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders done/total as a bar of width cells (at least 5)
// followed by the percentage.
func ProgressBar(done, total, width int) string {
	width = max(width, 5)
	frac := 0.0
	if total > 0 {
		frac = math.Min(float64(done)/float64(total), 1)
	}
	filled := int(frac * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf(" %3d%%", int(frac*100))
}

// Panel draws a framed box using the current theme.
func Panel(lines []string) {
	fmt.Fprint(Stdout, PanelString(lines))
}

// PanelString is Panel without the printing. Widths ignore ANSI escapes.
func PanelString(lines []string) string {
	t := Current()
	maxw := 0
	for _, ln := range lines {
		if w := lipgloss.Width(ln); w > maxw {
			maxw = w
		}
	}
	var b strings.Builder
	b.WriteString(t.CornerTL + strings.Repeat(t.H, maxw+2) + t.CornerTR + "\n")
	for _, ln := range lines {
		b.WriteString(t.V + " " + ln + strings.Repeat(" ", maxw-lipgloss.Width(ln)) + " " + t.V + "\n")
	}
	b.WriteString(t.CornerBL + strings.Repeat(t.H, maxw+2) + t.CornerBR + "\n")
	return b.String()
}

// Strike renders s struck through, for completed items.
func Strike(s string) string { return C(strike, s) }

// Dim renders s faint.
func Dim(s string) string { return C(dim, s) }
