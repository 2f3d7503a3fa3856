package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending string
	BoxUnchecked, BoxChecked                      string
	CornerTL, CornerTR, CornerBL, CornerBR        string
	H, V                                          string
	SymDone, SymUnchecked                         string

	// 256-color codes for the lipgloss styles used by the interactive views.
	// Empty means no color.
	TitleColor, SuccessColor, PendingColor, AccentColor, ErrorColor, BorderColor string
}

var themes = map[string]Theme{
	"classic": {
		Title: bold, Muted: fgGray, Accent: fgBlue,
		Success: fgGreen, Error: fgRed, Pending: fgYellow,
		BoxUnchecked: "☐", BoxChecked: "☑",
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
		SymDone: "✔", SymUnchecked: "•",
		SuccessColor: "42", PendingColor: "214", AccentColor: "12", ErrorColor: "9", BorderColor: "8",
	},
	"neon": {
		Title: "\033[95m", // bright magenta
		Muted: fgGray, Accent: "\033[96m",
		Success: fgGreen, Error: fgRed, Pending: "\033[93m",
		BoxUnchecked: "◻", BoxChecked: "◼",
		CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
		H: "─", V: "│",
		SymDone: "✔", SymUnchecked: "•",
		TitleColor: "13", SuccessColor: "10", PendingColor: "11", AccentColor: "14", ErrorColor: "9", BorderColor: "13",
	},
	"mono": {
		BoxUnchecked: "[ ]", BoxChecked: "[x]",
		CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
		H: "-", V: "|",
		SymDone: "x", SymUnchecked: "-",
	},
}

var current Theme

func init() { _ = SetTheme("classic") }

// Themes returns the theme names SetTheme accepts.
func Themes() []string { return []string{"classic", "neon", "mono"} }

// SetTheme switches the current theme. The empty name selects classic.
func SetTheme(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "classic"
	}
	t, ok := themes[name]
	if !ok {
		return fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(Themes(), ", "))
	}
	t.Name = name
	disableColor = name == "mono"
	current = t
	return nil
}

// Expose what renderers need
func Current() Theme { return current }

// Styles are the lipgloss styles for the interactive views.
type Styles struct {
	Title, Success, Pending, Accent, Muted, Error lipgloss.Style
	Selected, Done, Help, Border                  lipgloss.Style
}

func fg(s lipgloss.Style, c string) lipgloss.Style {
	if c == "" {
		return s
	}
	return s.Foreground(lipgloss.Color(c))
}

// CurrentStyles derives lipgloss styles from the current theme.
func CurrentStyles() Styles {
	t := current
	border := lipgloss.NormalBorder()
	if t.CornerTL == "╭" {
		border = lipgloss.RoundedBorder()
	} else if t.CornerTL == "+" {
		border = lipgloss.Border{
			Top: t.H, Bottom: t.H, Left: t.V, Right: t.V,
			TopLeft: t.CornerTL, TopRight: t.CornerTR, BottomLeft: t.CornerBL, BottomRight: t.CornerBR,
		}
	}
	return Styles{
		Title:    fg(lipgloss.NewStyle().Bold(true), t.TitleColor),
		Success:  fg(lipgloss.NewStyle(), t.SuccessColor),
		Pending:  fg(lipgloss.NewStyle(), t.PendingColor),
		Accent:   fg(lipgloss.NewStyle(), t.AccentColor),
		Muted:    lipgloss.NewStyle().Faint(true),
		Error:    fg(lipgloss.NewStyle().Bold(true), t.ErrorColor),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Border:   lipgloss.NewStyle().Border(border).BorderForeground(lipgloss.Color(t.BorderColor)).Padding(0, 1),
	}
}
