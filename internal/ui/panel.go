package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Bar renders value on a 0..scale range as a fixed-width bar. Negative
// values render empty.
func Bar(value, scale float64, width int) string {
	if scale <= 0 {
		scale = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(value / scale * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat(current.BarFull, filled) + strings.Repeat(current.BarEmpty, width-filled)
}

func borderStyle() lipgloss.Style {
	s := lipgloss.NewStyle()
	if colorEnabled() {
		s = s.BorderForeground(current.BorderColor)
	}
	return s
}

// PanelString frames lines with the current theme.
func PanelString(lines ...string) string {
	return borderStyle().
		Border(current.Border).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// TableString renders rows under headers. Header cells use the theme's
// header style; the first column uses the accent style.
func TableString(headers []string, rows [][]string) string {
	t := table.New().
		Border(current.Border).
		BorderStyle(borderStyle()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if !colorEnabled() {
				return base
			}
			switch {
			case row == table.HeaderRow:
				return base.Inherit(current.Header)
			case col == 0:
				return base.Inherit(current.Accent)
			}
			return base
		})
	return t.Render()
}

// Table writes a bordered table.
func Table(w io.Writer, headers []string, rows [][]string) {
	fmt.Fprintln(w, TableString(headers, rows))
}
