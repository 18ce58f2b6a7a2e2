package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette, symbols and borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                         string
	Title, Muted, Accent, Header lipgloss.Style
	Error, Cold, Hot             lipgloss.Style
	Border                       lipgloss.Border
	BorderColor                  lipgloss.TerminalColor
	Cross                        string
	BarFull, BarEmpty            string
}

var current = classic()

func classic() Theme {
	return Theme{
		Name:        "classic",
		Title:       lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Cold:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Hot:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Border:      lipgloss.NormalBorder(),
		BorderColor: lipgloss.Color("8"),
		Cross:       "✖",
		BarFull:     "█",
		BarEmpty:    "░",
	}
}

// SetTheme switches between classic, neon and mono. Unknown names get
// classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		t := classic()
		t.Name = "neon"
		t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
		t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		t.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
		t.Hot = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		t.Border = lipgloss.RoundedBorder()
		t.BorderColor = lipgloss.Color("13")
		current = t
	case "mono":
		disableColor = true
		plain := lipgloss.NewStyle()
		current = Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain, Header: plain,
			Error: plain, Cold: plain, Hot: plain,
			Border:      lipgloss.ASCIIBorder(),
			BorderColor: lipgloss.NoColor{},
			Cross:       "error:",
			BarFull:     "#",
			BarEmpty:    ".",
		}
	default:
		current = classic()
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }
