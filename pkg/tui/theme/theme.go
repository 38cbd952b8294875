package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the flip calendar.
type Theme struct {
	Header HeaderTheme
	Face   FaceTheme
	Footer FooterTheme
	Modal  ModalTheme
}

// HeaderTheme styles the title and subtitle above the card.
type HeaderTheme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
}

// FaceTheme styles the card and its day cells.
type FaceTheme struct {
	Frame      lipgloss.Style
	Weekday    lipgloss.Style
	Day        lipgloss.Style
	OtherMonth lipgloss.Style
	Today      lipgloss.Style
	Selected   lipgloss.Style
	Cursor     lipgloss.Style
	Note       lipgloss.Style
	NoteDot    string
	TodayBadge string

	// FrontBorder and BackBorder are hex colors. The border color is
	// blended between them while a flip is running.
	FrontBorder string
	BackBorder  string
}

// FooterTheme groups styles used by the status lines.
type FooterTheme struct {
	Meta   lipgloss.Style
	Status lipgloss.Style
	Help   lipgloss.Style
}

// ModalTheme styles the editor, picker and confirm overlays.
type ModalTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Body     lipgloss.Style
	Selected lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Header: HeaderTheme{
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Subtitle: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("244")),
		},
		Face: FaceTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Weekday:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Day:         lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			OtherMonth:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			Today:       lipgloss.NewStyle().Underline(true).Bold(true),
			Selected:    lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
			Cursor:      lipgloss.NewStyle().Reverse(true),
			Note:        lipgloss.NewStyle().Foreground(lipgloss.Color("186")),
			NoteDot:     "•",
			TodayBadge:  "◆",
			FrontBorder: "#7D56F4",
			BackBorder:  "#F25D94",
		},
		Footer: FooterTheme{
			Meta:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 2),
			Title:    lipgloss.NewStyle().Bold(true),
			Body:     lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Reverse(true),
		},
	}
}
