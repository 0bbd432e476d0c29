package display

import "github.com/charmbracelet/lipgloss"

// Adaptive colors shared by the terminal styles
var (
	SuccessColor = lipgloss.AdaptiveColor{Light: "#007A3D", Dark: "#5FD787"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#B35900", Dark: "#FFAF5F"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#C00000", Dark: "#FF5F5F"}
	InfoColor    = lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FAFFF"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#8A8A8A"}
)

// ErrorStyle renders fatal errors on stderr
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ErrorColor).
	Bold(true)

// paint applies a style to a line
type paint func(string) string

type styleSet struct {
	marker   paint
	existing paint
	created  paint
	planned  paint
	warning  paint
	muted    paint
}

func plainStyles() styleSet {
	plain := func(s string) string { return s }
	return styleSet{
		marker:   plain,
		existing: plain,
		created:  plain,
		planned:  plain,
		warning:  plain,
		muted:    plain,
	}
}

func terminalStyles(r *lipgloss.Renderer) styleSet {
	with := func(style lipgloss.Style) paint {
		return func(s string) string { return style.Render(s) }
	}
	return styleSet{
		marker:   with(r.NewStyle().Foreground(InfoColor).Bold(true)),
		existing: with(r.NewStyle().Foreground(MutedColor)),
		created:  with(r.NewStyle().Foreground(SuccessColor)),
		planned:  with(r.NewStyle().Foreground(WarningColor).Italic(true)),
		warning:  with(r.NewStyle().Foreground(WarningColor).Bold(true)),
		muted:    with(r.NewStyle().Foreground(MutedColor)),
	}
}
