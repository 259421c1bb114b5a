package report

import "github.com/charmbracelet/lipgloss"

var (
	colorPass = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#c2d94c"}
	colorWarn = lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"}
	colorFail = lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"}
	colorName = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
)

type styles struct {
	name lipgloss.Style
	pass lipgloss.Style
	warn lipgloss.Style
	fail lipgloss.Style
}

// newStyles binds the palette to r so color is only emitted when r's
// output supports it.
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		name: r.NewStyle().Bold(true).Foreground(colorName),
		pass: r.NewStyle().Foreground(colorPass),
		warn: r.NewStyle().Foreground(colorWarn),
		fail: r.NewStyle().Foreground(colorFail),
	}
}
