// package theme maps track color palettes onto terminal styles.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/desertthunder/resonate/internal/models"
)

// Default accent colors shown before any track supplies a palette.
const (
	DefaultAccent        = "#6366f1"
	DefaultAccentDark    = "#4f46e5"
	DefaultHighlight     = "#8b5cf6"
	DefaultMuted         = "#667eea"
	DefaultGradientStart = "#667eea"
	DefaultGradientEnd   = "#764ba2"
)

// struct Theme is a stylesheet built with named [lipgloss.Style] fields,
// derived from the current track's palette.
type Theme struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Selected  lipgloss.Style
	Transport lipgloss.Style
	Help      lipgloss.Style

	GradientStart lipgloss.Color
	GradientEnd   lipgloss.Color
}

// Default returns the theme used when nothing is playing.
func Default() Theme {
	return build(DefaultAccent, DefaultAccentDark, DefaultHighlight, DefaultMuted, DefaultGradientStart, DefaultGradientEnd)
}

// FromPalette adapts the theme to a track's palette. Each role falls back
// to the matching default when the palette has no swatch for it; a nil
// palette yields the default theme.
func FromPalette(p *models.NamedPalette) Theme {
	if p == nil {
		return Default()
	}
	return build(
		pick(p.Vibrant, DefaultAccent),
		pick(p.DarkVibrant, DefaultAccentDark),
		pick(p.LightVibrant, DefaultHighlight),
		pick(p.Muted, DefaultMuted),
		pick(p.DarkVibrant, DefaultGradientStart),
		pick(p.DarkMuted, DefaultGradientEnd),
	)
}

func build(accent, accentDark, highlight, muted, gradientStart, gradientEnd string) Theme {
	return Theme{
		Title:         NewBold(accent),
		Subtitle:      NewEm(muted),
		Selected:      NewBold(highlight),
		Transport:     NewStyle(accentDark),
		Help:          NewEm(muted),
		GradientStart: lipgloss.Color(gradientStart),
		GradientEnd:   lipgloss.Color(gradientEnd),
	}
}

func pick(hex, fallback string) string {
	if hex == "" {
		return fallback
	}
	return hex
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
