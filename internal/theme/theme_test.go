package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/desertthunder/resonate/internal/models"
)

func TestFromPalette(t *testing.T) {
	t.Run("NilPaletteIsDefault", func(t *testing.T) {
		got := FromPalette(nil)
		if got.Title.GetForeground() != lipgloss.Color(DefaultAccent) {
			t.Errorf("expected default accent, got %v", got.Title.GetForeground())
		}
		if got.GradientEnd != lipgloss.Color(DefaultGradientEnd) {
			t.Errorf("expected default gradient end, got %v", got.GradientEnd)
		}
	})

	t.Run("SwatchesOverrideDefaults", func(t *testing.T) {
		p := &models.NamedPalette{
			Vibrant:      "#ff0000",
			DarkVibrant:  "#400000",
			LightVibrant: "#ff8080",
			Muted:        "#805050",
		}

		got := FromPalette(p)
		if got.Title.GetForeground() != lipgloss.Color("#ff0000") {
			t.Errorf("title should take vibrant, got %v", got.Title.GetForeground())
		}
		if got.Selected.GetForeground() != lipgloss.Color("#ff8080") {
			t.Errorf("selected should take lightVibrant, got %v", got.Selected.GetForeground())
		}
		if got.Transport.GetForeground() != lipgloss.Color("#400000") {
			t.Errorf("transport should take darkVibrant, got %v", got.Transport.GetForeground())
		}
	})

	t.Run("MissingRolesFallBackIndividually", func(t *testing.T) {
		p := &models.NamedPalette{Vibrant: "#00ff00"}

		got := FromPalette(p)
		if got.Title.GetForeground() != lipgloss.Color("#00ff00") {
			t.Errorf("title should take vibrant, got %v", got.Title.GetForeground())
		}
		if got.Selected.GetForeground() != lipgloss.Color(DefaultHighlight) {
			t.Errorf("missing lightVibrant should fall back, got %v", got.Selected.GetForeground())
		}
		if got.GradientEnd != lipgloss.Color(DefaultGradientEnd) {
			t.Errorf("missing darkMuted should fall back, got %v", got.GradientEnd)
		}
	})
}
