package palette

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/desertthunder/resonate/internal/shared"
)

func mustHex(t *testing.T, hex string) colorful.Color {
	t.Helper()
	c, err := colorful.Hex(hex)
	if err != nil {
		t.Fatalf("bad fixture color %q: %v", hex, err)
	}
	return c
}

func TestSelectSwatches(t *testing.T) {
	t.Run("ClassifiesByRole", func(t *testing.T) {
		candidates := []candidate{
			{color: mustHex(t, "#ff0000"), population: 100}, // saturated, mid lightness
			{color: mustHex(t, "#000080"), population: 80},  // saturated, dark
			{color: mustHex(t, "#ff9999"), population: 60},  // saturated, light
			{color: mustHex(t, "#808080"), population: 40},  // grey, mid lightness
		}

		p := selectSwatches(candidates)

		if p.Vibrant != "#ff0000" {
			t.Errorf("vibrant: got %q", p.Vibrant)
		}
		if p.DarkVibrant != "#000080" {
			t.Errorf("darkVibrant: got %q", p.DarkVibrant)
		}
		if p.LightVibrant != "#ff9999" {
			t.Errorf("lightVibrant: got %q", p.LightVibrant)
		}
		if p.Muted != "#808080" {
			t.Errorf("muted: got %q", p.Muted)
		}
	})

	t.Run("SwatchNotReusedAcrossRoles", func(t *testing.T) {
		red := candidate{color: mustHex(t, "#ff0000"), population: 100}

		p := selectSwatches([]candidate{red})

		filled := 0
		for _, hex := range []string{p.Vibrant, p.DarkVibrant, p.LightVibrant, p.Muted, p.DarkMuted, p.LightMuted} {
			if hex != "" {
				filled++
			}
		}
		if filled != 1 {
			t.Errorf("a single swatch should fill exactly one role, got %d: %+v", filled, p)
		}
		if p.Vibrant != "#ff0000" {
			t.Errorf("vibrant should win priority for a saturated mid-lightness swatch: %+v", p)
		}
	})

	t.Run("UnqualifiedRolesStayEmpty", func(t *testing.T) {
		// Pure black sits outside every role's lightness window except the
		// dark ones, and outside the vibrant saturation floor.
		p := selectSwatches([]candidate{{color: mustHex(t, "#000000"), population: 10}})

		if p.Vibrant != "" || p.LightVibrant != "" || p.Muted != "" || p.LightMuted != "" {
			t.Errorf("black should only qualify for a dark role: %+v", p)
		}
		if p.DarkMuted == "" {
			t.Errorf("black should land in darkMuted: %+v", p)
		}
	})
}

// gradientPNG renders a PNG with enough distinct colors for clustering.
func gradientPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 4), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode fixture image: %v", err)
	}
	return buf.Bytes()
}

func TestKMeansExtractor(t *testing.T) {
	t.Run("ExtractsFromDecodableImage", func(t *testing.T) {
		e := NewKMeansExtractor(500, 500)

		p, err := e.ExtractPalette(context.Background(), gradientPNG(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		filled := 0
		for _, hex := range []string{p.Vibrant, p.DarkVibrant, p.LightVibrant, p.Muted, p.DarkMuted, p.LightMuted} {
			if hex != "" {
				filled++
			}
		}
		if filled == 0 {
			t.Errorf("expected at least one populated role: %+v", p)
		}
	})

	t.Run("UndecodableBytesArePaletteError", func(t *testing.T) {
		e := NewKMeansExtractor(500, 500)

		_, err := e.ExtractPalette(context.Background(), []byte("not an image"))
		if !errors.Is(err, shared.ErrPalette) {
			t.Errorf("expected ErrPalette, got %v", err)
		}
	})

	t.Run("CancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		e := NewKMeansExtractor(500, 500)
		if _, err := e.ExtractPalette(ctx, gradientPNG(t)); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestBound(t *testing.T) {
	e := NewKMeansExtractor(100, 100)

	t.Run("SmallImagePassesThrough", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 50, 50))
		if got := e.bound(img); got != img {
			t.Error("image inside bounds should not be rescaled")
		}
	})

	t.Run("LargeImagePreservesAspectRatio", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 400, 200))
		got := e.bound(img).Bounds()
		if got.Dx() != 100 || got.Dy() != 50 {
			t.Errorf("expected 100x50, got %dx%d", got.Dx(), got.Dy())
		}
	})
}
