// package palette derives the six named color roles from cover art.
//
// Dominant colors come from k-means clustering (EdlinOrg/prominentcolor);
// each cluster is then scored against per-role saturation/lightness targets
// so the output matches the vibrant / muted / light / dark role scheme.
package palette

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration

	"github.com/EdlinOrg/prominentcolor"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"github.com/desertthunder/resonate/internal/models"
	"github.com/desertthunder/resonate/internal/shared"
)

// Extractor produces a named palette from raw image bytes.
type Extractor interface {
	ExtractPalette(ctx context.Context, imageBytes []byte) (models.NamedPalette, error)
}

// KMeansExtractor implements Extractor with bounded-size k-means clustering.
type KMeansExtractor struct {
	maxWidth  int
	maxHeight int
}

// NewKMeansExtractor creates an extractor that downscales art to fit the
// given bounds before clustering. Non-positive bounds default to 500.
func NewKMeansExtractor(maxWidth, maxHeight int) *KMeansExtractor {
	if maxWidth <= 0 {
		maxWidth = 500
	}
	if maxHeight <= 0 {
		maxHeight = 500
	}
	return &KMeansExtractor{maxWidth: maxWidth, maxHeight: maxHeight}
}

// ExtractPalette decodes, downscales, clusters, and classifies the image.
// Any failure wraps [shared.ErrPalette].
func (e *KMeansExtractor) ExtractPalette(ctx context.Context, imageBytes []byte) (models.NamedPalette, error) {
	if err := ctx.Err(); err != nil {
		return models.NamedPalette{}, err
	}

	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return models.NamedPalette{}, fmt.Errorf("%w: failed to decode art: %v", shared.ErrPalette, err)
	}

	img = e.bound(img)

	items, err := prominentcolor.KmeansWithAll(6, img, prominentcolor.ArgumentNoCropping, prominentcolor.DefaultSize, nil)
	if err != nil {
		return models.NamedPalette{}, fmt.Errorf("%w: clustering failed: %v", shared.ErrPalette, err)
	}
	if len(items) == 0 {
		return models.NamedPalette{}, fmt.Errorf("%w: no dominant colors", shared.ErrPalette)
	}

	candidates := make([]candidate, 0, len(items))
	for _, item := range items {
		candidates = append(candidates, candidate{
			color: colorful.Color{
				R: float64(item.Color.R) / 255.0,
				G: float64(item.Color.G) / 255.0,
				B: float64(item.Color.B) / 255.0,
			},
			population: item.Cnt,
		})
	}

	return selectSwatches(candidates), nil
}

// bound downscales img to fit within the configured bounds, preserving
// aspect ratio. Images already inside the bounds pass through untouched.
func (e *KMeansExtractor) bound(img image.Image) image.Image {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width <= e.maxWidth && height <= e.maxHeight {
		return img
	}

	ratio := float64(width) / float64(height)
	if float64(e.maxWidth)/float64(e.maxHeight) > ratio {
		width = int(float64(e.maxHeight) * ratio)
		height = e.maxHeight
	} else {
		height = int(float64(e.maxWidth) / ratio)
		width = e.maxWidth
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

type candidate struct {
	color      colorful.Color
	population int
}

// roleTarget holds the saturation/lightness window and targets for one role.
type roleTarget struct {
	targetLum float64
	minLum    float64
	maxLum    float64
	targetSat float64
	minSat    float64
	maxSat    float64
}

var roleTargets = map[string]roleTarget{
	"vibrant":      {targetLum: 0.50, minLum: 0.30, maxLum: 0.70, targetSat: 1.0, minSat: 0.35, maxSat: 1.0},
	"lightVibrant": {targetLum: 0.74, minLum: 0.55, maxLum: 1.00, targetSat: 1.0, minSat: 0.35, maxSat: 1.0},
	"darkVibrant":  {targetLum: 0.26, minLum: 0.00, maxLum: 0.45, targetSat: 1.0, minSat: 0.35, maxSat: 1.0},
	"muted":        {targetLum: 0.50, minLum: 0.30, maxLum: 0.70, targetSat: 0.3, minSat: 0.0, maxSat: 0.4},
	"lightMuted":   {targetLum: 0.74, minLum: 0.55, maxLum: 1.00, targetSat: 0.3, minSat: 0.0, maxSat: 0.4},
	"darkMuted":    {targetLum: 0.26, minLum: 0.00, maxLum: 0.45, targetSat: 0.3, minSat: 0.0, maxSat: 0.4},
}

// roleOrder fixes assignment priority so the most distinctive roles claim
// their swatches first. A swatch is never reused across roles.
var roleOrder = []string{"vibrant", "darkVibrant", "lightVibrant", "muted", "darkMuted", "lightMuted"}

// selectSwatches assigns candidates to roles by scored proximity to each
// role's target. Roles with no qualifying candidate stay empty.
func selectSwatches(candidates []candidate) models.NamedPalette {
	maxPopulation := 0
	for _, c := range candidates {
		if c.population > maxPopulation {
			maxPopulation = c.population
		}
	}

	assigned := make(map[int]bool, len(candidates))
	picked := make(map[string]string, len(roleOrder))

	for _, role := range roleOrder {
		target := roleTargets[role]
		bestIdx, bestScore := -1, 0.0

		for i, c := range candidates {
			if assigned[i] {
				continue
			}
			_, s, l := c.color.Hsl()
			if s < target.minSat || s > target.maxSat || l < target.minLum || l > target.maxLum {
				continue
			}

			score := (1-absDiff(s, target.targetSat))*3 + (1-absDiff(l, target.targetLum))*6
			if maxPopulation > 0 {
				score += float64(c.population) / float64(maxPopulation)
			}

			if bestIdx < 0 || score > bestScore {
				bestIdx, bestScore = i, score
			}
		}

		if bestIdx >= 0 {
			assigned[bestIdx] = true
			picked[role] = candidates[bestIdx].color.Hex()
		}
	}

	return models.NamedPalette{
		Vibrant:      picked["vibrant"],
		DarkVibrant:  picked["darkVibrant"],
		LightVibrant: picked["lightVibrant"],
		Muted:        picked["muted"],
		DarkMuted:    picked["darkMuted"],
		LightMuted:   picked["lightMuted"],
	}
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
