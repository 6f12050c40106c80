package colour

import (
	"slices"
)

// Extraction tuning. Pixels whose mean brightness falls outside
// [minBrightness, maxBrightness] are ignored so that near-black and
// near-white regions cannot dominate the frequency ranking. Channels
// are quantised to 16-level buckets before counting.
const (
	minBrightness = 20
	maxBrightness = 240
	quantiseMask  = 0xf0
)

// Extractor selects a diverse set of dominant colours from a pixel
// buffer by frequency ranking followed by greedy diversity filtering.
type Extractor struct {
	// DiversityThreshold is the minimum perceptual distance required
	// between any two accepted colours.
	DiversityThreshold float64

	// ColorCount is the number of colours to produce.
	ColorCount int
}

// NewExtractor returns an Extractor with the given tuning. Non-positive
// values fall back to the defaults (threshold 50, 16 colours).
func NewExtractor(diversityThreshold float64, colorCount int) *Extractor {
	if diversityThreshold <= 0 {
		diversityThreshold = 50.0
	}
	if colorCount <= 0 {
		colorCount = 16
	}
	return &Extractor{
		DiversityThreshold: diversityThreshold,
		ColorCount:         colorCount,
	}
}

// Extract produces exactly ColorCount colours from the pixel buffer.
// Buckets are ranked by frequency (ties broken by ascending packed RGB
// value, so repeated runs are byte-identical) and accepted greedily
// while they stay further than DiversityThreshold from every colour
// accepted before them. When the ranking cannot supply enough diverse
// colours the remainder is synthesised from hue-rotated complements.
func (e *Extractor) Extract(pixels []RGB) []RGB {
	counts := make(map[RGB]int)
	for _, p := range pixels {
		br := p.Brightness()
		if br < minBrightness || br > maxBrightness {
			continue
		}
		q := RGB{R: p.R & quantiseMask, G: p.G & quantiseMask, B: p.B & quantiseMask}
		counts[q]++
	}

	type bucket struct {
		colour RGB
		count  int
	}
	buckets := make([]bucket, 0, len(counts))
	for c, n := range counts {
		buckets = append(buckets, bucket{colour: c, count: n})
	}
	slices.SortFunc(buckets, func(a, b bucket) int {
		if a.count != b.count {
			return b.count - a.count
		}
		return packRGB(a.colour) - packRGB(b.colour)
	})

	// Bounded scan: only the top 3x ranked buckets are considered.
	limit := min(3*e.ColorCount, len(buckets))

	selected := make([]RGB, 0, e.ColorCount)
	for _, b := range buckets[:limit] {
		if len(selected) >= e.ColorCount {
			break
		}
		if e.isDiverse(b.colour, selected) {
			selected = append(selected, b.colour)
		}
	}

	for len(selected) < e.ColorCount {
		selected = append(selected, complementaryFill(selected))
	}
	return selected
}

// isDiverse reports whether c keeps more than the diversity threshold
// of perceptual distance to every already selected colour.
func (e *Extractor) isDiverse(c RGB, selected []RGB) bool {
	for _, s := range selected {
		if perceptualDistance(c, s) <= e.DiversityThreshold {
			return false
		}
	}
	return true
}

// complementaryFill synthesises a colour from the last selected one by
// rotating its hue 180 degrees, raising saturation and fixing lightness
// at the midpoint. These fills intentionally skip the diversity gate.
func complementaryFill(selected []RGB) RGB {
	if len(selected) == 0 {
		return RGB{R: 128, G: 128, B: 128}
	}
	h, s, _ := selected[len(selected)-1].HSL()
	return FromHSL(h+180.0, s+0.2, 0.5)
}

func packRGB(c RGB) int {
	return int(c.R)<<16 | int(c.G)<<8 | int(c.B)
}
