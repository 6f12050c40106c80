// Package colour implements the colour extraction and scheme generation
// pipeline: dominant colour extraction, harmonisation, style adjustment
// and terminal slot mapping.
package colour

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB represents a colour as 8-bit red, green and blue channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the colour as a lowercase hex string (e.g. "#1e1e2e").
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the colour in "rgb(r, g, b)" form.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSL returns the colour in HSL space: hue in degrees [0,360),
// saturation and lightness in [0,1].
func (c RGB) HSL() (h, s, l float64) {
	return c.colorful().Hsl()
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// FromHSL converts an HSL value back to 8-bit RGB. The hue is normalised
// into [0,360) and saturation/lightness are clamped to [0,1].
func FromHSL(h, s, l float64) RGB {
	col := colorful.Hsl(normaliseHue(h), clamp01(s), clamp01(l))
	r, g, b := col.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// ParseHex parses a "#rrggbb" hex string into an RGB value.
func ParseHex(s string) (RGB, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	r, g, b := col.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// mustHex is used for built-in palette constants, which are known good.
func mustHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Vibrance is a cheap proxy for perceived colourfulness:
// (max-min)/max over the RGB channels, 0 for black.
func (c RGB) Vibrance() float64 {
	maxCh := math.Max(float64(c.R), math.Max(float64(c.G), float64(c.B)))
	if maxCh == 0 {
		return 0
	}
	minCh := math.Min(float64(c.R), math.Min(float64(c.G), float64(c.B)))
	return (maxCh - minCh) / maxCh
}

// Brightness returns the mean of the three channels in [0,255].
func (c RGB) Brightness() float64 {
	return (float64(c.R) + float64(c.G) + float64(c.B)) / 3.0
}

// perceptualDistance approximates perceptual difference as a weighted sum
// of per-channel absolute differences. It is used for diversity gating
// during extraction, where the cost of a full HSL distance is not
// justified.
func perceptualDistance(a, b RGB) float64 {
	dr := math.Abs(float64(a.R) - float64(b.R))
	dg := math.Abs(float64(a.G) - float64(b.G))
	db := math.Abs(float64(a.B) - float64(b.B))
	return 0.30*dr + 0.59*dg + 0.11*db
}

// euclideanDistance is the plain RGB-space distance, used where the
// output colour itself is being compared (accent separation).
func euclideanDistance(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Mode selects the light or dark variant of the pipeline's tuning.
type Mode int

const (
	// ModeDark produces light text on a dark background.
	ModeDark Mode = iota
	// ModeLight produces dark text on a light background.
	ModeLight
)

// String returns "dark" or "light".
func (m Mode) String() string {
	if m == ModeLight {
		return "light"
	}
	return "dark"
}
