package colour

import (
	"slices"

	"github.com/agnivade/levenshtein"
)

// Harmony identifies the hue relationship a style pulls the extracted
// palette towards.
type Harmony int

const (
	// HarmonyExtracted leaves hues exactly as extracted.
	HarmonyExtracted Harmony = iota
	// HarmonyAnalogous keeps hues within a 30 degree window around the
	// dominant hue.
	HarmonyAnalogous
	// HarmonyTriadic pulls hues towards three targets 120 degrees apart.
	HarmonyTriadic
	// HarmonySplitComplementary pulls hues towards the dominant hue and
	// its two split complements at +150 and +210 degrees.
	HarmonySplitComplementary
	// HarmonyComplementary pulls hues towards the dominant hue and its
	// complement.
	HarmonyComplementary
)

// String returns the harmony's config-facing name.
func (h Harmony) String() string {
	switch h {
	case HarmonyAnalogous:
		return "analogous"
	case HarmonyTriadic:
		return "triadic"
	case HarmonySplitComplementary:
		return "split-complementary"
	case HarmonyComplementary:
		return "complementary"
	default:
		return "extracted"
	}
}

// HueBoost raises saturation for colours whose hue lies within Range
// degrees of Center, with linear falloff towards the edge of the band.
type HueBoost struct {
	Center float64
	Range  float64
	Boost  float64
}

// SlotBand is one of the six hue bands used by the terminal slot
// mapper. A band with From > To wraps through 0 degrees. Target is the
// canonical hue candidate colours are pulled towards.
type SlotBand struct {
	From   float64
	To     float64
	Target float64
}

// contains reports whether hue h falls inside the band, handling bands
// that straddle 0 degrees.
func (b SlotBand) contains(h float64) bool {
	h = normaliseHue(h)
	if b.From <= b.To {
		return h >= b.From && h < b.To
	}
	return h >= b.From || h < b.To
}

// Style is an immutable named preset controlling every tunable stage of
// the pipeline.
type Style struct {
	Name        string
	Description string

	DarkSaturation  float64
	LightSaturation float64
	DarkBrightness  float64
	LightBrightness float64

	// Contrast scales lightness away from the 0.5 pivot.
	Contrast float64

	// WarmthShift in [-1,1] rotates hues by up to 30 degrees; positive
	// values are warmer.
	WarmthShift float64

	HueBoosts  []HueBoost
	TargetHues []float64

	// BackgroundTint scales how much of the palette's hue bleeds into
	// extracted backgrounds.
	BackgroundTint float64

	Harmony Harmony

	// Bands overrides the slot mapper's hue band table. Styles without
	// a custom table use a generic one derived from WarmthShift.
	Bands []SlotBand
}

// SaturationFactor returns the mode-appropriate saturation multiplier.
func (s Style) SaturationFactor(mode Mode) float64 {
	if mode == ModeLight {
		return s.LightSaturation
	}
	return s.DarkSaturation
}

// BrightnessFactor returns the mode-appropriate lightness multiplier.
func (s Style) BrightnessFactor(mode Mode) float64 {
	if mode == ModeLight {
		return s.LightBrightness
	}
	return s.DarkBrightness
}

// DefaultStyleName is the style unknown names resolve to.
const DefaultStyleName = "balanced"

var styles = map[string]Style{
	"balanced": {
		Name:            "balanced",
		Description:     "Neutral, faithful to the image",
		DarkSaturation:  0.48,
		LightSaturation: 0.42,
		DarkBrightness:  0.86,
		LightBrightness: 0.90,
		Contrast:        0.72,
		WarmthShift:     0.0,
		BackgroundTint:  0.5,
		Harmony:         HarmonyExtracted,
	},
	"lofi": {
		Name:            "lofi",
		Description:     "Calm balanced aesthetic",
		DarkSaturation:  0.48,
		LightSaturation: 0.42,
		DarkBrightness:  0.86,
		LightBrightness: 0.90,
		Contrast:        0.72,
		WarmthShift:     0.08,
		BackgroundTint:  0.6,
		Harmony:         HarmonyAnalogous,
	},
	"kawaii": {
		Name:            "kawaii",
		Description:     "Cute pink aesthetic",
		DarkSaturation:  0.55,
		LightSaturation: 0.50,
		DarkBrightness:  0.88,
		LightBrightness: 0.92,
		Contrast:        0.75,
		WarmthShift:     0.25,
		HueBoosts: []HueBoost{
			{Center: 330, Range: 40, Boost: 0.25},
			{Center: 270, Range: 30, Boost: 0.10},
		},
		TargetHues:     []float64{330, 350, 210, 270},
		BackgroundTint: 0.8,
		Harmony:        HarmonyAnalogous,
		Bands: []SlotBand{
			{From: 335, To: 25, Target: 355},
			{From: 25, To: 70, Target: 45},
			{From: 70, To: 160, Target: 135},
			{From: 160, To: 200, Target: 185},
			{From: 200, To: 265, Target: 240},
			{From: 265, To: 335, Target: 320},
		},
	},
	"pastel": {
		Name:            "pastel",
		Description:     "Soft dreamy pastels",
		DarkSaturation:  0.45,
		LightSaturation: 0.40,
		DarkBrightness:  0.90,
		LightBrightness: 0.95,
		Contrast:        0.60,
		WarmthShift:     0.10,
		BackgroundTint:  0.5,
		Harmony:         HarmonyAnalogous,
	},
	"vivid": {
		Name:            "vivid",
		Description:     "Bold vibrant colours",
		DarkSaturation:  0.65,
		LightSaturation: 0.55,
		DarkBrightness:  0.85,
		LightBrightness: 0.88,
		Contrast:        0.85,
		WarmthShift:     0.0,
		BackgroundTint:  0.7,
		Harmony:         HarmonyTriadic,
	},
	"nord": {
		Name:            "nord",
		Description:     "Cool nordic minimal",
		DarkSaturation:  0.35,
		LightSaturation: 0.30,
		DarkBrightness:  0.82,
		LightBrightness: 0.88,
		Contrast:        0.65,
		WarmthShift:     -0.12,
		HueBoosts: []HueBoost{
			{Center: 210, Range: 40, Boost: 0.10},
		},
		TargetHues:     []float64{213, 179, 40, 354},
		BackgroundTint: 0.4,
		Harmony:        HarmonyAnalogous,
		Bands: []SlotBand{
			{From: 330, To: 20, Target: 354},
			{From: 20, To: 70, Target: 40},
			{From: 70, To: 150, Target: 92},
			{From: 150, To: 195, Target: 179},
			{From: 195, To: 265, Target: 213},
			{From: 265, To: 330, Target: 311},
		},
	},
	"warm": {
		Name:            "warm",
		Description:     "Cozy warm tones",
		DarkSaturation:  0.45,
		LightSaturation: 0.40,
		DarkBrightness:  0.85,
		LightBrightness: 0.88,
		Contrast:        0.70,
		WarmthShift:     0.18,
		HueBoosts: []HueBoost{
			{Center: 30, Range: 40, Boost: 0.15},
		},
		BackgroundTint: 0.6,
		Harmony:        HarmonyAnalogous,
	},
	"muted": {
		Name:            "muted",
		Description:     "Soft neutral palette",
		DarkSaturation:  0.38,
		LightSaturation: 0.33,
		DarkBrightness:  0.84,
		LightBrightness: 0.88,
		Contrast:        0.67,
		WarmthShift:     0.02,
		BackgroundTint:  0.3,
		Harmony:         HarmonyExtracted,
	},
	"dracula": {
		Name:            "dracula",
		Description:     "High-contrast purple and pink",
		DarkSaturation:  0.60,
		LightSaturation: 0.50,
		DarkBrightness:  0.87,
		LightBrightness: 0.90,
		Contrast:        0.80,
		WarmthShift:     -0.05,
		HueBoosts: []HueBoost{
			{Center: 265, Range: 35, Boost: 0.15},
			{Center: 326, Range: 30, Boost: 0.15},
		},
		TargetHues:     []float64{0, 65, 135, 191, 265, 326},
		BackgroundTint: 0.7,
		Harmony:        HarmonySplitComplementary,
		Bands: []SlotBand{
			{From: 335, To: 25, Target: 0},
			{From: 25, To: 90, Target: 65},
			{From: 90, To: 160, Target: 135},
			{From: 160, To: 210, Target: 191},
			{From: 210, To: 280, Target: 265},
			{From: 280, To: 335, Target: 326},
		},
	},
	"catppuccin": {
		Name:            "catppuccin",
		Description:     "Soothing warm pastel palette",
		DarkSaturation:  0.52,
		LightSaturation: 0.45,
		DarkBrightness:  0.88,
		LightBrightness: 0.92,
		Contrast:        0.72,
		WarmthShift:     0.05,
		TargetHues:      []float64{343, 41, 115, 189, 217, 316},
		BackgroundTint:  0.6,
		Harmony:         HarmonyAnalogous,
		Bands: []SlotBand{
			{From: 330, To: 20, Target: 343},
			{From: 20, To: 75, Target: 41},
			{From: 75, To: 160, Target: 115},
			{From: 160, To: 200, Target: 189},
			{From: 200, To: 270, Target: 217},
			{From: 270, To: 330, Target: 316},
		},
	},
	"gruvbox": {
		Name:            "gruvbox",
		Description:     "Retro earthy contrast",
		DarkSaturation:  0.55,
		LightSaturation: 0.48,
		DarkBrightness:  0.84,
		LightBrightness: 0.88,
		Contrast:        0.78,
		WarmthShift:     0.15,
		HueBoosts: []HueBoost{
			{Center: 45, Range: 45, Boost: 0.12},
		},
		BackgroundTint: 0.5,
		Harmony:        HarmonyExtracted,
		Bands: []SlotBand{
			{From: 340, To: 25, Target: 6},
			{From: 25, To: 60, Target: 45},
			{From: 60, To: 130, Target: 73},
			{From: 130, To: 180, Target: 152},
			{From: 180, To: 250, Target: 200},
			{From: 250, To: 340, Target: 330},
		},
	},
	"tokyo-night": {
		Name:            "tokyo-night",
		Description:     "Neon city blues and purples",
		DarkSaturation:  0.50,
		LightSaturation: 0.42,
		DarkBrightness:  0.85,
		LightBrightness: 0.90,
		Contrast:        0.75,
		WarmthShift:     -0.08,
		HueBoosts: []HueBoost{
			{Center: 221, Range: 40, Boost: 0.12},
		},
		TargetHues:     []float64{349, 40, 89, 187, 221, 267},
		BackgroundTint: 0.7,
		Harmony:        HarmonySplitComplementary,
		Bands: []SlotBand{
			{From: 330, To: 20, Target: 349},
			{From: 20, To: 70, Target: 40},
			{From: 70, To: 150, Target: 89},
			{From: 150, To: 200, Target: 187},
			{From: 200, To: 245, Target: 221},
			{From: 245, To: 330, Target: 267},
		},
	},
	"rose-pine": {
		Name:            "rose-pine",
		Description:     "Muted rose and pine hues",
		DarkSaturation:  0.48,
		LightSaturation: 0.42,
		DarkBrightness:  0.86,
		LightBrightness: 0.90,
		Contrast:        0.70,
		WarmthShift:     0.06,
		TargetHues:      []float64{343, 35, 189, 197, 268},
		BackgroundTint:  0.6,
		Harmony:         HarmonyAnalogous,
		Bands: []SlotBand{
			{From: 330, To: 15, Target: 343},
			{From: 15, To: 70, Target: 35},
			{From: 70, To: 170, Target: 150},
			{From: 170, To: 193, Target: 189},
			{From: 193, To: 250, Target: 197},
			{From: 250, To: 330, Target: 268},
		},
	},
}

// LookupStyle resolves a style name to its preset. Unknown names always
// resolve to the default style, never an error, so repeated lookups of
// the same name are stable.
func LookupStyle(name string) Style {
	if s, ok := styles[name]; ok {
		return s
	}
	return styles[DefaultStyleName]
}

// KnownStyle reports whether name is a registered style.
func KnownStyle(name string) bool {
	_, ok := styles[name]
	return ok
}

// StyleNames returns all registered style names in sorted order.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ClosestStyleName returns the registered style name with the smallest
// edit distance to name. Useful for "did you mean" hints when a config
// carries a typo.
func ClosestStyleName(name string) string {
	best := DefaultStyleName
	bestDist := -1
	for _, candidate := range StyleNames() {
		d := levenshtein.ComputeDistance(name, candidate)
		if bestDist < 0 || d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}

// genericBands derives a slot band table from the warmth shift for
// styles without a custom table. Base boundaries approximate the six
// ANSI chromatic sectors.
func genericBands(warmthShift float64) []SlotBand {
	shift := warmthShift * 15.0
	base := []SlotBand{
		{From: 330, To: 25, Target: 5},
		{From: 25, To: 70, Target: 50},
		{From: 70, To: 160, Target: 120},
		{From: 160, To: 200, Target: 180},
		{From: 200, To: 260, Target: 225},
		{From: 260, To: 330, Target: 295},
	}
	bands := make([]SlotBand, len(base))
	for i, b := range base {
		bands[i] = SlotBand{
			From:   normaliseHue(b.From + shift),
			To:     normaliseHue(b.To + shift),
			Target: normaliseHue(b.Target + shift),
		}
	}
	return bands
}

// slotBands returns the style's band table, falling back to the generic
// warmth-derived one.
func (s Style) slotBands() []SlotBand {
	if len(s.Bands) == 6 {
		return s.Bands
	}
	return genericBands(s.WarmthShift)
}
