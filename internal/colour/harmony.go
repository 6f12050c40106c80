package colour

import "math"

// Pull strengths for the harmony transforms. Analogous instead pulls
// out-of-window hues halfway back to the window edge.
const (
	analogousWindow    = 30.0
	triadicStrength    = 0.40
	splitStrength      = 0.35
	complementStrength = 0.45
	targetHueStrength  = 0.25
)

// DominantHue computes the palette's dominant hue as a
// saturation-weighted circular mean. Earlier (higher-frequency)
// candidates carry more weight via a descending rank factor.
func DominantHue(colors []RGB) float64 {
	n := len(colors)
	if n == 0 {
		return 0
	}
	hues := make([]float64, n)
	weights := make([]float64, n)
	for i, c := range colors {
		h, s, _ := c.HSL()
		hues[i] = h
		weights[i] = float64(n-i) / float64(n) * s
	}
	return circularMeanHue(hues, weights)
}

// Harmonize pulls the palette's hues towards the given harmony
// relationship, anchored on the dominant hue. HarmonyExtracted is the
// identity.
func Harmonize(colors []RGB, harmony Harmony) []RGB {
	if harmony == HarmonyExtracted || len(colors) == 0 {
		return colors
	}

	dominant := DominantHue(colors)

	switch harmony {
	case HarmonyAnalogous:
		return applyHue(colors, func(h float64) float64 {
			d := hueDiff(dominant, h)
			if math.Abs(d) <= analogousWindow {
				return h
			}
			// Pull halfway back towards the window edge.
			excess := d - math.Copysign(analogousWindow, d)
			return h - excess*0.5
		})
	case HarmonyTriadic:
		return pullTowards(colors, []float64{dominant, dominant + 120, dominant + 240}, triadicStrength)
	case HarmonySplitComplementary:
		return pullTowards(colors, []float64{dominant, dominant + 150, dominant + 210}, splitStrength)
	case HarmonyComplementary:
		return pullTowards(colors, []float64{dominant, dominant + 180}, complementStrength)
	default:
		return colors
	}
}

// ApplyHueBoosts raises saturation inside the style's hue bands with
// linear falloff. Overlapping boosts accumulate before the final cap.
func ApplyHueBoosts(colors []RGB, boosts []HueBoost) []RGB {
	if len(boosts) == 0 {
		return colors
	}
	out := make([]RGB, len(colors))
	for i, c := range colors {
		h, s, l := c.HSL()
		var delta float64
		for _, b := range boosts {
			if b.Range <= 0 {
				continue
			}
			if d := hueDistance(h, b.Center); d < b.Range {
				delta += b.Boost * (1.0 - d/b.Range)
			}
		}
		out[i] = FromHSL(h, s+delta, l)
	}
	return out
}

// ShiftTowardTargets rotates each colour a quarter of the way towards
// the nearest of the style's target hues. Styles without target hues
// pass through unchanged.
func ShiftTowardTargets(colors []RGB, targets []float64) []RGB {
	if len(targets) == 0 {
		return colors
	}
	return pullTowards(colors, targets, targetHueStrength)
}

// pullTowards rotates each colour's hue by strength times the signed
// distance to its angularly closest target.
func pullTowards(colors []RGB, targets []float64, strength float64) []RGB {
	normalised := make([]float64, len(targets))
	for i, t := range targets {
		normalised[i] = normaliseHue(t)
	}
	return applyHue(colors, func(h float64) float64 {
		_, diff := closestHue(h, normalised)
		return h + diff*strength
	})
}

// applyHue rewrites each colour's hue through fn, preserving saturation
// and lightness.
func applyHue(colors []RGB, fn func(h float64) float64) []RGB {
	out := make([]RGB, len(colors))
	for i, c := range colors {
		h, s, l := c.HSL()
		out[i] = FromHSL(fn(h), s, l)
	}
	return out
}
