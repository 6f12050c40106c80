package colour

import "math"

// maxWarmthRotation is the hue rotation applied at a warmth shift of
// +/-1.0.
const maxWarmthRotation = 30.0

// AdjustWithStyle applies the style's mode-specific curves to every
// colour. The order is significant: the warmth rotation happens before
// saturation and brightness scaling, and the contrast curve runs last.
func AdjustWithStyle(colors []RGB, style Style, mode Mode) []RGB {
	satFactor := style.SaturationFactor(mode)
	brightFactor := style.BrightnessFactor(mode)

	out := make([]RGB, len(colors))
	for i, c := range colors {
		h, s, l := c.HSL()

		if math.Abs(style.WarmthShift) > 1e-9 {
			h += style.WarmthShift * maxWarmthRotation
		}

		s = clamp01(s * satFactor)
		l = clamp01(l * brightFactor)

		if style.Contrast != 1.0 {
			l = clamp01(0.5 + (l-0.5)*style.Contrast)
		}

		out[i] = FromHSL(h, s, l)
	}
	return out
}

// adjustLightness scales a colour's HSL lightness by factor, clamped to
// [0,1].
func adjustLightness(c RGB, factor float64) RGB {
	h, s, l := c.HSL()
	return FromHSL(h, s, clamp01(l*factor))
}
