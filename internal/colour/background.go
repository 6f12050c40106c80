package colour

// Background source selectors. "pure-dark" and "pure-light" both select
// the fixed mode default; the mismatched one is accepted and treated
// the same so a shared config works across modes.
const (
	BackgroundExtracted = "extracted"
	BackgroundPureDark  = "pure-dark"
	BackgroundPureLight = "pure-light"
	BackgroundCustom    = "custom"
)

// Fixed fallbacks, also used by the pure background styles.
var (
	defaultDarkBackground  = mustHex("#1e1e2e")
	defaultLightBackground = mustHex("#eff1f5")
	defaultDarkForeground  = mustHex("#cdd6f4")
	defaultLightForeground = mustHex("#4c4f69")
	defaultDarkSurface     = mustHex("#313244")
	defaultLightSurface    = mustHex("#e6e9ef")
	defaultDarkError       = mustHex("#f38ba8")
	defaultLightError      = mustHex("#d20f39")
)

// Background tint ceilings and lightness bands for extracted
// backgrounds. Dark lightness is inversely scaled by the palette's
// average lightness: brighter imagery yields a darker backdrop.
const (
	darkTintCap    = 0.20
	lightTintCap   = 0.15
	darkLightBase  = 0.06
	darkLightSpan  = 0.12
	lightLightBase = 0.91
	lightLightSpan = 0.06
)

// Background derives the scheme's background colour. bgStyle selects
// between the extracted computation, the fixed mode default, and a
// user-supplied hex value (which degrades to the fixed default when
// unparseable).
func Background(colors []RGB, style Style, mode Mode, bgStyle, customHex string) RGB {
	switch bgStyle {
	case BackgroundCustom:
		if c, err := ParseHex(customHex); err == nil {
			return c
		}
		return pureBackground(mode)
	case BackgroundPureDark, BackgroundPureLight:
		return pureBackground(mode)
	default:
		return extractedBackground(colors, style, mode)
	}
}

func pureBackground(mode Mode) RGB {
	if mode == ModeLight {
		return defaultLightBackground
	}
	return defaultDarkBackground
}

// extractedBackground builds a background from the palette's circular
// mean hue, tinted subtly by its average saturation and the style's
// tint strength.
func extractedBackground(colors []RGB, style Style, mode Mode) RGB {
	if len(colors) == 0 {
		return pureBackground(mode)
	}

	hues := make([]float64, len(colors))
	weights := make([]float64, len(colors))
	var satSum, lightSum float64
	for i, c := range colors {
		h, s, l := c.HSL()
		hues[i] = h
		weights[i] = s
		satSum += s
		lightSum += l
	}
	hue := circularMeanHue(hues, weights)
	avgSat := satSum / float64(len(colors))
	avgLight := lightSum / float64(len(colors))

	var sat, light float64
	if mode == ModeLight {
		light = lightLightBase + lightLightSpan*avgLight
		sat = clamp(avgSat*style.BackgroundTint, 0, lightTintCap)
	} else {
		light = darkLightBase + darkLightSpan*(1.0-avgLight)
		sat = clamp(avgSat*style.BackgroundTint, 0, darkTintCap)
	}
	return FromHSL(hue, sat, light)
}

// Foreground saturation attenuation and target lightness per mode. The
// foreground always carries a faint tint of the background's hue
// family rather than an unrelated hue.
const (
	foregroundSatFactor = 0.5
	foregroundSatCap    = 0.12
	darkForegroundLight = 0.85
	lightForegroundLight = 0.25
)

// Foreground derives the text colour from the background's own hue,
// re-lit to the opposite extreme.
func Foreground(bg RGB, mode Mode) RGB {
	h, s, _ := bg.HSL()
	sat := clamp(s*foregroundSatFactor, 0, foregroundSatCap)
	if mode == ModeLight {
		return FromHSL(h, sat, lightForegroundLight)
	}
	return FromHSL(h, sat, darkForegroundLight)
}

func defaultForeground(mode Mode) RGB {
	if mode == ModeLight {
		return defaultLightForeground
	}
	return defaultDarkForeground
}

func defaultError(mode Mode) RGB {
	if mode == ModeLight {
		return defaultLightError
	}
	return defaultDarkError
}
