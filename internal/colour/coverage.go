package colour

// canonicalHues are the six chromatic sectors every terminal palette
// must represent: red, yellow, green, cyan, blue, magenta.
var canonicalHues = []float64{0, 60, 120, 180, 240, 300}

const (
	coverageRadius        = 45.0
	coverageMinSaturation = 0.2
	maxPaletteSize        = 16
)

// EnsureCoverage appends a synthesised colour for every canonical hue
// sector that has no sufficiently saturated representative within 45
// degrees, as long as the palette has room to grow. Synthesised colours
// sit at the exact canonical hue with fixed mode-dependent saturation
// and lightness.
func EnsureCoverage(colors []RGB, mode Mode) []RGB {
	sat, light := 0.70, 0.60
	if mode == ModeLight {
		sat, light = 0.65, 0.45
	}

	out := colors
	for _, canonical := range canonicalHues {
		if len(out) >= maxPaletteSize {
			break
		}
		if hasCoverage(out, canonical) {
			continue
		}
		out = append(out, FromHSL(canonical, sat, light))
	}
	return out
}

func hasCoverage(colors []RGB, canonical float64) bool {
	for _, c := range colors {
		h, s, _ := c.HSL()
		if s > coverageMinSaturation && hueDistance(h, canonical) <= coverageRadius {
			return true
		}
	}
	return false
}
