package colour

import "slices"

// secondaryMinDistance is the minimum RGB-space separation between
// accent and secondary.
const secondaryMinDistance = 80.0

// Surface lightness factors relative to the background.
const (
	surfaceDarkFactor  = 1.2
	surfaceLightFactor = 0.92
)

// Accents picks the UI accent roles from the adjusted palette. Accent
// is the most vibrant colour; secondary is the next most vibrant colour
// sufficiently far from it in RGB space, falling back to the
// second-ranked colour when nothing qualifies. Surface is the
// background nudged towards the foreground.
func Accents(adjusted []RGB, bg RGB, mode Mode) (accent, secondary, surface RGB) {
	surface = surfaceColour(bg, mode)

	if len(adjusted) == 0 {
		accent = defaultError(mode)
		return accent, accent, surface
	}

	ranked := slices.Clone(adjusted)
	slices.SortStableFunc(ranked, func(a, b RGB) int {
		av, bv := a.Vibrance(), b.Vibrance()
		switch {
		case av > bv:
			return -1
		case av < bv:
			return 1
		default:
			return 0
		}
	})

	accent = ranked[0]
	if len(ranked) == 1 {
		return accent, accent, surface
	}

	secondary = ranked[1]
	for _, c := range ranked[1:] {
		if euclideanDistance(c, accent) > secondaryMinDistance {
			secondary = c
			break
		}
	}
	return accent, secondary, surface
}

func surfaceColour(bg RGB, mode Mode) RGB {
	if mode == ModeLight {
		if bg == (RGB{}) {
			return defaultLightSurface
		}
		return adjustLightness(bg, surfaceLightFactor)
	}
	if bg == (RGB{}) {
		return defaultDarkSurface
	}
	return adjustLightness(bg, surfaceDarkFactor)
}
