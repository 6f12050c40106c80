package colour

import "math"

// Slot mapper tuning. Candidates found inside a hue band are pulled 30%
// of the way to the band's canonical target; bands with no candidate
// synthesise one at the target hue outright.
const (
	bandPullStrength = 0.30

	// Synthesised band colours.
	synthDarkSat    = 0.65
	synthDarkLight  = 0.60
	synthLightSat   = 0.60
	synthLightLight = 0.48

	// Pink/magenta range synthesis gets extra saturation.
	pinkRangeFrom  = 290.0
	pinkRangeTo    = 350.0
	pinkExtraBoost = 0.15

	// Comment colour (slot 8).
	commentWarmthRotation = 10.0
	commentDarkLight      = 0.50
	commentLightLight     = 0.45
	commentSatLift        = 0.08
	commentDarkSatCap     = 0.30
	commentLightSatCap    = 0.25

	// Bright foreground (slot 15).
	brightFgDarkFactor  = 1.1
	brightFgLightFactor = 0.7
)

// brightJitter is the deterministic per-slot hue jitter applied to the
// bright variants in slots 9-14.
var brightJitter = [6]float64{3, -3, 4, -4, 5, -5}

// MapSlots fills the 16 ANSI terminal slots from the adjusted palette:
// slot 0 background, 1-6 the six chromatic bands, 7 foreground, 8 the
// muted comment colour, 9-14 bright variants of 1-6, 15 the bright
// foreground. It always emits exactly 16 colours regardless of input
// palette size.
func MapSlots(adjusted []RGB, bg, fg RGB, style Style, mode Mode) [16]RGB {
	var slots [16]RGB
	slots[0] = bg
	slots[7] = fg

	bands := style.slotBands()
	for i, band := range bands {
		c, found := bestInBand(adjusted, band)
		if found {
			h, s, l := c.HSL()
			h += hueDiff(h, band.Target) * bandPullStrength
			c = FromHSL(h, s, l)
		} else {
			c = synthesiseBandColour(band.Target, mode)
		}
		slots[1+i] = clampBandColour(c, style, mode)
	}

	slots[8] = commentColour(bg, style, mode)

	for i := 0; i < 6; i++ {
		slots[9+i] = brightVariant(slots[1+i], brightJitter[i], mode)
	}

	if mode == ModeLight {
		slots[15] = adjustLightness(fg, brightFgLightFactor)
	} else {
		slots[15] = adjustLightness(fg, brightFgDarkFactor)
	}
	return slots
}

// bestInBand returns the palette colour inside the band maximising
// saturation times vibrance.
func bestInBand(colors []RGB, band SlotBand) (RGB, bool) {
	var best RGB
	bestScore := -1.0
	for _, c := range colors {
		h, s, _ := c.HSL()
		if !band.contains(h) {
			continue
		}
		if score := s * c.Vibrance(); score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best, bestScore >= 0
}

// synthesiseBandColour creates a colour at the band's canonical hue
// when the palette offers no candidate. Hues in the pink range get a
// saturation bias so styles leaning on pink stay recognisably pink.
func synthesiseBandColour(target float64, mode Mode) RGB {
	sat, light := synthDarkSat, synthDarkLight
	if mode == ModeLight {
		sat, light = synthLightSat, synthLightLight
	}
	if target >= pinkRangeFrom && target <= pinkRangeTo {
		sat += pinkExtraBoost
	}
	return FromHSL(target, sat, light)
}

// clampBandColour applies the post-adjustment for slots 1-6: saturation
// re-scaled by twice the style's saturation factor and both saturation
// and lightness clamped into the mode's legibility band.
func clampBandColour(c RGB, style Style, mode Mode) RGB {
	h, s, l := c.HSL()
	s *= 2.0 * style.SaturationFactor(mode)
	if mode == ModeLight {
		s = clamp(s, 0.50, 0.85)
		l = clamp(l, 0.35, 0.55)
	} else {
		s = clamp(s, 0.55, 0.90)
		l = clamp(l, 0.50, 0.70)
	}
	return FromHSL(h, s, l)
}

// commentColour derives slot 8 ("bright black") from the background's
// hue: terminals use it for muted text, so it stays in the background's
// hue family with slightly more saturation and fixed lightness.
func commentColour(bg RGB, style Style, mode Mode) RGB {
	h, s, _ := bg.HSL()
	h += style.WarmthShift * commentWarmthRotation
	if mode == ModeLight {
		return FromHSL(h, math.Min(s+commentSatLift, commentLightSatCap), commentLightLight)
	}
	return FromHSL(h, math.Min(s+commentSatLift, commentDarkSatCap), commentDarkLight)
}

// brightVariant derives slots 9-14 from their base slots with a small
// hue jitter and an intensity push: dark mode raises saturation and
// lightness, light mode trades lightness for saturation.
func brightVariant(base RGB, jitter float64, mode Mode) RGB {
	h, s, l := base.HSL()
	h += jitter
	if mode == ModeLight {
		s = math.Min(s+0.05, 0.90)
		l = math.Max(l-0.06, 0.30)
	} else {
		s = math.Min(s+0.08, 0.95)
		l = math.Min(l+0.08, 0.80)
	}
	return FromHSL(h, s, l)
}
