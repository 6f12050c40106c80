package colour

import (
	"math"
	"testing"
)

func TestMapSlotsAlwaysSixteen(t *testing.T) {
	style := LookupStyle(DefaultStyleName)
	bg := mustHex("#1e1e2e")
	fg := Foreground(bg, ModeDark)

	for _, palette := range [][]RGB{
		nil,
		{FromHSL(0, 0.8, 0.5)},
		{FromHSL(0, 0.8, 0.5), FromHSL(120, 0.7, 0.5), FromHSL(240, 0.6, 0.5)},
	} {
		slots := MapSlots(palette, bg, fg, style, ModeDark)
		if slots[0] != bg {
			t.Errorf("slot 0 = %v, want background %v", slots[0], bg)
		}
		if slots[7] != fg {
			t.Errorf("slot 7 = %v, want foreground %v", slots[7], fg)
		}
		for i := 1; i < 7; i++ {
			if slots[i] == (RGB{}) {
				t.Errorf("palette size %d: slot %d is zero", len(palette), i)
			}
		}
	}
}

func TestMapSlotsDarkLegibilityBands(t *testing.T) {
	style := LookupStyle("vivid")
	bg := mustHex("#1e1e2e")
	fg := Foreground(bg, ModeDark)
	palette := []RGB{
		FromHSL(10, 0.9, 0.2),
		FromHSL(55, 0.2, 0.9),
		FromHSL(130, 0.7, 0.5),
		FromHSL(185, 0.6, 0.5),
		FromHSL(230, 0.8, 0.5),
		FromHSL(300, 0.5, 0.5),
	}

	slots := MapSlots(palette, bg, fg, style, ModeDark)
	for i := 1; i < 7; i++ {
		_, s, l := slots[i].HSL()
		if s < 0.53 || s > 0.92 {
			t.Errorf("slot %d saturation = %v, want within [0.55, 0.90]", i, s)
		}
		if l < 0.48 || l > 0.72 {
			t.Errorf("slot %d lightness = %v, want within [0.50, 0.70]", i, l)
		}
	}
}

func TestMapSlotsLightLegibilityBands(t *testing.T) {
	style := LookupStyle(DefaultStyleName)
	bg := mustHex("#eff1f5")
	fg := Foreground(bg, ModeLight)

	slots := MapSlots(nil, bg, fg, style, ModeLight)
	for i := 1; i < 7; i++ {
		_, s, l := slots[i].HSL()
		if s < 0.48 || s > 0.87 {
			t.Errorf("slot %d saturation = %v, want within [0.50, 0.85]", i, s)
		}
		if l < 0.33 || l > 0.57 {
			t.Errorf("slot %d lightness = %v, want within [0.35, 0.55]", i, l)
		}
	}
}

func TestMapSlotsPullsTowardsBandTargets(t *testing.T) {
	// A candidate at hue 100 inside the generic green band (target 120)
	// moves 30% of the way: 100 + 20*0.3 = 106.
	style := LookupStyle(DefaultStyleName)
	palette := []RGB{FromHSL(100, 0.8, 0.55)}

	slots := MapSlots(palette, mustHex("#1e1e2e"), mustHex("#cdd6f4"), style, ModeDark)
	h, _, _ := slots[3].HSL()
	if math.Abs(h-106) > 2 {
		t.Errorf("green slot hue = %v, want ~106", h)
	}
}

func TestMapSlotsSynthesisesEmptyBands(t *testing.T) {
	// With no palette at all, each chromatic slot lands near its band
	// target.
	style := LookupStyle("dracula")
	slots := MapSlots(nil, mustHex("#1e1e2e"), mustHex("#cdd6f4"), style, ModeDark)

	targets := []float64{0, 65, 135, 191, 265, 326}
	for i, target := range targets {
		h, s, _ := slots[1+i].HSL()
		if hueDistance(h, target) > 3 {
			t.Errorf("slot %d hue = %v, want ~%v", 1+i, h, target)
		}
		if s < 0.53 {
			t.Errorf("slot %d saturation = %v, too washed out for a synthesised colour", 1+i, s)
		}
	}
}

func TestSynthesiseBandColourPinkBoost(t *testing.T) {
	_, sPink, _ := synthesiseBandColour(320, ModeDark).HSL()
	_, sPlain, _ := synthesiseBandColour(120, ModeDark).HSL()
	if sPink <= sPlain {
		t.Errorf("pink-range synthesis saturation %v not above plain %v", sPink, sPlain)
	}
}

func TestCommentColour(t *testing.T) {
	bg := FromHSL(230, 0.18, 0.10)
	style := LookupStyle("warm") // WarmthShift 0.18

	c := commentColour(bg, style, ModeDark)
	h, s, l := c.HSL()
	if math.Abs(l-commentDarkLight) > 0.02 {
		t.Errorf("comment lightness = %v, want ~%v", l, commentDarkLight)
	}
	if s > commentDarkSatCap+0.02 {
		t.Errorf("comment saturation = %v, exceeds cap %v", s, commentDarkSatCap)
	}
	// Hue rotated by warmth: 0.18 * 10 degrees.
	hBG, _, _ := bg.HSL()
	if math.Abs(hueDiff(hBG, h)-0.18*commentWarmthRotation) > 2 {
		t.Errorf("comment hue %v not rotated ~1.8 degrees from background hue %v", h, hBG)
	}

	_, s, l = commentColour(bg, style, ModeLight).HSL()
	if math.Abs(l-commentLightLight) > 0.02 {
		t.Errorf("light comment lightness = %v, want ~%v", l, commentLightLight)
	}
	if s > commentLightSatCap+0.02 {
		t.Errorf("light comment saturation = %v, exceeds cap %v", s, commentLightSatCap)
	}
}

func TestBrightVariantsJitterDeterministically(t *testing.T) {
	style := LookupStyle(DefaultStyleName)
	palette := []RGB{
		FromHSL(5, 0.8, 0.55),
		FromHSL(50, 0.8, 0.55),
		FromHSL(120, 0.8, 0.55),
		FromHSL(180, 0.8, 0.55),
		FromHSL(225, 0.8, 0.55),
		FromHSL(295, 0.8, 0.55),
	}
	a := MapSlots(palette, mustHex("#1e1e2e"), mustHex("#cdd6f4"), style, ModeDark)
	b := MapSlots(palette, mustHex("#1e1e2e"), mustHex("#cdd6f4"), style, ModeDark)
	if a != b {
		t.Fatal("identical inputs produced different slot tables")
	}

	for i := 0; i < 6; i++ {
		hBase, sBase, lBase := a[1+i].HSL()
		hBright, sBright, lBright := a[9+i].HSL()
		if got := hueDiff(hBase, hBright); math.Abs(got-brightJitter[i]) > 1.5 {
			t.Errorf("slot %d bright hue jitter = %v, want %v", 9+i, got, brightJitter[i])
		}
		if sBright < sBase-0.02 {
			t.Errorf("slot %d bright saturation %v below base %v", 9+i, sBright, sBase)
		}
		if lBright < lBase-0.02 {
			t.Errorf("slot %d bright lightness %v below base %v", 9+i, lBright, lBase)
		}
	}
}

func TestBrightForegroundSlot(t *testing.T) {
	style := LookupStyle(DefaultStyleName)
	fg := mustHex("#cdd6f4")
	_, _, lFG := fg.HSL()

	dark := MapSlots(nil, mustHex("#1e1e2e"), fg, style, ModeDark)
	_, _, l15 := dark[15].HSL()
	if l15 <= lFG {
		t.Errorf("dark bright foreground lightness %v not above %v", l15, lFG)
	}

	lightFG := mustHex("#4c4f69")
	_, _, lFG = lightFG.HSL()
	light := MapSlots(nil, mustHex("#eff1f5"), lightFG, style, ModeLight)
	_, _, l15 = light[15].HSL()
	if l15 >= lFG {
		t.Errorf("light bright foreground lightness %v not below %v", l15, lFG)
	}
}
