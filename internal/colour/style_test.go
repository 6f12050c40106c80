package colour

import (
	"slices"
	"testing"
)

func TestLookupStyleFallsBackToDefault(t *testing.T) {
	got := LookupStyle("does-not-exist")
	if got.Name != DefaultStyleName {
		t.Errorf("LookupStyle(unknown).Name = %q, want %q", got.Name, DefaultStyleName)
	}

	// Repeated lookups of the same unknown name are stable.
	again := LookupStyle("does-not-exist")
	if again.Name != got.Name {
		t.Errorf("second lookup resolved differently: %q vs %q", again.Name, got.Name)
	}
}

func TestLookupStyleKnownNames(t *testing.T) {
	for _, name := range StyleNames() {
		s := LookupStyle(name)
		if s.Name != name {
			t.Errorf("LookupStyle(%q).Name = %q", name, s.Name)
		}
		if !KnownStyle(name) {
			t.Errorf("KnownStyle(%q) = false", name)
		}
	}
	if KnownStyle("neon-dreams") {
		t.Error("KnownStyle accepted an unregistered name")
	}
}

func TestStyleNamesSorted(t *testing.T) {
	names := StyleNames()
	if !slices.IsSorted(names) {
		t.Errorf("StyleNames() not sorted: %v", names)
	}
	if !slices.Contains(names, DefaultStyleName) {
		t.Errorf("default style %q missing from %v", DefaultStyleName, names)
	}
}

func TestClosestStyleName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"kawai", "kawaii"},
		{"drakula", "dracula"},
		{"gruvbox", "gruvbox"},
		{"tokio-night", "tokyo-night"},
	}
	for _, tt := range tests {
		if got := ClosestStyleName(tt.in); got != tt.want {
			t.Errorf("ClosestStyleName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStyleModeFactors(t *testing.T) {
	s := LookupStyle("vivid")
	if got := s.SaturationFactor(ModeDark); got != s.DarkSaturation {
		t.Errorf("dark saturation factor = %v, want %v", got, s.DarkSaturation)
	}
	if got := s.SaturationFactor(ModeLight); got != s.LightSaturation {
		t.Errorf("light saturation factor = %v, want %v", got, s.LightSaturation)
	}
	if got := s.BrightnessFactor(ModeLight); got != s.LightBrightness {
		t.Errorf("light brightness factor = %v, want %v", got, s.LightBrightness)
	}
}

func TestSlotBandContains(t *testing.T) {
	wrap := SlotBand{From: 335, To: 25, Target: 355}
	tests := []struct {
		hue  float64
		want bool
	}{
		{350, true},
		{0, true},
		{24.9, true},
		{25, false},
		{180, false},
		{334, false},
	}
	for _, tt := range tests {
		if got := wrap.contains(tt.hue); got != tt.want {
			t.Errorf("wrapping band contains(%v) = %v, want %v", tt.hue, got, tt.want)
		}
	}

	plain := SlotBand{From: 70, To: 160, Target: 120}
	if !plain.contains(70) || plain.contains(160) {
		t.Error("plain band boundaries are [From, To)")
	}
}

func TestSlotBandsCoverFullCircle(t *testing.T) {
	// Every style's band table must assign every hue to exactly one band.
	for _, name := range StyleNames() {
		bands := LookupStyle(name).slotBands()
		if len(bands) != 6 {
			t.Errorf("style %q has %d bands", name, len(bands))
			continue
		}
		for h := 0.0; h < 360; h += 0.5 {
			n := 0
			for _, b := range bands {
				if b.contains(h) {
					n++
				}
			}
			if n != 1 {
				t.Errorf("style %q: hue %v matched %d bands", name, h, n)
			}
		}
	}
}

func TestGenericBandsWarmthShift(t *testing.T) {
	neutral := genericBands(0)
	warm := genericBands(1)

	if neutral[2].Target != 120 {
		t.Errorf("neutral green target = %v, want 120", neutral[2].Target)
	}
	if warm[2].Target != 135 {
		t.Errorf("fully warm green target = %v, want 135", warm[2].Target)
	}
	if warm[0].From != 345 {
		t.Errorf("fully warm red band start = %v, want 345", warm[0].From)
	}
}

func TestHarmonyString(t *testing.T) {
	tests := []struct {
		h    Harmony
		want string
	}{
		{HarmonyExtracted, "extracted"},
		{HarmonyAnalogous, "analogous"},
		{HarmonyTriadic, "triadic"},
		{HarmonySplitComplementary, "split-complementary"},
		{HarmonyComplementary, "complementary"},
	}
	for _, tt := range tests {
		if got := tt.h.String(); got != tt.want {
			t.Errorf("Harmony(%d).String() = %q, want %q", tt.h, got, tt.want)
		}
	}
}
