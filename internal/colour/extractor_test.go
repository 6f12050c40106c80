package colour

import (
	"slices"
	"testing"
)

// solidPixels returns n copies of the given colour.
func solidPixels(c RGB, n int) []RGB {
	pixels := make([]RGB, n)
	for i := range pixels {
		pixels[i] = c
	}
	return pixels
}

func TestExtractRedBlueImage(t *testing.T) {
	// 90% pure red, 10% pure blue: red must rank first, blue second,
	// and the remaining slots are complementary fills.
	pixels := append(solidPixels(RGB{R: 255}, 900), solidPixels(RGB{B: 255}, 100)...)

	e := NewExtractor(50, 16)
	got := e.Extract(pixels)

	if len(got) != 16 {
		t.Fatalf("Extract returned %d colours, want 16", len(got))
	}
	if want := (RGB{R: 240}); got[0] != want {
		t.Errorf("top colour = %+v, want quantised red %+v", got[0], want)
	}
	if want := (RGB{B: 240}); got[1] != want {
		t.Errorf("second colour = %+v, want quantised blue %+v", got[1], want)
	}
}

func TestExtractDiversityInvariant(t *testing.T) {
	// A spread of distinct colours; every accepted pair must exceed the
	// threshold. Fills are exempt, so use enough distinct input colours
	// that the first few accepted ones are genuine buckets.
	pixels := slices.Concat(
		solidPixels(RGB{R: 200, G: 30, B: 30}, 500),
		solidPixels(RGB{R: 30, G: 200, B: 30}, 400),
		solidPixels(RGB{R: 30, G: 30, B: 200}, 300),
		solidPixels(RGB{R: 200, G: 200, B: 30}, 200),
	)

	const threshold = 40.0
	e := NewExtractor(threshold, 4)
	got := e.Extract(pixels)

	for i := 0; i < len(got); i++ {
		for j := i + 1; j < len(got); j++ {
			if d := perceptualDistance(got[i], got[j]); d <= threshold {
				t.Errorf("colours %d and %d too close: distance %v <= %v", i, j, d, threshold)
			}
		}
	}
}

func TestExtractSkipsExtremeBrightness(t *testing.T) {
	// Near-black and near-white pixels are excluded from counting, so a
	// buffer of only extremes behaves like an empty one.
	pixels := slices.Concat(
		solidPixels(RGB{R: 5, G: 5, B: 5}, 100),
		solidPixels(RGB{R: 250, G: 250, B: 250}, 100),
	)

	e := NewExtractor(50, 4)
	got := e.Extract(pixels)

	if len(got) != 4 {
		t.Fatalf("Extract returned %d colours, want 4", len(got))
	}
	// First fill for an empty selection is mid grey.
	if want := (RGB{R: 128, G: 128, B: 128}); got[0] != want {
		t.Errorf("first fallback = %+v, want %+v", got[0], want)
	}
}

func TestExtractDeterministic(t *testing.T) {
	pixels := slices.Concat(
		solidPixels(RGB{R: 180, G: 90, B: 40}, 333),
		solidPixels(RGB{R: 40, G: 140, B: 180}, 333),
		solidPixels(RGB{R: 90, G: 180, B: 90}, 334),
	)

	e := NewExtractor(50, 16)
	first := e.Extract(pixels)
	for i := 0; i < 10; i++ {
		if again := e.Extract(pixels); !slices.Equal(first, again) {
			t.Fatalf("run %d differed from first run", i)
		}
	}
}

func TestExtractTieBreakIsStable(t *testing.T) {
	// Two buckets with identical counts: the lower packed RGB value
	// must always rank first.
	pixels := append(solidPixels(RGB{B: 255}, 100), solidPixels(RGB{R: 255}, 100)...)

	e := NewExtractor(50, 2)
	got := e.Extract(pixels)

	if want := (RGB{B: 240}); got[0] != want {
		t.Errorf("tie-break winner = %+v, want %+v (ascending packed RGB)", got[0], want)
	}
}

func TestComplementaryFillRotatesHue(t *testing.T) {
	seed := FromHSL(30, 0.5, 0.5)
	fill := complementaryFill([]RGB{seed})

	h, s, l := fill.HSL()
	if hueDistance(h, 210) > 2 {
		t.Errorf("fill hue = %v, want ~210", h)
	}
	if s < 0.65 || s > 0.75 {
		t.Errorf("fill saturation = %v, want ~0.7", s)
	}
	if l < 0.48 || l > 0.52 {
		t.Errorf("fill lightness = %v, want ~0.5", l)
	}
}

func TestNewExtractorDefaults(t *testing.T) {
	e := NewExtractor(0, 0)
	if e.DiversityThreshold != 50.0 {
		t.Errorf("default threshold = %v, want 50", e.DiversityThreshold)
	}
	if e.ColorCount != 16 {
		t.Errorf("default colour count = %d, want 16", e.ColorCount)
	}
}
