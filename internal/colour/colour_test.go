package colour

import (
	"math"
	"testing"
)

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "red", rgb: RGB{R: 255}, want: "#ff0000"},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, want: "#ffffff"},
		{name: "black", rgb: RGB{}, want: "#000000"},
		{name: "mixed", rgb: RGB{R: 30, G: 30, B: 46}, want: "#1e1e2e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RGB
		wantErr bool
	}{
		{name: "valid", in: "#1e1e2e", want: RGB{R: 30, G: 30, B: 46}},
		{name: "uppercase", in: "#FF0000", want: RGB{R: 255}},
		{name: "missing hash", in: "1e1e2e", wantErr: true},
		{name: "garbage", in: "#zzzzzz", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) expected error, got %v", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHSLRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    RGB
	}{
		{name: "pure red", h: 0, s: 1, l: 0.5, want: RGB{R: 255}},
		{name: "pure green", h: 120, s: 1, l: 0.5, want: RGB{G: 255}},
		{name: "pure blue", h: 240, s: 1, l: 0.5, want: RGB{B: 255}},
		{name: "white", h: 0, s: 0, l: 1, want: RGB{R: 255, G: 255, B: 255}},
		{name: "black", h: 0, s: 0, l: 0, want: RGB{}},
		{name: "grey", h: 0, s: 0, l: 0.5, want: RGB{R: 128, G: 128, B: 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromHSL(tt.h, tt.s, tt.l); got != tt.want {
				t.Errorf("FromHSL(%v, %v, %v) = %+v, want %+v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestHSLOfPrimaries(t *testing.T) {
	h, s, l := RGB{R: 255}.HSL()
	if math.Abs(h) > 1e-9 || math.Abs(s-1) > 1e-9 || math.Abs(l-0.5) > 1e-9 {
		t.Errorf("HSL of red = (%v, %v, %v), want (0, 1, 0.5)", h, s, l)
	}

	_, s, _ = RGB{R: 100, G: 100, B: 100}.HSL()
	if s > 1e-9 {
		t.Errorf("grey saturation = %v, want 0", s)
	}
}

func TestFromHSLNormalisesInputs(t *testing.T) {
	// Hue wraps; saturation and lightness clamp.
	if got, want := FromHSL(360, 1, 0.5), (RGB{R: 255}); got != want {
		t.Errorf("FromHSL(360, ...) = %+v, want %+v", got, want)
	}
	if got, want := FromHSL(-120, 1, 0.5), (RGB{B: 255}); got != want {
		t.Errorf("FromHSL(-120, ...) = %+v, want %+v", got, want)
	}
	if got, want := FromHSL(0, 1.5, 2.0), (RGB{R: 255, G: 255, B: 255}); got != want {
		t.Errorf("FromHSL with out-of-range s/l = %+v, want %+v", got, want)
	}
}

func TestVibrance(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want float64
	}{
		{name: "pure red is fully vibrant", rgb: RGB{R: 255}, want: 1.0},
		{name: "grey has none", rgb: RGB{R: 128, G: 128, B: 128}, want: 0.0},
		{name: "black guards division by zero", rgb: RGB{}, want: 0.0},
		{name: "half vibrant", rgb: RGB{R: 200, G: 100, B: 100}, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Vibrance(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Vibrance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPerceptualDistanceWeighting(t *testing.T) {
	// Green differences must weigh more than blue differences.
	base := RGB{}
	greenDist := perceptualDistance(base, RGB{G: 100})
	blueDist := perceptualDistance(base, RGB{B: 100})
	if greenDist <= blueDist {
		t.Errorf("green distance %v should exceed blue distance %v", greenDist, blueDist)
	}
}

func TestEuclideanDistance(t *testing.T) {
	if got := euclideanDistance(RGB{}, RGB{R: 3, G: 4}); math.Abs(got-5) > 1e-9 {
		t.Errorf("euclideanDistance = %v, want 5", got)
	}
}
