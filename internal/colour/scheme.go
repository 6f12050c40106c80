package colour

// Scheme is the final, immutable colour scheme handed to config
// writers. Colors follows the ANSI 16-slot convention: 0 background,
// 1-6 red/yellow/green/cyan/blue/magenta, 7 foreground, 8 bright
// black, 9-14 bright variants of 1-6, 15 bright white.
type Scheme struct {
	Background RGB
	Foreground RGB
	Accent     RGB
	Secondary  RGB
	Surface    RGB
	Error      RGB
	Colors     [16]RGB
	Mode       Mode
	StyleName  string
}

// HexColors returns the 16 slot colours as lowercase hex strings.
func (s *Scheme) HexColors() []string {
	out := make([]string, len(s.Colors))
	for i, c := range s.Colors {
		out[i] = c.Hex()
	}
	return out
}

// Options carries every tunable the pipeline reads. The zero value is
// not useful; start from DefaultOptions.
type Options struct {
	// Style names a registered palette style; unknown names resolve to
	// the default style.
	Style string

	Mode Mode

	DiversityThreshold float64
	ColorCount         int

	// BackgroundStyle is one of the Background* constants.
	BackgroundStyle string

	// BackgroundHex is the user-supplied colour for BackgroundCustom.
	BackgroundHex string
}

// DefaultOptions returns the pipeline defaults: the default style, dark
// mode, 16 colours at diversity threshold 50, extracted background.
func DefaultOptions() Options {
	return Options{
		Style:              DefaultStyleName,
		Mode:               ModeDark,
		DiversityThreshold: 50.0,
		ColorCount:         16,
		BackgroundStyle:    BackgroundExtracted,
	}
}

// Generate runs the full pipeline over the pixel buffer and returns the
// scheme. It is a pure function of its inputs: identical pixels and
// options always produce an identical scheme, and no stage mutates
// shared state.
func Generate(pixels []RGB, opts Options) *Scheme {
	style := LookupStyle(opts.Style)

	extractor := NewExtractor(opts.DiversityThreshold, opts.ColorCount)
	palette := extractor.Extract(pixels)

	palette = Harmonize(palette, style.Harmony)
	palette = ApplyHueBoosts(palette, style.HueBoosts)
	palette = ShiftTowardTargets(palette, style.TargetHues)
	palette = EnsureCoverage(palette, opts.Mode)
	palette = AdjustWithStyle(palette, style, opts.Mode)

	bg := Background(palette, style, opts.Mode, opts.BackgroundStyle, opts.BackgroundHex)
	fg := Foreground(bg, opts.Mode)
	if len(palette) == 0 {
		fg = defaultForeground(opts.Mode)
	}

	accent, secondary, surface := Accents(palette, bg, opts.Mode)

	return &Scheme{
		Background: bg,
		Foreground: fg,
		Accent:     accent,
		Secondary:  secondary,
		Surface:    surface,
		Error:      defaultError(opts.Mode),
		Colors:     MapSlots(palette, bg, fg, style, opts.Mode),
		Mode:       opts.Mode,
		StyleName:  style.Name,
	}
}

// ResolveMode maps a configured mode string to a Mode, sampling the
// pixel buffer for "auto": imagery with a bright mean leans light,
// everything else dark.
func ResolveMode(pixels []RGB, mode string) Mode {
	switch mode {
	case "light":
		return ModeLight
	case "dark":
		return ModeDark
	default:
		if len(pixels) == 0 {
			return ModeDark
		}
		var sum float64
		for _, p := range pixels {
			sum += p.Brightness()
		}
		if sum/float64(len(pixels)) >= 128.0 {
			return ModeLight
		}
		return ModeDark
	}
}
