package colour

import "math"

// normaliseHue wraps a hue in degrees into [0,360).
func normaliseHue(h float64) float64 {
	h = math.Mod(h, 360.0)
	if h < 0 {
		h += 360.0
	}
	return h
}

// hueDiff returns the signed shortest rotation from hue a to hue b,
// normalised into (-180,180]. hueDiff(350, 10) is 20, not -340.
func hueDiff(a, b float64) float64 {
	d := math.Mod(b-a, 360.0)
	if d > 180.0 {
		d -= 360.0
	} else if d <= -180.0 {
		d += 360.0
	}
	return d
}

// hueDistance returns the absolute angular distance between two hues,
// in [0,180].
func hueDistance(a, b float64) float64 {
	return math.Abs(hueDiff(a, b))
}

// closestHue scans targets for the hue with minimal absolute distance
// to h and returns that target together with the signed rotation
// towards it. An empty target list returns h itself with zero rotation.
func closestHue(h float64, targets []float64) (target, diff float64) {
	if len(targets) == 0 {
		return h, 0
	}
	target = targets[0]
	diff = hueDiff(h, targets[0])
	for _, t := range targets[1:] {
		if d := hueDiff(h, t); math.Abs(d) < math.Abs(diff) {
			target = t
			diff = d
		}
	}
	return target, diff
}

// circularMeanHue computes the weighted circular mean of the given hues
// via the sine/cosine vector sum, which is correct under wraparound.
// When the accumulated weight is negligible the mean defaults to 0.
func circularMeanHue(hues, weights []float64) float64 {
	var sinSum, cosSum, total float64
	for i, h := range hues {
		w := 1.0
		if i < len(weights) {
			w = weights[i]
		}
		rad := h * math.Pi / 180.0
		sinSum += w * math.Sin(rad)
		cosSum += w * math.Cos(rad)
		total += w
	}
	if total < 1e-9 {
		return 0
	}
	return normaliseHue(math.Atan2(sinSum, cosSum) * 180.0 / math.Pi)
}
