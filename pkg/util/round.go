package util

import "math"

// Round rounds v half-away-from-zero to the given number of decimal
// places. All pipeline components round through this single helper so
// layers cannot drift apart.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// Round2 rounds to 2 decimals (final scores and confidences).
func Round2(v float64) float64 { return Round(v, 2) }

// Round3 rounds to 3 decimals (ratios).
func Round3(v float64) float64 { return Round(v, 3) }

// Round4 rounds to 4 decimals (monetary figures).
func Round4(v float64) float64 { return Round(v, 4) }

// Clamp01 clamps v into [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Score normalizes a score for output: clamp to [0,1], then 2 decimals.
func Score(v float64) float64 { return Round2(Clamp01(v)) }
