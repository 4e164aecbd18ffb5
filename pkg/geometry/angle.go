package geometry

import "math"

// Degrees converts radians to degrees
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// NormalizeDegrees maps an angle in degrees into [0, 360)
func NormalizeDegrees(deg float64) float64 {
	n := math.Mod(math.Mod(deg, 360)+360, 360)
	if n >= 360 {
		// math.Mod of a tiny negative value can round up to 360
		return 0
	}
	return n
}

// MinorArc resolves the arc between two bearings (degrees) that spans at most
// 180 degrees. The arc runs counter-clockwise from start to end; end is
// start+sweep and may therefore exceed 360.
func MinorArc(from, to float64) (start, end, sweep float64) {
	start = NormalizeDegrees(from)
	end = NormalizeDegrees(to)

	sweep = NormalizeDegrees(end - start)
	if sweep > 180 {
		start, end = end, start
		sweep = NormalizeDegrees(end - start)
	}

	return start, start + sweep, sweep
}
