package format

import "math"

// maxDurationLevel is the last scale level a duration is divided into.
// Anything longer than that stays in hours.
const maxDurationLevel = 3

// Duration formats a span given in milliseconds (e.g. "4.32 min").
//
// The first step divides by 1000 (ms to s), later steps by 60 (s to min,
// min to h). As with Bytes, a value equal to the base is not divided.
func Duration(ms float64) string {
	v := ms
	base := 1000.0
	level := 0
	for v > base && !math.IsInf(v, 0) {
		v /= base
		level++
		base = 60
		if level >= maxDurationLevel {
			break
		}
	}
	return formatNumber(round(v, 2)) + " " + durationSuffix(level)
}

func durationSuffix(level int) string {
	switch level {
	case 0:
		return "ms"
	case 1:
		return "s"
	case 2:
		return "min"
	default:
		return "h"
	}
}

// Degrees appends a degree sign to v (e.g. "45°").
func Degrees(v float64) string {
	return formatNumber(v) + "°"
}
