// Package format provides human-readable display strings for sizes,
// durations, rates, angles and timestamps.
package format

import (
	"math"
	"strconv"
	"strings"
)

const (
	realBase       = 1024
	commercialBase = 1000
)

// sizePrefixes is indexed by scale level.
var sizePrefixes = []string{"", "kilo", "mega", "giga", "tera", "peta", "exa", "zetta", "yotta", "xenna"}

const unknownPrefix = "?-"

// ByteOptions controls how Bytes renders a size.
type ByteOptions struct {
	Precision  int  // decimal places to round to
	LongName   bool // "Megabytes" instead of "MB"
	Commercial bool // base 1000 instead of 1024
}

// DefaultByteOptions returns two decimals, short unit names and base 1024.
func DefaultByteOptions() ByteOptions {
	return ByteOptions{Precision: 2}
}

// ByteOption overrides one field of the default ByteOptions.
type ByteOption func(*ByteOptions)

// WithPrecision sets the number of decimal places.
func WithPrecision(n int) ByteOption {
	return func(o *ByteOptions) { o.Precision = n }
}

// WithLongName spells the unit out ("Kilobytes").
func WithLongName() ByteOption {
	return func(o *ByteOptions) { o.LongName = true }
}

// WithCommercialBase scales by 1000 instead of 1024.
func WithCommercialBase() ByteOption {
	return func(o *ByteOptions) { o.Commercial = true }
}

// Bytes formats a byte count as a human-readable string (e.g. "1.5 MB").
func Bytes(size float64, opts ...ByteOption) string {
	o := DefaultByteOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return BytesWith(size, o)
}

// BytesWith is Bytes with an explicit option set.
//
// The size is divided while it is strictly greater than the base, so an
// exact multiple such as 1024 stays at the lower unit ("1024 B").
func BytesWith(size float64, o ByteOptions) string {
	base := float64(realBase)
	if o.Commercial {
		base = commercialBase
	}

	scaled, level := scale(size, base)
	return formatNumber(round(scaled, o.Precision)) + " " + sizeName(level, o.LongName)
}

// BytesPerSecond formats a transfer rate with default byte options
// (e.g. "1.5 MB/s").
func BytesPerSecond(bps float64) string {
	return Bytes(bps) + "/s"
}

func sizePrefix(level int) string {
	if level < 0 || level >= len(sizePrefixes) {
		return unknownPrefix
	}
	return sizePrefixes[level]
}

func sizeName(level int, long bool) string {
	prefix := sizePrefix(level)
	var name string
	if long {
		name = prefix + "bytes"
	} else {
		name = firstChar(prefix) + "B"
	}
	return capitalize(name)
}

// scale divides v by base until it is no longer strictly greater than base
// and reports how many divisions were made.
func scale(v, base float64) (float64, int) {
	level := 0
	for v > base && !math.IsInf(v, 0) {
		v /= base
		level++
	}
	return v, level
}

// round rounds half up to the given number of decimal places.
func round(v float64, precision int) float64 {
	num := math.Pow10(precision)
	return math.Floor(v*num+0.5) / num
}

// formatNumber renders v in its shortest form ("1.5", "1024"). Like a
// browser, it switches to exponent notation ("1e+21", "1.5e-7") at or
// above 1e21 and below 1e-6.
func formatNumber(v float64) string {
	abs := math.Abs(v)
	if abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		s := strconv.FormatFloat(v, 'g', -1, 64)
		s = strings.Replace(s, "e+0", "e+", 1)
		return strings.Replace(s, "e-0", "e-", 1)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func firstChar(s string) string {
	if s == "" {
		return ""
	}
	return s[:1]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
