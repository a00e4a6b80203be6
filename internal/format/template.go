package format

import (
	"html/template"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// FuncMap exposes the formatters to html/template. Numeric arguments may be
// of any integer or float kind, including named types, or a numeric string;
// anything else renders as NaN.
//
//	{{ bytes .Size }}  {{ bytesPerSec .Rate }}  {{ duration .Elapsed }}
//	{{ degrees .Temp }}  {{ fullDateTime .Stamp }}
func FuncMap(c *Clock) template.FuncMap {
	return template.FuncMap{
		"bytes":        func(v any) string { return Bytes(toFloat(v)) },
		"bytesPerSec":  func(v any) string { return BytesPerSecond(toFloat(v)) },
		"duration":     func(v any) string { return Duration(toFloat(v)) },
		"degrees":      func(v any) string { return Degrees(toFloat(v)) },
		"timeOfDay":    func(v any) string { return c.TimeOfDay(toFloat(v)) },
		"date":         func(v any) string { return c.Date(toFloat(v)) },
		"fullDateTime": func(v any) string { return c.FullDateTime(toFloat(v)) },
	}
}

// toFloat coerces a template argument to a number. Named numeric types
// count by their underlying kind and strings are parsed; anything else is NaN.
func toFloat(v any) float64 {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
