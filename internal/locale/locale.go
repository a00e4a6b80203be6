// Package locale renders instants the way a host locale would show them in
// a browser (toLocaleTimeString and friends), without depending on any
// C library locale support.
package locale

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Formatter renders one instant at three granularities.
type Formatter interface {
	TimeOfDay(t time.Time) string
	Date(t time.Time) string
	DateTime(t time.Time) string
}

// Layouts is a Formatter built from Go reference layouts. DateTime is
// always Date, Separator and TimeOfDay concatenated, so the three views
// agree on the instant.
type Layouts struct {
	TimeLayout string
	DateLayout string
	Separator  string

	// Location is the zone instants are shown in. Nil keeps the zone of
	// the time value passed in.
	Location *time.Location
}

func (l Layouts) in(t time.Time) time.Time {
	if l.Location != nil {
		return t.In(l.Location)
	}
	return t
}

// TimeOfDay implements Formatter.
func (l Layouts) TimeOfDay(t time.Time) string {
	return l.in(t).Format(l.TimeLayout)
}

// Date implements Formatter.
func (l Layouts) Date(t time.Time) string {
	return l.in(t).Format(l.DateLayout)
}

// DateTime implements Formatter.
func (l Layouts) DateTime(t time.Time) string {
	return l.Date(t) + l.Separator + l.TimeOfDay(t)
}

// ISO is used when no locale matches.
var ISO = Layouts{TimeLayout: "15:04:05", DateLayout: "2006-01-02", Separator: " "}

type entry struct {
	tag     language.Tag
	layouts Layouts
}

// The first entry is the fallback for the matcher.
var table = []entry{
	{language.Und, ISO},
	{language.AmericanEnglish, Layouts{TimeLayout: "3:04:05 PM", DateLayout: "1/2/2006", Separator: ", "}},
	{language.BritishEnglish, Layouts{TimeLayout: "15:04:05", DateLayout: "02/01/2006", Separator: ", "}},
	{language.Spanish, Layouts{TimeLayout: "15:04:05", DateLayout: "2/1/2006", Separator: ", "}},
	{language.Catalan, Layouts{TimeLayout: "15:04:05", DateLayout: "2/1/2006", Separator: ", "}},
	{language.German, Layouts{TimeLayout: "15:04:05", DateLayout: "2.1.2006", Separator: ", "}},
	{language.French, Layouts{TimeLayout: "15:04:05", DateLayout: "02/01/2006", Separator: " "}},
	{language.BrazilianPortuguese, Layouts{TimeLayout: "15:04:05", DateLayout: "02/01/2006", Separator: ", "}},
	{language.Japanese, Layouts{TimeLayout: "15:04:05", DateLayout: "2006/1/2", Separator: " "}},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(table))
	for i, e := range table {
		tags[i] = e.tag
	}
	return language.NewMatcher(tags)
}()

// Lookup returns the layouts for a locale name. Both BCP 47 tags ("en-GB")
// and POSIX names ("de_DE.UTF-8") are accepted. "C", "POSIX", empty and
// unrecognised names give ISO. The returned Layouts has no Location.
func Lookup(name string) Layouts {
	tag, ok := parse(name)
	if !ok {
		return ISO
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		slog.Debug("no layouts for locale, using ISO", "locale", name)
		return ISO
	}
	return table[idx].layouts
}

// parse turns a BCP 47 or POSIX locale name into a language tag.
func parse(name string) (language.Tag, bool) {
	name = strings.TrimSpace(name)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "", "C", "POSIX":
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		slog.Debug("unparseable locale", "locale", name, "error", err)
		return language.Und, false
	}
	return tag, true
}

// LoadLocation resolves a timezone name. Empty and "Local" give the host
// zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", name, err)
	}
	return loc, nil
}

// New returns the layouts for locale name shown in the given timezone.
// An empty name uses the host locale.
func New(name, timezone string) (Layouts, error) {
	if name == "" {
		name = HostLocale()
	}
	loc, err := LoadLocation(timezone)
	if err != nil {
		return Layouts{}, err
	}
	l := Lookup(name)
	l.Location = loc
	return l, nil
}

// Host returns the formatter for the host locale and local timezone.
func Host() Layouts {
	l := Lookup(HostLocale())
	l.Location = time.Local
	return l
}

// HostLocale reads the time locale from the environment, in the order
// POSIX gives them precedence.
func HostLocale() string {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}
