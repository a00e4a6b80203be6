package format

import (
	"sync"
	"time"

	"github.com/lucciano/zentyal/internal/locale"
)

// Clock renders epoch seconds through a locale.Formatter.
type Clock struct {
	f locale.Formatter
}

// NewClock returns a Clock using f.
func NewClock(f locale.Formatter) *Clock {
	return &Clock{f: f}
}

// Instant converts seconds since the Unix epoch to a time, truncated to
// millisecond resolution.
func Instant(epochSeconds float64) time.Time {
	return time.UnixMilli(int64(epochSeconds * 1000))
}

// TimeOfDay renders only the time of day of epochSeconds.
func (c *Clock) TimeOfDay(epochSeconds float64) string {
	return c.f.TimeOfDay(Instant(epochSeconds))
}

// Date renders only the calendar date of epochSeconds.
func (c *Clock) Date(epochSeconds float64) string {
	return c.f.Date(Instant(epochSeconds))
}

// FullDateTime renders the date and time of epochSeconds.
func (c *Clock) FullDateTime(epochSeconds float64) string {
	return c.f.DateTime(Instant(epochSeconds))
}

var hostClock = sync.OnceValue(func() *Clock {
	return NewClock(locale.Host())
})

// TimeOfDay renders epochSeconds with the host locale and timezone.
func TimeOfDay(epochSeconds float64) string {
	return hostClock().TimeOfDay(epochSeconds)
}

// Date renders epochSeconds with the host locale and timezone.
func Date(epochSeconds float64) string {
	return hostClock().Date(epochSeconds)
}

// FullDateTime renders epochSeconds with the host locale and timezone.
func FullDateTime(epochSeconds float64) string {
	return hostClock().FullDateTime(epochSeconds)
}
