package dates

import (
	"time"

	"github.com/samber/oops"
)

// DefaultTimezone is the market timezone used for "today" and greetings.
const DefaultTimezone = "Asia/Kathmandu"

// nepalTime is UTC+05:45. Nepal has no daylight saving time, so the fixed
// zone is exact when tzdata is unavailable.
var nepalTime = time.FixedZone("NPT", 5*60*60+45*60)

// LoadLocation resolves a named timezone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		if name == DefaultTimezone {
			return nepalTime, nil
		}
		return nil, oops.With("timezone", name, "context", "failed to load timezone").Wrap(err)
	}
	return loc, nil
}

// Floor strips the time of day, keeping t's location.
func Floor(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether t falls on the calendar day of ref, evaluated in
// ref's location. Zero times never match.
func SameDay(t, ref time.Time) bool {
	if t.IsZero() || ref.IsZero() {
		return false
	}
	ty, tm, td := t.In(ref.Location()).Date()
	ry, rm, rd := ref.Date()
	return ty == ry && tm == rm && td == rd
}

// Parse parses value with layout in loc and returns the zero time when the
// value does not match.
func Parse(layout, value string, loc *time.Location) time.Time {
	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return time.Time{}
	}
	return t
}

// NextDays returns the n calendar days following now, each at midnight.
func NextDays(now time.Time, n int) []time.Time {
	today := Floor(now)
	days := make([]time.Time, 0, n)
	for i := 1; i <= n; i++ {
		days = append(days, today.AddDate(0, 0, i))
	}
	return days
}
