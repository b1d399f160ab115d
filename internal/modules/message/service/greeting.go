package service

import "time"

const (
	morningGreeting = "🌅 <b>Good Morning!</b> Gearing up for the market today? Here's what's happening:\n"
	lunchGreeting   = "🍛 <b>Lunch Time Update!</b> Take a quick break and catch up on the market buzz:\n"
	summaryGreeting = "🌇 <b>Market Summary</b>\nHere's what you need to know as the day winds down:\n"
	defaultGreeting = "🕘 <b>Market Update</b>\nHere's the latest:\n"
)

// Greeting picks the preamble for the hour of now in loc.
// Hour 11 has no bucket of its own and gets the default update greeting.
func Greeting(now time.Time, loc *time.Location) string {
	hour := now.In(loc).Hour()

	switch {
	case hour < 11:
		return morningGreeting
	case hour >= 12 && hour < 16:
		return lunchGreeting
	case hour >= 16:
		return summaryGreeting
	default:
		return defaultGreeting
	}
}

// WithGreeting prefixes text with greeting.
func WithGreeting(greeting, text string) string {
	return greeting + "\n" + text
}
