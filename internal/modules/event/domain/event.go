package domain

import "time"

// EventListing represents an upcoming corporate event (AGM, book closure, ...)
type EventListing struct {
	Date  time.Time `json:"date"`
	Title string    `json:"title"`
	URL   string    `json:"url"`
}
