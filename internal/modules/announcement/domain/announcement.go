package domain

import "time"

// Announcement represents a company announcement listed on MeroLagani
type Announcement struct {
	Date time.Time `json:"date"`
	Text string    `json:"text"`
	URL  string    `json:"url,omitempty"`
}
