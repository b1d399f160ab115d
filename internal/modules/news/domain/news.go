package domain

import "time"

// NewsItem represents one market news headline
type NewsItem struct {
	PublishedDate time.Time `json:"published_date"`
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	Source        string    `json:"source"`
}
