package repository

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/reshetovitsme/nepse-digest/internal/modules/event/domain"
	"github.com/reshetovitsme/nepse-digest/internal/shared/dates"
	"github.com/reshetovitsme/nepse-digest/internal/shared/scrape"
	"github.com/samber/oops"
)

const (
	ShareSansarSource    = "sharesansar-events"
	ShareSansarEventsURL = "https://www.sharesansar.com/events"
)

// ShareSansarEvents scrapes the per-day ShareSansar event pages for the
// days following now. Every listing is dated with the day it was listed under.
type ShareSansarEvents struct {
	fetcher scrape.DocumentFetcher
	baseURL string
	days    int
}

// NewShareSansarEvents creates a new events repository looking days ahead
func NewShareSansarEvents(fetcher scrape.DocumentFetcher, baseURL string, days int) *ShareSansarEvents {
	if baseURL == "" {
		baseURL = ShareSansarEventsURL
	}
	if days <= 0 {
		days = 2
	}
	return &ShareSansarEvents{fetcher: fetcher, baseURL: strings.TrimRight(baseURL, "/"), days: days}
}

func (r *ShareSansarEvents) Fetch(ctx context.Context, now time.Time) ([]domain.EventListing, error) {
	var events []domain.EventListing
	for _, day := range dates.NextDays(now, r.days) {
		dayURL := r.baseURL + "/" + day.Format(time.DateOnly)
		doc, err := r.fetcher.Document(ctx, dayURL)
		if err != nil {
			return nil, oops.With("source", ShareSansarSource, "date", day.Format(time.DateOnly)).Wrap(err)
		}

		found := 0
		doc.Find("div.featured-news-list.margin-bottom-15").Each(func(_ int, row *goquery.Selection) {
			anchor := row.Find("a").First()
			if anchor.Length() == 0 {
				return
			}

			title, ok := anchor.Attr("title")
			title = strings.TrimSpace(title)
			if !ok || title == "" {
				title = scrape.Text(anchor)
			}
			if title == "" {
				return
			}
			href, _ := anchor.Attr("href")

			events = append(events, domain.EventListing{
				Date:  day,
				Title: title,
				URL:   scrape.ResolveURL(dayURL, href),
			})
			found++
		})

		slog.Info("Scraped events", "source", ShareSansarSource, "date", day.Format(time.DateOnly), "items", found)
	}

	return events, nil
}
