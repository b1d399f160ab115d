package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/reshetovitsme/nepse-digest/internal/modules/announcement/domain"
	"github.com/reshetovitsme/nepse-digest/internal/shared/dates"
	"github.com/reshetovitsme/nepse-digest/internal/shared/scrape"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

const (
	MeroLaganiSource  = "merolagani"
	MeroLaganiBaseURL = "https://merolagani.com"

	meroLaganiListPath   = "/AnnouncementList.aspx"
	meroLaganiDateLayout = "Jan 2, 2006"
)

// MeroLagani scrapes the MeroLagani announcement list
type MeroLagani struct {
	fetcher scrape.DocumentFetcher
	baseURL string
}

// NewMeroLagani creates a new MeroLagani announcement repository
func NewMeroLagani(fetcher scrape.DocumentFetcher, baseURL string) *MeroLagani {
	if baseURL == "" {
		baseURL = MeroLaganiBaseURL
	}
	return &MeroLagani{fetcher: fetcher, baseURL: baseURL}
}

func (r *MeroLagani) Fetch(ctx context.Context, now time.Time) ([]domain.Announcement, error) {
	listURL := r.baseURL + meroLaganiListPath
	doc, err := r.fetcher.Document(ctx, listURL)
	if err != nil {
		return nil, oops.With("source", MeroLaganiSource).Wrap(err)
	}

	var announcements []domain.Announcement
	doc.Find("div.media").Each(func(i int, row *goquery.Selection) {
		announcement, err := r.parseRow(row, now.Location())
		if err != nil {
			slog.Warn("Skipping announcement", "source", MeroLaganiSource, "row", i, "error", err)
			return
		}
		announcements = append(announcements, announcement)
	})

	slog.Info("Scraped announcements", "source", MeroLaganiSource, "items", len(announcements))

	return lo.Filter(announcements, func(a domain.Announcement, _ int) bool {
		return dates.SameDay(a.Date, now)
	}), nil
}

func (r *MeroLagani) parseRow(row *goquery.Selection, loc *time.Location) (domain.Announcement, error) {
	body := row.Find("div.media-body").First()
	textLink := body.Find("a").First()
	text := scrape.Text(textLink)
	if text == "" {
		return domain.Announcement{}, oops.Errorf("announcement text not found")
	}

	// The icon link is preferred, the text link is the fallback
	href, ok := row.Find("div.pull-left a").First().Attr("href")
	if !ok {
		href, _ = textLink.Attr("href")
	}

	return domain.Announcement{
		Date: dates.Parse(meroLaganiDateLayout, scrape.Text(row.Find("small.text-muted").First()), loc),
		Text: text,
		URL:  scrape.ResolveURL(r.baseURL, href),
	}, nil
}
