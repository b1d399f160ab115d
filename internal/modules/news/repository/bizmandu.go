package repository

import (
	"context"
	"log/slog"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/reshetovitsme/nepse-digest/internal/modules/news/domain"
	"github.com/reshetovitsme/nepse-digest/internal/shared/dates"
	"github.com/reshetovitsme/nepse-digest/internal/shared/scrape"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

const (
	BizmanduSource     = "bizmandu"
	BizmanduListingURL = "https://bizmandu.com/content/category/market.html"
)

// Bizmandu scrapes the Bizmandu market category page. Article slugs start
// with the publish date as YYYYMMDD.
type Bizmandu struct {
	fetcher    scrape.DocumentFetcher
	listingURL string
}

// NewBizmandu creates a new Bizmandu news repository
func NewBizmandu(fetcher scrape.DocumentFetcher, listingURL string) *Bizmandu {
	if listingURL == "" {
		listingURL = BizmanduListingURL
	}
	return &Bizmandu{fetcher: fetcher, listingURL: listingURL}
}

func (r *Bizmandu) Name() string {
	return BizmanduSource
}

func (r *Bizmandu) Fetch(ctx context.Context, now time.Time) ([]domain.NewsItem, error) {
	doc, err := r.fetcher.Document(ctx, r.listingURL)
	if err != nil {
		return nil, oops.With("source", BizmanduSource).Wrap(err)
	}

	var items []domain.NewsItem
	doc.Find("div.news-title.md-title").Each(func(i int, block *goquery.Selection) {
		anchor := block.Find("h1.title-lg a").First()
		href, ok := anchor.Attr("href")
		title := scrape.Text(anchor)
		if !ok || title == "" {
			slog.Warn("Skipping news block", "source", BizmanduSource, "block", i, "reason", "missing headline link")
			return
		}

		link := scrape.ResolveURL(r.listingURL, href)
		items = append(items, domain.NewsItem{
			PublishedDate: DateFromSlug(link, now.Location()),
			Title:         title,
			URL:           link,
			Source:        BizmanduSource,
		})
	})

	slog.Info("Scraped news page", "source", BizmanduSource, "items", len(items))

	return lo.Filter(items, func(item domain.NewsItem, _ int) bool {
		return dates.SameDay(item.PublishedDate, now)
	}), nil
}

// DateFromSlug reads the YYYYMMDD prefix of the last path segment of link,
// e.g. /content/20261014093000.html. It returns the zero time when absent.
func DateFromSlug(link string, loc *time.Location) time.Time {
	p := link
	if u, err := url.Parse(link); err == nil {
		p = u.Path
	}
	slug := strings.TrimSuffix(path.Base(p), ".html")
	if len(slug) < 8 {
		return time.Time{}
	}
	return dates.Parse("20060102", slug[:8], loc)
}
