package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/reshetovitsme/nepse-digest/internal/modules/news/domain"
	"github.com/reshetovitsme/nepse-digest/internal/shared/dates"
	"github.com/reshetovitsme/nepse-digest/internal/shared/errors"
	"github.com/reshetovitsme/nepse-digest/internal/shared/scrape"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

const (
	ShareSansarSource     = "sharesansar"
	ShareSansarListingURL = "https://www.sharesansar.com/category/latest"

	shareSansarDateLayout = "Monday, January 2, 2006"
	nextPageText          = "Next »"
)

// ShareSansarOptions controls pagination of the latest-news listing.
type ShareSansarOptions struct {
	ListingURL  string
	Pages       int
	PageTimeout time.Duration
	PageDelay   time.Duration
}

// ShareSansar scrapes the paginated ShareSansar latest-news listing.
// Pagination is best effort: any page error ends it and keeps what was collected.
type ShareSansar struct {
	renderer scrape.PageRenderer
	opts     ShareSansarOptions
}

// NewShareSansar creates a new ShareSansar news repository
func NewShareSansar(renderer scrape.PageRenderer, opts ShareSansarOptions) *ShareSansar {
	if opts.ListingURL == "" {
		opts.ListingURL = ShareSansarListingURL
	}
	if opts.Pages <= 0 {
		opts.Pages = 4
	}
	if opts.PageTimeout <= 0 {
		opts.PageTimeout = 10 * time.Second
	}
	return &ShareSansar{renderer: renderer, opts: opts}
}

func (r *ShareSansar) Name() string {
	return ShareSansarSource
}

func (r *ShareSansar) Fetch(ctx context.Context, now time.Time) ([]domain.NewsItem, error) {
	var collected []domain.NewsItem
	pageURL := r.opts.ListingURL

	for page := 1; page <= r.opts.Pages; page++ {
		items, next, err := r.scrapePage(ctx, pageURL, now.Location())
		if err != nil {
			slog.Warn("Stopping news pagination", "source", ShareSansarSource, "page", page, "error", err)
			break
		}
		collected = append(collected, items...)
		slog.Info("Scraped news page", "source", ShareSansarSource, "page", page, "items", len(items))

		if page == r.opts.Pages {
			break
		}
		if next == "" {
			slog.Info("No more news pages", "source", ShareSansarSource, "page", page)
			break
		}
		if err := scrape.Wait(ctx, r.opts.PageDelay); err != nil {
			slog.Warn("Stopping news pagination", "source", ShareSansarSource, "page", page, "error", err)
			break
		}
		pageURL = next
	}

	return lo.Filter(collected, func(item domain.NewsItem, _ int) bool {
		return dates.SameDay(item.PublishedDate, now)
	}), nil
}

// scrapePage renders one listing page and returns its rows and the next page URL.
func (r *ShareSansar) scrapePage(ctx context.Context, pageURL string, loc *time.Location) ([]domain.NewsItem, string, error) {
	pageCtx, cancel := context.WithTimeout(ctx, r.opts.PageTimeout)
	defer cancel()

	html, err := r.renderer.Render(pageCtx, pageURL)
	if err != nil {
		return nil, "", oops.With("url", pageURL, "context", "failed to render page").Wrap(err)
	}

	doc, err := scrape.ParseDocument(html)
	if err != nil {
		return nil, "", oops.With("url", pageURL).Wrap(err)
	}

	container := doc.Find("div.newslist").First()
	if container.Length() == 0 {
		return nil, "", oops.With("url", pageURL).Wrap(errors.ErrListingNotFound)
	}

	var items []domain.NewsItem
	container.Find("div.featured-news-list.margin-bottom-15").Each(func(i int, row *goquery.Selection) {
		anchor := row.Find("a[title]").First()
		title := scrape.Text(anchor.Find("h4.featured-news-title").First())
		if title == "" {
			slog.Debug("Skipping news row without title", "source", ShareSansarSource, "url", pageURL, "row", i)
			return
		}
		href, _ := anchor.Attr("href")

		items = append(items, domain.NewsItem{
			PublishedDate: dates.Parse(shareSansarDateLayout, scrape.Text(row.Find("span.text-org").First()), loc),
			Title:         title,
			URL:           scrape.ResolveURL(pageURL, href),
			Source:        ShareSansarSource,
		})
	})

	next := doc.Find("a").FilterFunction(func(_ int, a *goquery.Selection) bool {
		return scrape.Text(a) == nextPageText
	}).First()
	nextHref, _ := next.Attr("href")

	return items, scrape.ResolveURL(pageURL, nextHref), nil
}
