package service

import (
	"html"
	"slices"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	announcementDomain "github.com/reshetovitsme/nepse-digest/internal/modules/announcement/domain"
	eventDomain "github.com/reshetovitsme/nepse-digest/internal/modules/event/domain"
	"github.com/reshetovitsme/nepse-digest/internal/modules/message/domain"
	newsDomain "github.com/reshetovitsme/nepse-digest/internal/modules/news/domain"
)

// Formatter renders the digest sections as Telegram HTML
type Formatter struct {
	policy *bluemonday.Policy
}

// NewFormatter creates a new formatter. Scraped text is stripped of markup
// and escaped before it is embedded.
func NewFormatter() *Formatter {
	return &Formatter{
		policy: bluemonday.StrictPolicy(),
	}
}

// News renders news items newest first. It returns false for an empty collection.
func (f *Formatter) News(items []newsDomain.NewsItem, title string) (string, bool) {
	if len(items) == 0 {
		return "", false
	}

	// Stable, so rows from the same day keep their fetch order
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b newsDomain.NewsItem) int {
		return b.PublishedDate.Compare(a.PublishedDate)
	})

	var sb strings.Builder
	sb.WriteString("<b>" + title + "</b>\n\n")
	for _, item := range sorted {
		sb.WriteString("📰 " + f.link(item.Title, item.URL) + "\n\n")
	}
	return strings.TrimSpace(sb.String()), true
}

// Announcements renders announcements in fetch order, each prefixed with its date.
func (f *Formatter) Announcements(items []announcementDomain.Announcement) (string, bool) {
	if len(items) == 0 {
		return "", false
	}

	var sb strings.Builder
	sb.WriteString("<b>" + domain.AnnouncementsTitle + "</b>\n\n")
	for _, item := range items {
		sb.WriteString("🏷️ <b>" + formatDate(item.Date) + "</b>: " + f.link(item.Text, item.URL) + "\n\n")
	}
	return strings.TrimSpace(sb.String()), true
}

// Events renders upcoming events in fetch order, one line each.
func (f *Formatter) Events(items []eventDomain.EventListing) (string, bool) {
	if len(items) == 0 {
		return "", false
	}

	var sb strings.Builder
	sb.WriteString("<b>" + domain.EventsTitle + "</b>\n\n")
	for _, item := range items {
		sb.WriteString("🔔 <b>" + formatDate(item.Date) + "</b>: " + f.link(item.Title, item.URL) + "\n")
	}
	return strings.TrimSpace(sb.String()), true
}

// Blocks renders the three sections in digest order.
func (f *Formatter) Blocks(news []newsDomain.NewsItem, announcements []announcementDomain.Announcement, events []eventDomain.EventListing) []domain.Block {
	newsBody, hasNews := f.News(news, domain.NewsTitle)
	announcementBody, hasAnnouncements := f.Announcements(announcements)
	eventBody, hasEvents := f.Events(events)

	return []domain.Block{
		{Section: domain.SectionNews, Title: domain.NewsTitle, Body: newsBody, Items: len(news), Empty: !hasNews},
		{Section: domain.SectionAnnouncements, Title: domain.AnnouncementsTitle, Body: announcementBody, Items: len(announcements), Empty: !hasAnnouncements},
		{Section: domain.SectionEvents, Title: domain.EventsTitle, Body: eventBody, Items: len(events), Empty: !hasEvents},
	}
}

func (f *Formatter) link(text, href string) string {
	text = strings.TrimSpace(f.policy.Sanitize(text))
	if href == "" {
		return text
	}
	return `<a href="` + html.EscapeString(href) + `">` + text + `</a>`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format(time.DateOnly)
}
