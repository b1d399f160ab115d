package service

import (
	"strings"
	"testing"
	"time"

	announcementDomain "github.com/reshetovitsme/nepse-digest/internal/modules/announcement/domain"
	eventDomain "github.com/reshetovitsme/nepse-digest/internal/modules/event/domain"
	"github.com/reshetovitsme/nepse-digest/internal/modules/message/domain"
	newsDomain "github.com/reshetovitsme/nepse-digest/internal/modules/news/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, time.October, d, 0, 0, 0, 0, time.UTC)
}

func TestNewsEmptyIsAbsent(t *testing.T) {
	body, ok := NewFormatter().News(nil, domain.NewsTitle)

	assert.False(t, ok)
	assert.Empty(t, body)
}

func TestNewsWithURLWrapsAnchor(t *testing.T) {
	body, ok := NewFormatter().News([]newsDomain.NewsItem{
		{PublishedDate: day(14), Title: "NEPSE gains 20 points", URL: "https://www.sharesansar.com/newsdetail/1"},
	}, domain.NewsTitle)

	require.True(t, ok)
	assert.Equal(t,
		"<b>🗞️ Market News</b>\n\n📰 <a href=\"https://www.sharesansar.com/newsdetail/1\">NEPSE gains 20 points</a>",
		body)
}

func TestNewsWithoutURLHasNoAnchor(t *testing.T) {
	body, ok := NewFormatter().News([]newsDomain.NewsItem{
		{PublishedDate: day(14), Title: "Turnover crosses Rs 5 billion"},
	}, domain.NewsTitle)

	require.True(t, ok)
	assert.Contains(t, body, "📰 Turnover crosses Rs 5 billion")
	assert.NotContains(t, body, "<a")
}

func TestNewsSortedNewestFirstKeepingFetchOrder(t *testing.T) {
	body, ok := NewFormatter().News([]newsDomain.NewsItem{
		{PublishedDate: day(13), Title: "older"},
		{PublishedDate: day(14), Title: "first today"},
		{PublishedDate: day(14), Title: "second today"},
	}, "News")

	require.True(t, ok)
	assert.Equal(t, "<b>News</b>\n\n📰 first today\n\n📰 second today\n\n📰 older", body)
}

func TestNewsEscapesScrapedText(t *testing.T) {
	body, ok := NewFormatter().News([]newsDomain.NewsItem{
		{PublishedDate: day(14), Title: "Profit & Loss <b>up</b>", URL: "https://example.com/a?x=1&y=2"},
	}, domain.NewsTitle)

	require.True(t, ok)
	assert.Contains(t, body, `<a href="https://example.com/a?x=1&amp;y=2">Profit &amp; Loss up</a>`)
}

func TestAnnouncements(t *testing.T) {
	f := NewFormatter()

	_, ok := f.Announcements(nil)
	assert.False(t, ok)

	body, ok := f.Announcements([]announcementDomain.Announcement{
		{Date: day(14), Text: "NABIL proposes 12% bonus", URL: "https://merolagani.com/AnnouncementDetail.aspx?id=101"},
		{Date: day(14), Text: "AGM notice"},
	})
	require.True(t, ok)
	assert.Equal(t,
		"<b>📢 Announcements Today</b>\n\n"+
			"🏷️ <b>2026-10-14</b>: <a href=\"https://merolagani.com/AnnouncementDetail.aspx?id=101\">NABIL proposes 12% bonus</a>\n\n"+
			"🏷️ <b>2026-10-14</b>: AGM notice",
		body)
}

func TestEvents(t *testing.T) {
	f := NewFormatter()

	_, ok := f.Events(nil)
	assert.False(t, ok)

	body, ok := f.Events([]eventDomain.EventListing{
		{Date: day(15), Title: "Nabil Bank AGM", URL: "https://www.sharesansar.com/newsdetail/nabil-agm"},
		{Date: day(16), Title: "Upper IPO"},
	})
	require.True(t, ok)
	assert.Equal(t,
		"<b>📅 Upcoming Events</b>\n\n"+
			"🔔 <b>2026-10-15</b>: <a href=\"https://www.sharesansar.com/newsdetail/nabil-agm\">Nabil Bank AGM</a>\n"+
			"🔔 <b>2026-10-16</b>: Upper IPO",
		body)
}

func TestBlocksSubstituteFallbacks(t *testing.T) {
	blocks := NewFormatter().Blocks(nil, nil, []eventDomain.EventListing{{Date: day(15), Title: "AGM"}})

	require.Len(t, blocks, 3)
	assert.Equal(t, domain.SectionNews, blocks[0].Section)
	assert.True(t, blocks[0].Empty)
	assert.Equal(t, "<b>🗞️ Market News</b>\n\nThere’s no major news today.", blocks[0].Text())
	assert.Equal(t, "<b>📢 Announcements Today</b>\n\nNo new announcements today.", blocks[1].Text())
	assert.False(t, blocks[2].Empty)
	assert.Equal(t, 1, blocks[2].Items)
	assert.True(t, strings.HasPrefix(blocks[2].Text(), "<b>📅 Upcoming Events</b>"))
}
