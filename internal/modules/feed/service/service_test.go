package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	announcementDomain "github.com/reshetovitsme/nepse-digest/internal/modules/announcement/domain"
	eventDomain "github.com/reshetovitsme/nepse-digest/internal/modules/event/domain"
	"github.com/reshetovitsme/nepse-digest/internal/modules/feed/domain"
	newsDomain "github.com/reshetovitsme/nepse-digest/internal/modules/news/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot() domain.Snapshot {
	today := time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)
	return domain.Snapshot{
		Generated: today.Add(9 * time.Hour),
		News: []newsDomain.NewsItem{
			{PublishedDate: today, Title: "NEPSE gains 20 points", URL: "https://www.sharesansar.com/newsdetail/1", Source: "sharesansar"},
		},
		Announcements: []announcementDomain.Announcement{
			{Date: today, Text: "AGM notice"},
		},
		Events: []eventDomain.EventListing{
			{Date: today.AddDate(0, 0, 1), Title: "Nabil Bank AGM", URL: "https://www.sharesansar.com/newsdetail/nabil-agm"},
		},
	}
}

func TestGenerateFeed(t *testing.T) {
	feed := New().GenerateFeed(snapshot())

	require.Len(t, feed.Items, 3)
	assert.Equal(t, "https://www.sharesansar.com/newsdetail/1", feed.Items[0].Id)
	assert.Equal(t, "announcement-20261014-0", feed.Items[1].Id)
	assert.Equal(t, "2026-10-15: Nabil Bank AGM", feed.Items[2].Title)
}

func TestWriteRSSRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "digest.xml")

	require.NoError(t, New().WriteRSS(path, snapshot()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	parsed, err := gofeed.NewParser().ParseString(string(data))
	require.NoError(t, err)

	assert.Equal(t, "NEPSE Market Digest", parsed.Title)
	require.Len(t, parsed.Items, 3)
	assert.Equal(t, "NEPSE gains 20 points", parsed.Items[0].Title)
	assert.Equal(t, "https://www.sharesansar.com/newsdetail/1", parsed.Items[0].Link)
	assert.Equal(t, "AGM notice", parsed.Items[1].Title)
	assert.Equal(t, "2026-10-15: Nabil Bank AGM", parsed.Items[2].Title)
}
