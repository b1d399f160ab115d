package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/reshetovitsme/nepse-digest/internal/shared/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	pages := map[string]string{}
	for path, name := range map[string]string{
		"/events/2026-10-15": "events_day1.html",
		"/events/2026-10-16": "events_day2.html",
	} {
		data, err := os.ReadFile(filepath.Join("testdata", name))
		require.NoError(t, err)
		pages[path] = string(data)
	}

	var requested []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = append(requested, r.URL.Path)
		html, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(html))
	}))
	t.Cleanup(srv.Close)
	return srv, &requested
}

func TestShareSansarEventsFetch(t *testing.T) {
	srv, requested := eventServer(t)
	repo := NewShareSansarEvents(scrape.NewClient(time.Second, ""), srv.URL+"/events", 2)
	now := time.Date(2026, time.October, 14, 20, 0, 0, 0, time.UTC)

	events, err := repo.Fetch(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, []string{"/events/2026-10-15", "/events/2026-10-16"}, *requested)
	require.Len(t, events, 3)

	// The title attribute wins over the visible text
	assert.Equal(t, "Nabil Bank AGM", events[0].Title)
	assert.Equal(t, "https://www.sharesansar.com/newsdetail/nabil-agm", events[0].URL)
	assert.Equal(t, "2026-10-15", events[0].Date.Format(time.DateOnly))

	assert.Equal(t, "NICA book closure", events[1].Title)
	assert.Equal(t, srv.URL+"/newsdetail/nica-book-closure", events[1].URL)

	assert.Equal(t, "Upper Hydropower IPO opens", events[2].Title)
	assert.Equal(t, "2026-10-16", events[2].Date.Format(time.DateOnly))
}

func TestShareSansarEventsFetchPropagatesErrors(t *testing.T) {
	srv, _ := eventServer(t)
	repo := NewShareSansarEvents(scrape.NewClient(time.Second, ""), srv.URL+"/events", 3)
	now := time.Date(2026, time.October, 14, 20, 0, 0, 0, time.UTC)

	// The third day has no page
	_, err := repo.Fetch(context.Background(), now)
	assert.Error(t, err)
}
