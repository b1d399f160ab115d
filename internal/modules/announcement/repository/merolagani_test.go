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

func TestMeroLaganiFetch(t *testing.T) {
	html, err := os.ReadFile(filepath.Join("testdata", "announcements.html"))
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/AnnouncementList.aspx", r.URL.Path)
		assert.Equal(t, scrape.DesktopUserAgent, r.Header.Get("User-Agent"))
		w.Write(html)
	}))
	defer srv.Close()

	repo := NewMeroLagani(scrape.NewClient(time.Second, scrape.DesktopUserAgent), srv.URL)
	now := time.Date(2026, time.October, 14, 10, 0, 0, 0, time.UTC)

	announcements, err := repo.Fetch(context.Background(), now)
	require.NoError(t, err)

	require.Len(t, announcements, 3)

	// Icon link wins over the text link
	assert.Equal(t, "Nabil Bank Limited has proposed 12% bonus share.", announcements[0].Text)
	assert.Equal(t, srv.URL+"/AnnouncementDetail.aspx?id=101", announcements[0].URL)
	assert.Equal(t, "2026-10-14", announcements[0].Date.Format(time.DateOnly))

	// No icon link: fall back to the text link
	assert.Equal(t, srv.URL+"/AnnouncementDetail.aspx?id=102", announcements[1].URL)

	// Neither link carries an href
	assert.Equal(t, "Rights share auction result published.", announcements[2].Text)
	assert.Empty(t, announcements[2].URL)
}

func TestMeroLaganiFetchPropagatesErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	repo := NewMeroLagani(scrape.NewClient(time.Second, ""), srv.URL)

	_, err := repo.Fetch(context.Background(), time.Now())
	assert.Error(t, err)
}
