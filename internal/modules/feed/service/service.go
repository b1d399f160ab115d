package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gorilla/feeds"
	"github.com/reshetovitsme/nepse-digest/internal/modules/feed/domain"
	"github.com/samber/oops"
)

const (
	feedTitle = "NEPSE Market Digest"
	feedLink  = "https://www.sharesansar.com/category/latest"
)

// Service renders a run snapshot as an RSS document
type Service struct {
	title string
	link  string
}

// New creates a new feed service
func New() *Service {
	return &Service{
		title: feedTitle,
		link:  feedLink,
	}
}

// GenerateFeed generates a feed holding the news, announcements and events of a snapshot
func (s *Service) GenerateFeed(snapshot domain.Snapshot) *feeds.Feed {
	feed := &feeds.Feed{
		Title:       s.title,
		Link:        &feeds.Link{Href: s.link},
		Description: fmt.Sprintf("Market news, announcements and upcoming events for %s", snapshot.Generated.Format(time.DateOnly)),
		Created:     snapshot.Generated,
		Updated:     snapshot.Generated,
	}

	var items []*feeds.Item
	for i, n := range snapshot.News {
		items = append(items, newItem("news", i, n.Title, n.URL, n.Source, n.PublishedDate))
	}
	for i, a := range snapshot.Announcements {
		items = append(items, newItem("announcement", i, a.Text, a.URL, "merolagani", a.Date))
	}
	for i, e := range snapshot.Events {
		title := fmt.Sprintf("%s: %s", e.Date.Format(time.DateOnly), e.Title)
		items = append(items, newItem("event", i, title, e.URL, "sharesansar", e.Date))
	}

	feed.Items = items
	return feed
}

// WriteRSS writes the snapshot feed to path, replacing any previous file.
func (s *Service) WriteRSS(path string, snapshot domain.Snapshot) error {
	rss, err := s.GenerateFeed(snapshot).ToRss()
	if err != nil {
		return oops.With("context", "failed to convert feed to RSS").Wrap(err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return oops.With("path", path, "context", "failed to create feed directory").Wrap(err)
		}
	}

	if err := os.WriteFile(path, []byte(rss), 0644); err != nil {
		return oops.With("path", path, "context", "failed to write feed").Wrap(err)
	}
	return nil
}

func newItem(kind string, index int, title, link, source string, created time.Time) *feeds.Item {
	id := link
	if id == "" {
		id = fmt.Sprintf("%s-%s-%d", kind, created.Format("20060102"), index)
	}

	return &feeds.Item{
		Title:       title,
		Link:        &feeds.Link{Href: link},
		Description: fmt.Sprintf("%s via %s", kind, source),
		Author:      &feeds.Author{Name: source},
		Created:     created,
		Id:          id,
	}
}
