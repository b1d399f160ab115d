package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/reshetovitsme/nepse-digest/internal/modules/news/domain"
	"github.com/reshetovitsme/nepse-digest/internal/modules/news/repository"
	"github.com/reshetovitsme/nepse-digest/internal/shared/dates"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Service merges the news sources into one feed
type Service struct {
	sources []repository.Repository
}

// New creates a new news service. Sources are fetched in the given order.
func New(sources ...repository.Repository) *Service {
	return &Service{
		sources: sources,
	}
}

// Today fetches every source and stacks the rows in source order.
// Duplicates across sources are kept. The first failing source aborts.
func (s *Service) Today(ctx context.Context, now time.Time) ([]domain.NewsItem, error) {
	var merged []domain.NewsItem
	for _, src := range s.sources {
		items, err := src.Fetch(ctx, now)
		if err != nil {
			return nil, oops.With("source", src.Name(), "context", "failed to fetch news").Wrap(err)
		}
		slog.Info("Fetched news", "source", src.Name(), "items", len(items))
		merged = append(merged, items...)
	}

	return lo.Map(merged, func(item domain.NewsItem, _ int) domain.NewsItem {
		item.PublishedDate = dates.Floor(item.PublishedDate)
		return item
	}), nil
}
