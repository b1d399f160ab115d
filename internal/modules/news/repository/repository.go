package repository

import (
	"context"
	"time"

	"github.com/reshetovitsme/nepse-digest/internal/modules/news/domain"
)

// Repository defines a source of market news.
// Fetch returns only the items published on now's calendar day.
type Repository interface {
	Name() string
	Fetch(ctx context.Context, now time.Time) ([]domain.NewsItem, error)
}
