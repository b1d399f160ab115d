package repository

import (
	"context"
	"time"

	"github.com/reshetovitsme/nepse-digest/internal/modules/event/domain"
)

// Repository defines a source of upcoming events
type Repository interface {
	Fetch(ctx context.Context, now time.Time) ([]domain.EventListing, error)
}
