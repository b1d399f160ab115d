package repository

import (
	"context"
	"time"

	"github.com/reshetovitsme/nepse-digest/internal/modules/announcement/domain"
)

// Repository defines a source of company announcements.
// Fetch returns only the announcements dated on now's calendar day.
type Repository interface {
	Fetch(ctx context.Context, now time.Time) ([]domain.Announcement, error)
}
