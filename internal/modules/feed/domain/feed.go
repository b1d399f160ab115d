package domain

import (
	"time"

	announcementDomain "github.com/reshetovitsme/nepse-digest/internal/modules/announcement/domain"
	eventDomain "github.com/reshetovitsme/nepse-digest/internal/modules/event/domain"
	newsDomain "github.com/reshetovitsme/nepse-digest/internal/modules/news/domain"
)

// Snapshot is everything one digest run collected
type Snapshot struct {
	Generated     time.Time                         `json:"generated"`
	News          []newsDomain.NewsItem             `json:"news"`
	Announcements []announcementDomain.Announcement `json:"announcements"`
	Events        []eventDomain.EventListing        `json:"events"`
}
