//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// Section represents one of the digest feeds
// ENUM(news,announcements,events)
type Section string
