package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSection(t *testing.T) {
	section, err := ParseSection("Announcements")
	require.NoError(t, err)
	assert.Equal(t, SectionAnnouncements, section)

	_, err = ParseSection("weather")
	assert.ErrorIs(t, err, ErrInvalidSection)
}

func TestBlockTextFallsBackWhenEmpty(t *testing.T) {
	assert.Equal(t, "body", Block{Section: SectionNews, Body: "body"}.Text())
	assert.Equal(t, "<b>📅 Upcoming Events</b>\n\nNo major events scheduled for tomorrow.",
		Block{Section: SectionEvents, Empty: true}.Text())
}
