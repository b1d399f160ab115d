package domain

// Block represents one rendered digest section
type Block struct {
	Section Section `json:"section"`
	Title   string  `json:"title"`
	Body    string  `json:"body"`
	Items   int     `json:"items"`
	Empty   bool    `json:"empty"`
}

// Text returns the body, or the section fallback when there was nothing to show.
func (b Block) Text() string {
	if b.Empty {
		return Fallback(b.Section)
	}
	return b.Body
}

const (
	NewsTitle          = "🗞️ Market News"
	AnnouncementsTitle = "📢 Announcements Today"
	EventsTitle        = "📅 Upcoming Events"
)

// Fallback returns the fixed text shown for a section without items.
func Fallback(section Section) string {
	switch section {
	case SectionAnnouncements:
		return "<b>" + AnnouncementsTitle + "</b>\n\nNo new announcements today."
	case SectionEvents:
		return "<b>" + EventsTitle + "</b>\n\nNo major events scheduled for tomorrow."
	default:
		return "<b>" + NewsTitle + "</b>\n\nThere’s no major news today."
	}
}
