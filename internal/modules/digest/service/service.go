package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	announcementDomain "github.com/reshetovitsme/nepse-digest/internal/modules/announcement/domain"
	"github.com/reshetovitsme/nepse-digest/internal/modules/digest/domain"
	eventDomain "github.com/reshetovitsme/nepse-digest/internal/modules/event/domain"
	feedDomain "github.com/reshetovitsme/nepse-digest/internal/modules/feed/domain"
	messageDomain "github.com/reshetovitsme/nepse-digest/internal/modules/message/domain"
	messageService "github.com/reshetovitsme/nepse-digest/internal/modules/message/service"
	newsDomain "github.com/reshetovitsme/nepse-digest/internal/modules/news/domain"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// NewsSource returns today's merged news
type NewsSource interface {
	Today(ctx context.Context, now time.Time) ([]newsDomain.NewsItem, error)
}

// AnnouncementSource returns today's announcements
type AnnouncementSource interface {
	Fetch(ctx context.Context, now time.Time) ([]announcementDomain.Announcement, error)
}

// EventSource returns upcoming events
type EventSource interface {
	Fetch(ctx context.Context, now time.Time) ([]eventDomain.EventListing, error)
}

// FeedWriter exports a run snapshot
type FeedWriter interface {
	WriteRSS(path string, snapshot feedDomain.Snapshot) error
}

// Dispatcher delivers message chunks in order
type Dispatcher interface {
	Send(ctx context.Context, chunks []string) domain.SendReport
}

// Options tunes how a run is assembled
type Options struct {
	Location       *time.Location
	Limit          int
	SplitSections  bool
	FeedOutputPath string
	Now            func() time.Time
}

// Service runs the fetch, format and send pipeline
type Service struct {
	news          NewsSource
	announcements AnnouncementSource
	events        EventSource
	formatter     *messageService.Formatter
	feed          FeedWriter
	dispatcher    Dispatcher
	opts          Options
}

// New creates a new digest service
func New(
	news NewsSource,
	announcements AnnouncementSource,
	events EventSource,
	formatter *messageService.Formatter,
	feed FeedWriter,
	dispatcher Dispatcher,
	opts Options,
) *Service {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Limit <= 0 {
		opts.Limit = messageService.DefaultLimit
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Service{
		news:          news,
		announcements: announcements,
		events:        events,
		formatter:     formatter,
		feed:          feed,
		dispatcher:    dispatcher,
		opts:          opts,
	}
}

// Run fetches every feed, then formats and dispatches the digest.
// A fetch error aborts the run before anything is sent.
func (s *Service) Run(ctx context.Context) (*domain.Report, error) {
	report := &domain.Report{RunID: uuid.NewString()}
	logger := slog.With("run_id", report.RunID)
	now := s.opts.Now().In(s.opts.Location)

	logger.Info("Starting digest", "now", now.Format(time.RFC3339))

	news, err := s.news.Today(ctx, now)
	if err != nil {
		return nil, oops.With("run_id", report.RunID, "context", "failed to fetch news").Wrap(err)
	}
	announcements, err := s.announcements.Fetch(ctx, now)
	if err != nil {
		return nil, oops.With("run_id", report.RunID, "context", "failed to fetch announcements").Wrap(err)
	}
	events, err := s.events.Fetch(ctx, now)
	if err != nil {
		return nil, oops.With("run_id", report.RunID, "context", "failed to fetch events").Wrap(err)
	}

	report.News = len(news)
	report.Announcements = len(announcements)
	report.Events = len(events)
	logger.Info("Fetched feeds", "news", report.News, "announcements", report.Announcements, "events", report.Events)

	if s.feed != nil && s.opts.FeedOutputPath != "" {
		snapshot := feedDomain.Snapshot{
			Generated:     now,
			News:          news,
			Announcements: announcements,
			Events:        events,
		}
		if err := s.feed.WriteRSS(s.opts.FeedOutputPath, snapshot); err != nil {
			logger.Error("Failed to export feed", "path", s.opts.FeedOutputPath, "error", err)
		} else {
			logger.Info("Exported feed", "path", s.opts.FeedOutputPath)
		}
	}

	report.Blocks = s.formatter.Blocks(news, announcements, events)
	messages := Compose(messageService.Greeting(now, s.opts.Location), report.Blocks, s.opts.SplitSections)
	report.Messages = len(messages)

	for i, msg := range messages {
		chunks := messageService.Split(msg, s.opts.Limit)
		report.Chunks += len(chunks)

		logger.Info("Dispatching message", "message", i+1, "total", len(messages), "chunks", len(chunks))
		sent := s.dispatcher.Send(ctx, chunks)
		report.Sent += sent.Sent
		report.Failed += sent.Failed
	}

	logger.Info("Digest finished", "messages", report.Messages, "chunks", report.Chunks, "sent", report.Sent, "failed", report.Failed)
	return report, nil
}

// Compose turns blocks into message bodies. The greeting prefixes the first
// block. Blocks are joined by a blank line unless split is set, in which case
// each block becomes its own message.
func Compose(greeting string, blocks []messageDomain.Block, split bool) []string {
	texts := lo.Map(blocks, func(b messageDomain.Block, _ int) string {
		return b.Text()
	})
	if len(texts) == 0 {
		return nil
	}
	texts[0] = messageService.WithGreeting(greeting, texts[0])

	if split {
		return texts
	}
	return []string{strings.Join(texts, "\n\n")}
}
