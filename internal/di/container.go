package di

import (
	"context"
	"log/slog"

	announcementRepo "github.com/reshetovitsme/nepse-digest/internal/modules/announcement/repository"
	digestService "github.com/reshetovitsme/nepse-digest/internal/modules/digest/service"
	eventRepo "github.com/reshetovitsme/nepse-digest/internal/modules/event/repository"
	feedService "github.com/reshetovitsme/nepse-digest/internal/modules/feed/service"
	messageService "github.com/reshetovitsme/nepse-digest/internal/modules/message/service"
	newsRepo "github.com/reshetovitsme/nepse-digest/internal/modules/news/repository"
	newsService "github.com/reshetovitsme/nepse-digest/internal/modules/news/service"
	"github.com/reshetovitsme/nepse-digest/internal/shared/config"
	"github.com/reshetovitsme/nepse-digest/internal/shared/scrape"
	"github.com/reshetovitsme/nepse-digest/internal/transport/console"
	"github.com/reshetovitsme/nepse-digest/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// sourceClients holds one HTTP session per scraped source
type sourceClients struct {
	ShareSansar *scrape.Client
	Bizmandu    *scrape.Client
	MeroLagani  *scrape.Client
	Events      *scrape.Client
}

// newSourceClients builds the per-source sessions. The ShareSansar listing
// uses the page timeout and MeroLagani refuses the bare agent, so both send a
// desktop browser agent.
func newSourceClients(cfg *config.Config) *sourceClients {
	return &sourceClients{
		ShareSansar: scrape.NewClient(cfg.PageTimeout, scrape.DesktopUserAgent),
		Bizmandu:    scrape.NewClient(cfg.RequestTimeout, scrape.DefaultUserAgent),
		MeroLagani:  scrape.NewClient(cfg.RequestTimeout, scrape.DesktopUserAgent),
		Events:      scrape.NewClient(cfg.RequestTimeout, scrape.DefaultUserAgent),
	}
}

// Setup initializes the dependency injection container
func Setup(opts ...config.Option) (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load(opts...)
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register HTTP clients
	do.Provide(injector, func(i do.Injector) (*sourceClients, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return newSourceClients(cfg), nil
	})

	// Register News Service
	do.Provide(injector, func(i do.Injector) (*newsService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		clients := do.MustInvoke[*sourceClients](i)

		shareSansar := newsRepo.NewShareSansar(clients.ShareSansar, newsRepo.ShareSansarOptions{
			Pages:       cfg.NewsPages,
			PageTimeout: cfg.PageTimeout,
			PageDelay:   cfg.PageDelay,
		})
		bizmandu := newsRepo.NewBizmandu(clients.Bizmandu, "")
		return newsService.New(shareSansar, bizmandu), nil
	})

	// Register Announcement Repository
	do.Provide(injector, func(i do.Injector) (announcementRepo.Repository, error) {
		clients := do.MustInvoke[*sourceClients](i)
		return announcementRepo.NewMeroLagani(clients.MeroLagani, ""), nil
	})

	// Register Event Repository
	do.Provide(injector, func(i do.Injector) (eventRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		clients := do.MustInvoke[*sourceClients](i)
		return eventRepo.NewShareSansarEvents(clients.Events, "", cfg.EventDays), nil
	})

	// Register Formatter
	do.Provide(injector, func(i do.Injector) (*messageService.Formatter, error) {
		return messageService.NewFormatter(), nil
	})

	// Register Feed Service
	do.Provide(injector, func(i do.Injector) (*feedService.Service, error) {
		return feedService.New(), nil
	})

	// Register Dispatcher. Dry runs print to stdout instead of posting.
	do.Provide(injector, func(i do.Injector) (digestService.Dispatcher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.DryRun {
			slog.Info("Dry run, messages will be printed")
			return console.New(), nil
		}

		b, err := telegram.NewBot(cfg.TelegramBotToken, cfg.TelegramAPIURL)
		if err != nil {
			return nil, err
		}
		return telegram.New(b, cfg.ChannelID), nil
	})

	// Register Digest Service
	do.Provide(injector, func(i do.Injector) (*digestService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return digestService.New(
			do.MustInvoke[*newsService.Service](i),
			do.MustInvoke[announcementRepo.Repository](i),
			do.MustInvoke[eventRepo.Repository](i),
			do.MustInvoke[*messageService.Formatter](i),
			do.MustInvoke[*feedService.Service](i),
			do.MustInvoke[digestService.Dispatcher](i),
			digestService.Options{
				Location:       cfg.Location(),
				Limit:          cfg.MessageLimit,
				SplitSections:  cfg.SplitSections,
				FeedOutputPath: cfg.FeedOutputPath,
			},
		), nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(injector do.Injector) error {
	ctx := context.Background()

	if report := injector.ShutdownWithContext(ctx); report != nil && !report.Succeed {
		return oops.With("context", "failed to shut down services").Wrap(report)
	}
	return nil
}
