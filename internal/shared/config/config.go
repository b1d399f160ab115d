package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/reshetovitsme/nepse-digest/internal/shared/dates"
	"github.com/reshetovitsme/nepse-digest/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

type Config struct {
	TelegramBotToken string        `koanf:"telegram_bot_token"`
	TelegramAPIURL   string        `koanf:"telegram_api_url"`
	ChannelID        string        `koanf:"channel_id"`
	Timezone         string        `koanf:"timezone"`
	MessageLimit     int           `koanf:"message_limit"`
	NewsPages        int           `koanf:"news_pages"`
	EventDays        int           `koanf:"event_days"`
	PageTimeout      time.Duration `koanf:"page_timeout"`
	RequestTimeout   time.Duration `koanf:"request_timeout"`
	PageDelay        time.Duration `koanf:"page_delay"`
	SplitSections    bool          `koanf:"split_sections"`
	DryRun           bool          `koanf:"dry_run"`
	FeedOutputPath   string        `koanf:"feed_output_path"`
	LogLevel         string        `koanf:"log_level"`
	AppEnv           AppEnv        `koanf:"app_env"`
}

// Option adjusts how Load behaves.
type Option func(*loadOptions)

type loadOptions struct {
	file   string
	dotEnv string
	dryRun bool
}

// WithFile loads the given config file instead of searching the working directory.
func WithFile(path string) Option {
	return func(o *loadOptions) { o.file = path }
}

// WithDotEnv overrides the .env file location.
func WithDotEnv(path string) Option {
	return func(o *loadOptions) { o.dotEnv = path }
}

// WithDryRun forces dry-run mode regardless of file and environment values.
func WithDryRun(dryRun bool) Option {
	return func(o *loadOptions) { o.dryRun = dryRun }
}

var defaults = map[string]any{
	"telegram_api_url": "https://api.telegram.org",
	"timezone":         dates.DefaultTimezone,
	"message_limit":    4096,
	"news_pages":       4,
	"event_days":       2,
	"page_timeout":     "10s",
	"request_timeout":  "30s",
	"page_delay":       "2s",
	"split_sections":   false,
	"dry_run":          false,
	"log_level":        "info",
	"app_env":          "production",
}

func Load(opts ...Option) (*Config, error) {
	o := loadOptions{dotEnv: ".env"}
	for _, opt := range opts {
		opt(&o)
	}

	// .env values never override variables already present in the environment
	if _, err := os.Stat(o.dotEnv); err == nil {
		if err := godotenv.Load(o.dotEnv); err != nil {
			return nil, oops.With("dotenv", o.dotEnv).Wrap(err)
		}
	} else {
		slog.Debug("No .env file found, using environment variables only", "path", o.dotEnv)
	}

	k := koanf.New(".")

	configFile, found := o.file, o.file != ""
	if !found {
		// Use lo.Find to find the first existing config file
		configFile, found = lo.Find([]string{
			"config.yaml",
			"config.yml",
			"config.json",
			"config.toml",
		}, func(file string) bool {
			_, err := os.Stat(file)
			return err == nil
		})
	}

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Load environment variables (they override config file values)
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	for key, value := range defaults {
		if !k.Exists(key) {
			k.Set(key, value)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	if appEnv, err := ParseAppEnv(k.String("app_env")); err == nil {
		cfg.AppEnv = appEnv
	} else {
		cfg.AppEnv = AppEnvProduction
	}

	if o.dryRun {
		cfg.DryRun = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the fields a run cannot do without.
func (c *Config) Validate() error {
	if c.MessageLimit <= 0 {
		return oops.With("message_limit", c.MessageLimit).Wrap(errors.ErrInvalidLimit)
	}
	if _, err := dates.LoadLocation(c.Timezone); err != nil {
		return err
	}
	if c.DryRun {
		return nil
	}
	if c.TelegramBotToken == "" {
		return errors.ErrMissingBotToken
	}
	if c.ChannelID == "" {
		return errors.ErrMissingChannelID
	}
	return nil
}

// Location returns the configured timezone.
func (c *Config) Location() *time.Location {
	loc, err := dates.LoadLocation(c.Timezone)
	if err != nil {
		loc, _ = dates.LoadLocation(dates.DefaultTimezone)
	}
	return loc
}
