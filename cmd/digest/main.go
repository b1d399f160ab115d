package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/reshetovitsme/nepse-digest/internal/di"
	digestService "github.com/reshetovitsme/nepse-digest/internal/modules/digest/service"
	"github.com/reshetovitsme/nepse-digest/internal/shared/config"
	"github.com/reshetovitsme/nepse-digest/internal/shared/logging"
	"github.com/reshetovitsme/nepse-digest/internal/transport/console"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	_ "time/tzdata"
)

var (
	cfgFile string
	dryRun  bool
	preview bool
)

var rootCmd = &cobra.Command{
	Use:   "digest",
	Short: "Post the daily NEPSE market digest to Telegram",
	Long: `digest scrapes today's market news, company announcements and upcoming
events, formats them as one Telegram HTML digest and posts it to the
configured channel.

Example usage:
  digest                       # Fetch and post
  digest --dry-run             # Print the messages instead of posting
  digest --dry-run --preview   # Also print a per-section summary`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is the first of config.yaml|yml|json|toml)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print messages instead of sending them")
	rootCmd.Flags().BoolVar(&preview, "preview", false, "print a per-section summary table")
}

func main() {
	logging.Setup("info")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Digest failed", "error", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	opts := []config.Option{config.WithDryRun(dryRun)}
	if cfgFile != "" {
		opts = append(opts, config.WithFile(cfgFile))
	}

	// Setup dependency injection
	injector, err := di.Setup(opts...)
	if err != nil {
		return err
	}
	defer func() {
		if err := di.Shutdown(injector); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}()

	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel)

	digest, err := do.Invoke[*digestService.Service](injector)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	report, err := digest.Run(ctx)
	if err != nil {
		return err
	}

	if preview {
		if err := console.Preview(cmd.OutOrStdout(), report.Blocks); err != nil {
			return err
		}
	}

	slog.Info("Digest posted", "run_id", report.RunID, "sent", report.Sent, "failed", report.Failed)
	return nil
}
