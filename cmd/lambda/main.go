package main

import (
	"context"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/reshetovitsme/nepse-digest/internal/di"
	"github.com/reshetovitsme/nepse-digest/internal/modules/digest/domain"
	digestService "github.com/reshetovitsme/nepse-digest/internal/modules/digest/service"
	"github.com/reshetovitsme/nepse-digest/internal/shared/config"
	"github.com/reshetovitsme/nepse-digest/internal/shared/logging"
	"github.com/samber/do/v2"

	_ "time/tzdata"
)

func handler(ctx context.Context) (*domain.Report, error) {
	injector, err := di.Setup()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := di.Shutdown(injector); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}()

	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		return nil, err
	}
	logging.Setup(cfg.LogLevel)

	digest, err := do.Invoke[*digestService.Service](injector)
	if err != nil {
		return nil, err
	}

	return digest.Run(ctx)
}

func main() {
	logging.Setup("info")
	lambda.Start(handler)
}
