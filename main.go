package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/artie-labs/brickbyte/lib/config"
	"github.com/artie-labs/brickbyte/lib/destination/utils"
	"github.com/artie-labs/brickbyte/lib/logger"
	"github.com/artie-labs/brickbyte/lib/telemetry/metrics"
	"github.com/artie-labs/brickbyte/processes/consumer"
)

func main() {
	// Parse args into settings.
	settings, err := config.LoadSettings(os.Args[1:], true)
	if err != nil {
		logger.Fatal("Failed to initialize config", slog.Any("err", err))
	}

	// Initialize default logger
	_logger, usingSentry := logger.NewLogger(settings)
	slog.SetDefault(_logger)
	if usingSentry {
		defer logger.Flush()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink, err := utils.LoadSink(settings.Config)
	if err != nil {
		logger.Fatal("Failed to load sink", slog.Any("err", err))
	}

	slog.Info("Config is loaded",
		slog.String("databricks", sink.String()),
		slog.String("strategy", string(settings.Config.Writer.Strategy)),
		slog.Uint64("flushRows", uint64(settings.Config.Writer.FlushRows)),
	)

	if settings.Check {
		if err = consumer.Check(ctx, sink, os.Stdout); err != nil {
			logger.Fatal("Failed to check connection", slog.Any("err", err))
		}
		return
	}

	// Loading telemetry
	metricsClient := metrics.LoadExporter(settings.Config)
	defer func() {
		if closeErr := metricsClient.Close(); closeErr != nil {
			slog.Warn("Failed to close metrics client", slog.Any("err", closeErr))
		}
	}()

	writer, err := utils.LoadWriter(settings.Config, sink, metricsClient)
	if err != nil {
		logger.Fatal("Failed to load writer", slog.Any("err", err))
	}

	airbyteConsumer := consumer.NewConsumer(writer, os.Stdout, metricsClient)
	if err = airbyteConsumer.PrepareCatalogFile(ctx, settings.CatalogPath); err != nil {
		logger.Fatal("Failed to prepare catalog", slog.Any("err", err), slog.String("catalog", settings.CatalogPath))
	}

	if err = airbyteConsumer.Run(ctx, os.Stdin); err != nil {
		logger.Fatal("Failed to consume messages", slog.Any("err", err), slog.Uint64("pending", uint64(writer.Pending())))
	}

	slog.Info("Finished consuming messages")
}
