package utils

import (
	"fmt"

	"github.com/artie-labs/brickbyte/clients/databricks"
	"github.com/artie-labs/brickbyte/lib/config"
	"github.com/artie-labs/brickbyte/lib/config/constants"
	"github.com/artie-labs/brickbyte/lib/destination"
	"github.com/artie-labs/brickbyte/lib/telemetry/metrics/base"
)

func LoadSink(cfg config.Config) (*databricks.Sink, error) {
	if cfg.Databricks == nil {
		return nil, fmt.Errorf("databricks config is nil")
	}

	return databricks.NewSink(*cfg.Databricks)
}

// LoadFlusher returns the [destination.Flusher] for the configured write strategy.
func LoadFlusher(cfg config.Config, sink *databricks.Sink) (destination.Flusher, error) {
	switch cfg.Writer.Strategy {
	case constants.Insert:
		return databricks.NewInsertFlusher(sink), nil
	case constants.Staged:
		return databricks.NewStagedFlusher(sink, sink.StagingVolumePath(), sink.LocalStagingDir())
	}

	return nil, fmt.Errorf("invalid write strategy: %q", cfg.Writer.Strategy)
}

func LoadWriter(cfg config.Config, sink *databricks.Sink, metricsClient base.Client) (*destination.Writer, error) {
	flusher, err := LoadFlusher(cfg, sink)
	if err != nil {
		return nil, err
	}

	return destination.NewWriter(flusher, databricks.NewTables(sink), cfg.Writer.FlushRows, metricsClient)
}
