package config

import (
	"github.com/artie-labs/brickbyte/lib/config/constants"
)

type Sentry struct {
	DSN string `yaml:"dsn"`
}

type Reporting struct {
	Sentry *Sentry `yaml:"sentry"`
}

type Databricks struct {
	ServerHostname string `yaml:"serverHostname"`
	HttpPath       string `yaml:"httpPath"`
	Port           int    `yaml:"port"`
	AccessToken    string `yaml:"accessToken"`
	Catalog        string `yaml:"catalog"`
	Schema         string `yaml:"schema"`
	// StagingVolumePath is the remote base path staged batches are uploaded to, e.g. /Volumes/main/default/staging
	// It is only required for the staged write strategy.
	StagingVolumePath string `yaml:"stagingVolumePath,omitempty"`
	// LocalStagingDir is where batches are written before they are uploaded. Defaults to $HOME/.brickbyte/staging.
	LocalStagingDir string `yaml:"localStagingDir,omitempty"`
}

type Writer struct {
	Strategy constants.WriteStrategy `yaml:"strategy"`
	// FlushRows is the number of pending records (across all streams) that triggers a flush.
	FlushRows uint `yaml:"flushRows"`
}

type Config struct {
	Databricks *Databricks `yaml:"databricks"`
	Writer     Writer      `yaml:"writer"`

	Reporting Reporting `yaml:"reporting"`
	Telemetry struct {
		Metrics struct {
			Provider constants.ExporterKind `yaml:"provider"`
			Settings map[string]any         `yaml:"settings,omitempty"`
		}
	}
}
