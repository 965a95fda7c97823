package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/artie-labs/brickbyte/lib/config/constants"
	"github.com/artie-labs/brickbyte/lib/stringutil"
)

// DefaultLocalStagingDir returns the scratch directory used when none is configured.
func DefaultLocalStagingDir(homeDir string) string {
	return filepath.Join(homeDir, ".brickbyte", "staging")
}

func readFileToConfig(pathToConfig string) (*Config, error) {
	file, err := os.Open(pathToConfig)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	var config Config
	if err = yaml.Unmarshal(bytes, &config); err != nil {
		return nil, err
	}

	if err = config.applyDefaults(os.UserHomeDir); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) applyDefaults(homeDir func() (string, error)) error {
	if c.Writer.Strategy == "" {
		c.Writer.Strategy = constants.Insert
	}

	if c.Writer.FlushRows == 0 {
		c.Writer.FlushRows = c.Writer.Strategy.DefaultFlushRows()
	}

	if c.Databricks != nil && c.Databricks.StagingEnabled() && c.Databricks.LocalStagingDir == "" {
		dir, err := homeDir()
		if err != nil {
			return fmt.Errorf("failed to resolve home directory for the local staging dir: %w", err)
		}

		c.Databricks.LocalStagingDir = DefaultLocalStagingDir(dir)
	}

	return nil
}

func (c Config) ValidateDatabricks() error {
	if c.Databricks == nil {
		return fmt.Errorf("databricks config is nil")
	}

	d := c.Databricks.WithEnvOverrides()
	if stringutil.Empty(d.ServerHostname, d.HttpPath, d.AccessToken) {
		return fmt.Errorf("one of databricks settings is empty (serverHostname, httpPath, accessToken)")
	}

	if stringutil.Empty(d.Catalog, d.Schema) {
		return fmt.Errorf("one of databricks settings is empty (catalog, schema)")
	}

	// Staged files are addressed by joining onto this path, which would collapse the "//" of a URI.
	if strings.Contains(d.StagingVolumePath, "://") {
		return fmt.Errorf("stagingVolumePath %q must be a volume or DBFS path, not a URI", d.StagingVolumePath)
	}

	if d.StagingEnabled() && d.LocalStagingDir == "" {
		return fmt.Errorf("localStagingDir must be set when stagingVolumePath is set")
	}

	return nil
}

// Validate will check the Databricks settings and the writer settings.
// The actual connection is only checked when the writer is loaded.
func (c Config) Validate() error {
	if err := c.ValidateDatabricks(); err != nil {
		return fmt.Errorf("config is invalid: %w", err)
	}

	if !constants.IsValidWriteStrategy(c.Writer.Strategy) {
		return fmt.Errorf("config is invalid, write strategy: %q is invalid", c.Writer.Strategy)
	}

	if c.Writer.Strategy == constants.Staged && !c.Databricks.StagingEnabled() {
		return fmt.Errorf("config is invalid, stagingVolumePath is required for the %q write strategy", c.Writer.Strategy)
	}

	if c.Writer.FlushRows == 0 {
		return fmt.Errorf("config is invalid, flushRows has to be a positive number")
	}

	return nil
}
