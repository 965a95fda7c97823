package databricks

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/databricks/databricks-sql-go"

	"github.com/artie-labs/brickbyte/lib/config"
	"github.com/artie-labs/brickbyte/lib/db"
)

type connectFunc func(cfg config.Databricks) (*sql.DB, error)

// Sink hands out a fresh statement handle on every call to [Sink.Open]. Nothing is cached between calls.
type Sink struct {
	cfg     config.Databricks
	connect connectFunc
}

func NewSink(cfg config.Databricks) (*Sink, error) {
	return newSink(cfg, connect)
}

func newSink(cfg config.Databricks, connect connectFunc) (*Sink, error) {
	if cfg.StagingEnabled() {
		if cfg.LocalStagingDir == "" {
			return nil, fmt.Errorf("localStagingDir must be set when stagingVolumePath is set")
		}

		if err := os.MkdirAll(cfg.LocalStagingDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create local staging dir %q: %w", cfg.LocalStagingDir, err)
		}
	}

	return &Sink{cfg: cfg, connect: connect}, nil
}

func connect(cfg config.Databricks) (*sql.DB, error) {
	return sql.Open("databricks", cfg.DSN())
}

// Open connects and returns a dedicated handle, the caller is responsible for closing it.
// Environment variables are read here so a rotated token is picked up by the next flush.
func (s *Sink) Open(ctx context.Context) (db.Handle, error) {
	cfg := s.cfg.WithEnvOverrides()
	sqlDB, err := s.connect(cfg)
	if err != nil {
		return nil, err
	}

	return db.NewHandle(ctx, sqlDB, true)
}

// Check verifies that a statement can be executed against the warehouse.
func (s *Sink) Check(ctx context.Context) error {
	return db.WithHandle(ctx, s, func(handle db.Handle) error {
		rows, err := handle.QueryContext(ctx, "SELECT 1")
		if err != nil {
			return fmt.Errorf("failed to run check query: %w", err)
		}

		defer rows.Close()
		if !rows.Next() {
			if err = rows.Err(); err != nil {
				return fmt.Errorf("failed to read check query result: %w", err)
			}

			return fmt.Errorf("check query returned no rows")
		}

		return nil
	})
}

func (s *Sink) LocalStagingDir() string {
	return s.cfg.LocalStagingDir
}

func (s *Sink) StagingVolumePath() string {
	return s.cfg.StagingVolumePath
}

func (s *Sink) String() string {
	return s.cfg.String()
}
