package databricks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/artie-labs/brickbyte/clients/databricks/dialect"
	"github.com/artie-labs/brickbyte/lib/db"
)

// Tables creates and drops raw tables. Every call uses its own handle.
type Tables struct {
	opener  db.Opener
	dialect dialect.DatabricksDialect
}

func NewTables(opener db.Opener) Tables {
	return Tables{opener: opener}
}

func (t Tables) CreateTable(ctx context.Context, stream string) error {
	return db.WithHandle(ctx, t.opener, func(handle db.Handle) error {
		if _, err := handle.ExecContext(ctx, t.dialect.BuildCreateRawTableQuery(stream)); err != nil {
			return fmt.Errorf("failed to create table %q: %w", t.dialect.RawTableName(stream), err)
		}

		return nil
	})
}

func (t Tables) DropTable(ctx context.Context, stream string) error {
	return db.WithHandle(ctx, t.opener, func(handle db.Handle) error {
		if _, err := handle.ExecContext(ctx, t.dialect.BuildDropRawTableQuery(stream)); err != nil {
			if t.dialect.IsTableDoesNotExistErr(err) {
				slog.Info("Table does not exist, nothing to drop", slog.String("table", t.dialect.RawTableName(stream)))
				return nil
			}

			return fmt.Errorf("failed to drop table %q: %w", t.dialect.RawTableName(stream), err)
		}

		return nil
	})
}
