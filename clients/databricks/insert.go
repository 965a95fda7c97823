package databricks

import (
	"context"
	"fmt"

	"github.com/artie-labs/brickbyte/clients/databricks/dialect"
	"github.com/artie-labs/brickbyte/lib/config/constants"
	"github.com/artie-labs/brickbyte/lib/db"
	"github.com/artie-labs/brickbyte/models"
)

// InsertFlusher writes each stream with a single multi-row INSERT.
type InsertFlusher struct {
	opener  db.Opener
	dialect dialect.DatabricksDialect
}

func NewInsertFlusher(opener db.Opener) InsertFlusher {
	return InsertFlusher{opener: opener}
}

func (InsertFlusher) Strategy() constants.WriteStrategy {
	return constants.Insert
}

func (i InsertFlusher) Flush(ctx context.Context, buffer *models.Buffer) error {
	if buffer.Empty() {
		return nil
	}

	return db.WithHandle(ctx, i.opener, func(handle db.Handle) error {
		for _, stream := range buffer.Streams() {
			query, err := i.buildInsertQuery(stream, buffer.Records(stream))
			if err != nil {
				return err
			}

			if _, err = handle.ExecContext(ctx, query); err != nil {
				return fmt.Errorf("failed to insert into %q: %w", i.dialect.RawTableName(stream), err)
			}

			buffer.Clear(stream)
		}

		return nil
	})
}

func (i InsertFlusher) buildInsertQuery(stream string, records []models.Record) (string, error) {
	tuples := make([][]string, len(records))
	for idx, record := range records {
		tuple, err := encodeRecord(record)
		if err != nil {
			return "", fmt.Errorf("failed to encode record %q for stream %q: %w", record.ID(), stream, err)
		}

		tuples[idx] = tuple
	}

	return i.dialect.BuildInsertQuery(stream, tuples), nil
}

func encodeRecord(record models.Record) ([]string, error) {
	values := []any{record.ID(), record.EmittedAt(), record.Payload()}
	encoded := make([]string, len(values))
	for idx, value := range values {
		quoted, err := dialect.QuoteValue(value)
		if err != nil {
			return nil, err
		}

		encoded[idx] = quoted
	}

	return encoded, nil
}
