package databricks

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/c2h5oh/datasize"
	"github.com/databricks/databricks-sql-go/driverctx"
	"github.com/jonboulle/clockwork"

	"github.com/artie-labs/brickbyte/clients/databricks/dialect"
	"github.com/artie-labs/brickbyte/lib/config/constants"
	"github.com/artie-labs/brickbyte/lib/db"
	"github.com/artie-labs/brickbyte/lib/jsonlwriter"
	"github.com/artie-labs/brickbyte/models"
)

type stagedRow struct {
	ID        string `json:"_airbyte_ab_id"`
	EmittedAt string `json:"_airbyte_emitted_at"`
	Data      string `json:"_airbyte_data"`
}

// StagedFlusher writes each stream to a local file, uploads it with PUT and loads it with COPY INTO.
// The three statements are not atomic, a failure after PUT can leave the staged file behind.
type StagedFlusher struct {
	opener            db.Opener
	stagingVolumePath string
	localDir          string
	dialect           dialect.DatabricksDialect
	clock             clockwork.Clock
}

func NewStagedFlusher(opener db.Opener, stagingVolumePath, localDir string) (StagedFlusher, error) {
	if stagingVolumePath == "" {
		return StagedFlusher{}, fmt.Errorf("stagingVolumePath is required for the %q write strategy", constants.Staged)
	}

	if localDir == "" {
		return StagedFlusher{}, fmt.Errorf("localStagingDir is required for the %q write strategy", constants.Staged)
	}

	return StagedFlusher{
		opener:            opener,
		stagingVolumePath: stagingVolumePath,
		localDir:          localDir,
		clock:             clockwork.NewRealClock(),
	}, nil
}

func (StagedFlusher) Strategy() constants.WriteStrategy {
	return constants.Staged
}

func (s StagedFlusher) Flush(ctx context.Context, buffer *models.Buffer) error {
	if buffer.Empty() {
		return nil
	}

	// PUT may only read files from the allow-listed local directories.
	ctx = driverctx.NewContextWithStagingInfo(ctx, []string{s.localDir})
	return db.WithHandle(ctx, s.opener, func(handle db.Handle) error {
		for _, stream := range buffer.Streams() {
			if err := s.loadStream(ctx, handle, stream, buffer.Records(stream)); err != nil {
				return err
			}

			buffer.Clear(stream)
		}

		return nil
	})
}

func (s StagedFlusher) loadStream(ctx context.Context, handle db.Handle, stream string, records []models.Record) error {
	localPath, size, err := s.writeStagingFile(stream, records)
	if err != nil {
		return fmt.Errorf("failed to write staging file for stream %q: %w", stream, err)
	}

	defer func() {
		// Delete the local file even when PUT or COPY fails.
		if removeErr := os.Remove(localPath); removeErr != nil {
			slog.Warn("Failed to delete staging file", slog.Any("err", removeErr), slog.String("filePath", localPath))
		}
	}()

	file := NewStagedFile(s.stagingVolumePath, stream, NewBatchID(s.clock.Now()))
	if _, err = handle.ExecContext(ctx, s.dialect.BuildPutQuery(localPath, file.Path())); err != nil {
		return fmt.Errorf("failed to upload %q to %q: %w", localPath, file.Path(), err)
	}

	if _, err = handle.ExecContext(ctx, s.dialect.BuildCopyIntoQuery(stream, file.Path())); err != nil {
		return fmt.Errorf("failed to copy %q into %q: %w", file.Path(), s.dialect.RawTableName(stream), err)
	}

	if _, err = handle.ExecContext(ctx, s.dialect.BuildRemoveQuery(file.Path())); err != nil {
		return fmt.Errorf("failed to remove staged file %q: %w", file.Path(), err)
	}

	slog.Debug("Loaded staged batch",
		slog.String("stream", stream),
		slog.String("batchID", file.BatchID()),
		slog.String("file", file.DBFSPath()),
		slog.Int("rows", len(records)),
		slog.String("size", size.HumanReadable()),
	)
	return nil
}

// writeStagingFile writes [records] into a new file that only holds rows for [stream] and returns its path.
// The file is deleted if anything goes wrong.
func (s StagedFlusher) writeStagingFile(stream string, records []models.Record) (_ string, _ datasize.ByteSize, err error) {
	writer, err := jsonlwriter.NewWriter(s.localDir, constants.RawTablePrefix+stream+"_*.jsonl")
	if err != nil {
		return "", 0, err
	}

	closed := false
	defer func() {
		if err == nil {
			return
		}

		if !closed {
			_ = writer.Close()
		}

		if removeErr := os.Remove(writer.FilePath()); removeErr != nil {
			slog.Warn("Failed to delete staging file", slog.Any("err", removeErr), slog.String("filePath", writer.FilePath()))
		}
	}()

	for _, record := range records {
		row := stagedRow{
			ID:        record.ID(),
			EmittedAt: dialect.FormatTimestamp(record.EmittedAt()),
			Data:      record.Payload(),
		}

		if err = writer.Write(row); err != nil {
			return "", 0, err
		}
	}

	closed = true
	if err = writer.Close(); err != nil {
		return "", 0, fmt.Errorf("failed to close %q: %w", writer.FilePath(), err)
	}

	return writer.FilePath(), writer.Size(), nil
}
