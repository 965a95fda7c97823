package destination

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/artie-labs/brickbyte/lib/config/constants"
	"github.com/artie-labs/brickbyte/lib/telemetry/metrics/base"
	"github.com/artie-labs/brickbyte/models"
)

type flushReason string

const (
	threshold flushReason = "threshold"
	drain     flushReason = "drain"
)

// Writer buffers records per stream and hands them to a [Flusher].
// A Writer is meant to be used by a single caller, flushes happen inline.
type Writer struct {
	buffer        *models.Buffer
	flusher       Flusher
	tables        TableManager
	flushRows     uint
	metricsClient base.Client
}

func NewWriter(flusher Flusher, tables TableManager, flushRows uint, metricsClient base.Client) (*Writer, error) {
	if flushRows == 0 {
		return nil, fmt.Errorf("flushRows has to be a positive number")
	}

	return &Writer{
		buffer:        models.NewBuffer(),
		flusher:       flusher,
		tables:        tables,
		flushRows:     flushRows,
		metricsClient: metricsClient,
	}, nil
}

func (w *Writer) Pending() uint {
	return w.buffer.Pending()
}

func (w *Writer) FlushRows() uint {
	return w.flushRows
}

func (w *Writer) Strategy() constants.WriteStrategy {
	return w.flusher.Strategy()
}

// Enqueue buffers a record for [stream]. When the number of pending records reaches the flush threshold, the
// buffer is flushed before returning.
func (w *Writer) Enqueue(ctx context.Context, stream, id string, emittedAt time.Time, payload string) error {
	if err := models.ValidateStreamName(stream); err != nil {
		return err
	}

	// This is an exact comparison, a failed flush at the threshold is only retried by [Drain].
	if w.buffer.Append(stream, models.NewRecord(id, emittedAt, payload)) == w.flushRows {
		return w.flush(ctx, threshold)
	}

	return nil
}

// Drain flushes everything that is pending. It is called at the end of the stream.
func (w *Writer) Drain(ctx context.Context) error {
	return w.flush(ctx, drain)
}

func (w *Writer) CreateTable(ctx context.Context, stream string) error {
	if err := models.ValidateStreamName(stream); err != nil {
		return err
	}

	return w.tables.CreateTable(ctx, stream)
}

func (w *Writer) DropTable(ctx context.Context, stream string) error {
	if err := models.ValidateStreamName(stream); err != nil {
		return err
	}

	return w.tables.DropTable(ctx, stream)
}

func (w *Writer) flush(ctx context.Context, reason flushReason) error {
	start := time.Now()
	pendingBefore := w.buffer.Pending()
	tags := map[string]string{
		"what":     "success",
		"strategy": string(w.flusher.Strategy()),
		"reason":   string(reason),
	}

	err := w.flusher.Flush(ctx, w.buffer)
	if err != nil {
		tags["what"] = "flush_fail"
		slog.Warn("Failed to flush, records are kept in memory",
			slog.Any("err", err),
			slog.String("reason", string(reason)),
			slog.Uint64("pending", uint64(w.buffer.Pending())),
		)
	} else if pendingBefore > 0 {
		slog.Info("Flushed records",
			slog.String("reason", string(reason)),
			slog.Uint64("rows", uint64(pendingBefore)),
			slog.Duration("duration", time.Since(start)),
		)
	}

	w.metricsClient.Count("rows", int64(pendingBefore-w.buffer.Pending()), tags)
	w.metricsClient.Timing("flush", time.Since(start), tags)
	// Non-zero after a failed flush since records are kept for the next attempt.
	w.metricsClient.Gauge("pending", float64(w.buffer.Pending()), tags)
	return err
}
