package consumer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/artie-labs/brickbyte/lib/airbyte"
	"github.com/artie-labs/brickbyte/lib/config/constants"
	"github.com/artie-labs/brickbyte/lib/telemetry/metrics/base"
)

// maxLineSize is the longest message we will read from the source.
const maxLineSize = 64 * 1024 * 1024

type Writer interface {
	Enqueue(ctx context.Context, stream, id string, emittedAt time.Time, payload string) error
	Drain(ctx context.Context) error
	CreateTable(ctx context.Context, stream string) error
	DropTable(ctx context.Context, stream string) error
}

// Consumer reads Airbyte messages and feeds records into a [Writer].
type Consumer struct {
	writer        Writer
	out           io.Writer
	metricsClient base.Client
	// prepared tracks the streams whose raw table is known to exist.
	prepared map[string]bool
	newID    func() string
}

func NewConsumer(writer Writer, out io.Writer, metricsClient base.Client) *Consumer {
	return &Consumer{
		writer:        writer,
		out:           out,
		metricsClient: metricsClient,
		prepared:      make(map[string]bool),
		newID:         uuid.NewString,
	}
}

// PrepareCatalog creates the raw table of every configured stream, overwrite streams are dropped first.
func (c *Consumer) PrepareCatalog(ctx context.Context, catalog airbyte.ConfiguredCatalog) error {
	for _, stream := range catalog.Streams {
		name := stream.Stream.Name
		if stream.DestinationSyncMode == constants.Overwrite {
			slog.Info("Dropping raw table before overwriting it", slog.String("stream", name))
			if err := c.writer.DropTable(ctx, name); err != nil {
				return fmt.Errorf("failed to drop table for stream %q: %w", name, err)
			}
		}

		if err := c.writer.CreateTable(ctx, name); err != nil {
			return fmt.Errorf("failed to create table for stream %q: %w", name, err)
		}

		c.prepared[name] = true
	}

	return nil
}

// PrepareCatalogFile loads the configured catalog at [path] and prepares its streams, it is a no-op without a path.
func (c *Consumer) PrepareCatalogFile(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}

	catalog, err := airbyte.LoadCatalog(path)
	if err != nil {
		return err
	}

	return c.PrepareCatalog(ctx, catalog)
}

// Run processes every message from [in] and drains the writer once [in] is exhausted.
func (c *Consumer) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("stopped reading messages: %w", err)
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		if err := c.process(ctx, line); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read messages: %w", err)
	}

	if err := c.writer.Drain(ctx); err != nil {
		return fmt.Errorf("failed to drain at the end of the stream: %w", err)
	}

	return nil
}

func (c *Consumer) process(ctx context.Context, line []byte) error {
	tags := map[string]string{"what": "success"}
	defer func() {
		c.metricsClient.Incr("process.message", tags)
	}()

	msg, err := airbyte.ParseMessage(line)
	if err != nil {
		tags["what"] = "parse_fail"
		return err
	}

	tags["type"] = string(msg.Type)
	switch msg.Type {
	case airbyte.Record:
		if err = c.processRecord(ctx, *msg.Record); err != nil {
			tags["what"] = "record_fail"
			return err
		}
	case airbyte.State:
		// A state is only acknowledged once everything before it has been persisted.
		if err = c.writer.Drain(ctx); err != nil {
			tags["what"] = "drain_fail"
			return fmt.Errorf("failed to drain before emitting state: %w", err)
		}

		if _, err = fmt.Fprintf(c.out, "%s\n", line); err != nil {
			tags["what"] = "emit_fail"
			return fmt.Errorf("failed to emit state: %w", err)
		}
	default:
		slog.Debug("Skipping message", msg.LogFields()...)
	}

	return nil
}

func (c *Consumer) processRecord(ctx context.Context, record airbyte.RecordMessage) error {
	if !c.prepared[record.Stream] {
		if err := c.writer.CreateTable(ctx, record.Stream); err != nil {
			return fmt.Errorf("failed to create table for stream %q: %w", record.Stream, err)
		}

		c.prepared[record.Stream] = true
	}

	return c.writer.Enqueue(ctx, record.Stream, c.newID(), record.EmittedAtTime(), string(record.Data))
}
