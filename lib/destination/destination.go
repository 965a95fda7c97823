package destination

import (
	"context"

	"github.com/artie-labs/brickbyte/lib/config/constants"
	"github.com/artie-labs/brickbyte/models"
)

// Flusher is a write strategy.
type Flusher interface {
	Strategy() constants.WriteStrategy
	// Flush persists the pending records of every stream in [buffer] and clears each stream once it has been persisted.
	// An empty buffer is a no-op. Streams that fail are left in the buffer.
	Flush(ctx context.Context, buffer *models.Buffer) error
}

// TableManager creates and drops the raw table backing a stream.
type TableManager interface {
	CreateTable(ctx context.Context, stream string) error
	DropTable(ctx context.Context, stream string) error
}
