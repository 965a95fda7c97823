package consumer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/artie-labs/brickbyte/lib/airbyte"
)

type Checker interface {
	Check(ctx context.Context) error
}

// Check reports whether the destination is reachable as a CONNECTION_STATUS message.
// A failed check is not an error, only failing to write the status is.
func Check(ctx context.Context, checker Checker, out io.Writer) error {
	checkErr := checker.Check(ctx)
	if checkErr != nil {
		slog.Warn("Connection check failed", slog.Any("err", checkErr))
	}

	bytes, err := airbyte.NewConnectionStatus(checkErr).Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal connection status: %w", err)
	}

	if _, err = out.Write(append(bytes, '\n')); err != nil {
		return fmt.Errorf("failed to emit connection status: %w", err)
	}

	return nil
}
