package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// Handle is an executable statement handle. It is acquired for a single unit of work and must be closed by the caller.
type Handle interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	Close() error
}

// Opener hands out fresh statement handles.
type Opener interface {
	Open(ctx context.Context) (Handle, error)
}

type OpenerFunc func(ctx context.Context) (Handle, error)

func (f OpenerFunc) Open(ctx context.Context) (Handle, error) {
	return f(ctx)
}

type connHandle struct {
	conn *sql.Conn
	// db is closed together with the connection when the handle owns it.
	db *sql.DB
}

func (c *connHandle) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	slog.Debug("Executing...", slog.String("query", query))
	return c.conn.ExecContext(ctx, query, args...)
}

func (c *connHandle) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	slog.Debug("Querying...", slog.String("query", query))
	return c.conn.QueryContext(ctx, query, args...)
}

func (c *connHandle) Close() error {
	err := c.conn.Close()
	if c.db != nil {
		err = errors.Join(err, c.db.Close())
	}

	return err
}

// NewHandle reserves a dedicated connection from [db]. When [ownsDB] is true, closing the handle also closes [db].
func NewHandle(ctx context.Context, db *sql.DB, ownsDB bool) (Handle, error) {
	conn, err := db.Conn(ctx)
	if err != nil {
		if ownsDB {
			if closeErr := db.Close(); closeErr != nil {
				slog.Warn("Failed to close the database", slog.Any("err", closeErr))
			}
		}

		return nil, err
	}

	handle := &connHandle{conn: conn}
	if ownsDB {
		handle.db = db
	}

	return handle, nil
}

// WithHandle opens a handle, runs [f] and always closes the handle.
func WithHandle(ctx context.Context, opener Opener, f func(handle Handle) error) (err error) {
	handle, err := opener.Open(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := handle.Close(); closeErr != nil {
			if err == nil {
				err = fmt.Errorf("failed to close statement handle: %w", closeErr)
			} else {
				slog.Warn("Failed to close statement handle", slog.Any("err", closeErr))
			}
		}
	}()

	return f(handle)
}
