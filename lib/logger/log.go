package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"

	"github.com/artie-labs/brickbyte/lib/config"
	"github.com/artie-labs/brickbyte/lib/redact"
)

const sentryFlushTimeout = 2 * time.Second

func newTintHandler(w io.Writer, level slog.Level) slog.Handler {
	noColor := true
	if file, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(file.Fd())
	}

	return tint.NewHandler(w, &tint.Options{Level: level, NoColor: noColor})
}

// NewLogger writes to stderr. stdout is reserved for protocol messages.
func NewLogger(settings *config.Settings) (*slog.Logger, bool) {
	tintLogLevel := slog.LevelInfo
	if settings != nil && settings.VerboseLogging {
		tintLogLevel = slog.LevelDebug
	}

	handler := newTintHandler(os.Stderr, tintLogLevel)

	var loggingToSentry bool
	if settings != nil && settings.Config.Reporting.Sentry != nil && settings.Config.Reporting.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: settings.Config.Reporting.Sentry.DSN}); err != nil {
			slog.New(handler).Warn("Failed to enable Sentry output", slog.Any("err", err))
		} else {
			handler = slogmulti.Fanout(
				handler,
				slogsentry.Option{Level: slog.LevelError, ReplaceAttr: redact.ScrubAttr}.NewSentryHandler(),
			)
			loggingToSentry = true
		}
	}

	return slog.New(handler), loggingToSentry
}

// Flush waits for buffered Sentry events to be delivered. Returns false if the timeout was reached.
func Flush() bool {
	return sentry.Flush(sentryFlushTimeout)
}

// Fatal logs the error and exits. Sentry is flushed first since deferred calls do not run.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	Flush()
	os.Exit(1)
}
