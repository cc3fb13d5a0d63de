// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ServiceName is attached to every log line.
const ServiceName = "food-order-service"

// Options configures the global logger.
type Options struct {
	Level  string
	Pretty bool
	// Output defaults to os.Stderr.
	Output io.Writer
}

// Init initializes the global logger. Unknown levels fall back to info.
func Init(level string, pretty bool) {
	Configure(Options{Level: level, Pretty: pretty})
}

// Configure initializes the global logger from opts.
func Configure(opts Options) {
	zerolog.SetGlobalLevel(ParseLevel(opts.Level))
	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	log.Logger = zerolog.New(out).With().
		Timestamp().
		Str("service", ServiceName).
		Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Logger returns the global logger instance.
func Logger() zerolog.Logger {
	return log.Logger
}

// ForRequest returns a logger tagged with the request and, when known, the session.
func ForRequest(requestID, sessionID string) zerolog.Logger {
	ctx := log.Logger.With().Str("request_id", requestID)
	if sessionID != "" {
		ctx = ctx.Str("session_id", sessionID)
	}
	return ctx.Logger()
}

// WithContext returns a logger with extra fields.
func WithContext(fields map[string]interface{}) zerolog.Logger {
	return log.Logger.With().Fields(fields).Logger()
}
