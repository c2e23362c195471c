package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const DEVELOPMENT_ENV = "development"

var traceContext = propagation.TraceContext{}

// InitLogger replaces the global logger. Development gets human-readable
// console output; every other env writes JSON lines. An unknown level keeps
// info.
func InitLogger(serviceName, env, level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	ctx := zerolog.New(output(env)).With().Timestamp().Str("service", serviceName)
	if env != DEVELOPMENT_ENV {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()
}

func output(env string) io.Writer {
	if env == DEVELOPMENT_ENV {
		return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return os.Stdout
}

// ExtractTraceContext returns ctx carrying the remote span from a W3C
// traceparent header, when the request has one.
func ExtractTraceContext(ctx context.Context, header http.Header) context.Context {
	return traceContext.Extract(ctx, propagation.HeaderCarrier(header))
}

// LoggerFromContext returns the global logger tagged with component, plus
// trace_id and span_id when ctx carries a valid span.
func LoggerFromContext(ctx context.Context, component string) *zerolog.Logger {
	fields := log.With().Str("component", component)
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		fields = fields.
			Str("trace_id", sc.TraceID().String()).
			Str("span_id", sc.SpanID().String())
	}
	l := fields.Logger()
	return &l
}
