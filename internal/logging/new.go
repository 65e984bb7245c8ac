package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported backends.
const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// Options selects the backend and minimum level for New.
type Options struct {
	Backend string
	Level   string
	Output  io.Writer
}

// New builds a Logger for opts. The returned function flushes the backend and
// should be called before the process exits.
func New(opts Options) (Logger, func(), error) {
	switch opts.Backend {
	case BackendSlog, "":
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, nil, fmt.Errorf("log level %q: %w", opts.Level, err)
		}
		h := slog.NewTextHandler(opts.Output, &slog.HandlerOptions{Level: lvl})
		return NewSlogLogger(slog.New(h)), func() {}, nil

	case BackendZap:
		lvl, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("log level %q: %w", opts.Level, err)
		}
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(opts.Output),
			lvl,
		)
		zl := NewZapLogger(zap.New(core))
		return zl, func() { _ = zl.Sync() }, nil
	}

	return nil, nil, fmt.Errorf("unknown log backend %q", opts.Backend)
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type ctxKey struct{}

// WithContext stores l in ctx.
func WithContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the Logger stored in ctx, or fallback when there is none.
func FromContext(ctx context.Context, fallback Logger) Logger {
	if l, ok := ctx.Value(ctxKey{}).(Logger); ok {
		return l
	}
	return fallback
}
