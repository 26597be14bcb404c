package leptjson

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"
)

// recordError counts a failed operation and logs it
func (p *Processor) recordError(ctx context.Context, err error, inputLen int) {
	atomic.AddInt64(&p.errorCount, 1)

	errorType := "unknown"
	offset := -1
	var perr *ParseError
	if errors.As(err, &perr) {
		offset = perr.Offset
		if perr.Err != nil {
			errorType = perr.Err.Error()
		}
	}
	if p.config.EnableMetrics {
		p.metrics.RecordError(errorType)
	}

	p.logger.LogAttrs(ctx, slog.LevelDebug, "JSON parse failed",
		slog.String("error", err.Error()),
		slog.String("error_type", errorType),
		slog.Int("offset", offset),
		slog.Int("input_length", inputLen),
		slog.Int64("error_count", atomic.LoadInt64(&p.errorCount)),
		slog.String("processor_id", p.id),
	)
}

// logOperation logs a finished parse, as a warning when it was slow
func (p *Processor) logOperation(ctx context.Context, status ParseStatus, inputLen int, duration time.Duration) {
	attrs := []slog.Attr{
		slog.String("status", status.String()),
		slog.Int("input_length", inputLen),
		slog.Int64("duration_us", duration.Microseconds()),
		slog.String("processor_id", p.id),
	}

	if duration > p.config.SlowThreshold {
		attrs = append(attrs, slog.Int64("threshold_ms", p.config.SlowThreshold.Milliseconds()))
		p.logger.LogAttrs(ctx, slog.LevelWarn, "Slow JSON parse detected", attrs...)
		return
	}
	p.logger.LogAttrs(ctx, slog.LevelDebug, "JSON parse completed", attrs...)
}

// NewLogger returns a text logger writing to w at level, with short source file names
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.SourceKey {
				if source, ok := attr.Value.Any().(*slog.Source); ok {
					source.File = filepath.Base(source.File)
				}
			}
			return attr
		},
	}))
}
