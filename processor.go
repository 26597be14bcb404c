package leptjson

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cybergodev/leptjson/internal"
)

// Processor parses JSON values with limits, logging and metrics.
// It is safe for concurrent use.
type Processor struct {
	id          string
	config      *Config
	state       int32 // 0=active, 1=closed
	cleanupOnce sync.Once
	metrics     *internal.MetricsCollector
	errorCount  int64
	logger      *slog.Logger
}

// Result is the outcome of parsing one input of a batch
type Result struct {
	Index  int
	Value  Value
	Status ParseStatus
	Err    error
}

// Stats is a snapshot of processor counters
type Stats struct {
	ProcessorID    string                 `json:"processor_id"`
	OperationCount int64                  `json:"operation_count"`
	ErrorCount     int64                  `json:"error_count"`
	StatusCounts   map[string]int64       `json:"status_counts"`
	AvgParseTime   time.Duration          `json:"avg_parse_time"`
	MaxParseTime   time.Duration          `json:"max_parse_time"`
	IsClosed       bool                   `json:"is_closed"`
	Limits         map[string]interface{} `json:"limits"`
}

// New creates a new processor with the given configuration.
// If no configuration is provided, uses default configuration.
func New(config ...*Config) *Processor {
	var cfg *Config
	if len(config) > 0 && config[0] != nil {
		cfg = config[0]
	} else {
		cfg = DefaultConfig()
	}

	if err := ValidateConfig(cfg); err != nil {
		panic(fmt.Sprintf("invalid configuration: %v", err))
	}

	id := uuid.New().String()
	return &Processor{
		id:      id,
		config:  cfg,
		metrics: internal.NewMetricsCollector(),
		logger:  slog.Default().With("component", "leptjson-processor"),
	}
}

// SetLogger sets a custom structured logger for the processor
func (p *Processor) SetLogger(logger *slog.Logger) {
	if logger != nil {
		p.logger = logger.With("component", "leptjson-processor")
	} else {
		p.logger = slog.Default().With("component", "leptjson-processor")
	}
}

// ID returns the unique identifier of this processor
func (p *Processor) ID() string {
	return p.id
}

// Parse parses text into a Value. A failed parse returns a null Value and a
// *ParseError wrapping the sentinel error for its status.
func (p *Processor) Parse(ctx context.Context, text string) (Value, error) {
	if err := p.checkClosed(); err != nil {
		return NullValue(), err
	}
	if err := ctx.Err(); err != nil {
		return NullValue(), newContextError("parse", err)
	}
	if limit := p.config.MaxInputSize; int64(len(text)) > limit {
		err := newSizeLimitError("parse", int64(len(text)), limit)
		p.recordError(ctx, err, len(text))
		return NullValue(), err
	}

	start := time.Now()
	var v Value
	status, offset := parse(&v, text)
	duration := time.Since(start)

	if p.config.EnableMetrics {
		p.metrics.RecordParse(status.String(), duration, status == StatusOK)
	}
	p.logOperation(ctx, status, len(text), duration)

	if status != StatusOK {
		err := newStatusError("parse", status, offset)
		p.recordError(ctx, err, len(text))
		return v, err
	}
	return v, nil
}

// ParseBatch parses every input concurrently, at most MaxConcurrency at a time.
// Results are in input order and each Status matches its Err. Inputs above
// MaxInputSize reject the whole batch. When the processor is closed or ctx is
// done the results are nil; a deadline is reported as ErrOperationTimeout.
func (p *Processor) ParseBatch(ctx context.Context, texts []string) ([]Result, error) {
	if err := p.checkClosed(); err != nil {
		return nil, err
	}
	for i, text := range texts {
		if limit := p.config.MaxInputSize; int64(len(text)) > limit {
			return nil, newOperationError("parse_batch", fmt.Sprintf("input %d too large", i),
				newSizeLimitError("parse", int64(len(text)), limit))
		}
	}

	results := make([]Result, len(texts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.config.MaxConcurrency)

	for i, text := range texts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p.metrics.StartConcurrentOperation()
			defer p.metrics.EndConcurrentOperation()

			v, err := p.Parse(gctx, text)
			status, ok := StatusOf(err)
			if !ok {
				// closed or cancelled mid-batch
				return err
			}
			results[i] = Result{Index: i, Value: v, Status: status, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, newContextError("parse_batch", ctxErr)
		}
		return nil, newOperationError("parse_batch", "batch interrupted", err)
	}
	return results, nil
}

// Stats returns a snapshot of the processor counters
func (p *Processor) Stats() Stats {
	m := p.metrics.GetMetrics()
	return Stats{
		ProcessorID:    p.id,
		OperationCount: m.TotalOperations,
		ErrorCount:     atomic.LoadInt64(&p.errorCount),
		StatusCounts:   m.ResultsByKind,
		AvgParseTime:   m.AvgProcessingTime,
		MaxParseTime:   m.MaxProcessingTime,
		IsClosed:       p.IsClosed(),
		Limits: map[string]interface{}{
			"max_input_size":  p.config.MaxInputSize,
			"max_concurrency": p.config.MaxConcurrency,
		},
	}
}

// MetricsSummary returns a human readable metrics summary
func (p *Processor) MetricsSummary() string {
	return p.metrics.GetSummary()
}

// Close releases the processor. Further calls fail with ErrProcessorClosed.
func (p *Processor) Close() error {
	p.cleanupOnce.Do(func() {
		atomic.StoreInt32(&p.state, 1)
		p.logger.Debug("processor closed",
			slog.String("processor_id", p.id),
			slog.Int64("operations", p.metrics.GetMetrics().TotalOperations),
		)
	})
	return nil
}

// IsClosed returns true if the processor has been closed
func (p *Processor) IsClosed() bool {
	return atomic.LoadInt32(&p.state) == 1
}

// checkClosed returns an error if the processor is closed
func (p *Processor) checkClosed() error {
	if p.IsClosed() {
		return newOperationError("check_closed", "processor is closed", ErrProcessorClosed)
	}
	return nil
}
