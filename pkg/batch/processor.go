package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/aretw0/najia/pkg/domain"
)

// Defaults applied by NewProcessor.
const (
	DefaultMaxWorkers = 4
	DefaultTimeout    = 30 * time.Second
)

// ErrEmptyBatch is returned when there is nothing to process.
var ErrEmptyBatch = errors.New("empty batch")

// Compiler is the single-cast operation a Processor fans out.
type Compiler interface {
	Compile(ctx context.Context, req domain.Request) (domain.Hexagram, error)
}

// Item is the outcome of one request, at the request's input position.
type Item struct {
	Index  int              `json:"index"`
	Result *domain.Hexagram `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// Result is the outcome of a whole batch.
type Result struct {
	ID           string        `json:"id"`
	Items        []Item        `json:"items"`
	SuccessCount int           `json:"success_count"`
	ErrorCount   int           `json:"error_count"`
	Errors       []string      `json:"errors"`
	Duration     time.Duration `json:"-"`
	// ProcessingTime is Duration in seconds.
	ProcessingTime float64 `json:"processing_time"`
}

// Hexagrams returns the successful results in input order.
func (r Result) Hexagrams() []domain.Hexagram {
	out := make([]domain.Hexagram, 0, r.SuccessCount)
	for _, it := range r.Items {
		if it.Result != nil {
			out = append(out, *it.Result)
		}
	}
	return out
}

// Processor compiles batches of requests.
type Processor struct {
	compiler   Compiler
	maxWorkers int
	timeout    time.Duration
	metrics    *Metrics
	logger     *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithMaxWorkers bounds the number of concurrent compilations.
func WithMaxWorkers(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.maxWorkers = n
		}
	}
}

// WithTimeout sets the deadline of each single compilation.
func WithTimeout(d time.Duration) Option {
	return func(p *Processor) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithMetrics records every compilation on m.
func WithMetrics(m *Metrics) Option {
	return func(p *Processor) {
		p.metrics = m
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = l
	}
}

// NewProcessor creates a Processor over c.
func NewProcessor(c Compiler, opts ...Option) *Processor {
	p := &Processor{
		compiler:   c,
		maxWorkers: DefaultMaxWorkers,
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p
}

// Process compiles reqs concurrently. The returned error is only set when
// the batch is empty or ctx ended before every request was handled.
func (p *Processor) Process(ctx context.Context, reqs []domain.Request) (Result, error) {
	if len(reqs) == 0 {
		return p.empty(), ErrEmptyBatch
	}
	start := time.Now()
	items := make([]Item, len(reqs))

	var g errgroup.Group
	g.SetLimit(p.maxWorkers)
	for i, req := range reqs {
		g.Go(func() error {
			items[i] = p.run(ctx, i, req)
			return nil
		})
	}
	_ = g.Wait()

	return p.collect(items, start), ctx.Err()
}

// ProcessSequential compiles reqs one after another, in order.
func (p *Processor) ProcessSequential(ctx context.Context, reqs []domain.Request) (Result, error) {
	if len(reqs) == 0 {
		return p.empty(), ErrEmptyBatch
	}
	start := time.Now()
	items := make([]Item, len(reqs))
	for i, req := range reqs {
		items[i] = p.run(ctx, i, req)
	}
	return p.collect(items, start), ctx.Err()
}

func (p *Processor) run(ctx context.Context, i int, req domain.Request) Item {
	started := time.Now()
	h, err := p.compileOne(ctx, req)
	p.metrics.Observe(err, time.Since(started))

	if err != nil {
		p.logger.ErrorContext(ctx, "compile failed", "index", i, "lines", req.Lines, "error", err)
		return Item{Index: i, Error: fmt.Sprintf("item %d %v: %v", i, req.Lines, err)}
	}
	return Item{Index: i, Result: &h}
}

// compileOne enforces the per-item deadline even on compilers that ignore ctx.
func (p *Processor) compileOne(ctx context.Context, req domain.Request) (domain.Hexagram, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	type reply struct {
		h   domain.Hexagram
		err error
	}
	done := make(chan reply, 1)
	go func() {
		h, err := p.compiler.Compile(ctx, req)
		done <- reply{h, err}
	}()

	select {
	case o := <-done:
		return o.h, o.err
	case <-ctx.Done():
		return domain.Hexagram{}, fmt.Errorf("compile aborted after %s: %w", p.timeout, ctx.Err())
	}
}

func (p *Processor) collect(items []Item, start time.Time) Result {
	res := Result{
		ID:     uuid.NewString(),
		Items:  items,
		Errors: []string{},
	}
	for _, it := range items {
		if it.Error != "" {
			res.ErrorCount++
			res.Errors = append(res.Errors, it.Error)
			continue
		}
		res.SuccessCount++
	}
	res.Duration = time.Since(start)
	res.ProcessingTime = res.Duration.Seconds()
	p.metrics.observeBatch(len(items))

	p.logger.Info("batch processed",
		"batch_id", res.ID,
		"size", len(items),
		"ok", res.SuccessCount,
		"failed", res.ErrorCount,
		"duration", res.Duration,
	)
	return res
}

func (p *Processor) empty() Result {
	return Result{
		ID:     uuid.NewString(),
		Items:  []Item{},
		Errors: []string{ErrEmptyBatch.Error()},
	}
}
