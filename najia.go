package najia

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/najia/internal/compiler"
	"github.com/aretw0/najia/pkg/adapters/lunar"
	"github.com/aretw0/najia/pkg/domain"
	"github.com/aretw0/najia/pkg/hexagram"
	"github.com/aretw0/najia/pkg/ports"
)

// Engine is the high-level entry point for the Najia library.
// It wraps the internal compiler and provides a simplified API for consumers.
type Engine struct {
	compiler    *compiler.Compiler
	calendar    ports.Calendar
	calendarSet bool
	commentary  ports.Commentary
	logger      *slog.Logger
	now         func() time.Time
	location    *time.Location
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithCalendar replaces the default lunar-go calendar.
// Passing nil disables date resolution entirely.
func WithCalendar(cal ports.Calendar) Option {
	return func(e *Engine) {
		e.calendar = cal
		e.calendarSet = true
	}
}

// WithCommentary enables commentary lookups on requests that ask for them.
func WithCommentary(src ports.Commentary) Option {
	return func(e *Engine) {
		e.commentary = src
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithClock overrides the clock deciding "today" for the spirits of
// casts that carry no day.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithLocation sets the zone naive dates are read in (default: local time).
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		e.location = loc
	}
}

// New initializes a new Najia Engine.
// By default it resolves dates with the lunar-go calendar and logs nothing.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if !eng.calendarSet {
		eng.calendar = lunar.New()
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	copts := []compiler.Option{
		compiler.WithLogger(eng.logger),
		compiler.WithClock(eng.now),
		compiler.WithLocation(eng.location),
	}
	if eng.calendar != nil {
		copts = append(copts, compiler.WithCalendar(eng.calendar))
	}
	if eng.commentary != nil {
		copts = append(copts, compiler.WithCommentary(eng.commentary))
	}
	eng.compiler = compiler.New(copts...)

	return eng
}

// Compile validates the request and derives the full hexagram.
// Invalid lines return a *domain.LineError (errors.Is domain.ErrInvalidLines).
func (e *Engine) Compile(ctx context.Context, req domain.Request) (domain.Hexagram, error) {
	return e.compiler.Compile(ctx, req)
}

// Cast is Compile for bare line values, without calendar context.
func (e *Engine) Cast(ctx context.Context, lines ...int) (domain.Hexagram, error) {
	return e.compiler.Compile(ctx, domain.Request{Lines: lines})
}

// Describe returns the static facts of a pattern such as "001000".
func (e *Engine) Describe(p domain.Pattern) (hexagram.Entry, bool) {
	return hexagram.Describe(p)
}

// Lookup finds a hexagram by its full name (地山谦).
func (e *Engine) Lookup(name string) (hexagram.Entry, bool) {
	p, ok := hexagram.Lookup(name)
	if !ok {
		return hexagram.Entry{}, false
	}
	return hexagram.Describe(p)
}

// Table returns the 64 hexagrams in canonical palace order.
func (e *Engine) Table() []hexagram.Entry {
	return hexagram.Table()
}

// Logger returns the engine's logger.
func (e *Engine) Logger() *slog.Logger {
	return e.logger
}
