package compiler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/najia/pkg/domain"
	"github.com/aretw0/najia/pkg/hexagram"
	"github.com/aretw0/najia/pkg/ports"
	"github.com/aretw0/najia/pkg/timing"
)

// ErrNoCalendar is returned when a date is given but no calendar was configured.
var ErrNoCalendar = errors.New("no calendar configured")

// Compiler turns a cast into a fully derived hexagram.
// It holds no mutable state and is safe for concurrent use.
type Compiler struct {
	calendar   ports.Calendar
	commentary ports.Commentary
	logger     *slog.Logger
	now        func() time.Time
	location   *time.Location
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithCalendar sets the calendar used to resolve dates.
func WithCalendar(cal ports.Calendar) Option {
	return func(c *Compiler) {
		c.calendar = cal
	}
}

// WithCommentary sets the commentary source consulted on request.
func WithCommentary(src ports.Commentary) Option {
	return func(c *Compiler) {
		c.commentary = src
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Compiler) {
		c.logger = logger
	}
}

// WithClock overrides the source of "today" for the main hexagram's spirits.
func WithClock(now func() time.Time) Option {
	return func(c *Compiler) {
		c.now = now
	}
}

// WithLocation sets the zone dates without an offset are read in (default: local).
func WithLocation(loc *time.Location) Option {
	return func(c *Compiler) {
		c.location = loc
	}
}

// New creates a compiler. Without a calendar, dates are rejected and the
// main spirits stay empty unless an explicit day is given.
func New(opts ...Option) *Compiler {
	c := &Compiler{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.location == nil {
		c.location = time.Local
	}
	return c
}

// moment is the calendar context a compilation runs under.
type moment struct {
	month    domain.Optional[domain.Branch]
	day      domain.Optional[string]
	solar    string
	year     string
	hour     string
	annotate bool
}

// Compile validates the lines and derives every property of the hexagram.
// Line errors are *domain.LineError; nothing else is evaluated after one.
func (c *Compiler) Compile(ctx context.Context, req domain.Request) (domain.Hexagram, error) {
	lines, err := domain.NewLines(req.Lines)
	if err != nil {
		return domain.Hexagram{}, err
	}

	m, err := c.resolve(ctx, req)
	if err != nil {
		return domain.Hexagram{}, err
	}

	p := lines.Pattern()
	palace := hexagram.PalaceOf(p)
	najia := hexagram.Najia(p)
	relatives := hexagram.Relatives(p, palace)

	h := domain.Hexagram{
		Lines:       lines,
		Pattern:     p,
		Name:        hexagram.Name(p),
		Palace:      palace,
		World:       hexagram.World(p),
		Najia:       najia,
		Relatives:   relatives,
		Labels:      hexagram.Labels(p),
		Spirits:     c.spirits(ctx, m),
		Moving:      lines.Moving(),
		Kind:        hexagram.KindOf(p),
		Hidden:      hexagram.Hidden(palace, relatives),
		Transformed: hexagram.Transform(lines, palace),
		Solar:       m.solar,
		YearPillar:  m.year,
		HourPillar:  m.hour,
		Title:       req.Title,
		Gender:      req.Gender,
	}
	if b, ok := m.month.Get(); ok {
		h.MonthBranch = b.String()
	}
	h.DayPillar = m.day.OrZero()

	if m.annotate {
		h.Time = domain.Some(timing.Annotate(najia, m.month, m.day))
	}

	if req.Commentary {
		text, err := c.lookup(ctx, h.Name)
		if err != nil {
			return domain.Hexagram{}, err
		}
		h.Commentary = text
	}

	c.logger.DebugContext(ctx, "hexagram compiled",
		"pattern", string(p),
		"name", h.Name,
		"palace", string(palace),
		"moving", len(h.Moving),
	)
	return h, nil
}

// resolve picks the calendar context: a date wins over an explicit month/day.
func (c *Compiler) resolve(ctx context.Context, req domain.Request) (moment, error) {
	if req.Date != "" {
		t, err := ParseDate(req.Date, c.location)
		if err != nil {
			return moment{}, err
		}
		mo, err := c.at(ctx, t)
		if err != nil {
			return moment{}, err
		}
		return moment{
			month:    domain.Some(mo.MonthBranch),
			day:      domain.Some(mo.Day.String()),
			solar:    req.Date,
			year:     mo.Year,
			hour:     mo.Hour,
			annotate: true,
		}, nil
	}

	if req.Month == "" && req.Day == "" {
		return moment{}, nil
	}

	m := moment{annotate: true}
	if req.Month != "" {
		if b, ok := domain.ParseMonth(req.Month); ok {
			m.month = domain.Some(b)
		} else {
			c.logger.WarnContext(ctx, "unrecognized month ignored", "month", req.Month)
		}
	}
	if req.Day != "" {
		m.day = domain.Some(req.Day)
	}
	return m, nil
}

func (c *Compiler) at(ctx context.Context, t time.Time) (domain.Moment, error) {
	if c.calendar == nil {
		return domain.Moment{}, ErrNoCalendar
	}
	mo, err := c.calendar.Resolve(ctx, t)
	if err != nil {
		return domain.Moment{}, fmt.Errorf("failed to resolve %s: %w", t.Format(time.DateOnly), err)
	}
	return mo, nil
}

// spirits follow the stem of the resolved day, or of today when no day is known.
func (c *Compiler) spirits(ctx context.Context, m moment) [6]domain.Spirit {
	day, ok := m.day.Get()
	if !ok {
		if c.calendar == nil {
			return [6]domain.Spirit{}
		}
		mo, err := c.at(ctx, c.now().In(c.location))
		if err != nil {
			c.logger.WarnContext(ctx, "today's pillar unavailable, spirits left empty", "err", err)
			return [6]domain.Spirit{}
		}
		day = mo.Day.String()
	}

	stem, ok := timing.DayStem(day)
	if !ok {
		return [6]domain.Spirit{}
	}
	return hexagram.Spirits(stem)
}

func (c *Compiler) lookup(ctx context.Context, name string) (domain.Optional[domain.Text], error) {
	if c.commentary == nil {
		return domain.None[domain.Text](), nil
	}
	text, ok, err := c.commentary.Lookup(ctx, name)
	if err != nil {
		return domain.None[domain.Text](), fmt.Errorf("failed to look up commentary for %s: %w", name, err)
	}
	if !ok {
		c.logger.DebugContext(ctx, "no commentary", "name", name)
		return domain.None[domain.Text](), nil
	}
	return domain.Some(text), nil
}
