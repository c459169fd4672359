package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/aretw0/najia/pkg/domain"
)

// ErrDateNotFound is returned by a Calendar without an entry or fallback for a date.
var ErrDateNotFound = errors.New("date not in calendar")

const dayLayout = "2006-01-02"

// Calendar implements ports.Calendar with a fixed table of days.
// Safe for concurrent use.
type Calendar struct {
	mu       sync.RWMutex
	days     map[string]domain.Moment
	fallback domain.Optional[domain.Moment]
}

// NewCalendar creates a calendar that answers every date with m
// unless a specific day was registered with Set.
func NewCalendar(m domain.Moment) *Calendar {
	return &Calendar{
		days:     make(map[string]domain.Moment),
		fallback: domain.Some(m),
	}
}

// NewStrictCalendar creates a calendar that only knows the days registered with Set.
func NewStrictCalendar() *Calendar {
	return &Calendar{days: make(map[string]domain.Moment)}
}

// Set registers the moment of a solar day ("2006-01-02").
func (c *Calendar) Set(day string, m domain.Moment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.days[day] = m
}

// Resolve returns the registered moment of t's day, or the fallback.
func (c *Calendar) Resolve(ctx context.Context, t time.Time) (domain.Moment, error) {
	if err := ctx.Err(); err != nil {
		return domain.Moment{}, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if m, ok := c.days[t.Format(dayLayout)]; ok {
		return m, nil
	}
	if m, ok := c.fallback.Get(); ok {
		return m, nil
	}
	return domain.Moment{}, ErrDateNotFound
}
