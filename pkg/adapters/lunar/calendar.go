// Package lunar resolves solar dates with the lunar-go calendar.
package lunar

import (
	"context"
	"fmt"
	"time"

	"github.com/6tail/lunar-go/calendar"

	"github.com/aretw0/najia/pkg/domain"
)

// Calendar implements ports.Calendar. The month branch follows the
// solar-term month, the day pillar changes at midnight of t's location.
type Calendar struct{}

// New returns the lunar-go backed calendar.
func New() *Calendar {
	return &Calendar{}
}

// Resolve returns the month branch and day pillar of t, plus the year
// pillar (changing at 立春) and the hour pillar.
func (c *Calendar) Resolve(ctx context.Context, t time.Time) (domain.Moment, error) {
	if err := ctx.Err(); err != nil {
		return domain.Moment{}, err
	}

	l := calendar.NewSolar(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second()).GetLunar()

	month, ok := domain.ParseBranch(l.GetMonthZhi())
	if !ok {
		return domain.Moment{}, fmt.Errorf("%w: unexpected month branch %q for %s", domain.ErrInvalidDate, l.GetMonthZhi(), t.Format(time.DateOnly))
	}
	day, ok := domain.ParseStemBranch(l.GetDayInGanZhi())
	if !ok {
		return domain.Moment{}, fmt.Errorf("%w: unexpected day pillar %q for %s", domain.ErrInvalidDate, l.GetDayInGanZhi(), t.Format(time.DateOnly))
	}

	return domain.Moment{
		MonthBranch: month,
		Day:         day,
		Year:        l.GetYearInGanZhiByLiChun(),
		Hour:        l.GetTimeInGanZhi(),
	}, nil
}
