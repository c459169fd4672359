package ports

import (
	"context"
	"time"

	"github.com/aretw0/najia/pkg/domain"
)

// Calendar maps a solar instant to the lunar facts the compiler needs.
// Implementations must be safe for concurrent use.
type Calendar interface {
	// Resolve returns the month branch and the day pillar of t.
	Resolve(ctx context.Context, t time.Time) (domain.Moment, error)
}
