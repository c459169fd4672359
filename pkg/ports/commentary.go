package ports

import (
	"context"

	"github.com/aretw0/najia/pkg/domain"
)

// Commentary is the source of the classical text for each hexagram.
// Implementations must be safe for concurrent use.
type Commentary interface {
	// Lookup returns the text for the hexagram name (e.g. 地山谦).
	// A missing entry is reported by ok == false, not by an error.
	Lookup(ctx context.Context, name string) (text domain.Text, ok bool, err error)
}
