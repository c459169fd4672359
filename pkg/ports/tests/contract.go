package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/najia/pkg/domain"
	"github.com/aretw0/najia/pkg/ports"
)

var fixedInstant = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

// CommentaryContractTest is a reusable suite that verifies an adapter complies
// with ports.Commentary. setup holds the entries the adapter was built from.
func CommentaryContractTest(t *testing.T, source ports.Commentary, setup map[string]domain.Text) {
	t.Helper()
	ctx := context.Background()

	t.Run("Lookup Known", func(t *testing.T) {
		for name, want := range setup {
			got, ok, err := source.Lookup(ctx, name)
			require.NoError(t, err, name)
			require.True(t, ok, name)
			assert.Equal(t, want.Judgment, got.Judgment, name)
			assert.Equal(t, name, got.Name)
		}
	})

	t.Run("Lookup Unknown", func(t *testing.T) {
		_, ok, err := source.Lookup(ctx, "non-existent-hexagram")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Lookup Cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, _, err := source.Lookup(cctx, "地山谦")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

// CalendarContractTest verifies the basic guarantees of a ports.Calendar.
func CalendarContractTest(t *testing.T, cal ports.Calendar) {
	t.Helper()
	ctx := context.Background()

	t.Run("Resolve Yields Valid Moment", func(t *testing.T) {
		m, err := cal.Resolve(ctx, fixedInstant)
		require.NoError(t, err)
		assert.True(t, m.MonthBranch.Valid())
		assert.True(t, m.Day.Sexagenary(), "day %s", m.Day)
	})

	t.Run("Resolve Is Deterministic", func(t *testing.T) {
		a, err := cal.Resolve(ctx, fixedInstant)
		require.NoError(t, err)
		b, err := cal.Resolve(ctx, fixedInstant)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("Resolve Cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := cal.Resolve(cctx, fixedInstant)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
