package batch_test

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/najia/internal/compiler"
	"github.com/aretw0/najia/pkg/batch"
	"github.com/aretw0/najia/pkg/domain"
)

// slowCompiler delays casts whose first line is 9 and tracks concurrency.
type slowCompiler struct {
	inner   *compiler.Compiler
	delay   time.Duration
	active  atomic.Int32
	maxSeen atomic.Int32
}

func (s *slowCompiler) Compile(ctx context.Context, req domain.Request) (domain.Hexagram, error) {
	n := s.active.Add(1)
	defer s.active.Add(-1)
	for {
		m := s.maxSeen.Load()
		if n <= m || s.maxSeen.CompareAndSwap(m, n) {
			break
		}
	}
	if len(req.Lines) > 0 && req.Lines[0] == 9 {
		time.Sleep(s.delay)
	}
	return s.inner.Compile(ctx, req)
}

func requests(casts ...[]int) []domain.Request {
	out := make([]domain.Request, len(casts))
	for i, c := range casts {
		out[i] = domain.Request{Lines: c}
	}
	return out
}

func TestProcess_KeepsOrder(t *testing.T) {
	sc := &slowCompiler{inner: compiler.New(), delay: 20 * time.Millisecond}
	p := batch.NewProcessor(sc, batch.WithMaxWorkers(3))

	reqs := requests(
		[]int{9, 7, 7, 7, 7, 7}, // slow, 乾为天 changing
		[]int{2, 2, 1, 2, 4, 2},
		[]int{8, 8, 8, 8, 8, 8},
		[]int{1, 1, 5, 1, 1, 1},
		[]int{7, 7, 7, 7, 8, 7},
	)

	for name, run := range map[string]func(context.Context, []domain.Request) (batch.Result, error){
		"Concurrent": p.Process,
		"Sequential": p.ProcessSequential,
	} {
		t.Run(name, func(t *testing.T) {
			res, err := run(context.Background(), reqs)
			require.NoError(t, err)

			require.Len(t, res.Items, 5)
			for i, it := range res.Items {
				assert.Equal(t, i, it.Index)
			}
			assert.Equal(t, "乾为天", res.Items[0].Result.Name)
			assert.Equal(t, "地山谦", res.Items[1].Result.Name)
			assert.Equal(t, "坤为地", res.Items[2].Result.Name)
			assert.Nil(t, res.Items[3].Result)
			assert.Contains(t, res.Items[3].Error, "item 3")
			assert.Equal(t, "火天大有", res.Items[4].Result.Name)

			assert.Equal(t, 4, res.SuccessCount)
			assert.Equal(t, 1, res.ErrorCount)
			assert.Len(t, res.Errors, 1)
			assert.Len(t, res.Hexagrams(), 4)

			_, err = uuid.Parse(res.ID)
			assert.NoError(t, err)
			assert.Greater(t, res.ProcessingTime, 0.0)
		})
	}
}

func TestProcess_BoundsWorkers(t *testing.T) {
	sc := &slowCompiler{inner: compiler.New(), delay: 10 * time.Millisecond}
	p := batch.NewProcessor(sc, batch.WithMaxWorkers(2))

	casts := make([][]int, 10)
	for i := range casts {
		casts[i] = []int{9, 8, 7, 8, 7, 8}
	}
	res, err := p.Process(context.Background(), requests(casts...))
	require.NoError(t, err)
	assert.Equal(t, 10, res.SuccessCount)
	assert.LessOrEqual(t, sc.maxSeen.Load(), int32(2))

	sc.maxSeen.Store(0)
	_, err = p.ProcessSequential(context.Background(), requests(casts[:3]...))
	require.NoError(t, err)
	assert.Equal(t, int32(1), sc.maxSeen.Load())
}

func TestProcess_TimeoutOnlyAffectsSlowItems(t *testing.T) {
	sc := &slowCompiler{inner: compiler.New(), delay: 300 * time.Millisecond}
	p := batch.NewProcessor(sc, batch.WithTimeout(50*time.Millisecond))

	res, err := p.Process(context.Background(), requests(
		[]int{7, 7, 7, 7, 7, 7},
		[]int{9, 7, 7, 7, 7, 7},
		[]int{8, 8, 8, 8, 8, 8},
	))
	require.NoError(t, err)

	assert.NotNil(t, res.Items[0].Result)
	assert.Nil(t, res.Items[1].Result)
	assert.Contains(t, res.Items[1].Error, "deadline exceeded")
	assert.NotNil(t, res.Items[2].Result)
	assert.Equal(t, 2, res.SuccessCount)
}

func TestProcess_Empty(t *testing.T) {
	p := batch.NewProcessor(compiler.New())

	res, err := p.Process(context.Background(), nil)
	assert.ErrorIs(t, err, batch.ErrEmptyBatch)
	assert.Equal(t, []string{"empty batch"}, res.Errors)
	assert.Empty(t, res.Items)

	_, err = p.ProcessSequential(context.Background(), []domain.Request{})
	assert.ErrorIs(t, err, batch.ErrEmptyBatch)
}

func TestProcess_CancelledContext(t *testing.T) {
	p := batch.NewProcessor(compiler.New())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := p.Process(ctx, requests([]int{7, 7, 7, 7, 7, 7}))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, res.Items, 1)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := batch.NewMetrics(reg)
	p := batch.NewProcessor(compiler.New(), batch.WithMetrics(m))

	_, err := p.Process(context.Background(), requests(
		[]int{7, 7, 7, 7, 7, 7},
		[]int{2, 2, 1, 2, 4, 2},
		[]int{0, 0, 0, 0, 0, 0},
	))
	require.NoError(t, err)

	expected := `
# HELP najia_compile_total Hexagram compilations by outcome.
# TYPE najia_compile_total counter
najia_compile_total{outcome="invalid"} 1
najia_compile_total{outcome="ok"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "najia_compile_total"))

	count, err := testutil.GatherAndCount(reg, "najia_compile_duration_seconds", "najia_batch_size")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	t.Run("Nil Metrics Are No-Ops", func(t *testing.T) {
		var nilMetrics *batch.Metrics
		assert.NotPanics(t, func() { nilMetrics.Observe(nil, time.Millisecond) })
	})

	t.Run("Double Registration Panics", func(t *testing.T) {
		assert.Panics(t, func() { batch.NewMetrics(reg) })
	})
}
