package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/najia/pkg/adapters/memory"
	"github.com/aretw0/najia/pkg/domain"
	contract "github.com/aretw0/najia/pkg/ports/tests"
)

func TestCommentary_Contract(t *testing.T) {
	data := map[string]domain.Text{
		"地山谦": {Judgment: "谦：亨，君子有终。"},
		"乾为天": {Name: "乾为天", Judgment: "乾：元亨利贞。"},
	}
	contract.CommentaryContractTest(t, memory.NewCommentary(data), data)
}

func TestCommentary_Isolation(t *testing.T) {
	lines := []string{"初六", "六二"}
	c := memory.NewCommentary(map[string]domain.Text{"地山谦": {Lines: lines}})

	lines[0] = "changed"
	got, ok, err := c.Lookup(context.Background(), "地山谦")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "初六", got.Lines[0])

	got.Lines[1] = "changed"
	again, _, _ := c.Lookup(context.Background(), "地山谦")
	assert.Equal(t, "六二", again.Lines[1])

	assert.Equal(t, []string{"地山谦"}, c.Names())
	assert.Equal(t, 1, c.Len())
}

func TestCalendar_Contract(t *testing.T) {
	cal := memory.NewCalendar(domain.Moment{
		MonthBranch: 3,
		Day:         domain.MustStemBranch("甲子"),
	})
	contract.CalendarContractTest(t, cal)
}

func TestCalendar_Days(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, time.February, 10, 23, 30, 0, 0, time.UTC)

	t.Run("Registered Day Wins Over Fallback", func(t *testing.T) {
		cal := memory.NewCalendar(domain.Moment{Day: domain.MustStemBranch("甲子")})
		cal.Set("2024-02-10", domain.Moment{MonthBranch: 2, Day: domain.MustStemBranch("甲辰")})

		m, err := cal.Resolve(ctx, day)
		require.NoError(t, err)
		assert.Equal(t, "甲辰", m.Day.String())

		m, err = cal.Resolve(ctx, day.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Equal(t, "甲子", m.Day.String())
	})

	t.Run("Strict Calendar Rejects Unknown Days", func(t *testing.T) {
		cal := memory.NewStrictCalendar()
		_, err := cal.Resolve(ctx, day)
		assert.ErrorIs(t, err, memory.ErrDateNotFound)
	})
}
