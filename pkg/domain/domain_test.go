package domain_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/najia/pkg/domain"
)

func TestElements(t *testing.T) {
	for _, e := range domain.Elements {
		parsed, ok := domain.ParseElement(e.String())
		require.True(t, ok)
		assert.Equal(t, e, parsed)
	}
	_, ok := domain.ParseElement("铁")
	assert.False(t, ok)
	assert.Empty(t, domain.Element(7).String())

	t.Run("Each Element Generates And Controls Exactly One", func(t *testing.T) {
		for _, a := range domain.Elements {
			gen, ctl := 0, 0
			for _, b := range domain.Elements {
				if domain.Generates(a, b) {
					gen++
				}
				if domain.Controls(a, b) {
					ctl++
				}
				assert.False(t, domain.Generates(a, b) && domain.Controls(a, b))
			}
			assert.Equal(t, 1, gen, a.String())
			assert.Equal(t, 1, ctl, a.String())
		}
	})

	assert.True(t, domain.Generates(domain.Metal, domain.Water))
	assert.False(t, domain.Generates(domain.Water, domain.Metal))
	assert.True(t, domain.Controls(domain.Water, domain.Fire))
}

func TestStemBranch(t *testing.T) {
	sb, ok := domain.ParseStemBranch("甲子")
	require.True(t, ok)
	assert.Equal(t, domain.Stem(0), sb.Stem)
	assert.Equal(t, domain.Branch(0), sb.Branch)
	assert.Equal(t, "甲子水", sb.Label())
	assert.True(t, sb.Sexagenary())

	assert.Equal(t, "丁卯木", domain.MustStemBranch("丁卯").Label())
	assert.False(t, domain.MustStemBranch("甲丑").Sexagenary())

	for _, bad := range []string{"", "甲", "甲子丑", "子甲", "XX"} {
		_, ok := domain.ParseStemBranch(bad)
		assert.False(t, ok, bad)
	}
	assert.Panics(t, func() { domain.MustStemBranch("bad") })

	t.Run("Text Encoding", func(t *testing.T) {
		data, err := json.Marshal(domain.Moment{MonthBranch: 2, Day: domain.MustStemBranch("乙丑")})
		require.NoError(t, err)
		assert.JSONEq(t, `{"month_branch":"寅","day":"乙丑"}`, string(data))

		var m domain.Moment
		require.NoError(t, json.Unmarshal(data, &m))
		assert.Equal(t, domain.Branch(2), m.MonthBranch)
		assert.Equal(t, "乙丑", m.Day.String())

		var perr *domain.ParseError
		err = json.Unmarshal([]byte(`{"month_branch":"X"}`), &m)
		require.Error(t, err)
		assert.True(t, errors.As(err, &perr))
		assert.Equal(t, "branch", perr.Kind)
	})
}

func TestBranch(t *testing.T) {
	zi, _ := domain.ParseBranch("子")
	assert.Equal(t, "午", zi.Opposite().String())
	assert.Equal(t, "亥", zi.Offset(-1).String())
	assert.Equal(t, "子", zi.Offset(24).String())
	assert.Equal(t, domain.Water, zi.Element())
	assert.Empty(t, domain.Branch(12).String())

	_, ok := domain.ParseBranch("甲")
	assert.False(t, ok)
}

func TestNewLines(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		lines, err := domain.NewLines([]int{2, 2, 1, 2, 4, 2})
		require.NoError(t, err)
		assert.Equal(t, domain.Pattern("001000"), lines.Pattern())
		assert.Equal(t, domain.Pattern("001010"), lines.Changed())
		assert.Equal(t, []int{4}, lines.Moving())
		assert.Equal(t, []int{2, 2, 1, 2, 4, 2}, lines.Ints())
	})

	t.Run("Static Lines Have No Movement", func(t *testing.T) {
		lines, err := domain.NewLines([]int{7, 8, 7, 8, 7, 8})
		require.NoError(t, err)
		assert.NotNil(t, lines.Moving())
		assert.Empty(t, lines.Moving())
		assert.Equal(t, lines.Pattern(), lines.Changed())
	})

	t.Run("Moving Values", func(t *testing.T) {
		lines, err := domain.NewLines([]int{3, 4, 6, 9, 1, 2})
		require.NoError(t, err)
		assert.Equal(t, domain.Pattern("100110"), lines.Pattern())
		assert.Equal(t, domain.Pattern("011010"), lines.Changed())
		assert.Equal(t, []int{0, 1, 2, 3}, lines.Moving())
	})

	t.Run("Bad Value", func(t *testing.T) {
		_, err := domain.NewLines([]int{1, 1, 5, 1, 1, 1})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidLines)

		var lerr *domain.LineError
		require.ErrorAs(t, err, &lerr)
		assert.Equal(t, 2, lerr.Index)
		assert.Equal(t, 5, lerr.Value)
		assert.Contains(t, err.Error(), "line 3")

		for _, v := range []int{0, 5, 10, -1} {
			_, err := domain.NewLines([]int{v, 1, 1, 1, 1, 1})
			assert.ErrorIs(t, err, domain.ErrInvalidLines, "value %d", v)
		}
	})

	t.Run("Bad Count", func(t *testing.T) {
		_, err := domain.NewLines([]int{1, 1, 1})
		var lerr *domain.LineError
		require.ErrorAs(t, err, &lerr)
		assert.Equal(t, -1, lerr.Index)
		assert.Equal(t, 3, lerr.Count)

		_, err = domain.NewLines(nil)
		assert.ErrorIs(t, err, domain.ErrInvalidLines)
	})
}

func TestParseLines(t *testing.T) {
	for _, in := range []string{"221242", "2,2,1,2,4,2", "2 2 1 2 4 2", " 2, 2, 1, 2, 4, 2 "} {
		got, err := domain.ParseLines(in)
		require.NoError(t, err, in)
		assert.Equal(t, []int{2, 2, 1, 2, 4, 2}, got, in)
	}

	_, err := domain.ParseLines("22a242")
	assert.ErrorIs(t, err, domain.ErrInvalidLines)

	got, err := domain.ParseLines("2,2")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestPattern(t *testing.T) {
	p := domain.Pattern("001000")
	assert.True(t, p.Valid())
	assert.Equal(t, domain.Trigram("001"), p.Lower())
	assert.Equal(t, domain.Trigram("000"), p.Upper())
	assert.True(t, p.Yang(2))
	assert.False(t, p.Yang(0))

	assert.False(t, domain.Pattern("00100").Valid())
	assert.False(t, domain.Pattern("00100x").Valid())

	assert.Equal(t, domain.Trigram("110"), domain.Trigram("001").Complement())
	assert.Equal(t, domain.Gen, domain.Trigram("001").Palace())
	assert.Equal(t, domain.Pattern("110110"), domain.Dui.Pure())
}

func TestPalaces(t *testing.T) {
	seen := map[domain.Trigram]bool{}
	for _, p := range domain.Palaces {
		assert.True(t, p.Valid())
		assert.True(t, p.Element().Valid())
		assert.Equal(t, p, p.Trigram().Palace())
		seen[p.Trigram()] = true
	}
	assert.Len(t, seen, 8)
	assert.Equal(t, domain.Metal, domain.Qian.Element())
	assert.Equal(t, domain.Wood, domain.Xun.Element())
	assert.False(t, domain.Palace("X").Valid())
}

func TestOptional(t *testing.T) {
	var zero domain.Optional[int]
	assert.False(t, zero.Present())
	assert.Equal(t, 0, zero.OrZero())

	v, ok := domain.Some(3).Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	t.Run("JSON", func(t *testing.T) {
		type holder struct {
			A domain.Optional[string] `json:"a"`
			B domain.Optional[string] `json:"b"`
		}
		data, err := json.Marshal(holder{A: domain.Some("x")})
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":"x","b":null}`, string(data))

		var h holder
		require.NoError(t, json.Unmarshal(data, &h))
		assert.Equal(t, domain.Some("x"), h.A)
		assert.False(t, h.B.Present())
	})
}

func TestParseMonth(t *testing.T) {
	tests := map[string]string{
		"寅":   "寅",
		"正月":  "寅",
		"七月":  "申",
		"十一月": "子",
		"腊月":  "丑",
	}
	for in, want := range tests {
		b, ok := domain.ParseMonth(in)
		require.True(t, ok, in)
		assert.Equal(t, want, b.String(), in)
	}

	_, ok := domain.ParseMonth("十三月")
	assert.False(t, ok)
}
