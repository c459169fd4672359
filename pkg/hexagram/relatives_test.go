package hexagram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/najia/pkg/domain"
	"github.com/aretw0/najia/pkg/hexagram"
)

func TestRelativeOf_Rule(t *testing.T) {
	for _, pe := range domain.Elements {
		for _, le := range domain.Elements {
			got := hexagram.RelativeOf(pe, le)

			var want domain.Relative
			switch {
			case pe == le:
				want = domain.Sibling
			case domain.Generates(pe, le):
				want = domain.Offspring
			case domain.Generates(le, pe):
				want = domain.Parent
			case domain.Controls(pe, le):
				want = domain.Wealth
			case domain.Controls(le, pe):
				want = domain.Official
			}
			assert.Equal(t, want, got, "palace %s line %s", pe, le)
			assert.NotEmpty(t, got)
		}
	}
}

func TestRelativeOf_NotSymmetric(t *testing.T) {
	assert.Equal(t, domain.Offspring, hexagram.RelativeOf(domain.Metal, domain.Water))
	assert.Equal(t, domain.Parent, hexagram.RelativeOf(domain.Water, domain.Metal))
	assert.Equal(t, domain.Wealth, hexagram.RelativeOf(domain.Metal, domain.Wood))
	assert.Equal(t, domain.Official, hexagram.RelativeOf(domain.Wood, domain.Metal))
}

func TestRelativeOf_EachRoleFivePerPalace(t *testing.T) {
	for _, pe := range domain.Elements {
		roles := map[domain.Relative]bool{}
		for _, le := range domain.Elements {
			roles[hexagram.RelativeOf(pe, le)] = true
		}
		assert.Len(t, roles, 5, "palace element %s", pe)
	}
}

func TestRelatives_Hexagram(t *testing.T) {
	got := hexagram.Relatives("001000", domain.Dui)
	want := [6]domain.Relative{
		domain.Parent,    // 丙辰土
		domain.Official,  // 丙午火
		domain.Sibling,   // 丙申金
		domain.Parent,    // 癸丑土
		domain.Offspring, // 癸亥水
		domain.Sibling,   // 癸酉金
	}
	assert.Equal(t, want, got)
}

func TestRelatives_PureHexagramsCoverAllRoles(t *testing.T) {
	for _, palace := range domain.Palaces {
		roles := map[domain.Relative]bool{}
		for _, r := range hexagram.Relatives(palace.Pure(), palace) {
			roles[r] = true
		}
		assert.Len(t, roles, 5, "palace %s", palace)
	}
}

func TestRelatives_Invalid(t *testing.T) {
	assert.Equal(t, [6]domain.Relative{}, hexagram.Relatives("111111", "X"))
	assert.Equal(t, [6]domain.Relative{}, hexagram.Relatives("1", domain.Qian))
	assert.Empty(t, hexagram.RelativeOf(domain.Element(9), domain.Wood))
}

func TestSpirits(t *testing.T) {
	jia, _ := domain.ParseStem("甲")
	spirits := hexagram.Spirits(jia)
	assert.Equal(t, domain.AzureDragon, spirits[0])
	assert.Equal(t, domain.BlackTortoise, spirits[5])
	assert.Equal(t, domain.SpiritCycle, spirits)

	tests := []struct {
		stem  string
		first domain.Spirit
	}{
		{"乙", domain.AzureDragon},
		{"丙", domain.VermilionBird},
		{"丁", domain.VermilionBird},
		{"戊", domain.HookedChen},
		{"己", domain.SoaringSnake},
		{"庚", domain.WhiteTiger},
		{"辛", domain.WhiteTiger},
		{"壬", domain.BlackTortoise},
		{"癸", domain.BlackTortoise},
	}
	for _, tt := range tests {
		stem, ok := domain.ParseStem(tt.stem)
		assert.True(t, ok)
		assert.Equal(t, tt.first, hexagram.SpiritAt(stem, 0), tt.stem)
	}

	ji, _ := domain.ParseStem("己")
	assert.Equal(t, domain.HookedChen, hexagram.SpiritAt(ji, 5))
	assert.Empty(t, hexagram.SpiritAt(domain.Stem(12), 0))
	assert.Empty(t, hexagram.SpiritAt(jia, 6))
}
