package hexagram

import "github.com/aretw0/najia/pkg/domain"

// trigramNajia assigns stem-branches to a trigram in the inner (lower)
// and outer (upper) position, bottom line first.
var trigramNajia = map[domain.Palace]struct{ inner, outer [3]string }{
	domain.Qian: {[3]string{"甲子", "甲寅", "甲辰"}, [3]string{"壬午", "壬申", "壬戌"}},
	domain.Kun:  {[3]string{"乙未", "乙巳", "乙卯"}, [3]string{"癸丑", "癸亥", "癸酉"}},
	domain.Zhen: {[3]string{"庚子", "庚寅", "庚辰"}, [3]string{"庚午", "庚申", "庚戌"}},
	domain.Xun:  {[3]string{"辛丑", "辛亥", "辛酉"}, [3]string{"辛未", "辛巳", "辛卯"}},
	domain.Kan:  {[3]string{"戊寅", "戊辰", "戊午"}, [3]string{"戊申", "戊戌", "戊子"}},
	domain.Li:   {[3]string{"己卯", "己丑", "己亥"}, [3]string{"己酉", "己未", "己巳"}},
	domain.Gen:  {[3]string{"丙辰", "丙午", "丙申"}, [3]string{"丙戌", "丙子", "丙寅"}},
	domain.Dui:  {[3]string{"丁巳", "丁卯", "丁丑"}, [3]string{"丁亥", "丁酉", "丁未"}},
}

// najiaTable is the per-pattern assignment, generated from trigramNajia.
var najiaTable = buildNajia()

func buildNajia() map[domain.Pattern][6]domain.StemBranch {
	table := make(map[domain.Pattern][6]domain.StemBranch, 64)
	for _, lower := range domain.Palaces {
		for _, upper := range domain.Palaces {
			p := domain.Pattern(lower.Trigram() + upper.Trigram())
			var row [6]domain.StemBranch
			for i, v := range trigramNajia[lower].inner {
				row[i] = domain.MustStemBranch(v)
			}
			for i, v := range trigramNajia[upper].outer {
				row[i+3] = domain.MustStemBranch(v)
			}
			table[p] = row
		}
	}
	return table
}

// Najia returns the six stem-branches of a pattern, bottom line first.
func Najia(p domain.Pattern) [6]domain.StemBranch {
	row, ok := najiaTable[p]
	if !ok && p.Valid() {
		corrupt("najia", p)
	}
	return row
}

// Labels returns each line's stem-branch followed by its element, e.g. 甲子水.
// Labels do not depend on the palace.
func Labels(p domain.Pattern) [6]string {
	var out [6]string
	if !p.Valid() {
		return out
	}
	for i, sb := range Najia(p) {
		out[i] = sb.Label()
	}
	return out
}
