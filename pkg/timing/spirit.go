package timing

import "github.com/aretw0/najia/pkg/domain"

// dayStart is the first spirit for each day stem in the by-day reading:
// 甲乙 青龙, 丙丁 朱雀, 戊己 勾陈, 庚辛 白虎, 壬癸 玄武.
var dayStart = [10]int{0, 0, 1, 1, 2, 2, 4, 4, 5, 5}

// SpiritOf returns the spirit of the 0-based line for a day pillar (or a bare
// day stem). Unknown input yields "".
func SpiritOf(line int, day string) domain.Spirit {
	stem, ok := DayStem(day)
	if !ok || line < 0 || line > 5 {
		return ""
	}
	return domain.SpiritCycle[(dayStart[stem]+line)%len(domain.SpiritCycle)]
}

// DayStem extracts the stem of a day pillar or a bare stem.
func DayStem(day string) (domain.Stem, bool) {
	if sb, ok := domain.ParseStemBranch(day); ok {
		return sb.Stem, true
	}
	return domain.ParseStem(day)
}
