package hexagram

import "github.com/aretw0/najia/pkg/domain"

// spiritStart maps each day stem to its first spirit in domain.SpiritCycle:
// 甲乙 青龙, 丙丁 朱雀, 戊 勾陈, 己 螣蛇, 庚辛 白虎, 壬癸 玄武.
var spiritStart = [10]int{0, 0, 1, 1, 2, 3, 4, 4, 5, 5}

// SpiritStart returns the cycle index of the bottom line's spirit.
func SpiritStart(s domain.Stem) (int, bool) {
	if !s.Valid() {
		return 0, false
	}
	return spiritStart[s], true
}

// SpiritAt returns the spirit of the 0-based line for the given day stem.
// An unknown stem or position yields "".
func SpiritAt(s domain.Stem, line int) domain.Spirit {
	start, ok := SpiritStart(s)
	if !ok || line < 0 || line > 5 {
		return ""
	}
	return domain.SpiritCycle[(start+line)%len(domain.SpiritCycle)]
}

// Spirits returns the six spirits bottom to top for the given day stem.
func Spirits(s domain.Stem) [6]domain.Spirit {
	var out [6]domain.Spirit
	for i := range out {
		out[i] = SpiritAt(s, i)
	}
	return out
}
