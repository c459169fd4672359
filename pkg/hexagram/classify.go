package hexagram

import (
	"strings"

	"github.com/aretw0/najia/pkg/domain"
)

// harmonyMarkers identify the eight six-harmony hexagrams by name.
var harmonyMarkers = []string{"否", "泰", "复", "豫", "节", "困", "贲", "旅"}

// clashPair is the exceptional trigram pair (震, 乾) that clashes without
// the trigrams being equal: 天雷无妄 and 雷天大壮.
var clashPair = [2]domain.Trigram{"100", "111"}

// SoulOf classifies the hexagram as wandering, returning or normal by
// comparing the middle lines first.
func SoulOf(p domain.Pattern) domain.Soul {
	in, out := p.Lower(), p.Upper()
	if out.Middle() == in.Middle() {
		if out.Bottom() != in.Bottom() && out.Top() != in.Top() {
			return domain.SoulWandering
		}
		return domain.SoulNormal
	}
	if out.Bottom() == in.Bottom() && out.Top() == in.Top() {
		return domain.SoulReturning
	}
	return domain.SoulNormal
}

// PalaceOf assigns the hexagram to its palace:
// returning hexagrams belong to the inner trigram, worlds 1, 2, 3 and 6 to
// the outer trigram, and worlds 4, 5 (or wandering) to the complement of
// the inner trigram.
func PalaceOf(p domain.Pattern) domain.Palace {
	soul := SoulOf(p)
	if soul == domain.SoulReturning {
		return p.Lower().Palace()
	}
	switch World(p).World {
	case 1, 2, 3, 6:
		return p.Upper().Palace()
	}
	return p.Lower().Complement().Palace()
}

// Clash reports a six-clash hexagram.
func Clash(p domain.Pattern) bool {
	in, out := p.Lower(), p.Upper()
	if in == out {
		return true
	}
	return isClashTrigram(in) && isClashTrigram(out)
}

func isClashTrigram(t domain.Trigram) bool {
	return t == clashPair[0] || t == clashPair[1]
}

// Harmony reports a six-harmony hexagram.
func Harmony(p domain.Pattern) bool {
	name := Name(p)
	if name == "" {
		return false
	}
	for _, m := range harmonyMarkers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

// KindOf returns the type label: soul state first, then clash, then harmony.
func KindOf(p domain.Pattern) domain.Kind {
	switch SoulOf(p) {
	case domain.SoulWandering:
		return domain.KindWandering
	case domain.SoulReturning:
		return domain.KindReturning
	}
	if Clash(p) {
		return domain.KindClash
	}
	if Harmony(p) {
		return domain.KindHarmony
	}
	return domain.KindNone
}
