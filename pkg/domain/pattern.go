package domain

// Pattern is a six-character '0'/'1' string, index 0 being the bottom line.
type Pattern string

// Trigram is either half of a pattern: bottom, middle and top line.
type Trigram string

// Valid reports whether p is a six-bit pattern.
func (p Pattern) Valid() bool {
	return len(p) == 6 && bitsOnly(string(p))
}

// Lower returns lines 1–3.
func (p Pattern) Lower() Trigram {
	return Trigram(p[:3])
}

// Upper returns lines 4–6.
func (p Pattern) Upper() Trigram {
	return Trigram(p[3:])
}

// Yang reports whether the 0-based line i is unbroken.
func (p Pattern) Yang(i int) bool {
	return p[i] == '1'
}

// Valid reports whether t is a three-bit trigram.
func (t Trigram) Valid() bool {
	return len(t) == 3 && bitsOnly(string(t))
}

func (t Trigram) Bottom() byte { return t[0] }
func (t Trigram) Middle() byte { return t[1] }
func (t Trigram) Top() byte    { return t[2] }

// Complement flips all three lines.
func (t Trigram) Complement() Trigram {
	b := []byte(t)
	for i := range b {
		b[i] = flipBit(b[i])
	}
	return Trigram(b)
}

// Double stacks the trigram on itself, giving the pure hexagram.
func (t Trigram) Double() Pattern {
	return Pattern(t + t)
}

// Palace returns the palace named after this trigram.
func (t Trigram) Palace() Palace {
	for _, p := range Palaces {
		if palaceTrigrams[p] == t {
			return p
		}
	}
	return ""
}

// Palace is one of the eight trigram groups.
type Palace string

const (
	Qian Palace = "乾"
	Dui  Palace = "兑"
	Li   Palace = "离"
	Zhen Palace = "震"
	Xun  Palace = "巽"
	Kan  Palace = "坎"
	Gen  Palace = "艮"
	Kun  Palace = "坤"
)

// Palaces lists the eight palaces in their canonical order.
var Palaces = [8]Palace{Qian, Dui, Li, Zhen, Xun, Kan, Gen, Kun}

var palaceTrigrams = map[Palace]Trigram{
	Qian: "111",
	Dui:  "110",
	Li:   "101",
	Zhen: "100",
	Xun:  "011",
	Kan:  "010",
	Gen:  "001",
	Kun:  "000",
}

var palaceElements = map[Palace]Element{
	Qian: Metal,
	Dui:  Metal,
	Li:   Fire,
	Zhen: Wood,
	Xun:  Wood,
	Kan:  Water,
	Gen:  Earth,
	Kun:  Earth,
}

// Trigram returns the palace's ruling trigram.
func (p Palace) Trigram() Trigram {
	return palaceTrigrams[p]
}

// Element returns the ruling element of the palace.
func (p Palace) Element() Element {
	return palaceElements[p]
}

// Pure returns the palace's head hexagram (its trigram doubled).
func (p Palace) Pure() Pattern {
	return p.Trigram().Double()
}

// Valid reports whether p names one of the eight palaces.
func (p Palace) Valid() bool {
	_, ok := palaceTrigrams[p]
	return ok
}

func bitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return true
}

func flipBit(b byte) byte {
	if b == '1' {
		return '0'
	}
	return '1'
}
