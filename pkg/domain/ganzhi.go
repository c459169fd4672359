package domain

import "unicode/utf8"

// Stem is one of the ten heavenly stems, 甲 (0) through 癸 (9).
type Stem int

// Branch is one of the twelve earthly branches, 子 (0) through 亥 (11).
type Branch int

// Stems is the ordered stem alphabet.
var Stems = [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

// Branches is the ordered branch alphabet.
var Branches = [12]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

// branchElements maps each branch to its phase.
var branchElements = [12]Element{
	Water, // 子
	Earth, // 丑
	Wood,  // 寅
	Wood,  // 卯
	Earth, // 辰
	Fire,  // 巳
	Fire,  // 午
	Earth, // 未
	Metal, // 申
	Metal, // 酉
	Earth, // 戌
	Water, // 亥
}

func (s Stem) String() string {
	if !s.Valid() {
		return ""
	}
	return Stems[s]
}

// Valid reports whether s is inside the stem alphabet.
func (s Stem) Valid() bool {
	return s >= 0 && int(s) < len(Stems)
}

// ParseStem looks up a stem by its character.
func ParseStem(v string) (Stem, bool) {
	for i, n := range Stems {
		if n == v {
			return Stem(i), true
		}
	}
	return 0, false
}

func (b Branch) String() string {
	if !b.Valid() {
		return ""
	}
	return Branches[b]
}

// Valid reports whether b is inside the branch alphabet.
func (b Branch) Valid() bool {
	return b >= 0 && int(b) < len(Branches)
}

// Element returns the phase of the branch.
func (b Branch) Element() Element {
	return branchElements[b]
}

// Opposite returns the clashing branch, six positions away in the cycle.
func (b Branch) Opposite() Branch {
	return (b + 6) % 12
}

// Offset returns the branch n positions after b (n may be negative).
func (b Branch) Offset(n int) Branch {
	return Branch(((int(b)+n)%12 + 12) % 12)
}

// ParseBranch looks up a branch by its character.
func ParseBranch(v string) (Branch, bool) {
	for i, n := range Branches {
		if n == v {
			return Branch(i), true
		}
	}
	return 0, false
}

// lunarMonths maps lunar month names to their month branch; 正月 is 寅.
var lunarMonths = map[string]Branch{
	"正月": 2, "二月": 3, "三月": 4, "四月": 5, "五月": 6, "六月": 7,
	"七月": 8, "八月": 9, "九月": 10, "十月": 11, "十一月": 0, "十二月": 1,
	"冬月": 0, "腊月": 1,
}

// ParseMonth accepts a month branch (寅) or a lunar month name (正月).
func ParseMonth(v string) (Branch, bool) {
	if b, ok := ParseBranch(v); ok {
		return b, true
	}
	b, ok := lunarMonths[v]
	return b, ok
}

// StemBranch is a sexagenary pair such as 甲子.
type StemBranch struct {
	Stem   Stem
	Branch Branch
}

// ParseStemBranch parses a two-character pair. The pair does not need to be
// a real sexagenary combination; use Sexagenary to check that.
func ParseStemBranch(v string) (StemBranch, bool) {
	if utf8.RuneCountInString(v) != 2 {
		return StemBranch{}, false
	}
	s, size := utf8.DecodeRuneInString(v)
	stem, ok := ParseStem(string(s))
	if !ok {
		return StemBranch{}, false
	}
	branch, ok := ParseBranch(v[size:])
	if !ok {
		return StemBranch{}, false
	}
	return StemBranch{Stem: stem, Branch: branch}, true
}

// MustStemBranch is ParseStemBranch for static tables; it panics on bad input.
func MustStemBranch(v string) StemBranch {
	sb, ok := ParseStemBranch(v)
	if !ok {
		panic("domain: invalid stem-branch " + v)
	}
	return sb
}

// Sexagenary reports whether the pair occurs in the sixty-day cycle
// (stem and branch share parity).
func (sb StemBranch) Sexagenary() bool {
	return sb.Stem.Valid() && sb.Branch.Valid() && int(sb.Stem)%2 == int(sb.Branch)%2
}

func (sb StemBranch) String() string {
	return sb.Stem.String() + sb.Branch.String()
}

// Label returns the pair followed by the branch's element, e.g. 甲子水.
func (sb StemBranch) Label() string {
	return sb.String() + sb.Branch.Element().String()
}

// MarshalText renders the pair as its two characters.
func (sb StemBranch) MarshalText() ([]byte, error) {
	return []byte(sb.String()), nil
}

// UnmarshalText parses a two-character pair.
func (sb *StemBranch) UnmarshalText(text []byte) error {
	v, ok := ParseStemBranch(string(text))
	if !ok {
		return &ParseError{Kind: "stem-branch", Value: string(text)}
	}
	*sb = v
	return nil
}

// MarshalText renders the branch character.
func (b Branch) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText parses a branch character.
func (b *Branch) UnmarshalText(text []byte) error {
	v, ok := ParseBranch(string(text))
	if !ok {
		return &ParseError{Kind: "branch", Value: string(text)}
	}
	*b = v
	return nil
}

// Moment is what the calendar collaborator reports for a solar date.
// Year and Hour are informational pillars a calendar may leave empty.
type Moment struct {
	MonthBranch Branch     `json:"month_branch"`
	Day         StemBranch `json:"day"`
	Year        string     `json:"year,omitempty"`
	Hour        string     `json:"hour,omitempty"`
}
