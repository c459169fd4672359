package domain

// Element is one of the five phases (wuxing).
type Element int

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

// Elements lists the five phases in generation order.
var Elements = [5]Element{Wood, Fire, Earth, Metal, Water}

var elementNames = [5]string{"木", "火", "土", "金", "水"}

// String returns the single-character element name.
func (e Element) String() string {
	if !e.Valid() {
		return ""
	}
	return elementNames[e]
}

// Valid reports whether e is one of the five phases.
func (e Element) Valid() bool {
	return e >= Wood && e <= Water
}

// ParseElement maps an element name (木, 火, 土, 金, 水) to its Element.
func ParseElement(name string) (Element, bool) {
	for i, n := range elementNames {
		if n == name {
			return Element(i), true
		}
	}
	return 0, false
}

// ElementPair is an ordered (from, to) relation between two phases.
type ElementPair struct {
	From Element
	To   Element
}

// Generation holds the five generating pairs: each element generates the next.
var Generation = [5]ElementPair{
	{Metal, Water},
	{Water, Wood},
	{Wood, Fire},
	{Fire, Earth},
	{Earth, Metal},
}

// Control holds the five controlling pairs.
var Control = [5]ElementPair{
	{Metal, Wood},
	{Wood, Earth},
	{Earth, Water},
	{Fire, Metal},
	{Water, Fire},
}

// Generates reports whether a generates b.
func Generates(a, b Element) bool {
	for _, p := range Generation {
		if p.From == a && p.To == b {
			return true
		}
	}
	return false
}

// Controls reports whether a controls b.
func Controls(a, b Element) bool {
	for _, p := range Control {
		if p.From == a && p.To == b {
			return true
		}
	}
	return false
}
