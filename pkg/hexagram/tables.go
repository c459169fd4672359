package hexagram

import (
	"fmt"

	"github.com/aretw0/najia/pkg/domain"
)

// Entry is the static description of one of the 64 hexagrams.
type Entry struct {
	Pattern domain.Pattern       `json:"pattern"`
	Name    string               `json:"name"`
	Palace  domain.Palace        `json:"palace"`
	World   domain.WorldResponse `json:"world"`
	Kind    domain.Kind          `json:"kind"`
	Najia   [6]domain.StemBranch `json:"najia"`
}

// palaceOrder lists each palace's eight hexagrams in generation order:
// pure, worlds 1 through 5, wandering, returning.
var palaceOrder = buildPalaceOrder()

func buildPalaceOrder() []domain.Pattern {
	out := make([]domain.Pattern, 0, 64)
	for _, palace := range domain.Palaces {
		b := []byte(palace.Pure())
		out = append(out, domain.Pattern(b))
		// Lines 1..5 change one by one.
		for i := 0; i < 5; i++ {
			b[i] = flip(b[i])
			out = append(out, domain.Pattern(b))
		}
		// Wandering: the fourth line changes back.
		b[3] = flip(b[3])
		out = append(out, domain.Pattern(b))
		// Returning: the inner trigram returns to the palace trigram.
		copy(b[:3], palace.Trigram())
		out = append(out, domain.Pattern(b))
	}
	return out
}

// Patterns returns the 64 patterns grouped by palace, in generation order.
func Patterns() []domain.Pattern {
	out := make([]domain.Pattern, len(palaceOrder))
	copy(out, palaceOrder)
	return out
}

// Describe returns the static entry of a pattern.
func Describe(p domain.Pattern) (Entry, bool) {
	name := Name(p)
	if name == "" {
		return Entry{}, false
	}
	return Entry{
		Pattern: p,
		Name:    name,
		Palace:  PalaceOf(p),
		World:   World(p),
		Kind:    KindOf(p),
		Najia:   Najia(p),
	}, true
}

// Table describes all 64 hexagrams in palace order.
func Table() []Entry {
	out := make([]Entry, 0, len(palaceOrder))
	for _, p := range palaceOrder {
		e, _ := Describe(p)
		out = append(out, e)
	}
	return out
}

func init() {
	if err := verify(); err != nil {
		panic(err)
	}
}

// verify checks that the static tables agree with each other.
func verify() error {
	if len(names) != 64 || len(patternsByName) != 64 {
		return fmt.Errorf("%w: names table is not a 64-entry bijection", domain.ErrCorruptTable)
	}
	seen := make(map[domain.Pattern]bool, 64)
	for _, p := range palaceOrder {
		if !p.Valid() || seen[p] {
			return fmt.Errorf("%w: palace order repeats %s", domain.ErrCorruptTable, p)
		}
		seen[p] = true
		if _, ok := names[p]; !ok {
			return fmt.Errorf("%w: no name for %s", domain.ErrCorruptTable, p)
		}
		if _, ok := najiaTable[p]; !ok {
			return fmt.Errorf("%w: no najia for %s", domain.ErrCorruptTable, p)
		}
		if _, ok := worldTable[p]; !ok {
			return fmt.Errorf("%w: no world line for %s", domain.ErrCorruptTable, p)
		}
	}
	for _, pe := range domain.Elements {
		for _, le := range domain.Elements {
			if relativeMatrix[pe][le] == "" {
				return fmt.Errorf("%w: no relative for %s/%s", domain.ErrCorruptTable, pe, le)
			}
		}
	}
	return nil
}

func corrupt(table string, p domain.Pattern) {
	panic(fmt.Errorf("%w: %s table has no entry for %s", domain.ErrCorruptTable, table, p))
}

func flip(b byte) byte {
	if b == '1' {
		return '0'
	}
	return '1'
}
