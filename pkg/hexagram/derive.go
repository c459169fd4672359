package hexagram

import "github.com/aretw0/najia/pkg/domain"

// Hidden builds the hidden hexagram when the visible relatives do not cover
// all five roles. The hidden hexagram is the pure hexagram of the palace;
// Seat holds the first line of it that carries each missing role.
func Hidden(palace domain.Palace, visible [6]domain.Relative) domain.Optional[domain.HiddenHexagram] {
	present := distinct(visible)
	if len(present) >= len(domain.Relatives) || !palace.Valid() {
		return domain.None[domain.HiddenHexagram]()
	}

	pure := palace.Pure()
	roles := Relatives(pure, palace)

	seat := []int{}
	seen := map[domain.Relative]bool{}
	for i, r := range roles {
		if present[r] || seen[r] {
			continue
		}
		seen[r] = true
		seat = append(seat, i)
	}

	return domain.Some(domain.HiddenHexagram{
		Name:      Name(pure),
		Pattern:   pure,
		Relatives: roles,
		Labels:    Labels(pure),
		Seat:      seat,
	})
}

// Transform builds the changed hexagram when at least one line moves.
// Relatives are read against the original palace, the kind against the
// changed pattern itself.
func Transform(lines domain.Lines, palace domain.Palace) domain.Optional[domain.TransformedHexagram] {
	if len(lines.Moving()) == 0 {
		return domain.None[domain.TransformedHexagram]()
	}
	changed := lines.Changed()
	return domain.Some(domain.TransformedHexagram{
		Name:      Name(changed),
		Pattern:   changed,
		Relatives: Relatives(changed, palace),
		Labels:    Labels(changed),
		Palace:    palace,
		Kind:      KindOf(changed),
	})
}
