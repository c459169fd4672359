package hexagram

import "github.com/aretw0/najia/pkg/domain"

// relativeMatrix is indexed by [palace element][line element].
var relativeMatrix = buildRelatives()

func buildRelatives() [5][5]domain.Relative {
	var m [5][5]domain.Relative
	for _, pe := range domain.Elements {
		for _, le := range domain.Elements {
			m[pe][le] = deriveRelative(pe, le)
		}
	}
	return m
}

// deriveRelative applies the generation/control rule directly.
func deriveRelative(palace, line domain.Element) domain.Relative {
	switch {
	case palace == line:
		return domain.Sibling
	case domain.Generates(palace, line):
		return domain.Offspring
	case domain.Generates(line, palace):
		return domain.Parent
	case domain.Controls(palace, line):
		return domain.Wealth
	case domain.Controls(line, palace):
		return domain.Official
	}
	return ""
}

// RelativeOf returns the role of a line element under a palace element.
func RelativeOf(palace, line domain.Element) domain.Relative {
	if !palace.Valid() || !line.Valid() {
		return ""
	}
	return relativeMatrix[palace][line]
}

// Relatives maps every line of p to its role under the given palace.
func Relatives(p domain.Pattern, palace domain.Palace) [6]domain.Relative {
	var out [6]domain.Relative
	if !p.Valid() || !palace.Valid() {
		return out
	}
	pe := palace.Element()
	for i, sb := range Najia(p) {
		out[i] = RelativeOf(pe, sb.Branch.Element())
	}
	return out
}

// distinct counts the different roles in a set of lines.
func distinct(roles [6]domain.Relative) map[domain.Relative]bool {
	set := make(map[domain.Relative]bool, len(roles))
	for _, r := range roles {
		set[r] = true
	}
	return set
}
