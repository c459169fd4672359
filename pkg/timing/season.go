package timing

import "github.com/aretw0/najia/pkg/domain"

// Strength rates a line element against the month branch:
// same element 旺, month generates line 相, line generates month 休,
// month controls line 死, line controls month 囚.
func Strength(month domain.Branch, line domain.Element) domain.Strength {
	if !month.Valid() || !line.Valid() {
		return ""
	}
	me := month.Element()
	switch {
	case me == line:
		return domain.Prosperous
	case domain.Generates(me, line):
		return domain.Supported
	case domain.Generates(line, me):
		return domain.Resting
	case domain.Controls(me, line):
		return domain.Dead
	case domain.Controls(line, me):
		return domain.Imprisoned
	}
	return ""
}

// StrengthOf is Strength for an element name and a month branch string.
func StrengthOf(element, month string) domain.Strength {
	e, ok := domain.ParseElement(element)
	if !ok {
		return ""
	}
	b, ok := domain.ParseBranch(month)
	if !ok {
		return ""
	}
	return Strength(b, e)
}

// MonthClash reports whether the line branch clashes with the month branch.
func MonthClash(line, month domain.Branch) bool {
	return line.Valid() && month.Valid() && line.Opposite() == month
}

// IsMonthClash is MonthClash over branch strings; unknown input is false.
func IsMonthClash(line, month string) bool {
	l, ok := domain.ParseBranch(line)
	if !ok {
		return false
	}
	m, ok := domain.ParseBranch(month)
	if !ok {
		return false
	}
	return MonthClash(l, m)
}
