package timing

import "github.com/aretw0/najia/pkg/domain"

// Void returns the two void branches of the decade (xun) the day falls in.
// The decade starts at the branch (branch - stem) positions into the cycle;
// its two void branches are the ones just before that start.
// Any recognized stem and branch has a decade, even a pairing the cycle
// never produces.
func Void(day domain.StemBranch) ([2]domain.Branch, bool) {
	if !day.Stem.Valid() || !day.Branch.Valid() {
		return [2]domain.Branch{}, false
	}
	start := domain.Branch(0).Offset(int(day.Branch) - int(day.Stem))
	return [2]domain.Branch{start.Offset(-2), start.Offset(-1)}, true
}

// VoidBranches is Void for a day pillar string such as 甲子.
// Unknown input yields an empty list.
func VoidBranches(day string) []domain.Branch {
	sb, ok := domain.ParseStemBranch(day)
	if !ok {
		return []domain.Branch{}
	}
	pair, ok := Void(sb)
	if !ok {
		return []domain.Branch{}
	}
	return pair[:]
}

// IsVoid reports whether the line branch is void on the given day.
func IsVoid(line string, day string) bool {
	b, ok := domain.ParseBranch(line)
	if !ok {
		return false
	}
	for _, v := range VoidBranches(day) {
		if v == b {
			return true
		}
	}
	return false
}
