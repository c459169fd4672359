package timing

import "github.com/aretw0/najia/pkg/domain"

// Annotate computes the per-line annotations for the given najia. The month
// group is present only with a month branch, the day group only with a day
// pillar. An unrecognized pillar still yields a day group, holding the
// unknown sentinels: no void branches, no void lines and empty spirits.
func Annotate(najia [6]domain.StemBranch, month domain.Optional[domain.Branch], day domain.Optional[string]) domain.TimeAnnotations {
	var out domain.TimeAnnotations

	if m, ok := month.Get(); ok && m.Valid() {
		ma := domain.MonthAnnotations{Branch: m}
		for i, sb := range najia {
			ma.Strength[i] = Strength(m, sb.Branch.Element())
			ma.Clash[i] = MonthClash(sb.Branch, m)
		}
		out.Month = domain.Some(ma)
	}

	if d, ok := day.Get(); ok {
		da := domain.DayAnnotations{Pillar: d, VoidBranches: VoidBranches(d)}
		for i, sb := range najia {
			da.Void[i] = IsVoid(sb.Branch.String(), d)
			da.Spirits[i] = SpiritOf(i, d)
		}
		out.Day = domain.Some(da)
	}

	return out
}
