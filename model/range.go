package model

// Range is the time window over which time-tracking statistics are
// aggregated.
type Range string

const (
	RangeLast7Days   Range = "last_7_days"
	RangeLast30Days  Range = "last_30_days"
	RangeLast6Months Range = "last_6_months"
	RangeLastYear    Range = "last_year"
	RangeAllTime     Range = "all_time"
)

// Ranges lists every selectable range in display order.
var Ranges = []Range{
	RangeLast7Days,
	RangeLast30Days,
	RangeLast6Months,
	RangeLastYear,
	RangeAllTime,
}

// ParseRange maps a query value onto a known range. Unknown or empty
// values fall back to all time instead of being rejected.
func ParseRange(s string) Range {
	r := Range(s)
	if r.Valid() {
		return r
	}
	return RangeAllTime
}

func (r Range) Valid() bool {
	switch r {
	case RangeLast7Days, RangeLast30Days, RangeLast6Months, RangeLastYear, RangeAllTime:
		return true
	}
	return false
}

// Label is the human-readable name shown on the range selector.
func (r Range) Label() string {
	switch r {
	case RangeLast7Days:
		return "7 days"
	case RangeLast30Days:
		return "30 days"
	case RangeLast6Months:
		return "6 months"
	case RangeLastYear:
		return "1 year"
	default:
		return "All time"
	}
}
