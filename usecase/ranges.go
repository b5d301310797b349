package usecase

import (
	"time"

	"main/model"
)

// RangeDates converts a range key into the concrete [start, end] day
// pair sent to the time-tracking upstream, anchored on now. All time
// reaches ten years back, and doubles as the silent fallback for
// anything unrecognized.
func RangeDates(r model.Range, now time.Time) (start, end string) {
	end = now.Format(dateLayout)

	var from time.Time
	switch r {
	case model.RangeLast7Days:
		from = now.AddDate(0, 0, -7)
	case model.RangeLast30Days:
		from = now.AddDate(0, 0, -30)
	case model.RangeLast6Months:
		from = now.AddDate(0, -6, 0)
	case model.RangeLastYear:
		from = now.AddDate(-1, 0, 0)
	default:
		from = now.AddDate(-10, 0, 0)
	}

	return from.Format(dateLayout), end
}
