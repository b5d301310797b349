package model

// ContributionDay is one calendar day's activity count as reported by
// the code-hosting platform.
type ContributionDay struct {
	Count   int    `json:"contributionCount"`
	Date    string `json:"date"` // ISO date, no time component
	Color   string `json:"color"`
	Weekday int    `json:"weekday"` // 0 (Sunday) through 6 (Saturday)
}

// ContributionWeek holds up to seven days, ordered by weekday ascending.
type ContributionWeek struct {
	ContributionDays []ContributionDay `json:"contributionDays"`
}

// ContributionCalendar is the normalized contribution calendar. Weeks
// are ordered chronologically ascending; the streak and month-label
// derivations depend on that ordering.
type ContributionCalendar struct {
	TotalContributions int                `json:"totalContributions"`
	Weeks              []ContributionWeek `json:"weeks"`
}

// Days flattens the calendar into one chronological day sequence.
func (c ContributionCalendar) Days() []ContributionDay {
	days := make([]ContributionDay, 0, len(c.Weeks)*7)
	for _, week := range c.Weeks {
		days = append(days, week.ContributionDays...)
	}
	return days
}

// StreakSummary holds the streak counts derived from a calendar.
type StreakSummary struct {
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
}
