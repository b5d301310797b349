package usecase

import "main/model"

// Level quantizes a day's contribution count into the 0-4 bucket used
// to pick a heatmap cell color.
func Level(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= 3:
		return 1
	case count <= 6:
		return 2
	case count <= 9:
		return 3
	default:
		return 4
	}
}

// Streaks derives both streak counts from a chronologically ordered day
// sequence in one pass each. The longest streak is the maximum run of
// days with nonzero activity; the current streak counts trailing
// nonzero days from the end of the sequence. Today is treated like any
// other day, even if the upstream has not reported it yet.
func Streaks(days []model.ContributionDay) model.StreakSummary {
	var summary model.StreakSummary

	run := 0
	for _, day := range days {
		if day.Count > 0 {
			run++
			if run > summary.LongestStreak {
				summary.LongestStreak = run
			}
		} else {
			run = 0
		}
	}

	for i := len(days) - 1; i >= 0; i-- {
		if days[i].Count == 0 {
			break
		}
		summary.CurrentStreak++
	}

	return summary
}
