package usecase

import (
	"fmt"
	"time"

	"main/model"
)

const dateLayout = "2006-01-02"

// MonthLabel marks where a month's header starts above the weekly grid
// and how many week columns it spans.
type MonthLabel struct {
	Month     string
	WeekIndex int
	Span      int
}

// MonthLabels walks the ordered week sequence and emits a label
// whenever the month of a week's first day changes; the first week
// always emits. Each label spans the columns up to the next label, and
// the last label extends to the end of the grid.
func MonthLabels(weeks []model.ContributionWeek) []MonthLabel {
	var labels []MonthLabel
	prev := time.Month(0)

	for i, week := range weeks {
		if len(week.ContributionDays) == 0 {
			continue
		}
		day, err := time.Parse(dateLayout, week.ContributionDays[0].Date)
		if err != nil {
			continue
		}
		if day.Month() != prev {
			labels = append(labels, MonthLabel{
				Month:     day.Month().String()[:3],
				WeekIndex: i,
			})
			prev = day.Month()
		}
	}

	for i := range labels {
		if i+1 < len(labels) {
			labels[i].Span = labels[i+1].WeekIndex - labels[i].WeekIndex
		} else {
			labels[i].Span = len(weeks) - labels[i].WeekIndex
		}
	}

	return labels
}

// TooltipText renders the hover text for one day cell: a pluralized
// count and a long-form date.
func TooltipText(day model.ContributionDay) string {
	noun := "contributions"
	if day.Count == 1 {
		noun = "contribution"
	}
	date, err := time.Parse(dateLayout, day.Date)
	if err != nil {
		return fmt.Sprintf("%d %s", day.Count, noun)
	}
	return fmt.Sprintf("%d %s on %s", day.Count, noun, date.Format("Monday, January 2, 2006"))
}
