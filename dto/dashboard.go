package dto

import (
	"main/model"
	"main/usecase"
)

// DayCell is one heatmap cell, display-ready.
type DayCell struct {
	Date    string
	Count   int
	Level   int
	Tooltip string
}

// WeekColumn is one column of the grid, weekday ascending.
type WeekColumn struct {
	Days []DayCell
}

// CalendarView is everything the template needs to draw the
// contribution grid.
type CalendarView struct {
	Total  int
	Weeks  []WeekColumn
	Months []usecase.MonthLabel
	Streak model.StreakSummary
}

func ToCalendarView(calendar model.ContributionCalendar) CalendarView {
	view := CalendarView{
		Total:  calendar.TotalContributions,
		Weeks:  make([]WeekColumn, 0, len(calendar.Weeks)),
		Months: usecase.MonthLabels(calendar.Weeks),
		Streak: usecase.Streaks(calendar.Days()),
	}

	for _, week := range calendar.Weeks {
		column := WeekColumn{Days: make([]DayCell, 0, len(week.ContributionDays))}
		for _, day := range week.ContributionDays {
			column.Days = append(column.Days, DayCell{
				Date:    day.Date,
				Count:   day.Count,
				Level:   usecase.Level(day.Count),
				Tooltip: usecase.TooltipText(day),
			})
		}
		view.Weeks = append(view.Weeks, column)
	}

	return view
}

// LanguageBar is one row of the language chart. Width is relative to
// the top language, so the first bar renders full width.
type LanguageBar struct {
	Name    string
	Percent float64
	Width   float64
	Text    string
	Color   string
}

// StatsView is the display model for the time-tracking section.
type StatsView struct {
	TotalHuman   string
	AverageHuman string
	RangeHuman   string
	Languages    []LanguageBar
}

func ToStatsView(stats model.WakaStats) StatsView {
	view := StatsView{
		TotalHuman:   stats.HumanReadableTotal,
		AverageHuman: stats.HumanReadableDailyAverage,
		RangeHuman:   stats.HumanReadableRange,
	}

	top := usecase.TopLanguages(stats.Languages)
	max := usecase.MaxPercent(top)
	for _, lang := range top {
		view.Languages = append(view.Languages, LanguageBar{
			Name:    lang.Name,
			Percent: lang.Percent,
			Width:   usecase.BarWidth(lang.Percent, max),
			Text:    lang.Text,
			Color:   lang.Color,
		})
	}

	return view
}

// RangeOption is one entry of the range selector.
type RangeOption struct {
	Key    model.Range
	Label  string
	Active bool
}

func RangeOptions(active model.Range) []RangeOption {
	options := make([]RangeOption, 0, len(model.Ranges))
	for _, r := range model.Ranges {
		options = append(options, RangeOption{
			Key:    r,
			Label:  r.Label(),
			Active: r == active,
		})
	}
	return options
}

// DashboardView ties both data sources together. The sources fail
// independently: one section showing its error message never blanks
// the other.
type DashboardView struct {
	Owner string

	CalendarFailed bool
	Calendar       CalendarView

	StatsFailed bool
	Stats       StatsView

	ActiveRange model.Range
	Ranges      []RangeOption
}
