package dto

import (
	"testing"

	"main/model"
)

func TestToCalendarView(t *testing.T) {
	calendar := model.ContributionCalendar{
		TotalContributions: 15,
		Weeks: []model.ContributionWeek{
			{ContributionDays: []model.ContributionDay{
				{Count: 0, Date: "2025-06-01", Weekday: 0},
				{Count: 4, Date: "2025-06-02", Weekday: 1},
				{Count: 11, Date: "2025-06-03", Weekday: 2},
			}},
		},
	}

	view := ToCalendarView(calendar)

	if view.Total != 15 {
		t.Errorf("Total = %d, want 15", view.Total)
	}
	if len(view.Weeks) != 1 || len(view.Weeks[0].Days) != 3 {
		t.Fatalf("unexpected grid shape: %+v", view.Weeks)
	}

	wantLevels := []int{0, 2, 4}
	for i, want := range wantLevels {
		if got := view.Weeks[0].Days[i].Level; got != want {
			t.Errorf("day %d level = %d, want %d", i, got, want)
		}
	}

	if view.Streak.CurrentStreak != 2 || view.Streak.LongestStreak != 2 {
		t.Errorf("unexpected streaks: %+v", view.Streak)
	}
	if len(view.Months) != 1 || view.Months[0].Month != "Jun" {
		t.Errorf("unexpected month labels: %+v", view.Months)
	}
	if view.Weeks[0].Days[1].Tooltip != "4 contributions on Monday, June 2, 2025" {
		t.Errorf("unexpected tooltip: %q", view.Weeks[0].Days[1].Tooltip)
	}
}

func TestToStatsView(t *testing.T) {
	stats := model.WakaStats{
		HumanReadableTotal: "12 hrs",
		Languages: []model.LanguageStat{
			{Name: "Go", TotalSeconds: 500, Percent: 50, Color: "#00ADD8"},
			{Name: "Other", TotalSeconds: 100, Percent: 10},
			{Name: "Rust", TotalSeconds: 300, Percent: 30},
			{Name: "TypeScript", TotalSeconds: 200, Percent: 20},
		},
	}

	view := ToStatsView(stats)

	if view.TotalHuman != "12 hrs" {
		t.Errorf("TotalHuman = %q", view.TotalHuman)
	}
	if len(view.Languages) != 3 {
		t.Fatalf("got %d languages, want 3: %+v", len(view.Languages), view.Languages)
	}

	wantWidths := []float64{100, 60, 40}
	for i, want := range wantWidths {
		if got := view.Languages[i].Width; got != want {
			t.Errorf("bar %d width = %v, want %v", i, got, want)
		}
	}
}

func TestRangeOptions(t *testing.T) {
	options := RangeOptions(model.RangeLast30Days)
	if len(options) != len(model.Ranges) {
		t.Fatalf("got %d options, want %d", len(options), len(model.Ranges))
	}

	activeCount := 0
	for _, opt := range options {
		if opt.Active {
			activeCount++
			if opt.Key != model.RangeLast30Days {
				t.Errorf("active option is %q, want last_30_days", opt.Key)
			}
		}
	}
	if activeCount != 1 {
		t.Errorf("exactly one option must be active, got %d", activeCount)
	}
}
