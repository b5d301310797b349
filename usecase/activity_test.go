package usecase

import (
	"testing"

	"main/model"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 0},
		{1, 1},
		{3, 1},
		{4, 2},
		{6, 2},
		{7, 3},
		{9, 3},
		{10, 4},
		{250, 4},
	}

	for _, tt := range tests {
		if got := Level(tt.count); got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestLevelMonotone(t *testing.T) {
	prev := Level(0)
	for c := 1; c <= 50; c++ {
		cur := Level(c)
		if cur < prev {
			t.Fatalf("Level(%d) = %d is below Level(%d) = %d", c, cur, c-1, prev)
		}
		prev = cur
	}
}

func daysFromCounts(counts []int) []model.ContributionDay {
	days := make([]model.ContributionDay, len(counts))
	for i, c := range counts {
		days[i] = model.ContributionDay{Count: c}
	}
	return days
}

func TestStreaks(t *testing.T) {
	tests := []struct {
		name        string
		counts      []int
		wantLongest int
		wantCurrent int
	}{
		{
			name:        "empty sequence",
			counts:      nil,
			wantLongest: 0,
			wantCurrent: 0,
		},
		{
			name:        "all zero",
			counts:      []int{0, 0, 0, 0},
			wantLongest: 0,
			wantCurrent: 0,
		},
		{
			name:        "broken runs with trailing single day",
			counts:      []int{1, 0, 2, 3, 0, 0, 5},
			wantLongest: 2,
			wantCurrent: 1,
		},
		{
			name:        "unbroken sequence",
			counts:      []int{1, 2, 3},
			wantLongest: 3,
			wantCurrent: 3,
		},
		{
			name:        "streak ended yesterday",
			counts:      []int{4, 5, 6, 0},
			wantLongest: 3,
			wantCurrent: 0,
		},
		{
			name:        "longest run in the middle",
			counts:      []int{1, 0, 1, 1, 1, 1, 0, 1, 1},
			wantLongest: 4,
			wantCurrent: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Streaks(daysFromCounts(tt.counts))
			if got.LongestStreak != tt.wantLongest {
				t.Errorf("LongestStreak = %d, want %d", got.LongestStreak, tt.wantLongest)
			}
			if got.CurrentStreak != tt.wantCurrent {
				t.Errorf("CurrentStreak = %d, want %d", got.CurrentStreak, tt.wantCurrent)
			}
		})
	}
}
