package model

// LanguageStat is one time-spent-per-language entry from the
// time-tracking service. Upstream sends languages pre-sorted by
// percent descending.
type LanguageStat struct {
	Name         string  `json:"name"`
	TotalSeconds float64 `json:"total_seconds"`
	Percent      float64 `json:"percent"`
	Text         string  `json:"text,omitempty"`
	Color        string  `json:"color,omitempty"`
}

// WakaStats is the normalized statistics payload for one range.
type WakaStats struct {
	TotalSeconds              float64        `json:"total_seconds"`
	DailyAverage              float64        `json:"daily_average"`
	Languages                 []LanguageStat `json:"languages"`
	HumanReadableTotal        string         `json:"human_readable_total,omitempty"`
	HumanReadableDailyAverage string         `json:"human_readable_daily_average,omitempty"`
	HumanReadableRange        string         `json:"human_readable_range,omitempty"`
	Streak                    int            `json:"streak,omitempty"`
	Start                     string         `json:"start,omitempty"`
}
