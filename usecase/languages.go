package usecase

import "main/model"

const maxTopLanguages = 6

// TopLanguages drops "Other" and zero-duration entries and keeps the
// first six that remain. Upstream already sorts by percent descending,
// so the order is preserved rather than recomputed.
func TopLanguages(langs []model.LanguageStat) []model.LanguageStat {
	top := make([]model.LanguageStat, 0, maxTopLanguages)
	for _, lang := range langs {
		if lang.Name == "Other" || lang.TotalSeconds <= 0 {
			continue
		}
		top = append(top, lang)
		if len(top) == maxTopLanguages {
			break
		}
	}
	return top
}

// MaxPercent returns the largest percent among the given languages.
func MaxPercent(langs []model.LanguageStat) float64 {
	var max float64
	for _, lang := range langs {
		if lang.Percent > max {
			max = lang.Percent
		}
	}
	return max
}

// BarWidth scales a language bar relative to the largest retained
// percent, not to 100, so the top language always renders full width.
func BarWidth(percent, maxPercent float64) float64 {
	if maxPercent <= 0 {
		return 0
	}
	return percent / maxPercent * 100
}
