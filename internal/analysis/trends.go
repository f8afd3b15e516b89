package analysis

import (
	"sort"
	"time"

	"divarlens/server/internal/models"
)

// DailyTotal is the summed listing count across all districts for one day.
type DailyTotal struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// TrendSummary describes day-over-day movement of the listing volume.
type TrendSummary struct {
	DailyTotals      []DailyTotal `json:"dailyTotals"`
	AvgGrowthPercent float64      `json:"avgGrowthPercent"`
	MaxGrowthPercent float64      `json:"maxGrowthPercent"`
	MaxGrowthDate    time.Time    `json:"maxGrowthDate"`
}

// AnalyzeTrends sums bucket counts per day and computes day-over-day growth
// percentages. Days following a zero-count day contribute no growth rate.
func AnalyzeTrends(samples []models.AggregatedBucket) TrendSummary {
	byDay := make(map[string]*DailyTotal)
	for _, s := range samples {
		key := s.Date.Format("2006-01-02")
		if total, ok := byDay[key]; ok {
			total.Count += s.Count
		} else {
			byDay[key] = &DailyTotal{Date: s.Date, Count: s.Count}
		}
	}

	totals := make([]DailyTotal, 0, len(byDay))
	for _, total := range byDay {
		totals = append(totals, *total)
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Date.Before(totals[j].Date)
	})

	summary := TrendSummary{DailyTotals: totals}

	var growthSum float64
	var growthN int
	for i := 1; i < len(totals); i++ {
		prev := totals[i-1].Count
		if prev <= 0 {
			continue
		}
		growth := float64(totals[i].Count-prev) / float64(prev) * 100
		growthSum += growth
		growthN++

		if growthN == 1 || growth > summary.MaxGrowthPercent {
			summary.MaxGrowthPercent = growth
			summary.MaxGrowthDate = totals[i].Date
		}
	}
	if growthN > 0 {
		summary.AvgGrowthPercent = growthSum / float64(growthN)
	}

	return summary
}
