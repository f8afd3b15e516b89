package analysis

import "divarlens/server/internal/models"

// CalculateMetrics computes whole-set scalar statistics. Records missing a
// value for a field are skipped for that statistic only; when no record
// carries the field at all, the statistic is zero. Means are truncated, not
// rounded, because downstream formatting divides these integers into
// billion/trillion scales.
func CalculateMetrics(records []models.ListingRecord) models.MetricsSummary {
	metrics := models.MetricsSummary{TotalListings: len(records)}

	var (
		totalSum int64
		totalN   int
		sqmSum   int64
		sqmN     int
	)

	for _, r := range records {
		if r.TotalPrice != nil {
			if *r.TotalPrice > metrics.HighestTotal {
				metrics.HighestTotal = *r.TotalPrice
			}
			totalSum += *r.TotalPrice
			totalN++
		}
		if r.PricePerSqm != nil {
			sqmSum += *r.PricePerSqm
			sqmN++
		}
	}

	if totalN > 0 {
		metrics.AvgTotal = int64(float64(totalSum) / float64(totalN))
	}
	if sqmN > 0 {
		metrics.AvgSqm = int64(float64(sqmSum) / float64(sqmN))
	}

	return metrics
}
