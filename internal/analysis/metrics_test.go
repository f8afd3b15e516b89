package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"divarlens/server/internal/models"
)

func TestCalculateMetricsEmptySet(t *testing.T) {
	metrics := CalculateMetrics(nil)

	assert.Equal(t, 0, metrics.TotalListings)
	assert.Equal(t, int64(0), metrics.HighestTotal)
	assert.Equal(t, int64(0), metrics.AvgTotal)
	assert.Equal(t, int64(0), metrics.AvgSqm)
}

func TestCalculateMetricsConcreteScenario(t *testing.T) {
	records := []models.ListingRecord{
		record("2024-06-01", "1", i64(1000)),
		record("2024-06-01", "1", i64(3000)),
		record("2024-06-02", "2", nil),
	}

	metrics := CalculateMetrics(records)
	assert.Equal(t, 3, metrics.TotalListings)
	assert.Equal(t, int64(3000), metrics.HighestTotal)
	assert.Equal(t, int64(2000), metrics.AvgTotal)
	assert.Equal(t, int64(0), metrics.AvgSqm, "no price per sqm present yields zero, not an error")
}

func TestCalculateMetricsAllNullPrices(t *testing.T) {
	records := []models.ListingRecord{
		record("2024-06-01", "1", nil),
		record("2024-06-02", "2", nil),
	}

	metrics := CalculateMetrics(records)
	assert.Equal(t, 2, metrics.TotalListings, "records with null fields still count")
	assert.Equal(t, int64(0), metrics.HighestTotal)
	assert.Equal(t, int64(0), metrics.AvgTotal)
}

func TestCalculateMetricsTruncatesMeans(t *testing.T) {
	records := []models.ListingRecord{
		record("2024-06-01", "1", i64(10)),
		record("2024-06-01", "1", i64(11)),
		record("2024-06-01", "1", i64(11)),
	}
	records[0].PricePerSqm = i64(7)
	records[1].PricePerSqm = i64(8)

	metrics := CalculateMetrics(records)
	assert.Equal(t, int64(10), metrics.AvgTotal, "32/3 truncates to 10")
	assert.Equal(t, int64(7), metrics.AvgSqm, "15/2 truncates to 7")
}
