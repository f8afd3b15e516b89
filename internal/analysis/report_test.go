package analysis

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"divarlens/server/internal/models"
)

func TestAnalyzeAssemblesResult(t *testing.T) {
	records := []models.ListingRecord{
		record("2024-06-01", "1", i64(1000)),
		record("2024-06-05", "2", i64(3000)),
		record("2024-06-10", "15", nil),
	}
	now := day("2024-06-15")

	result := NewAnalyzer(nil).Analyze(records, Filter{}, now)

	assert.Equal(t, 3, result.FilteredCount)
	assert.Len(t, result.RawData, 3)
	assert.Len(t, result.AggregatedData, 3)
	assert.Equal(t, 3, result.Metrics.TotalListings)
	assert.NotEmpty(t, result.Insights)
	assert.Equal(t, day("2024-06-01"), result.DateRange.From)
	assert.Equal(t, day("2024-06-10"), result.DateRange.To)
}

func TestAnalyzeEmptyResultUsesNowForDateRange(t *testing.T) {
	now := day("2024-06-15")
	from := day("2024-07-01")

	result := NewAnalyzer(nil).Analyze(testRecords(), Filter{From: &from}, now)

	assert.Zero(t, result.FilteredCount)
	assert.Empty(t, result.Insights)
	assert.Equal(t, now, result.DateRange.From)
	assert.Equal(t, now, result.DateRange.To)
}

func TestAnalyzeAppliesFilterBeforeEveryStage(t *testing.T) {
	records := []models.ListingRecord{
		record("2024-06-01", "1", i64(1000)),
		record("2024-06-01", "2", i64(9000)),
	}

	result := NewAnalyzer(nil).Analyze(records, Filter{District: "1"}, day("2024-06-15"))

	assert.Equal(t, 1, result.FilteredCount)
	assert.Equal(t, int64(1000), result.Metrics.HighestTotal, "metrics must see only the filtered set")
	assert.Len(t, result.AggregatedData, 1)
}

func sampleBuckets() []models.AggregatedBucket {
	return []models.AggregatedBucket{
		{Date: day("2024-06-01"), District: "2", Count: 10, AvgTotalPrice: i64(6_000_000_000)},
		{Date: day("2024-06-01"), District: "15", Count: 5, AvgTotalPrice: i64(2_000_000_000)},
		{Date: day("2024-06-02"), District: "2", Count: 12, AvgTotalPrice: i64(8_000_000_000)},
	}
}

func TestRenderReportSections(t *testing.T) {
	records := []models.ListingRecord{
		record("2024-06-01", "1", i64(5_000_000_000)),
		record("2024-06-02", "2", i64(7_000_000_000)),
	}
	records[0].Size = iptr(80)

	report := RenderReport(records, sampleBuckets(), day("2024-06-15").Add(10*time.Hour))

	assert.Contains(t, report, "Tehran Real Estate Market Analysis Report - Divar")
	assert.Contains(t, report, "Generated: 2024-06-15 10:00")
	assert.Contains(t, report, "Overall Statistics:")
	assert.Contains(t, report, "- Total listings: 2")
	assert.Contains(t, report, "- Unique districts: 2")
	assert.Contains(t, report, "- Highest price: 7000000000 Toman")
	assert.Contains(t, report, "- Average size: 80.0 sqm")
	assert.Contains(t, report, "Trend Analysis:")
	assert.Contains(t, report, "- Total listings in 14 days: 27")
	// 10*6e9 + 5*2e9 + 12*8e9 = 166e9
	assert.Contains(t, report, "- Total market value: 166.0 billion Toman")
	assert.Contains(t, report, "District Analysis:")
}

func TestRenderReportDistrictOrderAscending(t *testing.T) {
	report := RenderReport(nil, sampleBuckets(), day("2024-06-15"))

	idx15 := strings.Index(report, "District 15:")
	idx2 := strings.Index(report, "District 2:")
	assert.Greater(t, idx15, -1)
	assert.Greater(t, idx2, -1)
	assert.Less(t, idx15, idx2, "district codes sort ascending as strings")
}

func TestRenderReportEmptyInputs(t *testing.T) {
	report := RenderReport(nil, nil, day("2024-06-15"))

	assert.NotContains(t, report, "Overall Statistics:")
	assert.NotContains(t, report, "Trend Analysis:")
	assert.Contains(t, report, "Tehran Real Estate Market Analysis Report - Divar")
}
