package analysis

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"divarlens/server/internal/geo"
	"divarlens/server/internal/models"
)

// Analyzer runs the full pipeline for one request: filter, aggregate,
// metrics, insights, assembly. It holds no state between invocations.
type Analyzer struct {
	aggregator *Aggregator
}

// NewAnalyzer creates an analyzer using the given district location table.
func NewAnalyzer(locations *geo.LocationTable) *Analyzer {
	return &Analyzer{aggregator: NewAggregator(locations)}
}

// Aggregate exposes the aggregation stage on its own, for consumers that
// only need buckets (the map export).
func (a *Analyzer) Aggregate(records []models.ListingRecord) []models.AggregatedBucket {
	return a.aggregator.Aggregate(records)
}

// Analyze filters the record set and assembles the combined result. The
// date range reflects the min/max scrape timestamps actually present in the
// filtered set; "now" stands in for both bounds when the set is empty.
func (a *Analyzer) Analyze(records []models.ListingRecord, f Filter, now time.Time) models.AnalysisResult {
	filtered := ApplyFilter(records, f)

	return models.AnalysisResult{
		RawData:        filtered,
		AggregatedData: a.aggregator.Aggregate(filtered),
		Metrics:        CalculateMetrics(filtered),
		Insights:       GenerateInsights(filtered),
		FilteredCount:  len(filtered),
		DateRange:      effectiveDateRange(filtered, now),
	}
}

func effectiveDateRange(records []models.ListingRecord, now time.Time) models.DateRange {
	if len(records) == 0 {
		return models.DateRange{From: now, To: now}
	}

	dr := models.DateRange{From: records[0].ScrapedAt, To: records[0].ScrapedAt}
	for _, r := range records[1:] {
		if r.ScrapedAt.Before(dr.From) {
			dr.From = r.ScrapedAt
		}
		if r.ScrapedAt.After(dr.To) {
			dr.To = r.ScrapedAt
		}
	}
	return dr
}

const reportRule = "============================================================"

// RenderReport builds the static multi-section text report from a full
// record set plus a generated time-series sample set. Currency values are
// shown in billions with one decimal; no analytic computation happens here
// beyond the statistics the sections describe.
func RenderReport(records []models.ListingRecord, samples []models.AggregatedBucket, now time.Time) string {
	var b strings.Builder

	b.WriteString(reportRule + "\n")
	b.WriteString("Tehran Real Estate Market Analysis Report - Divar\n")
	b.WriteString(reportRule + "\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format("2006-01-02 15:04"))

	if len(records) > 0 {
		writeOverallSection(&b, records)
	}
	if len(samples) > 0 {
		writeTrendSection(&b, samples)
		writeDistrictSection(&b, samples)
	}

	b.WriteString(reportRule + "\n")
	return b.String()
}

func writeOverallSection(b *strings.Builder, records []models.ListingRecord) {
	metrics := CalculateMetrics(records)

	districts := make(map[string]struct{})
	var sizeSum, sizeN int
	for _, r := range records {
		districts[r.District] = struct{}{}
		if r.Size != nil {
			sizeSum += *r.Size
			sizeN++
		}
	}

	b.WriteString("Overall Statistics:\n")
	fmt.Fprintf(b, "- Total listings: %d\n", metrics.TotalListings)
	fmt.Fprintf(b, "- Unique districts: %d\n", len(districts))
	fmt.Fprintf(b, "- Average price: %d Toman\n", metrics.AvgTotal)
	fmt.Fprintf(b, "- Highest price: %d Toman\n", metrics.HighestTotal)
	if sizeN > 0 {
		fmt.Fprintf(b, "- Average size: %.1f sqm\n", float64(sizeSum)/float64(sizeN))
	}
	b.WriteString("\n")
}

func writeTrendSection(b *strings.Builder, samples []models.AggregatedBucket) {
	var totalListings int
	var totalValue int64
	for _, s := range samples {
		totalListings += s.Count
		if s.AvgTotalPrice != nil {
			totalValue += int64(s.Count) * *s.AvgTotalPrice
		}
	}

	b.WriteString("Trend Analysis:\n")
	fmt.Fprintf(b, "- Total listings in 14 days: %d\n", totalListings)
	fmt.Fprintf(b, "- Total market value: %.1f billion Toman\n\n", float64(totalValue)/1e9)
}

type districtSummary struct {
	count      int
	priceSum   int64
	priceN     int
	totalValue int64
}

func writeDistrictSection(b *strings.Builder, samples []models.AggregatedBucket) {
	byDistrict := make(map[string]*districtSummary)
	for _, s := range samples {
		summary, ok := byDistrict[s.District]
		if !ok {
			summary = &districtSummary{}
			byDistrict[s.District] = summary
		}
		summary.count += s.Count
		if s.AvgTotalPrice != nil {
			summary.priceSum += *s.AvgTotalPrice
			summary.priceN++
			summary.totalValue += int64(s.Count) * *s.AvgTotalPrice
		}
	}

	codes := make([]string, 0, len(byDistrict))
	for code := range byDistrict {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	b.WriteString("District Analysis:\n")
	for _, code := range codes {
		summary := byDistrict[code]
		var avgPrice int64
		if summary.priceN > 0 {
			avgPrice = int64(float64(summary.priceSum) / float64(summary.priceN))
		}
		fmt.Fprintf(b, "District %s:\n", code)
		fmt.Fprintf(b, "  - Listing count: %d\n", summary.count)
		fmt.Fprintf(b, "  - Average price: %d Toman\n", avgPrice)
		fmt.Fprintf(b, "  - Market value: %.1f billion Toman\n\n", float64(summary.totalValue)/1e9)
	}
}
