package models

import "time"

// ListingRecord is a single scraped Divar listing. Optional numeric fields
// are pointers so that an absent value and a literal zero stay
// distinguishable through every downstream average.
type ListingRecord struct {
	ScrapedAt   time.Time `json:"scrapedDate"`
	District    string    `json:"district"`
	Size        *int      `json:"size"`
	TotalPrice  *int64    `json:"totalPrice"`
	PricePerSqm *int64    `json:"pricePerSqm"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Title       string    `json:"title"`
	Token       string    `json:"token"`
	Age         *int      `json:"age"`
}

// Day returns the scrape timestamp truncated to its calendar date in UTC.
func (r ListingRecord) Day() time.Time {
	return time.Date(r.ScrapedAt.Year(), r.ScrapedAt.Month(), r.ScrapedAt.Day(), 0, 0, 0, 0, time.UTC)
}

// AggregatedBucket is one (calendar date, district) summary row. The average
// fields are nil when no record in the bucket carried the underlying value.
type AggregatedBucket struct {
	Date           time.Time `json:"date"`
	District       string    `json:"district"`
	DistrictName   string    `json:"districtName"`
	Count          int       `json:"count"`
	AvgTotalPrice  *int64    `json:"avgTotalPrice"`
	AvgPricePerSqm *int64    `json:"avgPricePerSqm"`
	Lat            float64   `json:"lat"`
	Lng            float64   `json:"lng"`
}

// MetricsSummary holds scalar statistics over a record set. An empty or
// all-null input yields zeros, never an error.
type MetricsSummary struct {
	TotalListings int   `json:"totalListings"`
	HighestTotal  int64 `json:"highestTotal"`
	AvgTotal      int64 `json:"avgTotal"`
	AvgSqm        int64 `json:"avgSqm"`
}

// DateRange is the effective scrape-timestamp span of a filtered set.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// AnalysisResult is the combined output of one analysis run.
type AnalysisResult struct {
	RawData        []ListingRecord    `json:"rawData"`
	AggregatedData []AggregatedBucket `json:"aggregatedData"`
	Metrics        MetricsSummary     `json:"metrics"`
	Insights       []string           `json:"insights"`
	FilteredCount  int                `json:"filteredCount"`
	DateRange      DateRange          `json:"dateRange"`
}
