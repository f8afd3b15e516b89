package analysis

import (
	"fmt"
	"sort"
	"time"

	"divarlens/server/internal/geo"
	"divarlens/server/internal/models"
)

// Aggregator groups listing records into per-(date, district) buckets. The
// injected location table supplies the reference plot point per district.
type Aggregator struct {
	locations *geo.LocationTable
}

// NewAggregator creates an aggregator backed by the given location table.
func NewAggregator(locations *geo.LocationTable) *Aggregator {
	if locations == nil {
		locations = geo.DefaultTable()
	}
	return &Aggregator{locations: locations}
}

type bucketKey struct {
	day      string
	district string
}

type bucketAccumulator struct {
	date          time.Time
	district      string
	count         int
	totalPriceSum int64
	totalPriceN   int
	sqmPriceSum   int64
	sqmPriceN     int
}

// Aggregate produces one bucket per distinct (calendar date, district) pair.
// Averages are arithmetic means over only the records carrying a value for
// that field, truncated to integers; a bucket with no such records gets a
// nil average. A supplied price-per-sqm is always trusted as-is and never
// derived from total price and size here. Output is sorted by date, then
// district, so a given input always yields the same bucket order.
func (a *Aggregator) Aggregate(records []models.ListingRecord) []models.AggregatedBucket {
	groups := make(map[bucketKey]*bucketAccumulator)

	for _, r := range records {
		day := r.Day()
		key := bucketKey{day: day.Format("2006-01-02"), district: r.District}

		acc, ok := groups[key]
		if !ok {
			acc = &bucketAccumulator{date: day, district: r.District}
			groups[key] = acc
		}

		acc.count++
		if r.TotalPrice != nil {
			acc.totalPriceSum += *r.TotalPrice
			acc.totalPriceN++
		}
		if r.PricePerSqm != nil {
			acc.sqmPriceSum += *r.PricePerSqm
			acc.sqmPriceN++
		}
	}

	buckets := make([]models.AggregatedBucket, 0, len(groups))
	for _, acc := range groups {
		location := a.locations.Lookup(acc.district)
		buckets = append(buckets, models.AggregatedBucket{
			Date:           acc.date,
			District:       acc.district,
			DistrictName:   fmt.Sprintf("District %s", acc.district),
			Count:          acc.count,
			AvgTotalPrice:  truncatedMean(acc.totalPriceSum, acc.totalPriceN),
			AvgPricePerSqm: truncatedMean(acc.sqmPriceSum, acc.sqmPriceN),
			Lat:            location.Lat(),
			Lng:            location.Lon(),
		})
	}

	sort.Slice(buckets, func(i, j int) bool {
		if !buckets[i].Date.Equal(buckets[j].Date) {
			return buckets[i].Date.Before(buckets[j].Date)
		}
		return buckets[i].District < buckets[j].District
	})

	return buckets
}

// truncatedMean discards the fractional part of the mean, matching the
// integer conversion the rest of the pipeline scales by.
func truncatedMean(sum int64, n int) *int64 {
	if n == 0 {
		return nil
	}
	mean := int64(float64(sum) / float64(n))
	return &mean
}
