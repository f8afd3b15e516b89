package sampledata

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"divarlens/server/internal/geo"
	"divarlens/server/internal/models"
)

// Districts are the scraped Tehran districts, in a fixed order so a seeded
// generator always produces the same sequence.
var Districts = []string{"1", "2", "3", "6", "15"}

// baseCounts is the per-district daily listing volume the time series grows
// from.
var baseCounts = map[string]int{
	"1":  45,
	"2":  60,
	"3":  55,
	"6":  70,
	"15": 40,
}

// priceMultipliers scale the 2M Toman base price per district.
var priceMultipliers = map[string]float64{
	"1":  3.5,
	"2":  3.0,
	"3":  4.0,
	"6":  2.5,
	"15": 1.8,
}

const baseAveragePrice = 2_000_000

// Generator produces synthetic listing records and aggregated time-series
// samples. All randomness comes from the injected, explicitly seeded source;
// the analytic core never consumes it.
type Generator struct {
	rng       *rand.Rand
	locations *geo.LocationTable
	logger    *logrus.Logger
}

// NewGenerator creates a generator with its own deterministic random source.
func NewGenerator(seed int64, locations *geo.LocationTable, logger *logrus.Logger) *Generator {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	if locations == nil {
		locations = geo.DefaultTable()
	}

	return &Generator{
		rng:       rand.New(rand.NewSource(seed)),
		locations: locations,
		logger:    logger,
	}
}

// Records generates count sample listings spread over the 14 days before
// now. Price per sqm is derived from total price and size; coordinates
// jitter around the district reference point.
func (g *Generator) Records(count int, now time.Time) []models.ListingRecord {
	records := make([]models.ListingRecord, 0, count)

	for i := 0; i < count; i++ {
		district := Districts[g.rng.Intn(len(Districts))]
		size := 50 + g.rng.Intn(150)
		totalPrice := 5_000_000_000 + g.rng.Int63n(45_000_000_000)
		pricePerSqm := totalPrice / int64(size)

		base := g.locations.Lookup(district)
		lat := base.Lat() + (g.rng.Float64()-0.5)*0.04
		lng := base.Lon() + (g.rng.Float64()-0.5)*0.04
		age := 1 + g.rng.Intn(29)

		records = append(records, models.ListingRecord{
			ScrapedAt:   now.AddDate(0, 0, -g.rng.Intn(14)),
			District:    district,
			Size:        &size,
			TotalPrice:  &totalPrice,
			PricePerSqm: &pricePerSqm,
			Latitude:    &lat,
			Longitude:   &lng,
			Title:       fmt.Sprintf("Apartment %dsqm in District %s", size, district),
			Token:       fmt.Sprintf("sample_%d", i),
			Age:         &age,
		})
	}

	g.logger.WithField("count", len(records)).Debug("Generated sample records")
	return records
}

// TimeSeries generates 14 days of aggregated bucket samples for every
// district, with a 4%/day growth factor and bounded noise on counts and
// prices.
func (g *Generator) TimeSeries(now time.Time) []models.AggregatedBucket {
	base := now.AddDate(0, 0, -14)
	samples := make([]models.AggregatedBucket, 0, 14*len(Districts))

	for i := 0; i < 14; i++ {
		date := base.AddDate(0, 0, i)
		day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		growthFactor := 1 + float64(i)*0.04

		for _, district := range Districts {
			count := int(float64(baseCounts[district]) * growthFactor * (0.8 + 0.4*g.rng.Float64()))
			avgPrice := int64(baseAveragePrice * priceMultipliers[district] * (0.9 + 0.2*g.rng.Float64()))
			avgSqm := avgPrice / int64(80+g.rng.Intn(70))
			location := g.locations.Lookup(district)

			samples = append(samples, models.AggregatedBucket{
				Date:           day,
				District:       district,
				DistrictName:   fmt.Sprintf("District %s", district),
				Count:          count,
				AvgTotalPrice:  &avgPrice,
				AvgPricePerSqm: &avgSqm,
				Lat:            location.Lat(),
				Lng:            location.Lon(),
			})
		}
	}

	g.logger.WithField("samples", len(samples)).Debug("Generated time series samples")
	return samples
}
