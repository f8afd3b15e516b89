package analysis

import (
	"time"

	"divarlens/server/internal/models"
)

func i64(v int64) *int64 { return &v }

func iptr(v int) *int { return &v }

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func record(date string, district string, totalPrice *int64) models.ListingRecord {
	return models.ListingRecord{
		ScrapedAt:  day(date),
		District:   district,
		TotalPrice: totalPrice,
	}
}
