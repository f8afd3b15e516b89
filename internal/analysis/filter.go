package analysis

import (
	"time"

	"divarlens/server/internal/models"
)

// DistrictWildcard matches every district; an empty district behaves the
// same way.
const DistrictWildcard = "all"

// Filter holds the optional constraints applied to a record set before
// analysis. Nil bounds impose no restriction.
type Filter struct {
	From     *time.Time
	To       *time.Time
	District string
}

// matches reports whether a record satisfies every supplied constraint.
// Date bounds are inclusive and compare against the raw scrape timestamp,
// not its date-only truncation.
func (f Filter) matches(r models.ListingRecord) bool {
	if f.From != nil && r.ScrapedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && r.ScrapedAt.After(*f.To) {
		return false
	}
	if f.District != "" && f.District != DistrictWildcard && r.District != f.District {
		return false
	}
	return true
}

// ApplyFilter returns the subset of records satisfying the filter. An empty
// result is valid output, never an error.
func ApplyFilter(records []models.ListingRecord, f Filter) []models.ListingRecord {
	filtered := make([]models.ListingRecord, 0, len(records))
	for _, r := range records {
		if f.matches(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
