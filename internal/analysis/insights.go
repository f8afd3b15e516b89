package analysis

import (
	"fmt"
	"sort"

	"divarlens/server/internal/models"
)

// GenerateInsights derives short textual facts from a filtered record set.
// The order is fixed and part of the contract: average price, most active
// district, average size, total market value. Each fact is appended only
// when its prerequisite data exists; an empty set yields an empty list.
func GenerateInsights(records []models.ListingRecord) []string {
	insights := make([]string, 0, 4)
	if len(records) == 0 {
		return insights
	}

	var (
		priceSum   int64
		priceCount int
		sizeSum    int
		sizeCount  int
	)
	districtCounts := make(map[string]int)

	for _, r := range records {
		districtCounts[r.District]++
		if r.TotalPrice != nil {
			priceSum += *r.TotalPrice
			priceCount++
		}
		if r.Size != nil {
			sizeSum += *r.Size
			sizeCount++
		}
	}

	if priceCount > 0 {
		avgPrice := float64(priceSum) / float64(priceCount)
		insights = append(insights, fmt.Sprintf("Average property price: %.1f billion Toman", avgPrice/1e9))
	}

	if top, count, ok := mostActiveDistrict(districtCounts); ok {
		insights = append(insights, fmt.Sprintf("Most active district: District %s with %d listings", top, count))
	}

	if sizeCount > 0 {
		avgSize := float64(sizeSum) / float64(sizeCount)
		insights = append(insights, fmt.Sprintf("Average property size: %.1f square meters", avgSize))
	}

	if priceCount > 0 {
		insights = append(insights, fmt.Sprintf("Total market value: %.1f trillion Toman", float64(priceSum)/1e12))
	}

	return insights
}

// mostActiveDistrict returns the district with the largest listing count.
// Ties go to the lexicographically smallest code so the result is stable
// regardless of map iteration order ("15" sorts before "2"; the rule buys
// determinism, not numeric ordering).
func mostActiveDistrict(counts map[string]int) (string, int, bool) {
	if len(counts) == 0 {
		return "", 0, false
	}

	codes := make([]string, 0, len(counts))
	for code := range counts {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	top := codes[0]
	for _, code := range codes[1:] {
		if counts[code] > counts[top] {
			top = code
		}
	}
	return top, counts[top], true
}
