package api

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"divarlens/server/internal/models"
)

// bucketFeatureCollection converts aggregated buckets into point features
// keyed by (date, district). Currency properties stay in base Toman units;
// scaling is the map layer's job.
func bucketFeatureCollection(buckets []models.AggregatedBucket) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, bucket := range buckets {
		feature := geojson.NewFeature(orb.Point{bucket.Lng, bucket.Lat})
		feature.Properties = geojson.Properties{
			"date":          bucket.Date.Format("2006-01-02"),
			"district":      bucket.District,
			"district_name": bucket.DistrictName,
			"count":         bucket.Count,
		}
		if bucket.AvgTotalPrice != nil {
			feature.Properties["avg_total_price"] = *bucket.AvgTotalPrice
		}
		if bucket.AvgPricePerSqm != nil {
			feature.Properties["avg_price_per_sqm"] = *bucket.AvgPricePerSqm
		}
		fc.Append(feature)
	}

	return fc
}
