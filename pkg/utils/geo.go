package utils

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"routescout/internal/models/domain_models"
)

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two points in km.
func HaversineKm(a, b domain_models.Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// NormalizeNameKey lower-cases a place name and strips everything that is not
// a letter or digit, so "Central Museum" and "central-museum" collide.
func NormalizeNameKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ProximityBucket rounds a coordinate to a ~1 km grid cell. Two points inside
// the same cell are treated as the same physical location by the deduplicator.
func ProximityBucket(c domain_models.Coordinate) string {
	return fmt.Sprintf("%.2f:%.2f", c.Latitude, c.Longitude)
}

// NormalizeLocationKey builds the cache key used by the persistent POI store.
func NormalizeLocationKey(c domain_models.Coordinate) string {
	return fmt.Sprintf("loc:%.2f:%.2f", c.Latitude, c.Longitude)
}
