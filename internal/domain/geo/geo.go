// Package geo computes great-circle distances and proximity tiers.
package geo

import (
	"math"

	"github.com/maeumlab/gunghap/internal/domain/model"
)

const (
	// earthRadiusKM is the mean Earth radius used by the haversine
	// formula.
	earthRadiusKM = 6371.0

	// UnknownDistanceKM is the sentinel used when either coordinate is
	// absent. Large enough to land in the lowest proximity tier.
	UnknownDistanceKM = 9999.0
)

// Distance returns the haversine great-circle distance in kilometers.
// A nil coordinate on either side yields UnknownDistanceKM rather than
// an error, so downstream tiering degrades gracefully.
func Distance(a, b *model.Coordinate) float64 {
	if a == nil || b == nil {
		return UnknownDistanceKM
	}

	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKM * c
}

// ProximityScore maps a distance to the 5-10 tier score. The step
// function is monotonic non-increasing; no tier produces 6.
func ProximityScore(distanceKM float64) int {
	switch {
	case distanceKM <= 20:
		return 10
	case distanceKM <= 30:
		return 9
	case distanceKM <= 50:
		return 8
	case distanceKM <= 100:
		return 7
	default:
		return 5
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
