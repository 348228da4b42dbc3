package geo

import (
	"fmt"
	"math"
)

// EarthRadiusKm is the mean Earth radius used by the Haversine formula.
const EarthRadiusKm = 6371.0

var cardinalDirections = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// ValidCoordinates reports whether lat/lon are valid geographic degrees.
// Callers must validate before computing distances; the math below assumes it.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// DistanceKm computes the great-circle distance between two points using the
// Haversine formula, rounded to 2 decimal places.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := toRadians(lat1)
	lat2Rad := toRadians(lat2)
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return round2(EarthRadiusKm * c)
}

// IsWithinRadius reports whether (lat, lon) lies within radiusKm of the center.
func IsWithinRadius(centerLat, centerLon, lat, lon, radiusKm float64) bool {
	return DistanceKm(centerLat, centerLon, lat, lon) <= radiusKm
}

// BoundingBox returns the approximate rectangle containing a circle of
// radiusKm around the center, for coarse prefiltering before exact distance
// computation. 1 degree of latitude ~ 111 km; the longitude delta is corrected
// by cos(centerLat).
func BoundingBox(centerLat, centerLon, radiusKm float64) (minLat, maxLat, minLon, maxLon float64) {
	latDelta := radiusKm / 111.0
	lonDelta := radiusKm / (111.0 * math.Cos(toRadians(centerLat)))

	return centerLat - latDelta, centerLat + latDelta, centerLon - lonDelta, centerLon + lonDelta
}

// BearingDegrees computes the initial bearing from point 1 to point 2,
// normalized to [0, 360) and rounded to 2 decimal places.
func BearingDegrees(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := toRadians(lat1)
	lat2Rad := toRadians(lat2)
	dLonRad := toRadians(lon2 - lon1)

	y := math.Sin(dLonRad) * math.Cos(lat2Rad)
	x := math.Cos(lat1Rad)*math.Sin(lat2Rad) -
		math.Sin(lat1Rad)*math.Cos(lat2Rad)*math.Cos(dLonRad)

	bearing := math.Atan2(y, x) * 180 / math.Pi
	bearing = math.Mod(bearing+360, 360)

	return round2(bearing)
}

// CardinalDirection buckets a bearing into one of 8 compass points.
func CardinalDirection(bearing float64) string {
	index := int(math.Round(bearing/45)) % 8
	return cardinalDirections[index]
}

// FormatDistance renders a distance for display: "850m", "3.2km", "12km".
func FormatDistance(distanceKm float64) string {
	switch {
	case distanceKm < 1:
		return fmt.Sprintf("%dm", int(distanceKm*1000))
	case distanceKm < 10:
		return fmt.Sprintf("%.1fkm", distanceKm)
	default:
		return fmt.Sprintf("%dkm", int(distanceKm))
	}
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
