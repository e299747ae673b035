package main

import "math"

const earthRadius = 6371000 // meters

// haversineDistance returns the great-circle distance in meters between two
// points given in degrees. The distance is purely horizontal; elevation is
// handled as an independent channel elsewhere. Non-finite coordinates are
// not trapped and produce non-finite distances.
func haversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLatRad := (lat2 - lat1) * math.Pi / 180
	deltaLonRad := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLatRad/2)*math.Sin(deltaLatRad/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLonRad/2)*math.Sin(deltaLonRad/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// pointDistances returns one entry per trackpoint: entry 0 is always 0,
// entry i is the distance between point i-1 and point i. Tracks with fewer
// than two points yield all zeros (or an empty slice).
func pointDistances(t *Track) []float64 {
	dist := make([]float64, t.Len())
	for i := 1; i < len(dist); i++ {
		dist[i] = haversineDistance(t.Lat[i-1], t.Lon[i-1], t.Lat[i], t.Lon[i])
	}
	return dist
}

// cumulativeDistances turns a per-point distance array into the cumulative
// axis used as the interpolation domain, and returns the total track
// distance (the last cumulative value, 0 for N <= 1).
func cumulativeDistances(dist []float64) (axis []float64, total float64) {
	axis = make([]float64, len(dist))
	for i := 1; i < len(axis); i++ {
		axis[i] = axis[i-1] + dist[i]
	}
	if len(axis) > 0 {
		total = axis[len(axis)-1]
	}
	return axis, total
}
