// Package geofence decides whether a reported position lies within a circular
// boundary around a fixed reference point.
package geofence

import (
	"math"

	"checkin/internal/errors"

	"github.com/paulmach/orb"
)

const (
	// EarthRadiusMeters is the spherical Earth radius used by Distance.
	EarthRadiusMeters = 6371000.0

	// DefaultLatitude and DefaultLongitude locate Science Park Amsterdam.
	DefaultLatitude  = 52.3547
	DefaultLongitude = 4.9543

	// DefaultRadiusMeters is the allowed distance from the reference point.
	DefaultRadiusMeters = 10000.0
)

// ErrInvalidCoordinate is returned for NaN or infinite coordinates.
var ErrInvalidCoordinate = errors.New("coordinate must be a finite number")

// Distance returns the great-circle distance in meters between two points
// using the haversine formula. Points are orb.Point values, i.e. [lng, lat].
func Distance(a, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	dLat := (b.Lat() - a.Lat()) * math.Pi / 180
	dLng := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// IsWithinRadius reports whether distance passes the radius test.
// The boundary is inclusive: only a strictly greater distance fails.
func IsWithinRadius(distanceMeters, radiusMeters float64) bool {
	return !(distanceMeters > radiusMeters)
}

// NewPoint builds an orb.Point from latitude and longitude in that order.
func NewPoint(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}

// Fence is a circular boundary around Center.
type Fence struct {
	Center       orb.Point
	RadiusMeters float64
}

// Evaluation is the outcome of checking one position against a Fence.
type Evaluation struct {
	Distance float64
	Radius   float64
	Within   bool
}

// Default returns the fence around the default reference point.
func Default() Fence {
	return Fence{
		Center:       NewPoint(DefaultLatitude, DefaultLongitude),
		RadiusMeters: DefaultRadiusMeters,
	}
}

// Evaluate measures p against the fence. It performs no range validation
// beyond rejecting non-finite input.
func (f Fence) Evaluate(p orb.Point) (Evaluation, error) {
	if !isFinite(p.Lat()) || !isFinite(p.Lon()) {
		return Evaluation{}, ErrInvalidCoordinate
	}

	distance := Distance(p, f.Center)

	return Evaluation{
		Distance: distance,
		Radius:   f.RadiusMeters,
		Within:   IsWithinRadius(distance, f.RadiusMeters),
	}, nil
}

// RoundDistance rounds meters to one decimal place for display.
func RoundDistance(meters float64) float64 {
	return math.Round(meters*10) / 10
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
