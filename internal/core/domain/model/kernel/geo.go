package kernel

import (
	"errors"
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// LatitudeMin is the southern bound of a valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the northern bound of a valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the western bound of a valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the eastern bound of a valid longitude in degrees.
	LongitudeMax = 180.0

	earthRadiusMeters = 6371008.8
)

// ErrGeoPointIsNotConstructed is returned when a GeoPoint was not created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable WGS84 coordinate pair. It is used both for an
// order's service location and for the position where evidence was captured.
//
// Example:
//
//	p, err := kernel.NewGeoPoint(41.0082, 28.9784)
//	if err != nil {
//	    // latitude or longitude out of range
//	}
//	fmt.Println(p) // GeoPoint(41.008200,28.978400)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint validates lat ∈ [-90, 90] and lng ∈ [-180, 180] (inclusive).
// Both coordinates are checked and all failures are returned joined.
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLatitude(lat), p.setLongitude(lng)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate reports whether the point was built by NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.lat
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.lng
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.lat, p.lng)
}

// IsEqual compares two constructed points coordinate by coordinate.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lng == other.lng, nil
}

// DistanceMeters returns the great-circle (haversine) distance to other in meters.
func (p GeoPoint) DistanceMeters(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := toRadians(p.lat)
	lat2 := toRadians(other.lat)
	dLat := lat2 - lat1
	dLng := toRadians(other.lng - p.lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(h))), nil
}

func (p *GeoPoint) setLatitude(lat float64) error {
	if math.IsNaN(lat) || lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}

	p.lat = lat
	return nil
}

func (p *GeoPoint) setLongitude(lng float64) error {
	if math.IsNaN(lng) || lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lng, LongitudeMin, LongitudeMax)
	}

	p.lng = lng
	return nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
