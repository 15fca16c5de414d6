package kernel

import (
	"fmt"

	"fiesta/internal/pkg/errs"
)

// Coordinate bounds for geographic locations.
const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// ErrLocationIsNotConstructed indicates a zero-value Location that bypassed
// NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"Location must be created via NewLocation")

// Location is a validated pair of geographic coordinates pointing at the
// delivery destination. A Location is required on every order: the mini-app
// rejects submissions without one, and the domain enforces it again here.
//
// Location is immutable; the zero value is invalid.
type Location struct {
	lat float64
	lng float64

	isConstructed bool
}

// NewLocation creates a Location from latitude and longitude, validating the
// coordinate ranges. Zero/zero is rejected as well: the mini-app never
// reports Null Island and the value almost certainly means a missing
// location.
func NewLocation(lat, lng float64) (Location, error) {
	if lat == 0 && lng == 0 {
		return Location{}, errs.NewValueIsRequiredError("location")
	}
	if lat < minLatitude || lat > maxLatitude {
		return Location{}, errs.NewValueIsOutOfRangeError("lat", lat, minLatitude, maxLatitude)
	}
	if lng < minLongitude || lng > maxLongitude {
		return Location{}, errs.NewValueIsOutOfRangeError("lng", lng, minLongitude, maxLongitude)
	}

	return Location{lat: lat, lng: lng, isConstructed: true}, nil
}

// Lat returns the latitude.
func (l Location) Lat() float64 {
	return l.lat
}

// Lng returns the longitude.
func (l Location) Lng() float64 {
	return l.lng
}

// MapURL returns a maps link for the location, used in chat notifications.
func (l Location) MapURL() string {
	return fmt.Sprintf("https://maps.google.com/?q=%g,%g", l.lat, l.lng)
}

// IsEqual compares two locations by coordinates.
func (l Location) IsEqual(other Location) bool {
	return l.lat == other.lat && l.lng == other.lng
}

// Validate rejects zero-value locations.
func (l Location) Validate() error {
	if !l.isConstructed {
		return ErrLocationIsNotConstructed
	}
	return nil
}
