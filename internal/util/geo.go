// Package util holds small helpers shared across layers.
package util

import (
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// Coordinate bounds in degrees.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ErrInvalidCoordinate is returned when a "lat,lng" pair cannot be parsed or is out of range.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// ValidCoordinate reports whether lat/lng is a finite point on the globe.
func ValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}

	return lat >= MinLatitude && lat <= MaxLatitude && lng >= MinLongitude && lng <= MaxLongitude
}

// NewPoint builds an orb point; orb stores longitude first.
func NewPoint(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}

// DistanceMeters returns the great-circle distance between two points.
func DistanceMeters(from, to orb.Point) float64 {
	return geo.DistanceHaversine(from, to)
}

// ParseLatLng parses a "lat,lng" pair such as "51.5007,-0.1246".
func ParseLatLng(raw string) (orb.Point, error) {
	latRaw, lngRaw, found := strings.Cut(raw, ",")
	if !found {
		return orb.Point{}, errors.Wrap(ErrInvalidCoordinate, "expected lat,lng")
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
	if err != nil {
		return orb.Point{}, errors.Wrap(ErrInvalidCoordinate, "latitude is not a number")
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(lngRaw), 64)
	if err != nil {
		return orb.Point{}, errors.Wrap(ErrInvalidCoordinate, "longitude is not a number")
	}

	if !ValidCoordinate(lat, lng) {
		return orb.Point{}, errors.Wrap(ErrInvalidCoordinate, "out of range")
	}

	return NewPoint(lat, lng), nil
}
