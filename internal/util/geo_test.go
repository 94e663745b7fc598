package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidCoordinate(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		expected bool
	}{
		{"origin", 0, 0, true},
		{"north pole", 90, 0, true},
		{"south pole antimeridian", -90, -180, true},
		{"east edge", 10, 180, true},
		{"latitude too high", 90.0001, 0, false},
		{"longitude too low", 0, -180.5, false},
		{"nan latitude", math.NaN(), 0, false},
		{"infinite longitude", 0, math.Inf(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidCoordinate(tt.lat, tt.lng))
		})
	}
}

func TestDistanceMeters(t *testing.T) {
	bigBen := NewPoint(51.5007, -0.1246)
	eiffel := NewPoint(48.8584, 2.2945)

	d := DistanceMeters(bigBen, eiffel)
	assert.InDelta(t, 340_000, d, 5_000)
	assert.InDelta(t, 0, DistanceMeters(bigBen, bigBen), 1e-6)
	assert.InDelta(t, d, DistanceMeters(eiffel, bigBen), 1e-6)
}

func TestParseLatLng(t *testing.T) {
	p, err := ParseLatLng(" 51.5007 , -0.1246 ")
	require.NoError(t, err)
	assert.InDelta(t, 51.5007, p.Lat(), 1e-9)
	assert.InDelta(t, -0.1246, p.Lon(), 1e-9)

	for _, raw := range []string{"", "51.5", "abc,1", "1,abc", "91,0", "0,181"} {
		_, err := ParseLatLng(raw)
		assert.ErrorIs(t, err, ErrInvalidCoordinate, raw)
	}
}
