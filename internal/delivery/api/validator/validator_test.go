package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name string   `json:"name" validate:"required"`
	Lat  *float64 `json:"lat" validate:"required,min=-90,max=90"`
}

func TestCustomValidator(t *testing.T) {
	v := New()
	lat := 12.5
	badLat := 120.0

	assert.NoError(t, v.Validate(&sampleRequest{Name: "Home", Lat: &lat}))

	err := v.Validate(&sampleRequest{Lat: &badLat})
	assert.Error(t, err)
	assert.Equal(t, map[string]string{"name": "required", "lat": "max=90"}, Details(err))

	err = v.Validate(&sampleRequest{Name: "Home"})
	assert.Equal(t, map[string]string{"lat": "required"}, Details(err))

	assert.Nil(t, Details(errors.New("other")))
}
