package direction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/typekit/pkg/direction"
	"github.com/arthur-debert/typekit/pkg/errors"
)

func TestAxisTable(t *testing.T) {
	tests := []struct {
		axis       direction.Axis
		name       string
		other      direction.Axis
		directions [2]direction.Direction
	}{
		{
			axis:       direction.Horizontal,
			name:       "horizontal",
			other:      direction.Vertical,
			directions: [2]direction.Direction{direction.Left, direction.Right},
		},
		{
			axis:       direction.Vertical,
			name:       "vertical",
			other:      direction.Horizontal,
			directions: [2]direction.Direction{direction.Up, direction.Down},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.axis.IsValid())
			assert.Equal(t, tt.name, tt.axis.String())
			assert.Equal(t, tt.other, tt.axis.Other())
			assert.Equal(t, tt.axis, tt.axis.Other().Other())
			assert.Equal(t, tt.directions, tt.axis.Directions())
		})
	}
}

func TestAxisDirectionsAgree(t *testing.T) {
	// Every direction must report an axis that lists it
	for _, d := range direction.Directions() {
		dirs := d.Axis().Directions()
		assert.Contains(t, dirs[:], d)
	}
}

func TestParseAxis(t *testing.T) {
	a, err := direction.ParseAxis("Vertical")
	require.NoError(t, err)
	assert.Equal(t, direction.Vertical, a)

	_, err = direction.ParseAxis("diagonal")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrEnumParse))
}

func TestAxisOutOfRange(t *testing.T) {
	a := direction.Axis(-1)

	assert.False(t, a.IsValid())
	assert.Equal(t, "axis(-1)", a.String())

	_, err := a.MarshalText()
	require.Error(t, err)
}
