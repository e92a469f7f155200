package geofence

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// northOf returns the point d meters due north of p on the sphere.
func northOf(p orb.Point, d float64) orb.Point {
	return orb.Point{p.Lon(), p.Lat() + (d/EarthRadiusMeters)*180/math.Pi}
}

func TestDistance_ZeroForIdenticalPoints(t *testing.T) {
	center := NewPoint(DefaultLatitude, DefaultLongitude)

	assert.Zero(t, Distance(center, center))
}

func TestDistance_Symmetric(t *testing.T) {
	points := []orb.Point{
		NewPoint(52.3547, 4.9543),
		NewPoint(52.3803, 4.8882),
		NewPoint(25.0330, 121.5654),
		NewPoint(-33.8688, 151.2093),
		NewPoint(0, 0),
	}

	for _, a := range points {
		for _, b := range points {
			assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
		}
	}
}

func TestDistance_KnownValue(t *testing.T) {
	// Science Park to Haarlemmerstraat, roughly 5 km.
	d := Distance(NewPoint(52.3547, 4.9543), NewPoint(52.3803, 4.8882))

	assert.InDelta(t, 5315, d, 20)
}

func TestDistance_NorthwardDestination(t *testing.T) {
	center := NewPoint(DefaultLatitude, DefaultLongitude)

	assert.InDelta(t, 10000.0, Distance(center, northOf(center, 10000)), 1e-6)
}

func TestIsWithinRadius(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		radius   float64
		want     bool
	}{
		{name: "inside", distance: 9999.9, radius: 10000, want: true},
		{name: "exactly on boundary", distance: 10000, radius: 10000, want: true},
		{name: "just outside", distance: 10000.0001, radius: 10000, want: false},
		{name: "far away", distance: 10001, radius: 10000, want: false},
		{name: "zero", distance: 0, radius: 10000, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWithinRadius(tt.distance, tt.radius))
		})
	}
}

func TestFence_Evaluate(t *testing.T) {
	fence := Default()
	center := fence.Center

	t.Run("reference point passes with zero distance", func(t *testing.T) {
		eval, err := fence.Evaluate(center)
		require.NoError(t, err)
		assert.Zero(t, eval.Distance)
		assert.True(t, eval.Within)
		assert.Equal(t, DefaultRadiusMeters, eval.Radius)
	})

	t.Run("point about 10001m away fails", func(t *testing.T) {
		eval, err := fence.Evaluate(northOf(center, 10001))
		require.NoError(t, err)
		assert.InDelta(t, 10001, eval.Distance, 1e-6)
		assert.False(t, eval.Within)
	})

	t.Run("point just inside passes", func(t *testing.T) {
		eval, err := fence.Evaluate(northOf(center, 9999.9))
		require.NoError(t, err)
		assert.True(t, eval.Within)
	})

	t.Run("point exactly at the radius passes", func(t *testing.T) {
		p := northOf(center, 10000)
		exact := Fence{Center: center, RadiusMeters: Distance(p, center)}

		eval, err := exact.Evaluate(p)
		require.NoError(t, err)
		assert.True(t, eval.Within)
	})

	t.Run("non-finite coordinates are rejected", func(t *testing.T) {
		_, err := fence.Evaluate(NewPoint(math.NaN(), 4.9))
		assert.ErrorIs(t, err, ErrInvalidCoordinate)

		_, err = fence.Evaluate(NewPoint(52.3, math.Inf(1)))
		assert.ErrorIs(t, err, ErrInvalidCoordinate)
	})
}

func TestRoundDistance(t *testing.T) {
	assert.Equal(t, 1234.6, RoundDistance(1234.56))
	assert.Equal(t, 0.0, RoundDistance(0.04))
}
