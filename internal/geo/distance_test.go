package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGreatCircleDistanceKm_SamePoint(t *testing.T) {
	points := [][2]float64{
		{37.7749, -122.4194},
		{0, 0},
		{-6.2088, 106.8456},
		{89.9, 179.9},
	}
	for _, p := range points {
		assert.Zero(t, GreatCircleDistanceKm(p[0], p[1], p[0], p[1]))
	}
}

func TestGreatCircleDistanceKm_Symmetric(t *testing.T) {
	pairs := [][4]float64{
		{37.7749, -122.4194, 37.7750, -122.4180},
		{55.7558, 37.6173, 59.9343, 30.3351},
		{-33.8688, 151.2093, 51.5074, -0.1278},
	}
	for _, p := range pairs {
		ab := GreatCircleDistanceKm(p[0], p[1], p[2], p[3])
		ba := GreatCircleDistanceKm(p[2], p[3], p[0], p[1])
		assert.InDelta(t, ab, ba, 1e-9)
		assert.Positive(t, ab)
	}
}

func TestGreatCircleDistanceKm_Checkpoints(t *testing.T) {
	// Store -> Security Booth, чуть больше порога 100 м
	d := GreatCircleDistanceKm(37.7749, -122.4194, 37.7750, -122.4180)
	assert.InDelta(t, 0.124, d, 0.001)
	assert.False(t, d < 0.1)
}

func TestGreatCircleDistanceKm_KnownDistance(t *testing.T) {
	// Москва - Санкт-Петербург, около 634 км
	d := GreatCircleDistanceKm(55.7558, 37.6173, 59.9343, 30.3351)
	assert.InDelta(t, 634, d, 5)
}
