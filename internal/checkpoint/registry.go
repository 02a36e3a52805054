// Package checkpoint хранит неизменяемый набор контрольных точек и
// ищет точки рядом с заданной позицией.
package checkpoint

import (
	"github.com/shenikar/safewalk/internal/geo"
	"github.com/shenikar/safewalk/internal/models"
)

// DefaultThresholdKm - радиус срабатывания, около 100 метров
const DefaultThresholdKm = 0.1

// Registry - упорядоченный набор контрольных точек, только для чтения
type Registry struct {
	checkpoints []models.Checkpoint
}

// NewRegistry копирует переданные точки, порядок сохраняется
func NewRegistry(checkpoints []models.Checkpoint) *Registry {
	cp := make([]models.Checkpoint, len(checkpoints))
	copy(cp, checkpoints)
	return &Registry{checkpoints: cp}
}

// Default возвращает встроенный набор точек
func Default() *Registry {
	return NewRegistry([]models.Checkpoint{
		{Name: "Store", Latitude: 37.7749, Longitude: -122.4194},
		{Name: "Security Booth", Latitude: 37.7750, Longitude: -122.4180},
	})
}

// FindNearby возвращает все точки, расстояние до которых строго меньше thresholdKm.
// Порядок совпадает с порядком реестра, дубликаты не схлопываются.
func (r *Registry) FindNearby(pos models.Position, thresholdKm float64) []models.Checkpoint {
	var nearby []models.Checkpoint
	for _, cp := range r.checkpoints {
		if geo.GreatCircleDistanceKm(pos.Latitude, pos.Longitude, cp.Latitude, cp.Longitude) < thresholdKm {
			nearby = append(nearby, cp)
		}
	}
	return nearby
}

// All возвращает копию всего набора
func (r *Registry) All() []models.Checkpoint {
	out := make([]models.Checkpoint, len(r.checkpoints))
	copy(out, r.checkpoints)
	return out
}

// Len - количество точек
func (r *Registry) Len() int {
	return len(r.checkpoints)
}
