package v1

import "time"

// NearbyRequest DTO для поиска контрольных точек рядом с позицией
// @Description DTO для поиска контрольных точек рядом с позицией
type NearbyRequest struct {
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
	ThresholdKm float64  `json:"threshold_km,omitempty" validate:"omitempty,gt=0,lte=50"`
}

// CheckpointResponse DTO для ответа с контрольной точкой
// @Description DTO для ответа с контрольной точкой
type CheckpointResponse struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NearbyCheckpointResponse DTO для точки рядом с позицией
// @Description DTO для точки рядом с позицией
type NearbyCheckpointResponse struct {
	CheckpointResponse
	DistanceKm float64 `json:"distance_km"`
}

// PositionResponse DTO для позиции
// @Description DTO для позиции
type PositionResponse struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	CapturedAt time.Time `json:"captured_at"`
}

// MonitorStatusResponse DTO для состояния фонового монитора
// @Description DTO для состояния фонового монитора
type MonitorStatusResponse struct {
	State                  string            `json:"state"`
	LastPosition           *PositionResponse `json:"last_position,omitempty"`
	RunningSince           *time.Time        `json:"running_since,omitempty"`
	Ticks                  uint64            `json:"ticks"`
	NotificationPermission string            `json:"notification_permission,omitempty"`
}

// HealthResponse DTO для health-check
// @Description DTO для health-check
type HealthResponse struct {
	Status      string `json:"status"`
	Foregrounds int    `json:"foregrounds"`
}
