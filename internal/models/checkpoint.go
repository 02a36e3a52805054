package models

// Checkpoint - фиксированная точка интереса, приближение к которой вызывает оповещение
type Checkpoint struct {
	Name      string  `json:"name" yaml:"name" validate:"required,max=255"`
	Latitude  float64 `json:"latitude" yaml:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude" validate:"longitude"`
}

// NearbyCheckpoint - контрольная точка вместе с расстоянием до позиции
type NearbyCheckpoint struct {
	Checkpoint
	DistanceKm float64 `json:"distance_km"`
}
