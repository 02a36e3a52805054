package models

import (
	"time"
)

// Position - отсчёт местоположения, полученный от датчика.
// Не изменяется после создания, следующий отсчёт его заменяет.
type Position struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	CapturedAt time.Time `json:"captured_at"`
}

// NewPosition создает отсчёт с текущим временем
func NewPosition(lat, lon float64) Position {
	return Position{
		Latitude:   lat,
		Longitude:  lon,
		CapturedAt: time.Now(),
	}
}
