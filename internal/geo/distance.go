// Package geo содержит расчёт расстояний между координатами.
package geo

import "math"

// EarthRadiusKm - радиус сферы, на которой считается расстояние
const EarthRadiusKm = 6371

// GreatCircleDistanceKm возвращает расстояние в километрах по формуле гаверсинусов.
// Координаты в градусах, проверка диапазонов не выполняется.
func GreatCircleDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
