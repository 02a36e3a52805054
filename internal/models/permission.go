package models

// Permission - разрешение на уведомления устройства
type Permission string

const (
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)
