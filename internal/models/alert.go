package models

import "fmt"

// AlertKind - тип оповещения
type AlertKind string

const (
	AlertCheckpointNear AlertKind = "checkpoint_near"
	AlertNetworkDown    AlertKind = "network_down"
)

// NetworkDownMessage - текст оповещения о потере связи
const NetworkDownMessage = "No internet connection! Please reconnect."

// AlertEvent - оповещение, которое не хранится и сразу уходит на экран и/или в уведомление
type AlertEvent struct {
	Kind       AlertKind
	Checkpoint string // для AlertCheckpointNear
	Message    string // для AlertNetworkDown
}

// CheckpointNear создает оповещение о близости к контрольной точке
func CheckpointNear(name string) AlertEvent {
	return AlertEvent{Kind: AlertCheckpointNear, Checkpoint: name}
}

// NetworkDown создает оповещение о недоступности сети
func NetworkDown(message string) AlertEvent {
	return AlertEvent{Kind: AlertNetworkDown, Message: message}
}

// NotificationBody - текст для уведомления на устройстве
func (e AlertEvent) NotificationBody() string {
	if e.Kind == AlertCheckpointNear {
		return fmt.Sprintf("You are near %s!", e.Checkpoint)
	}
	return e.Message
}

// DisplayText - текст для экрана приложения
func (e AlertEvent) DisplayText() string {
	if e.Kind == AlertCheckpointNear {
		return fmt.Sprintf("Near %s!", e.Checkpoint)
	}
	return e.Message
}
