// Package bridge реализует канал сообщений между фоновым монитором и
// клиентскими контекстами. Доставка не более одного раза, FIFO для каждой
// пары отправитель-получатель, без подтверждений и повторов.
package bridge

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/safewalk/internal/models"
)

// MessageType - значение поля type
type MessageType string

const (
	TypeUpdatePosition         MessageType = "UPDATE_POSITION"
	TypeStopTracking           MessageType = "STOP_TRACKING"
	TypeCheckpointNotification MessageType = "CHECKPOINT_NOTIFICATION"
	TypeNetworkAlert           MessageType = "NETWORK_ALERT"
)

var (
	// ErrChannelUnavailable - получатель не готов, сообщение отброшено
	ErrChannelUnavailable = errors.New("channel unavailable")
	// ErrMessageDropped - очередь получателя переполнена, сообщение отброшено
	ErrMessageDropped = errors.New("message dropped")
)

var validate = validator.New()

// Message - единственный формат сообщений между контекстами
type Message struct {
	Type    MessageType `json:"type"`
	Lat     float64     `json:"lat"`
	Lon     float64     `json:"lon"`
	Message string      `json:"message"`
}

func UpdatePosition(pos models.Position) Message {
	return Message{Type: TypeUpdatePosition, Lat: pos.Latitude, Lon: pos.Longitude}
}

func StopTracking() Message {
	return Message{Type: TypeStopTracking}
}

func CheckpointNotification(text string) Message {
	return Message{Type: TypeCheckpointNotification, Message: text}
}

func NetworkAlert(text string) Message {
	return Message{Type: TypeNetworkAlert, Message: text}
}

// AlertMessage переводит оповещение монитора в сообщение для клиентов
func AlertMessage(ev models.AlertEvent) Message {
	if ev.Kind == models.AlertCheckpointNear {
		return CheckpointNotification(ev.DisplayText())
	}
	return NetworkAlert(ev.DisplayText())
}

// MarshalJSON пишет только поля, которые есть у данного типа сообщения
func (m Message) MarshalJSON() ([]byte, error) {
	switch m.Type {
	case TypeUpdatePosition:
		return json.Marshal(struct {
			Type MessageType `json:"type"`
			Lat  float64     `json:"lat"`
			Lon  float64     `json:"lon"`
		}{m.Type, m.Lat, m.Lon})
	case TypeStopTracking:
		return json.Marshal(struct {
			Type MessageType `json:"type"`
		}{m.Type})
	default:
		return json.Marshal(struct {
			Type    MessageType `json:"type"`
			Message string      `json:"message"`
		}{m.Type, m.Message})
	}
}

// Validate проверяет входящее сообщение
func (m Message) Validate() error {
	switch m.Type {
	case TypeUpdatePosition:
		if err := validate.Var(m.Lat, "latitude"); err != nil {
			return fmt.Errorf("lat: %w", err)
		}
		if err := validate.Var(m.Lon, "longitude"); err != nil {
			return fmt.Errorf("lon: %w", err)
		}
	case TypeStopTracking, TypeCheckpointNotification, TypeNetworkAlert:
	default:
		return fmt.Errorf("unknown message type %q", m.Type)
	}
	return nil
}

// Position возвращает позицию из UPDATE_POSITION с временем получения
func (m Message) Position() models.Position {
	return models.NewPosition(m.Lat, m.Lon)
}
