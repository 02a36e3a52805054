package sensor

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/safewalk/internal/models"
	"github.com/sirupsen/logrus"
)

const topicPattern = "safewalk/device/%s/location"

const subscribeWait = 10 * time.Second

var errSubscribeTimeout = errors.New("broker did not acknowledge subscription")

var validate = validator.New()

type locationMessage struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	Timestamp int64   `json:"timestamp" validate:"gte=0"`
}

// MQTTSensor получает местоположение устройства из топика брокера MQTT
type MQTTSensor struct {
	client mqtt.Client
	topic  string
	logger *logrus.Logger

	mu     sync.Mutex
	nextID int
	subs   map[int]*mqttSubscription
}

type mqttSubscription struct {
	*subscription
	maxStaleness time.Duration
}

func NewMQTTSensor(client mqtt.Client, deviceID string, logger *logrus.Logger) *MQTTSensor {
	return &MQTTSensor{
		client: client,
		topic:  fmt.Sprintf(topicPattern, deviceID),
		logger: logger,
		subs:   make(map[int]*mqttSubscription),
	}
}

// Topic - топик, на который подписывается датчик
func (s *MQTTSensor) Topic() string {
	return s.topic
}

// Subscribe подписывается на топик устройства при первой подписке.
// HighAccuracy включает QoS 1.
func (s *MQTTSensor) Subscribe(onSample func(models.Position), onError func(error), opts Options) (int, error) {
	if s.client == nil {
		return 0, ErrUnavailable
	}

	sub := &mqttSubscription{
		subscription: newSubscription(onSample, onError, opts),
		maxStaleness: opts.MaxStaleness,
	}

	s.mu.Lock()
	first := len(s.subs) == 0
	s.nextID++
	id := s.nextID
	s.subs[id] = sub
	s.mu.Unlock()

	// обработчик сообщений берет s.mu, поэтому ответ брокера ждем без блокировки
	if first {
		var qos byte
		if opts.HighAccuracy {
			qos = 1
		}
		token := s.client.Subscribe(s.topic, qos, s.handleMessage)
		var err error
		if !token.WaitTimeout(subscribeWait) {
			err = errSubscribeTimeout
		} else {
			err = token.Error()
		}
		if err != nil {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			return 0, fmt.Errorf("subscribe to %s: %w", s.topic, err)
		}
	}

	go sub.run()

	s.logger.WithFields(logrus.Fields{
		"component":       "sensor",
		"topic":           s.topic,
		"subscription_id": id,
	}).Info("Subscribed to device location")
	return id, nil
}

// Unsubscribe не ждет ответа брокера
func (s *MQTTSensor) Unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subs[id]
	if !ok {
		return
	}
	sub.cancel()
	delete(s.subs, id)

	if len(s.subs) == 0 {
		// ответ брокера обрабатывается в фоне
		token := s.client.Unsubscribe(s.topic)
		go func() {
			<-token.Done()
			if err := token.Error(); err != nil {
				s.logger.WithError(err).WithField("topic", s.topic).Warn("Failed to unsubscribe from device location")
			}
		}()
	}
}

func (s *MQTTSensor) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	log := s.logger.WithFields(logrus.Fields{
		"component": "sensor",
		"topic":     msg.Topic(),
	})

	ev := event{}
	var raw locationMessage
	if err := json.Unmarshal(msg.Payload(), &raw); err != nil {
		log.WithError(err).Warn("Invalid location message")
		ev.err = newError(PositionUnavailable, "invalid location message: %v", err)
	} else if err := validate.Struct(raw); err != nil {
		log.WithError(err).Warn("Location message failed validation")
		ev.err = newError(PositionUnavailable, "invalid location message: %v", err)
	} else {
		captured := time.Now()
		if raw.Timestamp > 0 {
			captured = time.Unix(raw.Timestamp, 0)
		}
		ev.pos = models.Position{
			Latitude:   raw.Latitude,
			Longitude:  raw.Longitude,
			CapturedAt: captured,
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sub := range s.subs {
		if msg.Retained() && (ev.err != nil || !sub.acceptsRetained(ev.pos)) {
			continue
		}
		if !sub.offer(ev) {
			log.WithField("subscription_id", id).Debug("Location sample dropped")
		}
	}
}

// acceptsRetained - сохраненный брокером отсчёт принимается, только если он не старше maxStaleness
func (s *mqttSubscription) acceptsRetained(pos models.Position) bool {
	if s.maxStaleness <= 0 {
		return false
	}
	return time.Since(pos.CapturedAt) <= s.maxStaleness
}
