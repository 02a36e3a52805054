// Package controller реализует контроллер отслеживания на стороне клиента:
// включение и выключение безопасного режима, подписку на местоположение,
// локальную проверку контрольных точек и передачу позиции фоновому монитору.
//
// Каждый вызов (команда пользователя, отсчёт датчика, ошибка датчика,
// сообщение от монитора) выполняется целиком под мьютексом контроллера,
// поэтому вызовы не перемешиваются.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shenikar/safewalk/internal/bridge"
	"github.com/shenikar/safewalk/internal/checkpoint"
	"github.com/shenikar/safewalk/internal/models"
	"github.com/shenikar/safewalk/internal/sensor"
	"github.com/sirupsen/logrus"
)

// SafeModeState - состояние безопасного режима
type SafeModeState string

const (
	Inactive SafeModeState = "inactive"
	Active   SafeModeState = "active"
)

// Классы оформления статуса
const (
	StyleInfo    = "bg-blue-100"
	StyleSuccess = "bg-green-100"
	StyleWarning = "bg-yellow-100"
	StyleError   = "bg-red-100"
)

// Тексты статуса
const (
	StatusActive            = "Safe Mode Active - Tracking Location"
	StatusInactive          = "Safe Mode Inactive"
	StatusSensorUnsupported = "Geolocation not supported by your browser."
	StatusBackgroundMissing = "Background tasks not supported by your browser."
	StatusNotificationsOff  = "Notifications disabled. Enable them for alerts."
	StatusNoContact         = "Please enter an emergency contact email."
	StatusNoLocationToShare = "No location available to share."
	StatusLinkCopied        = "Location link copied to clipboard!"
	StatusLinkCopyFailed    = "Failed to copy location link."
)

const (
	defaultZoom  = 2
	trackingZoom = 15
)

var (
	// ErrSensorUnavailable - устройство не умеет определять местоположение
	ErrSensorUnavailable = sensor.ErrUnavailable
	// ErrSafeModeInactive - действие доступно только в безопасном режиме
	ErrSafeModeInactive = errors.New("safe mode is inactive")
	// ErrNoContact - не указан контакт для сообщений
	ErrNoContact = errors.New("emergency contact is not set")
	// ErrNoPosition - местоположение еще не получено
	ErrNoPosition = errors.New("no location available")
)

// LocationSensor - источник местоположения
type LocationSensor interface {
	Subscribe(onSample func(models.Position), onError func(error), opts sensor.Options) (int, error)
	Unsubscribe(id int)
}

// MapSurface - отображение позиции на карте
type MapSurface interface {
	SetView(lat, lon float64, zoom int)
	PlaceOrMoveMarker(lat, lon float64)
	RemoveMarker()
}

// StatusSurface - строки статуса и контрольной точки
type StatusSurface interface {
	SetStatus(message, styleClass string)
	SetCheckpointStatus(message, styleClass string)
}

// Background - канал к фоновому монитору
type Background interface {
	PostToBackground(msg bridge.Message) error
}

// Clipboard - буфер обмена
type Clipboard interface {
	WriteText(text string) error
}

// Prober - проверка сети для строки статуса
type Prober interface {
	Probe(ctx context.Context) error
}

// PermissionRequester - запрос разрешения на уведомления
type PermissionRequester interface {
	RequestPermission(ctx context.Context) models.Permission
}

// Dependencies - внешние возможности, которыми пользуется контроллер.
// Sensor, Background, Clipboard, Prober и Permissions могут отсутствовать.
type Dependencies struct {
	Sensor      LocationSensor
	Map         MapSurface
	Status      StatusSurface
	Background  Background
	Clipboard   Clipboard
	Prober      Prober
	Permissions PermissionRequester
	Registry    *checkpoint.Registry
	Logger      *logrus.Logger
}

type Controller struct {
	mu   sync.Mutex
	deps Dependencies

	state   SafeModeState
	subID   int
	last    *models.Position
	contact string
}

func New(deps Dependencies) *Controller {
	if deps.Registry == nil {
		deps.Registry = checkpoint.Default()
	}
	return &Controller{
		deps:  deps,
		state: Inactive,
	}
}

// SafeMode возвращает текущее состояние
func (c *Controller) SafeMode() SafeModeState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastPosition возвращает последний полученный отсчёт
func (c *Controller) LastPosition() (models.Position, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil {
		return models.Position{}, false
	}
	return *c.last, true
}

// Activate включает безопасный режим и подписывается на местоположение.
// В активном состоянии ничего не делает.
func (c *Controller) Activate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activate()
}

// Deactivate выключает безопасный режим. В неактивном состоянии ничего не делает.
func (c *Controller) Deactivate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deactivate()
}

// Toggle переключает безопасный режим и обновляет статус сети
func (c *Controller) Toggle(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Active {
		c.deactivate()
	} else if err := c.activate(); err != nil {
		return err
	}
	c.checkNetwork(ctx)
	return nil
}

// HandleMessage обрабатывает сообщение от фонового монитора
func (c *Controller) HandleMessage(msg bridge.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch msg.Type {
	case bridge.TypeCheckpointNotification:
		c.deps.Status.SetCheckpointStatus(msg.Message, StyleSuccess)
	case bridge.TypeNetworkAlert:
		c.deps.Status.SetStatus(msg.Message, StyleError)
	default:
		c.log("HandleMessage").WithField("type", msg.Type).Debug("Ignoring unexpected message")
	}
}

func (c *Controller) activate() error {
	if c.state == Active {
		return nil
	}
	log := c.log("Activate")

	if c.deps.Sensor == nil {
		c.deps.Status.SetStatus(StatusSensorUnsupported, StyleError)
		log.Warn("Location sensor is not available")
		return ErrSensorUnavailable
	}

	id, err := c.deps.Sensor.Subscribe(c.onSample, c.onError, sensor.DefaultOptions())
	if err != nil {
		if errors.Is(err, sensor.ErrUnavailable) {
			c.deps.Status.SetStatus(StatusSensorUnsupported, StyleError)
		} else {
			c.deps.Status.SetStatus(fmt.Sprintf("Geolocation error: %s", err.Error()), StyleError)
		}
		log.WithError(err).Error("Failed to subscribe to location updates")
		return fmt.Errorf("controller: could not activate safe mode: %w", err)
	}

	c.subID = id
	c.state = Active
	log.WithField("subscription_id", id).Info("Safe mode activated")
	return nil
}

func (c *Controller) deactivate() {
	if c.state == Inactive {
		return
	}

	c.deps.Sensor.Unsubscribe(c.subID)
	c.subID = 0
	c.state = Inactive

	c.deps.Status.SetStatus(StatusInactive, StyleInfo)
	c.deps.Map.RemoveMarker()
	c.deps.Map.SetView(0, 0, defaultZoom)
	c.deps.Status.SetCheckpointStatus("", "")
	c.post(bridge.StopTracking())

	c.log("Deactivate").Info("Safe mode deactivated")
}

func (c *Controller) onSample(pos models.Position) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// отсчёт, пришедший после отписки
	if c.state != Active {
		return
	}

	p := pos
	c.last = &p

	c.deps.Map.SetView(pos.Latitude, pos.Longitude, trackingZoom)
	c.deps.Map.PlaceOrMoveMarker(pos.Latitude, pos.Longitude)
	for _, cp := range c.deps.Registry.FindNearby(pos, checkpoint.DefaultThresholdKm) {
		c.deps.Status.SetCheckpointStatus(models.CheckpointNear(cp.Name).DisplayText(), StyleSuccess)
	}
	c.deps.Status.SetStatus(StatusActive, StyleSuccess)
	c.post(bridge.UpdatePosition(pos))
}

func (c *Controller) onError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Active {
		return
	}
	// подписка остается, следующий отсчёт может прийти
	c.deps.Status.SetStatus(fmt.Sprintf("Geolocation error: %s", err.Error()), StyleError)
	c.log("onError").WithError(err).Warn("Location sensor error")
}

// post отправляет сообщение монитору, если канал есть. Недоставленное сообщение теряется.
func (c *Controller) post(msg bridge.Message) {
	if c.deps.Background == nil {
		return
	}
	if err := c.deps.Background.PostToBackground(msg); err != nil {
		c.log("post").WithError(err).WithField("type", msg.Type).Debug("Message to background dropped")
	}
}

func (c *Controller) log(method string) *logrus.Entry {
	return c.deps.Logger.WithFields(logrus.Fields{
		"component": "controller",
		"method":    method,
	})
}
