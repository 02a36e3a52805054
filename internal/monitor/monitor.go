// Package monitor реализует фоновый монитор близости: хранит последнюю
// позицию, раз в TickInterval проверяет сеть и контрольные точки и
// рассылает оповещения на устройство и всем клиентам.
//
// Все методы Monitor, кроме Status, вызываются только из горутины Run.
package monitor

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/shenikar/safewalk/internal/bridge"
	"github.com/shenikar/safewalk/internal/checkpoint"
	"github.com/shenikar/safewalk/internal/models"
	"github.com/sirupsen/logrus"
)

// TickInterval - период повторной проверки, не настраивается
const TickInterval = 30 * time.Second

// NotificationTitle - заголовок уведомлений на устройстве
const NotificationTitle = "SafeWalk Alert"

const defaultProbeTimeout = 5 * time.Second

// RunState - состояние монитора
type RunState string

const (
	StateIdle    RunState = "idle"
	StateRunning RunState = "running"
)

// Notifier - поверхность уведомлений устройства
type Notifier interface {
	RequestPermission(ctx context.Context) models.Permission
	Show(ctx context.Context, title, body string) error
}

// Prober - проверка доступности сети, nil означает что сеть есть
type Prober interface {
	Probe(ctx context.Context) error
}

// Foreground - рассылка сообщений всем подключенным клиентам
type Foreground interface {
	PostToForeground(msg bridge.Message) int
}

// Status - снимок состояния монитора для чтения из других горутин
type Status struct {
	State        RunState          `json:"state"`
	LastPosition *models.Position  `json:"last_position,omitempty"`
	RunningSince *time.Time        `json:"running_since,omitempty"`
	Ticks        uint64            `json:"ticks"`
	Permission   models.Permission `json:"notification_permission,omitempty"`
}

type Monitor struct {
	registry     *checkpoint.Registry
	notifier     Notifier
	prober       Prober
	foreground   Foreground
	logger       *logrus.Logger
	probeTimeout time.Duration
	newTicker    func(time.Duration) ticker

	state        RunState
	last         *models.Position
	ticker       ticker
	runningSince time.Time
	ticks        uint64
	permission   models.Permission

	status atomic.Pointer[Status]
}

func New(registry *checkpoint.Registry, notifier Notifier, prober Prober, foreground Foreground, logger *logrus.Logger, probeTimeout time.Duration) *Monitor {
	if probeTimeout <= 0 {
		probeTimeout = defaultProbeTimeout
	}
	m := &Monitor{
		registry:     registry,
		notifier:     notifier,
		prober:       prober,
		foreground:   foreground,
		logger:       logger,
		probeTimeout: probeTimeout,
		newTicker:    newTimeTicker,
		state:        StateIdle,
	}
	m.publishStatus()
	return m
}

// Run обрабатывает входящие сообщения и срабатывания таймера до отмены ctx
// или закрытия inbox. При выходе монитор останавливается.
func (m *Monitor) Run(ctx context.Context, inbox <-chan bridge.Message) {
	m.logger.WithField("component", "monitor").Info("Starting proximity monitor...")
	defer func() {
		m.OnStopSignal()
		m.logger.WithField("component", "monitor").Info("Stopping proximity monitor.")
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-inbox:
			if !ok {
				return
			}
			m.HandleMessage(ctx, msg)
		case <-m.tickC():
			m.Tick(ctx)
		}
	}
}

// HandleMessage разбирает сообщение клиента
func (m *Monitor) HandleMessage(ctx context.Context, msg bridge.Message) {
	switch msg.Type {
	case bridge.TypeUpdatePosition:
		m.OnPositionUpdate(ctx, msg.Position())
	case bridge.TypeStopTracking:
		m.OnStopSignal()
	default:
		m.logger.WithFields(logrus.Fields{
			"component": "monitor",
			"type":      msg.Type,
		}).Debug("Ignoring unexpected message")
	}
}

// OnPositionUpdate запоминает позицию и запускает таймер, если монитор простаивал.
// Повторный вызов в состоянии running таймер не пересоздает.
func (m *Monitor) OnPositionUpdate(ctx context.Context, pos models.Position) {
	p := pos
	m.last = &p

	if m.state == StateIdle {
		if m.permission == "" {
			m.permission = m.notifier.RequestPermission(ctx)
		}
		m.ticker = m.newTicker(TickInterval)
		m.state = StateRunning
		m.runningSince = time.Now()
		m.logger.WithFields(logrus.Fields{
			"component":  "monitor",
			"method":     "OnPositionUpdate",
			"permission": m.permission,
		}).Info("Monitoring started")
	}
	m.publishStatus()
}

// OnStopSignal сбрасывает позицию и останавливает таймер. Идемпотентен.
func (m *Monitor) OnStopSignal() {
	if m.state == StateIdle {
		return
	}
	m.last = nil
	if m.ticker != nil {
		m.ticker.Stop()
		m.ticker = nil
	}
	m.state = StateIdle
	m.runningSince = time.Time{}
	m.logger.WithFields(logrus.Fields{
		"component": "monitor",
		"method":    "OnStopSignal",
	}).Info("Monitoring stopped")
	m.publishStatus()
}

// Tick проверяет сеть и контрольные точки для последней позиции.
// Повторы между тиками не подавляются: пока пользователь внутри радиуса,
// оповещение приходит на каждом тике.
func (m *Monitor) Tick(ctx context.Context) {
	if m.last == nil {
		return
	}
	pos := *m.last
	m.ticks++

	log := m.logger.WithFields(logrus.Fields{
		"component": "monitor",
		"method":    "Tick",
		"tick":      m.ticks,
	})

	probeCtx, cancel := context.WithTimeout(ctx, m.probeTimeout)
	err := m.prober.Probe(probeCtx)
	cancel()
	if err != nil {
		log.WithError(err).Warn("Connectivity probe failed")
		m.emit(ctx, models.NetworkDown(models.NetworkDownMessage))
	}

	nearby := m.registry.FindNearby(pos, checkpoint.DefaultThresholdKm)
	for _, cp := range nearby {
		m.emit(ctx, models.CheckpointNear(cp.Name))
	}

	log.WithField("nearby", len(nearby)).Debug("Tick completed")
	m.publishStatus()
}

// State - текущее состояние, только для горутины Run
func (m *Monitor) State() RunState {
	return m.state
}

// Status возвращает последний опубликованный снимок, безопасно из любой горутины
func (m *Monitor) Status() Status {
	return *m.status.Load()
}

func (m *Monitor) emit(ctx context.Context, ev models.AlertEvent) {
	log := m.logger.WithFields(logrus.Fields{
		"component": "monitor",
		"alert":     ev.Kind,
	})

	if m.permission == models.PermissionGranted {
		if err := m.notifier.Show(ctx, NotificationTitle, ev.NotificationBody()); err != nil {
			log.WithError(err).Error("Failed to show device notification")
		}
	}

	delivered := m.foreground.PostToForeground(bridge.AlertMessage(ev))
	log.WithField("delivered", delivered).Info("Alert raised")
}

func (m *Monitor) tickC() <-chan time.Time {
	if m.ticker == nil {
		return nil
	}
	return m.ticker.C()
}

func (m *Monitor) publishStatus() {
	s := &Status{
		State:      m.state,
		Ticks:      m.ticks,
		Permission: m.permission,
	}
	if m.last != nil {
		p := *m.last
		s.LastPosition = &p
	}
	if !m.runningSince.IsZero() {
		t := m.runningSince
		s.RunningSince = &t
	}
	m.status.Store(s)
}
