package sensor

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/shenikar/safewalk/internal/models"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const defaultReplayInterval = time.Second

// TrackPoint - точка записанного маршрута
type TrackPoint struct {
	Latitude  float64 `yaml:"latitude" validate:"latitude"`
	Longitude float64 `yaml:"longitude" validate:"longitude"`
}

// Track - записанный маршрут для воспроизведения
type Track struct {
	Interval time.Duration `yaml:"interval"`
	Loop     bool          `yaml:"loop"`
	Points   []TrackPoint  `yaml:"points" validate:"required,min=1,dive"`
}

// LoadTrack читает маршрут из YAML-файла
func LoadTrack(path string) (Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Track{}, fmt.Errorf("failed to read track file: %w", err)
	}
	return ParseTrack(data)
}

func ParseTrack(data []byte) (Track, error) {
	var track Track
	if err := yaml.Unmarshal(data, &track); err != nil {
		return Track{}, fmt.Errorf("failed to parse track: %w", err)
	}
	if err := validate.Struct(track); err != nil {
		return Track{}, fmt.Errorf("invalid track: %w", err)
	}
	if track.Interval <= 0 {
		track.Interval = defaultReplayInterval
	}
	return track, nil
}

// ReplaySensor воспроизводит записанный маршрут, первая точка приходит сразу
type ReplaySensor struct {
	track  Track
	logger *logrus.Logger

	mu     sync.Mutex
	nextID int
	subs   map[int]*subscription
}

func NewReplaySensor(track Track, logger *logrus.Logger) *ReplaySensor {
	return &ReplaySensor{
		track:  track,
		logger: logger,
		subs:   make(map[int]*subscription),
	}
}

func (s *ReplaySensor) Subscribe(onSample func(models.Position), onError func(error), opts Options) (int, error) {
	if len(s.track.Points) == 0 {
		return 0, ErrUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	sub := newSubscription(onSample, onError, opts)
	s.subs[s.nextID] = sub
	go sub.run()
	go s.play(sub)

	return s.nextID, nil
}

func (s *ReplaySensor) Unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sub, ok := s.subs[id]; ok {
		sub.cancel()
		delete(s.subs, id)
	}
}

func (s *ReplaySensor) play(sub *subscription) {
	ticker := time.NewTicker(s.track.Interval)
	defer ticker.Stop()

	for {
		for _, p := range s.track.Points {
			if !sub.send(event{pos: models.NewPosition(p.Latitude, p.Longitude)}) {
				return
			}
			select {
			case <-ticker.C:
			case <-sub.done():
				return
			}
		}
		if !s.track.Loop {
			s.logger.WithField("component", "sensor").Info("Track replay finished")
			return
		}
	}
}
