package service

import (
	"context"
	"fmt"

	"github.com/shenikar/safewalk/internal/checkpoint"
	"github.com/shenikar/safewalk/internal/geo"
	"github.com/shenikar/safewalk/internal/models"
	"github.com/sirupsen/logrus"
)

// CheckpointRepository определяет контракт для чтения контрольных точек из бд
type CheckpointRepository interface {
	List(ctx context.Context) ([]models.Checkpoint, error)
}

// CheckpointService определяет контракт для запросов к реестру контрольных точек
type CheckpointService interface {
	ListCheckpoints(ctx context.Context) []models.Checkpoint
	FindNearby(ctx context.Context, pos models.Position, thresholdKm float64) []models.NearbyCheckpoint
}

type checkpointService struct {
	registry *checkpoint.Registry
	logger   *logrus.Logger
}

func NewCheckpointService(registry *checkpoint.Registry, logger *logrus.Logger) CheckpointService {
	return &checkpointService{
		registry: registry,
		logger:   logger,
	}
}

// ListCheckpoints возвращает весь реестр
func (s *checkpointService) ListCheckpoints(_ context.Context) []models.Checkpoint {
	return s.registry.All()
}

// FindNearby возвращает точки в радиусе thresholdKm вместе с расстоянием до них
func (s *checkpointService) FindNearby(_ context.Context, pos models.Position, thresholdKm float64) []models.NearbyCheckpoint {
	if thresholdKm <= 0 {
		thresholdKm = checkpoint.DefaultThresholdKm
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":      "checkpoint",
		"method":       "FindNearby",
		"threshold_km": thresholdKm,
	})

	matches := s.registry.FindNearby(pos, thresholdKm)
	result := make([]models.NearbyCheckpoint, 0, len(matches))
	for _, cp := range matches {
		result = append(result, models.NearbyCheckpoint{
			Checkpoint: cp,
			DistanceKm: geo.GreatCircleDistanceKm(pos.Latitude, pos.Longitude, cp.Latitude, cp.Longitude),
		})
	}

	log.WithField("count", len(result)).Debug("Nearby checkpoints found")
	return result
}

// LoadRegistry собирает реестр из первого доступного источника:
// бд, затем YAML-файл, затем встроенный набор. repo и file могут быть пустыми.
func LoadRegistry(ctx context.Context, repo CheckpointRepository, file string, logger *logrus.Logger) (*checkpoint.Registry, error) {
	log := logger.WithFields(logrus.Fields{
		"service": "checkpoint",
		"method":  "LoadRegistry",
	})

	if repo != nil {
		checkpoints, err := repo.List(ctx)
		if err != nil {
			log.WithError(err).Error("Failed to load checkpoints from repository")
			return nil, fmt.Errorf("service: could not load checkpoints: %w", err)
		}
		if len(checkpoints) > 0 {
			log.WithFields(logrus.Fields{"source": "database", "count": len(checkpoints)}).Info("Checkpoints loaded")
			return checkpoint.NewRegistry(checkpoints), nil
		}
		log.Warn("Checkpoints table is empty")
	}

	if file != "" {
		registry, err := checkpoint.LoadFile(file)
		if err != nil {
			log.WithError(err).WithField("file", file).Error("Failed to load checkpoints file")
			return nil, fmt.Errorf("service: could not load checkpoints: %w", err)
		}
		log.WithFields(logrus.Fields{"source": file, "count": registry.Len()}).Info("Checkpoints loaded")
		return registry, nil
	}

	registry := checkpoint.Default()
	log.WithFields(logrus.Fields{"source": "builtin", "count": registry.Len()}).Info("Checkpoints loaded")
	return registry, nil
}
