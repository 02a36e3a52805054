package v1

import (
	"github.com/shenikar/safewalk/internal/models"
	"github.com/shenikar/safewalk/internal/monitor"
)

// ModelToCheckpointResponse преобразует доменную модель в DTO для ответа
func ModelToCheckpointResponse(cp models.Checkpoint) CheckpointResponse {
	return CheckpointResponse{
		Name:      cp.Name,
		Latitude:  cp.Latitude,
		Longitude: cp.Longitude,
	}
}

// ModelsToCheckpointResponses преобразует слайс моделей в слайс DTO
func ModelsToCheckpointResponses(checkpoints []models.Checkpoint) []CheckpointResponse {
	responses := make([]CheckpointResponse, len(checkpoints))
	for i, cp := range checkpoints {
		responses[i] = ModelToCheckpointResponse(cp)
	}
	return responses
}

// ModelsToNearbyResponses преобразует найденные точки в DTO
func ModelsToNearbyResponses(nearby []models.NearbyCheckpoint) []NearbyCheckpointResponse {
	responses := make([]NearbyCheckpointResponse, len(nearby))
	for i, cp := range nearby {
		responses[i] = NearbyCheckpointResponse{
			CheckpointResponse: ModelToCheckpointResponse(cp.Checkpoint),
			DistanceKm:         cp.DistanceKm,
		}
	}
	return responses
}

// StatusToResponse преобразует снимок монитора в DTO
func StatusToResponse(s monitor.Status) MonitorStatusResponse {
	resp := MonitorStatusResponse{
		State:                  string(s.State),
		RunningSince:           s.RunningSince,
		Ticks:                  s.Ticks,
		NotificationPermission: string(s.Permission),
	}
	if s.LastPosition != nil {
		resp.LastPosition = &PositionResponse{
			Latitude:   s.LastPosition.Latitude,
			Longitude:  s.LastPosition.Longitude,
			CapturedAt: s.LastPosition.CapturedAt,
		}
	}
	return resp
}
