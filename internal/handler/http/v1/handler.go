package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/safewalk/internal/models"
	"github.com/shenikar/safewalk/internal/monitor"
	"github.com/shenikar/safewalk/internal/service"
	"github.com/sirupsen/logrus"
)

// MonitorStatusProvider отдает снимок состояния фонового монитора
type MonitorStatusProvider interface {
	Status() monitor.Status
}

// ForegroundHub принимает WebSocket-подключения клиентских контекстов
type ForegroundHub interface {
	ServeHTTP(w http.ResponseWriter, r *http.Request)
	Clients() int
}

type Handler struct {
	checkpointService service.CheckpointService
	monitor           MonitorStatusProvider
	hub               ForegroundHub
	logger            *logrus.Logger
	validate          *validator.Validate
}

func NewHandler(checkpointService service.CheckpointService, monitor MonitorStatusProvider, hub ForegroundHub, logger *logrus.Logger) *Handler {
	return &Handler{
		checkpointService: checkpointService,
		monitor:           monitor,
		hub:               hub,
		logger:            logger,
		validate:          validator.New(),
	}
}

// @Summary Connect a foreground context
// @Description Upgrade to WebSocket. The client sends UPDATE_POSITION and STOP_TRACKING and receives CHECKPOINT_NOTIFICATION and NETWORK_ALERT.
// @Tags Bridge
// @Success 101 "Switching Protocols"
// @Failure 400 {object} map[string]string "Not a WebSocket handshake"
// @Router /ws [get]
func (h *Handler) serveWS(c *gin.Context) {
	h.hub.ServeHTTP(c.Writer, c.Request)
}

// @Summary List checkpoints
// @Description Get every checkpoint of the registry in registry order
// @Tags Checkpoints
// @Produce json
// @Success 200 {array} CheckpointResponse
// @Router /checkpoints [get]
func (h *Handler) listCheckpoints(c *gin.Context) {
	checkpoints := h.checkpointService.ListCheckpoints(c.Request.Context())
	c.JSON(http.StatusOK, ModelsToCheckpointResponses(checkpoints))
}

// @Summary Find checkpoints near a position
// @Description Get checkpoints strictly closer than threshold_km (default 0.1) to the given position
// @Tags Checkpoints
// @Accept json
// @Produce json
// @Param position body NearbyRequest true "Position to check"
// @Success 200 {array} NearbyCheckpointResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /checkpoints/nearby [post]
func (h *Handler) findNearby(c *gin.Context) {
	var input NearbyRequest
	log := h.logger.WithField("method", "findNearby")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pos := models.NewPosition(*input.Latitude, *input.Longitude)
	nearby := h.checkpointService.FindNearby(c.Request.Context(), pos, input.ThresholdKm)

	c.JSON(http.StatusOK, ModelsToNearbyResponses(nearby))
}

// @Summary Get monitor status
// @Description Get the state of the background proximity monitor
// @Tags Monitor
// @Produce json
// @Success 200 {object} MonitorStatusResponse
// @Router /monitor/status [get]
func (h *Handler) monitorStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusToResponse(h.monitor.Status()))
}

// @Summary Get application health status
// @Description Get health status of the application and the number of connected foreground contexts
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Foregrounds: h.hub.Clients()})
}
