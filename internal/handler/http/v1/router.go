package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Канал клиентских контекстов к фоновому монитору
	api.GET("/ws", h.serveWS)

	checkpoints := api.Group("/checkpoints")
	{
		checkpoints.GET("", h.listCheckpoints)
		checkpoints.POST("/nearby", h.findNearby)
	}

	api.GET("/monitor/status", h.monitorStatus)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
