package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/safewalk/internal/handler/http/v1/mocks"
	"github.com/shenikar/safewalk/internal/models"
	"github.com/shenikar/safewalk/internal/monitor"
	service_mocks "github.com/shenikar/safewalk/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	service *service_mocks.MockCheckpointService
	monitor *mocks.MockMonitorStatusProvider
	hub     *mocks.MockForegroundHub
	router  *gin.Engine
}

// newTestHandler создает Handler с мокированными зависимостями и роутер Gin
func newTestHandler(t *testing.T) *testDeps {
	ctrl := gomock.NewController(t)
	deps := &testDeps{
		service: service_mocks.NewMockCheckpointService(ctrl),
		monitor: mocks.NewMockMonitorStatusProvider(ctrl),
		hub:     mocks.NewMockForegroundHub(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	handler := NewHandler(deps.service, deps.monitor, deps.hub, logger)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	deps.router = gin.New()
	api := deps.router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return deps
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListCheckpoints(t *testing.T) {
	d := newTestHandler(t)

	d.service.EXPECT().ListCheckpoints(gomock.Any()).Return([]models.Checkpoint{
		{Name: "Store", Latitude: 37.7749, Longitude: -122.4194},
		{Name: "Security Booth", Latitude: 37.775, Longitude: -122.418},
	}).Times(1)

	w := makeRequest(d.router, http.MethodGet, "/api/v1/checkpoints", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []CheckpointResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Store", resp[0].Name)
	assert.Equal(t, "Security Booth", resp[1].Name)
}

func TestFindNearby_Success(t *testing.T) {
	d := newTestHandler(t)

	d.service.EXPECT().
		FindNearby(gomock.Any(), gomock.Any(), 0.25).
		DoAndReturn(func(_ context.Context, pos models.Position, _ float64) []models.NearbyCheckpoint {
			assert.Equal(t, 37.7749, pos.Latitude)
			assert.Equal(t, -122.4194, pos.Longitude)
			return []models.NearbyCheckpoint{{
				Checkpoint: models.Checkpoint{Name: "Store", Latitude: 37.7749, Longitude: -122.4194},
				DistanceKm: 0,
			}}
		}).Times(1)

	body := `{"latitude": 37.7749, "longitude": -122.4194, "threshold_km": 0.25}`
	w := makeRequest(d.router, http.MethodPost, "/api/v1/checkpoints/nearby", bytes.NewBufferString(body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"name":"Store","latitude":37.7749,"longitude":-122.4194,"distance_km":0}]`, w.Body.String())
}

func TestFindNearby_ZeroCoordinatesAreValid(t *testing.T) {
	d := newTestHandler(t)

	d.service.EXPECT().FindNearby(gomock.Any(), gomock.Any(), 0.0).Return([]models.NearbyCheckpoint{})

	w := makeRequest(d.router, http.MethodPost, "/api/v1/checkpoints/nearby", bytes.NewBufferString(`{"latitude": 0, "longitude": 0}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestFindNearby_InvalidJSON(t *testing.T) {
	d := newTestHandler(t)

	d.service.EXPECT().FindNearby(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(d.router, http.MethodPost, "/api/v1/checkpoints/nearby", bytes.NewBufferString(`{"latitude": 1`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestFindNearby_ValidationError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing latitude", body: `{"longitude": 10}`},
		{name: "latitude out of range", body: `{"latitude": 95, "longitude": 10}`},
		{name: "longitude out of range", body: `{"latitude": 10, "longitude": 190}`},
		{name: "negative threshold", body: `{"latitude": 10, "longitude": 10, "threshold_km": -1}`},
		{name: "threshold too large", body: `{"latitude": 10, "longitude": 10, "threshold_km": 100}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestHandler(t)
			d.service.EXPECT().FindNearby(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(d.router, http.MethodPost, "/api/v1/checkpoints/nearby", bytes.NewBufferString(tt.body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestMonitorStatus_Running(t *testing.T) {
	d := newTestHandler(t)
	since := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	pos := models.Position{Latitude: 37.7749, Longitude: -122.4194, CapturedAt: since}

	d.monitor.EXPECT().Status().Return(monitor.Status{
		State:        monitor.StateRunning,
		LastPosition: &pos,
		RunningSince: &since,
		Ticks:        3,
		Permission:   models.PermissionGranted,
	})

	w := makeRequest(d.router, http.MethodGet, "/api/v1/monitor/status", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp MonitorStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "running", resp.State)
	require.NotNil(t, resp.LastPosition)
	assert.Equal(t, 37.7749, resp.LastPosition.Latitude)
	assert.Equal(t, uint64(3), resp.Ticks)
	assert.Equal(t, "granted", resp.NotificationPermission)
}

func TestMonitorStatus_Idle(t *testing.T) {
	d := newTestHandler(t)

	d.monitor.EXPECT().Status().Return(monitor.Status{State: monitor.StateIdle})

	w := makeRequest(d.router, http.MethodGet, "/api/v1/monitor/status", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"state":"idle","ticks":0}`, w.Body.String())
}

func TestHealthCheck(t *testing.T) {
	d := newTestHandler(t)

	d.hub.EXPECT().Clients().Return(2)

	w := makeRequest(d.router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","foregrounds":2}`, w.Body.String())
}

func TestServeWS_DelegatesToHub(t *testing.T) {
	d := newTestHandler(t)

	d.hub.EXPECT().ServeHTTP(gomock.Any(), gomock.Any()).Do(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/ws", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
	}).Times(1)

	w := makeRequest(d.router, http.MethodGet, "/api/v1/ws", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
