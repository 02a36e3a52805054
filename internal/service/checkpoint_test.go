package service

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shenikar/safewalk/internal/checkpoint"
	"github.com/shenikar/safewalk/internal/models"
	"github.com/shenikar/safewalk/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func TestFindNearby_WithDistance(t *testing.T) {
	svc := NewCheckpointService(checkpoint.Default(), testLogger())

	got := svc.FindNearby(context.Background(), models.NewPosition(37.7749, -122.4194), 0.1)

	require.Len(t, got, 1)
	assert.Equal(t, "Store", got[0].Name)
	assert.InDelta(t, 0.0, got[0].DistanceKm, 1e-9)
}

func TestFindNearby_DefaultThreshold(t *testing.T) {
	svc := NewCheckpointService(checkpoint.Default(), testLogger())

	// между точками, обе в радиусе по умолчанию
	got := svc.FindNearby(context.Background(), models.NewPosition(37.77495, -122.4187), 0)

	require.Len(t, got, 2)
	assert.Equal(t, "Store", got[0].Name)
	assert.Equal(t, "Security Booth", got[1].Name)
	for _, cp := range got {
		assert.Less(t, cp.DistanceKm, checkpoint.DefaultThresholdKm)
	}
}

func TestFindNearby_NoMatches(t *testing.T) {
	svc := NewCheckpointService(checkpoint.Default(), testLogger())

	got := svc.FindNearby(context.Background(), models.NewPosition(55.7558, 37.6173), 0.1)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListCheckpoints(t *testing.T) {
	svc := NewCheckpointService(checkpoint.Default(), testLogger())

	got := svc.ListCheckpoints(context.Background())

	require.Len(t, got, 2)
	assert.Equal(t, "Store", got[0].Name)
}

func TestLoadRegistry_FromRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockCheckpointRepository(ctrl)
	ctx := context.Background()

	repoMock.EXPECT().List(ctx).Return([]models.Checkpoint{
		{Name: "Gate", Latitude: 1, Longitude: 2},
	}, nil).Times(1)

	registry, err := LoadRegistry(ctx, repoMock, "", testLogger())

	require.NoError(t, err)
	require.Equal(t, 1, registry.Len())
	assert.Equal(t, "Gate", registry.All()[0].Name)
}

func TestLoadRegistry_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockCheckpointRepository(ctrl)
	ctx := context.Background()

	repoMock.EXPECT().List(ctx).Return(nil, errors.New("connection refused"))

	_, err := LoadRegistry(ctx, repoMock, "", testLogger())
	assert.Error(t, err)
}

func TestLoadRegistry_EmptyTableFallsBackToBuiltin(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockCheckpointRepository(ctrl)
	ctx := context.Background()

	repoMock.EXPECT().List(ctx).Return([]models.Checkpoint{}, nil)

	registry, err := LoadRegistry(ctx, repoMock, "", testLogger())

	require.NoError(t, err)
	assert.Equal(t, checkpoint.Default().All(), registry.All())
}

func TestLoadRegistry_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoints.yaml")
	data := []byte("checkpoints:\n  - name: Library\n    latitude: 51.5\n    longitude: -0.12\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	registry, err := LoadRegistry(context.Background(), nil, path, testLogger())

	require.NoError(t, err)
	assert.Equal(t, []models.Checkpoint{{Name: "Library", Latitude: 51.5, Longitude: -0.12}}, registry.All())
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry(context.Background(), nil, filepath.Join(t.TempDir(), "nope.yaml"), testLogger())
	assert.Error(t, err)
}

func TestLoadRegistry_Builtin(t *testing.T) {
	registry, err := LoadRegistry(context.Background(), nil, "", testLogger())

	require.NoError(t, err)
	assert.Equal(t, 2, registry.Len())
}
