package checkpoint

import (
	"testing"

	"github.com/shenikar/safewalk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindNearby_ExactCheckpoint(t *testing.T) {
	r := Default()

	nearby := r.FindNearby(models.NewPosition(37.7749, -122.4194), DefaultThresholdKm)

	// Security Booth примерно в 124 м, в радиус не попадает
	require.Len(t, nearby, 1)
	assert.Equal(t, "Store", nearby[0].Name)
}

func TestFindNearby_BothCheckpoints(t *testing.T) {
	r := Default()

	// середина между точками, до каждой около 62 м
	nearby := r.FindNearby(models.NewPosition(37.77495, -122.4187), DefaultThresholdKm)

	require.Len(t, nearby, 2)
	assert.Equal(t, "Store", nearby[0].Name)
	assert.Equal(t, "Security Booth", nearby[1].Name)
}

func TestFindNearby_FarAway(t *testing.T) {
	r := Default()

	nearby := r.FindNearby(models.NewPosition(55.7558, 37.6173), DefaultThresholdKm)

	assert.Empty(t, nearby)
}

func TestFindNearby_ThresholdIsStrict(t *testing.T) {
	r := NewRegistry([]models.Checkpoint{{Name: "Origin", Latitude: 0, Longitude: 0}})

	assert.Empty(t, r.FindNearby(models.NewPosition(0, 0), 0))
	assert.Len(t, r.FindNearby(models.NewPosition(0, 0), 0.001), 1)
}

func TestFindNearby_DuplicatesReported(t *testing.T) {
	r := NewRegistry([]models.Checkpoint{
		{Name: "Gate", Latitude: 10, Longitude: 10},
		{Name: "Gate", Latitude: 10, Longitude: 10},
	})

	nearby := r.FindNearby(models.NewPosition(10, 10), DefaultThresholdKm)

	assert.Len(t, nearby, 2)
}

func TestRegistry_IsReadOnly(t *testing.T) {
	src := []models.Checkpoint{{Name: "A", Latitude: 1, Longitude: 1}}
	r := NewRegistry(src)
	src[0].Name = "changed"

	all := r.All()
	all[0].Name = "changed too"

	assert.Equal(t, "A", r.All()[0].Name)
	assert.Equal(t, 1, r.Len())
}

func TestParse_Valid(t *testing.T) {
	data := []byte(`
checkpoints:
  - name: Library
    latitude: 51.5074
    longitude: -0.1278
  - name: Station
    latitude: 0
    longitude: 0
`)
	r, err := Parse(data)
	require.NoError(t, err)

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Library", all[0].Name)
	assert.Equal(t, "Station", all[1].Name)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":       `checkpoints: []`,
		"no name":     "checkpoints:\n  - latitude: 1\n    longitude: 1\n",
		"bad lat":     "checkpoints:\n  - name: X\n    latitude: 91\n    longitude: 1\n",
		"broken yaml": "checkpoints: [",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile("does-not-exist.yml")
	assert.ErrorContains(t, err, "failed to read checkpoints file")
}
