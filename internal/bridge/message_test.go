package bridge

import (
	"encoding/json"
	"testing"

	"github.com/shenikar/safewalk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_WireFormat(t *testing.T) {
	cases := []struct {
		name string
		msg  Message
		want string
	}{
		{"update position", UpdatePosition(models.NewPosition(37.7749, -122.4194)), `{"type":"UPDATE_POSITION","lat":37.7749,"lon":-122.4194}`},
		{"update position at origin", UpdatePosition(models.NewPosition(0, 0)), `{"type":"UPDATE_POSITION","lat":0,"lon":0}`},
		{"stop tracking", StopTracking(), `{"type":"STOP_TRACKING"}`},
		{"checkpoint", CheckpointNotification("Near Store!"), `{"type":"CHECKPOINT_NOTIFICATION","message":"Near Store!"}`},
		{"network", NetworkAlert(models.NetworkDownMessage), `{"type":"NETWORK_ALERT","message":"No internet connection! Please reconnect."}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.msg)
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(data))
		})
	}
}

func TestMessage_DecodeFromCounterpart(t *testing.T) {
	var msg Message
	err := json.Unmarshal([]byte(`{"type":"UPDATE_POSITION","lat":37.7749,"lon":-122.4194}`), &msg)
	require.NoError(t, err)

	assert.Equal(t, TypeUpdatePosition, msg.Type)
	pos := msg.Position()
	assert.Equal(t, 37.7749, pos.Latitude)
	assert.Equal(t, -122.4194, pos.Longitude)
	assert.False(t, pos.CapturedAt.IsZero())
}

func TestMessage_Validate(t *testing.T) {
	assert.NoError(t, UpdatePosition(models.NewPosition(-90, 180)).Validate())
	assert.NoError(t, StopTracking().Validate())
	assert.Error(t, Message{Type: TypeUpdatePosition, Lat: 91}.Validate())
	assert.Error(t, Message{Type: TypeUpdatePosition, Lon: -181}.Validate())
	assert.Error(t, Message{Type: "PING"}.Validate())
}

func TestAlertMessage(t *testing.T) {
	assert.Equal(t, CheckpointNotification("Near Store!"), AlertMessage(models.CheckpointNear("Store")))
	assert.Equal(t, NetworkAlert("offline"), AlertMessage(models.NetworkDown("offline")))
}
