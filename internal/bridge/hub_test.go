package bridge

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shenikar/safewalk/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func newTestHub(t *testing.T) (*Hub, chan Message, string) {
	inbox := make(chan Message, 4)
	hub := NewHub(inbox, newTestLogger())
	srv := httptest.NewServer(hub)
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, inbox, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestHub_ForwardsClientMessagesToInbox(t *testing.T) {
	hub, inbox, url := newTestHub(t)
	ctx := context.Background()

	client, err := Dial(ctx, url, newTestLogger())
	require.NoError(t, err)
	defer client.Close()

	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, client.PostToBackground(UpdatePosition(models.NewPosition(37.7749, -122.4194))))
	require.NoError(t, client.PostToBackground(StopTracking()))

	select {
	case msg := <-inbox:
		assert.Equal(t, TypeUpdatePosition, msg.Type)
		assert.Equal(t, 37.7749, msg.Lat)
		assert.Equal(t, -122.4194, msg.Lon)
	case <-time.After(time.Second):
		t.Fatal("update was not forwarded")
	}
	select {
	case msg := <-inbox:
		assert.Equal(t, TypeStopTracking, msg.Type)
	case <-time.After(time.Second):
		t.Fatal("stop was not forwarded")
	}
}

func TestHub_DropsInvalidAndForeignMessages(t *testing.T) {
	hub, inbox, url := newTestHub(t)

	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer ws.Close()
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte(`not json`)))
	require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte(`{"type":"UPDATE_POSITION","lat":123,"lon":0}`)))
	require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte(`{"type":"NETWORK_ALERT","message":"spoof"}`)))
	require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte(`{"type":"STOP_TRACKING"}`)))

	select {
	case msg := <-inbox:
		assert.Equal(t, TypeStopTracking, msg.Type)
	case <-time.After(time.Second):
		t.Fatal("stop was not forwarded")
	}
	assert.Empty(t, inbox)
}

func TestHub_BroadcastsToEveryClient(t *testing.T) {
	hub, _, url := newTestHub(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Message, 4)
	for i := 0; i < 2; i++ {
		client, err := Dial(ctx, url, newTestLogger())
		require.NoError(t, err)
		client.OnMessage(func(m Message) { received <- m })
		go func() { _ = client.Run(ctx) }()
	}
	require.Eventually(t, func() bool { return hub.Clients() == 2 }, time.Second, 5*time.Millisecond)

	assert.Equal(t, 2, hub.PostToForeground(NetworkAlert(models.NetworkDownMessage)))

	for i := 0; i < 2; i++ {
		select {
		case msg := <-received:
			assert.Equal(t, NetworkAlert(models.NetworkDownMessage), msg)
		case <-time.After(time.Second):
			t.Fatal("alert was not delivered")
		}
	}
}

func TestHub_ClientDisconnectUnregisters(t *testing.T) {
	hub, _, url := newTestHub(t)

	client, err := Dial(context.Background(), url, newTestLogger())
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 5*time.Millisecond)

	client.Close()

	assert.Eventually(t, func() bool { return hub.Clients() == 0 }, time.Second, 5*time.Millisecond)
	assert.ErrorIs(t, client.PostToBackground(StopTracking()), ErrChannelUnavailable)
}

func TestDial_Unavailable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := Dial(ctx, "ws://127.0.0.1:1/ws", newTestLogger())
	assert.ErrorIs(t, err, ErrChannelUnavailable)
}

func TestClient_RunCallsHandlersInOrder(t *testing.T) {
	hub, _, url := newTestHub(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := Dial(ctx, url, newTestLogger())
	require.NoError(t, err)

	calls := make(chan string, 4)
	client.OnMessage(func(m Message) { calls <- "first:" + m.Message })
	client.OnMessage(func(m Message) { calls <- "second:" + m.Message })

	done := make(chan error, 1)
	go func() { done <- client.Run(ctx) }()
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 5*time.Millisecond)

	hub.PostToForeground(CheckpointNotification("Near Store!"))

	for _, want := range []string{"first:Near Store!", "second:Near Store!"} {
		select {
		case got := <-calls:
			assert.Equal(t, want, got)
		case <-time.After(time.Second):
			t.Fatalf("handler call %q was not made", want)
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
