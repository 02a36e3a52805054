package bridge

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 16
)

// Hub - фоновая сторона канала поверх WebSocket. Принимает UPDATE_POSITION и
// STOP_TRACKING от клиентов и рассылает оповещения всем подключенным.
type Hub struct {
	mu       sync.Mutex
	clients  map[*conn]struct{}
	inbox    chan<- Message
	logger   *logrus.Logger
	upgrader websocket.Upgrader
	closed   bool
}

type conn struct {
	id   uuid.UUID
	ws   *websocket.Conn
	send chan Message
}

// NewHub создает хаб, входящие сообщения складываются в inbox монитора
func NewHub(inbox chan<- Message, logger *logrus.Logger) *Hub {
	return &Hub{
		clients: make(map[*conn]struct{}),
		inbox:   inbox,
		logger:  logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ServeHTTP переводит соединение в WebSocket и регистрирует клиента
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	c := &conn{id: uuid.New(), ws: ws, send: make(chan Message, sendBuffer)}
	if !h.register(c) {
		_ = ws.Close()
		return
	}
	h.logger.WithField("client_id", c.id).Info("Foreground client connected")

	go h.writePump(c)
	go h.readPump(c)
}

// PostToForeground рассылает сообщение всем клиентам без ожидания.
// Клиенты с переполненной очередью сообщение не получают.
func (h *Hub) PostToForeground(msg Message) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	delivered := 0
	for c := range h.clients {
		select {
		case c.send <- msg:
			delivered++
		default:
			h.logger.WithField("client_id", c.id).Warn("Client queue is full, message dropped")
		}
	}
	return delivered
}

// Clients - число подключенных клиентов
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close отключает всех клиентов и перестает принимать новые соединения
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) register(c *conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) unregister(c *conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) readPump(c *conn) {
	log := h.logger.WithField("client_id", c.id)
	defer func() {
		h.unregister(c)
		_ = c.ws.Close()
		log.Info("Foreground client disconnected")
	}()

	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			log.WithError(err).Warn("Failed to unmarshal client message")
			continue
		}
		if err := msg.Validate(); err != nil {
			log.WithError(err).Warn("Invalid client message")
			continue
		}

		switch msg.Type {
		case TypeUpdatePosition, TypeStopTracking:
			h.forward(log, msg)
		default:
			log.WithField("type", msg.Type).Debug("Ignoring message not addressed to background")
		}
	}
}

func (h *Hub) forward(log *logrus.Entry, msg Message) {
	select {
	case h.inbox <- msg:
	default:
		log.WithField("type", msg.Type).Warn("Monitor inbox is full, message dropped")
	}
}

func (h *Hub) writePump(c *conn) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteJSON(msg); err != nil {
				h.logger.WithError(err).WithField("client_id", c.id).Warn("Failed to write to client")
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
