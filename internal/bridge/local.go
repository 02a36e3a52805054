package bridge

import (
	"sync"
)

const defaultBuffer = 16

// Local - канал внутри одного процесса. Фоновая сторона получает сообщения
// из Inbox, клиентские подписчики получают сообщения в своих горутинах.
type Local struct {
	mu          sync.Mutex
	inbox       chan Message
	subscribers []*subscriber
	closed      bool
}

type subscriber struct {
	queue   chan Message
	handler func(Message)
}

func NewLocal() *Local {
	return &Local{}
}

// AttachBackground создает входящую очередь фоновой стороны.
// До вызова все сообщения для фона отбрасываются.
func (l *Local) AttachBackground(buffer int) <-chan Message {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inbox == nil {
		l.inbox = make(chan Message, buffer)
	}
	return l.inbox
}

// PostToBackground отправляет сообщение монитору без ожидания
func (l *Local) PostToBackground(msg Message) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inbox == nil || l.closed {
		return ErrChannelUnavailable
	}
	select {
	case l.inbox <- msg:
		return nil
	default:
		return ErrMessageDropped
	}
}

// OnMessage регистрирует обработчик сообщений от фона.
// Обработчик вызывается в отдельной горутине, по порядку отправки.
func (l *Local) OnMessage(handler func(Message)) {
	s := &subscriber{queue: make(chan Message, defaultBuffer), handler: handler}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.subscribers = append(l.subscribers, s)
	go func() {
		for msg := range s.queue {
			s.handler(msg)
		}
	}()
}

// PostToForeground отправляет сообщение всем подписчикам и возвращает число получивших
func (l *Local) PostToForeground(msg Message) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return 0
	}
	delivered := 0
	for _, s := range l.subscribers {
		select {
		case s.queue <- msg:
			delivered++
		default:
		}
	}
	return delivered
}

// Close останавливает доставку и закрывает очереди
func (l *Local) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	for _, s := range l.subscribers {
		close(s.queue)
	}
	l.subscribers = nil
	if l.inbox != nil {
		close(l.inbox)
	}
}
