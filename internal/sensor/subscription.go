package sensor

import (
	"sync"
	"time"

	"github.com/shenikar/safewalk/internal/models"
)

const eventBuffer = 16

type event struct {
	pos models.Position
	err error
}

// subscription доставляет события одному подписчику из собственной горутины
// и сообщает об ошибке Timeout, если отсчёта нет дольше opts.Timeout.
type subscription struct {
	onSample func(models.Position)
	onError  func(error)
	timeout  time.Duration

	events chan event
	stop   chan struct{}
	once   sync.Once
}

func newSubscription(onSample func(models.Position), onError func(error), opts Options) *subscription {
	return &subscription{
		onSample: onSample,
		onError:  onError,
		timeout:  opts.Timeout,
		events:   make(chan event, eventBuffer),
		stop:     make(chan struct{}),
	}
}

// offer не блокируется, при переполненной очереди событие теряется
func (s *subscription) offer(ev event) bool {
	select {
	case <-s.stop:
		return false
	default:
	}
	select {
	case s.events <- ev:
		return true
	default:
		return false
	}
}

// send ждет места в очереди или отмены подписки
func (s *subscription) send(ev event) bool {
	select {
	case s.events <- ev:
		return true
	case <-s.stop:
		return false
	}
}

func (s *subscription) cancel() {
	s.once.Do(func() { close(s.stop) })
}

func (s *subscription) done() <-chan struct{} {
	return s.stop
}

func (s *subscription) run() {
	var (
		timer    *time.Timer
		timeoutC <-chan time.Time
	)
	if s.timeout > 0 {
		timer = time.NewTimer(s.timeout)
		defer timer.Stop()
		timeoutC = timer.C
	}

	for {
		select {
		case <-s.stop:
			return
		case ev := <-s.events:
			// отмена имеет приоритет над уже полученным событием
			select {
			case <-s.stop:
				return
			default:
			}
			if ev.err != nil {
				if s.onError != nil {
					s.onError(ev.err)
				}
			} else {
				s.onSample(ev.pos)
			}
			if timer != nil {
				timer.Reset(s.timeout)
			}
		case <-timeoutC:
			if s.onError != nil {
				s.onError(newError(Timeout, "Timeout expired"))
			}
			timer.Reset(s.timeout)
		}
	}
}
