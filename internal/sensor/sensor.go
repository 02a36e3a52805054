// Package sensor содержит источники местоположения для контроллера отслеживания.
//
// Обработчики onSample и onError никогда не вызываются синхронно из Subscribe,
// а Unsubscribe не ждет завершения уже начатого вызова обработчика.
package sensor

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnavailable - источник местоположения отсутствует
var ErrUnavailable = errors.New("location sensor unavailable")

// Options - параметры подписки на местоположение
type Options struct {
	// HighAccuracy запрашивает самый точный режим источника
	HighAccuracy bool
	// Timeout - сколько ждать очередного отсчёта, прежде чем сообщить об ошибке
	Timeout time.Duration
	// MaxStaleness - допустимый возраст сохранённого отсчёта, 0 - только свежие
	MaxStaleness time.Duration
}

// DefaultOptions - параметры, с которыми контроллер включает отслеживание
func DefaultOptions() Options {
	return Options{
		HighAccuracy: true,
		Timeout:      10 * time.Second,
		MaxStaleness: 0,
	}
}

// ErrorCode - причина ошибки источника
type ErrorCode int

const (
	PermissionDenied ErrorCode = iota + 1
	PositionUnavailable
	Timeout
)

// Error - ошибка во время работы подписки. Подписка остается активной.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}
