// Package terminal - текстовые поверхности трекера: карта, строки статуса,
// буфер обмена и разбор команд со стандартного ввода.
package terminal

import (
	"fmt"
	"io"
	"sync"
)

// Surface печатает изменения карты и статуса построчно и хранит последнее
// состояние для команды status
type Surface struct {
	mu  sync.Mutex
	out io.Writer

	status      string
	statusStyle string
	checkpoint  string
	marker      *[2]float64
	view        [2]float64
	zoom        int
}

func NewSurface(out io.Writer) *Surface {
	return &Surface{out: out}
}

func (s *Surface) SetView(lat, lon float64, zoom int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = [2]float64{lat, lon}
	s.zoom = zoom
}

func (s *Surface) PlaceOrMoveMarker(lat, lon float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marker = &[2]float64{lat, lon}
	s.printf("[map] you are here: %s\n", formatPoint(lat, lon))
}

func (s *Surface) RemoveMarker() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.marker == nil {
		return
	}
	s.marker = nil
	s.printf("[map] marker removed\n")
}

func (s *Surface) SetStatus(message, styleClass string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// повторяющийся статус на каждом отсчёте не печатаем
	if message == s.status && styleClass == s.statusStyle {
		return
	}
	s.status = message
	s.statusStyle = styleClass
	s.printf("[%s] %s\n", levelOf(styleClass), message)
}

func (s *Surface) SetCheckpointStatus(message, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if message == s.checkpoint {
		return
	}
	s.checkpoint = message
	if message != "" {
		s.printf("[checkpoint] %s\n", message)
	}
}

// Snapshot возвращает текущее состояние в виде нескольких строк
func (s *Surface) Snapshot() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	marker := "none"
	if s.marker != nil {
		marker = formatPoint(s.marker[0], s.marker[1])
	}
	checkpoint := s.checkpoint
	if checkpoint == "" {
		checkpoint = "-"
	}
	return fmt.Sprintf("status:     %s\ncheckpoint: %s\nmarker:     %s\nview:       %s zoom %d\n",
		s.status, checkpoint, marker, formatPoint(s.view[0], s.view[1]), s.zoom)
}

func (s *Surface) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

// levelOf переводит класс оформления в метку строки
func levelOf(styleClass string) string {
	switch styleClass {
	case "bg-green-100":
		return "ok"
	case "bg-yellow-100":
		return "warn"
	case "bg-red-100":
		return "error"
	default:
		return "info"
	}
}

func formatPoint(lat, lon float64) string {
	return fmt.Sprintf("%.6f, %.6f", lat, lon)
}
