package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shenikar/safewalk/internal/controller"
)

// Tracker - действия пользователя, доступные из командной строки
type Tracker interface {
	Toggle(ctx context.Context) error
	SendMessage(kind controller.MessageKind) error
	ShareLink() (string, error)
	SetContact(contact string)
	SafeMode() controller.SafeModeState
}

const usage = `commands:
  toggle          turn safe mode on or off
  safe            tell your contact you are safe
  help            ask your contact for help with your location
  share           copy a map link with your location
  contact <addr>  set the emergency contact
  status          show the current state
  quit            stop tracking and exit
`

// Shell читает команды построчно и вызывает соответствующие действия трекера
type Shell struct {
	tracker  Tracker
	snapshot func() string
	out      io.Writer
}

// NewShell создает оболочку, snapshot может быть nil
func NewShell(tracker Tracker, snapshot func() string, out io.Writer) *Shell {
	return &Shell{tracker: tracker, snapshot: snapshot, out: out}
}

// Run обрабатывает команды до quit, конца ввода или отмены ctx
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	s.printf("%s", usage)
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("read commands: %w", err)
					}
				default:
				}
				return nil
			}
			if quit := s.Execute(ctx, line); quit {
				return nil
			}
		}
	}
}

// Execute выполняет одну команду, возвращает true для quit
func (s *Shell) Execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	var err error
	switch cmd := strings.ToLower(fields[0]); cmd {
	case "toggle":
		err = s.tracker.Toggle(ctx)
	case "safe":
		err = s.tracker.SendMessage(controller.MessageSafe)
	case "help":
		err = s.tracker.SendMessage(controller.MessageHelp)
	case "share":
		_, err = s.tracker.ShareLink()
	case "contact":
		if len(fields) < 2 {
			s.printf("usage: contact <addr>\n")
			return false
		}
		s.tracker.SetContact(strings.Join(fields[1:], " "))
		s.printf("emergency contact set\n")
	case "status":
		s.printf("safe mode:  %s\n", s.tracker.SafeMode())
		if s.snapshot != nil {
			s.printf("%s", s.snapshot())
		}
	case "quit", "exit":
		return true
	case "?":
		s.printf("%s", usage)
	default:
		s.printf("unknown command %q, type ? for the list\n", cmd)
	}

	if err != nil {
		s.printError(err)
	}
	return false
}

// printError выводит ошибки, которые не попали в строку статуса
func (s *Shell) printError(err error) {
	switch {
	case errors.Is(err, controller.ErrSafeModeInactive):
		s.printf("turn safe mode on first (toggle)\n")
	case errors.Is(err, controller.ErrNoContact),
		errors.Is(err, controller.ErrNoPosition),
		errors.Is(err, controller.ErrSensorUnavailable):
		// уже показано в строке статуса
	default:
		s.printf("error: %v\n", err)
	}
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
