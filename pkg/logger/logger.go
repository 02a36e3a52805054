package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New создает логгер сервера: JSON в stdout
func New(logLevel string) *logrus.Logger {
	return NewWithOutput(logLevel, os.Stdout, &logrus.JSONFormatter{})
}

// NewText создает логгер трекера: текст в stderr, чтобы не мешать выводу команд
func NewText(logLevel string) *logrus.Logger {
	return NewWithOutput(logLevel, os.Stderr, &logrus.TextFormatter{FullTimestamp: true})
}

func NewWithOutput(logLevel string, out io.Writer, formatter logrus.Formatter) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(formatter)
	log.SetOutput(out)

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}
