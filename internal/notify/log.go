package notify

import (
	"context"

	"github.com/shenikar/safewalk/internal/models"
	"github.com/sirupsen/logrus"
)

// LogNotifier пишет уведомления в лог. Используется, когда Redis не настроен.
type LogNotifier struct {
	logger     *logrus.Logger
	permission models.Permission
}

func NewLogNotifier(logger *logrus.Logger, permission models.Permission) *LogNotifier {
	return &LogNotifier{logger: logger, permission: permission}
}

func (n *LogNotifier) RequestPermission(_ context.Context) models.Permission {
	return n.permission
}

func (n *LogNotifier) Show(_ context.Context, title, body string) error {
	ntf := newNotification(title, body)
	n.logger.WithFields(logrus.Fields{
		"component":       "notify",
		"notification_id": ntf.ID,
		"title":           ntf.Title,
	}).Info(ntf.Body)
	return nil
}
