package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safewalk/internal/models"
)

const (
	notificationQueueKey = "notification_events"
)

// Notification - уведомление для устройства пользователя
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func newNotification(title, body string) Notification {
	return Notification{
		ID:        uuid.New(),
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
}

// RedisNotifier - поверхность уведомлений, складывающая уведомления в очередь Redis.
// Доставку на устройство выполняет Worker.
type RedisNotifier struct {
	redisClient *redis.Client
	permission  models.Permission
}

// NewRedisNotifier создает новый RedisNotifier
func NewRedisNotifier(client *redis.Client, permission models.Permission) *RedisNotifier {
	return &RedisNotifier{
		redisClient: client,
		permission:  permission,
	}
}

// RequestPermission возвращает разрешение, выданное конфигурацией
func (n *RedisNotifier) RequestPermission(_ context.Context) models.Permission {
	return n.permission
}

// Show публикует уведомление в очередь Redis
func (n *RedisNotifier) Show(ctx context.Context, title, body string) error {
	payload, err := json.Marshal(newNotification(title, body))
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	// LPUSH добавляет в левую часть списка, Worker забирает справа
	if err := n.redisClient.LPush(ctx, notificationQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification to Redis: %w", err)
	}
	return nil
}
